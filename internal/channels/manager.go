package channels

import (
	"context"
	"log/slog"
	"sort"

	"github.com/lakebot/lakebot/internal/bus"
	"github.com/lakebot/lakebot/internal/config"
)

// Manager owns all enabled channels and routes outbound messages to them.
type Manager struct {
	channels map[string]Channel
	bus      *bus.MessageBus
}

// NewManager creates a Manager with every enabled channel registered. The
// CLI channel is registered only when interactive is set, so the serve
// command can run headless.
func NewManager(cfg *config.Config, mb *bus.MessageBus, interactive bool) *Manager {
	m := &Manager{channels: make(map[string]Channel), bus: mb}

	if interactive {
		m.register(NewCLIChannel(mb))
	}
	if cfg.Channels.Slack.Enabled {
		m.register(NewSlackChannel(cfg.Channels.Slack, mb))
	}
	if cfg.Channels.Telegram.Enabled {
		m.register(NewTelegramChannel(cfg.Channels.Telegram, mb))
	}
	return m
}

func (m *Manager) register(ch Channel) {
	m.channels[ch.Name()] = ch
	slog.Info("channel enabled", "name", ch.Name())
}

// EnabledChannels returns the names of all registered channels, sorted.
func (m *Manager) EnabledChannels() []string {
	names := make([]string, 0, len(m.channels))
	for n := range m.channels {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// StartAll starts every channel plus the outbound dispatcher and blocks
// until ctx is cancelled.
func (m *Manager) StartAll(ctx context.Context) error {
	go m.dispatchOutbound(ctx)

	for name, ch := range m.channels {
		go func(n string, c Channel) {
			slog.Info("starting channel", "name", n)
			if err := c.Start(ctx); err != nil && ctx.Err() == nil {
				slog.Error("channel exited with error", "name", n, "err", err)
			}
		}(name, ch)
	}

	<-ctx.Done()
	return ctx.Err()
}

// dispatchOutbound routes each outbound message to its channel's Send.
// Answers for channels nobody registered (for example scheduler output when
// delivery is off) are logged and dropped.
func (m *Manager) dispatchOutbound(ctx context.Context) {
	for {
		select {
		case msg := <-m.bus.Outbound:
			ch, ok := m.channels[msg.Channel]
			if !ok {
				slog.Debug("no channel for outbound message", "channel", msg.Channel)
				continue
			}
			if err := ch.Send(ctx, msg); err != nil {
				slog.Error("send error", "channel", msg.Channel, "err", err)
			}
		case <-ctx.Done():
			return
		}
	}
}
