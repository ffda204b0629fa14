// Package scheduler runs standing prompts on cron schedules. Each firing is
// an ordinary one-shot request through the agent; the answer is delivered to
// a configured channel or just logged.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	robfigcron "github.com/robfig/cron/v3"

	"github.com/lakebot/lakebot/internal/bus"
	"github.com/lakebot/lakebot/internal/config"
	"github.com/lakebot/lakebot/internal/shared/llmutils"
)

// RunPromptFunc runs one prompt through the agent and returns the answer.
type RunPromptFunc func(ctx context.Context, prompt string) string

// Service owns the cron runner for the configured standing prompts.
type Service struct {
	schedules []config.ScheduleConfig
	runPrompt RunPromptFunc
	bus       *bus.MessageBus
	cron      *robfigcron.Cron
}

// NewService creates a Service. Standard five-field cron expressions are
// accepted, plus the @every / @hourly style descriptors.
func NewService(schedules []config.ScheduleConfig, runPrompt RunPromptFunc, mb *bus.MessageBus) *Service {
	return &Service{
		schedules: schedules,
		runPrompt: runPrompt,
		bus:       mb,
		cron:      robfigcron.New(),
	}
}

// Start registers every schedule and blocks until ctx is cancelled. A bad
// cron expression fails startup rather than being skipped silently.
func (s *Service) Start(ctx context.Context) error {
	for i, sched := range s.schedules {
		_, err := s.cron.AddFunc(sched.Cron, func() { s.fire(ctx, sched) })
		if err != nil {
			return fmt.Errorf("schedule %d (%q): %w", i, sched.Cron, err)
		}
		slog.Info("schedule registered", "cron", sched.Cron, "prompt", llmutils.Truncate(sched.Prompt, 60))
	}

	s.cron.Start()
	<-ctx.Done()
	<-s.cron.Stop().Done()
	return ctx.Err()
}

// Entries returns the number of registered cron entries.
func (s *Service) Entries() int { return len(s.cron.Entries()) }

func (s *Service) fire(ctx context.Context, sched config.ScheduleConfig) {
	slog.Info("schedule fired", "cron", sched.Cron)
	answer := s.runPrompt(ctx, sched.Prompt)

	if sched.Channel == "" || sched.ChatID == "" {
		slog.Info("scheduled prompt answered", "answer", llmutils.Truncate(answer, 200))
		return
	}
	s.bus.Outbound <- bus.OutboundMessage{
		Channel: sched.Channel,
		ChatID:  sched.ChatID,
		Content: answer,
	}
}
