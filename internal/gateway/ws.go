package gateway

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// Origin policy is enforced by the fronting proxy, not here.
	CheckOrigin: func(*http.Request) bool { return true },
}

// wsRequest is one inbound chat frame.
type wsRequest struct {
	Text string `json:"text"`
}

// wsResponse is one outbound answer frame.
type wsResponse struct {
	Text string `json:"text"`
}

// handleWS upgrades the connection and serves a chat session: one text
// frame in, one answer frame out, strictly in turn.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	slog.Info("websocket session opened", "remote", r.RemoteAddr)
	for {
		var req wsRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Warn("websocket read failed", "error", err)
			}
			return
		}
		if req.Text == "" {
			continue
		}

		answer := s.adapter.RespondText(r.Context(), req.Text)
		if err := conn.WriteJSON(wsResponse{Text: answer}); err != nil {
			slog.Warn("websocket write failed", "error", err)
			return
		}
	}
}
