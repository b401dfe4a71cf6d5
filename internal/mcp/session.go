package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/peterkuimelis/cardfield/internal/game"
	"github.com/peterkuimelis/cardfield/internal/log"
	cfnet "github.com/peterkuimelis/cardfield/internal/net"
)

// Session holds one match driven through the MCP tools: the model against
// the scripted opponent. The engine is synchronous, so every tool call
// mutates the match and returns the fresh events and state directly.
type Session struct {
	ID     string
	match  *game.Match
	logger *log.MemoryLogger
	player game.Side // the model's side
	sent   int       // events already reported through a tool result
}

// NewSession starts a match against the scripted opponent. goFirst picks
// which side opens; side 0 always takes the first turn.
func NewSession(balance game.Balance, goFirst bool) (*Session, error) {
	player := game.Side(0)
	names := [2]string{"Model", "CPU"}
	scripted := [2]bool{false, true}
	if !goFirst {
		player = 1
		names = [2]string{"CPU", "Model"}
		scripted = [2]bool{true, false}
	}

	logger := log.NewMemoryLogger()
	sess := &Session{
		ID: uuid.NewString(),
		match: game.NewMatch(game.MatchConfig{
			Balance:  balance,
			Logger:   logger,
			Names:    names,
			Scripted: scripted,
		}),
		logger: logger,
		player: player,
	}
	if err := sess.runBot(); err != nil {
		return nil, fmt.Errorf("opening turn: %w", err)
	}
	return sess, nil
}

// runBot plays scripted turns until the model is active again, the match is
// over, or a scripted attack waits on the model's defense.
func (s *Session) runBot() error {
	m := s.match
	for !m.State.Over && m.State.Active != s.player && m.State.Phase == game.PhaseMain {
		out, err := m.AutoTurn()
		if err != nil {
			return err
		}
		if out.NeedDefense {
			return nil
		}
	}
	return nil
}

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	SessionID string             `json:"session_id"`
	Events    []cfnet.EventView  `json:"events"`
	State     *cfnet.StateView   `json:"state"`
	Message   string             `json:"message,omitempty"`
	GameOver  bool               `json:"game_over"`
	Winner    int                `json:"winner,omitempty"`
	Result    string             `json:"result,omitempty"`
}

// respond drains fresh events and renders the state from the model's side.
func (s *Session) respond(message string) string {
	events := s.logger.Events()
	fresh := make([]cfnet.EventView, 0, len(events)-s.sent)
	for _, e := range events[s.sent:] {
		fresh = append(fresh, cfnet.NewEventView(e))
	}
	s.sent = len(events)

	st := s.match.State
	resp := &ToolResponse{
		SessionID: s.ID,
		Events:    fresh,
		State:     cfnet.BuildStateView(st, s.player),
		Message:   message,
	}
	if st.Over {
		resp.GameOver = true
		resp.Winner = int(st.Winner)
		resp.Result = st.Result
	}

	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
