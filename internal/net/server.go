package net

import (
	"context"
	"encoding/json"
	"fmt"
	stdlog "log"
	"net/http"

	"github.com/coder/websocket"

	"github.com/peterkuimelis/cardfield/internal/game"
	"github.com/peterkuimelis/cardfield/internal/log"
)

// Server hosts one match per websocket connection: the connecting client
// against the scripted opponent.
type Server struct {
	balance game.Balance
	mux     *http.ServeMux
}

// NewServer creates a match server with the given balance parameters.
func NewServer(balance game.Balance) *Server {
	s := &Server{
		balance: balance,
		mux:     http.NewServeMux(),
	}
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
	return s
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	stdlog.Printf("match server listening on %s", addr)
	return http.ListenAndServe(addr, s.mux)
}

// session is the per-connection match context. The human always plays side
// 0 over the wire; the scripted side drives itself between client messages.
type session struct {
	match  *game.Match
	logger *log.MemoryLogger
	human  game.Side
	sent   int // events already shipped to the client
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // allow connections from any origin
	})
	if err != nil {
		stdlog.Printf("websocket accept: %v", err)
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()

	var joinMsg ClientMessage
	if err := readMessage(ctx, conn, &joinMsg); err != nil || joinMsg.Type != "join" {
		conn.Close(websocket.StatusPolicyViolation, "expected join message")
		return
	}
	name := joinMsg.Name
	if name == "" {
		name = "Player"
	}

	logger := log.NewMemoryLogger()
	sess := &session{
		match: game.NewMatch(game.MatchConfig{
			Balance:     s.balance,
			Logger:      logger,
			Names:       [2]string{name, "CPU"},
			Scripted:    [2]bool{false, true},
			RandomFirst: true,
		}),
		logger: logger,
		human:  0,
	}

	stdlog.Printf("match started for %s", name)

	if err := sess.runBot(); err != nil {
		stdlog.Printf("bot turn: %v", err)
	}
	if err := sess.sendUpdate(ctx, conn); err != nil {
		return
	}

	for {
		var msg ClientMessage
		if err := readMessage(ctx, conn, &msg); err != nil {
			return
		}

		if err := sess.dispatch(msg); err != nil {
			if werr := writeMessage(ctx, conn, ServerMessage{Type: "error", Error: err.Error()}); werr != nil {
				return
			}
			continue
		}

		if err := sess.sendUpdate(ctx, conn); err != nil {
			return
		}
		if sess.match.State.Over {
			conn.Close(websocket.StatusNormalClosure, "match ended")
			return
		}
	}
}

// dispatch applies one client message to the match, then lets the scripted
// side act if the move handed it the turn.
func (sess *session) dispatch(msg ClientMessage) error {
	m := sess.match
	var err error

	switch msg.Type {
	case "play":
		_, err = m.PlayCard(sess.human, msg.Card)
	case "defend":
		_, err = m.ResolveAttack(msg.Card)
		// The resolved attack was the scripted side's; close out its turn.
		if err == nil && !m.State.Over && m.State.Active != sess.human {
			err = m.EndTurn()
		}
	case "end_turn":
		err = m.EndTurn()
	case "confirm_purchase":
		_, err = m.ConfirmPurchase(msg.Accept)
	case "confirm_sale":
		_, err = m.ConfirmSale(msg.Card)
	case "state":
		return nil
	default:
		return fmt.Errorf("unknown message type %q", msg.Type)
	}
	if err != nil {
		return err
	}
	return sess.runBot()
}

// runBot plays scripted turns until the match is over, the human is active
// again, or a scripted attack waits on the human's defense.
func (sess *session) runBot() error {
	m := sess.match
	for !m.State.Over && m.State.Active != sess.human && m.State.Phase == game.PhaseMain {
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

func (sess *session) sendUpdate(ctx context.Context, conn *websocket.Conn) error {
	events := sess.logger.Events()
	var fresh []EventView
	for _, e := range events[sess.sent:] {
		fresh = append(fresh, NewEventView(e))
	}
	sess.sent = len(events)

	st := sess.match.State
	msg := ServerMessage{
		Type:   "update",
		Events: fresh,
		State:  BuildStateView(st, sess.human),
	}
	if st.Over {
		msg.Type = "game_over"
		msg.Winner = int(st.Winner)
		msg.Result = st.Result
	}
	return writeMessage(ctx, conn, msg)
}

func readMessage(ctx context.Context, conn *websocket.Conn, msg *ClientMessage) error {
	_, data, err := conn.Read(ctx)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, msg)
}

func writeMessage(ctx context.Context, conn *websocket.Conn, msg ServerMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return conn.Write(ctx, websocket.MessageText, data)
}
