package game

import (
	"testing"

	"github.com/peterkuimelis/cardfield/internal/log"
)

// newTestMatch builds a match with an empty deck and empty hands so tests
// can stage exact situations with give and stack.
func newTestMatch(t *testing.T) (*Match, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	m := NewMatch(MatchConfig{
		Logger: logger,
		Cards:  []*Card{},
		Seed:   1,
	})
	return m, logger
}

// give mints an instance of a catalog card straight into a side's hand.
func give(t *testing.T, m *Match, side Side, cardID string) *CardInstance {
	t.Helper()
	c, ok := LookupByID(cardID)
	if !ok {
		t.Fatalf("no catalog card %q", cardID)
	}
	ci := NewCardInstance(c)
	m.State.Combatant(side).Hand = append(m.State.Combatant(side).Hand, ci)
	return ci
}

// stack pushes catalog cards onto the deck; the last pushed is drawn first.
func stack(t *testing.T, m *Match, cardIDs ...string) {
	t.Helper()
	for _, id := range cardIDs {
		c, ok := LookupByID(id)
		if !ok {
			t.Fatalf("no catalog card %q", id)
		}
		m.State.Deck = append(m.State.Deck, NewCardInstance(c))
	}
}

// mustPlay plays a card and fails the test on error.
func mustPlay(t *testing.T, m *Match, side Side, ci *CardInstance) Outcome {
	t.Helper()
	out, err := m.PlayCard(side, ci.ID)
	if err != nil {
		t.Fatalf("PlayCard(%s, %s): %v", side, ci.Card.Name, err)
	}
	return out
}

// mustEndTurn ends the turn and fails the test on error.
func mustEndTurn(t *testing.T, m *Match) {
	t.Helper()
	if err := m.EndTurn(); err != nil {
		t.Fatalf("EndTurn: %v", err)
	}
}

// mustResolve resolves the pending attack and fails the test on error.
func mustResolve(t *testing.T, m *Match, defenseID string) Outcome {
	t.Helper()
	out, err := m.ResolveAttack(defenseID)
	if err != nil {
		t.Fatalf("ResolveAttack(%q): %v", defenseID, err)
	}
	return out
}
