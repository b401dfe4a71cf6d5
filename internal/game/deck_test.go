package game

import (
	"math/rand"
	"testing"

	"github.com/peterkuimelis/cardfield/internal/log"
)

func TestBuildDeckMintsDistinctInstances(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	deck := BuildDeck(rng, 40, DefaultBalance().typeWeights())

	if len(deck) != 40 {
		t.Fatalf("deck size = %d, want 40", len(deck))
	}
	seen := make(map[string]bool, len(deck))
	for _, ci := range deck {
		if seen[ci.ID] {
			t.Fatalf("duplicate instance id %s", ci.ID)
		}
		seen[ci.ID] = true
	}
}

func TestSampleByTypeHonorsWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	weights := map[CardType]int{CardTypeWeapon: 1}

	for i := 0; i < 50; i++ {
		if c := SampleByType(rng, weights); c.Type != CardTypeWeapon {
			t.Fatalf("sampled %s with weapon-only weights", c.Type)
		}
	}
}

func TestSampleByRarityCoversCatalog(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		if c := SampleByRarity(rng); c == nil {
			t.Fatal("SampleByRarity returned nil")
		}
	}
}

func TestDrawStopsAtHandLimit(t *testing.T) {
	m, _ := newTestMatch(t)
	for i := 0; i < m.Balance.HandLimit-1; i++ {
		give(t, m, 0, "dagger")
	}
	stack(t, m, "herb", "herb", "herb")

	if got := m.Draw(0, 3); got != 1 {
		t.Errorf("drew %d, want 1 (hand limit)", got)
	}
	if got := len(m.State.Combatant(0).Hand); got != m.Balance.HandLimit {
		t.Errorf("hand size = %d, want the limit", got)
	}
}

func TestDrawReshufflesDiscard(t *testing.T) {
	m, logger := newTestMatch(t)
	herb, _ := LookupByID("herb")
	m.State.Discard = append(m.State.Discard, NewCardInstance(herb), NewCardInstance(herb))

	if got := m.Draw(0, 1); got != 1 {
		t.Fatalf("drew %d, want 1", got)
	}
	if len(m.State.Deck) != 1 {
		t.Errorf("deck size = %d, want 1 left after the reshuffle", len(m.State.Deck))
	}
	if len(m.State.Discard) != 0 {
		t.Error("discard pile should be empty after the reshuffle")
	}
	if len(logger.EventsOfType(log.EventReshuffle)) != 1 {
		t.Error("expected a Reshuffle event")
	}
}

func TestDrawWithBothPilesEmpty(t *testing.T) {
	m, logger := newTestMatch(t)
	if got := m.Draw(0, 3); got != 0 {
		t.Errorf("drew %d from nothing, want 0", got)
	}
	if len(logger.EventsOfType(log.EventDraw)) != 0 {
		t.Error("an empty draw must not log a Draw event")
	}
}

func TestOpeningDeal(t *testing.T) {
	logger := log.NewMemoryLogger()
	m := NewMatch(MatchConfig{Logger: logger, Seed: 7})

	for s := Side(0); s < 2; s++ {
		if got := len(m.State.Combatant(s).Hand); got != m.Balance.OpeningHand {
			t.Errorf("%s opening hand = %d, want %d", s, got, m.Balance.OpeningHand)
		}
	}
	if got := len(m.State.Deck); got != m.Balance.DeckSize-2*m.Balance.OpeningHand {
		t.Errorf("deck size = %d after the deal", got)
	}
	if len(logger.EventsOfType(log.EventNewTurn)) != 1 {
		t.Error("expected the opening turn marker")
	}
}
