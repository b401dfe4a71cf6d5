package game

import (
	"math/rand"
	"time"

	"github.com/peterkuimelis/cardfield/internal/log"
)

// MatchConfig holds configuration for creating a new match.
type MatchConfig struct {
	Balance Balance
	Logger  log.EventLogger
	Seed    int64 // RNG seed (0 for time-based)

	// Cards, when non-nil, is an explicit deck list (back of slice drawn
	// first) instead of a freshly sampled deck. Used by tests and scripted
	// scenarios.
	Cards     []*Card
	NoShuffle bool // skip deck shuffle (for deterministic tests)

	Names       [2]string
	Scripted    [2]bool
	RandomFirst bool // coin-flip the opening side instead of side 0
}

// Match is the serialized entry point for all mutation of a MatchState.
// Both logical actors drive the same Match from a single goroutine; no
// operation blocks.
type Match struct {
	State   *MatchState
	Logger  log.EventLogger
	Balance Balance

	rng *rand.Rand
}

// NewMatch builds the deck, deals opening hands and logs the first turn
// marker.
func NewMatch(cfg MatchConfig) *Match {
	bal := cfg.Balance
	if bal.StartingHP == 0 {
		bal = DefaultBalance()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	names := cfg.Names
	if names[0] == "" {
		names[0] = "P1"
	}
	if names[1] == "" {
		names[1] = "P2"
	}

	st := &MatchState{
		Turn:  1,
		Phase: PhaseMain,
	}
	for s := Side(0); s < 2; s++ {
		st.Sides[s] = &Combatant{
			Name:     names[s],
			HP:       bal.StartingHP,
			MaxHP:    bal.StartingHP,
			Mana:     bal.StartingMana,
			Gold:     bal.StartingGold,
			Scripted: cfg.Scripted[s],
		}
	}

	if cfg.Cards != nil {
		st.Deck = InstantiateDeck(cfg.Cards)
		if !cfg.NoShuffle {
			shuffle(rng, st.Deck)
		}
	} else {
		st.Deck = BuildDeck(rng, bal.DeckSize, bal.typeWeights())
	}

	if cfg.RandomFirst {
		st.Active = Side(rng.Intn(2))
	}

	m := &Match{State: st, Logger: logger, Balance: bal, rng: rng}

	for s := Side(0); s < 2; s++ {
		m.Draw(s, bal.OpeningHand)
	}
	m.log(log.NewTurnEvent(st.Turn, int(st.Active)))

	return m
}

func (m *Match) log(event log.GameEvent) {
	m.Logger.Log(event)
}

// Draw pops up to n cards from the deck into the side's hand, stopping at
// the hand cap. An exhausted deck is replenished by shuffling the discard
// pile back in; if both are empty the draw stops silently. Returns the
// number of cards actually drawn.
func (m *Match) Draw(side Side, n int) int {
	st := m.State
	c := st.Combatant(side)

	drawn := 0
	for i := 0; i < n; i++ {
		if len(c.Hand) >= m.Balance.HandLimit {
			break
		}
		if len(st.Deck) == 0 {
			if len(st.Discard) == 0 {
				break
			}
			st.Deck = st.Discard
			st.Discard = nil
			shuffle(m.rng, st.Deck)
			m.log(log.NewReshuffleEvent(st.Turn, len(st.Deck)))
		}
		card := st.Deck[len(st.Deck)-1]
		st.Deck = st.Deck[:len(st.Deck)-1]
		c.Hand = append(c.Hand, card)
		drawn++
	}

	if drawn > 0 {
		m.log(log.NewDrawEvent(st.Turn, int(side), drawn))
	}
	return drawn
}

// discard pushes a card instance onto the shared discard pile.
func (m *Match) discard(ci *CardInstance) {
	m.State.Discard = append(m.State.Discard, ci)
}

// applyDamage reduces a side's HP (floor-clamped at 0), logs the change and
// checks the win condition.
func (m *Match) applyDamage(side Side, amount int, reason string) {
	st := m.State
	c := st.Combatant(side)

	oldHP := c.HP
	c.HP -= amount
	if c.HP < 0 {
		c.HP = 0
	}
	m.log(log.NewDamageEvent(st.Turn, int(side), oldHP, c.HP, reason))

	if st.CheckWinCondition() {
		m.log(log.NewWinEvent(st.Turn, int(st.Winner), st.Result))
	}
}

// heal restores HP up to the side's max and returns the amount actually
// restored. MaxHP caps natural healing only.
func (m *Match) heal(side Side, amount int, cardName string) int {
	st := m.State
	c := st.Combatant(side)

	healed := amount
	if room := c.MaxHP - c.HP; healed > room {
		healed = room
	}
	if healed < 0 {
		healed = 0
	}
	c.HP += healed
	m.log(log.NewHealEvent(st.Turn, int(side), healed, cardName))
	return healed
}

// replenish applies the post-play hand-replenishment policy: a mana-cost
// card draws 1 replacement; otherwise a hand left without any damage
// source draws 3 as a catch-up. Runs only once the play fully resolved.
func (m *Match) replenish(side Side, played *Card) {
	c := m.State.Combatant(side)
	if played.ManaCost > 0 {
		m.Draw(side, 1)
	} else if !c.HasDamageSource() {
		m.Draw(side, 3)
	}
}

// EndTurn ticks the acting side's status effects, then either grants the
// queued extra turn or advances to the other side, crediting it mana.
func (m *Match) EndTurn() error {
	st := m.State
	if st.Over {
		return ErrInvalidPhase
	}
	if st.Phase != PhaseMain {
		return ErrInvalidPhase
	}

	m.tickStatusEffects(st.Active)
	if st.Over {
		return nil
	}

	if st.ExtraTurn {
		st.ExtraTurn = false
		m.log(log.NewExtraTurnEvent(st.Turn, int(st.Active)))
		return nil
	}

	st.Turn++
	st.Active = st.Active.Other()
	next := st.Combatant(st.Active)
	next.Mana += m.Balance.ManaPerTurn

	m.log(log.NewTurnEvent(st.Turn, int(st.Active)))
	m.log(log.NewManaGainEvent(st.Turn, int(st.Active), m.Balance.ManaPerTurn, next.Mana))
	return nil
}
