package game

import "fmt"

// Combatant is one side's entire battle record.
type Combatant struct {
	Name  string
	HP    int
	MaxHP int // caps natural healing only; HP may exceed it via swaps
	Mana  int
	Gold  int

	Hand []*CardInstance

	// Equipment. The weapon slot exists in the data model but no current
	// rule equips into it; armor is single-use and consumed on block.
	Weapon *CardInstance
	Armor  *CardInstance

	Buffs    []Buff
	Statuses []StatusEffect

	// Scripted marks the side driven by the built-in heuristic. A scripted
	// defender never waits in the awaiting-defense phase.
	Scripted bool
}

// FindInHand returns the hand card with the given instance id, or nil.
func (c *Combatant) FindInHand(id string) *CardInstance {
	for _, ci := range c.Hand {
		if ci.ID == id {
			return ci
		}
	}
	return nil
}

// RemoveFromHand removes and returns the hand card with the given instance
// id, or nil if absent.
func (c *Combatant) RemoveFromHand(id string) *CardInstance {
	for i, ci := range c.Hand {
		if ci.ID == id {
			c.Hand = append(c.Hand[:i], c.Hand[i+1:]...)
			return ci
		}
	}
	return nil
}

// HasArmorInHand reports whether any armor-type card is in hand.
func (c *Combatant) HasArmorInHand() bool {
	for _, ci := range c.Hand {
		if ci.Card.Type == CardTypeArmor {
			return true
		}
	}
	return false
}

// HasDamageSource reports whether the hand holds any card that can deal
// damage (weapon type or nonzero attack).
func (c *Combatant) HasDamageSource() bool {
	for _, ci := range c.Hand {
		if ci.Card.CanDealDamage() {
			return true
		}
	}
	return false
}

// ConsumeBuff removes and returns the first buff of the given kind.
func (c *Combatant) ConsumeBuff(kind BuffKind) (Buff, bool) {
	for i, b := range c.Buffs {
		if b.Kind == kind {
			c.Buffs = append(c.Buffs[:i], c.Buffs[i+1:]...)
			return b, true
		}
	}
	return Buff{}, false
}

// --- Pending cross-call operations ---

// Pending models the at-most-one outstanding cross-call operation as a sum
// type: exactly one variant (or nil) lives on MatchState at a time.
type Pending interface {
	pendingPhase() Phase
}

// PendingAttack parks computed weapon damage until the defender commits or
// declines a blocking card. The source card stays in the attacker's hand
// until resolution.
type PendingAttack struct {
	Attacker Side
	Defender Side
	Card     *CardInstance
	Damage   int // pre-mitigation
}

func (*PendingAttack) pendingPhase() Phase { return PhaseAwaitingDefense }

// PendingPurchase is an offer by Buyer to purchase a specific card out of
// Seller's hand.
type PendingPurchase struct {
	Buyer  Side
	Seller Side
	Card   *CardInstance
	Price  int

	source *CardInstance // the action card that opened the offer
}

func (*PendingPurchase) pendingPhase() Phase { return PhaseAwaitingPurchase }

// PendingSale waits for Seller to pick which of their own cards to sell
// to Buyer.
type PendingSale struct {
	Seller Side
	Buyer  Side

	source *CardInstance
}

func (*PendingSale) pendingPhase() Phase { return PhaseAwaitingSale }

// --- MatchState ---

// MatchState holds the complete state of a match.
type MatchState struct {
	Turn    int // 1-based
	Phase   Phase
	Active  Side
	Sides   [2]*Combatant
	Deck    []*CardInstance // back of slice is the next draw
	Discard []*CardInstance

	Pending   Pending
	ExtraTurn bool

	Over   bool
	Winner Side // valid only when Over
	Result string
}

// Combatant returns the record for the given side.
func (st *MatchState) Combatant(s Side) *Combatant {
	return st.Sides[s]
}

// CheckWinCondition checks whether either side's HP has hit 0 and marks the
// match over if so. Returns true when the match just ended.
func (st *MatchState) CheckWinCondition() bool {
	if st.Over {
		return false
	}
	for s := Side(0); s < 2; s++ {
		if st.Sides[s].HP <= 0 {
			st.Over = true
			st.Phase = PhaseEnded
			st.Winner = s.Other()
			st.Result = fmt.Sprintf("%s wins — %s's HP reached 0", st.Winner, s)
			return true
		}
	}
	return false
}

// countInstances tallies every card instance across all owning collections.
// The total is invariant for the life of a match.
func (st *MatchState) countInstances() int {
	n := len(st.Deck) + len(st.Discard)
	for _, c := range st.Sides {
		n += len(c.Hand)
		if c.Weapon != nil {
			n++
		}
		if c.Armor != nil {
			n++
		}
	}
	return n
}
