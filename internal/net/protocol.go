package net

// Message types for the JSON protocol over the websocket.

import (
	"github.com/peterkuimelis/cardfield/internal/game"
	"github.com/peterkuimelis/cardfield/internal/log"
)

// --- Server → Client messages ---

// ServerMessage is the envelope for all server-to-client messages.
type ServerMessage struct {
	Type string `json:"type"`

	// For "update"
	Events []EventView `json:"events,omitempty"`
	State  *StateView  `json:"state,omitempty"`

	// For "error"
	Error string `json:"error,omitempty"`

	// For "game_over"
	Winner int    `json:"winner,omitempty"`
	Result string `json:"result,omitempty"`
}

// EventView is a simplified match event for the client.
type EventView struct {
	Turn    int    `json:"turn"`
	Side    int    `json:"side"`
	Type    string `json:"type"`
	Card    string `json:"card,omitempty"`
	Details string `json:"details"`
}

// CardView describes one card in a hand or offer.
type CardView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Attack      int    `json:"attack,omitempty"`
	Defense     int    `json:"defense,omitempty"`
	Heal        int    `json:"heal,omitempty"`
	ManaCost    int    `json:"mana_cost,omitempty"`
	Price       int    `json:"price"`
	Description string `json:"description,omitempty"`
}

// StatusView describes an active status effect.
type StatusView struct {
	Kind   string `json:"kind"`
	Damage int    `json:"damage"`
	Turns  int    `json:"turns"`
}

// SideView shows one combatant's board. Hand contents are only present for
// the viewer's own side.
type SideView struct {
	Name      string       `json:"name"`
	HP        int          `json:"hp"`
	Mana      int          `json:"mana"`
	Gold      int          `json:"gold"`
	HandCount int          `json:"hand_count"`
	Hand      []CardView   `json:"hand,omitempty"`
	Armor     *CardView    `json:"armor,omitempty"`
	Statuses  []StatusView `json:"statuses,omitempty"`
}

// PendingView describes the open cross-call operation, if any.
type PendingView struct {
	Kind string `json:"kind"` // "attack", "purchase" or "sale"

	// For "attack"
	Attacker int    `json:"attacker,omitempty"`
	Card     string `json:"card,omitempty"`
	Damage   int    `json:"damage,omitempty"`

	// For "purchase"
	Offer *CardView `json:"offer,omitempty"`
	Price int       `json:"price,omitempty"`
}

// StateView is the match state from one side's perspective.
type StateView struct {
	Turn         int          `json:"turn"`
	Phase        string       `json:"phase"`
	YourTurn     bool         `json:"your_turn"`
	You          SideView     `json:"you"`
	Opponent     SideView     `json:"opponent"`
	DeckCount    int          `json:"deck_count"`
	DiscardCount int          `json:"discard_count"`
	Pending      *PendingView `json:"pending,omitempty"`
	Over         bool         `json:"over,omitempty"`
	Winner       int          `json:"winner,omitempty"`
	Result       string       `json:"result,omitempty"`
}

// --- Client → Server messages ---

// ClientMessage is the envelope for all client-to-server messages.
type ClientMessage struct {
	Type string `json:"type"`

	// For "play", "defend" and "confirm_sale"; an empty Card declines a
	// defense or cancels a sale.
	Card string `json:"card,omitempty"`

	// For "confirm_purchase"
	Accept bool `json:"accept,omitempty"`

	// For "join"
	Name string `json:"name,omitempty"`
}

// --- View builders ---

// NewCardView converts a card instance for the wire.
func NewCardView(ci *game.CardInstance) CardView {
	c := ci.Card
	return CardView{
		ID:          ci.ID,
		Name:        c.Name,
		Type:        c.Type.String(),
		Attack:      c.Attack,
		Defense:     c.Defense,
		Heal:        c.Heal,
		ManaCost:    c.ManaCost,
		Price:       game.PriceOf(c),
		Description: c.Description,
	}
}

// NewEventView converts a logged event for the wire.
func NewEventView(e log.GameEvent) EventView {
	return EventView{
		Turn:    e.Turn,
		Side:    e.Side,
		Type:    e.Type.String(),
		Card:    e.Card,
		Details: e.Details,
	}
}

func buildSideView(c *game.Combatant, withHand bool) SideView {
	v := SideView{
		Name:      c.Name,
		HP:        c.HP,
		Mana:      c.Mana,
		Gold:      c.Gold,
		HandCount: len(c.Hand),
	}
	if withHand {
		for _, ci := range c.Hand {
			v.Hand = append(v.Hand, NewCardView(ci))
		}
	}
	if c.Armor != nil {
		av := NewCardView(c.Armor)
		v.Armor = &av
	}
	for _, s := range c.Statuses {
		v.Statuses = append(v.Statuses, StatusView{
			Kind:   s.Kind.String(),
			Damage: s.Damage,
			Turns:  s.Turns,
		})
	}
	return v
}

func buildPendingView(st *game.MatchState, viewer game.Side) *PendingView {
	switch p := st.Pending.(type) {
	case *game.PendingAttack:
		return &PendingView{
			Kind:     "attack",
			Attacker: int(p.Attacker),
			Card:     p.Card.Card.Name,
			Damage:   p.Damage,
		}
	case *game.PendingPurchase:
		v := &PendingView{Kind: "purchase", Price: p.Price}
		// The seller only learns which card went once the deal closes.
		if p.Buyer == viewer {
			cv := NewCardView(p.Card)
			v.Offer = &cv
		}
		return v
	case *game.PendingSale:
		return &PendingView{Kind: "sale"}
	default:
		return nil
	}
}

// BuildStateView renders the match state from one side's perspective: own
// hand visible, the foe's reduced to a count.
func BuildStateView(st *game.MatchState, viewer game.Side) *StateView {
	v := &StateView{
		Turn:         st.Turn,
		Phase:        st.Phase.String(),
		YourTurn:     st.Active == viewer && st.Phase == game.PhaseMain,
		You:          buildSideView(st.Combatant(viewer), true),
		Opponent:     buildSideView(st.Combatant(viewer.Other()), false),
		DeckCount:    len(st.Deck),
		DiscardCount: len(st.Discard),
		Pending:      buildPendingView(st, viewer),
	}
	if st.Over {
		v.Over = true
		v.Winner = int(st.Winner)
		v.Result = st.Result
	}
	return v
}
