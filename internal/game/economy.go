package game

import (
	"fmt"

	"github.com/peterkuimelis/cardfield/internal/log"
)

// openPurchase starts a buy offer: a random card from the foe's hand is
// picked and priced, then the buyer confirms or declines. The action card
// stays in the buyer's hand until the offer resolves.
func (m *Match) openPurchase(side Side, source *CardInstance) (Outcome, error) {
	st := m.State
	foe := side.Other()
	seller := st.Combatant(foe)

	if len(seller.Hand) == 0 {
		st.Combatant(side).RemoveFromHand(source.ID)
		m.discard(source)
		m.log(log.NewNoTargetEvent(st.Turn, int(side), source.Card.Name,
			fmt.Sprintf("%s has no cards to sell", foe)))
		m.replenish(side, source.Card)
		return Outcome{Message: fmt.Sprintf("%s has nothing to buy", foe)}, nil
	}

	target := seller.Hand[m.rng.Intn(len(seller.Hand))]
	price := PriceOf(target.Card)

	st.Pending = &PendingPurchase{
		Buyer:  side,
		Seller: foe,
		Card:   target,
		Price:  price,
		source: source,
	}
	st.Phase = PhaseAwaitingPurchase
	m.log(log.NewPurchaseOfferEvent(st.Turn, int(side), target.Card.Name, price))

	return Outcome{
		Message: fmt.Sprintf("%s for sale at %d gold", target.Card.Name, price),
	}, nil
}

// ConfirmPurchase settles the pending buy offer. Declining, an unaffordable
// price or a full buyer hand all void the offer; the action card is spent
// either way.
func (m *Match) ConfirmPurchase(accept bool) (Outcome, error) {
	st := m.State
	pending, ok := st.Pending.(*PendingPurchase)
	if !ok || st.Phase != PhaseAwaitingPurchase {
		return Outcome{}, ErrInvalidPhase
	}

	buyer := st.Combatant(pending.Buyer)
	seller := st.Combatant(pending.Seller)

	buyer.RemoveFromHand(pending.source.ID)
	m.discard(pending.source)

	var out Outcome
	switch {
	case !accept:
		m.log(log.NewPurchaseVoidedEvent(st.Turn, int(pending.Buyer), "declined"))
		out = Outcome{Message: "purchase declined"}

	case buyer.Gold < pending.Price:
		m.log(log.NewPurchaseVoidedEvent(st.Turn, int(pending.Buyer), "insufficient gold"))
		out = Outcome{Message: "not enough gold"}

	case len(buyer.Hand) >= m.Balance.HandLimit:
		m.log(log.NewPurchaseVoidedEvent(st.Turn, int(pending.Buyer), "hand is full"))
		out = Outcome{Message: "hand is full"}

	default:
		seller.RemoveFromHand(pending.Card.ID)
		buyer.Hand = append(buyer.Hand, pending.Card)
		buyer.Gold -= pending.Price
		seller.Gold += pending.Price
		m.log(log.NewPurchaseCompleteEvent(st.Turn, int(pending.Buyer), pending.Card.Card.Name, pending.Price))
		out = Outcome{Message: fmt.Sprintf("bought %s for %d gold", pending.Card.Card.Name, pending.Price)}
	}

	st.Pending = nil
	st.Phase = PhaseMain
	m.replenish(pending.Buyer, pending.source.Card)
	return out, nil
}

// openSale starts a forced sale: the seller will pick one of their own
// cards to push onto the foe for its market price.
func (m *Match) openSale(side Side, source *CardInstance) (Outcome, error) {
	st := m.State
	c := st.Combatant(side)

	// The action card itself is not sellable, so the hand needs at least
	// one other card.
	if len(c.Hand) <= 1 {
		c.RemoveFromHand(source.ID)
		m.discard(source)
		m.log(log.NewNoTargetEvent(st.Turn, int(side), source.Card.Name,
			fmt.Sprintf("%s has nothing to sell", side)))
		m.replenish(side, source.Card)
		return Outcome{Message: "nothing to sell"}, nil
	}

	st.Pending = &PendingSale{
		Seller: side,
		Buyer:  side.Other(),
		source: source,
	}
	st.Phase = PhaseAwaitingSale
	m.log(log.NewSaleOfferEvent(st.Turn, int(side)))

	return Outcome{Message: fmt.Sprintf("%s picks a card to sell", side)}, nil
}

// ConfirmSale settles the pending sale with the seller's chosen card, or
// cancels it when cardID is empty. The buyer cannot refuse, but an empty
// purse or a full hand voids the deal.
func (m *Match) ConfirmSale(cardID string) (Outcome, error) {
	st := m.State
	pending, ok := st.Pending.(*PendingSale)
	if !ok || st.Phase != PhaseAwaitingSale {
		return Outcome{}, ErrInvalidPhase
	}

	seller := st.Combatant(pending.Seller)
	buyer := st.Combatant(pending.Buyer)

	// The action card itself cannot be the sold card. A pick that is not
	// in the seller's hand voids the sale rather than erroring.
	var card *CardInstance
	reason := "cancelled"
	if cardID != "" {
		if cardID != pending.source.ID {
			card = seller.FindInHand(cardID)
		}
		if card == nil {
			reason = "no such card"
		}
	}

	seller.RemoveFromHand(pending.source.ID)
	m.discard(pending.source)

	var out Outcome
	switch {
	case card == nil:
		m.log(log.NewSaleVoidedEvent(st.Turn, int(pending.Seller), reason))
		out = Outcome{Message: fmt.Sprintf("sale voided (%s)", reason)}

	case buyer.Gold < PriceOf(card.Card):
		m.log(log.NewSaleVoidedEvent(st.Turn, int(pending.Seller), "buyer cannot afford it"))
		out = Outcome{Message: "buyer cannot afford it"}

	case len(buyer.Hand) >= m.Balance.HandLimit:
		m.log(log.NewSaleVoidedEvent(st.Turn, int(pending.Seller), "buyer's hand is full"))
		out = Outcome{Message: "buyer's hand is full"}

	default:
		price := PriceOf(card.Card)
		seller.RemoveFromHand(card.ID)
		buyer.Hand = append(buyer.Hand, card)
		buyer.Gold -= price
		seller.Gold += price
		m.log(log.NewSaleCompleteEvent(st.Turn, int(pending.Seller), card.Card.Name, price))
		out = Outcome{Message: fmt.Sprintf("sold %s for %d gold", card.Card.Name, price)}
	}

	st.Pending = nil
	st.Phase = PhaseMain
	m.replenish(pending.Seller, pending.source.Card)
	return out, nil
}
