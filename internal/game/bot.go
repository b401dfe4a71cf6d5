package game

import (
	"fmt"
	"math/rand"
)

// ChooseCard is the scripted side's play heuristic. Low HP reaches for the
// biggest heal; otherwise the hardest-hitting weapon, then any other damage
// source, then a random affordable card. Returns nil when nothing in hand
// is affordable.
func ChooseCard(c *Combatant, rng *rand.Rand) *CardInstance {
	var affordable []*CardInstance
	for _, ci := range c.Hand {
		if ci.Card.ManaCost <= c.Mana {
			affordable = append(affordable, ci)
		}
	}
	if len(affordable) == 0 {
		return nil
	}

	if c.HP < 20 {
		if heal := bestHeal(affordable, CardTypeItem); heal != nil {
			return heal
		}
		if heal := bestHeal(affordable, CardTypeMiracle); heal != nil {
			return heal
		}
	}

	var weapon *CardInstance
	for _, ci := range affordable {
		if ci.Card.Type != CardTypeWeapon {
			continue
		}
		if weapon == nil || ci.Card.Attack > weapon.Card.Attack {
			weapon = ci
		}
	}
	if weapon != nil {
		return weapon
	}

	for _, t := range []CardType{CardTypeItem, CardTypeMiracle} {
		for _, ci := range affordable {
			if ci.Card.Type == t && ci.Card.Attack > 0 {
				return ci
			}
		}
	}

	return affordable[rng.Intn(len(affordable))]
}

// bestHeal returns the strongest healing card of the given type, or nil.
func bestHeal(hand []*CardInstance, t CardType) *CardInstance {
	var best *CardInstance
	for _, ci := range hand {
		if ci.Card.Type != t || ci.Card.Heal == 0 {
			continue
		}
		if best == nil || ci.Card.Heal > best.Card.Heal {
			best = ci
		}
	}
	return best
}

// botDefense picks the scripted defender's block: equipped armor is free,
// so prefer it by declining; otherwise commit the sturdiest armor in hand.
func (m *Match) botDefense(side Side) string {
	c := m.State.Combatant(side)
	if c.Armor != nil {
		return ""
	}
	var best *CardInstance
	for _, ci := range c.Hand {
		if ci.Card.Type != CardTypeArmor {
			continue
		}
		if best == nil || ci.Card.Defense > best.Card.Defense {
			best = ci
		}
	}
	if best == nil {
		return ""
	}
	return best.ID
}

// AutoTurn plays one full turn for the scripted active side: pick a card,
// settle any offer it opened, end the turn. When the play leaves an attack
// waiting on a human defender the turn stays open and the caller follows up
// with ResolveAttack and EndTurn.
func (m *Match) AutoTurn() (Outcome, error) {
	st := m.State
	if st.Over || st.Phase != PhaseMain {
		return Outcome{}, ErrInvalidPhase
	}
	c := st.Combatant(st.Active)
	if !c.Scripted {
		return Outcome{}, ErrOutOfTurn
	}

	var out Outcome
	if choice := ChooseCard(c, m.rng); choice != nil {
		var err error
		out, err = m.PlayCard(st.Active, choice.ID)
		if err != nil {
			return Outcome{}, err
		}
	} else {
		out = Outcome{Message: fmt.Sprintf("%s passes", st.Active)}
	}

	// Offers the scripted side opened resolve on the spot: buys are always
	// accepted, sales push out the first other card in hand.
	switch p := st.Pending.(type) {
	case *PendingPurchase:
		if _, err := m.ConfirmPurchase(true); err != nil {
			return Outcome{}, err
		}
	case *PendingSale:
		var pick string
		for _, ci := range c.Hand {
			if ci.ID != p.source.ID {
				pick = ci.ID
				break
			}
		}
		if _, err := m.ConfirmSale(pick); err != nil {
			return Outcome{}, err
		}
	}

	if out.NeedDefense || st.Over {
		return out, nil
	}
	if err := m.EndTurn(); err != nil {
		return Outcome{}, err
	}
	return out, nil
}
