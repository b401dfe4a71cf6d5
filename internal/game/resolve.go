package game

import (
	"fmt"

	"github.com/peterkuimelis/cardfield/internal/log"
)

// PlayCard plays a hand card during the owner's main phase. Mana is debited
// up front; the effect dispatches on card type. Weapons park a pending
// attack instead of resolving immediately.
func (m *Match) PlayCard(side Side, instanceID string) (Outcome, error) {
	st := m.State
	if st.Over || st.Phase != PhaseMain {
		return Outcome{}, ErrInvalidPhase
	}
	if side != st.Active {
		return Outcome{}, ErrOutOfTurn
	}

	c := st.Combatant(side)
	ci := c.FindInHand(instanceID)
	if ci == nil {
		return Outcome{}, ErrCardNotFound
	}
	if ci.Card.ManaCost > c.Mana {
		return Outcome{}, ErrInsufficientMana
	}
	c.Mana -= ci.Card.ManaCost

	switch ci.Card.Type {
	case CardTypeWeapon:
		return m.playWeapon(side, ci)
	case CardTypeArmor:
		return m.playArmor(side, ci)
	case CardTypeMiracle:
		return m.playMiracle(side, ci)
	case CardTypeItem:
		return m.playItem(side, ci)
	case CardTypeAction:
		return m.playAction(side, ci)
	default:
		return Outcome{}, fmt.Errorf("unhandled card type %v", ci.Card.Type)
	}
}

// attackPower is a card's outgoing damage after consuming any pending
// attack bonus.
func (m *Match) attackPower(side Side, card *Card) int {
	dmg := card.Attack
	if b, ok := m.State.Combatant(side).ConsumeBuff(BuffAttackBonus); ok {
		dmg += b.Value
		m.log(log.NewBuffEvent(m.State.Turn, int(side), card.Name,
			fmt.Sprintf("%s's attack bonus adds %d damage", side, b.Value)))
	}
	return dmg
}

// playWeapon declares an attack: damage is computed now and parked until the
// defender commits or declines a block. The weapon stays in the attacker's
// hand until resolution so the conservation count never dips.
func (m *Match) playWeapon(side Side, ci *CardInstance) (Outcome, error) {
	st := m.State
	defender := side.Other()
	dmg := m.attackPower(side, ci.Card)

	st.Pending = &PendingAttack{
		Attacker: side,
		Defender: defender,
		Card:     ci,
		Damage:   dmg,
	}
	st.Phase = PhaseAwaitingDefense
	m.log(log.NewAttackDeclareEvent(st.Turn, int(side), ci.Card.Name, dmg))

	if st.Combatant(defender).Scripted {
		return m.ResolveAttack(m.botDefense(defender))
	}
	// With no armor in hand there is no choice to make; equipped armor
	// still blocks automatically during resolution.
	if !st.Combatant(defender).HasArmorInHand() {
		return m.ResolveAttack("")
	}
	return Outcome{
		Message:     fmt.Sprintf("%s attacks with %s for %d damage", side, ci.Card.Name, dmg),
		Damage:      dmg,
		NeedDefense: true,
	}, nil
}

// playArmor equips the card. A previous occupant of the slot moves to the
// discard pile; the instance count stays constant either way.
func (m *Match) playArmor(side Side, ci *CardInstance) (Outcome, error) {
	st := m.State
	c := st.Combatant(side)

	c.RemoveFromHand(ci.ID)
	if c.Armor != nil {
		m.discard(c.Armor)
	}
	c.Armor = ci
	m.log(log.NewEquipEvent(st.Turn, int(side), ci.Card.Name))

	m.replenish(side, ci.Card)
	return Outcome{Message: fmt.Sprintf("%s equips %s", side, ci.Card.Name)}, nil
}

func (m *Match) playMiracle(side Side, ci *CardInstance) (Outcome, error) {
	st := m.State
	c := st.Combatant(side)
	foe := side.Other()
	card := ci.Card

	c.RemoveFromHand(ci.ID)
	m.discard(ci)

	var out Outcome
	switch {
	case card.Special == SpecialAOE:
		dmg := m.attackPower(side, card)
		m.log(log.NewPlayEvent(st.Turn, int(side), card.Name,
			fmt.Sprintf("%s unleashes %s on everyone", side, card.Name)))
		m.applyDamage(foe, m.armorMitigate(foe, dmg), card.Name)
		if !st.Over {
			m.applyDamage(side, dmg, card.Name)
		}
		out = Outcome{Message: fmt.Sprintf("%s hits both sides for %d", card.Name, dmg), Damage: dmg}

	case card.Attack > 0:
		dmg := m.attackPower(side, card)
		if card.Special != SpecialUnblockable {
			dmg = m.armorMitigate(foe, dmg)
		}
		m.log(log.NewPlayEvent(st.Turn, int(side), card.Name, ""))
		m.applyDamage(foe, dmg, card.Name)
		out = Outcome{Message: fmt.Sprintf("%s strikes for %d", card.Name, dmg), Damage: dmg}

	case card.Heal > 0:
		m.log(log.NewPlayEvent(st.Turn, int(side), card.Name, ""))
		healed := m.heal(side, card.Heal, card.Name)
		out = Outcome{Message: fmt.Sprintf("%s restores %d HP", card.Name, healed), Heal: healed}

	case card.Special == SpecialExtraTurn:
		st.ExtraTurn = true
		m.log(log.NewPlayEvent(st.Turn, int(side), card.Name,
			fmt.Sprintf("%s stops time for an extra turn", side)))
		out = Outcome{Message: fmt.Sprintf("%s will act again", side)}

	default:
		m.log(log.NewPlayEvent(st.Turn, int(side), card.Name, ""))
		out = Outcome{Message: fmt.Sprintf("%s uses %s", side, card.Name)}
	}

	if !st.Over {
		m.replenish(side, card)
	}
	return out, nil
}

func (m *Match) playItem(side Side, ci *CardInstance) (Outcome, error) {
	st := m.State
	c := st.Combatant(side)
	foe := side.Other()
	card := ci.Card

	c.RemoveFromHand(ci.ID)
	m.discard(ci)

	// Exactly one branch applies, checked in priority order: heal, buff,
	// direct damage, poison.
	var out Outcome
	switch {
	case card.Heal > 0:
		m.log(log.NewPlayEvent(st.Turn, int(side), card.Name, ""))
		healed := m.heal(side, card.Heal, card.Name)
		out = Outcome{Message: fmt.Sprintf("%s restores %d HP", card.Name, healed), Heal: healed}

	case card.BuffAttack > 0:
		c.Buffs = append(c.Buffs, Buff{Kind: BuffAttackBonus, Value: card.BuffAttack})
		m.log(log.NewBuffEvent(st.Turn, int(side), card.Name,
			fmt.Sprintf("%s's next attack deals +%d damage", side, card.BuffAttack)))
		out = Outcome{Message: fmt.Sprintf("next attack +%d", card.BuffAttack)}

	case card.BuffDefense > 0:
		c.Buffs = append(c.Buffs, Buff{Kind: BuffDefenseBonus, Value: card.BuffDefense})
		m.log(log.NewBuffEvent(st.Turn, int(side), card.Name,
			fmt.Sprintf("%s's next block stops +%d damage", side, card.BuffDefense)))
		out = Outcome{Message: fmt.Sprintf("next block +%d", card.BuffDefense)}

	case card.Attack > 0:
		dmg := m.attackPower(side, card)
		m.log(log.NewPlayEvent(st.Turn, int(side), card.Name, ""))
		m.applyDamage(foe, dmg, card.Name)
		out = Outcome{Message: fmt.Sprintf("%s blasts for %d", card.Name, dmg), Damage: dmg}

	case card.Special == SpecialPoison:
		m.log(log.NewPlayEvent(st.Turn, int(side), card.Name, ""))
		st.Combatant(foe).Statuses = append(st.Combatant(foe).Statuses, StatusEffect{
			Kind:   StatusPoison,
			Damage: card.PoisonDamage,
			Turns:  card.PoisonTurns,
		})
		m.log(log.NewStatusAppliedEvent(st.Turn, int(foe), StatusPoison.String(), card.PoisonDamage, card.PoisonTurns))
		out = Outcome{Message: fmt.Sprintf("%s is poisoned", foe)}

	default:
		m.log(log.NewPlayEvent(st.Turn, int(side), card.Name, ""))
		out = Outcome{Message: fmt.Sprintf("%s uses %s", side, card.Name)}
	}

	if !st.Over {
		m.replenish(side, card)
	}
	return out, nil
}

func (m *Match) playAction(side Side, ci *CardInstance) (Outcome, error) {
	st := m.State
	c := st.Combatant(side)
	foe := side.Other()
	card := ci.Card

	// Buy and sell hold the source card in the pending record until the
	// offer resolves; everything else discards immediately.
	switch card.Special {
	case SpecialBuy:
		return m.openPurchase(side, ci)
	case SpecialSell:
		return m.openSale(side, ci)
	}

	c.RemoveFromHand(ci.ID)
	m.discard(ci)

	var out Outcome
	switch card.Special {
	case SpecialDodge:
		c.Buffs = append(c.Buffs, Buff{Kind: BuffDodge, Value: 1})
		m.log(log.NewBuffEvent(st.Turn, int(side), card.Name,
			fmt.Sprintf("%s will dodge the next attack", side)))
		out = Outcome{Message: fmt.Sprintf("%s prepares to dodge", side)}

	case SpecialCounter:
		c.Buffs = append(c.Buffs, Buff{Kind: BuffCounterStance, Value: 1})
		m.log(log.NewBuffEvent(st.Turn, int(side), card.Name,
			fmt.Sprintf("%s takes a counter stance", side)))
		out = Outcome{Message: fmt.Sprintf("%s prepares to counter", side)}

	case SpecialDiscard:
		target := st.Combatant(foe)
		if len(target.Hand) == 0 {
			m.log(log.NewNoTargetEvent(st.Turn, int(side), card.Name,
				fmt.Sprintf("%s has no cards to discard", foe)))
			out = Outcome{Message: fmt.Sprintf("%s has nothing to discard", foe)}
			break
		}
		victim := target.Hand[m.rng.Intn(len(target.Hand))]
		target.RemoveFromHand(victim.ID)
		m.discard(victim)
		m.log(log.NewForcedDiscardEvent(st.Turn, int(foe), victim.Card.Name))
		out = Outcome{Message: fmt.Sprintf("%s discards %s", foe, victim.Card.Name)}

	case SpecialDraw:
		m.log(log.NewPlayEvent(st.Turn, int(side), card.Name, ""))
		n := m.Draw(side, card.DrawCount)
		out = Outcome{Message: fmt.Sprintf("%s draws %d", side, n)}

	case SpecialSteal:
		target := st.Combatant(foe)
		if len(target.Hand) == 0 {
			m.log(log.NewNoTargetEvent(st.Turn, int(side), card.Name,
				fmt.Sprintf("%s has no cards to steal", foe)))
			out = Outcome{Message: fmt.Sprintf("%s has nothing to steal", foe)}
			break
		}
		if len(c.Hand) >= m.Balance.HandLimit {
			m.log(log.NewNoTargetEvent(st.Turn, int(side), card.Name,
				fmt.Sprintf("%s's hand is full", side)))
			out = Outcome{Message: "hand is full"}
			break
		}
		loot := target.Hand[m.rng.Intn(len(target.Hand))]
		target.RemoveFromHand(loot.ID)
		c.Hand = append(c.Hand, loot)
		m.log(log.NewStealEvent(st.Turn, int(side), loot.Card.Name))
		out = Outcome{Message: fmt.Sprintf("%s steals %s", side, loot.Card.Name)}

	case SpecialSwapHP:
		own, opp := c.HP, st.Combatant(foe).HP
		c.HP, st.Combatant(foe).HP = opp, own
		m.log(log.NewHPSwapEvent(st.Turn, int(side), own, opp))
		out = Outcome{Message: fmt.Sprintf("HP swapped: %d ↔ %d", own, opp)}

	default:
		m.log(log.NewPlayEvent(st.Turn, int(side), card.Name, ""))
		out = Outcome{Message: fmt.Sprintf("%s uses %s", side, card.Name)}
	}

	if !st.Over {
		m.replenish(side, card)
	}
	return out, nil
}
