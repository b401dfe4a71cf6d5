package game

import (
	"fmt"

	"github.com/peterkuimelis/cardfield/internal/log"
)

// armorMitigate spends the target's equipped armor against incoming spell
// damage and returns what gets through.
func (m *Match) armorMitigate(target Side, dmg int) int {
	c := m.State.Combatant(target)
	if c.Armor == nil || dmg <= 0 {
		return dmg
	}
	armor := c.Armor
	c.Armor = nil
	m.discard(armor)
	m.log(log.NewDiscardEvent(m.State.Turn, int(target), armor.Card.Name, "armor consumed"))

	dmg -= armor.Card.Defense
	if dmg < 0 {
		dmg = 0
	}
	return dmg
}

// ResolveAttack settles the pending attack. defenseID names an armor card
// from the defender's hand, or "" to decline, in which case equipped armor
// blocks automatically. Mitigation order: dodge, committed card or equipped
// armor, defense bonus. Recoil hits the attacker whatever the outcome.
func (m *Match) ResolveAttack(defenseID string) (Outcome, error) {
	st := m.State
	pending, ok := st.Pending.(*PendingAttack)
	if !ok || st.Phase != PhaseAwaitingDefense {
		return Outcome{}, ErrInvalidPhase
	}

	def := st.Combatant(pending.Defender)
	att := st.Combatant(pending.Attacker)
	weapon := pending.Card

	var applied, blocked int
	if _, dodged := def.ConsumeBuff(BuffDodge); dodged {
		m.log(log.NewDodgeEvent(st.Turn, int(pending.Defender)))
		blocked = pending.Damage
	} else {
		block := 0
		blockName := ""
		if defenseID != "" {
			ci := def.FindInHand(defenseID)
			if ci == nil {
				return Outcome{}, ErrCardNotFound
			}
			if ci.Card.Type != CardTypeArmor {
				return Outcome{}, fmt.Errorf("%s is not a defense card: %w", ci.Card.Name, ErrCardNotFound)
			}
			def.RemoveFromHand(ci.ID)
			m.discard(ci)
			m.log(log.NewDiscardEvent(st.Turn, int(pending.Defender), ci.Card.Name, "used to block"))
			block = ci.Card.Defense
			blockName = ci.Card.Name
		}
		// Equipped armor stacks on top of a committed card but is only
		// spent when damage still remains.
		if def.Armor != nil && pending.Damage > block {
			armor := def.Armor
			def.Armor = nil
			m.discard(armor)
			m.log(log.NewDiscardEvent(st.Turn, int(pending.Defender), armor.Card.Name, "armor consumed"))
			block += armor.Card.Defense
			blockName = armor.Card.Name
		}

		if block > 0 {
			if b, hasBonus := def.ConsumeBuff(BuffDefenseBonus); hasBonus {
				block += b.Value
				m.log(log.NewBuffEvent(st.Turn, int(pending.Defender), blockName,
					fmt.Sprintf("%s's defense bonus blocks %d more", pending.Defender, b.Value)))
			}
		}

		applied = pending.Damage - block
		if applied < 0 {
			applied = 0
		}
		blocked = pending.Damage - applied

		reason := weapon.Card.Name
		if blocked > 0 {
			reason = fmt.Sprintf("%s, %d blocked by %s", weapon.Card.Name, blocked, blockName)
		}
		m.applyDamage(pending.Defender, applied, reason)

		if applied > 0 && !st.Over {
			if _, counters := def.ConsumeBuff(BuffCounterStance); counters {
				m.log(log.NewCounterEvent(st.Turn, int(pending.Defender), applied))
				m.applyDamage(pending.Attacker, applied, "counter")
			}
		}
	}

	if weapon.Card.SelfDamage > 0 && !st.Over {
		m.applyDamage(pending.Attacker, weapon.Card.SelfDamage, fmt.Sprintf("%s recoil", weapon.Card.Name))
	}

	att.RemoveFromHand(weapon.ID)
	m.discard(weapon)

	st.Pending = nil
	if !st.Over {
		st.Phase = PhaseMain
		m.replenish(pending.Attacker, weapon.Card)
	}

	return Outcome{
		Message: fmt.Sprintf("%s takes %d damage (%d blocked)", pending.Defender, applied, blocked),
		Damage:  applied,
		Blocked: blocked,
	}, nil
}
