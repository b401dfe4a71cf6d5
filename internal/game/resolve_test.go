package game

import (
	"errors"
	"testing"

	"github.com/peterkuimelis/cardfield/internal/log"
)

func TestPlayCardGuards(t *testing.T) {
	m, _ := newTestMatch(t)
	sword := give(t, m, 1, "sword")

	// P1 is active; P2 may not act.
	if _, err := m.PlayCard(1, sword.ID); !errors.Is(err, ErrOutOfTurn) {
		t.Errorf("expected ErrOutOfTurn, got %v", err)
	}

	if _, err := m.PlayCard(0, "no-such-instance"); !errors.Is(err, ErrCardNotFound) {
		t.Errorf("expected ErrCardNotFound, got %v", err)
	}

	lightning := give(t, m, 0, "lightning")
	m.State.Combatant(0).Mana = 3 // costs 4
	if _, err := m.PlayCard(0, lightning.ID); !errors.Is(err, ErrInsufficientMana) {
		t.Errorf("expected ErrInsufficientMana, got %v", err)
	}
	if m.State.Combatant(0).Mana != 3 {
		t.Errorf("rejected play must not debit mana, have %d", m.State.Combatant(0).Mana)
	}
}

func TestWeaponParksPendingAttack(t *testing.T) {
	m, logger := newTestMatch(t)
	sword := give(t, m, 0, "sword")
	give(t, m, 1, "shield") // hand armor opens the defense window

	out := mustPlay(t, m, 0, sword)
	if !out.NeedDefense {
		t.Error("weapon play against a human defender must wait for defense")
	}
	if m.State.Phase != PhaseAwaitingDefense {
		t.Errorf("phase = %v, want awaiting defense", m.State.Phase)
	}

	pending, ok := m.State.Pending.(*PendingAttack)
	if !ok {
		t.Fatal("expected a PendingAttack")
	}
	if pending.Damage != 5 {
		t.Errorf("parked damage = %d, want 5", pending.Damage)
	}
	// The weapon stays in hand until resolution.
	if m.State.Combatant(0).FindInHand(sword.ID) == nil {
		t.Error("weapon left the hand before resolution")
	}
	if len(logger.EventsOfType(log.EventAttackDeclare)) != 1 {
		t.Error("expected an AttackDeclare event")
	}

	// No other play is legal while the attack is pending.
	dagger := give(t, m, 0, "dagger")
	if _, err := m.PlayCard(0, dagger.ID); !errors.Is(err, ErrInvalidPhase) {
		t.Errorf("expected ErrInvalidPhase, got %v", err)
	}
}

func TestWeaponResolvesImmediatelyWithoutDefenseOptions(t *testing.T) {
	m, _ := newTestMatch(t)
	sword := give(t, m, 0, "sword")
	give(t, m, 1, "potion") // no armor in hand, nothing to decide

	out := mustPlay(t, m, 0, sword)
	if out.NeedDefense {
		t.Error("no defense window without armor in the defender's hand")
	}
	if got := m.State.Combatant(1).HP; got != 35 {
		t.Errorf("defender HP = %d, want 35", got)
	}
	if m.State.Phase != PhaseMain {
		t.Errorf("phase = %v, want main", m.State.Phase)
	}
}

func TestArmorEquipReplacesPredecessor(t *testing.T) {
	m, logger := newTestMatch(t)
	shield := give(t, m, 0, "shield")
	plate := give(t, m, 0, "plate_mail")
	give(t, m, 0, "dagger") // keep a damage source so no catch-up draw fires

	total := m.State.countInstances()

	mustPlay(t, m, 0, shield)
	if m.State.Combatant(0).Armor != shield {
		t.Fatal("shield not equipped")
	}

	mustPlay(t, m, 0, plate)
	if m.State.Combatant(0).Armor != plate {
		t.Fatal("plate mail not equipped")
	}
	// The replaced shield goes to the discard pile, not into the void.
	if len(m.State.Discard) != 1 || m.State.Discard[0] != shield {
		t.Error("replaced armor should be in the discard pile")
	}
	if got := m.State.countInstances(); got != total {
		t.Errorf("instance count changed: %d -> %d", total, got)
	}
	if len(logger.EventsOfType(log.EventEquip)) != 2 {
		t.Error("expected two Equip events")
	}
}

func TestHealClampsToMaxHP(t *testing.T) {
	m, logger := newTestMatch(t)
	potion := give(t, m, 0, "potion")
	give(t, m, 0, "dagger")
	m.State.Combatant(0).HP = 38

	mustPlay(t, m, 0, potion)
	if got := m.State.Combatant(0).HP; got != 40 {
		t.Errorf("HP = %d, want 40 (clamped)", got)
	}
	heals := logger.EventsOfType(log.EventHeal)
	if len(heals) != 1 {
		t.Fatal("expected one Heal event")
	}
}

func TestBombDealsInlineDamage(t *testing.T) {
	m, _ := newTestMatch(t)
	bomb := give(t, m, 0, "bomb")
	give(t, m, 0, "dagger")

	out := mustPlay(t, m, 0, bomb)
	if out.NeedDefense {
		t.Error("item damage resolves inline, no defense window")
	}
	if got := m.State.Combatant(1).HP; got != 30 {
		t.Errorf("foe HP = %d, want 30", got)
	}
	if m.State.Pending != nil {
		t.Error("no pending operation expected")
	}
}

func TestPoisonVialAppliesStatus(t *testing.T) {
	m, logger := newTestMatch(t)
	vial := give(t, m, 0, "poison_vial")
	give(t, m, 0, "dagger")

	mustPlay(t, m, 0, vial)
	foe := m.State.Combatant(1)
	if len(foe.Statuses) != 1 {
		t.Fatal("expected one status effect on the foe")
	}
	s := foe.Statuses[0]
	if s.Kind != StatusPoison || s.Damage != 3 || s.Turns != 3 {
		t.Errorf("status = %+v, want poison 3x3", s)
	}
	if len(logger.EventsOfType(log.EventStatusApplied)) != 1 {
		t.Error("expected a StatusApplied event")
	}
}

func TestStrengthTonicBoostsNextAttack(t *testing.T) {
	m, _ := newTestMatch(t)
	tonic := give(t, m, 0, "strength_tonic")
	dagger := give(t, m, 0, "dagger")
	give(t, m, 1, "shield")

	mustPlay(t, m, 0, tonic)
	mustPlay(t, m, 0, dagger)

	pending, ok := m.State.Pending.(*PendingAttack)
	if !ok {
		t.Fatal("expected a PendingAttack")
	}
	if pending.Damage != 6 {
		t.Errorf("boosted damage = %d, want 6 (3 base + 3 bonus)", pending.Damage)
	}
	if len(m.State.Combatant(0).Buffs) != 0 {
		t.Error("attack bonus should be consumed by the declaration")
	}
}

func TestMiracleDebitsManaUpFront(t *testing.T) {
	m, _ := newTestMatch(t)
	blessing := give(t, m, 0, "divine_blessing") // 3 mana
	give(t, m, 0, "dagger")
	m.State.Combatant(0).HP = 20

	mustPlay(t, m, 0, blessing)
	if got := m.State.Combatant(0).Mana; got != 7 {
		t.Errorf("mana = %d, want 7", got)
	}
	if got := m.State.Combatant(0).HP; got != 35 {
		t.Errorf("HP = %d, want 35", got)
	}
}

func TestTimeStopGrantsExtraTurn(t *testing.T) {
	m, logger := newTestMatch(t)
	timeStop := give(t, m, 0, "time_stop")
	give(t, m, 0, "dagger")

	mustPlay(t, m, 0, timeStop)
	if !m.State.ExtraTurn {
		t.Fatal("extra turn not queued")
	}

	mustEndTurn(t, m)
	if m.State.Active != 0 {
		t.Error("the extra turn should keep P1 active")
	}
	if m.State.ExtraTurn {
		t.Error("extra turn flag should be spent")
	}
	if len(logger.EventsOfType(log.EventExtraTurn)) != 1 {
		t.Error("expected an ExtraTurn event")
	}

	mustEndTurn(t, m)
	if m.State.Active != 1 {
		t.Error("second EndTurn should pass to P2")
	}
}

func TestEarthquakeHitsBothSides(t *testing.T) {
	m, _ := newTestMatch(t)
	quake := give(t, m, 0, "earthquake")
	give(t, m, 0, "dagger")

	mustPlay(t, m, 0, quake)
	if got := m.State.Combatant(0).HP; got != 34 {
		t.Errorf("caster HP = %d, want 34", got)
	}
	if got := m.State.Combatant(1).HP; got != 34 {
		t.Errorf("foe HP = %d, want 34", got)
	}
}

func TestLightningIgnoresArmor(t *testing.T) {
	m, _ := newTestMatch(t)
	lightning := give(t, m, 0, "lightning")
	give(t, m, 0, "dagger")
	armor := give(t, m, 1, "holy_shield")
	foe := m.State.Combatant(1)
	foe.RemoveFromHand(armor.ID)
	foe.Armor = armor

	mustPlay(t, m, 0, lightning)
	if got := foe.HP; got != 32 {
		t.Errorf("foe HP = %d, want 32", got)
	}
	if foe.Armor == nil {
		t.Error("unblockable damage must not consume armor")
	}
}

func TestCardDrawAction(t *testing.T) {
	m, _ := newTestMatch(t)
	draw := give(t, m, 0, "card_draw")
	stack(t, m, "dagger", "dagger", "dagger")

	mustPlay(t, m, 0, draw)
	// 2 from the effect plus 1 replacement for the mana-cost play.
	if got := len(m.State.Combatant(0).Hand); got != 3 {
		t.Errorf("hand size = %d, want 3", got)
	}
	if got := m.State.Combatant(0).Mana; got != 9 {
		t.Errorf("mana = %d, want 9", got)
	}
}

func TestScrapForcesDiscard(t *testing.T) {
	m, logger := newTestMatch(t)
	scrap := give(t, m, 0, "scrap")
	give(t, m, 0, "dagger")
	victim := give(t, m, 1, "elixir")

	mustPlay(t, m, 0, scrap)
	if m.State.Combatant(1).FindInHand(victim.ID) != nil {
		t.Error("foe's only card should have been discarded")
	}
	if len(logger.EventsOfType(log.EventForcedDiscard)) != 1 {
		t.Error("expected a ForcedDiscard event")
	}
}

func TestScrapWithEmptyFoeHand(t *testing.T) {
	m, logger := newTestMatch(t)
	scrap := give(t, m, 0, "scrap")
	give(t, m, 0, "dagger")

	mustPlay(t, m, 0, scrap)
	if len(logger.EventsOfType(log.EventNoTarget)) != 1 {
		t.Error("expected a NoTarget event")
	}
	if m.State.Phase != PhaseMain {
		t.Error("a fizzled play must leave the main phase open")
	}
}

// No catalog card carries the steal tag, but the resolver supports it.
func TestStealAction(t *testing.T) {
	m, logger := newTestMatch(t)
	pickpocket := &Card{ID: "pickpocket", Name: "Pickpocket", Type: CardTypeAction, Special: SpecialSteal}
	ci := NewCardInstance(pickpocket)
	m.State.Combatant(0).Hand = append(m.State.Combatant(0).Hand, ci)
	give(t, m, 0, "dagger")
	loot := give(t, m, 1, "elixir")

	mustPlay(t, m, 0, ci)
	if m.State.Combatant(0).FindInHand(loot.ID) == nil {
		t.Error("stolen card should be in the thief's hand")
	}
	if len(m.State.Combatant(1).Hand) != 0 {
		t.Error("stolen card should have left the victim's hand")
	}
	if len(logger.EventsOfType(log.EventSteal)) != 1 {
		t.Error("expected a Steal event")
	}
}

func TestStealIntoFullHandVoids(t *testing.T) {
	m, logger := newTestMatch(t)
	pickpocket := &Card{ID: "pickpocket", Name: "Pickpocket", Type: CardTypeAction, Special: SpecialSteal}
	ci := NewCardInstance(pickpocket)
	m.State.Combatant(0).Hand = append(m.State.Combatant(0).Hand, ci)
	// Playing the action frees a slot, so overfill by one.
	for i := 0; i < m.Balance.HandLimit; i++ {
		give(t, m, 0, "dagger")
	}
	loot := give(t, m, 1, "elixir")

	mustPlay(t, m, 0, ci)
	if m.State.Combatant(1).FindInHand(loot.ID) == nil {
		t.Error("the victim keeps the card when the thief's hand is full")
	}
	if len(logger.EventsOfType(log.EventNoTarget)) != 1 {
		t.Error("expected a NoTarget event")
	}
}

func TestLifeSwap(t *testing.T) {
	m, logger := newTestMatch(t)
	swap := give(t, m, 0, "life_swap")
	give(t, m, 0, "dagger")
	m.State.Combatant(0).HP = 10
	m.State.Combatant(1).HP = 35

	mustPlay(t, m, 0, swap)
	if m.State.Combatant(0).HP != 35 || m.State.Combatant(1).HP != 10 {
		t.Errorf("HP after swap = %d/%d, want 35/10",
			m.State.Combatant(0).HP, m.State.Combatant(1).HP)
	}
	if len(logger.EventsOfType(log.EventHPSwap)) != 1 {
		t.Error("expected an HPSwap event")
	}
}

func TestReplenishWhenNoDamageSourceLeft(t *testing.T) {
	m, _ := newTestMatch(t)
	herb := give(t, m, 0, "herb")
	stack(t, m, "dagger", "dagger", "dagger", "dagger")
	m.State.Combatant(0).HP = 30

	mustPlay(t, m, 0, herb)
	// The hand emptied with no damage source, so 3 catch-up cards arrive.
	if got := len(m.State.Combatant(0).Hand); got != 3 {
		t.Errorf("hand size = %d, want 3 catch-up cards", got)
	}
}

func TestNoReplenishWhileDamageSourceHeld(t *testing.T) {
	m, _ := newTestMatch(t)
	herb := give(t, m, 0, "herb")
	give(t, m, 0, "dagger")
	stack(t, m, "dagger", "dagger")
	m.State.Combatant(0).HP = 30

	mustPlay(t, m, 0, herb)
	if got := len(m.State.Combatant(0).Hand); got != 1 {
		t.Errorf("hand size = %d, want 1 (no catch-up draw)", got)
	}
}
