package game

import (
	"testing"

	"github.com/peterkuimelis/cardfield/internal/log"
)

// Poison ticks at the end of each of the victim's turns, three times for
// the vial, then wears off.
func TestPoisonTicksAndExpires(t *testing.T) {
	m, logger := newTestMatch(t)
	vial := give(t, m, 0, "poison_vial")
	give(t, m, 0, "dagger")

	mustPlay(t, m, 0, vial)

	// Four full round trips; the fourth must not tick.
	for i := 0; i < 4; i++ {
		mustEndTurn(t, m) // P1 ends, P2 active
		mustEndTurn(t, m) // P2 ends, poison ticks here
	}

	ticks := logger.EventsOfType(log.EventStatusTick)
	if len(ticks) != 3 {
		t.Fatalf("poison ticked %d times, want exactly 3", len(ticks))
	}
	if got := m.State.Combatant(1).HP; got != 31 {
		t.Errorf("victim HP = %d, want 31", got)
	}
	if len(logger.EventsOfType(log.EventStatusExpired)) != 1 {
		t.Error("expected one StatusExpired event")
	}
	if len(m.State.Combatant(1).Statuses) != 0 {
		t.Error("expired status should be removed")
	}
}

func TestPoisonCanBeLethal(t *testing.T) {
	m, logger := newTestMatch(t)
	vial := give(t, m, 0, "poison_vial")
	give(t, m, 0, "dagger")
	m.State.Combatant(1).HP = 3

	mustPlay(t, m, 0, vial)
	mustEndTurn(t, m) // P1 ends
	mustEndTurn(t, m) // P2 ends, poison kills

	if !m.State.Over {
		t.Fatal("match should be over")
	}
	if m.State.Winner != 0 {
		t.Errorf("winner = %v, want P1", m.State.Winner)
	}
	if len(logger.EventsOfType(log.EventWin)) != 1 {
		t.Error("expected a Win event")
	}
}

func TestTimedBuffCountsDown(t *testing.T) {
	m, logger := newTestMatch(t)
	c := m.State.Combatant(0)
	c.Buffs = append(c.Buffs, Buff{Kind: BuffDefenseBonus, Value: 2, Turns: 2})

	mustEndTurn(t, m) // P1's first upkeep
	if len(c.Buffs) != 1 {
		t.Fatal("buff should survive its first upkeep")
	}
	mustEndTurn(t, m) // P2
	mustEndTurn(t, m) // P1's second upkeep, buff expires

	if len(c.Buffs) != 0 {
		t.Error("timed buff should have expired")
	}
	if len(logger.EventsOfType(log.EventStatusExpired)) != 1 {
		t.Error("expected a StatusExpired event")
	}
}

func TestConsumableBuffIgnoredByUpkeep(t *testing.T) {
	m, _ := newTestMatch(t)
	c := m.State.Combatant(0)
	c.Buffs = append(c.Buffs, Buff{Kind: BuffDodge, Value: 1})

	for i := 0; i < 6; i++ {
		mustEndTurn(t, m)
	}
	if len(c.Buffs) != 1 {
		t.Error("consumed-on-use buffs must not time out")
	}
}

func TestManaGrantOnTurnChange(t *testing.T) {
	m, logger := newTestMatch(t)

	mustEndTurn(t, m)
	if got := m.State.Combatant(1).Mana; got != 12 {
		t.Errorf("P2 mana = %d, want 12", got)
	}
	if m.State.Turn != 2 || m.State.Active != 1 {
		t.Errorf("turn/active = %d/%v, want 2/P2", m.State.Turn, m.State.Active)
	}
	gains := logger.EventsOfType(log.EventManaGain)
	if len(gains) != 1 {
		t.Fatal("expected one ManaGain event")
	}
	if gains[0].Side != 1 {
		t.Errorf("mana gain side = %d, want 1", gains[0].Side)
	}
}
