package game

import "github.com/peterkuimelis/cardfield/internal/log"

// tickStatusEffects runs end-of-turn upkeep for a side: poison ticks and
// timed buffs count down, expiring at zero. Consumed-on-use buffs
// (Turns == 0) are untouched here.
func (m *Match) tickStatusEffects(side Side) {
	st := m.State
	c := st.Combatant(side)

	remaining := c.Statuses[:0]
	for _, s := range c.Statuses {
		if st.Over {
			remaining = append(remaining, s)
			continue
		}
		m.log(log.NewStatusTickEvent(st.Turn, int(side), s.Kind.String(), s.Damage))
		m.applyDamage(side, s.Damage, s.Kind.String())

		s.Turns--
		if s.Turns <= 0 {
			m.log(log.NewStatusExpiredEvent(st.Turn, int(side), s.Kind.String()))
			continue
		}
		remaining = append(remaining, s)
	}
	c.Statuses = remaining

	buffs := c.Buffs[:0]
	for _, b := range c.Buffs {
		if b.Turns > 0 {
			b.Turns--
			if b.Turns == 0 {
				m.log(log.NewStatusExpiredEvent(st.Turn, int(side), b.Kind.String()))
				continue
			}
		}
		buffs = append(buffs, b)
	}
	c.Buffs = buffs
}
