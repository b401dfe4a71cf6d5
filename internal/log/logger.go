package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging match events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// sideName returns "P1" or "P2" for display.
func sideName(s int) string {
	return fmt.Sprintf("P%d", s+1)
}

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	return fmt.Sprintf("T%-2d %-16s| %s", e.Turn, e.Type, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewTurnEvent(turn int, side int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    side,
		Type:    EventNewTurn,
		Details: fmt.Sprintf("=== Turn %d (%s) ===", turn, sideName(side)),
	}
}

func NewExtraTurnEvent(turn int, side int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    side,
		Type:    EventExtraTurn,
		Details: fmt.Sprintf("%s takes an extra turn", sideName(side)),
	}
}

func NewDrawEvent(turn int, side int, count int) GameEvent {
	noun := "cards"
	if count == 1 {
		noun = "card"
	}
	return GameEvent{
		Turn:    turn,
		Side:    side,
		Type:    EventDraw,
		Details: fmt.Sprintf("%s draws %d %s", sideName(side), count, noun),
	}
}

func NewReshuffleEvent(turn int, count int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventReshuffle,
		Details: fmt.Sprintf("discard pile shuffled back into the deck (%d cards)", count),
	}
}

func NewPlayEvent(turn int, side int, cardName string, details string) GameEvent {
	if details == "" {
		details = fmt.Sprintf("%s uses %s", sideName(side), cardName)
	}
	return GameEvent{
		Turn:    turn,
		Side:    side,
		Type:    EventPlay,
		Card:    cardName,
		Details: details,
	}
}

func NewEquipEvent(turn int, side int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    side,
		Type:    EventEquip,
		Card:    cardName,
		Details: fmt.Sprintf("%s equips %s", sideName(side), cardName),
	}
}

func NewAttackDeclareEvent(turn int, side int, cardName string, damage int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    side,
		Type:    EventAttackDeclare,
		Card:    cardName,
		Details: fmt.Sprintf("%s attacks with %s (%d damage)", sideName(side), cardName, damage),
	}
}

func NewDodgeEvent(turn int, side int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    side,
		Type:    EventDodge,
		Details: fmt.Sprintf("%s dodges the attack", sideName(side)),
	}
}

func NewCounterEvent(turn int, side int, damage int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    side,
		Type:    EventCounter,
		Details: fmt.Sprintf("%s counters for %d damage", sideName(side), damage),
	}
}

func NewDamageEvent(turn int, side int, oldHP, newHP int, reason string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    side,
		Type:    EventDamage,
		Details: fmt.Sprintf("%s HP: %d → %d (%s)", sideName(side), oldHP, newHP, reason),
	}
}

func NewHealEvent(turn int, side int, amount int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    side,
		Type:    EventHeal,
		Card:    cardName,
		Details: fmt.Sprintf("%s heals %d HP (%s)", sideName(side), amount, cardName),
	}
}

func NewBuffEvent(turn int, side int, cardName string, details string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    side,
		Type:    EventBuff,
		Card:    cardName,
		Details: details,
	}
}

func NewStatusAppliedEvent(turn int, side int, status string, damage, turns int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    side,
		Type:    EventStatusApplied,
		Details: fmt.Sprintf("%s is afflicted with %s (%d damage for %d turns)", sideName(side), status, damage, turns),
	}
}

func NewStatusTickEvent(turn int, side int, status string, damage int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    side,
		Type:    EventStatusTick,
		Details: fmt.Sprintf("%s takes %d %s damage", sideName(side), damage, status),
	}
}

func NewStatusExpiredEvent(turn int, side int, status string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    side,
		Type:    EventStatusExpired,
		Details: fmt.Sprintf("%s's %s wears off", sideName(side), status),
	}
}

func NewDiscardEvent(turn int, side int, cardName string, reason string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    side,
		Type:    EventDiscard,
		Card:    cardName,
		Details: fmt.Sprintf("%s is discarded (%s)", cardName, reason),
	}
}

func NewForcedDiscardEvent(turn int, side int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    side,
		Type:    EventForcedDiscard,
		Card:    cardName,
		Details: fmt.Sprintf("%s is forced to discard %s", sideName(side), cardName),
	}
}

func NewStealEvent(turn int, side int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    side,
		Type:    EventSteal,
		Card:    cardName,
		Details: fmt.Sprintf("%s steals %s", sideName(side), cardName),
	}
}

func NewPurchaseOfferEvent(turn int, buyer int, cardName string, price int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    buyer,
		Type:    EventPurchaseOffer,
		Card:    cardName,
		Details: fmt.Sprintf("%s offers to buy %s for %d gold", sideName(buyer), cardName, price),
	}
}

func NewPurchaseCompleteEvent(turn int, buyer int, cardName string, price int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    buyer,
		Type:    EventPurchaseComplete,
		Card:    cardName,
		Details: fmt.Sprintf("%s buys %s for %d gold", sideName(buyer), cardName, price),
	}
}

func NewPurchaseVoidedEvent(turn int, buyer int, reason string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    buyer,
		Type:    EventPurchaseVoided,
		Details: fmt.Sprintf("purchase voided (%s)", reason),
	}
}

func NewSaleOfferEvent(turn int, seller int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    seller,
		Type:    EventSaleOffer,
		Details: fmt.Sprintf("%s opens a sale", sideName(seller)),
	}
}

func NewSaleCompleteEvent(turn int, seller int, cardName string, price int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    seller,
		Type:    EventSaleComplete,
		Card:    cardName,
		Details: fmt.Sprintf("%s sells %s for %d gold", sideName(seller), cardName, price),
	}
}

func NewSaleVoidedEvent(turn int, seller int, reason string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    seller,
		Type:    EventSaleVoided,
		Details: fmt.Sprintf("sale voided (%s)", reason),
	}
}

func NewManaGainEvent(turn int, side int, amount, total int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    side,
		Type:    EventManaGain,
		Details: fmt.Sprintf("%s gains %d mana (%d total)", sideName(side), amount, total),
	}
}

func NewHPSwapEvent(turn int, side int, ownHP, oppHP int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    side,
		Type:    EventHPSwap,
		Details: fmt.Sprintf("%s swaps HP totals (%d ↔ %d)", sideName(side), ownHP, oppHP),
	}
}

func NewNoTargetEvent(turn int, side int, cardName string, details string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    side,
		Type:    EventNoTarget,
		Card:    cardName,
		Details: details,
	}
}

func NewWinEvent(turn int, winner int, reason string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    winner,
		Type:    EventWin,
		Details: fmt.Sprintf("%s wins! (%s)", sideName(winner), reason),
	}
}
