package log

// EventType enumerates all observable match events.
type EventType int

const (
	EventNewTurn EventType = iota
	EventExtraTurn
	EventDraw
	EventReshuffle
	EventPlay
	EventEquip
	EventAttackDeclare
	EventDodge
	EventCounter
	EventDamage
	EventHeal
	EventBuff
	EventStatusApplied
	EventStatusTick
	EventStatusExpired
	EventDiscard
	EventForcedDiscard
	EventSteal
	EventPurchaseOffer
	EventPurchaseComplete
	EventPurchaseVoided
	EventSaleOffer
	EventSaleComplete
	EventSaleVoided
	EventManaGain
	EventHPSwap
	EventNoTarget
	EventWin
)

func (e EventType) String() string {
	switch e {
	case EventNewTurn:
		return "NewTurn"
	case EventExtraTurn:
		return "ExtraTurn"
	case EventDraw:
		return "Draw"
	case EventReshuffle:
		return "Reshuffle"
	case EventPlay:
		return "Play"
	case EventEquip:
		return "Equip"
	case EventAttackDeclare:
		return "AttackDeclare"
	case EventDodge:
		return "Dodge"
	case EventCounter:
		return "Counter"
	case EventDamage:
		return "Damage"
	case EventHeal:
		return "Heal"
	case EventBuff:
		return "Buff"
	case EventStatusApplied:
		return "StatusApplied"
	case EventStatusTick:
		return "StatusTick"
	case EventStatusExpired:
		return "StatusExpired"
	case EventDiscard:
		return "Discard"
	case EventForcedDiscard:
		return "ForcedDiscard"
	case EventSteal:
		return "Steal"
	case EventPurchaseOffer:
		return "PurchaseOffer"
	case EventPurchaseComplete:
		return "PurchaseComplete"
	case EventPurchaseVoided:
		return "PurchaseVoided"
	case EventSaleOffer:
		return "SaleOffer"
	case EventSaleComplete:
		return "SaleComplete"
	case EventSaleVoided:
		return "SaleVoided"
	case EventManaGain:
		return "ManaGain"
	case EventHPSwap:
		return "HPSwap"
	case EventNoTarget:
		return "NoTarget"
	case EventWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a match.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Turn    int       // which turn (1-based)
	Side    int       // acting side (0 or 1), or the side the event happened to
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Details string    // human-readable detail string
}
