package game

import "fmt"

// --- Enums ---

// Side identifies one of the two combatants (0 or 1).
type Side int

func (s Side) String() string {
	return fmt.Sprintf("P%d", int(s)+1)
}

// Other returns the opposing side.
func (s Side) Other() Side {
	return 1 - s
}

type Phase int

const (
	PhaseMain Phase = iota
	PhaseAwaitingDefense
	PhaseAwaitingPurchase
	PhaseAwaitingSale
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseMain:
		return "Main"
	case PhaseAwaitingDefense:
		return "Awaiting Defense"
	case PhaseAwaitingPurchase:
		return "Awaiting Purchase Confirm"
	case PhaseAwaitingSale:
		return "Awaiting Sale Selection"
	case PhaseEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

type CardType int

const (
	CardTypeWeapon CardType = iota
	CardTypeArmor
	CardTypeMiracle
	CardTypeItem
	CardTypeAction
)

func (ct CardType) String() string {
	switch ct {
	case CardTypeWeapon:
		return "Weapon"
	case CardTypeArmor:
		return "Armor"
	case CardTypeMiracle:
		return "Miracle"
	case CardTypeItem:
		return "Item"
	case CardTypeAction:
		return "Action"
	default:
		return "Unknown"
	}
}

type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityLegendary
)

func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "common"
	case RarityUncommon:
		return "uncommon"
	case RarityRare:
		return "rare"
	case RarityLegendary:
		return "legendary"
	default:
		return "unknown"
	}
}

// Special tags a card with an effect beyond its plain stats. Tags the
// resolver has no branch for (pierce, burn, freeze, reflect, revive,
// armor counter) are catalog flavor and resolve as a generic "used" line.
type Special string

const (
	SpecialNone        Special = ""
	SpecialPierce      Special = "pierce"
	SpecialBurn        Special = "burn"
	SpecialFreeze      Special = "freeze"
	SpecialReflect     Special = "reflect"
	SpecialArmorRetort Special = "counter"
	SpecialUnblockable Special = "unblockable"
	SpecialAOE         Special = "aoe"
	SpecialRevive      Special = "revive"
	SpecialExtraTurn   Special = "extra_turn"
	SpecialPoison      Special = "poison"
	SpecialDodge       Special = "dodge"
	SpecialCounter     Special = "counter_attack"
	SpecialBuy         Special = "buy"
	SpecialSell        Special = "sell"
	SpecialExchange    Special = "exchange"
	SpecialDiscard     Special = "discard"
	SpecialDraw        Special = "draw"
	SpecialSteal       Special = "steal"
	SpecialSwapHP      Special = "swap_hp"
)

// --- Card definition (static, from the catalog) ---

type Card struct {
	ID          string
	Name        string
	Type        CardType
	Attack      int
	Defense     int
	Heal        int
	ManaCost    int
	Rarity      Rarity
	Special     Special
	Description string

	// Tag-specific parameters
	SelfDamage   int // recoil applied to the attacker on resolution
	PoisonDamage int
	PoisonTurns  int
	DrawCount    int
	BuffAttack   int
	BuffDefense  int

	// Explicit price. Most cards derive their price from stats; see PriceOf.
	Price    int
	HasPrice bool
}

func (c *Card) String() string {
	return c.Name
}

// CanDealDamage reports whether this card counts as a damage source for the
// hand-replenishment rule.
func (c *Card) CanDealDamage() bool {
	return c.Type == CardTypeWeapon || c.Attack > 0
}

// --- CardInstance (runtime card in deck/hand/discard/equipment) ---

// CardInstance is a single physical copy of a catalog card. Duplicate
// catalog entries in play are told apart by ID.
type CardInstance struct {
	Card *Card
	ID   string // unique instance id within a match
}

func (ci *CardInstance) String() string {
	if ci == nil {
		return "(empty)"
	}
	return ci.Card.Name
}

// --- Buffs and status effects ---

type BuffKind int

const (
	BuffAttackBonus BuffKind = iota
	BuffDefenseBonus
	BuffDodge
	BuffCounterStance
)

func (k BuffKind) String() string {
	switch k {
	case BuffAttackBonus:
		return "attack bonus"
	case BuffDefenseBonus:
		return "defense bonus"
	case BuffDodge:
		return "dodge"
	case BuffCounterStance:
		return "counter stance"
	default:
		return "unknown"
	}
}

// Buff is a temporary modifier. Turns == 0 means the buff is not
// time-limited: it is consumed by its next matching use instead.
type Buff struct {
	Kind  BuffKind
	Value int
	Turns int
}

type StatusKind int

const (
	StatusPoison StatusKind = iota
)

func (k StatusKind) String() string {
	if k == StatusPoison {
		return "poison"
	}
	return "unknown"
}

// StatusEffect is a recurring modifier ticked at the end of its owner's turn.
type StatusEffect struct {
	Kind   StatusKind
	Damage int
	Turns  int
}

// --- Outcome ---

// Outcome reports the observable result of a match operation.
type Outcome struct {
	Message string
	Damage  int
	Blocked int
	Heal    int

	// NeedDefense is set when a weapon play parked a pending attack that
	// waits for the defender's choice; the caller must follow up with
	// ResolveAttack.
	NeedDefense bool
}
