package game

import "math/rand"

// Catalog is the full table of card definitions. Entries are immutable;
// runtime copies reference them by pointer.
var Catalog = []*Card{
	// --- Weapons ---
	{ID: "sword", Name: "Steel Sword", Type: CardTypeWeapon, Attack: 5, Rarity: RarityCommon, Price: 50, HasPrice: true,
		Description: "A standard sword. Deals 5 damage."},
	{ID: "axe", Name: "War Axe", Type: CardTypeWeapon, Attack: 7, Rarity: RarityCommon, Price: 70, HasPrice: true,
		Description: "A heavy axe. Deals 7 damage."},
	{ID: "spear", Name: "Spear", Type: CardTypeWeapon, Attack: 4, Rarity: RarityCommon, Price: 40, HasPrice: true,
		Description: "A long-reach spear. Deals 4 damage."},
	{ID: "dagger", Name: "Dagger", Type: CardTypeWeapon, Attack: 3, Rarity: RarityCommon,
		Description: "A quick dagger. Deals 3 damage."},
	{ID: "hammer", Name: "War Hammer", Type: CardTypeWeapon, Attack: 8, Rarity: RarityUncommon,
		Description: "A heavyweight hammer. Deals 8 damage."},
	{ID: "bow", Name: "Bow", Type: CardTypeWeapon, Attack: 4, Rarity: RarityCommon, Special: SpecialPierce,
		Description: "A ranged attack. Pierces 1 defense."},
	{ID: "holy_sword", Name: "Holy Sword", Type: CardTypeWeapon, Attack: 10, Rarity: RarityRare,
		Description: "A blade of sacred power. Deals 10 damage."},
	{ID: "cursed_blade", Name: "Cursed Blade", Type: CardTypeWeapon, Attack: 12, SelfDamage: 3, Rarity: RarityRare,
		Description: "Deals 12 damage, but 3 to yourself."},
	{ID: "fire_staff", Name: "Fire Staff", Type: CardTypeWeapon, Attack: 6, Rarity: RarityUncommon, Special: SpecialBurn,
		Description: "Deals 6 damage plus 2 next turn."},
	{ID: "ice_staff", Name: "Ice Staff", Type: CardTypeWeapon, Attack: 5, Rarity: RarityUncommon, Special: SpecialFreeze,
		Description: "Deals 5 damage and chills the foe's next attack by 2."},

	// --- Armor ---
	{ID: "shield", Name: "Iron Shield", Type: CardTypeArmor, Defense: 5, Rarity: RarityCommon,
		Description: "Blocks 5 damage."},
	{ID: "helmet", Name: "Helmet", Type: CardTypeArmor, Defense: 3, Rarity: RarityCommon,
		Description: "Blocks 3 damage."},
	{ID: "plate_mail", Name: "Plate Mail", Type: CardTypeArmor, Defense: 7, Rarity: RarityUncommon,
		Description: "Blocks 7 damage."},
	{ID: "magic_barrier", Name: "Magic Barrier", Type: CardTypeArmor, Defense: 4, Rarity: RarityUncommon, Special: SpecialReflect,
		Description: "Blocks 4 damage and reflects 1 magic damage."},
	{ID: "holy_shield", Name: "Holy Shield", Type: CardTypeArmor, Defense: 10, Rarity: RarityRare,
		Description: "Blocks 10 damage."},
	{ID: "counter_mail", Name: "Counter Mail", Type: CardTypeArmor, Defense: 3, Rarity: RarityUncommon, Special: SpecialArmorRetort,
		Description: "Blocks 3 damage and deals 2 back to the attacker."},

	// --- Miracles ---
	{ID: "lightning", Name: "Lightning Bolt", Type: CardTypeMiracle, Attack: 8, ManaCost: 4, Rarity: RarityRare, Special: SpecialUnblockable,
		Description: "Deals 8 unblockable damage. [4 mana]"},
	{ID: "earthquake", Name: "Earthquake", Type: CardTypeMiracle, Attack: 6, ManaCost: 5, Rarity: RarityRare, Special: SpecialAOE,
		Description: "Deals 6 damage to everyone, yourself included. [5 mana]"},
	{ID: "divine_blessing", Name: "Divine Blessing", Type: CardTypeMiracle, Heal: 15, ManaCost: 3, Rarity: RarityRare,
		Description: "Restores 15 HP. [3 mana]"},
	{ID: "resurrection", Name: "Resurrection", Type: CardTypeMiracle, ManaCost: 8, Rarity: RarityLegendary, Special: SpecialRevive,
		Description: "Revive with 1 HP, once. [8 mana]"},
	{ID: "time_stop", Name: "Time Stop", Type: CardTypeMiracle, ManaCost: 6, Rarity: RarityLegendary, Special: SpecialExtraTurn,
		Description: "Take an extra turn. [6 mana]"},

	// --- Items ---
	{ID: "potion", Name: "Potion", Type: CardTypeItem, Heal: 8, Rarity: RarityCommon,
		Description: "Restores 8 HP."},
	{ID: "herb", Name: "Herb", Type: CardTypeItem, Heal: 5, Rarity: RarityCommon,
		Description: "Restores 5 HP."},
	{ID: "elixir", Name: "Elixir", Type: CardTypeItem, Heal: 20, Rarity: RarityRare,
		Description: "Restores 20 HP."},
	{ID: "strength_tonic", Name: "Strength Tonic", Type: CardTypeItem, BuffAttack: 3, Rarity: RarityUncommon,
		Description: "Your next attack deals +3 damage."},
	{ID: "guard_tonic", Name: "Guard Tonic", Type: CardTypeItem, BuffDefense: 3, Rarity: RarityUncommon,
		Description: "Your next block stops +3 damage."},
	{ID: "bomb", Name: "Bomb", Type: CardTypeItem, Attack: 10, Rarity: RarityUncommon,
		Description: "Deals 10 damage."},
	{ID: "poison_vial", Name: "Poison Vial", Type: CardTypeItem, Rarity: RarityUncommon, Special: SpecialPoison, PoisonDamage: 3, PoisonTurns: 3,
		Description: "Deals 3 damage per turn for 3 turns."},

	// --- Actions ---
	{ID: "sidestep", Name: "Sidestep", Type: CardTypeAction, ManaCost: 2, Rarity: RarityUncommon, Special: SpecialDodge,
		Description: "Evade the next attack entirely. [2 mana]"},
	{ID: "counterstrike", Name: "Counterstrike", Type: CardTypeAction, ManaCost: 3, Rarity: RarityRare, Special: SpecialCounter,
		Description: "Return the next damage you take. [3 mana]"},
	{ID: "shopping", Name: "Shopping Spree", Type: CardTypeAction, Rarity: RarityRare, Special: SpecialBuy, Price: 0, HasPrice: true,
		Description: "Offer to buy a random card from your foe. [free]"},
	{ID: "hard_sell", Name: "Hard Sell", Type: CardTypeAction, Rarity: RarityRare, Special: SpecialSell, Price: 0, HasPrice: true,
		Description: "Force one of your cards onto your foe, for a price. [free]"},
	{ID: "money_changer", Name: "Money Changer", Type: CardTypeAction, Rarity: RarityUncommon, Special: SpecialExchange, Price: 0, HasPrice: true,
		Description: "Exchange HP, mana and gold freely. [free]"},
	{ID: "scrap", Name: "Scrap", Type: CardTypeAction, ManaCost: 2, Rarity: RarityUncommon, Special: SpecialDiscard,
		Description: "Your foe discards a random card. [2 mana]"},
	{ID: "card_draw", Name: "Card Draw", Type: CardTypeAction, ManaCost: 1, Rarity: RarityCommon, Special: SpecialDraw, DrawCount: 2,
		Description: "Draw 2 cards. [1 mana]"},
	{ID: "life_swap", Name: "Life Swap", Type: CardTypeAction, ManaCost: 5, Rarity: RarityLegendary, Special: SpecialSwapHP,
		Description: "Swap HP totals with your foe. [5 mana]"},
}

var catalogByID = func() map[string]*Card {
	m := make(map[string]*Card, len(Catalog))
	for _, c := range Catalog {
		m[c.ID] = c
	}
	return m
}()

// LookupByID returns the catalog card with the given id.
func LookupByID(id string) (*Card, bool) {
	c, ok := catalogByID[id]
	return c, ok
}

// CardsOfType returns all catalog cards of the given type.
func CardsOfType(t CardType) []*Card {
	var result []*Card
	for _, c := range Catalog {
		if c.Type == t {
			result = append(result, c)
		}
	}
	return result
}

// rarityWeights is the appearance weight per rarity tier.
var rarityWeights = map[Rarity]int{
	RarityCommon:    40,
	RarityUncommon:  30,
	RarityRare:      20,
	RarityLegendary: 10,
}

// SampleByType picks a card type from the weight table, then a uniformly
// random catalog card of that type.
func SampleByType(rng *rand.Rand, weights map[CardType]int) *Card {
	total := 0
	for _, w := range weights {
		total += w
	}
	roll := rng.Intn(total)

	selected := CardTypeWeapon
	for t := CardTypeWeapon; t <= CardTypeAction; t++ {
		roll -= weights[t]
		if roll < 0 {
			selected = t
			break
		}
	}

	cards := CardsOfType(selected)
	return cards[rng.Intn(len(cards))]
}

// SampleByRarity picks a rarity tier from the fixed weight table, then a
// uniformly random catalog card of that rarity.
func SampleByRarity(rng *rand.Rand) *Card {
	total := 0
	for _, w := range rarityWeights {
		total += w
	}
	roll := rng.Intn(total)

	selected := RarityCommon
	for r := RarityCommon; r <= RarityLegendary; r++ {
		roll -= rarityWeights[r]
		if roll < 0 {
			selected = r
			break
		}
	}

	var cards []*Card
	for _, c := range Catalog {
		if c.Rarity == selected {
			cards = append(cards, c)
		}
	}
	return cards[rng.Intn(len(cards))]
}

// PriceOf returns a card's market price. Mana-cost cards are always free;
// an explicit catalog price wins otherwise; the rest derive from stats,
// floored at 5 gold.
func PriceOf(c *Card) int {
	if c.ManaCost > 0 {
		return 0
	}
	if c.HasPrice {
		return c.Price
	}

	price := c.Attack*8 + c.Defense*7 + c.Heal*4
	if c.Special != SpecialNone {
		price += 15
	}
	if price < 5 {
		price = 5
	}
	return price
}
