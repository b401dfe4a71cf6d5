package game

import (
	"math/rand"

	"github.com/google/uuid"
)

// NewCardInstance mints a fresh physical copy of a catalog card.
func NewCardInstance(c *Card) *CardInstance {
	return &CardInstance{Card: c, ID: uuid.NewString()}
}

// BuildDeck samples `size` cards from the catalog using the type weight
// table and returns them shuffled. Instances are minted here and nowhere
// else; they migrate between collections for the rest of the match.
func BuildDeck(rng *rand.Rand, size int, weights map[CardType]int) []*CardInstance {
	deck := make([]*CardInstance, 0, size)
	for len(deck) < size {
		deck = append(deck, NewCardInstance(SampleByType(rng, weights)))
	}
	shuffle(rng, deck)
	return deck
}

// InstantiateDeck turns an explicit card list into a deck in order. Used by
// tests and scripted scenarios; the back of the slice is drawn first.
func InstantiateDeck(cards []*Card) []*CardInstance {
	deck := make([]*CardInstance, 0, len(cards))
	for _, c := range cards {
		deck = append(deck, NewCardInstance(c))
	}
	return deck
}

func shuffle(rng *rand.Rand, cards []*CardInstance) {
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}
