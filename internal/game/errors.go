package game

import "errors"

var (
	// ErrCardNotFound means the referenced instance id is absent from the
	// expected collection. A caller bug; nothing was mutated.
	ErrCardNotFound = errors.New("card not found")

	// ErrInsufficientMana means the card's mana cost exceeds the side's
	// current mana. The play is rejected with no state change.
	ErrInsufficientMana = errors.New("insufficient mana")

	// ErrInvalidPhase means the operation is not legal in the current
	// phase (e.g. playing a card while an attack is pending).
	ErrInvalidPhase = errors.New("operation not allowed in current phase")

	// ErrOutOfTurn means the acting side is not the side to act.
	ErrOutOfTurn = errors.New("not this side's turn")
)
