package game

import "errors"

var (
	// ErrCardNotFound is returned when no card with the requested name is in
	// the zone.
	ErrCardNotFound = errors.New("card not found")
	// ErrNotEnoughCards is returned when more cards are requested than the
	// zone holds.
	ErrNotEnoughCards = errors.New("not enough cards")
	// ErrUnknownZone is returned for a zone ID the deck does not have.
	ErrUnknownZone = errors.New("unknown zone")
	// ErrInvalidRecord is returned when a deck-list record cannot be turned
	// into cards.
	ErrInvalidRecord = errors.New("invalid card record")
	// ErrConservation is returned when the gameplay zones no longer hold
	// exactly the cards of the deck list.
	ErrConservation = errors.New("card conservation violated")
)
