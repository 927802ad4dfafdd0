package deck

import "errors"

// Arcana splits the deck into its two halves.
type Arcana string

const (
	ArcanaMajor Arcana = "major"
	ArcanaMinor Arcana = "minor"
)

// Suit of a minor arcana card. Major arcana cards carry no suit.
type Suit string

const (
	SuitWands     Suit = "wands"
	SuitCups      Suit = "cups"
	SuitSwords    Suit = "swords"
	SuitPentacles Suit = "pentacles"
)

// Orientation of a drawn card. It selects which meaning applies.
type Orientation string

const (
	Upright  Orientation = "upright"
	Reversed Orientation = "reversed"
)

// Card is one entry of the fixed 78-card catalog. Immutable after load.
type Card struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Arcana   Arcana `json:"arcana"`
	Suit     Suit   `json:"suit,omitempty"`
	Number   int    `json:"number"`
	Upright  string `json:"upright_meaning"`
	Reversed string `json:"reversed_meaning"`
}

// DrawnCard is a card placed into a spread position.
type DrawnCard struct {
	Card
	Orientation Orientation `json:"orientation"`
	Position    string      `json:"position"`
}

// Meaning returns the text matching the drawn orientation.
func (d DrawnCard) Meaning() string {
	if d.Orientation == Reversed {
		return d.Card.Reversed
	}
	return d.Card.Upright
}

var (
	ErrInsufficientDeck = errors.New("requested more distinct cards than the deck holds")
	ErrUnknownCard      = errors.New("unknown card id")
	ErrUnknownSpread    = errors.New("unknown spread type")
)
