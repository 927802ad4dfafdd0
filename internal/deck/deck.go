package deck

import (
	"math/rand"
	"sync"
	"time"
)

// RNG abstracts the random source so draws are deterministic in tests.
type RNG interface {
	Intn(n int) int
	Float64() float64
}

// Deck is the fixed 78-card catalog plus a draw policy. Draws are stateless:
// every call shuffles from the full deck again.
type Deck struct {
	cards        []Card
	byID         map[string]Card
	rng          RNG
	reversedProb float64
}

// Option configures a Deck.
type Option func(*Deck)

// WithRNG replaces the default random source.
func WithRNG(r RNG) Option { return func(d *Deck) { d.rng = r } }

// WithReversedProbability sets the chance a drawn card lands reversed.
func WithReversedProbability(p float64) Option {
	return func(d *Deck) {
		if p >= 0 && p <= 1 {
			d.reversedProb = p
		}
	}
}

// New loads the catalog. The default source is seeded from the clock and safe
// for concurrent use.
func New(opts ...Option) *Deck {
	d := &Deck{
		cards:        catalog,
		byID:         make(map[string]Card, len(catalog)),
		rng:          &lockedRNG{r: rand.New(rand.NewSource(time.Now().UnixNano()))},
		reversedProb: 0.5,
	}
	for _, c := range catalog {
		d.byID[c.ID] = c
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Size returns the number of cards in the catalog.
func (d *Deck) Size() int { return len(d.cards) }

// Cards returns the catalog filtered by arcana; pass "" for the whole deck.
func (d *Deck) Cards(a Arcana) []Card {
	out := make([]Card, 0, len(d.cards))
	for _, c := range d.cards {
		if a == "" || c.Arcana == a {
			out = append(out, c)
		}
	}
	return out
}

// CardByID looks a card up by its stable identifier.
func (d *Deck) CardByID(id string) (Card, error) {
	c, ok := d.byID[id]
	if !ok {
		return Card{}, ErrUnknownCard
	}
	return c, nil
}

// MeaningFor returns the orientation-dependent meaning text for a card.
func (d *Deck) MeaningFor(id string, o Orientation) (string, error) {
	c, ok := d.byID[id]
	if !ok {
		return "", ErrUnknownCard
	}
	if o == Reversed {
		return c.Reversed, nil
	}
	return c.Upright, nil
}

// Draw returns n cards, each independently oriented. Without repeats the
// cards are distinct by ID and n must not exceed the deck size.
func (d *Deck) Draw(n int, allowRepeats bool) ([]DrawnCard, error) {
	if !allowRepeats && n > len(d.cards) {
		return nil, ErrInsufficientDeck
	}

	out := make([]DrawnCard, 0, n)
	if allowRepeats {
		for i := 0; i < n; i++ {
			out = append(out, d.orient(d.cards[d.rng.Intn(len(d.cards))]))
		}
		return out, nil
	}

	// Partial Fisher-Yates: only the first n slots matter.
	idx := make([]int, len(d.cards))
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < n; i++ {
		j := i + d.rng.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		out = append(out, d.orient(d.cards[idx[i]]))
	}
	return out, nil
}

// DrawForSpread draws exactly the spread's card count and stamps the
// positional labels in order.
func (d *Deck) DrawForSpread(st SpreadType) ([]DrawnCard, error) {
	if !st.Valid() {
		return nil, ErrUnknownSpread
	}
	labels := st.Labels()
	cards, err := d.Draw(len(labels), false)
	if err != nil {
		return nil, err
	}
	for i := range cards {
		cards[i].Position = labels[i]
	}
	return cards, nil
}

func (d *Deck) orient(c Card) DrawnCard {
	o := Upright
	if d.rng.Float64() < d.reversedProb {
		o = Reversed
	}
	return DrawnCard{Card: c, Orientation: o}
}

// lockedRNG guards a rand.Rand for concurrent draws.
type lockedRNG struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRNG) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

func (l *lockedRNG) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}
