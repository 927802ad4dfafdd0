package session

import (
	"errors"
	"time"

	"glas-taro/internal/deck"
)

// State of one user's reading flow.
type State string

const (
	StateIdle                  State = "idle"
	StateAwaitingSpread        State = "awaiting_spread"
	StateAwaitingQuestion      State = "awaiting_question"
	StateAwaitingInterpretation State = "awaiting_interpretation"
	StateComplete              State = "complete"
)

// MaxQuestionLen bounds the free-text question, in runes.
const MaxQuestionLen = 500

var ErrInvalidTransition = errors.New("event not valid in current session state")

// Session is one user's place in the reading flow. It is mutated only while
// its per-user lock is held (see Store.Acquire).
type Session struct {
	UserID       int64
	State        State
	Spread       deck.SpreadType
	Question     string
	Cards        []deck.DrawnCard
	CreatedAt    time.Time
	LastActivity time.Time

	// Epoch increments on every reset. An interpretation produced for an
	// older epoch is stale and must be discarded.
	Epoch uint64
}

// BeginReading moves an idle session into spread selection.
func (s *Session) BeginReading() error {
	if s.State != StateIdle {
		return ErrInvalidTransition
	}
	s.State = StateAwaitingSpread
	return nil
}

// ChooseSpread records a valid spread selection and asks for the question.
func (s *Session) ChooseSpread(st deck.SpreadType) error {
	if s.State != StateAwaitingSpread {
		return ErrInvalidTransition
	}
	if !st.Valid() {
		return deck.ErrUnknownSpread
	}
	s.Spread = st
	s.State = StateAwaitingQuestion
	return nil
}

// AttachQuestion stores the question (possibly empty for a skip) together
// with the freshly drawn cards, entering the interpretation phase. Cards are
// only ever set here so they appear exactly when the state requires them.
func (s *Session) AttachQuestion(question string, cards []deck.DrawnCard) error {
	if s.State != StateAwaitingQuestion {
		return ErrInvalidTransition
	}
	if len(cards) != s.Spread.CardCount() {
		return errors.New("drawn card count does not match spread")
	}
	s.Question = truncateRunes(question, MaxQuestionLen)
	s.Cards = cards
	s.State = StateAwaitingInterpretation
	return nil
}

// Complete marks the interpretation phase finished, successfully or not.
func (s *Session) Complete() error {
	if s.State != StateAwaitingInterpretation {
		return ErrInvalidTransition
	}
	s.State = StateComplete
	return nil
}

// Reset returns the session to idle from any state and invalidates in-flight
// interpretation results by bumping the epoch.
func (s *Session) Reset() {
	s.State = StateIdle
	s.Spread = ""
	s.Question = ""
	s.Cards = nil
	s.Epoch++
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
