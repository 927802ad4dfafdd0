package reading

import "glas-taro/internal/deck"

// Event is a single user action in the reading flow. The channel adapter
// translates raw input (commands, button presses, free text) into events at
// the edge; the orchestrator only ever sees these.
type Event interface{ isEvent() }

// StartReading begins a new reading and consumes one quota slot.
type StartReading struct{}

// SelectSpread picks the spread for the current reading.
type SelectSpread struct {
	Spread deck.SpreadType
}

// SubmitQuestion finishes the setup phase. Skip means the user declined to
// ask anything and wants general guidance.
type SubmitQuestion struct {
	Text string
	Skip bool
}

// Cancel aborts the current reading from any non-idle state.
type Cancel struct{}

func (StartReading) isEvent()   {}
func (SelectSpread) isEvent()   {}
func (SubmitQuestion) isEvent() {}
func (Cancel) isEvent()         {}

// Button is one inline option the user can press. Data round-trips through
// the channel back into an event.
type Button struct {
	Label string
	Data  string
}

// Response is what the orchestrator wants shown to the user: a text and an
// optional inline keyboard, one slice per row.
type Response struct {
	Text    string
	Buttons [][]Button
}

// Callback data understood by the adapters.
const (
	CallbackStartReading = "start_reading"
	CallbackSpreadPrefix = "spread:"
	CallbackSkipQuestion = "skip_question"
	CallbackMainMenu     = "back_to_main"
	CallbackDailyCard    = "daily_card"
	CallbackLearn        = "learn"
	CallbackLearnMajor   = "learn:major"
	CallbackLearnMinor   = "learn:minor"
	CallbackCardPrefix   = "card:"
	CallbackLanguage     = "language"
	CallbackLangPrefix   = "lang:"
)
