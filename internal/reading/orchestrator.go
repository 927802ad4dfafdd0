package reading

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"glas-taro/internal/deck"
	"glas-taro/internal/i18n"
	"glas-taro/internal/llm"
	"glas-taro/internal/ratelimit"
	"glas-taro/internal/session"
	"glas-taro/internal/storage"
)

// Interpreter is the AI side of a reading.
type Interpreter interface {
	Interpret(ctx context.Context, req llm.InterpretRequest) (llm.Interpretation, error)
	DailyGuidance(ctx context.Context, card deck.DrawnCard, language string) (llm.Interpretation, error)
	ExplainCard(ctx context.Context, card deck.Card, language string) (llm.Interpretation, error)
}

// TierSource resolves a user's quota tier.
type TierSource interface {
	TierOf(userID int64) ratelimit.Tier
}

// Params wires an Orchestrator.
type Params struct {
	Deck     *deck.Deck
	Sessions *session.Store
	Limiter  *ratelimit.Limiter
	Tiers    TierSource
	AI       Interpreter
	Recorder storage.Recorder
	Texts    *i18n.Manager

	// RestartMidFlow makes a StartReading during an unfinished reading
	// abandon it and begin fresh instead of being rejected.
	RestartMidFlow bool
}

// Orchestrator drives the reading flow: it owns the order of quota checks,
// session transitions, card draws and AI calls, and turns every user event
// into exactly one reply. All methods are safe for concurrent use; events for
// the same user are serialized by the session store.
type Orchestrator struct {
	deck           *deck.Deck
	sessions       *session.Store
	limiter        *ratelimit.Limiter
	tiers          TierSource
	ai             Interpreter
	recorder       storage.Recorder
	texts          *i18n.Manager
	daily          *gocache.Cache
	restartMidFlow bool
	now            func() time.Time
}

func New(p Params) *Orchestrator {
	return &Orchestrator{
		deck:           p.Deck,
		sessions:       p.Sessions,
		limiter:        p.Limiter,
		tiers:          p.Tiers,
		ai:             p.AI,
		recorder:       p.Recorder,
		texts:          p.Texts,
		daily:          gocache.New(24*time.Hour, time.Hour),
		restartMidFlow: p.RestartMidFlow,
		now:            time.Now,
	}
}

// AwaitingQuestion reports whether the user's next input would be consumed
// as a reading question. The channel adapter uses it to show a progress
// notice before the slow interpretation call.
func (o *Orchestrator) AwaitingQuestion(userID int64) bool {
	sess, ok := o.sessions.Peek(userID)
	return ok && sess.State == session.StateAwaitingQuestion
}

// HandleEvent applies one flow event for the user and returns the reply.
// A panic anywhere in event handling resets the session to idle so no user
// is ever left stuck mid-flow.
func (o *Orchestrator) HandleEvent(ctx context.Context, userID int64, ev Event) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("event handling panicked for user %d: %v", userID, r)
			sess, release := o.sessions.Acquire(userID)
			sess.Reset()
			release()
			resp = Response{Text: o.texts.Text(userID, "error_general")}
		}
	}()

	switch e := ev.(type) {
	case StartReading:
		return o.handleStart(userID)
	case SelectSpread:
		return o.handleSpread(userID, e.Spread)
	case SubmitQuestion:
		return o.handleQuestion(ctx, userID, e)
	case Cancel:
		return o.handleCancel(userID)
	default:
		return Response{Text: o.texts.Text(userID, "error_general")}
	}
}

func (o *Orchestrator) handleStart(userID int64) Response {
	sess, release := o.sessions.Acquire(userID)
	defer release()

	if sess.State != session.StateIdle && !o.restartMidFlow {
		return Response{Text: o.texts.Text(userID, "reading_in_progress")}
	}

	// Quota is consumed before any state changes so a denial leaves the
	// session exactly as it was.
	res := o.limiter.CheckAndConsume(userID, o.tiers.TierOf(userID))
	if !res.Allowed {
		return Response{Text: o.texts.Textf(userID, "quota_exceeded",
			res.RetryAt.UTC().Format("15:04 UTC, 2 Jan"))}
	}

	if sess.State != session.StateIdle {
		sess.Reset()
	}
	if err := sess.BeginReading(); err != nil {
		return Response{Text: o.texts.Text(userID, "error_general")}
	}
	return o.spreadMenu(userID)
}

func (o *Orchestrator) handleSpread(userID int64, st deck.SpreadType) Response {
	sess, release := o.sessions.Acquire(userID)
	defer release()

	if sess.State == session.StateIdle {
		return Response{Text: o.texts.Text(userID, "not_in_reading")}
	}
	if err := sess.ChooseSpread(st); err != nil {
		if errors.Is(err, deck.ErrUnknownSpread) {
			r := o.spreadMenu(userID)
			r.Text = o.texts.Text(userID, "invalid_selection")
			return r
		}
		return Response{Text: o.texts.Text(userID, "invalid_selection")}
	}

	return Response{
		Text: o.texts.Textf(userID, "ask_question", o.texts.SpreadName(userID, st)),
		Buttons: [][]Button{{
			{Label: o.texts.Text(userID, "skip_question"), Data: CallbackSkipQuestion},
		}},
	}
}

// pendingReading is the per-user snapshot carried across the AI call while
// the lock is not held.
type pendingReading struct {
	spread   deck.SpreadType
	question string
	cards    []deck.DrawnCard
	epoch    uint64
}

func (o *Orchestrator) handleQuestion(ctx context.Context, userID int64, ev SubmitQuestion) Response {
	pending, early := o.stageQuestion(userID, ev)
	if early != nil {
		return *early
	}

	// The per-user lock is not held across the AI call: the user must be
	// able to /cancel while the interpretation is in flight.
	interp, aiErr := o.ai.Interpret(ctx, llm.InterpretRequest{
		Spread:   pending.spread,
		Cards:    pending.cards,
		Question: pending.question,
		Language: string(o.texts.UserLanguage(userID)),
	})

	return o.finishReading(userID, pending, interp, aiErr)
}

func (o *Orchestrator) stageQuestion(userID int64, ev SubmitQuestion) (pendingReading, *Response) {
	sess, release := o.sessions.Acquire(userID)
	defer release()

	if sess.State == session.StateIdle {
		return pendingReading{}, &Response{Text: o.texts.Text(userID, "not_in_reading")}
	}
	if sess.State == session.StateAwaitingSpread {
		r := o.spreadMenu(userID)
		r.Text = o.texts.Text(userID, "invalid_selection")
		return pendingReading{}, &r
	}
	if sess.State != session.StateAwaitingQuestion {
		// A question landing while the interpretation is already in
		// flight must not draw a second set of cards.
		return pendingReading{}, &Response{Text: o.texts.Text(userID, "reading_in_progress")}
	}

	cards, err := o.deck.DrawForSpread(sess.Spread)
	if err != nil {
		return pendingReading{}, &Response{Text: o.texts.Text(userID, "error_general")}
	}
	question := ev.Text
	if ev.Skip {
		question = ""
	}
	if err := sess.AttachQuestion(question, cards); err != nil {
		return pendingReading{}, &Response{Text: o.texts.Text(userID, "error_general")}
	}

	return pendingReading{
		spread:   sess.Spread,
		question: sess.Question,
		cards:    cards,
		epoch:    sess.Epoch,
	}, nil
}

func (o *Orchestrator) finishReading(userID int64, pending pendingReading, interp llm.Interpretation, aiErr error) Response {
	sess, release := o.sessions.Acquire(userID)
	defer release()

	if sess.Epoch != pending.epoch || sess.State != session.StateAwaitingInterpretation {
		// Cancelled or expired while the provider was thinking: the
		// result belongs to a reading that no longer exists.
		return Response{Text: o.texts.Text(userID, "stale_reading")}
	}
	if err := sess.Complete(); err != nil {
		return Response{Text: o.texts.Text(userID, "error_general")}
	}
	// COMPLETE is transient: the session folds back to idle right away so
	// the next reading can start.
	sess.Reset()

	if aiErr != nil {
		log.Printf("interpretation failed for user %d: %v", userID, aiErr)
		o.record(userID, pending.spread, pending.question, pending.cards, "", "degraded")
		return Response{Text: o.formatResult(userID, pending.spread, pending.question, pending.cards, "", true)}
	}
	o.record(userID, pending.spread, pending.question, pending.cards, interp.Model, "ok")
	return Response{Text: o.formatResult(userID, pending.spread, pending.question, pending.cards, interp.Text, false)}
}

func (o *Orchestrator) handleCancel(userID int64) Response {
	sess, release := o.sessions.Acquire(userID)
	defer release()

	if sess.State == session.StateIdle {
		return Response{Text: o.texts.Text(userID, "nothing_to_cancel")}
	}
	if len(sess.Cards) > 0 {
		o.record(userID, sess.Spread, sess.Question, sess.Cards, "", "cancelled")
	}
	sess.Reset()
	return Response{Text: o.texts.Text(userID, "cancelled")}
}

type dailyEntry struct {
	Card deck.DrawnCard
	Lang i18n.Lang
	Text string
}

// DailyCard returns the user's card of the day. The card is fixed for the
// calendar day (UTC); the guidance text is regenerated if the user switched
// language since it was cached. Daily cards do not consume reading quota.
func (o *Orchestrator) DailyCard(ctx context.Context, userID int64) Response {
	// The per-user lock serializes concurrent misses so two simultaneous
	// requests cannot draw two different cards for the same day.
	_, release := o.sessions.Acquire(userID)
	defer release()

	lang := o.texts.UserLanguage(userID)
	day := o.now().UTC().Format("2006-01-02")
	key := fmt.Sprintf("daily:%d:%s", userID, day)

	if v, ok := o.daily.Get(key); ok {
		entry := v.(dailyEntry)
		if entry.Lang == lang {
			return Response{Text: entry.Text}
		}
		return Response{Text: o.dailyText(ctx, userID, key, entry.Card, lang)}
	}

	cards, err := o.deck.Draw(1, false)
	if err != nil {
		return Response{Text: o.texts.Text(userID, "error_general")}
	}
	return Response{Text: o.dailyText(ctx, userID, key, cards[0], lang)}
}

func (o *Orchestrator) dailyText(ctx context.Context, userID int64, key string, card deck.DrawnCard, lang i18n.Lang) string {
	guidance, err := o.ai.DailyGuidance(ctx, card, string(lang))
	text := guidance.Text
	if err != nil {
		log.Printf("daily guidance failed for user %d: %v", userID, err)
		text = card.Meaning()
	}
	full := o.formatDaily(userID, card, text)
	o.daily.Set(key, dailyEntry{Card: card, Lang: lang, Text: full}, untilMidnightUTC(o.now()))
	return full
}

// Explain returns a study-oriented explanation of one card from the catalog,
// falling back to the static meanings when no provider answers.
func (o *Orchestrator) Explain(ctx context.Context, userID int64, cardID string) Response {
	card, err := o.deck.CardByID(cardID)
	if err != nil {
		return Response{Text: o.texts.Text(userID, "card_not_found")}
	}

	lang := o.texts.UserLanguage(userID)
	explained, err := o.ai.ExplainCard(ctx, card, string(lang))
	if err != nil {
		log.Printf("card explanation failed for user %d: %v", userID, err)
		return Response{Text: o.formatCardStudy(userID, card)}
	}
	return Response{Text: explained.Text}
}

func (o *Orchestrator) spreadMenu(userID int64) Response {
	rows := make([][]Button, 0, len(deck.AllSpreads()))
	for _, st := range deck.AllSpreads() {
		rows = append(rows, []Button{{
			Label: o.texts.SpreadName(userID, st),
			Data:  CallbackSpreadPrefix + string(st),
		}})
	}
	return Response{
		Text:    o.texts.Text(userID, "spread_select"),
		Buttons: rows,
	}
}

func (o *Orchestrator) record(userID int64, spread deck.SpreadType, question string, cards []deck.DrawnCard, model, outcome string) {
	if o.recorder == nil {
		return
	}
	err := o.recorder.AppendReading(storage.ReadingRecord{
		Timestamp: o.now().UTC(),
		UserID:    userID,
		Spread:    spread,
		Question:  question,
		Cards:     cards,
		Model:     model,
		Outcome:   outcome,
	})
	if err != nil {
		log.Printf("failed to record reading for user %d: %v", userID, err)
	}
}

func untilMidnightUTC(now time.Time) time.Duration {
	now = now.UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
	return midnight.Sub(now)
}
