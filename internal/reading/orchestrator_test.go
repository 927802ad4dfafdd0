package reading

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"glas-taro/internal/deck"
	"glas-taro/internal/i18n"
	"glas-taro/internal/llm"
	"glas-taro/internal/ratelimit"
	"glas-taro/internal/session"
	"glas-taro/internal/storage"
)

type fakeAI struct {
	mu             sync.Mutex
	interpretCalls int
	dailyCalls     int
	explainCalls   int
	err            error
	resp           llm.Interpretation
	onInterpret    func()
}

func (f *fakeAI) Interpret(ctx context.Context, req llm.InterpretRequest) (llm.Interpretation, error) {
	f.mu.Lock()
	f.interpretCalls++
	hook, err, resp := f.onInterpret, f.err, f.resp
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	if err != nil {
		return llm.Interpretation{}, err
	}
	if resp.Text == "" {
		resp = llm.Interpretation{Text: "the cards speak of patience", Model: "openai:gpt-4o-mini"}
	}
	return resp, nil
}

func (f *fakeAI) DailyGuidance(ctx context.Context, card deck.DrawnCard, language string) (llm.Interpretation, error) {
	f.mu.Lock()
	f.dailyCalls++
	err, resp := f.err, f.resp
	f.mu.Unlock()
	if err != nil {
		return llm.Interpretation{}, err
	}
	if resp.Text == "" {
		resp = llm.Interpretation{Text: "walk gently today", Model: "openai:gpt-4o-mini"}
	}
	return resp, nil
}

func (f *fakeAI) ExplainCard(ctx context.Context, card deck.Card, language string) (llm.Interpretation, error) {
	f.mu.Lock()
	f.explainCalls++
	err, resp := f.err, f.resp
	f.mu.Unlock()
	if err != nil {
		return llm.Interpretation{}, err
	}
	if resp.Text == "" {
		resp = llm.Interpretation{Text: "a card of beginnings", Model: "openai:gpt-4o-mini"}
	}
	return resp, nil
}

type memRecorder struct {
	mu   sync.Mutex
	recs []storage.ReadingRecord
}

func (m *memRecorder) AppendReading(rec storage.ReadingRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recs = append(m.recs, rec)
	return nil
}

func (m *memRecorder) LoadReadings() ([]storage.ReadingRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]storage.ReadingRecord(nil), m.recs...), nil
}

func (m *memRecorder) outcomes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.recs))
	for _, r := range m.recs {
		out = append(out, r.Outcome)
	}
	return out
}

type fakeTiers struct{ tier ratelimit.Tier }

func (f fakeTiers) TierOf(int64) ratelimit.Tier { return f.tier }

func testParams(ai Interpreter, rec storage.Recorder, ceiling int) Params {
	return Params{
		Deck:     deck.New(deck.WithRNG(rand.New(rand.NewSource(7)))),
		Sessions: session.NewStore(30 * time.Minute),
		Limiter: ratelimit.New(map[ratelimit.Tier]ratelimit.Limits{
			ratelimit.TierFree:    {Ceiling: ceiling, Window: 24 * time.Hour},
			ratelimit.TierPremium: {Ceiling: 20, Window: 24 * time.Hour},
		}),
		Tiers:          fakeTiers{tier: ratelimit.TierFree},
		AI:             ai,
		Recorder:       rec,
		Texts:          i18n.NewManager(),
		RestartMidFlow: true,
	}
}

func TestFullReadingFlow(t *testing.T) {
	ctx := context.Background()
	ai := &fakeAI{}
	rec := &memRecorder{}
	o := New(testParams(ai, rec, 3))

	resp := o.HandleEvent(ctx, 1, StartReading{})
	if len(resp.Buttons) != len(deck.AllSpreads()) {
		t.Fatalf("want %d spread buttons, got %d", len(deck.AllSpreads()), len(resp.Buttons))
	}

	resp = o.HandleEvent(ctx, 1, SelectSpread{Spread: deck.SpreadSingle})
	if !strings.Contains(resp.Text, "Single card") {
		t.Fatalf("spread name missing from question prompt: %q", resp.Text)
	}
	if len(resp.Buttons) != 1 || resp.Buttons[0][0].Data != CallbackSkipQuestion {
		t.Fatalf("want a skip button, got %v", resp.Buttons)
	}

	resp = o.HandleEvent(ctx, 1, SubmitQuestion{Skip: true})
	if !strings.Contains(resp.Text, "the cards speak of patience") {
		t.Fatalf("interpretation missing from result: %q", resp.Text)
	}
	if strings.Contains(resp.Text, "Question:") {
		t.Fatalf("skipped question should not appear in result: %q", resp.Text)
	}

	sess, ok := o.sessions.Peek(1)
	if !ok || sess.State != session.StateIdle {
		t.Fatalf("session should fold back to idle, got %v", sess.State)
	}

	recs, _ := rec.LoadReadings()
	if len(recs) != 1 || recs[0].Outcome != "ok" || recs[0].Model != "openai:gpt-4o-mini" {
		t.Fatalf("unexpected records: %+v", recs)
	}
	if len(recs[0].Cards) != 1 {
		t.Fatalf("single spread should record one card, got %d", len(recs[0].Cards))
	}
}

func TestQuestionAppearsInResult(t *testing.T) {
	ctx := context.Background()
	o := New(testParams(&fakeAI{}, &memRecorder{}, 3))

	o.HandleEvent(ctx, 1, StartReading{})
	o.HandleEvent(ctx, 1, SelectSpread{Spread: deck.SpreadThreeCard})
	resp := o.HandleEvent(ctx, 1, SubmitQuestion{Text: "what about my job?"})
	if !strings.Contains(resp.Text, "what about my job?") {
		t.Fatalf("question missing from result: %q", resp.Text)
	}
}

func TestQuotaDeniedLeavesSessionUntouched(t *testing.T) {
	ctx := context.Background()
	o := New(testParams(&fakeAI{}, &memRecorder{}, 3))

	for i := 0; i < 3; i++ {
		if resp := o.HandleEvent(ctx, 1, StartReading{}); len(resp.Buttons) == 0 {
			t.Fatalf("reading %d should be admitted: %q", i+1, resp.Text)
		}
	}
	resp := o.HandleEvent(ctx, 1, StartReading{})
	if !strings.Contains(resp.Text, "Try again after") {
		t.Fatalf("fourth reading should be denied: %q", resp.Text)
	}
	sess, _ := o.sessions.Peek(1)
	if sess.State != session.StateAwaitingSpread {
		t.Fatalf("denial must not disturb the session, got %v", sess.State)
	}
}

func TestMidFlowStartRejectedWhenRestartDisabled(t *testing.T) {
	ctx := context.Background()
	p := testParams(&fakeAI{}, &memRecorder{}, 3)
	p.RestartMidFlow = false
	o := New(p)

	o.HandleEvent(ctx, 1, StartReading{})
	resp := o.HandleEvent(ctx, 1, StartReading{})
	if !strings.Contains(resp.Text, "already in progress") {
		t.Fatalf("second start should be rejected: %q", resp.Text)
	}
	// The rejected start must not burn quota.
	if left := o.limiter.Remaining(1, ratelimit.TierFree); left != 2 {
		t.Fatalf("want 2 readings left, got %d", left)
	}
}

func TestDegradedReadingOnProviderFailure(t *testing.T) {
	ctx := context.Background()
	ai := &fakeAI{err: errors.New("all providers failed")}
	rec := &memRecorder{}
	o := New(testParams(ai, rec, 3))

	o.HandleEvent(ctx, 1, StartReading{})
	o.HandleEvent(ctx, 1, SelectSpread{Spread: deck.SpreadSingle})
	resp := o.HandleEvent(ctx, 1, SubmitQuestion{Skip: true})

	if !strings.Contains(resp.Text, "traditional meanings") {
		t.Fatalf("degraded notice missing: %q", resp.Text)
	}
	recs, _ := rec.LoadReadings()
	if len(recs) != 1 || recs[0].Outcome != "degraded" {
		t.Fatalf("want one degraded record, got %+v", recs)
	}
	// Degraded mode still shows the drawn card with its static meaning.
	if !strings.Contains(resp.Text, recs[0].Cards[0].Meaning()) {
		t.Fatalf("static meaning missing from degraded result: %q", resp.Text)
	}
	sess, _ := o.sessions.Peek(1)
	if sess.State != session.StateIdle {
		t.Fatalf("degraded reading should still end idle, got %v", sess.State)
	}
}

func TestCancelDuringInterpretationDiscardsResult(t *testing.T) {
	ctx := context.Background()
	ai := &fakeAI{}
	rec := &memRecorder{}
	o := New(testParams(ai, rec, 3))
	ai.onInterpret = func() {
		o.HandleEvent(ctx, 1, Cancel{})
	}

	o.HandleEvent(ctx, 1, StartReading{})
	o.HandleEvent(ctx, 1, SelectSpread{Spread: deck.SpreadSingle})
	resp := o.HandleEvent(ctx, 1, SubmitQuestion{Skip: true})

	if !strings.Contains(resp.Text, "cancelled before") {
		t.Fatalf("stale result should be discarded: %q", resp.Text)
	}
	if got := rec.outcomes(); len(got) != 1 || got[0] != "cancelled" {
		t.Fatalf("want exactly one cancelled record, got %v", got)
	}
}

func TestQuestionDuringInterpretationRejected(t *testing.T) {
	ctx := context.Background()
	ai := &fakeAI{}
	o := New(testParams(ai, &memRecorder{}, 3))

	var nested Response
	ai.onInterpret = func() {
		nested = o.HandleEvent(ctx, 1, SubmitQuestion{Text: "one more thing"})
	}

	o.HandleEvent(ctx, 1, StartReading{})
	o.HandleEvent(ctx, 1, SelectSpread{Spread: deck.SpreadSingle})
	resp := o.HandleEvent(ctx, 1, SubmitQuestion{Skip: true})

	if !strings.Contains(nested.Text, "already in progress") {
		t.Fatalf("question while interpreting should be rejected: %q", nested.Text)
	}
	if ai.interpretCalls != 1 {
		t.Fatalf("rejected question must not trigger a second interpretation, got %d calls", ai.interpretCalls)
	}
	if !strings.Contains(resp.Text, "the cards speak of patience") {
		t.Fatalf("original reading should still finish: %q", resp.Text)
	}
}

func TestPanicResetsSessionToIdle(t *testing.T) {
	ctx := context.Background()
	ai := &fakeAI{}
	o := New(testParams(ai, &memRecorder{}, 3))
	ai.onInterpret = func() { panic("provider library bug") }

	o.HandleEvent(ctx, 1, StartReading{})
	o.HandleEvent(ctx, 1, SelectSpread{Spread: deck.SpreadSingle})
	resp := o.HandleEvent(ctx, 1, SubmitQuestion{Skip: true})

	if !strings.Contains(resp.Text, "went wrong") {
		t.Fatalf("panic should surface the generic error: %q", resp.Text)
	}
	sess, _ := o.sessions.Peek(1)
	if sess.State != session.StateIdle {
		t.Fatalf("panic must not leave the session stuck, got %v", sess.State)
	}
}

func TestCancelFlow(t *testing.T) {
	ctx := context.Background()
	o := New(testParams(&fakeAI{}, &memRecorder{}, 3))

	if resp := o.HandleEvent(ctx, 1, Cancel{}); !strings.Contains(resp.Text, "Nothing to cancel") {
		t.Fatalf("idle cancel: %q", resp.Text)
	}

	o.HandleEvent(ctx, 1, StartReading{})
	o.HandleEvent(ctx, 1, SelectSpread{Spread: deck.SpreadLove})
	if resp := o.HandleEvent(ctx, 1, Cancel{}); !strings.Contains(resp.Text, "Reading cancelled") {
		t.Fatalf("mid-flow cancel: %q", resp.Text)
	}
	if resp := o.HandleEvent(ctx, 1, SubmitQuestion{Text: "hello?"}); !strings.Contains(resp.Text, "no reading in progress") {
		t.Fatalf("events after cancel should be rejected: %q", resp.Text)
	}
}

func TestQuestionBeforeSpreadRepeatsMenu(t *testing.T) {
	ctx := context.Background()
	o := New(testParams(&fakeAI{}, &memRecorder{}, 3))

	o.HandleEvent(ctx, 1, StartReading{})
	resp := o.HandleEvent(ctx, 1, SubmitQuestion{Text: "too early"})
	if len(resp.Buttons) != len(deck.AllSpreads()) {
		t.Fatalf("free text before spread selection should re-show the menu, got %v", resp.Buttons)
	}
}

func TestDailyCardCachedPerDay(t *testing.T) {
	ctx := context.Background()
	ai := &fakeAI{}
	o := New(testParams(ai, &memRecorder{}, 3))

	first := o.DailyCard(ctx, 1)
	second := o.DailyCard(ctx, 1)
	if first.Text != second.Text {
		t.Fatalf("daily card changed within the day:\n%q\n%q", first.Text, second.Text)
	}
	if ai.dailyCalls != 1 {
		t.Fatalf("guidance should be generated once, got %d calls", ai.dailyCalls)
	}
}

func TestDailyCardConcurrentRequestsShareOneCard(t *testing.T) {
	ctx := context.Background()
	ai := &fakeAI{}
	o := New(testParams(ai, &memRecorder{}, 3))

	texts := make([]string, 2)
	var wg sync.WaitGroup
	for i := range texts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			texts[i] = o.DailyCard(ctx, 1).Text
		}(i)
	}
	wg.Wait()

	if texts[0] != texts[1] {
		t.Fatalf("concurrent requests drew different cards:\n%q\n%q", texts[0], texts[1])
	}
	if ai.dailyCalls != 1 {
		t.Fatalf("guidance should be generated once, got %d calls", ai.dailyCalls)
	}
}

func TestDailyCardFallsBackToStaticMeaning(t *testing.T) {
	ctx := context.Background()
	ai := &fakeAI{err: errors.New("all providers failed")}
	o := New(testParams(ai, &memRecorder{}, 3))

	resp := o.DailyCard(ctx, 1)
	if !strings.Contains(resp.Text, "card of the day") {
		t.Fatalf("daily title missing: %q", resp.Text)
	}
	// With every provider down the guidance block is the card's own meaning,
	// so the text must still carry substance beyond the title.
	if len(resp.Text) < 40 {
		t.Fatalf("fallback daily text too thin: %q", resp.Text)
	}
}

func TestExplainCard(t *testing.T) {
	ctx := context.Background()
	o := New(testParams(&fakeAI{}, &memRecorder{}, 3))

	if resp := o.Explain(ctx, 1, "major_0"); !strings.Contains(resp.Text, "a card of beginnings") {
		t.Fatalf("explanation missing: %q", resp.Text)
	}
	if resp := o.Explain(ctx, 1, "no_such_card"); !strings.Contains(resp.Text, "do not know that card") {
		t.Fatalf("unknown card: %q", resp.Text)
	}
}

func TestExplainFallsBackToCatalog(t *testing.T) {
	ctx := context.Background()
	ai := &fakeAI{err: errors.New("all providers failed")}
	o := New(testParams(ai, &memRecorder{}, 3))

	resp := o.Explain(ctx, 1, "major_0")
	if !strings.Contains(resp.Text, "upright") || !strings.Contains(resp.Text, "reversed") {
		t.Fatalf("static meanings missing: %q", resp.Text)
	}
}
