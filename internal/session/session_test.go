package session

import (
	"errors"
	"strings"
	"testing"
	"time"

	"glas-taro/internal/deck"
)

func drawn(n int) []deck.DrawnCard {
	d := deck.New()
	cards, _ := d.Draw(n, false)
	return cards
}

func TestHappyPathTransitions(t *testing.T) {
	s := &Session{UserID: 1, State: StateIdle}

	if err := s.BeginReading(); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := s.ChooseSpread(deck.SpreadThreeCard); err != nil {
		t.Fatalf("choose: %v", err)
	}
	if err := s.AttachQuestion("what now?", drawn(3)); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if s.State != StateAwaitingInterpretation {
		t.Fatalf("state = %s", s.State)
	}
	if len(s.Cards) != 3 {
		t.Fatalf("cards = %d", len(s.Cards))
	}
	if err := s.Complete(); err != nil {
		t.Fatalf("complete: %v", err)
	}
	s.Reset()
	if s.State != StateIdle || s.Cards != nil || s.Question != "" {
		t.Fatalf("reset left residue: %+v", s)
	}
}

func TestInvalidEventIsRejectedNotCorrupting(t *testing.T) {
	s := &Session{UserID: 1, State: StateIdle}

	// SelectSpread without StartReading: explicit rejection, no transition.
	if err := s.ChooseSpread(deck.SpreadSingle); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if s.State != StateIdle || s.Spread != "" {
		t.Fatalf("state mutated by rejected event: %+v", s)
	}

	_ = s.BeginReading()
	if err := s.ChooseSpread(deck.SpreadType("pyramid")); !errors.Is(err, deck.ErrUnknownSpread) {
		t.Fatalf("expected ErrUnknownSpread, got %v", err)
	}
	if s.State != StateAwaitingSpread {
		t.Fatalf("invalid selection must re-prompt in place, state=%s", s.State)
	}
}

func TestCardCountMustMatchSpread(t *testing.T) {
	s := &Session{UserID: 1, State: StateIdle}
	_ = s.BeginReading()
	_ = s.ChooseSpread(deck.SpreadThreeCard)
	if err := s.AttachQuestion("", drawn(1)); err == nil {
		t.Fatalf("mismatched card count accepted")
	}
	if s.State != StateAwaitingQuestion || s.Cards != nil {
		t.Fatalf("failed attach mutated session: %+v", s)
	}
}

func TestQuestionTruncation(t *testing.T) {
	s := &Session{UserID: 1, State: StateIdle}
	_ = s.BeginReading()
	_ = s.ChooseSpread(deck.SpreadSingle)
	long := strings.Repeat("ы", MaxQuestionLen+100)
	if err := s.AttachQuestion(long, drawn(1)); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if got := len([]rune(s.Question)); got != MaxQuestionLen {
		t.Fatalf("question length %d, want %d", got, MaxQuestionLen)
	}
}

func TestResetBumpsEpoch(t *testing.T) {
	s := &Session{UserID: 1, State: StateIdle}
	before := s.Epoch
	s.Reset()
	if s.Epoch != before+1 {
		t.Fatalf("epoch %d, want %d", s.Epoch, before+1)
	}
}

func TestStoreLazyCreateAndExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	st := NewStore(30*time.Minute, WithClock(func() time.Time { return now }))

	sess, release := st.Acquire(42)
	if sess.State != StateIdle {
		t.Fatalf("new session not idle: %s", sess.State)
	}
	_ = sess.BeginReading()
	epoch := sess.Epoch
	release()

	// Within the timeout the flow survives.
	now = now.Add(10 * time.Minute)
	sess, release = st.Acquire(42)
	if sess.State != StateAwaitingSpread {
		t.Fatalf("session lost mid-flow: %s", sess.State)
	}
	release()

	// Past the timeout the session lazily resets to idle.
	now = now.Add(31 * time.Minute)
	sess, release = st.Acquire(42)
	if sess.State != StateIdle {
		t.Fatalf("expired session not reset: %s", sess.State)
	}
	if sess.Epoch != epoch+1 {
		t.Fatalf("expiry reset must bump epoch: %d", sess.Epoch)
	}
	release()
}

func TestStorePurge(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	st := NewStore(30*time.Minute, WithClock(func() time.Time { return now }))

	_, release := st.Acquire(1)
	release()
	now = now.Add(29 * time.Minute)
	_, release = st.Acquire(2)
	release()

	now = now.Add(time.Minute)
	if removed := st.Purge(); removed != 1 {
		t.Fatalf("purged %d, want 1", removed)
	}
	if _, ok := st.Peek(2); !ok {
		t.Fatalf("live session purged")
	}
	if _, ok := st.Peek(1); ok {
		t.Fatalf("stale session kept")
	}
}

func TestStoreSerializesPerUser(t *testing.T) {
	st := NewStore(time.Hour)
	sess, release := st.Acquire(5)
	done := make(chan struct{})
	go func() {
		s2, r2 := st.Acquire(5)
		if s2.State != StateAwaitingSpread {
			t.Errorf("second acquire saw partial state: %s", s2.State)
		}
		r2()
		close(done)
	}()
	_ = sess.BeginReading()
	release()
	<-done
}
