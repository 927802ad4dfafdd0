package ratelimit

import (
	"sync"
	"time"
)

// Tier is a user's quota class.
type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

// Limits describes one tier: how many readings per window.
type Limits struct {
	Ceiling int
	Window  time.Duration
}

// Result of a quota check. When denied, RetryAt says when the window opens.
type Result struct {
	Allowed   bool
	Remaining int
	RetryAt   time.Time
}

type record struct {
	windowStart time.Time
	count       int
}

// Limiter tracks per-user request counts in fixed windows that start at the
// first request. The check and the increment happen under one lock so two
// concurrent requests cannot both take the last slot.
type Limiter struct {
	mu      sync.Mutex
	limits  map[Tier]Limits
	records map[int64]*record
	now     func() time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock replaces the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

func New(limits map[Tier]Limits, opts ...Option) *Limiter {
	l := &Limiter{
		limits:  limits,
		records: make(map[int64]*record),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// CheckAndConsume admits or rejects one reading request. An elapsed window is
// reset to an empty one before the new request is evaluated, so the first
// request after rollover always passes and counts as 1.
func (l *Limiter) CheckAndConsume(userID int64, tier Tier) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.limits[tier]
	if !ok {
		lim = l.limits[TierFree]
	}

	now := l.now()
	rec, ok := l.records[userID]
	if !ok || now.Sub(rec.windowStart) >= lim.Window {
		rec = &record{windowStart: now}
		l.records[userID] = rec
	}

	if rec.count >= lim.Ceiling {
		return Result{
			Allowed: false,
			RetryAt: rec.windowStart.Add(lim.Window),
		}
	}

	rec.count++
	return Result{
		Allowed:   true,
		Remaining: lim.Ceiling - rec.count,
	}
}

// Remaining reports the quota left without consuming a slot.
func (l *Limiter) Remaining(userID int64, tier Tier) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.limits[tier]
	if !ok {
		lim = l.limits[TierFree]
	}
	rec, ok := l.records[userID]
	if !ok || l.now().Sub(rec.windowStart) >= lim.Window {
		return lim.Ceiling
	}
	left := lim.Ceiling - rec.count
	if left < 0 {
		return 0
	}
	return left
}

// Purge drops records whose window has elapsed for every configured tier and
// returns how many were removed. Expired records are already treated as
// absent, so this only reclaims memory.
func (l *Limiter) Purge() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	var maxWindow time.Duration
	for _, lim := range l.limits {
		if lim.Window > maxWindow {
			maxWindow = lim.Window
		}
	}

	now := l.now()
	removed := 0
	for id, rec := range l.records {
		if now.Sub(rec.windowStart) >= maxWindow {
			delete(l.records, id)
			removed++
		}
	}
	return removed
}
