package llm

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"glas-taro/internal/deck"
)

// ChainLink is one provider/model pair in the ordered fallback chain.
type ChainLink struct {
	Ref    ProviderRef
	Client Client
}

// Policy holds the retry knobs shared by every link of the chain.
type Policy struct {
	// MaxRetries is the number of retries after the first attempt, per
	// provider.
	MaxRetries int
	// InitialBackoff seeds the exponential backoff; jitter is applied by
	// the backoff implementation.
	InitialBackoff time.Duration
	// AttemptTimeout bounds every single completion call.
	AttemptTimeout time.Duration
	// MaxReplyLen truncates interpretations, in runes. 0 disables.
	MaxReplyLen int
}

// DefaultPolicy mirrors the documented configuration defaults.
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries:     2,
		InitialBackoff: 500 * time.Millisecond,
		AttemptTimeout: 30 * time.Second,
		MaxReplyLen:    3500,
	}
}

// InterpretRequest carries everything needed to produce one reading.
type InterpretRequest struct {
	Spread   deck.SpreadType
	Cards    []deck.DrawnCard
	Question string
	Language string
}

// Interpretation is a successful reading plus the model that served it,
// which may be a fallback rather than the requested primary.
type Interpretation struct {
	Text  string
	Model string
}

// Interpreter walks an ordered provider chain with a single retry loop.
// Transient failures are retried with exponential backoff and jitter, then
// the next provider takes over; a fatal failure (bad credentials, rejected
// request) ends the whole request at once.
type Interpreter struct {
	chain  []ChainLink
	policy Policy
}

func NewInterpreter(chain []ChainLink, policy Policy) *Interpreter {
	return &Interpreter{chain: chain, policy: policy}
}

// Interpret produces a full spread reading.
func (i *Interpreter) Interpret(ctx context.Context, req InterpretRequest) (Interpretation, error) {
	msgs := []Message{
		{Role: "system", Content: readerSystemPrompt(req.Language)},
		{Role: "user", Content: readingPrompt(req)},
	}
	return i.complete(ctx, msgs)
}

// DailyGuidance produces a short one-card guidance text.
func (i *Interpreter) DailyGuidance(ctx context.Context, card deck.DrawnCard, language string) (Interpretation, error) {
	msgs := []Message{
		{Role: "system", Content: readerSystemPrompt(language)},
		{Role: "user", Content: dailyPrompt(card)},
	}
	return i.complete(ctx, msgs)
}

// ExplainCard produces a study-oriented explanation of a single card.
func (i *Interpreter) ExplainCard(ctx context.Context, card deck.Card, language string) (Interpretation, error) {
	msgs := []Message{
		{Role: "system", Content: readerSystemPrompt(language)},
		{Role: "user", Content: explainPrompt(card)},
	}
	return i.complete(ctx, msgs)
}

func (i *Interpreter) complete(ctx context.Context, msgs []Message) (Interpretation, error) {
	var lastErr error
	for n, link := range i.chain {
		resp, err := i.tryProvider(ctx, link, msgs)
		if err == nil {
			return i.postProcess(resp, link), nil
		}
		lastErr = err
		if !IsTransient(err) {
			log.Printf("provider %s failed fatally, not falling back: %v", link.Ref, err)
			return Interpretation{}, fmt.Errorf("%w: %s: %v", ErrAllProvidersFailed, link.Ref, err)
		}
		if n < len(i.chain)-1 {
			log.Printf("provider %s exhausted retries, switching to %s: %v", link.Ref, i.chain[n+1].Ref, err)
		}
	}
	return Interpretation{}, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

func (i *Interpreter) tryProvider(ctx context.Context, link ChainLink, msgs []Message) (Response, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = i.policy.InitialBackoff

	var resp Response
	op := func() error {
		attemptCtx, cancel := context.WithTimeout(ctx, i.policy.AttemptTimeout)
		defer cancel()

		r, err := link.Client.Generate(attemptCtx, msgs)
		if err != nil {
			if !IsTransient(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		resp = r
		return nil
	}

	err := backoff.Retry(op, backoff.WithContext(
		backoff.WithMaxRetries(bo, uint64(i.policy.MaxRetries)), ctx))
	if err != nil {
		return Response{}, err
	}
	return resp, nil
}

func (i *Interpreter) postProcess(resp Response, link ChainLink) Interpretation {
	text := strings.TrimSpace(resp.Content)
	text = stripFences(text)
	if i.policy.MaxReplyLen > 0 {
		if r := []rune(text); len(r) > i.policy.MaxReplyLen {
			text = strings.TrimSpace(string(r[:i.policy.MaxReplyLen])) + "…"
		}
	}
	return Interpretation{Text: text, Model: link.Ref.String()}
}

// stripFences removes markdown code fences some models wrap answers in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
