package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"glas-taro/internal/config"
	"glas-taro/internal/deck"
	"glas-taro/internal/i18n"
	"glas-taro/internal/llm"
	"glas-taro/internal/ratelimit"
	"glas-taro/internal/reading"
	"glas-taro/internal/scheduler"
	"glas-taro/internal/session"
	"glas-taro/internal/storage"
	"glas-taro/internal/telegram"
	"glas-taro/internal/tier"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	tarot := deck.New(deck.WithReversedProbability(cfg.ReversedProbability))

	sessions := session.NewStore(cfg.SessionTimeout)
	limiter := ratelimit.New(map[ratelimit.Tier]ratelimit.Limits{
		ratelimit.TierFree:    {Ceiling: cfg.FreeDailyLimit, Window: cfg.QuotaWindow},
		ratelimit.TierPremium: {Ceiling: cfg.PremiumDailyLimit, Window: cfg.QuotaWindow},
	})

	var premiumRepo tier.Repository
	if cfg.PremiumFilePath != "" {
		repo, err := tier.NewFileRepository(cfg.PremiumFilePath)
		if err != nil {
			log.Printf("failed to init premium repo: %v", err)
		} else {
			premiumRepo = repo
		}
	}
	tiers, err := tier.NewWithRepo(premiumRepo, cfg.PremiumUsers)
	if err != nil {
		log.Fatalf("failed to init tier service: %v", err)
	}

	refs := make([]llm.ProviderRef, 0, len(cfg.FallbackChain))
	for _, raw := range cfg.FallbackChain {
		ref, err := llm.ParseProviderRef(raw)
		if err != nil {
			log.Fatalf("bad fallback chain: %v", err)
		}
		refs = append(refs, ref)
	}
	factory := &llm.Factory{
		OpenAIAPIKey:    cfg.OpenAIAPIKey,
		OpenAIBaseURL:   cfg.OpenAIBaseURL,
		DeepSeekAPIKey:  cfg.DeepSeekAPIKey,
		DeepSeekBaseURL: cfg.DeepSeekBaseURL,
		YandexOAuth:     cfg.YandexOAuthToken,
		YandexFolderID:  cfg.YandexFolderID,
		MaxTokens:       cfg.MaxTokens,
		Temperature:     float32(cfg.Temperature),
	}
	chain, err := factory.BuildChain(refs)
	if err != nil {
		log.Fatalf("failed to build provider chain: %v", err)
	}
	interp := llm.NewInterpreter(chain, llm.Policy{
		MaxRetries:     cfg.MaxRetries,
		InitialBackoff: cfg.InitialBackoff,
		AttemptTimeout: cfg.AttemptTimeout,
		MaxReplyLen:    cfg.MaxReplyLen,
	})

	var rec storage.Recorder
	if cfg.ReadingsFilePath != "" {
		fr, err := storage.NewFileRecorder(cfg.ReadingsFilePath)
		if err != nil {
			log.Printf("failed to init readings recorder: %v", err)
		} else {
			rec = fr
		}
	}

	texts := i18n.NewManager()

	orch := reading.New(reading.Params{
		Deck:           tarot,
		Sessions:       sessions,
		Limiter:        limiter,
		Tiers:          tiers,
		AI:             interp,
		Recorder:       rec,
		Texts:          texts,
		RestartMidFlow: cfg.ReadingRestart,
	})

	sched := scheduler.New(sessions.Purge, limiter.Purge)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	bot, err := telegram.New(cfg.TelegramBotToken, orch, texts, tarot, tiers, cfg.AdminUserID)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	bot.Start(context.Background())
}
