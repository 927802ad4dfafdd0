package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	TelegramBotToken string  `env:"TELEGRAM_BOT_TOKEN,required"`
	PremiumUsers     []int64 `env:"PREMIUM_USERS" envSeparator:":"`
	AdminUserID      int64   `env:"ADMIN_USER"`

	// Provider credentials
	OpenAIAPIKey     string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string `env:"OPENAI_BASE_URL"`
	DeepSeekAPIKey   string `env:"DEEPSEEK_API_KEY"`
	DeepSeekBaseURL  string `env:"DEEPSEEK_BASE_URL"`
	YandexOAuthToken string `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string `env:"YANDEX_FOLDER_ID"`

	// Fallback chain, walked in order. Each entry is provider:model.
	FallbackChain []string `env:"LLM_FALLBACK_CHAIN" envSeparator:"," envDefault:"openai:gpt-4o-mini,deepseek:deepseek-chat"`

	// Interpretation settings
	MaxRetries     int           `env:"LLM_MAX_RETRIES" envDefault:"2"`
	InitialBackoff time.Duration `env:"LLM_INITIAL_BACKOFF" envDefault:"500ms"`
	AttemptTimeout time.Duration `env:"LLM_TIMEOUT" envDefault:"30s"`
	MaxReplyLen    int           `env:"LLM_MAX_REPLY_LEN" envDefault:"3500"`
	MaxTokens      int           `env:"LLM_MAX_TOKENS" envDefault:"1200"`
	Temperature    float64       `env:"LLM_TEMPERATURE" envDefault:"0.8"`

	// Flow settings
	SessionTimeout      time.Duration `env:"SESSION_TIMEOUT" envDefault:"30m"`
	ReadingRestart      bool          `env:"READING_RESTART_MIDFLOW" envDefault:"true"`
	ReversedProbability float64       `env:"REVERSED_PROBABILITY" envDefault:"0.5"`

	// Quotas
	FreeDailyLimit    int           `env:"FREE_DAILY_LIMIT" envDefault:"3"`
	PremiumDailyLimit int           `env:"PREMIUM_DAILY_LIMIT" envDefault:"20"`
	QuotaWindow       time.Duration `env:"QUOTA_WINDOW" envDefault:"24h"`

	// Storage
	ReadingsFilePath string `env:"READINGS_FILE_PATH" envDefault:"data/readings.jsonl"`
	PremiumFilePath  string `env:"PREMIUM_FILE_PATH" envDefault:"data/premium.json"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
