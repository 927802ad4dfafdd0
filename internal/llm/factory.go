package llm

import (
	"fmt"
	"strings"
)

const (
	ProviderOpenAI   = "openai"
	ProviderDeepSeek = "deepseek"
	ProviderYandex   = "yandex"
)

const defaultDeepSeekBaseURL = "https://api.deepseek.com/v1"

// ProviderRef names one link of the fallback chain, e.g. openai:gpt-4o-mini.
type ProviderRef struct {
	Provider string
	Model    string
}

func (r ProviderRef) String() string { return r.Provider + ":" + r.Model }

// ParseProviderRef parses "provider:model" as configured in the chain.
func ParseProviderRef(raw string) (ProviderRef, error) {
	parts := strings.SplitN(strings.TrimSpace(raw), ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return ProviderRef{}, fmt.Errorf("invalid provider reference %q, want provider:model", raw)
	}
	return ProviderRef{Provider: strings.ToLower(parts[0]), Model: parts[1]}, nil
}

// Factory creates LLM clients with consistent credential handling.
type Factory struct {
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	DeepSeekAPIKey  string
	DeepSeekBaseURL string
	YandexOAuth     string
	YandexFolderID  string

	MaxTokens   int
	Temperature float32
}

func (f *Factory) CreateClient(ref ProviderRef) (Client, error) {
	switch ref.Provider {
	case ProviderOpenAI:
		if f.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("openai provider configured without OPENAI_API_KEY")
		}
		return NewOpenAI(f.OpenAIAPIKey, f.OpenAIBaseURL, ref.Model, f.MaxTokens, f.Temperature), nil
	case ProviderDeepSeek:
		if f.DeepSeekAPIKey == "" {
			return nil, fmt.Errorf("deepseek provider configured without DEEPSEEK_API_KEY")
		}
		base := f.DeepSeekBaseURL
		if base == "" {
			base = defaultDeepSeekBaseURL
		}
		return NewOpenAI(f.DeepSeekAPIKey, base, ref.Model, f.MaxTokens, f.Temperature), nil
	case ProviderYandex:
		if f.YandexOAuth == "" || f.YandexFolderID == "" {
			return nil, fmt.Errorf("yandex provider configured without YANDEX_OAUTH_TOKEN or YANDEX_FOLDER_ID")
		}
		return NewYandex(f.YandexOAuth, f.YandexFolderID)
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", ref.Provider)
	}
}

// BuildChain resolves an ordered fallback chain into live clients.
func (f *Factory) BuildChain(refs []ProviderRef) ([]ChainLink, error) {
	if len(refs) == 0 {
		return nil, fmt.Errorf("empty provider chain")
	}
	chain := make([]ChainLink, 0, len(refs))
	for _, ref := range refs {
		client, err := f.CreateClient(ref)
		if err != nil {
			return nil, fmt.Errorf("chain link %s: %w", ref, err)
		}
		chain = append(chain, ChainLink{Ref: ref, Client: client})
	}
	return chain, nil
}
