package i18n

import (
	"fmt"
	"sync"

	"glas-taro/internal/deck"
)

// Lang is a supported reply language.
type Lang string

const (
	LangEN Lang = "en"
	LangRU Lang = "ru"
	LangZH Lang = "zh"
)

// Supported lists selectable languages in menu order.
func Supported() []Lang { return []Lang{LangEN, LangRU, LangZH} }

// Name returns the self-describing display name of a language.
func Name(l Lang) string {
	switch l {
	case LangRU:
		return "Русский"
	case LangZH:
		return "中文"
	default:
		return "English"
	}
}

// Manager keeps per-user language preferences. English is the default.
type Manager struct {
	mu    sync.RWMutex
	prefs map[int64]Lang
}

func NewManager() *Manager {
	return &Manager{prefs: make(map[int64]Lang)}
}

// UserLanguage returns the user's preference or the default.
func (m *Manager) UserLanguage(userID int64) Lang {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if l, ok := m.prefs[userID]; ok {
		return l
	}
	return LangEN
}

// SetUserLanguage stores a preference; unknown codes are rejected.
func (m *Manager) SetUserLanguage(userID int64, l Lang) bool {
	if _, ok := texts[l]; !ok {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs[userID] = l
	return true
}

// AutoDetect seeds a preference from the channel's locale code on first
// contact; an explicit choice later overrides it.
func (m *Manager) AutoDetect(userID int64, localeCode string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.prefs[userID]; ok {
		return
	}
	switch {
	case len(localeCode) >= 2 && localeCode[:2] == "ru":
		m.prefs[userID] = LangRU
	case len(localeCode) >= 2 && localeCode[:2] == "zh":
		m.prefs[userID] = LangZH
	}
}

// Text resolves a catalog key in the user's language, falling back to
// English for holes in the catalog.
func (m *Manager) Text(userID int64, key string) string {
	lang := m.UserLanguage(userID)
	if s, ok := texts[lang][key]; ok {
		return s
	}
	if s, ok := texts[LangEN][key]; ok {
		return s
	}
	return key
}

// Textf is Text plus sprintf arguments.
func (m *Manager) Textf(userID int64, key string, args ...interface{}) string {
	return fmt.Sprintf(m.Text(userID, key), args...)
}

// SpreadName returns the localized display name of a spread.
func (m *Manager) SpreadName(userID int64, st deck.SpreadType) string {
	return m.Text(userID, "spread_"+string(st))
}
