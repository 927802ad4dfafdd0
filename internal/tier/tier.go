package tier

import (
	"sync"

	"glas-taro/internal/ratelimit"
)

// Member is one premium subscriber.
type Member struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Repository persists the premium list across restarts.
type Repository interface {
	LoadAll() ([]Member, error)
	Upsert(m Member) error
	Remove(userID int64) error
}

// Service answers which quota tier a user belongs to. Everyone is free tier
// unless listed as premium.
type Service struct {
	mu      sync.RWMutex
	repo    Repository
	premium map[int64]Member
}

func NewWithRepo(repo Repository, initial []int64) (*Service, error) {
	s := &Service{repo: repo, premium: make(map[int64]Member)}
	if repo != nil {
		members, err := repo.LoadAll()
		if err == nil {
			for _, m := range members {
				s.premium[m.ID] = m
			}
		}
	}
	// merge initial IDs (from env) without usernames
	for _, id := range initial {
		if _, ok := s.premium[id]; !ok {
			s.premium[id] = Member{ID: id}
		}
	}
	return s, nil
}

// TierOf maps a user to their quota tier.
func (s *Service) TierOf(userID int64) ratelimit.Tier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.premium[userID]; ok {
		return ratelimit.TierPremium
	}
	return ratelimit.TierFree
}

func (s *Service) Grant(m Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.premium[m.ID] = m
	if s.repo != nil {
		return s.repo.Upsert(m)
	}
	return nil
}

func (s *Service) Revoke(userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.premium, userID)
	if s.repo != nil {
		return s.repo.Remove(userID)
	}
	return nil
}

func (s *Service) List() []Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Member, 0, len(s.premium))
	for _, m := range s.premium {
		out = append(out, m)
	}
	return out
}
