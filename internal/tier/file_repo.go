package tier

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// FileRepository keeps the premium list in a small JSON file.
type FileRepository struct {
	path string
	mu   sync.Mutex
}

func NewFileRepository(path string) (*FileRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure dir: %w", err)
	}
	// Touch file if not exists
	f, err := os.OpenFile(path, os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("touch file: %w", err)
	}
	_ = f.Close()
	return &FileRepository{path: path}, nil
}

func (r *FileRepository) LoadAll() ([]Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadUnlocked()
}

func (r *FileRepository) Upsert(m Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	members, _ := r.loadUnlocked()
	updated := false
	for i, cur := range members {
		if cur.ID == m.ID {
			members[i] = m
			updated = true
			break
		}
	}
	if !updated {
		members = append(members, m)
	}
	return r.saveUnlocked(members)
}

func (r *FileRepository) Remove(userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	members, _ := r.loadUnlocked()
	var out []Member
	for _, m := range members {
		if m.ID != userID {
			out = append(out, m)
		}
	}
	return r.saveUnlocked(out)
}

func (r *FileRepository) loadUnlocked() ([]Member, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()
	var members []Member
	if err := json.NewDecoder(f).Decode(&members); err != nil {
		if err == io.EOF {
			return []Member{}, nil
		}
		// empty or malformed -> start fresh
		return []Member{}, nil
	}
	return members, nil
}

func (r *FileRepository) saveUnlocked(members []Member) error {
	f, err := os.OpenFile(r.path, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(members)
}
