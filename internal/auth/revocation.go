package auth

import (
	"context"
	"sync"
	"time"
)

// RevocationStore remembers token ids that were logged out.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type MemoryRevocationStore struct {
	mu  sync.Mutex
	ids map[string]time.Time
	now func() time.Time
}

func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{ids: make(map[string]time.Time), now: time.Now}
}

func (m *MemoryRevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ids[tokenID] = m.now().Add(ttl)
	return nil
}

func (m *MemoryRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	until, ok := m.ids[tokenID]
	if !ok {
		return false, nil
	}
	if m.now().After(until) {
		delete(m.ids, tokenID)
		return false, nil
	}
	return true, nil
}

// StartCleaner drops expired entries every interval until ctx is done.
func (m *MemoryRevocationStore) StartCleaner(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.mu.Lock()
			now := m.now()
			for id, until := range m.ids {
				if now.After(until) {
					delete(m.ids, id)
				}
			}
			m.mu.Unlock()
		}
	}
}

func (m *MemoryRevocationStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ids)
}
