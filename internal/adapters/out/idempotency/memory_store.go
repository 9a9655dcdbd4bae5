package idempotency

import (
	"context"
	"sync"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"
)

var _ ports.IdempotencyStore = (*MemoryStore)(nil)

type entry struct {
	value     string
	expiresAt time.Time
}

// MemoryStore keeps keys in process memory. It is used when no Redis address
// is configured and only works for a single instance.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]entry
	clock   kernel.Clock

	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewMemoryStore starts a background sweep that drops expired keys every
// cleanupInterval. A zero interval disables the sweep.
func NewMemoryStore(clock kernel.Clock, cleanupInterval time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries:  make(map[string]entry),
		clock:    clock,
		stopChan: make(chan struct{}),
	}

	if cleanupInterval > 0 {
		s.wg.Add(1)
		go s.cleanupLoop(cleanupInterval)
	}

	return s
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || !s.clock.Now().Before(e.expiresAt) {
		return "", false, nil
	}
	return e.value, true, nil
}

func (s *MemoryStore) SetIfAbsent(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if e, ok := s.entries[key]; ok && now.Before(e.expiresAt) {
		return false, nil
	}
	s.entries[key] = entry{value: value, expiresAt: now.Add(ttl)}
	return true, nil
}

// Close stops the sweep. Safe to call more than once.
func (s *MemoryStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
	return nil
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *MemoryStore) cleanupLoop(interval time.Duration) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.cleanup()
		}
	}
}

func (s *MemoryStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	for key, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, key)
		}
	}
}
