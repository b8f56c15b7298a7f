package repository

import (
	"sync"

	"github.com/AbuBakkarSiddique007/bhojonbox-server/entity"
)

// MemoryCartStore is the in-memory CartStore used by tests and local
// development without a database.
type MemoryCartStore struct {
	mu    sync.Mutex
	carts map[uint][]entity.CartLine
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[uint][]entity.CartLine)}
}

func (s *MemoryCartStore) Load(userID uint) []entity.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[userID]
	out := make([]entity.CartLine, len(lines))
	copy(out, lines)
	return out
}

func (s *MemoryCartStore) Save(userID uint, lines []entity.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]entity.CartLine, len(lines))
	copy(cp, lines)
	s.carts[userID] = cp
	return nil
}
