package services

import (
	"sync"

	"github.com/google/uuid"
	"github.com/srgjo27/epic_events/internal/core/domain"
)

// SelectionStore is the ordered set of games a visitor has picked for a
// booking. Membership is by game ID. Games are kept in the order they were
// first toggled since the last Clear, so deselecting and reselecting a game
// puts it back where it was.
type SelectionStore struct {
	mu       sync.RWMutex
	games    []domain.GameOffering
	rank     map[uuid.UUID]int
	nextRank int
}

func NewSelectionStore() *SelectionStore {
	return &SelectionStore{rank: make(map[uuid.UUID]int)}
}

// Toggle adds the game when absent and removes it when present. It reports
// whether the game is selected afterwards.
func (s *SelectionStore) Toggle(game domain.GameOffering) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, g := range s.games {
		if g.ID == game.ID {
			s.games = append(s.games[:i:i], s.games[i+1:]...)
			return false
		}
	}

	r, seen := s.rank[game.ID]
	if !seen {
		r = s.nextRank
		s.nextRank++
		s.rank[game.ID] = r
	}

	pos := len(s.games)
	for i, g := range s.games {
		if s.rank[g.ID] > r {
			pos = i
			break
		}
	}

	s.games = append(s.games[:pos:pos], append([]domain.GameOffering{game}, s.games[pos:]...)...)
	return true
}

func (s *SelectionStore) Clear() {
	s.mu.Lock()
	s.games = nil
	s.rank = make(map[uuid.UUID]int)
	s.nextRank = 0
	s.mu.Unlock()
}

// Remove drops the given games from the selection. Games that are not
// selected are ignored. When the selection becomes empty its order is
// forgotten, as after Clear.
func (s *SelectionStore) Remove(ids ...uuid.UUID) {
	drop := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.games[:0:0]
	for _, g := range s.games {
		if drop[g.ID] {
			delete(s.rank, g.ID)
			continue
		}
		kept = append(kept, g)
	}
	s.games = kept

	if len(s.games) == 0 {
		s.rank = make(map[uuid.UUID]int)
		s.nextRank = 0
	}
}

func (s *SelectionStore) Contains(id uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, g := range s.games {
		if g.ID == id {
			return true
		}
	}

	return false
}

// Games returns a copy of the selection in insertion order.
func (s *SelectionStore) Games() []domain.GameOffering {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.GameOffering, len(s.games))
	copy(out, s.games)
	return out
}

func (s *SelectionStore) IDs() []uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]uuid.UUID, 0, len(s.games))
	for _, g := range s.games {
		ids = append(ids, g.ID)
	}

	return ids
}

func (s *SelectionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.games)
}
