package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type memorySession struct {
	mu       sync.RWMutex
	sessions map[string]entity.Game
}

// NewMemorySessionRepository keeps sessions in process memory. Games are
// stored and returned by value so callers never share state with the store.
func NewMemorySessionRepository() SessionRepository {
	return &memorySession{
		sessions: make(map[string]entity.Game),
	}
}

func (that *memorySession) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.sessions[game.ID] = *game

	return nil
}

func (that *memorySession) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	game, ok := that.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return &game, nil
}

func (that *memorySession) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.sessions[id]; !ok {
		return ErrSessionNotFound
	}

	delete(that.sessions, id)

	return nil
}
