package player

import (
	"context"
	"fmt"

	"github.com/mcdev12/liga/go/internal/models"
	"github.com/mcdev12/liga/go/internal/store"
)

// Repository implements player data access on top of the persisted store
type Repository struct {
	store *store.Store[[]models.Player]
}

// NewRepository creates a new player repository
func NewRepository(s *store.Store[[]models.Player]) *Repository {
	return &Repository{
		store: s,
	}
}

// AppendPlayer adds a player to the end of the collection with a single write
func (r *Repository) AppendPlayer(ctx context.Context, player models.Player) error {
	r.store.Update(ctx, func(cur []models.Player) []models.Player {
		next := make([]models.Player, 0, len(cur)+1)
		next = append(next, cur...)
		return append(next, player)
	})
	return nil
}

// GetPlayer retrieves a player by ID
func (r *Repository) GetPlayer(ctx context.Context, id string) (*models.Player, error) {
	for _, p := range r.store.Get(ctx) {
		if p.ID == id {
			player := p
			return &player, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListPlayers retrieves all players in insertion order
func (r *Repository) ListPlayers(ctx context.Context) []models.Player {
	return r.store.Get(ctx)
}
