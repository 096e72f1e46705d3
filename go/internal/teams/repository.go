package teams

import (
	"context"
	"fmt"

	"github.com/mcdev12/liga/go/internal/models"
	"github.com/mcdev12/liga/go/internal/store"
)

// Repository implements team data access on top of the persisted store
type Repository struct {
	store *store.Store[[]models.Team]
}

// NewRepository creates a new teams repository
func NewRepository(s *store.Store[[]models.Team]) *Repository {
	return &Repository{
		store: s,
	}
}

// AppendTeam adds a team to the end of the collection with a single write
func (r *Repository) AppendTeam(ctx context.Context, team models.Team) error {
	r.store.Update(ctx, func(cur []models.Team) []models.Team {
		next := make([]models.Team, 0, len(cur)+1)
		next = append(next, cur...)
		return append(next, team)
	})
	return nil
}

// GetTeam retrieves a team by ID
func (r *Repository) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	for _, t := range r.store.Get(ctx) {
		if t.ID == id {
			team := t
			return &team, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListTeams retrieves all teams in insertion order
func (r *Repository) ListTeams(ctx context.Context) []models.Team {
	return r.store.Get(ctx)
}
