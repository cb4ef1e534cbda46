package resources

import (
	"context"

	"github.com/havenlink/haven-bot/internal/models"
)

// Store is the read-only resource lookup surface the dialogue layer uses.
// Every query filters to active resources and orders by priority descending.
// "Not found" is an empty slice, never an error.
type Store interface {
	ByCategory(ctx context.Context, name string, limit int) ([]models.Resource, error)
	Search(ctx context.Context, query string, limit int) ([]models.Resource, error)
	ByTags(ctx context.Context, tags []string, limit int) ([]models.Resource, error)
	Close() error
}

// crisisTags mark resources surfaced alongside emergency responses.
var crisisTags = []string{"Crisis", "Emergency", "24/7"}

// Crisis returns the top emergency-tagged resources.
func Crisis(ctx context.Context, s Store) ([]models.Resource, error) {
	return s.ByTags(ctx, crisisTags, 3)
}
