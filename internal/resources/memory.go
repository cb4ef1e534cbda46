package resources

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/havenlink/haven-bot/internal/models"
)

// MemoryStore is an in-memory resource store used for tests and for running
// the bot without a database.
type MemoryStore struct {
	mu        sync.RWMutex
	resources []models.Resource
}

func NewMemoryStore(resources ...models.Resource) *MemoryStore {
	return &MemoryStore{resources: resources}
}

// Add appends resources to the store.
func (s *MemoryStore) Add(resources ...models.Resource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resources = append(s.resources, resources...)
}

func (s *MemoryStore) ByCategory(ctx context.Context, name string, limit int) ([]models.Resource, error) {
	return s.collect(limit, func(r models.Resource) bool {
		return r.Category != nil && strings.EqualFold(r.Category.Name, name)
	}), nil
}

func (s *MemoryStore) Search(ctx context.Context, query string, limit int) ([]models.Resource, error) {
	q := strings.ToLower(query)
	return s.collect(limit, func(r models.Resource) bool {
		if strings.Contains(strings.ToLower(r.Title), q) ||
			strings.Contains(strings.ToLower(r.Description), q) ||
			strings.Contains(strings.ToLower(r.Content), q) {
			return true
		}
		for _, kw := range r.Keywords {
			if strings.Contains(strings.ToLower(kw), q) {
				return true
			}
		}
		return false
	}), nil
}

func (s *MemoryStore) ByTags(ctx context.Context, tags []string, limit int) ([]models.Resource, error) {
	return s.collect(limit, func(r models.Resource) bool {
		for _, want := range tags {
			for _, have := range r.Tags {
				if strings.EqualFold(want, have) {
					return true
				}
			}
		}
		return false
	}), nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) collect(limit int, match func(models.Resource) bool) []models.Resource {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Resource
	for _, r := range s.resources {
		if r.IsActive && match(r) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
