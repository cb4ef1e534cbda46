package resources

import (
	"context"
	"testing"

	"github.com/havenlink/haven-bot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func housingStore() *MemoryStore {
	housing := &models.Category{ID: 1, Name: "Housing"}
	return NewMemoryStore(
		models.Resource{
			ID: 1, Title: "City Shelter Network", Description: "Emergency housing support",
			Category: housing, Keywords: []string{"housing", "shelter"},
			IsActive: true, Priority: 10,
		},
		models.Resource{
			ID: 2, Title: "Closed Housing Project", Description: "Former housing charity",
			Category: housing, Keywords: []string{"housing"},
			IsActive: false, Priority: 20,
		},
		models.Resource{
			ID: 3, Title: "Tenant Rights Hotline", Description: "Advice on housing disputes",
			Category: housing, Keywords: []string{"housing", "tenancy"},
			IsActive: true, Priority: 50,
		},
	)
}

func TestSearchFiltersInactive(t *testing.T) {
	store := housingStore()

	got, err := store.Search(context.Background(), "housing", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, r := range got {
		assert.True(t, r.IsActive)
		assert.NotEqual(t, int64(2), r.ID)
	}
}

func TestSearchOrdersByPriorityDescending(t *testing.T) {
	store := housingStore()

	got, err := store.Search(context.Background(), "housing", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(1), got[1].ID)
}

func TestSearchMatchesAcrossFields(t *testing.T) {
	store := housingStore()

	byTitle, err := store.Search(context.Background(), "tenant rights", 10)
	require.NoError(t, err)
	require.Len(t, byTitle, 1)

	byDescription, err := store.Search(context.Background(), "disputes", 10)
	require.NoError(t, err)
	require.Len(t, byDescription, 1)

	byKeyword, err := store.Search(context.Background(), "tenancy", 10)
	require.NoError(t, err)
	require.Len(t, byKeyword, 1)
}

func TestSearchRespectsLimit(t *testing.T) {
	store := housingStore()

	got, err := store.Search(context.Background(), "housing", 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
}

func TestByCategoryCaseInsensitive(t *testing.T) {
	store := housingStore()

	got, err := store.ByCategory(context.Background(), "housing", 10)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestByTagsAnyMatch(t *testing.T) {
	crisis := &models.Category{ID: 2, Name: "Crisis Support"}
	store := NewMemoryStore(
		models.Resource{
			ID: 1, Title: "Night Line", Category: crisis,
			Tags: []string{"Crisis", "24/7"}, IsActive: true, Priority: 5,
		},
		models.Resource{
			ID: 2, Title: "Day Centre", Category: crisis,
			Tags: []string{"Drop-in"}, IsActive: true, Priority: 9,
		},
	)

	got, err := Crisis(context.Background(), store)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Night Line", got[0].Title)
}
