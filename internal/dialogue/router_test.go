package dialogue

import (
	"context"
	"errors"
	"testing"

	"github.com/havenlink/haven-bot/internal/models"
	"github.com/havenlink/haven-bot/internal/resources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(store resources.Store) *Router {
	if store == nil {
		store = resources.NewMemoryStore()
	}
	return NewRouter(store, zap.NewNop())
}

func newSession(id string) *models.Session {
	return &models.Session{ID: id}
}

func TestRouteStartsWellness(t *testing.T) {
	r := newTestRouter(nil)
	sess := newSession("r1")

	reply := r.Route(context.Background(), "I'd like some wellness coaching", sess)
	assert.Equal(t, models.ServiceWellness, sess.CurrentService)
	assert.Contains(t, reply, "Personal Snapshot")

	wp := sess.Progress.Wellness
	require.NotNil(t, wp)
	assert.Empty(t, wp.CompletedSections)
	assert.Equal(t, wellnessSections[0].ID, wp.CurrentSection)
}

func TestRouteStartsJournaling(t *testing.T) {
	r := newTestRouter(nil)
	sess := newSession("r2")

	reply := r.Route(context.Background(), "I want to journal tonight", sess)
	assert.Equal(t, models.ServiceJournaling, sess.CurrentService)
	assert.Equal(t, StepTimeIdentification, sess.CurrentStep)
	assert.Contains(t, reply, "morning")
	assert.Contains(t, reply, "evening")
}

func TestRouteHealthWinsOverWellness(t *testing.T) {
	r := newTestRouter(nil)
	sess := newSession("r3")

	// Both trigger sets match; health is checked first and must win.
	r.Route(context.Background(), "health and wellness stuff", sess)
	assert.Equal(t, models.ServiceHealth, sess.CurrentService)
}

func TestRouteActiveScriptOwnsTheTurn(t *testing.T) {
	r := newTestRouter(nil)
	sess := newSession("r4")

	r.Route(context.Background(), "wellness please", sess)
	// "housing" would be a resource intent, but the active script gets the
	// message as a section answer instead.
	reply := r.Route(context.Background(), "housing worries me", sess)
	assert.Contains(t, reply, "Wellness Domains")
	assert.Equal(t, "housing worries me",
		sess.Progress.Wellness.Responses[wellnessSections[0].ID])
}

func TestRouteResourceLookupByCategory(t *testing.T) {
	store := resources.NewMemoryStore(models.Resource{
		ID: 1, Title: "City Shelter Network", Description: "Emergency beds",
		Category: &models.Category{Name: "Housing"},
		IsActive: true, Priority: 10,
	})
	r := newTestRouter(store)
	sess := newSession("r5")

	reply := r.Route(context.Background(), "I need help with housing", sess)
	assert.Contains(t, reply, "City Shelter Network")
	assert.Empty(t, sess.CurrentService, "resource lookups must not start a script")
}

func TestRouteCrisisIntentUsesTagLookup(t *testing.T) {
	store := resources.NewMemoryStore(models.Resource{
		ID: 1, Title: "Night Line", Description: "Always there",
		Category: &models.Category{Name: "Crisis Support"},
		Tags:     []string{"Crisis", "24/7"},
		IsActive: true, Priority: 10,
	})
	r := newTestRouter(store)
	sess := newSession("r6")

	reply := r.Route(context.Background(), "is there an emergency line", sess)
	assert.Contains(t, reply, "Night Line")
}

func TestRouteGenericSupportFallsBackToSearch(t *testing.T) {
	store := resources.NewMemoryStore(models.Resource{
		ID: 1, Title: "Food Bank Finder", Description: "support with food parcels",
		Category: &models.Category{Name: "Food"},
		Keywords: []string{"food", "support"},
		IsActive: true, Priority: 1,
	})
	r := newTestRouter(store)
	sess := newSession("r7")

	reply := r.Route(context.Background(), "support", sess)
	assert.Contains(t, reply, "Food Bank Finder")
}

type failingStore struct{}

func (failingStore) ByCategory(ctx context.Context, name string, limit int) ([]models.Resource, error) {
	return nil, errors.New("connection refused")
}

func (failingStore) Search(ctx context.Context, query string, limit int) ([]models.Resource, error) {
	return nil, errors.New("connection refused")
}

func (failingStore) ByTags(ctx context.Context, tags []string, limit int) ([]models.Resource, error) {
	return nil, errors.New("connection refused")
}

func (failingStore) Close() error { return nil }

func TestRouteStoreFailureReadsAsNoResults(t *testing.T) {
	r := newTestRouter(failingStore{})
	sess := newSession("r8")

	reply := r.Route(context.Background(), "I need housing", sess)
	notFound := r.Route(context.Background(), "I need legal advice", newSession("r9"))

	assert.Equal(t, resources.Format(nil, ""), reply, "failure must render the generic fallback")
	assert.Equal(t, reply, notFound)
	assert.NotContains(t, reply, "connection refused")
}

func TestRouteResetKeywordsClearSession(t *testing.T) {
	r := newTestRouter(nil)
	sess := newSession("r10")

	reply := r.Route(context.Background(), "start over", sess)
	assert.Equal(t, MainMenuText(), reply)
	assert.Empty(t, sess.CurrentService)
	assert.True(t, sess.Progress.Empty())
}

func TestRouteFallsBackToWelcome(t *testing.T) {
	r := newTestRouter(nil)
	sess := newSession("r11")

	reply := r.Route(context.Background(), "hello there", sess)
	assert.Equal(t, WelcomeText(), reply)
}

func TestRouteMenuExitClearsActiveScript(t *testing.T) {
	r := newTestRouter(nil)
	sess := newSession("r12")

	r.Route(context.Background(), "wellness", sess)
	r.Route(context.Background(), "my first answer", sess)

	reply := r.Route(context.Background(), "main menu", sess)
	assert.Equal(t, MainMenuText(), reply)
	assert.Empty(t, sess.CurrentService)
	assert.Empty(t, sess.CurrentStep)
	assert.True(t, sess.Progress.Empty())
}

func TestRouteUnknownServiceResets(t *testing.T) {
	r := newTestRouter(nil)
	sess := newSession("r13")
	sess.CurrentService = "retired-service"

	reply := r.Route(context.Background(), "hello", sess)
	assert.Equal(t, MainMenuText(), reply)
	assert.Empty(t, sess.CurrentService)
}
