package engine

import (
	"context"
	"sync"
	"testing"

	"github.com/havenlink/haven-bot/internal/distress"
	"github.com/havenlink/haven-bot/internal/models"
	"github.com/havenlink/haven-bot/internal/resources"
	"github.com/havenlink/haven-bot/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type captureLog struct {
	mu      sync.Mutex
	entries []models.ConversationEntry
}

func (c *captureLog) Record(ctx context.Context, entry models.ConversationEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, entry)
	return nil
}

func newTestEngine(store resources.Store, log ConversationLog) (*Engine, *session.MemoryStore) {
	if store == nil {
		store = resources.NewMemoryStore()
	}
	sessions := session.NewMemoryStore(0)
	return New(sessions, store, log, zap.NewNop()), sessions
}

func TestRespondCriticalShortCircuits(t *testing.T) {
	eng, sessions := newTestEngine(nil, nil)
	ctx := context.Background()

	// Put the session mid-wellness first.
	_, err := eng.Respond(ctx, "wellness", "s1")
	require.NoError(t, err)
	_, err = eng.Respond(ctx, "my first answer", "s1")
	require.NoError(t, err)

	reply, err := eng.Respond(ctx, "I want to end my life", "s1")
	require.NoError(t, err)
	assert.Equal(t, distress.EmergencyMessage(models.DistressCritical), reply)

	// The crisis turn must not have touched dialogue state.
	sess, err := sessions.GetOrCreate(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.ServiceWellness, sess.CurrentService)
	require.NotNil(t, sess.Progress.Wellness)
	assert.Len(t, sess.Progress.Wellness.CompletedSections, 1)
}

func TestRespondCriticalAppendsCrisisResources(t *testing.T) {
	store := resources.NewMemoryStore(models.Resource{
		ID: 1, Title: "Night Line", Description: "24/7 listening service",
		Category: &models.Category{Name: "Crisis Support"},
		Tags:     []string{"Crisis", "24/7"},
		IsActive: true, Priority: 10,
	})
	eng, _ := newTestEngine(store, nil)

	reply, err := eng.Respond(context.Background(), "I want to end my life", "s2")
	require.NoError(t, err)
	assert.Contains(t, reply, distress.EmergencyMessage(models.DistressCritical))
	assert.Contains(t, reply, "Night Line")
}

func TestRespondHighSeverityShortCircuits(t *testing.T) {
	eng, _ := newTestEngine(nil, nil)

	reply, err := eng.Respond(context.Background(), "I'm hopeless, there's no way out", "s3")
	require.NoError(t, err)
	assert.Equal(t, distress.EmergencyMessage(models.DistressHigh), reply)
}

func TestRespondMediumSeverityAppendsSupportLine(t *testing.T) {
	eng, _ := newTestEngine(nil, nil)

	reply, err := eng.Respond(context.Background(), "I've been anxious and overwhelmed lately", "s4")
	require.NoError(t, err)
	assert.Contains(t, reply, distress.EmergencyMessage(models.DistressMedium))
	assert.NotEqual(t, distress.EmergencyMessage(models.DistressMedium), reply,
		"medium severity rides along with the routed reply, it doesn't replace it")
}

func TestRespondWellnessThenMenuMatchesFreshSession(t *testing.T) {
	eng, sessions := newTestEngine(nil, nil)
	ctx := context.Background()

	_, err := eng.Respond(ctx, "wellness", "used")
	require.NoError(t, err)
	_, err = eng.Respond(ctx, "main menu", "used")
	require.NoError(t, err)

	used, err := sessions.GetOrCreate(ctx, "used")
	require.NoError(t, err)
	fresh, err := sessions.GetOrCreate(ctx, "fresh")
	require.NoError(t, err)

	assert.Equal(t, fresh.CurrentService, used.CurrentService)
	assert.Equal(t, fresh.CurrentStep, used.CurrentStep)
	assert.True(t, used.Progress.Empty())
}

func TestRespondKeepsScriptStateAcrossTurns(t *testing.T) {
	eng, _ := newTestEngine(nil, nil)
	ctx := context.Background()

	first, err := eng.Respond(ctx, "journal", "s5")
	require.NoError(t, err)
	assert.Contains(t, first, "morning")

	second, err := eng.Respond(ctx, "morning", "s5")
	require.NoError(t, err)
	assert.Contains(t, second, "Breathwork")

	// Breathwork gate holds across Respond calls too.
	third, err := eng.Respond(ctx, "hmm", "s5")
	require.NoError(t, err)
	assert.Equal(t, second, third)
}

func TestRespondRecordsConversation(t *testing.T) {
	log := &captureLog{}
	eng, _ := newTestEngine(nil, log)

	_, err := eng.Respond(context.Background(), "hello there", "s6")
	require.NoError(t, err)

	require.Len(t, log.entries, 1)
	entry := log.entries[0]
	assert.Equal(t, "s6", entry.SessionID)
	assert.Equal(t, "hello there", entry.UserMessage)
	assert.NotEmpty(t, entry.BotReply)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, models.DistressLow, entry.DistressLevel)
}

func TestRespondRecordsCrisisTurns(t *testing.T) {
	log := &captureLog{}
	eng, _ := newTestEngine(nil, log)

	_, err := eng.Respond(context.Background(), "I want to end my life", "s7")
	require.NoError(t, err)

	require.Len(t, log.entries, 1)
	assert.Equal(t, models.DistressCritical, log.entries[0].DistressLevel)
}
