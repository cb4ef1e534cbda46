package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/havenlink/haven-bot/internal/dialogue"
	"github.com/havenlink/haven-bot/internal/distress"
	"github.com/havenlink/haven-bot/internal/models"
	"github.com/havenlink/haven-bot/internal/resources"
	"github.com/havenlink/haven-bot/internal/session"
	"go.uber.org/zap"
)

// ConversationLog receives one entry per handled turn. Failures are logged
// and never affect the reply.
type ConversationLog interface {
	Record(ctx context.Context, entry models.ConversationEntry) error
}

// NopLog discards entries; used when no durable log is configured.
type NopLog struct{}

func (NopLog) Record(ctx context.Context, entry models.ConversationEntry) error {
	return nil
}

// Engine is the conversational core: distress check, session management,
// dialogue routing, conversation logging. One call per inbound message.
type Engine struct {
	classifier *distress.Classifier
	sessions   session.Store
	resources  resources.Store
	router     *dialogue.Router
	log        ConversationLog
	logger     *zap.Logger
}

func New(sessions session.Store, store resources.Store, log ConversationLog, logger *zap.Logger) *Engine {
	if log == nil {
		log = NopLog{}
	}
	return &Engine{
		classifier: distress.NewClassifier(logger),
		sessions:   sessions,
		resources:  store,
		router:     dialogue.NewRouter(store, logger),
		log:        log,
		logger:     logger,
	}
}

// Respond handles one user message for one session and returns the reply
// text. The distress check runs first and, on critical or high severity,
// short-circuits before any session state is read or written.
func (e *Engine) Respond(ctx context.Context, message, sessionID string) (string, error) {
	assessment := e.classifier.Classify(message)

	if assessment.ImmediateResponse {
		reply := e.emergencyReply(ctx, assessment.Level)
		e.record(ctx, sessionID, message, reply, assessment.Level)
		return reply, nil
	}

	sess, err := e.sessions.GetOrCreate(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("error loading session %s: %w", sessionID, err)
	}

	reply := e.router.Route(ctx, message, sess)

	// Medium severity doesn't interrupt the conversation, but the support
	// template rides along with the normal reply.
	if assessment.Level == models.DistressMedium {
		reply = reply + "\n\n" + distress.EmergencyMessage(models.DistressMedium)
	}

	if err := e.sessions.Save(ctx, sess); err != nil {
		e.logger.Error("Failed to save session",
			zap.Error(err),
			zap.String("session_id", sessionID))
	}

	e.record(ctx, sessionID, message, reply, assessment.Level)
	return reply, nil
}

// emergencyReply is the fixed template for the severity, followed by crisis
// resources when the store has any. A store failure degrades to the bare
// template; it never blocks the emergency response.
func (e *Engine) emergencyReply(ctx context.Context, level models.DistressLevel) string {
	reply := distress.EmergencyMessage(level)

	list, err := resources.Crisis(ctx, e.resources)
	if err != nil {
		e.logger.Error("Crisis resource lookup failed", zap.Error(err))
		return reply
	}
	if len(list) == 0 {
		return reply
	}

	var b strings.Builder
	b.WriteString(reply)
	b.WriteString("\n\n")
	b.WriteString(resources.Format(list, "Services that can help right now:"))
	return b.String()
}

func (e *Engine) record(ctx context.Context, sessionID, message, reply string, level models.DistressLevel) {
	entry := models.ConversationEntry{
		ID:            uuid.New().String(),
		SessionID:     sessionID,
		UserMessage:   message,
		BotReply:      reply,
		DistressLevel: level,
		CreatedAt:     time.Now(),
	}
	if err := e.log.Record(ctx, entry); err != nil {
		e.logger.Error("Failed to record conversation",
			zap.Error(err),
			zap.String("session_id", sessionID))
	}
}
