package dialogue

import (
	"context"
	"strings"

	"github.com/havenlink/haven-bot/internal/models"
	"github.com/havenlink/haven-bot/internal/resources"
	"go.uber.org/zap"
)

// Trigger keyword sets, checked in a fixed order: an earlier branch wins
// even when a later branch's keywords also appear in the message. The order
// is part of the observable behavior — don't reshuffle.
var (
	healthTriggers     = []string{"health", "healthcare", "medical"}
	wellnessTriggers   = []string{"wellness", "habit", "wellbeing", "coaching"}
	problemTriggers    = []string{"problem", "challenge", "stuck", "solve"}
	journalingTriggers = []string{"journal", "writing", "reflection", "ritual"}
)

type resourceIntent struct {
	keywords []string
	category string
	crisis   bool
	intro    string
}

// Direct resource intents, checked after script triggers. An empty category
// means free-text search on the whole message.
var resourceIntents = []resourceIntent{
	{
		keywords: []string{"therapy", "therapist", "counsel"},
		category: "Mental Health",
		intro:    "Here are some mental health services that might help:",
	},
	{
		keywords: []string{"housing", "homeless", "shelter", "accommodation"},
		category: "Housing",
		intro:    "Here are some housing services that might help:",
	},
	{
		keywords: []string{"legal", "discrimination", "lawyer", "rights"},
		category: "Legal Aid",
		intro:    "Here are some legal support services that might help:",
	},
	{
		keywords: []string{"crisis", "emergency"},
		crisis:   true,
		intro:    "Here are crisis services you can contact right now:",
	},
	{
		keywords: []string{"help", "support", "resource"},
		intro:    "Here's what I found for you:",
	},
}

const resourceLimit = 5

// Router decides, per turn, whether to continue an active script, start a
// new one, run a resource lookup, reset the session, or fall back to the
// welcome text.
type Router struct {
	scripts map[models.Service]Script
	store   resources.Store
	logger  *zap.Logger
}

func NewRouter(store resources.Store, logger *zap.Logger) *Router {
	scripts := map[models.Service]Script{}
	for _, s := range []Script{
		NewWellnessScript(),
		NewJournalingScript(),
		NewProblemSolvingScript(),
		NewHealthAdviceScript(),
	} {
		scripts[s.Service()] = s
	}
	return &Router{scripts: scripts, store: store, logger: logger}
}

// Route handles one turn for one session and returns the reply text. It
// mutates the session's dialogue state but never saves it; persistence is
// the caller's concern.
func (r *Router) Route(ctx context.Context, message string, session *models.Session) string {
	// 1. An active script owns the turn until it hands control back.
	if session.CurrentService != "" {
		script, ok := r.scripts[session.CurrentService]
		if !ok {
			// Stale service tag from an older build; reset rather than wedge.
			r.logger.Warn("Unknown active service, resetting session",
				zap.String("session_id", session.ID),
				zap.String("service", string(session.CurrentService)))
			session.Reset()
			return MainMenuText()
		}
		result := script.Continue(message, session)
		if result.Kind == ReturnToMenu {
			session.Reset()
			return MainMenuText()
		}
		return result.Text
	}

	lower := strings.ToLower(message)

	// 2. Script triggers, health first.
	if matchesAny(lower, healthTriggers) {
		return r.startScript(models.ServiceHealth, session)
	}
	if matchesAny(lower, wellnessTriggers) {
		return r.startScript(models.ServiceWellness, session)
	}
	if matchesAny(lower, problemTriggers) {
		return r.startScript(models.ServiceProblem, session)
	}
	if matchesAny(lower, journalingTriggers) {
		return r.startScript(models.ServiceJournaling, session)
	}

	// 3. Direct resource lookups.
	for _, intent := range resourceIntents {
		if matchesAny(lower, intent.keywords) {
			return r.lookupResources(ctx, intent, message)
		}
	}

	// 4. Explicit reset.
	if wantsMenu(message) {
		session.Reset()
		return MainMenuText()
	}

	// 5. Nothing matched.
	return WelcomeText()
}

func (r *Router) startScript(service models.Service, session *models.Session) string {
	script := r.scripts[service]
	session.CurrentService = service
	return script.Start(session)
}

// lookupResources runs the store query for an intent. A store failure is
// treated exactly like "no results": the user sees the generic fallback,
// never a technical error.
func (r *Router) lookupResources(ctx context.Context, intent resourceIntent, message string) string {
	var (
		list []models.Resource
		err  error
	)
	switch {
	case intent.crisis:
		list, err = resources.Crisis(ctx, r.store)
	case intent.category != "":
		list, err = r.store.ByCategory(ctx, intent.category, resourceLimit)
	default:
		list, err = r.store.Search(ctx, message, resourceLimit)
	}
	if err != nil {
		r.logger.Error("Resource lookup failed",
			zap.Error(err),
			zap.String("category", intent.category))
		list = nil
	}
	return resources.Format(list, intent.intro)
}

func matchesAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
