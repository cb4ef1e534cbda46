package dialogue

import (
	"strings"

	"github.com/havenlink/haven-bot/internal/models"
)

// ResultKind distinguishes a normal reply from a request to abandon the
// active script and return to the main menu.
type ResultKind int

const (
	Continue ResultKind = iota
	ReturnToMenu
)

// Result is what a script's continuation handler produces for one turn.
type Result struct {
	Kind ResultKind
	Text string
}

func Reply(text string) Result {
	return Result{Kind: Continue, Text: text}
}

func ToMenu() Result {
	return Result{Kind: ReturnToMenu}
}

// Script is a fixed multi-step dialogue flow. Start initializes the
// session's progress for this script and returns the opening prompt;
// Continue advances one turn.
type Script interface {
	Service() models.Service
	Start(s *models.Session) string
	Continue(message string, s *models.Session) Result
}

// menuKeywords abandon any active script and are checked before step logic.
var menuKeywords = []string{"main menu", "services", "start over"}

func wantsMenu(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range menuKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

const welcomeText = `Hi, I'm Haven — a community support assistant. 👋

Here's what I can help with:
🌱 Wellness coaching — say "wellness" for a guided self-assessment
📓 Transformational journaling — say "journal" for a morning or evening ritual
🧩 Problem solving — say "problem" to work through a challenge
🩺 Health advice — say "health" for practical health information
🔎 Finding services — try "housing", "therapy", "legal help", or just "support"

What would you like to do?`

const mainMenuText = `Okay, we're back at the main menu. 🏠

🌱 "wellness" — guided wellness self-assessment
📓 "journal" — morning or evening journaling ritual
🧩 "problem" — structured problem solving
🩺 "health" — health advice and information
🔎 "housing", "therapy", "legal help", "support" — find community services

What would you like to do next?`

// WelcomeText is the generic greeting shown when nothing else matches.
func WelcomeText() string {
	return welcomeText
}

// MainMenuText is shown after a session reset or script exit.
func MainMenuText() string {
	return mainMenuText
}
