package dialogue

import (
	"strings"

	"github.com/havenlink/haven-bot/internal/models"
)

type healthTopic struct {
	ID       string
	Keywords []string
	Advice   string
}

// Topics are checked in order; the first keyword hit wins. Each turn is
// independent — this script keeps no progress between messages.
var healthTopics = []healthTopic{
	{
		ID:       "mental-health",
		Keywords: []string{"mental health", "depression", "anxiety"},
		Advice: `🧠 Mental health

• Low mood and anxiety are common and treatable — you don't need to be "bad enough" to ask for help.
• Your GP can refer you to free talking therapies; many areas also accept self-referral.
• Routine helps more than it sounds: regular sleep, daylight, movement, and one social contact a day.
• If things ever feel unsafe, call or text 988 — any hour, any day.

Ask me about another topic, or say "therapy" and I'll look up local mental health services.`,
	},
	{
		ID:       "sexual-health",
		Keywords: []string{"sexual health", "sti", "hiv", "prep"},
		Advice: `❤️ Sexual health

• Regular STI testing is routine healthcare — most clinics offer free, confidential testing.
• PrEP is highly effective at preventing HIV; a sexual health clinic can prescribe it.
• Condoms remain the only protection that covers most STIs at once.
• If you've had a risk in the last 72 hours, ask a clinic or A&E about PEP today.

Ask me about another topic, or say "support" to find local services.`,
	},
	{
		ID:       "physical-health",
		Keywords: []string{"physical health", "fitness", "exercise"},
		Advice: `💪 Physical health

• Aim for movement you actually enjoy — consistency beats intensity.
• 150 minutes a week of moderate activity is the target, but any amount helps.
• Strength work twice a week protects joints, bones, and mood.
• Start embarrassingly small: a 10-minute daily walk is a real program.

Ask me about another topic any time.`,
	},
	{
		ID:       "healthcare-access",
		Keywords: []string{"healthcare", "doctor", "gp", "medical"},
		Advice: `🩺 Accessing healthcare

• Register with a GP practice even when you're well — it's much easier than registering in a crisis.
• You can register without a fixed address or ID; practices must not turn you away for lacking them.
• Pharmacists can advise on many minor conditions without an appointment.
• For urgent but non-emergency concerns, call your local health advice line before going to A&E.

Ask me about another topic, or say "support" to find local services.`,
	},
	{
		ID:       "substance-use",
		Keywords: []string{"substance", "alcohol", "drugs", "chemsex"},
		Advice: `🍃 Substance use

• Support services are confidential and won't involve police or judge you.
• Harm reduction is legitimate healthcare: never use alone, go slow with new batches, don't mix depressants.
• If chemsex is part of the picture, specialist services understand and can help without shame.
• Small goals count — a plan to use less is still a plan.

Ask me about another topic, or say "support" to find local services.`,
	},
	{
		ID:       "joy",
		Keywords: []string{"joy", "humor", "humour", "entertainment", "fun", "laugh"},
		Advice: `😄 Joy and play

• Fun isn't frivolous — laughter measurably lowers stress hormones.
• Schedule joy like an appointment: one thing this week purely because you enjoy it.
• Shared fun doubles up: a silly film with a friend beats doomscrolling alone.
• Community centres and libraries often run free social events worth raiding.

Ask me about another topic any time.`,
	},
}

const healthMenu = `🩺 Health advice

I can share practical guidance on:
• Mental health ("mental health", "anxiety", "depression")
• Sexual health ("sexual health", "sti", "prep")
• Physical health ("fitness", "exercise")
• Accessing healthcare ("doctor", "gp")
• Substance use ("alcohol", "drugs")
• Joy and fun ("joy", "laugh")

Which topic would you like? Say "main menu" to go back.`

// HealthAdviceScript is a flat topic dispatcher; every call is independent
// of history.
type HealthAdviceScript struct{}

func NewHealthAdviceScript() *HealthAdviceScript {
	return &HealthAdviceScript{}
}

func (h *HealthAdviceScript) Service() models.Service {
	return models.ServiceHealth
}

func (h *HealthAdviceScript) Start(s *models.Session) string {
	return healthMenu
}

func (h *HealthAdviceScript) Continue(message string, s *models.Session) Result {
	if wantsMenu(message) {
		return ToMenu()
	}

	lower := strings.ToLower(message)
	for _, topic := range healthTopics {
		for _, kw := range topic.Keywords {
			if strings.Contains(lower, kw) {
				return Reply(topic.Advice)
			}
		}
	}
	return Reply(healthMenu)
}
