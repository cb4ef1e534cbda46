package dialogue

import (
	"fmt"
	"strings"

	"github.com/havenlink/haven-bot/internal/models"
)

// StepTimeIdentification is the entry step where the user picks a ritual.
const StepTimeIdentification = "time-identification"

const (
	ritualMorning = "morning"
	ritualEvening = "evening"
)

type journalStep struct {
	Key    string
	Prompt string
}

const breathworkPrompt = `🌅 Morning Ritual — Breathwork

Before we write anything, let's settle the nervous system.

Take 5 slow breaths: in through the nose for 4 counts, hold for 4, out through the mouth for 6. Feel your shoulders drop on each exhale.

Type "ready" when you've finished your breaths and we'll begin.`

var morningSteps = []journalStep{
	{Key: "breathwork", Prompt: breathworkPrompt},
	{
		Key: "vision",
		Prompt: `🌅 Step 2 — Vision

With a clear head: what would make today genuinely good? Describe the day you want to have, in your own words.`,
	},
	{
		Key: "reframe",
		Prompt: `🌅 Step 3 — Reframe

Name one thing you're dreading or worrying about today — then write one more helpful way of looking at it.`,
	},
	{
		Key: "affirmations",
		Prompt: `🌅 Step 4 — Affirmations

Write two or three short statements about who you are choosing to be today. Present tense, first person ("I am...").`,
	},
	{
		Key: "gratitude",
		Prompt: `🌅 Step 5 — Gratitude

List three things you're grateful for this morning. Small counts — the first sip of coffee counts.`,
	},
	{
		Key: "visualization",
		Prompt: `🌅 Step 6 — Visualization

Close your eyes for ten seconds and picture tonight, having had the day you described. Write down what you see and how it feels.`,
	},
}

var eveningSteps = []journalStep{
	{
		Key: "wins",
		Prompt: `🌙 Evening Ritual — Wins

Let's close the day well. What went right today? List your wins, however small.`,
	},
	{
		Key: "lesson",
		Prompt: `🌙 Step 2 — Lesson

What did today teach you? One honest lesson, even an uncomfortable one.`,
	},
	{
		Key: "growth",
		Prompt: `🌙 Step 3 — Growth

Where did you stretch beyond your comfort zone today, even slightly?`,
	},
	{
		Key: "tomorrow-impact",
		Prompt: `🌙 Step 4 — Tomorrow's Impact

What is the single highest-impact thing you could do tomorrow?`,
	},
	{
		Key: "tomorrow-leverage",
		Prompt: `🌙 Step 5 — Tomorrow's Leverage

What could make tomorrow easier? Anything you can prepare, delegate, or drop tonight?`,
	},
	{
		Key: "tomorrow-reality",
		Prompt: `🌙 Step 6 — Tomorrow's Reality

Be realistic: what's likely to get in the way tomorrow, and how will you respond when it does?`,
	},
	{
		Key: "starter-actions",
		Prompt: `🌙 Step 7 — Starter Actions

Finally: what's the very first small action you'll take tomorrow morning? Make it tiny enough that you can't say no.`,
	},
}

const ritualChoicePrompt = `📓 Transformational Journaling

I can guide you through one of two rituals:

🌅 Morning ritual — breathwork, vision, reframing, affirmations, gratitude, and visualization to set up your day.
🌙 Evening ritual — wins, lessons, and a practical plan for tomorrow.

Which would you like — "morning" or "evening"?`

// JournalingScript guides the morning and evening journaling rituals.
type JournalingScript struct{}

func NewJournalingScript() *JournalingScript {
	return &JournalingScript{}
}

func (j *JournalingScript) Service() models.Service {
	return models.ServiceJournaling
}

func (j *JournalingScript) Start(s *models.Session) string {
	s.CurrentStep = StepTimeIdentification
	s.Progress.Journaling = &models.JournalingProgress{}
	return ritualChoicePrompt
}

func (j *JournalingScript) Continue(message string, s *models.Session) Result {
	if wantsMenu(message) {
		return ToMenu()
	}

	jp := s.Progress.Journaling
	if jp == nil {
		return Reply(j.Start(s))
	}

	if jp.CurrentRitual == "" {
		lower := strings.ToLower(message)
		switch {
		case strings.Contains(lower, ritualMorning):
			jp.CurrentRitual = ritualMorning
			jp.MorningStep = 0
			jp.MorningEntries = make(map[string]string)
			return Reply(morningSteps[0].Prompt)
		case strings.Contains(lower, ritualEvening):
			jp.CurrentRitual = ritualEvening
			jp.EveningStep = 0
			jp.EveningEntries = make(map[string]string)
			return Reply(eveningSteps[0].Prompt)
		default:
			return Reply(ritualChoicePrompt)
		}
	}

	switch jp.CurrentRitual {
	case ritualMorning:
		return j.continueMorning(message, jp)
	case ritualEvening:
		return j.continueEvening(message, jp)
	default:
		return Reply(j.Start(s))
	}
}

func (j *JournalingScript) continueMorning(message string, jp *models.JournalingProgress) Result {
	step := jp.MorningStep
	if step < 0 || step >= len(morningSteps) {
		// Unknown step pointer; restart the ritual at breathwork.
		jp.MorningStep = 0
		return Reply(morningSteps[0].Prompt)
	}

	// The breathwork gate only opens on "ready"; anything else re-displays
	// the instructions unchanged.
	if morningSteps[step].Key == "breathwork" {
		if !strings.Contains(strings.ToLower(message), "ready") {
			return Reply(breathworkPrompt)
		}
	} else {
		if jp.MorningEntries == nil {
			jp.MorningEntries = make(map[string]string)
		}
		jp.MorningEntries[morningSteps[step].Key] = message
	}

	if step+1 >= len(morningSteps) {
		return Reply(morningSummary(jp.MorningEntries))
	}
	jp.MorningStep = step + 1
	return Reply(morningSteps[step+1].Prompt)
}

func (j *JournalingScript) continueEvening(message string, jp *models.JournalingProgress) Result {
	step := jp.EveningStep
	if step < 0 || step >= len(eveningSteps) {
		jp.EveningStep = 0
		return Reply(eveningSteps[0].Prompt)
	}

	if jp.EveningEntries == nil {
		jp.EveningEntries = make(map[string]string)
	}
	jp.EveningEntries[eveningSteps[step].Key] = message

	if step+1 >= len(eveningSteps) {
		return Reply(eveningSummary(jp.EveningEntries))
	}
	jp.EveningStep = step + 1
	return Reply(eveningSteps[step+1].Prompt)
}

func morningSummary(entries map[string]string) string {
	var b strings.Builder
	b.WriteString("🌅 Your morning ritual is complete. Here's what you set in motion today:\n")
	appendEntry(&b, "Vision for today", entries["vision"])
	appendEntry(&b, "Reframe", entries["reframe"])
	appendEntry(&b, "Affirmations", entries["affirmations"])
	appendEntry(&b, "Gratitude", entries["gratitude"])
	appendEntry(&b, "Visualization", entries["visualization"])
	b.WriteString("\nCarry that with you. Come back tonight with \"journal\" for the evening ritual, or say \"main menu\".")
	return b.String()
}

func eveningSummary(entries map[string]string) string {
	var b strings.Builder
	b.WriteString("🌙 Your evening ritual is complete. Today, captured:\n")
	appendEntry(&b, "Wins", entries["wins"])
	appendEntry(&b, "Lesson", entries["lesson"])
	appendEntry(&b, "Growth", entries["growth"])
	appendEntry(&b, "Tomorrow's impact", entries["tomorrow-impact"])
	appendEntry(&b, "Tomorrow's leverage", entries["tomorrow-leverage"])
	appendEntry(&b, "Tomorrow's reality", entries["tomorrow-reality"])
	appendEntry(&b, "First action", entries["starter-actions"])
	b.WriteString("\nSleep well — tomorrow already has a head start. Say \"main menu\" when you're done.")
	return b.String()
}

func appendEntry(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "\n%s:\n%s\n", label, value)
}
