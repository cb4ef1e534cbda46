package dialogue

import (
	"github.com/havenlink/haven-bot/internal/models"
)

type wellnessSection struct {
	ID     string
	Name   string
	Prompt string
}

// The six assessment sections, in fixed order. Each user reply is stored
// verbatim against the section it answers before advancing.
var wellnessSections = []wellnessSection{
	{
		ID:   "personal-snapshot",
		Name: "Personal Snapshot",
		Prompt: `🌱 Section 1 of 6 — Personal Snapshot

Let's start with where you are right now. In a few sentences: how would you describe your life at the moment? What's taking up most of your time and energy?`,
	},
	{
		ID:   "wellness-domains",
		Name: "Wellness Domains",
		Prompt: `🌱 Section 2 of 6 — Wellness Domains

Think about the main areas of wellbeing: physical health, emotional health, relationships, work or purpose, and rest. Which of these feel strong for you, and which feel neglected?`,
	},
	{
		ID:   "current-state",
		Name: "Current State Audit",
		Prompt: `🌱 Section 3 of 6 — Current State Audit

Being honest with yourself: what daily habits are supporting your wellbeing right now, and which ones are working against you?`,
	},
	{
		ID:   "aspirational-vision",
		Name: "Aspirational Vision",
		Prompt: `🌱 Section 4 of 6 — Aspirational Vision

Imagine yourself a year from now, living well by your own definition. What does a normal day look like? How do you feel when you wake up?`,
	},
	{
		ID:   "gap-analysis",
		Name: "Gap Analysis",
		Prompt: `🌱 Section 5 of 6 — Gap Analysis

Comparing where you are with where you want to be: what are the two or three biggest gaps? What's currently standing in the way?`,
	},
	{
		ID:   "motivation-mapping",
		Name: "Motivation Mapping",
		Prompt: `🌱 Section 6 of 6 — Motivation Mapping

Last one. Why does closing those gaps matter to you, really? Who or what are you doing this for?`,
	},
}

const wellnessSummary = `🎉 That's the full wellness assessment — well done for sticking with it.

You've taken an honest look at where you are, where you want to be, and why it matters. That self-awareness is the foundation every change is built on.

A good next step: pick the single smallest habit from your answers and commit to it for one week.

Say "main menu" to go back, or "wellness" any time to take the assessment again.`

// WellnessScript walks users through the six-section self-assessment.
type WellnessScript struct{}

func NewWellnessScript() *WellnessScript {
	return &WellnessScript{}
}

func (w *WellnessScript) Service() models.Service {
	return models.ServiceWellness
}

func (w *WellnessScript) Start(s *models.Session) string {
	s.Progress.Wellness = &models.WellnessProgress{
		CurrentSection:    wellnessSections[0].ID,
		CompletedSections: []string{},
		Responses:         make(map[string]string),
	}
	return wellnessSections[0].Prompt
}

func (w *WellnessScript) Continue(message string, s *models.Session) Result {
	if wantsMenu(message) {
		return ToMenu()
	}

	wp := s.Progress.Wellness
	if wp == nil {
		return Reply(w.Start(s))
	}

	idx := wellnessSectionIndex(wp.CurrentSection)
	if idx < 0 {
		// Step pointer no longer matches a known section; restart.
		return Reply(w.Start(s))
	}

	section := wellnessSections[idx]
	if wp.Responses == nil {
		wp.Responses = make(map[string]string)
	}
	wp.Responses[section.ID] = message
	if !containsString(wp.CompletedSections, section.ID) {
		wp.CompletedSections = append(wp.CompletedSections, section.ID)
	}

	if idx+1 >= len(wellnessSections) {
		return Reply(wellnessSummary)
	}

	next := wellnessSections[idx+1]
	wp.CurrentSection = next.ID
	return Reply(next.Prompt)
}

func wellnessSectionIndex(id string) int {
	for i, section := range wellnessSections {
		if section.ID == id {
			return i
		}
	}
	return -1
}

func containsString(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}

// WellnessSectionCount is exported for tests and diagnostics.
func WellnessSectionCount() int {
	return len(wellnessSections)
}
