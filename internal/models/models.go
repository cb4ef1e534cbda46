package models

import "time"

// Service identifies one of the scripted dialogue flows a session can be in.
type Service string

const (
	ServiceWellness   Service = "wellness-coaching"
	ServiceProblem    Service = "problem-solving"
	ServiceJournaling Service = "transformational-journaling"
	ServiceHealth     Service = "health-advice"
)

// Session holds the per-conversation state kept between turns. The id is
// supplied by the caller (chat id, browser session, etc.) and used verbatim
// as the store key.
type Session struct {
	ID             string    `json:"id"`
	CurrentService Service   `json:"current_service,omitempty"`
	CurrentStep    string    `json:"current_step,omitempty"`
	Progress       Progress  `json:"progress"`
	StartedAt      time.Time `json:"started_at"`
	LastActivity   time.Time `json:"last_activity"`
}

// Reset clears the active dialogue and all accumulated progress, returning
// the session to the same observable state as a brand-new one.
func (s *Session) Reset() {
	s.CurrentService = ""
	s.CurrentStep = ""
	s.Progress = Progress{}
}

// Progress carries the script-specific data accumulated while a dialogue is
// active. Exactly one branch is populated, matching CurrentService.
type Progress struct {
	Wellness       *WellnessProgress       `json:"wellness,omitempty"`
	Journaling     *JournalingProgress     `json:"journaling,omitempty"`
	ProblemSolving *ProblemSolvingProgress `json:"problem_solving,omitempty"`
}

// Empty reports whether no script has stored any progress.
func (p Progress) Empty() bool {
	return p.Wellness == nil && p.Journaling == nil && p.ProblemSolving == nil
}

// WellnessProgress tracks the six-section wellness assessment.
type WellnessProgress struct {
	CurrentSection    string            `json:"current_section"`
	CompletedSections []string          `json:"completed_sections"`
	Responses         map[string]string `json:"responses"`
}

// JournalingProgress tracks the morning/evening journaling rituals.
// CurrentRitual is empty until the user picks a ritual.
type JournalingProgress struct {
	CurrentRitual  string            `json:"current_ritual,omitempty"`
	MorningStep    int               `json:"morning_step"`
	EveningStep    int               `json:"evening_step"`
	MorningEntries map[string]string `json:"morning_entries,omitempty"`
	EveningEntries map[string]string `json:"evening_entries,omitempty"`
}

// ProblemSolvingProgress tracks the problem capture and mental-model choice.
type ProblemSolvingProgress struct {
	ProblemDescription string `json:"problem_description,omitempty"`
	SelectedModel      string `json:"selected_model,omitempty"`
}

// ConversationEntry is one logged turn handed to the durable conversation
// log. The core only writes these, it never reads them back.
type ConversationEntry struct {
	ID            string        `json:"id"`
	SessionID     string        `json:"session_id"`
	UserMessage   string        `json:"user_message"`
	BotReply      string        `json:"bot_reply"`
	DistressLevel DistressLevel `json:"distress_level"`
	CreatedAt     time.Time     `json:"created_at"`
}
