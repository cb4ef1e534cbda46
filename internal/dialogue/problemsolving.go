package dialogue

import (
	"fmt"
	"strings"

	"github.com/havenlink/haven-bot/internal/models"
)

type mentalModel struct {
	ID           string
	Name         string
	Tagline      string
	Questions    []string
	triggerWords []string
}

// The five fixed mental models. triggerWords drive the (non-exclusive)
// recommendation pass over the problem description; selection itself matches
// the model name or hyphen-stripped id as a substring.
var mentalModels = []mentalModel{
	{
		ID:      "first-principles",
		Name:    "First Principles",
		Tagline: "break the problem down to what is fundamentally true",
		Questions: []string{
			"What do you know to be absolutely true about this situation, stripped of assumptions?",
			"Which of your current beliefs about it are assumptions you've never tested?",
			"If you were building a solution from scratch, ignoring how it's 'usually done', what would it look like?",
			"What's the smallest version of that solution you could try this week?",
		},
		triggerWords: []string{"complex", "complicated", "overwhelm"},
	},
	{
		ID:      "inversion",
		Name:    "Inversion",
		Tagline: "work backwards from the outcome you want (or fear)",
		Questions: []string{
			"Describe the outcome you want in concrete terms. What does 'solved' actually look like?",
			"Now invert it: what would guarantee you fail to get there?",
			"Which of those failure causes are you currently doing, even partially?",
			"What's the first one you could stop doing or guard against?",
		},
		triggerWords: []string{"goal", "outcome", "result"},
	},
	{
		ID:      "opportunity-cost",
		Name:    "Opportunity Cost",
		Tagline: "weigh what each option really costs you",
		Questions: []string{
			"List the realistic options in front of you, including 'do nothing'.",
			"For each option: what do you give up by choosing it?",
			"Which of those costs will still matter to you in a year? Which won't?",
			"Knowing that, which option are you actually willing to pay for?",
		},
		triggerWords: []string{"choice", "option", "decision"},
	},
	{
		ID:      "circle-of-control",
		Name:    "Circle of Control",
		Tagline: "separate what you can influence from what you can't",
		Questions: []string{
			"Of everything in this situation, what is fully within your control?",
			"What can you influence but not control?",
			"What is completely outside your control?",
			"What's one action inside your control you could take in the next 24 hours?",
		},
		triggerWords: []string{"stress", "worry", "control"},
	},
	{
		ID:      "second-order",
		Name:    "Second-Order Thinking",
		Tagline: "think past the immediate consequence",
		Questions: []string{
			"What's the immediate, first-order consequence of the path you're leaning towards?",
			"And then what? What happens after that consequence plays out?",
			"Who else is affected at the second and third order?",
			"Does the path still look right when you trace it two steps further?",
		},
		triggerWords: []string{"consequence", "impact", "future"},
	},
}

// defaultModel is applied silently when a selection message matches no model.
var defaultModel = &mentalModels[0]

const problemPrompt = `🧩 Strategic Problem Solving

Tell me about the problem or challenge you're facing, in as much detail as you like. I'll suggest some thinking tools that fit it.`

// ProblemSolvingScript captures a problem, recommends mental models, and
// walks the chosen model's question frame.
type ProblemSolvingScript struct{}

func NewProblemSolvingScript() *ProblemSolvingScript {
	return &ProblemSolvingScript{}
}

func (p *ProblemSolvingScript) Service() models.Service {
	return models.ServiceProblem
}

func (p *ProblemSolvingScript) Start(s *models.Session) string {
	s.Progress.ProblemSolving = &models.ProblemSolvingProgress{}
	return problemPrompt
}

func (p *ProblemSolvingScript) Continue(message string, s *models.Session) Result {
	if wantsMenu(message) {
		return ToMenu()
	}

	pp := s.Progress.ProblemSolving
	if pp == nil {
		return Reply(p.Start(s))
	}

	if pp.ProblemDescription == "" {
		pp.ProblemDescription = message
		return Reply(recommendModels(message))
	}

	// Every turn after capture is a model selection; an unmatched message
	// silently falls back to First Principles.
	model := matchModel(message)
	if model == nil {
		model = defaultModel
	}
	pp.SelectedModel = model.ID
	return Reply(modelFrame(model, pp.ProblemDescription))
}

func recommendModels(problem string) string {
	lower := strings.ToLower(problem)

	var recommended []mentalModel
	for _, m := range mentalModels {
		for _, w := range m.triggerWords {
			if strings.Contains(lower, w) {
				recommended = append(recommended, m)
				break
			}
		}
	}

	var b strings.Builder
	b.WriteString("Thanks for sharing that. 🧩\n")

	if len(recommended) > 0 {
		b.WriteString("\nBased on how you described it, these tools could fit particularly well:\n")
		for _, m := range recommended {
			fmt.Fprintf(&b, "⭐ %s — %s\n", m.Name, m.Tagline)
		}
	}

	b.WriteString("\nHere are all five thinking tools I can walk you through:\n")
	for _, m := range mentalModels {
		fmt.Fprintf(&b, "• %s — %s\n", m.Name, m.Tagline)
	}
	b.WriteString("\nWhich one would you like to use? Just name it.")
	return b.String()
}

func matchModel(message string) *mentalModel {
	lower := strings.ToLower(message)
	for i := range mentalModels {
		m := &mentalModels[i]
		if strings.Contains(lower, strings.ToLower(m.Name)) {
			return m
		}
		if strings.Contains(lower, strings.ReplaceAll(m.ID, "-", " ")) {
			return m
		}
	}
	return nil
}

func modelFrame(m *mentalModel, problem string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🧠 %s — %s.\n", m.Name, m.Tagline)
	fmt.Fprintf(&b, "\nYour problem, as you described it:\n\"%s\"\n", problem)
	b.WriteString("\nWork through these questions at your own pace:\n")
	for i, q := range m.Questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	b.WriteString("\nTake your time — you can name another tool to switch, or say \"main menu\" when you're done.")
	return b.String()
}
