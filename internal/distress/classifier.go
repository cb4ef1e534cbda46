package distress

import (
	"strings"

	"github.com/havenlink/haven-bot/internal/models"
	"go.uber.org/zap"
)

// Keyword sets are checked as case-insensitive substrings, in tiers.
// Ordering within a tier does not matter; tier thresholds do (see Classify).

var criticalKeywords = []string{
	"suicide",
	"kill myself",
	"end my life",
	"take my own life",
	"want to die",
	"better off dead",
	"end it all",
	"no point in living",
}

var highKeywords = []string{
	"hurt myself",
	"self-harm",
	"self harm",
	"hopeless",
	"no way out",
	"can't go on",
	"cant go on",
	"give up on everything",
	"no reason to live",
	"worthless",
}

var mediumKeywords = []string{
	"depressed",
	"depression",
	"anxious",
	"anxiety",
	"panic",
	"overwhelmed",
	"can't cope",
	"cant cope",
	"struggling",
	"so lonely",
	"scared",
}

type Classifier struct {
	logger *zap.Logger
}

func NewClassifier(logger *zap.Logger) *Classifier {
	return &Classifier{logger: logger}
}

// Classify scans the message against the three keyword tiers and assigns a
// severity level:
//
//	any critical match                  -> critical, immediate response
//	2+ high, or 1+ high and 1+ medium   -> high, immediate response
//	1+ high, or 2+ medium               -> medium, follow-up required
//	1+ medium                           -> low
//
// Classify never errors and never touches session state; it runs before any
// routing so a crisis message cannot corrupt an in-progress dialogue.
func (c *Classifier) Classify(text string) models.Assessment {
	lower := strings.ToLower(text)

	var indicators []string
	var critical, high, medium int

	for _, kw := range criticalKeywords {
		if strings.Contains(lower, kw) {
			critical++
			indicators = append(indicators, kw)
		}
	}
	for _, kw := range highKeywords {
		if strings.Contains(lower, kw) {
			high++
			indicators = append(indicators, kw)
		}
	}
	for _, kw := range mediumKeywords {
		if strings.Contains(lower, kw) {
			medium++
			indicators = append(indicators, kw)
		}
	}

	assessment := models.Assessment{Level: models.DistressLow, Indicators: indicators}

	switch {
	case critical > 0:
		assessment.Level = models.DistressCritical
		assessment.ImmediateResponse = true
		assessment.FollowUpRequired = true
	case high >= 2 || (high >= 1 && medium >= 1):
		assessment.Level = models.DistressHigh
		assessment.ImmediateResponse = true
		assessment.FollowUpRequired = true
	case high >= 1 || medium >= 2:
		assessment.Level = models.DistressMedium
		assessment.FollowUpRequired = true
	}

	if assessment.Level != models.DistressLow {
		c.logger.Info("Distress indicators detected",
			zap.String("level", string(assessment.Level)),
			zap.Strings("indicators", indicators))
	}

	return assessment
}
