package distress

import "github.com/havenlink/haven-bot/internal/models"

const criticalResponse = `I'm really concerned about what you've shared, and I want you to know that you matter.

Please reach out for immediate support:
📞 Call or text 988 (Suicide & Crisis Lifeline) — available 24/7
💬 Text HOME to 741741 (Crisis Text Line)
🚑 If you are in immediate danger, call 911 or go to your nearest emergency room

You don't have to face this alone. Trained counsellors are ready to listen right now, day or night.`

const highResponse = `It sounds like you're carrying something really heavy right now. I'm glad you reached out.

Please consider talking to someone today:
📞 Call or text 988 (Suicide & Crisis Lifeline) — free, confidential, 24/7
💬 Text HOME to 741741 (Crisis Text Line)

Whatever you're going through, support is available and things can get better with help.`

const mediumResponse = `I hear that things feel difficult right now. That takes courage to share.

If you'd like to talk to someone, the 988 Lifeline (call or text 988) is always there, and I can also help you find local mental health support — just ask for "mental health resources".`

// EmergencyMessage returns the fixed support template for a severity level.
// Low severity has no template and returns an empty string.
func EmergencyMessage(level models.DistressLevel) string {
	switch level {
	case models.DistressCritical:
		return criticalResponse
	case models.DistressHigh:
		return highResponse
	case models.DistressMedium:
		return mediumResponse
	default:
		return ""
	}
}
