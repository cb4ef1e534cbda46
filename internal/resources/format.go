package resources

import (
	"strings"

	"github.com/havenlink/haven-bot/internal/models"
)

const noResultsMessage = `I couldn't find any specific resources for that right now.

You can try asking in a different way, or say "support" to see general help options. If this is urgent, say "crisis" and I'll share emergency contacts.`

const closingLine = "You're not alone in this — reach out to any of these services whenever you're ready. 💙"

// Format renders a priority-ordered resource list into a reply block. An
// empty list always yields the fixed fallback message, whatever the intro.
func Format(list []models.Resource, intro string) string {
	if len(list) == 0 {
		return noResultsMessage
	}

	var b strings.Builder
	b.WriteString(intro)
	b.WriteString("\n")

	for _, r := range list {
		b.WriteString("\n")
		b.WriteString("📌 ")
		b.WriteString(r.Title)
		if r.Category != nil && r.Category.Name != "" {
			b.WriteString(" (")
			b.WriteString(r.Category.Name)
			b.WriteString(")")
		}
		b.WriteString("\n")
		if r.Description != "" {
			b.WriteString(r.Description)
			b.WriteString("\n")
		}
		if r.Phone != "" {
			b.WriteString("📞 ")
			b.WriteString(r.Phone)
			b.WriteString("\n")
		}
		if r.WebsiteURL != "" {
			b.WriteString("🌐 ")
			b.WriteString(r.WebsiteURL)
			b.WriteString("\n")
		}
		if r.Email != "" {
			b.WriteString("✉️ ")
			b.WriteString(r.Email)
			b.WriteString("\n")
		}
		if len(r.Tags) > 0 {
			b.WriteString("🏷 ")
			b.WriteString(strings.Join(r.Tags, ", "))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(closingLine)
	return b.String()
}
