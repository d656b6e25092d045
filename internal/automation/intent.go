package automation

import (
	"strings"

	"hostbot/internal/domain"
)

type intentRule struct {
	intent   domain.Intent
	keywords []string
}

// intentRules is ordered by priority; the first rule with a hit wins.
var intentRules = []intentRule{
	{domain.IntentBooking, []string{"book", "available"}},
	{domain.IntentCheckin, []string{"check in", "arrival"}},
	{domain.IntentCheckout, []string{"check out", "checkout"}},
	{domain.IntentProblem, []string{"problem", "issue", "broken"}},
}

// DetectIntent classifies free text with case-insensitive keyword matching.
// Text that matches no rule, including the empty string, is a question.
func DetectIntent(text string) domain.Intent {
	lower := strings.ToLower(text)
	for _, r := range intentRules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.intent
			}
		}
	}
	return domain.IntentQuestion
}

func Classify(m domain.GuestMessage) domain.Intent { return DetectIntent(m.Text) }

// Intents lists every intent DetectIntent can return, in priority order.
func Intents() []domain.Intent {
	out := make([]domain.Intent, 0, len(intentRules)+1)
	for _, r := range intentRules {
		out = append(out, r.intent)
	}
	return append(out, domain.IntentQuestion)
}
