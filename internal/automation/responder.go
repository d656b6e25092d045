package automation

import "hostbot/internal/domain"

var responses = map[domain.Intent]string{
	domain.IntentBooking:  "Thanks for your interest! I'd be happy to host you. Let me check availability...",
	domain.IntentCheckin:  "Your check-in details will be sent 24 hours before arrival.",
	domain.IntentCheckout: "Checkout is at 11 AM. Please leave the keys in the lockbox.",
	domain.IntentQuestion: "Great question! I'll get back to you with more details.",
	domain.IntentProblem:  "I'm sorry to hear about this. Let me make it right immediately.",
}

// ResponseFor returns the canned reply for an intent, falling back to the
// question reply for anything it does not know.
func ResponseFor(i domain.Intent) string {
	if r, ok := responses[i]; ok {
		return r
	}
	return responses[domain.IntentQuestion]
}

// AutoRespond classifies text and returns the matching canned reply.
func AutoRespond(text string) string {
	return ResponseFor(DetectIntent(text))
}
