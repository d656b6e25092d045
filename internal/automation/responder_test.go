package automation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hostbot/internal/automation"
	"hostbot/internal/domain"
)

func TestAutoRespond(t *testing.T) {
	assert.Equal(t,
		"Thanks for your interest! I'd be happy to host you. Let me check availability...",
		automation.AutoRespond("Is this property available for next weekend?"))
	assert.Equal(t,
		"Checkout is at 11 AM. Please leave the keys in the lockbox.",
		automation.AutoRespond("What time is checkout?"))
	assert.Equal(t,
		"Great question! I'll get back to you with more details.",
		automation.AutoRespond("Is there parking?"))
}

func TestResponseFor_EveryIntentHasReply(t *testing.T) {
	for _, i := range automation.Intents() {
		assert.NotEmpty(t, automation.ResponseFor(i), i)
	}
}

func TestResponseFor_UnknownFallsBackToQuestion(t *testing.T) {
	assert.Equal(t,
		automation.ResponseFor(domain.IntentQuestion),
		automation.ResponseFor(domain.Intent("refund")))
}
