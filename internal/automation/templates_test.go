package automation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hostbot/internal/automation"
	"hostbot/internal/domain"
)

var (
	john  = domain.Guest{Name: "John"}
	villa = domain.Property{Name: "Villa Sunset"}
)

func assertNoPlaceholders(t *testing.T, m domain.Message) {
	t.Helper()
	for _, s := range []string{m.Subject, m.Body} {
		assert.NotContains(t, s, "${")
		assert.NotContains(t, s, "{{")
		assert.NotContains(t, s, "[link]")
		assert.NotContains(t, s, "%!")
	}
}

func TestConfirmation(t *testing.T) {
	d := domain.BookingDates{CheckIn: "Mar 15", CheckOut: "Mar 18", TotalPrice: 850}
	m := automation.Confirmation(john, villa, d)

	assert.Equal(t, "Booking Confirmed - Villa Sunset", m.Subject)
	assert.Contains(t, m.Body, "Hi John!")
	assert.Contains(t, m.Body, "Property: Villa Sunset")
	assert.Contains(t, m.Body, "Check-in: Mar 15")
	assert.Contains(t, m.Body, "Check-out: Mar 18")
	assert.Contains(t, m.Body, "Total: $850\n")
	assertNoPlaceholders(t, m)
}

func TestConfirmation_FractionalTotalVerbatim(t *testing.T) {
	d := domain.BookingDates{CheckIn: "2026-04-01", CheckOut: "2026-04-05", TotalPrice: 949.5}
	m := automation.Confirmation(john, domain.Property{Name: "Mountain Cabin"}, d)

	assert.Contains(t, m.Subject, "Mountain Cabin")
	assert.Contains(t, m.Body, "Check-in: 2026-04-01")
	assert.Contains(t, m.Body, "Check-out: 2026-04-05")
	assert.Contains(t, m.Body, "Total: $949.5")
}

func TestCheckoutReminder(t *testing.T) {
	m := automation.CheckoutReminder(domain.Guest{Name: "Sarah"}, domain.Property{Name: "Cozy Apartment"})

	assert.Equal(t, "Checkout Reminder - Cozy Apartment", m.Subject)
	assert.Contains(t, m.Body, "Hi Sarah!")
	assert.Contains(t, m.Body, "Time: 11:00 AM")
	assert.Contains(t, m.Body, "Leave keys in the lockbox")
	assertNoPlaceholders(t, m)
}

func TestReviewRequest_WithoutURL(t *testing.T) {
	m := automation.ReviewRequest(john, villa)

	assert.Equal(t, "How was your stay at Villa Sunset?", m.Subject)
	assert.Contains(t, m.Body, "Thank you for staying at Villa Sunset!")
	assert.NotContains(t, m.Body, "Leave a review:")
	assert.Contains(t, m.Body, "Your Host")
	assertNoPlaceholders(t, m)
}

func TestReviewRequest_WithURL(t *testing.T) {
	p := domain.Property{Name: "Villa Sunset", ReviewURL: "https://example.com/r/villa"}
	m := automation.ReviewRequest(john, p)

	assert.Contains(t, m.Body, "Leave a review: https://example.com/r/villa\n")
	assertNoPlaceholders(t, m)
}

func TestTemplates_Idempotent(t *testing.T) {
	d := domain.BookingDates{CheckIn: "Mar 20", CheckOut: "Mar 25", TotalPrice: 1200}
	assert.Equal(t, automation.Confirmation(john, villa, d), automation.Confirmation(john, villa, d))
	assert.Equal(t, automation.CheckoutReminder(john, villa), automation.CheckoutReminder(john, villa))
	assert.Equal(t, automation.ReviewRequest(john, villa), automation.ReviewRequest(john, villa))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "850", automation.FormatAmount(850))
	assert.Equal(t, "99.5", automation.FormatAmount(99.5))
	assert.Equal(t, "0.1", automation.FormatAmount(0.1))
}
