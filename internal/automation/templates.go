package automation

import (
	"fmt"
	"strconv"
	"strings"

	"hostbot/internal/domain"
)

// Confirmation renders the booking confirmation sent right after a booking.
func Confirmation(g domain.Guest, p domain.Property, d domain.BookingDates) domain.Message {
	return domain.Message{
		Subject: "Booking Confirmed - " + p.Name,
		Body: fmt.Sprintf(`Hi %s! 🎉

Your booking is confirmed!

Property: %s
Check-in: %s
Check-out: %s
Total: $%s

I'll send you check-in details 24 hours before your arrival.

See you soon! 🏠`, g.Name, p.Name, d.CheckIn, d.CheckOut, FormatAmount(d.TotalPrice)),
	}
}

func CheckoutReminder(g domain.Guest, p domain.Property) domain.Message {
	return domain.Message{
		Subject: "Checkout Reminder - " + p.Name,
		Body: fmt.Sprintf(`Hi %s! 👋

Just a reminder about checkout:

Time: 11:00 AM
Place: Leave keys in the lockbox

Hope you enjoyed your stay! 🌟

Please let me know if you had any issues - I'd love a review if you have a moment!`, g.Name),
	}
}

// ReviewRequest asks the guest for a review after checkout. The link line
// is only included when the property has a review URL.
func ReviewRequest(g domain.Guest, p domain.Property) domain.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s! 🏠\n\n", g.Name)
	fmt.Fprintf(&b, "Thank you for staying at %s!\n\n", p.Name)
	b.WriteString("It would mean a lot if you could take a moment to leave a review. " +
		"It helps other guests know what to expect and helps our small business grow!\n\n")
	if u := strings.TrimSpace(p.ReviewURL); u != "" {
		fmt.Fprintf(&b, "Leave a review: %s\n\n", u)
	}
	b.WriteString("Thanks so much! 🙏\n\nBest,\nYour Host")

	return domain.Message{
		Subject: fmt.Sprintf("How was your stay at %s?", p.Name),
		Body:    b.String(),
	}
}

// FormatAmount prints a money amount with the fewest digits that still
// represent it exactly: 850 -> "850", 99.5 -> "99.5".
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
