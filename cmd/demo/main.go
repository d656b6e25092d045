// Command demo runs the automation rules over a few sample guests and
// prints what the bot would do. It takes no flags and touches no backend.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"hostbot/internal/adapters/observability"
	"hostbot/internal/automation"
	"hostbot/internal/domain"
)

const banner = `
╔══════════════════════════════════════════════════════════╗
║     🏠 Host Command Center                               ║
╠══════════════════════════════════════════════════════════╣
║  ✅ Auto-respond to guest messages                       ║
║  ✅ Send booking confirmations                           ║
║  ✅ Send checkout reminders                              ║
║  ✅ Request reviews                                      ║
║  ✅ Dynamic pricing                                      ║
╚══════════════════════════════════════════════════════════╝
`

var sampleMessages = []domain.GuestMessage{
	{GuestName: "John D.", Text: "Is the villa available next weekend?", Urgency: domain.UrgencyNormal},
	{GuestName: "Sarah M.", Text: "What time is checkout?", Urgency: domain.UrgencyNormal},
	{GuestName: "Mike R.", Text: "The AC is not working", Urgency: domain.UrgencyUrgent},
}

var sampleBookings = []domain.Booking{
	{GuestName: "John D.", PropertyName: "Villa Sunset", Dates: domain.BookingDates{CheckIn: "Mar 15", CheckOut: "Mar 18", TotalPrice: 850}},
	{GuestName: "Sarah M.", PropertyName: "Cozy Apartment", Dates: domain.BookingDates{CheckIn: "Mar 20", CheckOut: "Mar 25", TotalPrice: 1200}},
	{GuestName: "Mike R.", PropertyName: "Mountain Cabin", Dates: domain.BookingDates{CheckIn: "Apr 1", CheckOut: "Apr 5", TotalPrice: 950}},
}

func main() {
	log.Logger = observability.NewLogger("dev", "hostbot-demo")
	if err := run(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("demo failed")
	}
}

func run(w io.Writer) error {
	fmt.Fprint(w, banner)

	fmt.Fprint(w, "\n📬 Processing guest messages...\n\n")
	for _, m := range sampleMessages {
		label := "💬 New"
		if m.IsUrgent() {
			label = "⚠️ URGENT"
		}
		intent := automation.Classify(m)
		fmt.Fprintf(w, "%s From %s: %q\n", label, m.GuestName, m.Text)
		fmt.Fprintf(w, "   → [%s] %s\n\n", intent, automation.ResponseFor(intent))
	}

	fmt.Fprint(w, "📅 Upcoming Bookings:\n\n")
	for _, b := range sampleBookings {
		fmt.Fprintf(w, "   %s → %s: %s @ %s ($%s)\n",
			b.Dates.CheckIn, b.Dates.CheckOut, b.GuestName, b.PropertyName, automation.FormatAmount(b.Dates.TotalPrice))
	}

	price, err := automation.CalculatePrice(150, domain.PricingFactors{
		IsWeekend: true, Season: domain.SeasonHigh, DaysUntilArrival: 2, NightsStayed: 3,
	})
	if err != nil {
		return err
	}
	first := sampleBookings[0]
	conf := automation.Confirmation(domain.Guest{Name: "John"}, domain.Property{Name: first.PropertyName}, first.Dates)

	fmt.Fprintf(w, `
🤖 Bot Actions Queue:
   → %d messages to auto-respond
   → %d booking confirmations to send
   → %d checkout reminders to send

💲 Dynamic price (base $150, weekend, high season, 2 days out): $%d
✉️  Booking confirmation: %s
`, len(sampleMessages), len(sampleBookings), len(sampleBookings), price, conf.Subject)
	return nil
}
