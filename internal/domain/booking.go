package domain

import "time"

// BookingDates carries the stay window exactly as the caller wants it shown.
type BookingDates struct {
	CheckIn    string
	CheckOut   string
	TotalPrice float64
}

type Season string

const (
	SeasonHigh   Season = "high"
	SeasonLow    Season = "low"
	SeasonNormal Season = "normal"
)

type PricingFactors struct {
	IsWeekend        bool
	Season           Season // "" is treated as normal
	DaysUntilArrival int
	NightsStayed     int
}

type Booking struct {
	GuestName    string
	PropertyName string
	Dates        BookingDates
}

// ActionKind names what the bot did for a guest.
type ActionKind string

const (
	ActionAutoReply        ActionKind = "auto_reply"
	ActionConfirmation     ActionKind = "confirmation"
	ActionCheckoutReminder ActionKind = "checkout_reminder"
	ActionReviewRequest    ActionKind = "review_request"
)

// Action is one row of the bot's action log.
type Action struct {
	ID        int64
	Kind      ActionKind
	GuestName string
	Property  *string
	Intent    *Intent
	Urgent    bool
	Subject   *string
	Body      string
	CreatedAt time.Time
}
