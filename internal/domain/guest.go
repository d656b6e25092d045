package domain

type Urgency string

const (
	UrgencyNormal Urgency = "normal"
	UrgencyUrgent Urgency = "urgent"
)

// GuestMessage is a free-text message received from a guest.
type GuestMessage struct {
	GuestName string
	Text      string
	Urgency   Urgency
}

func (m GuestMessage) IsUrgent() bool { return m.Urgency == UrgencyUrgent }

type Guest struct {
	Name string
}

type Property struct {
	Name      string
	ReviewURL string // optional; review requests omit the link when empty
}

// Intent is the classified purpose of a guest message.
type Intent string

const (
	IntentBooking  Intent = "booking"
	IntentCheckin  Intent = "checkin"
	IntentCheckout Intent = "checkout"
	IntentProblem  Intent = "problem"
	IntentQuestion Intent = "question"
)

// Message is a rendered guest-facing message.
type Message struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
