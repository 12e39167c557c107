package notify

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/Talha3818/gaming-site-sub001/internal/notify Notifier

// EventKind classifies a user notification
type EventKind string

const (
	// EventMatchUpdate signals a change to a challenge's lifecycle
	EventMatchUpdate EventKind = "match-update"

	// EventPaymentUpdate signals a balance change (escrow, payout, refund)
	EventPaymentUpdate EventKind = "payment-update"
)

// Event describes a single user notification
type Event struct {
	// Kind classifies the event
	Kind EventKind

	// ChallengeID is the challenge the event relates to
	ChallengeID string

	// Message is the human-readable notification text
	Message string
}

// Notifier delivers events to users. Delivery is best effort; callers must
// never fail a state transition because a notification could not be sent.
type Notifier interface {
	Notify(ctx context.Context, userID string, event *Event) error
}
