package notify

import "context"

// noopNotifier drops all events; used when no delivery channel is configured
type noopNotifier struct{}

// NewNoop creates a notifier that silently discards events
func NewNoop() *noopNotifier {
	return &noopNotifier{}
}

// Notify discards the event
func (n *noopNotifier) Notify(ctx context.Context, userID string, event *Event) error {
	return nil
}
