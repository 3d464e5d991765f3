package contracts

import "context"

// NotificationPublisher pushes domain events onto the message queue.
// Publishing is best-effort from the caller's point of view; usecases log
// failures and carry on.
type NotificationPublisher interface {
	Publish(ctx context.Context, event string, payload interface{}) error
}
