package application

import "context"

// NotificationPublisher enqueues transactional email jobs. Satisfied by
// helpers.RabbitPublisher; dispatch is fire-and-forget relative to the
// workflows that trigger it, except where a compensating rollback is
// documented (password reset).
type NotificationPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}
