package service

import "context"

// Mailer defines the outbound email gateway. Delivery failures are the
// caller's problem to log, not to surface.
type Mailer interface {
	// Send dispatches a single HTML email.
	Send(ctx context.Context, to, subject, htmlBody string) error
}
