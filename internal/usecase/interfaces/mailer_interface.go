package interfaces

import "context"

//go:generate mockgen -source=mailer_interface.go -destination=mocks/mock_mailer.go -package=mock_interfaces

// IMailer abstracts outbound mail. The core performs no retries: a delivery
// failure propagates immediately.
type IMailer interface {
	SendComplaint(ctx context.Context, name, email, message string) error
}
