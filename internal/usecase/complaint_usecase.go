package usecase

import (
	"context"
	"errors"
	"strings"

	"ecopontos_arapiraca/internal/usecase/interfaces"
)

var (
	ErrInvalidComplaint   = errors.New("complaint requires name, email and message")
	ErrMailerNotAvailable = errors.New("complaint mailer not configured")
)

// IComplaintUseCase forwards user complaints to the platform mailbox. No
// retries: a delivery failure propagates to the caller.
type IComplaintUseCase interface {
	Submit(ctx context.Context, name, email, message string) error
}

type ComplaintUseCase struct {
	mailer interfaces.IMailer
}

var _ IComplaintUseCase = (*ComplaintUseCase)(nil)

func NewComplaintUseCase(mailer interfaces.IMailer) *ComplaintUseCase {
	return &ComplaintUseCase{mailer: mailer}
}

func (u *ComplaintUseCase) Submit(ctx context.Context, name, email, message string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)
	if name == "" || email == "" || message == "" {
		return ErrInvalidComplaint
	}
	if u.mailer == nil {
		return ErrMailerNotAvailable
	}
	return u.mailer.SendComplaint(ctx, name, email, message)
}
