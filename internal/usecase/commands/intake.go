package commands

import (
	"context"

	"github.com/manojshendge/gym-class-booking/internal/domain/user"
	"github.com/manojshendge/gym-class-booking/internal/infra"
	"github.com/manojshendge/gym-class-booking/internal/infra/repository"
	"github.com/manojshendge/gym-class-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// IntakeCommands covers the public site forms: the contact form and the
// newsletter signup.
type IntakeCommands interface {
	SubmitContact(ctx context.Context, sub ContactSubmission) (uuid.UUID, error)
	SubscribeNewsletter(ctx context.Context, email string) (uuid.UUID, error)
}

type intakeCommandsImpl struct {
	contactRepo    ContactRepository
	newsletterRepo NewsletterRepository
	db             repository.DBTX
}

func NewIntakeCommands(contactRepo ContactRepository, newsletterRepo NewsletterRepository, db repository.DBTX) IntakeCommands {
	return &intakeCommandsImpl{
		contactRepo:    contactRepo,
		newsletterRepo: newsletterRepo,
		db:             db,
	}
}

func (c *intakeCommandsImpl) SubmitContact(ctx context.Context, sub ContactSubmission) (uuid.UUID, error) {
	email, err := user.ValidateEmail(sub.Email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	sub.Email = email

	id, err := c.contactRepo.Insert(ctx, c.db, sub.Name, sub.Email, sub.Phone, sub.Goal)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (c *intakeCommandsImpl) SubscribeNewsletter(ctx context.Context, email string) (uuid.UUID, error) {
	email, err := user.ValidateEmail(email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	id, err := c.newsletterRepo.Subscribe(ctx, c.db, email)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.ErrDuplicateSubscription
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return id, nil
}
