package usecase

import (
	"context"
	"errors"

	"github.com/charlesw/alexandria-crm/internal/entity"
	"github.com/charlesw/alexandria-crm/internal/infra/mail"
)

type SendOutreachUseCase struct {
	Contacts ContactRepositoryInterface
	EmailLog EmailLogRepositoryInterface
	Mail     MailService
}

func NewSendOutreachUseCase(
	contacts ContactRepositoryInterface,
	emailLog EmailLogRepositoryInterface,
	mailService MailService,
) *SendOutreachUseCase {
	return &SendOutreachUseCase{
		Contacts: contacts,
		EmailLog: emailLog,
		Mail:     mailService,
	}
}

// Execute sends one outreach email and appends one Email_Log row. The send
// and the log append are each a single external call; when the send fails
// nothing is logged, and a log failure after a successful send surfaces as a
// technical error rather than being swallowed.
func (uc *SendOutreachUseCase) Execute(ctx context.Context, input SendOutreachInput) (*SendOutreachOutput, error) {
	if errs := ValidateSendOutreachInput(input); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	contacts, err := uc.Contacts.ListAll(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "STORE_ERROR",
			Message: "failed to load contacts: " + err.Error(),
		}
	}

	var contact *entity.Contact
	for _, c := range contacts {
		if c.ID == input.ContactID {
			contact = c
			break
		}
	}
	if contact == nil {
		return nil, &DomainError{Code: "CONTACT_NOT_FOUND", Message: entity.ErrContactNotFound.Error()}
	}
	if contact.Email == "" {
		return nil, &DomainError{Code: "NO_EMAIL_ADDRESS", Message: entity.ErrNoEmailAddress.Error()}
	}

	messageID, err := uc.Mail.Send(input.FromAccount, contact.Email, input.Subject, input.Body)
	if err != nil {
		if errors.Is(err, mail.ErrUnknownAccount) {
			return nil, &DomainError{Code: "UNKNOWN_SENDER", Message: err.Error()}
		}
		return nil, &TechnicalError{
			Code:    "MAIL_ERROR",
			Message: "failed to send email: " + err.Error(),
		}
	}

	entry, err := uc.EmailLog.Add(ctx, contact.ID, input.Subject, input.FromAccount, entity.EmailStatusSent)
	if err != nil {
		// The email went out but the log append failed. There is no rollback
		// for a sent email; report the store failure.
		return nil, &TechnicalError{
			Code:    "STORE_ERROR",
			Message: "email sent but logging failed: " + err.Error(),
		}
	}

	return &SendOutreachOutput{
		EmailID:   entry.ID,
		MessageID: messageID,
		SentTo:    contact.Email,
	}, nil
}
