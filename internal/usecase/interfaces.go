package usecase

import (
	"context"

	"github.com/charlesw/alexandria-crm/internal/entity"
)

type ContactRepositoryInterface interface {
	ListAll(ctx context.Context) ([]*entity.Contact, error)
	CreateOrFind(ctx context.Context, c *entity.Contact) (id int, created bool, err error)
	Update(ctx context.Context, id int, c *entity.Contact) error
}

type NoteRepositoryInterface interface {
	ListForContact(ctx context.Context, contactID int) ([]*entity.Note, error)
	Add(ctx context.Context, contactID int, contractor, body string) (*entity.Note, error)
}

type EmailLogRepositoryInterface interface {
	ListAll(ctx context.Context) ([]*entity.EmailLogEntry, error)
	ListForContact(ctx context.Context, contactID int) ([]*entity.EmailLogEntry, error)
	Add(ctx context.Context, contactID int, subject, sentBy, status string) (*entity.EmailLogEntry, error)
}

type MailService interface {
	Send(fromAccount, to, subject, body string) (messageID string, err error)
}
