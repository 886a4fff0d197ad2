package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/charlesw/alexandria-crm/internal/entity"
)

// MockContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) ListAll(ctx context.Context) ([]*entity.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Contact), args.Error(1)
}

func (m *MockContactRepository) CreateOrFind(ctx context.Context, c *entity.Contact) (int, bool, error) {
	args := m.Called(ctx, c)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *MockContactRepository) Update(ctx context.Context, id int, c *entity.Contact) error {
	args := m.Called(ctx, id, c)
	return args.Error(0)
}

// MockNoteRepository
type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) ListForContact(ctx context.Context, contactID int) ([]*entity.Note, error) {
	args := m.Called(ctx, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Note), args.Error(1)
}

func (m *MockNoteRepository) Add(ctx context.Context, contactID int, contractor, body string) (*entity.Note, error) {
	args := m.Called(ctx, contactID, contractor, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Note), args.Error(1)
}

// MockEmailLogRepository
type MockEmailLogRepository struct {
	mock.Mock
}

func (m *MockEmailLogRepository) ListAll(ctx context.Context) ([]*entity.EmailLogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.EmailLogEntry), args.Error(1)
}

func (m *MockEmailLogRepository) ListForContact(ctx context.Context, contactID int) ([]*entity.EmailLogEntry, error) {
	args := m.Called(ctx, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.EmailLogEntry), args.Error(1)
}

func (m *MockEmailLogRepository) Add(ctx context.Context, contactID int, subject, sentBy, status string) (*entity.EmailLogEntry, error) {
	args := m.Called(ctx, contactID, subject, sentBy, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.EmailLogEntry), args.Error(1)
}

// MockMailService
type MockMailService struct {
	mock.Mock
}

func (m *MockMailService) Send(fromAccount, to, subject, body string) (string, error) {
	args := m.Called(fromAccount, to, subject, body)
	return args.String(0), args.Error(1)
}
