package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/charlesw/alexandria-crm/internal/entity"
	"github.com/charlesw/alexandria-crm/internal/infra/http/handlers"
	"github.com/charlesw/alexandria-crm/internal/usecase"
)

// MockMailService
type MockMailService struct {
	mock.Mock
}

func (m *MockMailService) Send(fromAccount, to, subject, body string) (string, error) {
	args := m.Called(fromAccount, to, subject, body)
	return args.String(0), args.Error(1)
}

func TestSendOutreachHandlerSuccess(t *testing.T) {
	mockContacts := new(MockContactRepository)
	mockEmails := new(MockEmailLogRepository)
	mockMail := new(MockMailService)

	mockContacts.On("ListAll", mock.Anything).Return([]*entity.Contact{
		{ID: 1, Name: "Jane", Email: "jane@x.com", Status: entity.StatusNewLead},
	}, nil)
	mockMail.On("Send", "charles", "jane@x.com", "Intro", "Hello Jane").
		Return("<abc@x.com>", nil)
	mockEmails.On("Add", mock.Anything, 1, "Intro", "charles", entity.EmailStatusSent).
		Return(&entity.EmailLogEntry{ID: 1, ContactID: 1, Subject: "Intro", Status: entity.EmailStatusSent}, nil)

	handler := handlers.NewEmailHandler(
		usecase.NewSendOutreachUseCase(mockContacts, mockEmails, mockMail),
		mockEmails,
	)

	input := usecase.SendOutreachInput{Subject: "Intro", Body: "Hello Jane", FromAccount: "charles"}
	body, _ := json.Marshal(input)
	req := httptest.NewRequest("POST", "/contacts/1/outreach", bytes.NewReader(body))
	req = withURLParam(req, "id", "1")
	w := httptest.NewRecorder()

	handler.SendOutreachHandler(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var output usecase.SendOutreachOutput
	json.NewDecoder(w.Body).Decode(&output)
	assert.Equal(t, 1, output.EmailID)
	assert.Equal(t, "<abc@x.com>", output.MessageID)
	assert.Equal(t, "jane@x.com", output.SentTo)
}

func TestSendOutreachHandlerContactWithoutEmail(t *testing.T) {
	mockContacts := new(MockContactRepository)
	mockEmails := new(MockEmailLogRepository)
	mockMail := new(MockMailService)

	mockContacts.On("ListAll", mock.Anything).Return([]*entity.Contact{
		{ID: 1, Name: "Jane", Email: "", Status: entity.StatusNewLead},
	}, nil)

	handler := handlers.NewEmailHandler(
		usecase.NewSendOutreachUseCase(mockContacts, mockEmails, mockMail),
		mockEmails,
	)

	input := usecase.SendOutreachInput{Subject: "Intro", FromAccount: "charles"}
	body, _ := json.Marshal(input)
	req := httptest.NewRequest("POST", "/contacts/1/outreach", bytes.NewReader(body))
	req = withURLParam(req, "id", "1")
	w := httptest.NewRecorder()

	handler.SendOutreachHandler(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResponse map[string]string
	json.NewDecoder(w.Body).Decode(&errResponse)
	assert.Equal(t, "NO_EMAIL_ADDRESS", errResponse["error"])
	mockMail.AssertNotCalled(t, "Send")
}

func TestListContactEmailsHandler(t *testing.T) {
	mockContacts := new(MockContactRepository)
	mockEmails := new(MockEmailLogRepository)
	mockMail := new(MockMailService)

	mockEmails.On("ListForContact", mock.Anything, 1).Return([]*entity.EmailLogEntry{
		{ID: 1, ContactID: 1, Subject: "Intro", SentBy: "charles", Date: "2026-08-20", Status: entity.EmailStatusSent},
	}, nil)

	handler := handlers.NewEmailHandler(
		usecase.NewSendOutreachUseCase(mockContacts, mockEmails, mockMail),
		mockEmails,
	)

	req := httptest.NewRequest("GET", "/contacts/1/emails", nil)
	req = withURLParam(req, "id", "1")
	w := httptest.NewRecorder()

	handler.ListContactEmailsHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var entries []*entity.EmailLogEntry
	json.NewDecoder(w.Body).Decode(&entries)
	require.Len(t, entries, 1)
	assert.Equal(t, "Intro", entries[0].Subject)
}
