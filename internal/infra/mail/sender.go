package mail

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// ErrUnknownAccount means the requested send-from account key is not
// configured.
var ErrUnknownAccount = errors.New("mail: unknown sender account")

func NewOutreachSender(host string, port int, user, password string, accounts []Account) *OutreachSender {
	byKey := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		byKey[strings.ToLower(a.Key)] = a
	}
	return &OutreachSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		accounts: byKey,
	}
}

// Account resolves a configured send-from identity by key (case-insensitive).
func (s *OutreachSender) Account(key string) (Account, bool) {
	a, ok := s.accounts[strings.ToLower(key)]
	return a, ok
}

// Send dispatches one plain-text outreach email from the named account and
// returns the generated Message-ID. That ID is transport metadata only; the
// email log keeps its own sequential IDs.
func (s *OutreachSender) Send(fromAccount, to, subject, body string) (string, error) {
	account, ok := s.Account(fromAccount)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAccount, fromAccount)
	}

	domain := "localhost"
	if i := strings.LastIndexByte(account.Address, '@'); i >= 0 {
		domain = account.Address[i+1:]
	}
	messageID := fmt.Sprintf("<%s@%s>", uuid.New().String(), domain)

	m := gomail.NewMessage()
	m.SetAddressHeader("From", account.Address, account.DisplayName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetHeader("Message-ID", messageID)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return "", fmt.Errorf("mail: SMTP send failed: %w", err)
	}

	return messageID, nil
}
