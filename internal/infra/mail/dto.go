package mail

// Account is one configured send-from identity. Operators pick the account per
// outreach request; SMTP credentials belong to the relay, not the account.
type Account struct {
	Key         string
	DisplayName string
	Address     string
}

type OutreachSender struct {
	Host     string
	Port     int
	User     string
	Password string

	accounts map[string]Account
}
