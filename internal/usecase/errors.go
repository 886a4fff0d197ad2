package usecase

// DomainError is a business-rule failure the caller can present to the user
// (validation, unknown contact, missing email address).
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is an infrastructure failure (record store or SMTP relay).
// External-service errors are never caught or retried here; they pass through
// wrapped with a code for the handler layer.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
