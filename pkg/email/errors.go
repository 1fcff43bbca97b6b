package email

import "errors"

var (
	ErrInvalidConfig     = errors.New("mailer.errors.invalid_config")
	ErrInvalidParams     = errors.New("mailer.errors.invalid_params")
	ErrFailedToSendEmail = errors.New("mailer.errors.failed_to_send_email")
	ErrConnectionFailed  = errors.New("mailer.errors.connection_failed")
	ErrAuthFailed        = errors.New("mailer.errors.auth_failed")
	ErrUnknownProvider   = errors.New("mailer.errors.unknown_provider")
)
