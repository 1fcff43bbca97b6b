package email

import "fmt"

// Provider selects the email delivery backend.
type Provider string

const (
	ProviderSMTP     Provider = "smtp"
	ProviderPostmark Provider = "postmark"
	ProviderDev      Provider = "dev"
)

// Config holds email service configuration.
// SenderEmail establishes the sender identity for all outbound mail.
// Provider-specific fields are validated by the matching constructor, so a
// dev setup does not need SMTP credentials and vice versa.
type Config struct {
	Provider     Provider `env:"EMAIL_PROVIDER" envDefault:"smtp"`
	SenderEmail  string   `env:"EMAIL_ADDRESS,required"`
	SupportEmail string   `env:"SUPPORT_EMAIL"`

	SMTPHost     string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"465"`
	SMTPPassword string `env:"EMAIL_PASSWORD"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`

	DevDir string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
}

// NewFromConfig creates the sender named by cfg.Provider.
func NewFromConfig(cfg Config) (EmailSender, error) {
	switch cfg.Provider {
	case ProviderSMTP:
		return NewSMTPSender(cfg)
	case ProviderPostmark:
		return NewPostmarkClient(cfg)
	case ProviderDev:
		return NewDevSender(cfg.DevDir), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
