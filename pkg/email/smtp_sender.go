package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/textproto"
	"time"

	"github.com/wneessen/go-mail"
)

// smtpSender delivers mail over authenticated SMTP with implicit TLS.
type smtpSender struct {
	client *mail.Client
	config Config
}

// NewSMTPSender creates an SMTP-backed email sender. The default
// configuration targets Gmail on port 465 (implicit TLS), matching the
// most common small-shop setup.
func NewSMTPSender(cfg Config) (EmailSender, error) {
	if cfg.SenderEmail == "" {
		return nil, fmt.Errorf("%w: SenderEmail is required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("%w: SMTPHost is required", ErrInvalidConfig)
	}
	if cfg.SMTPPassword == "" {
		return nil, fmt.Errorf("%w: SMTPPassword is required", ErrInvalidConfig)
	}

	client, err := mail.NewClient(cfg.SMTPHost,
		mail.WithPort(cfg.SMTPPort),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SenderEmail),
		mail.WithPassword(cfg.SMTPPassword),
		mail.WithTimeout(30*time.Second),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	return &smtpSender{client: client, config: cfg}, nil
}

func (s *smtpSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	return s.SendBatch(ctx, []SendEmailParams{params})
}

// SendBatch delivers all messages over a single SMTP connection.
func (s *smtpSender) SendBatch(ctx context.Context, batch []SendEmailParams) error {
	if len(batch) == 0 {
		return nil
	}

	msgs := make([]*mail.Msg, 0, len(batch))
	for _, params := range batch {
		msg, err := s.buildMessage(params)
		if err != nil {
			return err
		}
		msgs = append(msgs, msg)
	}

	if err := s.client.DialAndSendWithContext(ctx, msgs...); err != nil {
		return classifySMTPError(err)
	}

	return nil
}

func (s *smtpSender) buildMessage(params SendEmailParams) (*mail.Msg, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	msg := mail.NewMsg()
	if err := msg.From(s.config.SenderEmail); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	if err := msg.To(params.SendTo); err != nil {
		return nil, errors.Join(ErrInvalidParams, err)
	}
	if s.config.SupportEmail != "" {
		if err := msg.ReplyTo(s.config.SupportEmail); err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
	}

	msg.Subject(params.Subject)
	msg.SetBodyString(mail.TypeTextHTML, params.BodyHTML)

	for _, a := range params.Attachments {
		opts := []mail.FileOption{}
		if a.ContentType != "" {
			opts = append(opts, mail.WithFileContentType(mail.ContentType(a.ContentType)))
		}
		if err := msg.AttachReader(a.Filename, bytes.NewReader(a.Content), opts...); err != nil {
			return nil, errors.Join(ErrInvalidParams, err)
		}
	}

	return msg, nil
}

// classifySMTPError maps transport failures onto sentinel errors so callers
// can distinguish bad credentials from an unreachable server.
func classifySMTPError(err error) error {
	var protoErr *textproto.Error
	if errors.As(err, &protoErr) && protoErr.Code >= 530 && protoErr.Code <= 535 {
		return errors.Join(ErrAuthFailed, err)
	}

	var netErr net.Error
	var opErr *net.OpError
	if errors.As(err, &opErr) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return errors.Join(ErrConnectionFailed, err)
	}

	return errors.Join(ErrFailedToSendEmail, err)
}
