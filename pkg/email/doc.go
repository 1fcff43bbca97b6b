// Package email provides a provider-agnostic interface for sending
// transactional emails with attachments.
//
// The package is built around the EmailSender interface, allowing delivery
// backends to be swapped without changing application code:
//   - smtpSender for authenticated SMTP with implicit TLS (default)
//   - postmarkClient for the Postmark transactional API
//   - DevSender for local development (saves emails to disk)
//
// Senders that implement BatchSender can deliver several messages over a
// single provider connection, which keeps a purchase notification and its
// matching receipt on one SMTP session.
//
// Basic usage:
//
//	sender, err := email.NewFromConfig(cfg)
//	if err != nil {
//	    return err
//	}
//
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//	    SendTo:   "reader@example.com",
//	    Subject:  "Your eBook",
//	    BodyHTML: htmlContent,
//	    Attachments: []email.Attachment{
//	        {Filename: "book.pdf", Content: pdf, ContentType: "application/pdf"},
//	    },
//	})
//
// Failures are classified with sentinel errors so callers can distinguish
// bad credentials (ErrAuthFailed) from an unreachable server
// (ErrConnectionFailed) and generic delivery problems (ErrFailedToSendEmail).
package email
