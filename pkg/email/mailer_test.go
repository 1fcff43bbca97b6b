package email_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ebookstore/pkg/email"
)

func TestSendEmailParams_Validate(t *testing.T) {
	t.Parallel()

	valid := email.SendEmailParams{
		SendTo:   "reader@example.com",
		Subject:  "Your eBook",
		BodyHTML: "<p>Thanks for your purchase</p>",
	}

	tests := []struct {
		name    string
		mutate  func(*email.SendEmailParams)
		wantErr bool
	}{
		{
			name:   "valid params",
			mutate: func(p *email.SendEmailParams) {},
		},
		{
			name:   "valid with tag and attachment",
			mutate: func(p *email.SendEmailParams) {
				p.Tag = "receipt"
				p.Attachments = []email.Attachment{
					{Filename: "book.pdf", Content: []byte("%PDF-1.4"), ContentType: "application/pdf"},
				}
			},
		},
		{
			name:    "empty recipient",
			mutate:  func(p *email.SendEmailParams) { p.SendTo = "" },
			wantErr: true,
		},
		{
			name:    "malformed recipient",
			mutate:  func(p *email.SendEmailParams) { p.SendTo = "not-an-email" },
			wantErr: true,
		},
		{
			name:    "empty subject",
			mutate:  func(p *email.SendEmailParams) { p.Subject = "" },
			wantErr: true,
		},
		{
			name:    "empty body",
			mutate:  func(p *email.SendEmailParams) { p.BodyHTML = "" },
			wantErr: true,
		},
		{
			name: "attachment without filename",
			mutate: func(p *email.SendEmailParams) {
				p.Attachments = []email.Attachment{{Content: []byte("x")}}
			},
			wantErr: true,
		},
		{
			name: "empty attachment content",
			mutate: func(p *email.SendEmailParams) {
				p.Attachments = []email.Attachment{{Filename: "book.pdf"}}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params := valid
			tt.mutate(&params)

			err := params.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, email.ErrInvalidParams)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("unknown provider", func(t *testing.T) {
		t.Parallel()

		_, err := email.NewFromConfig(email.Config{Provider: "carrier-pigeon", SenderEmail: "shop@example.com"})
		assert.ErrorIs(t, err, email.ErrUnknownProvider)
	})

	t.Run("smtp missing password", func(t *testing.T) {
		t.Parallel()

		_, err := email.NewFromConfig(email.Config{
			Provider:    email.ProviderSMTP,
			SenderEmail: "shop@example.com",
			SMTPHost:    "smtp.gmail.com",
			SMTPPort:    465,
		})
		assert.ErrorIs(t, err, email.ErrInvalidConfig)
	})

	t.Run("postmark missing tokens", func(t *testing.T) {
		t.Parallel()

		_, err := email.NewFromConfig(email.Config{
			Provider:    email.ProviderPostmark,
			SenderEmail: "shop@example.com",
		})
		assert.ErrorIs(t, err, email.ErrInvalidConfig)
	})

	t.Run("dev sender", func(t *testing.T) {
		t.Parallel()

		sender, err := email.NewFromConfig(email.Config{
			Provider:    email.ProviderDev,
			SenderEmail: "shop@example.com",
			DevDir:      t.TempDir(),
		})
		require.NoError(t, err)
		assert.NotNil(t, sender)
	})
}

func TestDevSender(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sender := email.NewDevSender(dir)

	err := sender.SendEmail(context.Background(), email.SendEmailParams{
		SendTo:   "reader@example.com",
		Subject:  "Your eBook",
		BodyHTML: "<p>Enjoy the read</p>",
		Tag:      "receipt",
		Attachments: []email.Attachment{
			{Filename: "book.pdf", Content: []byte("%PDF-1.4"), ContentType: "application/pdf"},
		},
	})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var htmlFile, jsonFile, pdfFile string
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".html"):
			htmlFile = e.Name()
		case strings.HasSuffix(e.Name(), ".json"):
			jsonFile = e.Name()
		case strings.HasSuffix(e.Name(), ".pdf"):
			pdfFile = e.Name()
		}
	}

	require.NotEmpty(t, htmlFile)
	require.NotEmpty(t, jsonFile)
	require.NotEmpty(t, pdfFile)

	body, err := os.ReadFile(filepath.Join(dir, htmlFile))
	require.NoError(t, err)
	assert.Contains(t, string(body), "Enjoy the read")

	meta, err := os.ReadFile(filepath.Join(dir, jsonFile))
	require.NoError(t, err)

	var decoded struct {
		SendTo      string   `json:"send_to"`
		Subject     string   `json:"subject"`
		Attachments []string `json:"attachments"`
	}
	require.NoError(t, json.Unmarshal(meta, &decoded))
	assert.Equal(t, "reader@example.com", decoded.SendTo)
	assert.Equal(t, "Your eBook", decoded.Subject)
	assert.Len(t, decoded.Attachments, 1)
}

func TestDevSenderRejectsInvalidParams(t *testing.T) {
	t.Parallel()

	sender := email.NewDevSender(t.TempDir())

	err := sender.SendEmail(context.Background(), email.SendEmailParams{
		SendTo:  "reader@example.com",
		Subject: "Missing body",
	})
	assert.ErrorIs(t, err, email.ErrInvalidParams)
}
