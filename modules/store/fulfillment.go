package store

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dmitrymomot/ebookstore/modules/store/views"
	"github.com/dmitrymomot/ebookstore/pkg/catalog"
	"github.com/dmitrymomot/ebookstore/pkg/email"
	"github.com/dmitrymomot/ebookstore/pkg/logger"
)

// Fulfiller delivers a purchased eBook: one notification email to the store
// owner and one receipt email, with the PDF attached, to the buyer.
type Fulfiller struct {
	sender     email.EmailSender
	ownerEmail string
	pdfDir     string
	log        *slog.Logger
}

// NewFulfiller creates a fulfillment notifier.
func NewFulfiller(sender email.EmailSender, cfg Config, log *slog.Logger) *Fulfiller {
	if log == nil {
		log = slog.Default()
	}
	return &Fulfiller{
		sender:     sender,
		ownerEmail: cfg.OwnerEmail,
		pdfDir:     cfg.PDFDir,
		log:        log,
	}
}

// Fulfill composes and sends both purchase emails. When the sender supports
// batching, both messages go out over a single provider connection.
// A missing PDF degrades to a receipt without attachment; delivery failures
// are returned to the caller.
func (f *Fulfiller) Fulfill(ctx context.Context, buyerName, buyerEmail string, product catalog.Product) error {
	ownerBody, err := views.Render(ctx, views.OwnerNotice(buyerName, buyerEmail, product.Title))
	if err != nil {
		return fmt.Errorf("render owner notice: %w", err)
	}

	buyerBody, err := views.Render(ctx, views.BuyerReceipt(buyerName, product.Title))
	if err != nil {
		return fmt.Errorf("render buyer receipt: %w", err)
	}

	batch := []email.SendEmailParams{
		{
			SendTo:   f.ownerEmail,
			Subject:  fmt.Sprintf("New purchase: %s", product.Title),
			BodyHTML: ownerBody,
			Tag:      "owner-notice",
		},
		{
			SendTo:      buyerEmail,
			Subject:     fmt.Sprintf("Your %s eBook", product.Title),
			BodyHTML:    buyerBody,
			Tag:         "buyer-receipt",
			Attachments: f.loadAttachment(ctx, product),
		},
	}

	if batchSender, ok := f.sender.(email.BatchSender); ok {
		return batchSender.SendBatch(ctx, batch)
	}

	for _, params := range batch {
		if err := f.sender.SendEmail(ctx, params); err != nil {
			return err
		}
	}
	return nil
}

// loadAttachment reads the product PDF from disk. A missing file is logged
// and skipped so the receipt still goes out without it.
func (f *Fulfiller) loadAttachment(ctx context.Context, product catalog.Product) []email.Attachment {
	if product.File == "" {
		return nil
	}

	// Base strips any path components so catalog entries cannot escape the PDF directory.
	filename := filepath.Base(product.File)
	content, err := os.ReadFile(filepath.Join(f.pdfDir, filename))
	if err != nil {
		f.log.LogAttrs(ctx, slog.LevelWarn, "ebook file not found, sending receipt without attachment",
			logger.ProductSlug(product.Slug),
			slog.String("file", filename),
			logger.Error(err),
			logger.Component("fulfillment"),
		)
		return nil
	}

	return []email.Attachment{
		{
			Filename:    filename,
			Content:     content,
			ContentType: "application/pdf",
		},
	}
}
