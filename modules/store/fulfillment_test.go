package store_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ebookstore/modules/store"
	"github.com/dmitrymomot/ebookstore/pkg/catalog"
	"github.com/dmitrymomot/ebookstore/pkg/email"
)

// recordingSender captures every email instead of delivering it.
type recordingSender struct {
	sent []email.SendEmailParams
	err  error
}

func (r *recordingSender) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, params)
	return nil
}

// recordingBatchSender additionally implements BatchSender.
type recordingBatchSender struct {
	recordingSender
	batches int
}

func (r *recordingBatchSender) SendBatch(ctx context.Context, batch []email.SendEmailParams) error {
	if r.err != nil {
		return r.err
	}
	r.batches++
	r.sent = append(r.sent, batch...)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFulfillSendsOwnerNoticeAndBuyerReceipt(t *testing.T) {
	t.Parallel()

	pdfDir := t.TempDir()
	pdfContent := []byte("%PDF-1.4 test content")
	require.NoError(t, os.WriteFile(filepath.Join(pdfDir, "go-basics.pdf"), pdfContent, 0644))

	sender := &recordingSender{}
	fulfiller := store.NewFulfiller(sender, store.Config{
		OwnerEmail: "owner@example.com",
		PDFDir:     pdfDir,
	}, discardLogger())

	product := catalog.Product{Slug: "go-basics", Title: "Go Basics", File: "go-basics.pdf"}
	require.NoError(t, fulfiller.Fulfill(context.Background(), "Alice", "alice@example.com", product))

	require.Len(t, sender.sent, 2)

	owner := sender.sent[0]
	assert.Equal(t, "owner@example.com", owner.SendTo)
	assert.Contains(t, owner.Subject, "Go Basics")
	assert.Contains(t, owner.BodyHTML, "Alice")
	assert.Contains(t, owner.BodyHTML, "alice@example.com")
	assert.Empty(t, owner.Attachments)

	buyer := sender.sent[1]
	assert.Equal(t, "alice@example.com", buyer.SendTo)
	assert.Contains(t, buyer.Subject, "Go Basics")
	assert.Contains(t, buyer.BodyHTML, "Alice")
	require.Len(t, buyer.Attachments, 1)
	assert.Equal(t, "go-basics.pdf", buyer.Attachments[0].Filename)
	assert.Equal(t, pdfContent, buyer.Attachments[0].Content)
	assert.Equal(t, "application/pdf", buyer.Attachments[0].ContentType)
}

func TestFulfillMissingFileSkipsAttachment(t *testing.T) {
	t.Parallel()

	sender := &recordingSender{}
	fulfiller := store.NewFulfiller(sender, store.Config{
		OwnerEmail: "owner@example.com",
		PDFDir:     t.TempDir(),
	}, discardLogger())

	product := catalog.Product{Slug: "ghost", Title: "Ghost Book", File: "ghost.pdf"}
	require.NoError(t, fulfiller.Fulfill(context.Background(), "Bob", "bob@example.com", product))

	require.Len(t, sender.sent, 2)
	assert.Empty(t, sender.sent[1].Attachments)
}

func TestFulfillNoFileField(t *testing.T) {
	t.Parallel()

	sender := &recordingSender{}
	fulfiller := store.NewFulfiller(sender, store.Config{
		OwnerEmail: "owner@example.com",
		PDFDir:     t.TempDir(),
	}, discardLogger())

	product := catalog.Product{Slug: "no-file", Title: "No File"}
	require.NoError(t, fulfiller.Fulfill(context.Background(), "Bob", "bob@example.com", product))

	require.Len(t, sender.sent, 2)
	assert.Empty(t, sender.sent[1].Attachments)
}

func TestFulfillUsesBatchSender(t *testing.T) {
	t.Parallel()

	sender := &recordingBatchSender{}
	fulfiller := store.NewFulfiller(sender, store.Config{
		OwnerEmail: "owner@example.com",
		PDFDir:     t.TempDir(),
	}, discardLogger())

	product := catalog.Product{Slug: "go-basics", Title: "Go Basics"}
	require.NoError(t, fulfiller.Fulfill(context.Background(), "Alice", "alice@example.com", product))

	// Both messages go out in one batch, i.e. one provider connection.
	assert.Equal(t, 1, sender.batches)
	assert.Len(t, sender.sent, 2)
}

func TestFulfillPropagatesSendError(t *testing.T) {
	t.Parallel()

	sender := &recordingSender{err: email.ErrConnectionFailed}
	fulfiller := store.NewFulfiller(sender, store.Config{
		OwnerEmail: "owner@example.com",
		PDFDir:     t.TempDir(),
	}, discardLogger())

	product := catalog.Product{Slug: "go-basics", Title: "Go Basics"}
	err := fulfiller.Fulfill(context.Background(), "Alice", "alice@example.com", product)
	assert.ErrorIs(t, err, email.ErrConnectionFailed)
}

func TestFulfillStripsPathFromFilename(t *testing.T) {
	t.Parallel()

	pdfDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(pdfDir, "book.pdf"), []byte("%PDF"), 0644))

	sender := &recordingSender{}
	fulfiller := store.NewFulfiller(sender, store.Config{
		OwnerEmail: "owner@example.com",
		PDFDir:     pdfDir,
	}, discardLogger())

	product := catalog.Product{Slug: "sneaky", Title: "Sneaky", File: "../../book.pdf"}
	require.NoError(t, fulfiller.Fulfill(context.Background(), "Alice", "alice@example.com", product))

	require.Len(t, sender.sent[1].Attachments, 1)
	assert.Equal(t, "book.pdf", sender.sent[1].Attachments[0].Filename)
}
