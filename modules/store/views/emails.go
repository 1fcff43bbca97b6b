package views

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// OwnerNotice renders the sale notification sent to the store owner.
func OwnerNotice(buyerName, buyerEmail, productTitle string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<p>New purchase from %s (%s) for %s.</p>`,
			templ.EscapeString(buyerName),
			templ.EscapeString(buyerEmail),
			templ.EscapeString(productTitle),
		)
		return err
	})
}

// BuyerReceipt renders the thank-you email sent to the buyer.
func BuyerReceipt(buyerName, productTitle string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<p>Hi %[1]s,</p>`+
				`<p>Thanks for purchasing <strong>%[2]s</strong>!</p>`+
				`<p>Your eBook is attached to this email as a PDF. `+
				`If you face any issue, just reply to this email.</p>`+
				`<p>The eBook Store Team</p>`,
			templ.EscapeString(buyerName),
			templ.EscapeString(productTitle),
		)
		return err
	})
}

// Render renders a component to a string, for email bodies.
func Render(ctx context.Context, component templ.Component) (string, error) {
	var sb strings.Builder
	if err := component.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
