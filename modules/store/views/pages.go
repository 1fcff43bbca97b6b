package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/ebookstore/pkg/catalog"
)

// page wraps body markup in the shared HTML shell.
func page(title string, body func(ctx context.Context, w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title></head><body>`,
			templ.EscapeString(title),
		); err != nil {
			return err
		}
		if err := body(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// Landing renders the landing page.
func Landing() templ.Component {
	return page("eBook Store", func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<main><h1>Welcome to the eBook Store</h1>`+
				`<p>Hand-picked guides, delivered straight to your inbox.</p>`+
				`<a href="/home">Browse the catalog</a></main>`)
		return err
	})
}

// Home renders the catalog listing. An empty catalog shows a friendly
// message instead of an empty list.
func Home(products []catalog.Product) templ.Component {
	return page("Catalog", func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<main><h1>Our eBooks</h1>`); err != nil {
			return err
		}
		if len(products) == 0 {
			if _, err := io.WriteString(w, `<p>No eBooks available right now. Check back soon!</p>`); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<ul class="catalog">`); err != nil {
				return err
			}
			for _, p := range products {
				if _, err := fmt.Fprintf(w,
					`<li><a href="/buy/%s">%s</a></li>`,
					templ.EscapeString(p.Slug),
					templ.EscapeString(p.Title),
				); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</ul>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main>`)
		return err
	})
}

// BuyForm renders the purchase form for a single product.
func BuyForm(product catalog.Product) templ.Component {
	return page("Buy "+product.Title, func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<main><h1>%[1]s</h1>`+
				`<form method="post" action="/buy/%[2]s">`+
				`<label>Name <input type="text" name="name" required></label>`+
				`<label>Email <input type="email" name="email" required></label>`+
				`<button type="submit">Get the eBook</button>`+
				`</form></main>`,
			templ.EscapeString(product.Title),
			templ.EscapeString(product.Slug),
		)
		return err
	})
}

// ThankYou renders the purchase confirmation page.
func ThankYou(username, product string) templ.Component {
	return page("Thank You", func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<main><h1>Thank you, %s!</h1>`+
				`<p>Your copy of %s is on its way to your inbox.</p>`+
				`<a href="/home">Back to the catalog</a></main>`,
			templ.EscapeString(username),
			templ.EscapeString(product),
		)
		return err
	})
}
