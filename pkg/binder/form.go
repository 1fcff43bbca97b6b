package binder

import (
	"fmt"
	"net/http"
	"strings"
)

// Form creates a form data binder for application/x-www-form-urlencoded
// content.
//
// It supports struct tags for custom field names:
//   - `form:"name"` - binds to form field "name"
//   - `form:"-"`    - skips the field
//
// Supported types:
//   - Basic types: string, int, int64, uint, uint64, float32, float64, bool
//   - Slices of basic types for multi-value fields
//   - Pointers for optional fields
//
// The binder is not applicable to GET and HEAD requests (they carry no form
// body); it returns ErrBinderNotApplicable so it can share a route with
// query and path binders.
//
// Example:
//
//	type PurchaseRequest struct {
//		Slug  string `path:"slug"`
//		Name  string `form:"name"`
//		Email string `form:"email"`
//	}
//
//	r.HandleFunc("/buy/{slug}", handler.Wrap(svc.buy,
//		handler.WithBinders[handler.Context, PurchaseRequest](
//			binder.Path(chi.URLParam),
//			binder.Form(),
//		),
//	))
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			return ErrBinderNotApplicable
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return ErrBinderNotApplicable
		}

		// Extract media type without parameters
		mediaType := contentType
		if idx := strings.Index(contentType, ";"); idx != -1 {
			mediaType = strings.TrimSpace(contentType[:idx])
		}

		if mediaType != "application/x-www-form-urlencoded" {
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded", ErrUnsupportedMediaType, mediaType)
		}

		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}

		return bindToStruct(v, "form", r.PostForm, ErrFailedToParseForm)
	}
}
