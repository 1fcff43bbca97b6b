// Package handler provides type-safe HTTP request handling built on generics.
//
// The core abstraction is HandlerFunc[C, R]: a function taking a Context and
// a typed request, returning a Response. Wrap converts it to a standard
// http.HandlerFunc, running configured binders to populate the request value
// and routing failures through an ErrorHandler.
//
// Responses cover the common cases:
//   - Templ renders a templ component (plain HTML or DataStar SSE patch)
//   - Redirect / RedirectWithCode issue HTTP redirects
//   - Error routes a domain failure to the error handler
//
// A typical route:
//
//	type BuyRequest struct {
//		Slug     string `path:"slug"`
//		Username string `form:"username"`
//	}
//
//	h := handler.HandlerFunc[handler.Context, BuyRequest](
//		func(ctx handler.Context, req BuyRequest) handler.Response {
//			...
//		},
//	)
//
//	r.Post("/buy/{slug}", handler.Wrap(h,
//		handler.WithBinders[handler.Context, BuyRequest](
//			binder.Path(chi.URLParam),
//			binder.Form(),
//		),
//		handler.WithErrorHandler[handler.Context, BuyRequest](errorHandler),
//	))
//
// NewErrorHandler builds a shared error handler that classifies errors
// (HTTPError status codes, validation errors as 400) and logs them with
// request context before rendering an error page or plain-text fallback.
package handler
