package binder

import "errors"

// Common binding errors
var (
	// ErrBinderNotApplicable signals that a binder does not apply to the
	// request (e.g. form binding on a GET request). The handler layer skips
	// binders returning this error instead of failing the request.
	ErrBinderNotApplicable = errors.New("binder not applicable to this request")

	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFailedToParseForm    = errors.New("failed to parse form data")
	ErrFailedToParseQuery   = errors.New("failed to parse query parameters")
	ErrFailedToParsePath    = errors.New("failed to parse path parameters")
)
