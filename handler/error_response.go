package handler

import "net/http"

// errorResponse defers error handling to the configured error handler by
// returning the error from Render.
type errorResponse struct {
	err error
}

func (e errorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return e.err
}

// Error creates a Response that routes the error through the error handler
// configured on Wrap. This lets handlers surface domain failures without
// writing to the response themselves.
//
// Example:
//
//	product, err := catalog.Find(req.Slug)
//	if err != nil {
//		return handler.Error(handler.ErrNotFound)
//	}
func Error(err error) Response {
	return errorResponse{err: err}
}
