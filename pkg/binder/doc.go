// Package binder parses HTTP request data into typed structs driven by
// struct tags. Each binder handles one source (path, query, form) and can
// be stacked on a single route; binders that do not apply to a request
// report ErrBinderNotApplicable so the handler layer can skip them.
package binder
