package catalog

import "errors"

var (
	// ErrProductNotFound indicates no product matches the requested slug
	ErrProductNotFound = errors.New("catalog.product_not_found")

	// ErrCatalogUnavailable indicates the catalog file could not be read or parsed
	ErrCatalogUnavailable = errors.New("catalog.unavailable")
)
