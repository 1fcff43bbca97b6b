package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"
)

// Product is a single catalog entry.
type Product struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	File  string `json:"file"`
}

// Loader serves products from a JSON file on disk. The file is re-read when
// its modification time changes, so catalog edits show up without a restart.
type Loader struct {
	path string

	mu       sync.RWMutex
	products []Product
	modTime  time.Time
	loaded   bool
}

// NewLoader creates a catalog loader for the given JSON file.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// NewFromConfig creates a catalog loader from configuration.
func NewFromConfig(cfg Config) *Loader {
	return NewLoader(cfg.Path)
}

// All returns every product in catalog order. A missing or malformed
// catalog file yields an empty slice, never an error: the storefront
// degrades to an empty shelf instead of going down.
func (l *Loader) All() []Product {
	products, err := l.load()
	if err != nil {
		return nil
	}
	return products
}

// Find returns the first product whose slug matches. Duplicate slugs
// resolve to the earliest entry.
func (l *Loader) Find(slug string) (Product, error) {
	products, err := l.load()
	if err != nil {
		return Product{}, err
	}

	for _, p := range products {
		if p.Slug == slug {
			return p, nil
		}
	}

	return Product{}, fmt.Errorf("%w: %q", ErrProductNotFound, slug)
}

// load returns the cached products, re-reading the file when it changed.
func (l *Loader) load() ([]Product, error) {
	info, err := os.Stat(l.path)
	if err != nil {
		return nil, errors.Join(ErrCatalogUnavailable, err)
	}

	l.mu.RLock()
	if l.loaded && info.ModTime().Equal(l.modTime) {
		products := l.products
		l.mu.RUnlock()
		return products, nil
	}
	l.mu.RUnlock()

	l.mu.Lock()
	defer l.mu.Unlock()

	// Another goroutine may have refreshed the cache while we waited.
	if l.loaded && info.ModTime().Equal(l.modTime) {
		return l.products, nil
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, errors.Join(ErrCatalogUnavailable, err)
	}

	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, errors.Join(ErrCatalogUnavailable, err)
	}

	l.products = products
	l.modTime = info.ModTime()
	l.loaded = true

	return l.products, nil
}
