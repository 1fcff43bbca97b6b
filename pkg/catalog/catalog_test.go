package catalog_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ebookstore/pkg/catalog"
)

func writeCatalog(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "products.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const sampleCatalog = `[
	{"slug": "go-basics", "title": "Go Basics", "file": "go-basics.pdf"},
	{"slug": "web-dev", "title": "Web Development", "file": "web-dev.pdf"}
]`

func TestAll(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, t.TempDir(), sampleCatalog)
	loader := catalog.NewLoader(path)

	products := loader.All()
	require.Len(t, products, 2)
	assert.Equal(t, "go-basics", products[0].Slug)
	assert.Equal(t, "Go Basics", products[0].Title)
	assert.Equal(t, "web-dev.pdf", products[1].File)
}

func TestAllMissingFile(t *testing.T) {
	t.Parallel()

	loader := catalog.NewLoader(filepath.Join(t.TempDir(), "absent.json"))
	assert.Empty(t, loader.All())
}

func TestAllMalformedFile(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, t.TempDir(), `{"not": "an array"`)
	loader := catalog.NewLoader(path)
	assert.Empty(t, loader.All())
}

func TestFind(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, t.TempDir(), sampleCatalog)
	loader := catalog.NewLoader(path)

	t.Run("existing slug", func(t *testing.T) {
		product, err := loader.Find("web-dev")
		require.NoError(t, err)
		assert.Equal(t, "Web Development", product.Title)
	})

	t.Run("unknown slug", func(t *testing.T) {
		_, err := loader.Find("nope")
		assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	})

	t.Run("missing file", func(t *testing.T) {
		missing := catalog.NewLoader(filepath.Join(t.TempDir(), "absent.json"))
		_, err := missing.Find("go-basics")
		assert.ErrorIs(t, err, catalog.ErrCatalogUnavailable)
	})
}

func TestFindDuplicateSlugReturnsFirst(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, t.TempDir(), `[
		{"slug": "dup", "title": "First Edition", "file": "first.pdf"},
		{"slug": "dup", "title": "Second Edition", "file": "second.pdf"}
	]`)
	loader := catalog.NewLoader(path)

	product, err := loader.Find("dup")
	require.NoError(t, err)
	assert.Equal(t, "First Edition", product.Title)
}

func TestReloadOnChange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeCatalog(t, dir, sampleCatalog)
	loader := catalog.NewLoader(path)

	require.Len(t, loader.All(), 2)

	updated := `[{"slug": "solo", "title": "Solo", "file": "solo.pdf"}]`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0644))
	// Force a distinct mtime; some filesystems have coarse resolution.
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	products := loader.All()
	require.Len(t, products, 1)
	assert.Equal(t, "solo", products[0].Slug)
}

func TestCacheServesWithoutReparse(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeCatalog(t, dir, sampleCatalog)
	loader := catalog.NewLoader(path)

	first := loader.All()
	second := loader.All()
	assert.Equal(t, first, second)
}
