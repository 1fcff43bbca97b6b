package catalog

// Config holds catalog configuration.
type Config struct {
	// Path points at the JSON file listing all products.
	Path string `env:"CATALOG_PATH" envDefault:"static/products.json"`
}
