// Package config loads application configuration from environment
// variables into plain Go structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// the default .env file (if present) is loaded once per process, then the
// environment is parsed into any struct annotated with `env` field tags.
//
// # Usage
//
//	type CatalogConfig struct {
//	    Path string `env:"CATALOG_PATH" envDefault:"static/products.json"`
//	}
//
//	var cfg CatalogConfig
//	config.MustLoad(&cfg)
//
// Errors can be inspected with errors.Is against the package sentinels
// ErrParsingConfig and ErrNilPointer.
package config
