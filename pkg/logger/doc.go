// Package logger provides a small factory around log/slog plus attribute
// helpers shared across the application.
//
// The factory produces JSON logs at INFO level by default, matching what
// log aggregation expects in production; development runs usually switch to
// text format via LOG_FORMAT=text.
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//	log := logger.NewFromConfig(cfg, logger.WithService("ebookstore"))
//
// Attribute helpers (logger.Error, logger.Component, ...) keep log keys
// consistent between packages.
package logger
