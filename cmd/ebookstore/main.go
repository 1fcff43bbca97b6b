package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/ebookstore/handler"
	"github.com/dmitrymomot/ebookstore/modules/store"
	"github.com/dmitrymomot/ebookstore/pkg/catalog"
	"github.com/dmitrymomot/ebookstore/pkg/config"
	"github.com/dmitrymomot/ebookstore/pkg/cookie"
	"github.com/dmitrymomot/ebookstore/pkg/email"
	"github.com/dmitrymomot/ebookstore/pkg/httpserver"
	"github.com/dmitrymomot/ebookstore/pkg/logger"
	"github.com/dmitrymomot/ebookstore/pkg/mongo"
	"github.com/dmitrymomot/ebookstore/pkg/requestid"
	"github.com/dmitrymomot/ebookstore/pkg/session"
)

type appConfig struct {
	Server  httpserver.Config
	Logger  logger.Config
	Session session.Config
	Mongo   mongo.Config
	Email   email.Config
	Catalog catalog.Config
	Store   store.Config

	// SessionSecret signs the session cookie; at least 32 characters.
	SessionSecret string `env:"SESSION_SECRET,required"`
	ServiceName   string `env:"SERVICE_NAME" envDefault:"ebookstore"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.NewFromConfig(cfg.Logger, logger.WithService(cfg.ServiceName))
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cookieMgr, err := cookie.New([]string{cfg.SessionSecret})
	if err != nil {
		log.Error("failed to create cookie manager", logger.Error(err))
		os.Exit(1)
	}

	sessionMgr := session.NewFromConfig(cfg.Session, session.WithCookieManager(cookieMgr))
	defer sessionMgr.Close()

	sender, err := email.NewFromConfig(cfg.Email)
	if err != nil {
		log.Error("failed to create email sender", logger.Error(err))
		os.Exit(1)
	}

	// MongoDB is optional; when configured it joins the readiness probe.
	var readiness []func(context.Context) error
	if cfg.Mongo.Enabled() {
		mongoClient, err := mongo.New(ctx, cfg.Mongo)
		if err != nil {
			log.Error("failed to connect to mongo", logger.Error(err))
			os.Exit(1)
		}
		defer func() { _ = mongoClient.Disconnect(context.Background()) }()
		readiness = append(readiness, mongo.Healthcheck(mongoClient))
	}

	catalogLoader := catalog.NewFromConfig(cfg.Catalog)
	fulfiller := store.NewFulfiller(sender, cfg.Store, log)
	errorHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{})
	svc := store.NewService(catalogLoader, fulfiller, sessionMgr, errorHandler, log)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Get("/health", httpserver.HealthCheckHandler(ctx, log, readiness...))
	r.Group(func(r chi.Router) {
		r.Use(sessionMgr.EnsureSession)
		r.Mount("/", svc.Handle())
	})

	srv := httpserver.NewFromConfig(cfg.Server, httpserver.WithLogger(log))
	if err := srv.Run(ctx, r); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}
