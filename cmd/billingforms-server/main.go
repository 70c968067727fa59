package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-billingforms/components/formcheck"
	"github.com/goliatone/go-billingforms/pkg/formvalidation"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML/JSON/TOML config file")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}
	logger := SetupLogger(cfg)

	router, err := NewRouter(cfg, logrus.NewEntry(logger))
	if err != nil {
		logger.WithError(err).Fatal("failed to build router")
	}

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.WithField("addr", server.Addr).Info("billingforms server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("http server failed")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
		return
	}
	logger.Info("billingforms server stopped")
}

// NewRouter mounts the form-check component and a health probe.
func NewRouter(cfg *Config, log *logrus.Entry) (http.Handler, error) {
	svc, err := loadService(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	component := formcheck.New(
		formcheck.WithService(svc),
		formcheck.WithMaxBodyBytes(cfg.Server.MaxBodyBytes),
		formcheck.WithLogger(log.WithField("component", "formcheck")),
	)
	routes, err := component.RegisterRoutes(r, cfg.Server.BasePath)
	if err != nil {
		return nil, err
	}
	log.WithField("validate", routes.Validate).
		WithField("reorder", routes.Reorder).
		WithField("kinds", routes.Kinds).
		Debug("routes registered")

	return r, nil
}

func loadService(path string) (*formvalidation.Service, error) {
	if path == "" {
		return formvalidation.New(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	catalog, err := formvalidation.LoadCatalog(raw)
	if err != nil {
		return nil, err
	}
	return formvalidation.New(formvalidation.WithCatalog(catalog)), nil
}
