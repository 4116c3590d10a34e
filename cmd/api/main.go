package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"storefront/internal/config"
	"storefront/internal/httpserver"
	"storefront/internal/logging"
	sessionrepo "storefront/internal/repository/session"
	cartsvc "storefront/internal/service/cart"
	productsvc "storefront/internal/service/product"
	sessionsvc "storefront/internal/service/session"
	"storefront/internal/storefront"
)

func main() {
	cfg := config.Load()
	logger, err := logging.New(cfg.AppEnv, "api")
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}

	ctx := context.Background()
	client, err := storefront.New(cfg.Storefront, storefront.WithTimeout(cfg.StorefrontTimeout))
	if err != nil {
		logger.Fatal("init storefront client", zap.Error(err))
	}

	store, closeStore, err := sessionrepo.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open session store", zap.Error(err))
	}
	defer closeStore()

	sessions, err := sessionsvc.New(cfg.SessionSecret)
	if err != nil {
		logger.Fatal("init session codec", zap.Error(err))
	}

	productService := productsvc.New(client, logger.Named("products"))
	cartService := cartsvc.New(client, store, logger.Named("cart"))

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		ProductSvc:     productService,
		CartSvc:        cartService,
		Sessions:       sessions,
		SessionStore:   store,
		CookieName:     cfg.SessionCookieName,
		CookieSecure:   cfg.CookieSecure,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	if err != nil {
		logger.Fatal("init server", zap.Error(err))
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting http server", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		logger.Error("server error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	} else {
		logger.Info("server stopped")
	}
}
