package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/moverhub/backend/internal/api/handlers"
	"github.com/moverhub/backend/internal/api/router"
	"github.com/moverhub/backend/internal/billing/stripe"
	"github.com/moverhub/backend/internal/config"
	"github.com/moverhub/backend/internal/db"
	"github.com/moverhub/backend/internal/domain/mirror"
	"github.com/moverhub/backend/internal/identity/supabase"
	"github.com/moverhub/backend/internal/mirror/airtable"
	"github.com/moverhub/backend/internal/pkg/logger"
	"github.com/moverhub/backend/internal/pkg/validator"
	"github.com/moverhub/backend/internal/repository/postgres"
	"github.com/moverhub/backend/internal/services"
	supabasestorage "github.com/moverhub/backend/internal/storage/supabase"
	"github.com/moverhub/backend/internal/worker"
)

// @title MoverHub API
// @version 1.0
// @description Marketplace backend for mover profiles, subscriptions and the tabular mirror.
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	database, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Repositories and external adapters
	profileRepo := postgres.NewProfileRepository(database)

	idp := supabase.NewClient(supabase.Config{
		BaseURL:    cfg.Identity.BaseURL,
		ServiceKey: cfg.Identity.ServiceKey,
	})

	gateway := stripe.NewGateway(cfg.Stripe.SecretKey)
	verifier := stripe.NewEventVerifier(cfg.Stripe.WebhookSecret)

	var mirrorStore mirror.Store
	if cfg.Mirror.Configured() {
		mirrorStore = airtable.NewClient(airtable.Config{
			BaseURL: cfg.Mirror.BaseURL,
			BaseID:  cfg.Mirror.BaseID,
			APIKey:  cfg.Mirror.APIKey,
			Timeout: cfg.Mirror.Timeout,
		})
	} else {
		log.Warn("Mirror credentials missing, tabular sync disabled")
	}

	logoStore := supabasestorage.NewStore(supabasestorage.Config{
		BaseURL:    cfg.Storage.BaseURL,
		ServiceKey: cfg.Storage.ServiceKey,
		Bucket:     cfg.Storage.Bucket,
	})

	// Services
	mirrorService := services.NewMirrorService(mirrorStore, cfg.Mirror, log)
	profileService := services.NewProfileService(profileRepo, mirrorService, log)
	billingService := services.NewBillingService(profileRepo, gateway, verifier, cfg.Stripe, log)
	accountService := services.NewAccountService(idp, profileRepo, gateway, mirrorService, cfg.Stripe, log)

	// HTTP layer
	val := validator.New()
	h := &router.Handlers{
		Health:  handlers.NewHealthHandler(database, log),
		Account: handlers.NewAccountHandler(accountService, log, val),
		Profile: handlers.NewProfileHandler(profileService, logoStore, log, val),
		Billing: handlers.NewBillingHandler(billingService, log, val),
		Webhook: handlers.NewWebhookHandler(billingService, log),
	}

	// Background mirror sweep, opt-in via MIRROR_RESYNC_INTERVAL
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	if mirrorStore != nil && cfg.Mirror.ResyncInterval > 0 {
		reconciler := worker.NewMirrorReconciler(profileRepo, mirrorService, cfg.Mirror.ResyncInterval, log)
		go reconciler.Start(workerCtx)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.New(cfg, log, h),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Infof("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("Graceful shutdown failed: %v", err)
	}

	log.Info("Server stopped")
}
