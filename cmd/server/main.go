package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/clemPerrousset/sondage-public-elysee/internal/adapters/attestation/devicecheck"
	"github.com/clemPerrousset/sondage-public-elysee/internal/adapters/attestation/playintegrity"
	"github.com/clemPerrousset/sondage-public-elysee/internal/adapters/handler/http"
	"github.com/clemPerrousset/sondage-public-elysee/internal/adapters/repository/postgres"
	"github.com/clemPerrousset/sondage-public-elysee/internal/config"
	"github.com/clemPerrousset/sondage-public-elysee/internal/core/domain"
	"github.com/clemPerrousset/sondage-public-elysee/internal/core/ports"
	"github.com/clemPerrousset/sondage-public-elysee/internal/core/services"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to reach database", "error", err)
		os.Exit(1)
	}

	if err := postgres.ApplyMigrations(db, cfg.MigrationsDir); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	gate, err := services.NewAdmissionGate(cfg.AdminKey)
	if err != nil {
		logger.Error("failed to build admission gate", "error", err)
		os.Exit(1)
	}

	verifiers := map[string]ports.IntegrityVerifier{
		domain.PlatformAndroid: playintegrity.NewVerifier(),
		domain.PlatformIOS: devicecheck.NewVerifier(devicecheck.Credentials{
			KeyID:         cfg.Apple.KeyID,
			TeamID:        cfg.Apple.TeamID,
			PrivateKeyPEM: cfg.Apple.PrivateKeyPEM,
		}, cfg.DeviceCheckURL),
	}

	ledgerRepo := postgres.NewLedgerRepository(db)
	tallyRepo := postgres.NewTallyRepository(db)

	voteService := services.NewVoteService(ledgerRepo, verifiers, logger)
	candidateService := services.NewCandidateService(ledgerRepo, logger)
	tallyService := services.NewTallyService(tallyRepo)

	handler := http.NewHandler(
		http.NewVoteHandler(voteService),
		http.NewTallyHandler(tallyService),
		http.NewAdminHandler(candidateService),
		gate,
	)
	server := &stdhttp.Server{Addr: cfg.ServerAddr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", "addr", cfg.ServerAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
}
