package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/passforge/passforge/internal/config"
	"github.com/passforge/passforge/internal/crypto"
	"github.com/passforge/passforge/internal/generator"
	"github.com/passforge/passforge/internal/handler"
	"github.com/passforge/passforge/internal/middleware"
	"github.com/passforge/passforge/internal/random"
	"github.com/passforge/passforge/internal/repository"
	"github.com/passforge/passforge/internal/service"
	"github.com/passforge/passforge/internal/wordlist"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	words, err := loadWords(cfg.WordListPath)
	if err != nil {
		slog.Error("loading word list failed", "path", cfg.WordListPath, "error", err)
		os.Exit(1)
	}

	gen := generator.New(random.NewCryptoSource(), words)
	genService := service.NewGeneratorService(gen, cfg.GenerateMaxBatch)

	generateLimiter := middleware.NewRateLimiter(cfg.GenerateRPS, cfg.GenerateBurst)
	defer generateLimiter.Stop()
	authLimiter := middleware.NewRateLimiter(5, 10)
	defer authLimiter.Stop()

	routes := handler.Routes{
		Logger:          logger,
		Generator:       handler.NewGeneratorHandler(genService),
		GenerateLimiter: generateLimiter,
		AuthLimiter:     authLimiter,
	}

	// Accounts and presets need a reachable database; generation does not.
	db, err := repository.NewDB(context.Background(), cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database unavailable, auth and preset routes disabled", "error", err)
	} else {
		defer db.Close()

		tokens := crypto.NewTokens(cfg.JWTSecret, cfg.JWTExpiry)
		hasher := crypto.NewHasher(crypto.DefaultHashParams())

		authService := service.NewAuthService(repository.NewUserRepository(db), hasher, tokens, cfg.MinAccountPasswordScore)
		presetService := service.NewPresetService(repository.NewPresetRepository(db), genService)

		routes.Tokens = tokens
		routes.Auth = handler.NewAuthHandler(authService)
		routes.Presets = handler.NewPresetHandler(presetService)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.NewRouter(routes),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "word_categories", len(words.Categories()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

func newLogger(cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func loadWords(path string) (*wordlist.Pool, error) {
	if path == "" {
		return wordlist.Default(), nil
	}
	return wordlist.LoadFile(path)
}
