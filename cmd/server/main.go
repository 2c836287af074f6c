package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	aurelle "github.com/aurelle-app/aurelle"
	"github.com/aurelle-app/aurelle/internal/auth"
	"github.com/aurelle-app/aurelle/internal/config"
	"github.com/aurelle-app/aurelle/internal/handler"
	"github.com/aurelle-app/aurelle/internal/repository"
	"github.com/aurelle-app/aurelle/internal/repository/sqlc"
	"github.com/aurelle-app/aurelle/internal/service"
	"github.com/aurelle-app/aurelle/internal/storage"
	"github.com/aurelle-app/aurelle/internal/ws"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded", "error", err)
	}

	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	migrations, err := fs.Sub(aurelle.MigrationsFS, "migrations")
	if err != nil {
		return err
	}
	if err := repository.RunMigrations(cfg.DatabaseURL, migrations); err != nil {
		return err
	}

	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	queries := sqlc.New(pool)
	tokens := auth.NewManager(cfg.JWTSecret)

	presigner, err := storage.NewPresigner(ctx, cfg)
	if err != nil {
		return err
	}

	lobby := ws.NewLobby(service.NewChatStore(queries))
	go lobby.Run(ctx)

	h := handler.New(handler.Deps{
		Config:    cfg,
		Tokens:    tokens,
		Users:     service.NewUserService(pool, queries, tokens),
		Items:     service.NewItemService(pool, queries),
		Catalog:   service.NewCatalogService(pool, queries),
		Rooms:     service.NewRoomService(pool, queries),
		Documents: service.NewDocumentService(pool, queries, presigner),
		Lobby:     lobby,
	})

	router := gin.New()
	h.Register(router)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
