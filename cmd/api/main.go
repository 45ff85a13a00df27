// @title           Wedding Planner API
// @version         1.0
// @description     Guest management for a wedding: event details, guest list, RSVPs, guestbook and drink preferences.
// @BasePath        /
// @securityDefinitions.apikey InvitationToken
// @in header
// @name Authorization
// @description Invitation link token, sent as "Bearer <token>".
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"weddingplanner/config"
	_ "weddingplanner/docs"
	"weddingplanner/internal/adapters/email"
	"weddingplanner/internal/adapters/invitelink"
	delivery "weddingplanner/internal/delivery/http"
	"weddingplanner/internal/delivery/http/controllers"
	"weddingplanner/internal/delivery/http/middleware"
	"weddingplanner/internal/domain"
	"weddingplanner/internal/repository/memory"
	"weddingplanner/internal/repository/postgres"
	"weddingplanner/internal/services"
)

type repositories struct {
	weddings    domain.WeddingEventRepository
	guests      domain.GuestRepository
	messages    domain.GuestMessageRepository
	preferences domain.GuestPreferenceRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          cfg.Email.AWSRegion,
			AccessKeyID:     cfg.Email.AWSAccessKeyID,
			SecretAccessKey: cfg.Email.AWSSecretAccessKey,
			Endpoint:        cfg.Email.SESEndpoint,
		},
	}, logger)
	if err != nil {
		return fmt.Errorf("mailer: %w", err)
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return fmt.Errorf("email templates: %w", err)
	}
	signer, err := invitelink.NewSigner(cfg.InviteTokenSecret, cfg.InviteTokenTTL)
	if err != nil {
		return fmt.Errorf("invitation signer: %w", err)
	}

	weddingService := services.NewWeddingService(repos.weddings, logger, cfg.RequestTimeout)
	guestService := services.NewGuestService(repos.guests, repos.weddings, logger, cfg.RequestTimeout)
	guestbookService := services.NewGuestbookService(repos.messages, repos.preferences, repos.guests, logger, cfg.RequestTimeout)
	invitationService := services.NewInvitationService(services.InvitationConfig{
		Guests:   repos.guests,
		Weddings: repos.weddings,
		Issuer:   signer,
		Mailer:   mailer,
		Renderer: renderer,
		BaseURL:  cfg.PublicBaseURL,
		Logger:   logger,
		Timeout:  cfg.RequestTimeout,
	})

	guestbookController := controllers.NewGuestbookController(logger, guestbookService)
	router := delivery.NewRouter(delivery.Controllers{
		Weddings:  controllers.NewWeddingController(logger, weddingService),
		Guests:    controllers.NewGuestController(logger, guestService, invitationService),
		Guestbook: guestbookController,
		Invite:    controllers.NewInviteController(logger, weddingService, guestService, guestbookController),
	}, signer)

	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, router))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment, "storage", cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repositories, func(), error) {
	if cfg.StorageDriver == config.StorageMemory {
		logger.Warn("using in-memory storage; data is lost on restart")
		store := memory.NewStore()
		return repositories{
			weddings:    store.WeddingEvents(),
			guests:      store.Guests(),
			messages:    store.GuestMessages(),
			preferences: store.GuestPreferences(),
		}, func() {}, nil
	}

	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	db, err := postgres.Open(openCtx, cfg.DBUrl, postgres.PoolConfig{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		return repositories{}, nil, err
	}
	return postgresRepositories(db), func() { _ = db.Close() }, nil
}

func postgresRepositories(db *sqlx.DB) repositories {
	return repositories{
		weddings:    postgres.NewWeddingEventRepository(db),
		guests:      postgres.NewGuestRepository(db),
		messages:    postgres.NewGuestMessageRepository(db),
		preferences: postgres.NewGuestPreferenceRepository(db),
	}
}
