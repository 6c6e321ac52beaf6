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

	"github.com/cmlabs-hris/prms-backend-go/internal/config"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/prms-backend-go/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/prms-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/prms-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/prms-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/prms-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/prms-backend-go/internal/pkg/oauth"
	"github.com/cmlabs-hris/prms-backend-go/internal/pkg/sse"
	"github.com/cmlabs-hris/prms-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/prms-backend-go/internal/repository/memory"
	"github.com/cmlabs-hris/prms-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/cmlabs-hris/prms-backend-go/internal/service/auth"
	"github.com/cmlabs-hris/prms-backend-go/internal/service/file"
	notificationService "github.com/cmlabs-hris/prms-backend-go/internal/service/notification"
	"github.com/cmlabs-hris/prms-backend-go/internal/service/realtime"
	"github.com/cmlabs-hris/prms-backend-go/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel()})).With(
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var opts []store.Option
	opts = append(opts, store.WithLogger(logger))
	if cfg.Auth.SeedDemoData {
		opts = append(opts, store.WithSeed(fixtures.Data()))
	}
	dataStore := store.New(opts...)

	// Repositories: PostgreSQL when DATABASE_URL points at one, memory otherwise.
	var (
		userRepo   user.UserRepository
		tokenRepo  auth.TokenRepository
		notifRepo  notification.Repository
		handshaker realtime.Handshaker
	)
	if database.IsPostgresDSN(cfg.Realtime.DatabaseURL) {
		db, err := database.NewPostgreSQLDB(ctx, cfg.Realtime.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer db.Close()

		if err := postgresql.EnsureSchema(ctx, db); err != nil {
			return err
		}
		userRepo = postgresql.NewUserRepository(db)
		tokenRepo = postgresql.NewJWTRepository(db)
		notifRepo = postgresql.NewNotificationRepository(db)
		handshaker = database.PingHandshaker{DB: db}

		journal := postgresql.NewChangeJournal(db, postgresql.JournalConfig{}, logger)
		journal.Attach(dataStore)
		defer journal.Stop()
		logger.Info("using postgresql repositories", slog.String("journal_run_id", journal.RunID().String()))
	} else {
		userRepo = memory.NewUserRepository()
		tokenRepo = memory.NewJWTRepository()
		notifRepo = memory.NewNotificationRepository()
		handshaker = realtime.HandshakerFor(cfg.Realtime.DatabaseURL, cfg.Realtime.HandshakeDelay)
		logger.Info("using in-memory repositories")
	}

	if cfg.Auth.SeedDemoData {
		hash, err := serviceAuth.HashPassword(cfg.Auth.DemoPassword)
		if err != nil {
			return err
		}
		if err := fixtures.SeedAccounts(ctx, userRepo, hash); err != nil {
			return err
		}
	}

	bridge := realtime.NewBridge(dataStore, realtime.Credentials{
		DatabaseURL:  cfg.Realtime.DatabaseURL,
		CDNCloudName: cfg.CDN.CloudName,
		CDNAPIKey:    cfg.CDN.APIKey,
	},
		realtime.WithHandshaker(handshaker),
		realtime.WithRefreshDelay(cfg.Realtime.RefreshDelay),
		realtime.WithLogger(logger),
	)
	provider := realtime.NewProvider(bridge)

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	if err != nil {
		return err
	}
	authService := serviceAuth.NewAuthService(userRepo, JWTService, tokenRepo, logger)

	var googleService oauth.GoogleService
	if cfg.OAuth2Google.Enabled() {
		googleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}

	hub := sse.NewHub(logger)
	defer hub.Close()
	notifService := notificationService.NewNotificationService(notifRepo, hub, notificationService.Config{
		BatchSize:     cfg.Notification.BatchSize,
		FlushInterval: cfg.Notification.FlushInterval,
		WorkerCount:   cfg.Notification.WorkerCount,
		QueueSize:     cfg.Notification.QueueSize,
	}, logger)
	defer notifService.Stop()
	watcher := notificationService.NewWatcher(dataStore, userRepo, notifService, logger)
	watcher.Start()
	defer watcher.Stop()

	localStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		return fmt.Errorf("initialize local storage: %w", err)
	}
	uploadDir := localStorage.BasePath()
	if cfg.Storage.UseCDN {
		localStorage = localStorage.WithCDN(cfg.CDN.CloudName)
	}
	fileService := file.NewFileService(localStorage, cfg.Storage.MaxUploadSize)

	scheduler := cron.NewScheduler(logger)
	cron.NewPayrollJobs(dataStore, logger).RegisterJobs(scheduler, cfg.Payroll.BatchInterval)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg.App, uploadDir, JWTService, provider, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(JWTService, authService, googleService, cfg.App.FrontendURL),
		Connection:   appHTTP.NewConnectionHandler(),
		Employee:     appHTTP.NewEmployeeHandler(fileService),
		Leave:        appHTTP.NewLeaveHandler(),
		Timesheet:    appHTTP.NewTimesheetHandler(),
		Benefit:      appHTTP.NewBenefitHandler(),
		Payroll:      appHTTP.NewPayrollHandler(),
		Document:     appHTTP.NewDocumentHandler(fileService),
		Notification: appHTTP.NewNotificationHandler(notifService, JWTService),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	// Ends open notification streams so Shutdown does not wait on them.
	server.RegisterOnShutdown(hub.Close)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
	return server.Shutdown(shutdownCtx)
}
