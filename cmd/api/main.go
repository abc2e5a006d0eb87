package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/incubtek-portal/internal/api/http"
	"github.com/spec-kit/incubtek-portal/internal/api/http/handlers"
	"github.com/spec-kit/incubtek-portal/internal/auth"
	"github.com/spec-kit/incubtek-portal/internal/config"
	"github.com/spec-kit/incubtek-portal/internal/confirmation"
	"github.com/spec-kit/incubtek-portal/internal/events"
	"github.com/spec-kit/incubtek-portal/internal/fixtures"
	"github.com/spec-kit/incubtek-portal/internal/mail"
	"github.com/spec-kit/incubtek-portal/internal/navigation"
	"github.com/spec-kit/incubtek-portal/internal/notification"
	"github.com/spec-kit/incubtek-portal/internal/observability"
	"github.com/spec-kit/incubtek-portal/internal/persistence"
	"github.com/spec-kit/incubtek-portal/internal/repository"
	"github.com/spec-kit/incubtek-portal/internal/service"
	"github.com/spec-kit/incubtek-portal/internal/state"
	"github.com/spec-kit/incubtek-portal/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations && pg.Enabled() {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	loc := cfg.App.Location()
	seed, err := fixtures.Seed(time.Now(), auth.Hasher(cfg.Auth.BcryptCost))
	if err != nil {
		logger.Fatal("failed to seed portal state", zap.Error(err))
	}
	store := state.NewStore(seed, state.Options{})

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL())

	delivery := worker.NewDeliveryWorker(buildMailer(cfg, pg, logger), cfg.Notification.QueueSize, logger, metrics)
	notificationService := service.NewNotificationService(service.NotificationDependencies{
		Dispatcher: dispatcher,
		Store:      store,
		Deriver:    notification.NewDeriver(store.Now, loc),
		Confirmer:  confirmation.NewConfirmer(buildGenerator(ctx, cfg, redis, logger), logger),
		Queue:      delivery,
		Logger:     logger,
	})
	workerDone := worker.StartNotificationWorker(ctx, notificationService, delivery)

	var historyRepo repository.TicketHistoryRepository
	if pg.Enabled() {
		historyRepo = repository.NewTicketHistoryRepository(pg.PoolHandle())
	}
	historyService := service.NewTicketHistoryService(service.TicketHistoryDependencies{
		Repo:       historyRepo,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	historyService.RegisterHandlers()

	ticketService := service.NewTicketService(service.TicketDependencies{Store: store, Dispatcher: dispatcher, Logger: logger})
	leadService := service.NewLeadService(service.LeadDependencies{Store: store, Dispatcher: dispatcher, Logger: logger})
	directoryService := service.NewDirectoryService(service.DirectoryDependencies{
		Store:      store,
		Logger:     logger,
		BcryptCost: cfg.Auth.BcryptCost,
	})
	authService := service.NewAuthService(service.AuthDependencies{Store: store, Tokens: tokens, Logger: logger})

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Dependency{
			"postgres": pg,
			"redis":    redis,
		}),
		Metrics:        handlers.NewMetricsHandler(metrics),
		Auth:           handlers.NewAuthHandler(authService),
		Views:          handlers.NewViewsHandler(store, navigation.NewRouter(store.Now, loc)),
		Catalog:        handlers.NewCatalogHandler(),
		Leads:          handlers.NewLeadsHandler(leadService),
		Admin:          handlers.NewAdminHandler(directoryService),
		Tickets:        handlers.NewTicketsHandler(ticketService, store),
		StaffTickets:   handlers.NewStaffTicketsHandler(ticketService, historyService),
		Notifications:  handlers.NewNotificationsHandler(notificationService),
		AuthMiddleware: auth.NewAuthMiddleware(tokens, store),
		LeadLimiter:    httptransport.LeadRateLimiter(cfg.RateLimit.LeadsPerMinute),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
	cancel()
	<-workerDone
}

// buildMailer always logs; the webhook and the postgres outbox are added when configured.
func buildMailer(cfg *config.Config, pg *persistence.Postgres, logger *zap.Logger) mail.Mailer {
	from := cfg.Notification.EmailFrom
	mailers := []mail.Mailer{mail.NewLogMailer(from, logger)}
	if cfg.Notification.WebhookURL != "" {
		mailers = append(mailers, mail.NewWebhookMailer(from, cfg.Notification.WebhookURL, cfg.Notification.WebhookToken, cfg.Notification.WebhookTimeout))
	}
	if cfg.Notification.OutboxEnabled {
		if pg.Enabled() {
			mailers = append(mailers, mail.NewOutboxMailer(from, repository.NewNotificationOutboxRepository(pg.PoolHandle())))
		} else {
			logger.Warn("notification outbox enabled without postgres; skipping")
		}
	}
	if len(mailers) == 1 {
		return mailers[0]
	}
	return mail.NewMultiMailer(mailers...)
}

// buildGenerator returns nil when no API key is set, which makes the
// confirmer answer with its fallback text.
func buildGenerator(ctx context.Context, cfg *config.Config, redis *persistence.Redis, logger *zap.Logger) confirmation.Generator {
	gemini, err := confirmation.NewGeminiGenerator(ctx, cfg.Generator.APIKey, cfg.Generator.Model)
	if err != nil {
		logger.Warn("confirmation generator unavailable; using fallback text", zap.Error(err))
		return nil
	}
	if !redis.Enabled() {
		return gemini
	}
	return confirmation.NewCachedGenerator(gemini, confirmation.NewRedisCache(redis.Client), cfg.Generator.CacheTTL, logger)
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
