package integration_test

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinex/internal/app"
	"github.com/metinatakli/cinex/internal/mailer"
	"github.com/metinatakli/cinex/internal/payment"
	"github.com/metinatakli/cinex/internal/realtime"
	"github.com/metinatakli/cinex/internal/receipt"
	"github.com/metinatakli/cinex/internal/repository"
	"github.com/metinatakli/cinex/internal/seatmap"
	"github.com/metinatakli/cinex/internal/service"
	appvalidator "github.com/metinatakli/cinex/internal/validator"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App         *app.Application
	DB          *pgxpool.Pool
	RedisClient *redis.Client
	Hub         *realtime.Hub
	Mailer      *mailer.MockMailer
	Payments    *payment.MockVerifier
	Runner      *service.Runner

	cancel context.CancelFunc
}

// newTestApp wires the Postgres store, the Redis seat map and the Redis relay the same
// way the server does, with the mailer and payment verifier replaced by recorders.
func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	validator := appvalidator.NewValidator()
	mailer := mailer.NewMockMailer()
	payments := payment.NewMockVerifier()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	hub := realtime.NewHub(logger, cfg.WS.AllowedOrigins)
	go hub.Run(ctx)

	go func() {
		if err := realtime.Relay(ctx, redisClient, hub, logger); err != nil {
			logger.Error("seat update relay stopped", "error", err)
		}
	}()

	sessionManager := app.NewSessionManager(redisClient)

	store := repository.NewPostgresStore(db)
	catalog := repository.NewPostgresCatalogRepository(db)
	users := repository.NewPostgresUserRepository(db)

	renderer, err := receipt.NewHTMLRenderer()
	if err != nil {
		cancel()
		redisClient.Close()
		db.Close()
		return nil, err
	}

	notify := service.Notifications{Users: users, Receipts: renderer, Email: mailer}
	runner := service.NewRunner(logger)

	seats := service.NewSeatInventory(store, catalog, seatmap.NewRedisStore(redisClient),
		realtime.NewRedisBroadcaster(redisClient), cfg.SeatLockTTL, logger, time.Now)
	bookings := service.NewBookingManager(store, catalog, seats, logger, time.Now)

	application := app.NewApp(
		cfg,
		logger,
		validator,
		sessionManager,
		app.Services{
			Showtimes:     service.NewScheduler(store, catalog, seats, logger, time.Now),
			Seats:         seats,
			Bookings:      bookings,
			Orders:        service.NewCheckout(store, bookings, payments, notify, runner, nil, logger, time.Now),
			Cancellations: service.NewCompensator(store, bookings, notify, runner, nil, logger, time.Now),
			Subscriber:    hub,
		},
	)

	return &TestApp{
		App:         application,
		DB:          db,
		RedisClient: redisClient,
		Hub:         hub,
		Mailer:      mailer,
		Payments:    payments,
		Runner:      runner,
		cancel:      cancel,
	}, nil
}

func (a *TestApp) Close() {
	a.cancel()
	a.Runner.Wait()
	a.RedisClient.Close()
	a.DB.Close()
}
