package app

import (
	"context"
	"fmt"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinex/internal/domain"
	"github.com/metinatakli/cinex/internal/events"
	"github.com/metinatakli/cinex/internal/mailer"
	"github.com/metinatakli/cinex/internal/memstore"
	"github.com/metinatakli/cinex/internal/payment"
	"github.com/metinatakli/cinex/internal/realtime"
	"github.com/metinatakli/cinex/internal/receipt"
	"github.com/metinatakli/cinex/internal/repository"
	"github.com/metinatakli/cinex/internal/seatmap"
	"github.com/metinatakli/cinex/internal/service"
	appvalidator "github.com/metinatakli/cinex/internal/validator"
	"github.com/metinatakli/cinex/migrations"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
)

type dependencies struct {
	validator      *validator.Validate
	sessionManager *scs.SessionManager
	services       Services
	runner         *service.Runner
	closers        []func()
}

func (d *dependencies) close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

// wire builds the adapters selected by the configuration and the services on top of them.
// Background goroutines (hub, relay) stop when ctx is cancelled.
func (app *Application) wire(ctx context.Context) (deps *dependencies, err error) {
	cfg := app.config
	logger := app.logger

	deps = &dependencies{validator: appvalidator.NewValidator()}
	defer func() {
		if err != nil {
			deps.close()
		}
	}()

	var (
		store   domain.Store
		catalog domain.CatalogRepository
		users   domain.UserRepository
	)

	switch cfg.Store {
	case StorePostgres:
		if cfg.DB.Migrate {
			if err := migrations.Up(cfg.DB.DSN); err != nil {
				return nil, fmt.Errorf("failed to apply migrations: %w", err)
			}
			logger.Info("database migrations applied")
		}

		db, err := NewDatabasePool(cfg)
		if err != nil {
			return nil, err
		}
		deps.closers = append(deps.closers, db.Close)

		store = repository.NewPostgresStore(db)
		catalog = repository.NewPostgresCatalogRepository(db)
		users = repository.NewPostgresUserRepository(db)

	case StoreMemory:
		memStore, memCatalog := memstore.New(), memstore.NewCatalog()
		seedMemoryStore(memStore, memCatalog, time.Now())

		store, catalog, users = memStore, memCatalog, memCatalog
		logger.Warn("running with the in-memory store, data is lost on restart")
	}

	hub := realtime.NewHub(logger, cfg.WS.AllowedOrigins)
	go hub.Run(ctx)

	var (
		redisClient *redis.Client
		seatMap     domain.SeatMapStore
		broadcaster domain.SeatBroadcaster
	)

	if cfg.Redis.URL != "" {
		redisClient, err = NewRedisClient(cfg)
		if err != nil {
			return nil, err
		}
		deps.closers = append(deps.closers, func() { redisClient.Close() })

		seatMap = seatmap.NewRedisStore(redisClient)
		broadcaster = realtime.NewRedisBroadcaster(redisClient)

		go func() {
			if err := realtime.Relay(ctx, redisClient, hub, logger); err != nil {
				logger.Error("seat update relay stopped", "error", err)
			}
		}()
	} else {
		seatMap = seatmap.NewMemoryStore()
		broadcaster = hub
	}

	deps.sessionManager = NewSessionManager(redisClient)

	notify := service.Notifications{Users: users}

	notify.Receipts, err = receipt.NewHTMLRenderer()
	if err != nil {
		return nil, err
	}

	if cfg.SMTP.Host != "" {
		notify.Email = mailer.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Sender)
	} else {
		logger.Warn("SMTP host not set, receipts will not be emailed")
	}

	if cfg.AMQP.URL != "" {
		publisher, err := events.NewRabbitPublisher(cfg.AMQP.URL)
		if err != nil {
			return nil, err
		}
		deps.closers = append(deps.closers, func() { publisher.Close() })

		notify.Events = publisher
	}

	var payments domain.PaymentVerifier
	if cfg.Stripe.SecretKey != "" {
		stripe.Key = cfg.Stripe.SecretKey
		payments = payment.NewStripeVerifier()
	} else {
		logger.Warn("Stripe key not set, card checkouts are rejected")
	}

	metrics, err := service.NewMetrics()
	if err != nil {
		return nil, err
	}

	deps.runner = service.NewRunner(logger)

	seats := service.NewSeatInventory(store, catalog, seatMap, broadcaster, cfg.SeatLockTTL, logger, time.Now)
	bookings := service.NewBookingManager(store, catalog, seats, logger, time.Now)

	deps.services = Services{
		Showtimes:     service.NewScheduler(store, catalog, seats, logger, time.Now),
		Seats:         seats,
		Bookings:      bookings,
		Orders:        service.NewCheckout(store, bookings, payments, notify, deps.runner, metrics, logger, time.Now),
		Cancellations: service.NewCompensator(store, bookings, notify, deps.runner, metrics, logger, time.Now),
		Subscriber:    hub,
	}

	return deps, nil
}

// seedMemoryStore gives the in-memory mode a small catalog to work against.
func seedMemoryStore(store *memstore.Store, catalog *memstore.Catalog, now time.Time) {
	catalog.AddCinema(domain.Cinema{ID: 1, Name: "CineX Downtown", City: "Istanbul"})
	catalog.AddMovie(domain.Movie{ID: 1, Title: "The Grand Budapest Hotel", Duration: 99})
	catalog.AddMovie(domain.Movie{ID: 2, Title: "Dune: Part Two", Duration: 166})
	catalog.AddHall(memstore.GridHall(1, 1, 10, 10))
	catalog.AddHall(memstore.GridHall(2, 1, 6, 8))
	catalog.AddUser(domain.User{ID: 1, FirstName: "Ada", LastName: "Admin", Email: "admin@cinex.local"})
	catalog.AddUser(domain.User{ID: 2, FirstName: "John", LastName: "Doe", Email: "john@cinex.local"})

	start := now.Truncate(time.Hour).Add(24 * time.Hour)

	store.AddShowtime(domain.Showtime{
		MovieID:        1,
		HallID:         1,
		CinemaID:       1,
		StartTime:      start,
		EndTime:        start.Add(99 * time.Minute),
		Status:         domain.ShowtimeScheduled,
		TotalSeats:     100,
		SeatsAvailable: 100,
		Price:          decimal.NewFromInt(12),
		CreatedAt:      now,
		UpdatedAt:      now,
	})

	store.AddSnack(domain.Snack{ID: 1, Name: "Popcorn", Price: decimal.NewFromInt(6), Quantity: 200, Available: true})
	store.AddSnack(domain.Snack{ID: 2, Name: "Soda", Price: decimal.RequireFromString("3.50"), Quantity: 200, Available: true})
}
