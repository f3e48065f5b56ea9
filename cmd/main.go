package main

import (
	"context"
	"time"

	"wirpackens-service/config"
	bookinghandler "wirpackens-service/internal/module/booking/handler"
	bookingentity "wirpackens-service/internal/module/booking/models/entity"
	bookingrepo "wirpackens-service/internal/module/booking/repositories"
	bookingusecases "wirpackens-service/internal/module/booking/usecases"
	contacthandler "wirpackens-service/internal/module/contact/handler"
	contactentity "wirpackens-service/internal/module/contact/models/entity"
	contactrepo "wirpackens-service/internal/module/contact/repositories"
	contactusecases "wirpackens-service/internal/module/contact/usecases"
	pricinghandler "wirpackens-service/internal/module/pricing/handler"
	pricingentity "wirpackens-service/internal/module/pricing/models/entity"
	pricingrepo "wirpackens-service/internal/module/pricing/repositories"
	pricingusecases "wirpackens-service/internal/module/pricing/usecases"
	"wirpackens-service/internal/pkg/database"
	"wirpackens-service/internal/pkg/http"
	"wirpackens-service/internal/pkg/httpclient"
	log_internal "wirpackens-service/internal/pkg/log"
	"wirpackens-service/internal/pkg/mailer"
	"wirpackens-service/internal/pkg/memstore"
	"wirpackens-service/internal/pkg/messagestream"
	"wirpackens-service/internal/pkg/metrics"
	"wirpackens-service/internal/pkg/middleware"
	"wirpackens-service/internal/pkg/redis"
	"wirpackens-service/internal/pkg/stripe"
	"wirpackens-service/internal/pkg/validation"
	router "wirpackens-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.elastic.co/apm"
	"go.uber.org/zap"
)

const storagePostgres = "postgres"

func main() {
	cfg := config.InitConfig()
	logger := log_internal.New(cfg.App.LogLevel)
	defer func() { _ = logger.Sync() }()

	app, messageRouters := initService(cfg, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	for _, router := range messageRouters {
		go func(router *message.Router) {
			if err := router.Run(ctx); err != nil {
				logger.Fatal("message router stopped", zap.Error(err))
			}
		}(router)
	}

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port, cfg.HttpServer.ShutdownTimeout, logger)

	for _, router := range messageRouters {
		_ = router.Close()
	}
}

type storage struct {
	contacts contactrepo.Repositories
	prices   pricingrepo.Repositories
	bookings bookingrepo.Repositories
}

func initStorage(ctx context.Context, cfg *config.Config, logger *otelzap.Logger) storage {
	if cfg.App.StorageDriver != storagePostgres {
		logger.Info("using in-memory storage")
		return storage{
			contacts: contactrepo.NewMemory(memstore.New[contactentity.Contact]()),
			prices:   pricingrepo.NewMemory(memstore.New[pricingentity.PriceCalculation]()),
			bookings: bookingrepo.NewMemory(memstore.New[bookingentity.Booking]()),
		}
	}

	db, err := database.GetConnection(ctx, &cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(ctx, db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}
	logger.Info("using postgres storage", zap.String("host", cfg.Database.Host), zap.String("database", cfg.Database.DBName))

	return storage{
		contacts: contactrepo.New(db, logger),
		prices:   pricingrepo.New(db, logger),
		bookings: bookingrepo.New(db, logger),
	}
}

// initCoordination picks Redis backed locking and event tracking when Redis
// is configured, in-process otherwise.
func initCoordination(ctx context.Context, cfg *config.Config, logger *otelzap.Logger) (bookingrepo.Locker, bookingrepo.EventTracker) {
	client, err := redis.SetupClient(ctx, &cfg.Redis)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	if client == nil {
		return bookingrepo.NewMemoryLocker(), bookingrepo.NewMemoryEventTracker(cfg.Redis.ProcessedTTL)
	}
	return bookingrepo.NewRedisLocker(client, cfg.Redis.LockExpiry),
		bookingrepo.NewRedisEventTracker(client, cfg.Redis.ProcessedTTL)
}

func initService(cfg *config.Config, logger *otelzap.Logger) (*fiber.App, []*message.Router) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// init metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	store := initStorage(ctx, cfg, logger)
	locker, events := initCoordination(ctx, cfg, logger)

	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)
	payments := stripe.New(&cfg.Stripe, httpClient, m)
	if !payments.Configured() {
		logger.Warn("stripe secret key missing, bookings are disabled")
	}
	if !payments.WebhookConfigured() {
		logger.Warn("stripe webhook secret missing, payments cannot be confirmed")
	}

	notifier := mailer.NewNotifier(mailer.New(&cfg.Mail, logger), cfg.Mail.TeamAddress, m, logger)

	// init message stream
	wmLogger := log_internal.NewWatermillAdapter(logger)
	stream := messagestream.New(&cfg.MessageStream, wmLogger)

	publisher, err := stream.NewPublisher()
	if err != nil {
		logger.Fatal("failed to create publisher", zap.Error(err))
	}

	subscriber, err := stream.NewSubscriber()
	if err != nil {
		logger.Fatal("failed to create subscriber", zap.Error(err))
	}

	validate := validation.New()

	contactHandler := contacthandler.ContactHandler{
		Log:       logger,
		Validator: validate,
		Usecase:   contactusecases.New(store.contacts, notifier, logger),
	}

	pricingHandler := pricinghandler.PricingHandler{
		Log:       logger,
		Validator: validate,
		Usecase:   pricingusecases.New(store.prices, notifier, logger),
	}

	bookingUsecase := bookingusecases.New(
		store.bookings,
		locker,
		events,
		payments,
		store.prices,
		notifier,
		publisher,
		validate,
		m,
		logger,
		cfg.App.BaseURL,
	)
	bookingHandler := bookinghandler.BookingHandler{
		Log:       logger,
		Validator: validate,
		Usecase:   bookingUsecase,
		Publish:   publisher,
	}

	var messageRouters []*message.Router

	bookingConfirmedRouter, err := messagestream.NewRouter(
		publisher,
		bookingusecases.TopicPoisoned,
		"booking_confirmed_handler",
		bookingusecases.TopicBookingConfirmed,
		subscriber,
		bookingHandler.ConsumeBookingConfirmed,
		wmLogger,
	)
	if err != nil {
		logger.Fatal("failed to create booking_confirmed router", zap.Error(err))
	}
	messageRouters = append(messageRouters, bookingConfirmedRouter)

	mw := middleware.Middleware{
		Log:        logger,
		Metrics:    m,
		AdminToken: cfg.App.AdminToken,
	}
	if cfg.App.APMEnabled {
		mw.Tracer = apm.DefaultTracer
	}

	storageName := "memory"
	if cfg.App.StorageDriver == storagePostgres {
		storageName = storagePostgres
	}

	serverHttp := http.SetupHttpEngine(logger)

	r := router.Initialize(serverHttp, &contactHandler, &pricingHandler, &bookingHandler, &mw, router.Health{
		AppEnv:   cfg.App.Env,
		BaseURL:  cfg.App.BaseURL,
		Storage:  storageName,
		Payments: payments,
	}, reg)

	return r, messageRouters
}
