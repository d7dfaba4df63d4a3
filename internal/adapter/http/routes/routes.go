package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "bidright/docs"
	"bidright/internal/adapter/http/handlers"
	"bidright/internal/adapter/http/middleware"
	"bidright/internal/adapter/persistence/repository"
	"bidright/internal/domain/pricing"
	"bidright/internal/infrastructure/catalog"
	"bidright/internal/infrastructure/config"
	"bidright/internal/infrastructure/database"
	"bidright/internal/infrastructure/export"
	"bidright/internal/infrastructure/logger"
	"bidright/internal/infrastructure/metrics"
	"bidright/internal/infrastructure/payments"
	"bidright/internal/infrastructure/ratelimit"
	"bidright/internal/usecase"
	"bidright/internal/usecase/interfaces"
	"bidright/pkg"

	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups everything the router mounts.
type Handlers struct {
	Estimate     *handlers.EstimateHandler
	Catalog      *handlers.CatalogHandler
	Report       *handlers.ReportHandler
	Export       *handlers.ExportHandler
	Subscription *handlers.SubscriptionHandler
}

// Options configures cross-cutting middleware. A nil Limiter disables rate
// limiting and a nil Metrics drops /metrics.
type Options struct {
	JWTSecret      string
	Limiter        ratelimit.Limiter
	RateLimitRPS   float64
	RateLimitBurst int
	Metrics        *metrics.Metrics
	Log            *zap.Logger
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router, cleanup, err := build(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to startup the application", zap.Error(err))
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown", zap.Error(err))
	}
}

// build wires storage, gateways and use cases from cfg.
func build(ctx context.Context, cfg config.Config, log *zap.Logger) (*gin.Engine, func(), error) {
	rates, err := catalog.Load(cfg.CatalogFile, log)
	if err != nil {
		return nil, nil, err
	}

	ddb, err := database.ConnectDynamoDB(ctx, database.Settings{
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		Endpoint:        cfg.DynamoDBEndpoint,
	}, log)
	if err != nil {
		return nil, nil, err
	}

	estimateRepo := repository.NewEstimateDynamoRepository(ddb, cfg.EstimatesTable)
	subscriptionRepo := repository.NewSubscriptionDynamoRepository(ddb, cfg.SubscriptionsTable)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, log)
	if err != nil {
		log.Warn("mercado pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	m := metrics.New()
	calc := pricing.NewCalculator(rates)

	subscriptionUseCase := usecase.NewSubscriptionUseCase(
		subscriptionRepo,
		estimateRepo,
		paymentGateway,
		usecase.PlanPrices{Monthly: cfg.ProMonthlyPrice, Annual: cfg.ProAnnualPrice},
		cfg.FreeSavedEstimatesLimit,
		log,
		m,
	)
	estimateUseCase := usecase.NewEstimateUseCase(calc, estimateRepo, subscriptionUseCase, cfg.FreeSavedEstimatesLimit, log, m)
	reportUseCase := usecase.NewReportUseCase(calc, estimateRepo, export.NewRenderer(), subscriptionUseCase, log, m)

	cleanup := func() {}
	var limiter ratelimit.Limiter
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := client.Ping(pingCtx).Err(); err != nil {
			log.Warn("redis unreachable, rate limiting will fail open", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		cancel()
		limiter = ratelimit.NewTokenBucket(client)
		cleanup = func() { _ = client.Close() }
	} else {
		log.Info("REDIS_ADDR not set, rate limiting disabled")
	}

	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET not set, authenticated routes will reject every request")
	}

	router := NewRouter(Handlers{
		Estimate:     handlers.NewEstimateHandler(estimateUseCase),
		Catalog:      handlers.NewCatalogHandler(estimateUseCase),
		Report:       handlers.NewReportHandler(reportUseCase),
		Export:       handlers.NewExportHandler(reportUseCase),
		Subscription: handlers.NewSubscriptionHandler(subscriptionUseCase),
	}, Options{
		JWTSecret:      cfg.JWTSecret,
		Limiter:        limiter,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		Metrics:        m,
		Log:            log,
	})
	return router, cleanup, nil
}

// NewRouter mounts every route on a fresh engine.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}

	router := gin.New()
	setMiddlewares(router, opts)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	public := middleware.OptionalAuth(opts.JWTSecret)
	private := middleware.RequireAuth(opts.JWTSecret)
	throttle := middleware.RateLimit(opts.Limiter, opts.RateLimitRPS, opts.RateLimitBurst, opts.Log)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, h.Catalog)
	addEstimateRoutes(v1, h.Estimate, public, private, throttle)
	addReportRoutes(v1, h.Report, h.Export, private, throttle)
	addBillingRoutes(v1, h.Subscription, private)
	return router
}

func setMiddlewares(router *gin.Engine, opts Options) {
	log := opts.Log
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}))
	router.Use(middleware.RequestLogger(log))
	if opts.Metrics != nil {
		router.Use(middleware.Metrics(opts.Metrics))
	}
}
