package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/hostmail-io/hostmail/internal/application/payment/paymentgateway"
	"github.com/hostmail-io/hostmail/internal/infrastructure/auth"
	"github.com/hostmail-io/hostmail/internal/infrastructure/config"
	"github.com/hostmail-io/hostmail/internal/infrastructure/email"
	"github.com/hostmail-io/hostmail/internal/infrastructure/filestore"
	infraPayment "github.com/hostmail-io/hostmail/internal/infrastructure/payment"
	"github.com/hostmail-io/hostmail/internal/infrastructure/ratelimit"
	"github.com/hostmail-io/hostmail/internal/infrastructure/scheduler"
	"github.com/hostmail-io/hostmail/internal/infrastructure/webhookdispatch"
	"github.com/hostmail-io/hostmail/internal/interfaces/http/middleware"
	"github.com/hostmail-io/hostmail/internal/shared/db"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
	"github.com/hostmail-io/hostmail/internal/shared/services/markdown"
)

// Container wires infrastructure, repositories, use cases, handlers, and
// background services, and owns their shutdown order.
type Container struct {
	engine *gin.Engine
	server *http.Server
	cfg    *config.Config
	log    logger.Interface
	gormDB *gorm.DB
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware      *middleware.AuthMiddleware
	apiKeyMiddleware    *middleware.APIKeyMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware

	dispatcher        *webhookdispatch.Dispatcher
	usageResetSched   *scheduler.UsageResetScheduler
	subscriptionSched *scheduler.SubscriptionScheduler
	paymentSched      *scheduler.PaymentScheduler
}

func NewContainer(cfg *config.Config, gormDB *gorm.DB, log logger.Interface) (*Container, error) {
	c := &Container{
		cfg:    cfg,
		log:    log,
		gormDB: gormDB,
	}

	c.redis = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.redis.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	c.repos = buildRepositories(gormDB)

	store, err := filestore.NewLocalStore(cfg.Storage.BaseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file store: %w", err)
	}

	c.dispatcher = webhookdispatch.NewDispatcher(c.repos.webhook, cfg.Webhook, log)

	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	c.ucs = buildUseCases(useCaseDeps{
		repos:    c.repos,
		hasher:   auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		tokens:   jwtSvc,
		tx:       db.NewTransactionManager(gormDB),
		notifier: email.NewSMTPNotifier(cfg.Email),
		events:   c.dispatcher,
		renderer: markdown.NewRenderer(),
		store:    store,
		gateway:  buildGateway(cfg, log),
		cfg:      cfg,
		log:      log,
	})

	c.hdlrs = buildHandlers(c.ucs, log)

	c.authMiddleware = middleware.NewAuthMiddleware(jwtSvc, log)
	c.apiKeyMiddleware = middleware.NewAPIKeyMiddleware(c.repos.website, log)
	c.rateLimitMiddleware = middleware.NewRateLimitMiddleware(
		ratelimit.NewRedisRateLimiter(c.redis), cfg.RateLimit, log)

	c.usageResetSched = scheduler.NewUsageResetScheduler(
		c.ucs.resetUsage, c.redis, cfg.Scheduler.UsageResetIntervalMinutes, log)
	c.subscriptionSched = scheduler.NewSubscriptionScheduler(
		c.ucs.expireSubs, cfg.Scheduler.ExpiryIntervalHours, log)
	c.paymentSched = scheduler.NewPaymentScheduler(c.ucs.expirePayments, log)

	gin.SetMode(ginMode(cfg.Server.Mode))
	registerValidators()
	c.engine = gin.New()
	c.engine.Use(middleware.Recovery(log))
	c.engine.Use(middleware.Logger(log))
	c.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())

	c.registerRoutes()

	return c, nil
}

func buildGateway(cfg *config.Config, log logger.Interface) paymentgateway.Gateway {
	if cfg.Payment.Mode == "paypal" {
		return infraPayment.NewPayPalGateway(cfg.Payment, log)
	}
	return infraPayment.NewSandboxGateway(log)
}

func ginMode(mode string) string {
	switch mode {
	case "release", "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

// Start launches the background services and the HTTP listener. It returns
// once the listener is up; serve errors arrive on the returned channel.
func (c *Container) Start(ctx context.Context) <-chan error {
	c.dispatcher.Start()
	c.usageResetSched.Start(ctx)
	c.subscriptionSched.Start(ctx)
	c.paymentSched.Start(ctx)

	c.server = &http.Server{
		Addr:              c.cfg.Server.GetAddr(),
		Handler:           c.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.log.Infow("http server listening", "addr", c.server.Addr)
		if err := c.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	return errCh
}

// Shutdown stops the listener first so no new work arrives, then drains the
// background services.
func (c *Container) Shutdown(ctx context.Context) error {
	var firstErr error

	if c.server != nil {
		if err := c.server.Shutdown(ctx); err != nil {
			firstErr = fmt.Errorf("http server shutdown: %w", err)
		}
	}

	c.paymentSched.Stop()
	c.subscriptionSched.Stop()
	c.usageResetSched.Stop()
	c.dispatcher.Stop()

	if err := c.redis.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("redis close: %w", err)
	}

	return firstErr
}

// Engine exposes the router for tests.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}
