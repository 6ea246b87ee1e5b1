package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	redispkg "github.com/redis/go-redis/v9"

	"github.com/artbay/backend/internal/adapter/payments/stripe"
	"github.com/artbay/backend/internal/adapter/push/fcm"
	pushmem "github.com/artbay/backend/internal/adapter/push/memory"
	"github.com/artbay/backend/internal/adapter/repository/memory"
	pgrepo "github.com/artbay/backend/internal/adapter/repository/postgres"
	redisrepo "github.com/artbay/backend/internal/adapter/repository/redis"
	"github.com/artbay/backend/internal/config"
	"github.com/artbay/backend/internal/pkg/circuitbreaker"
	"github.com/artbay/backend/internal/port"
	"github.com/artbay/backend/internal/service"
)

// Container holds all process-scoped dependencies: built once at
// startup, injected into the dispatcher and the endpoint, released in
// Close. Nothing here is implicit global state.
type Container struct {
	Config *config.Config

	RepoUser port.UserRepository
	Sender   port.PushSender
	Provider port.PaymentProvider

	SvcNotifier port.Notifier
	SvcPayments port.Payments

	pgPool      *pgxpool.Pool
	redisClient *redispkg.Client
}

func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	switch cfg.UserStore {
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres user store")
		}
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		c.pgPool = pool
		c.RepoUser = pgrepo.NewUserRepository(pool)
	case "redis":
		client := redispkg.NewClient(&redispkg.Options{Addr: cfg.RedisAddr})
		c.redisClient = client
		c.RepoUser = redisrepo.NewUserRepository(client)
	case "memory":
		c.RepoUser = memory.NewUserRepositoryStub()
	default:
		return nil, fmt.Errorf("unknown user store %q", cfg.UserStore)
	}

	switch cfg.PushDriver {
	case "fcm":
		breaker := circuitbreaker.NewBreaker(5, 30*time.Second)
		sender, err := fcm.NewSender(ctx, cfg.FirebaseCredentials, breaker)
		if err != nil {
			c.Close()
			return nil, err
		}
		c.Sender = sender
	case "memory":
		c.Sender = pushmem.NewSenderStub()
	default:
		c.Close()
		return nil, fmt.Errorf("unknown push driver %q", cfg.PushDriver)
	}
	c.Provider = stripe.NewProvider(cfg.StripeSecretKey)

	c.SvcNotifier = service.NewNotifierImpl(c.RepoUser, c.Sender)
	c.SvcPayments = service.NewPaymentsImpl(c.Provider)

	return c, nil
}

// Close releases the connection pools.
func (c *Container) Close() {
	if c.pgPool != nil {
		c.pgPool.Close()
	}
	if c.redisClient != nil {
		_ = c.redisClient.Close()
	}
}
