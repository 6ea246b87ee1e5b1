package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	HTTPAddr     string `env:"HTTP_ADDR" env-default:":8080"`
	NATSURL      string `env:"NATS_URL" env-default:"nats://127.0.0.1:4222"`
	OfferSubject string `env:"OFFER_SUBJECT" env-default:"offers.created"`

	// UserStore selects the user-record gateway: postgres, redis or memory.
	UserStore   string `env:"USER_STORE" env-default:"postgres"`
	DatabaseURL string `env:"DATABASE_URL" env-default:""`
	RedisAddr   string `env:"REDIS_ADDR" env-default:"127.0.0.1:6379"`

	// PushDriver selects the push transport: fcm or memory (log-only).
	PushDriver string `env:"PUSH_DRIVER" env-default:"fcm"`

	// StripeSecretKey must come from the environment; it never lives in
	// source or version control.
	StripeSecretKey     string `env:"STRIPE_SECRET_KEY" env-required:"true"`
	FirebaseCredentials string `env:"FIREBASE_CREDENTIALS" env-default:""`

	OTLPEndpoint string `env:"OTLP_ENDPOINT" env-default:""`
}

func Load() (*Config, error) {
	var cfg Config

	// ReadEnv keeps configuration strictly environment-driven; local
	// development loads a .env file before this runs.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return &cfg, nil
}
