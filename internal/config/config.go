package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config aggregates everything the service reads from the environment.
// cmd/api loads .env via godotenv/autoload before this is parsed.

type Config struct {
	HTTP        HTTPServer
	Checkout    Checkout
	MercadoPago MercadoPago `envPrefix:"MERCADOPAGO_"`
}

type HTTPServer struct {
	Port int `env:"HTTP_PORT" envDefault:"8080"`
}

// Checkout controls the PIX confirmation polling loop. The ceiling is
// expressed in attempts, so the default gives up after 100 x 3s = 5 minutes.

type Checkout struct {
	PollInterval    time.Duration `env:"CHECKOUT_POLL_INTERVAL" envDefault:"3s"`
	PollMaxAttempts int           `env:"CHECKOUT_POLL_MAX_ATTEMPTS" envDefault:"100"`
}

// MercadoPago carries an optional bootstrap access token. When set and the
// credential store is empty, it is written there at startup.

type MercadoPago struct {
	AccessToken string `env:"ACCESS_TOKEN"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
