package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Defaults applied when the corresponding variable is absent from both the
// environment and the env file. Keep these in sync with the envDefault tags.
const (
	DefaultPort                  = "8080"
	DefaultAccessTokenExpiryMin  = 15
	DefaultRefreshTokenExpiryMin = 10080
	DefaultHashCost              = 10
	DefaultUploadDir             = "./uploads"
)

type Config struct {
	Env                string `env:"ENV" envDefault:"development"`
	Port               string `env:"PORT" envDefault:"8080"`
	DBURL              string `env:"DB_URL,required"`
	AccessTokenSecret  string `env:"ACCESS_TOKEN_SECRET,required"`
	RefreshTokenSecret string `env:"REFRESH_TOKEN_SECRET,required"`
	AccessExpiryMin    int    `env:"ACCESS_TOKEN_EXPIRY" envDefault:"15"`
	RefreshExpiryMin   int    `env:"REFRESH_TOKEN_EXPIRY" envDefault:"10080"`
	HashCost           int    `env:"HASH_ROUND" envDefault:"10"`
	UploadDir          string `env:"UPLOAD_DIR" envDefault:"./uploads"`
}

// Load builds the process configuration once at startup. An env file for the
// current environment (config/.env.dev or config/.env.prod) is loaded when
// present; variables already set in the environment take precedence.
func Load() (*Config, error) {
	environment := os.Getenv("ENV")
	if environment == "" {
		environment = "development"
	}

	// Missing env files are fine; containerized deployments set real env vars.
	_ = godotenv.Load(envFile(environment))

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func envFile(environment string) string {
	if environment == "production" {
		return "config/.env.prod"
	}

	return "config/.env.dev"
}
