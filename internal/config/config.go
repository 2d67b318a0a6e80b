package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// ErrMissingEnv is returned by Load when one or more required
// environment variables are absent.
var ErrMissingEnv = errors.New("missing required environment variables")

// requiredKeys are the connection settings read at startup, in the
// order they are reported when absent.
var requiredKeys = []string{"DB_USER", "DB_PASS", "DB_HOST", "DB_PORT", "DB_NAME"}

type Config struct {
	DBUser string
	DBPass string
	DBHost string
	DBPort string
	DBName string
}

// Load reads the database connection settings from the process
// environment. A .env file in the working directory is applied first
// when present. There are no defaults: every missing key is collected
// and reported in a single error.
func Load() (*Config, error) {
	// A missing .env file is not an error; the environment wins either way.
	_ = godotenv.Load()

	values := make(map[string]string, len(requiredKeys))
	var missing []string
	for _, key := range requiredKeys {
		value := strings.TrimSpace(os.Getenv(key))
		if value == "" {
			missing = append(missing, key)
			continue
		}
		values[key] = value
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingEnv, strings.Join(missing, ", "))
	}

	return &Config{
		DBUser: values["DB_USER"],
		DBPass: values["DB_PASS"],
		DBHost: values["DB_HOST"],
		DBPort: values["DB_PORT"],
		DBName: values["DB_NAME"],
	}, nil
}

// DSN assembles the PostgreSQL connection URL from the loaded settings.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		c.DBUser,
		c.DBPass,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
