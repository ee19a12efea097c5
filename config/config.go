package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"transfers/internal/cache"
	"transfers/internal/core"
	"transfers/internal/database"
	"transfers/internal/http"
)

type Config struct {
	LogLevel int    `envconfig:"LOG_LEVEL" default:"-4"`
	SeedFile string `envconfig:"SEED_FILE" default:"seeds/accounts.json"`
	Core     core.Config
	Database database.Config
	Cache    cache.Config
	HTTP     http.Config
}

// Load reads the environment, after filling it from the given dotenv files
// (".env" when none are given). Missing dotenv files are ignored and never
// override variables that are already set.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	var config Config
	err := envconfig.Process("", &config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process config: %w", err)
	}

	return config, nil
}
