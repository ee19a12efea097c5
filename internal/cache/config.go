package cache

import (
	"time"
)

type Config struct {
	RedisURL string        `envconfig:"REDIS_URL"` // in-process store when empty
	TTL      time.Duration `envconfig:"CACHE_TTL" default:"60s"`
	Prefix   string        `envconfig:"CACHE_PREFIX" default:"transfers:"`
}
