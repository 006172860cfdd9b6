package config

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/bigredeye/transcripts/pkg/conf"
)

const (
	LogModeDev  = "dev"
	LogModeProd = "prod"

	IDsSequential = "sequential"
	IDsUUID       = "uuid"
)

type Config struct {
	Log struct {
		Mode string
		File string
	}

	Store struct {
		IDs string
	}

	Scoring struct {
		PassingGrade int
		CacheSize    int64
		CacheTTL     time.Duration
	}
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"log.mode":             LogModeDev,
		"store.ids":            IDsSequential,
		"scoring.passinggrade": 60,
		"scoring.cachesize":    1024,
		"scoring.cachettl":     "10m",
	}
}

func Default() *Config {
	config := &Config{}
	config.Log.Mode = LogModeDev
	config.Store.IDs = IDsSequential
	config.Scoring.PassingGrade = 60
	config.Scoring.CacheSize = 1024
	config.Scoring.CacheTTL = 10 * time.Minute
	return config
}

func ParseConfig(path string) (*Config, error) {
	config := &Config{}
	err := conf.ParseConfig(config,
		conf.EnvPrefix("TRS"),
		conf.Defaults(defaults()),
		conf.ConfigPath(path),
	)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to parse config")
	}
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "Invalid config")
	}
	return config, nil
}

func (c *Config) Validate() error {
	switch c.Log.Mode {
	case LogModeDev, LogModeProd:
	default:
		return fmt.Errorf("unknown log mode %q", c.Log.Mode)
	}

	switch c.Store.IDs {
	case IDsSequential, IDsUUID:
	default:
		return fmt.Errorf("unknown id source %q", c.Store.IDs)
	}

	if c.Scoring.CacheSize <= 0 {
		return fmt.Errorf("scoring cache size must be positive, got %d", c.Scoring.CacheSize)
	}
	return nil
}
