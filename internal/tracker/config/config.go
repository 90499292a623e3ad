// Package config содержит конфигурацию сервиса журнала упражнений.
package config

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	pkgconfig "exercisetracker/pkg/config"
	"exercisetracker/pkg/logger"
)

// Константы ошибок и сообщений для конфигурации.
const (
	ServiceName = "tracker"

	EnvConfigFile     = "TRACKER_CONFIG_FILE"
	DefaultConfigFile = "deploy/.env"

	LogConfigLoaded         = "tracker configuration loaded"
	ErrFailedLoadConfig     = "failed to load tracker configuration"
	ErrUnknownStorageDriver = "unknown storage driver"
)

// Config представляет полную конфигурацию сервиса.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Storage  StorageConfig  `yaml:"storage"`
	Postgres PostgresConfig `yaml:"postgres"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Redis    RedisConfig    `yaml:"redis"`
	Static   StaticConfig   `yaml:"static"`
	Logging  LoggingConfig  `yaml:"logging"`
	Shutdown ShutdownConfig `yaml:"shutdown"`
}

// Load загружает конфигурацию из env-файла TRACKER_CONFIG_FILE и переменных окружения.
func Load(ctx context.Context) (*Config, error) {
	path, ok := os.LookupEnv(EnvConfigFile)
	if !ok {
		path = DefaultConfigFile
	}

	cfg, err := pkgconfig.Load[Config](ctx, ServiceName, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	if err := cfg.Storage.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	logger.Log(ctx).Info(ctx, LogConfigLoaded,
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("storage_driver", string(cfg.Storage.Driver)),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Duration("shutdown_timeout", cfg.Shutdown.GetTimeout()))

	return cfg, nil
}
