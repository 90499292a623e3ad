package config

import (
	"fmt"
	"time"

	pkgmongo "exercisetracker/pkg/db/mongo"
	pkgredis "exercisetracker/pkg/db/redis"
)

// Driver - тип хранилища.
type Driver string

// Поддерживаемые хранилища.
const (
	DriverPostgres Driver = "postgres"
	DriverMongo    Driver = "mongo"
	DriverRedis    Driver = "redis"
)

// StorageConfig выбирает хранилище.
type StorageConfig struct {
	Driver Driver `yaml:"driver" env:"TRACKER_STORAGE_DRIVER" env-default:"postgres"`
}

// Validate проверяет, что драйвер известен.
func (c *StorageConfig) Validate() error {
	switch c.Driver {
	case DriverPostgres, DriverMongo, DriverRedis:
		return nil
	default:
		return fmt.Errorf("%s: %q", ErrUnknownStorageDriver, c.Driver)
	}
}

// PostgresConfig содержит настройки подключения к базе данных.
type PostgresConfig struct {
	Host          string `yaml:"host" env:"TRACKER_POSTGRES_HOST" env-default:"localhost"`
	Port          int    `yaml:"port" env:"TRACKER_POSTGRES_PORT" env-default:"5432"`
	User          string `yaml:"user" env:"TRACKER_POSTGRES_USER" env-default:"postgres"`
	Password      string `yaml:"password" env:"TRACKER_POSTGRES_PASSWORD" env-default:"postgres"`
	Database      string `yaml:"database" env:"TRACKER_POSTGRES_DB" env-default:"tracker"`
	MinConn       int    `yaml:"min_conn" env:"TRACKER_POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn       int    `yaml:"max_conn" env:"TRACKER_POSTGRES_MAX_CONN" env-default:"10"`
	MigrationsDir string `yaml:"migrations_dir" env:"TRACKER_POSTGRES_MIGRATIONS_DIR" env-default:"migrations/tracker"`
}

// GetDSN возвращает строку подключения к Postgres.
func (p *PostgresConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.Database)
}

// GetConnectionURL возвращает URL-строку подключения для миграций.
func (p *PostgresConfig) GetConnectionURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.Database)
}

// MongoConfig содержит настройки подключения к MongoDB.
type MongoConfig struct {
	URI            string        `yaml:"uri" env:"TRACKER_MONGO_URI" env-default:"mongodb://localhost:27017"`
	Database       string        `yaml:"database" env:"TRACKER_MONGO_DB" env-default:"tracker"`
	MinPoolSize    uint64        `yaml:"min_pool_size" env:"TRACKER_MONGO_MIN_POOL_SIZE" env-default:"0"`
	MaxPoolSize    uint64        `yaml:"max_pool_size" env:"TRACKER_MONGO_MAX_POOL_SIZE" env-default:"20"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"TRACKER_MONGO_CONNECT_TIMEOUT" env-default:"10s"`
}

// ToPkg преобразует настройки в конфигурацию пакета pkg/db/mongo.
func (m *MongoConfig) ToPkg() pkgmongo.Config {
	return pkgmongo.Config{
		URI:            m.URI,
		Database:       m.Database,
		MinPoolSize:    m.MinPoolSize,
		MaxPoolSize:    m.MaxPoolSize,
		ConnectTimeout: m.ConnectTimeout,
	}
}

// RedisConfig представляет конфигурацию для Redis.
type RedisConfig struct {
	Host     string        `yaml:"host" env:"TRACKER_REDIS_HOST" env-default:"localhost"`
	Port     int           `yaml:"port" env:"TRACKER_REDIS_PORT" env-default:"6379"`
	Password string        `yaml:"password" env:"TRACKER_REDIS_PASSWORD" env-default:""`
	DB       int           `yaml:"db" env:"TRACKER_REDIS_DB" env-default:"0"`
	PoolSize int           `yaml:"pool_size" env:"TRACKER_REDIS_POOL_SIZE" env-default:"10"`
	Timeout  time.Duration `yaml:"timeout" env:"TRACKER_REDIS_TIMEOUT" env-default:"5s"`
}

// ToPkg преобразует настройки в конфигурацию пакета pkg/db/redis.
func (r *RedisConfig) ToPkg() *pkgredis.Config {
	return &pkgredis.Config{
		Host:     r.Host,
		Port:     r.Port,
		Password: r.Password,
		DB:       r.DB,
		PoolSize: r.PoolSize,
		Timeout:  r.Timeout,
	}
}
