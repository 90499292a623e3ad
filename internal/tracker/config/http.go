package config

import (
	"fmt"
	"time"
)

// HTTPConfig представляет конфигурацию HTTP сервера.
type HTTPConfig struct {
	Host         string        `yaml:"host" env:"TRACKER_HTTP_HOST" env-default:"0.0.0.0"`
	Port         int           `yaml:"port" env:"TRACKER_HTTP_PORT" env-default:"3000"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"TRACKER_HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"TRACKER_HTTP_WRITE_TIMEOUT" env-default:"10s"`
}

// GetAddress возвращает адрес HTTP сервера.
func (c *HTTPConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StaticConfig задает каталоги стартовой страницы и статических файлов.
type StaticConfig struct {
	ViewsDir  string `yaml:"views_dir" env:"TRACKER_VIEWS_DIR" env-default:"views"`
	PublicDir string `yaml:"public_dir" env:"TRACKER_PUBLIC_DIR" env-default:"public"`
}
