package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Режимы проверки учетных данных администратора
const (
	AuthModeStatic = "static" // логин и bcrypt-хеш пароля из конфигурации
	AuthModeRemote = "remote" // внешний сервис авторизации
)

var (
	// ErrInvalidConfig возвращается, когда конфигурация не прошла валидацию
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Backend    BackendConfig    `toml:"backend"`
	Auth       AuthConfig       `toml:"auth"`
	Session    SessionConfig    `toml:"session"`
	Database   DatabaseConfig   `toml:"database"`
	Pagination PaginationConfig `toml:"pagination"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`
	WriteTimeout    int      `toml:"write_timeout"`
	IdleTimeout     int      `toml:"idle_timeout"`
	ShutdownTimeout int      `toml:"shutdown_timeout"`
	AllowedOrigins  []string `toml:"allowed_origins"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BackendConfig адрес REST бэкенда салона
// Timeout в секундах, 0 - таймаут транспорта по умолчанию
type BackendConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// AuthConfig параметры проверки учетных данных
type AuthConfig struct {
	Mode           string `toml:"mode"`
	Username       string `toml:"username"`
	PasswordHash   string `toml:"password_hash"` // bcrypt
	ServiceURL     string `toml:"service_url"`
	ServiceTimeout int    `toml:"service_timeout"`
}

// SessionConfig параметры cookie сессии администратора
type SessionConfig struct {
	CookieName string `toml:"cookie_name"`
	Secret     string `toml:"secret"`
	MaxAge     int    `toml:"max_age"` // секунды
	Secure     bool   `toml:"secure"`
}

// DatabaseConfig подключение к PostgreSQL для журнала аудита
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// PaginationConfig переопределения размера страницы по семействам записей
type PaginationConfig struct {
	PageSizes map[string]int `toml:"page_sizes"`
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию и валидирует её
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(string(data))
}

// Parse разбирает конфигурацию из строки TOML
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "smc_admin_panel",
		},
		Auth: AuthConfig{
			Mode:           AuthModeStatic,
			ServiceTimeout: 5,
		},
		Session: SessionConfig{
			CookieName: "smc_admin_session",
			MaxAge:     8 * 60 * 60,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Backend.URL == "" {
		return fmt.Errorf("%w: backend.url is required", ErrInvalidConfig)
	}
	c.Backend.URL = strings.TrimRight(c.Backend.URL, "/")

	if c.Backend.Timeout < 0 {
		return fmt.Errorf("%w: backend.timeout must not be negative", ErrInvalidConfig)
	}

	switch c.Auth.Mode {
	case AuthModeStatic:
		if c.Auth.Username == "" || c.Auth.PasswordHash == "" {
			return fmt.Errorf("%w: auth.username and auth.password_hash are required in static mode", ErrInvalidConfig)
		}
	case AuthModeRemote:
		if c.Auth.ServiceURL == "" {
			return fmt.Errorf("%w: auth.service_url is required in remote mode", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown auth.mode %q", ErrInvalidConfig, c.Auth.Mode)
	}

	if len(c.Session.Secret) < 32 {
		return fmt.Errorf("%w: session.secret must be at least 32 bytes", ErrInvalidConfig)
	}

	for family, size := range c.Pagination.PageSizes {
		if size <= 0 {
			return fmt.Errorf("%w: pagination.page_sizes.%s must be positive", ErrInvalidConfig, family)
		}
	}

	if c.Database.Enabled && c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required when database is enabled", ErrInvalidConfig)
	}

	return nil
}
