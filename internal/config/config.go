package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Tracing  TracingConfig  `toml:"tracing"`
	Cache    CacheConfig    `toml:"cache"`
	Calendar CalendarConfig `toml:"calendar"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// TracingConfig настройки OpenTelemetry; пустой endpoint отключает трассировку
type TracingConfig struct {
	Endpoint string `toml:"endpoint"`
	Insecure bool   `toml:"insecure"`
}

// CacheConfig настройки Redis кэша настроек аккаунта
type CacheConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"` // секунды
}

// CalendarConfig параметры сетки календаря
type CalendarConfig struct {
	WindowStartHour int `toml:"window_start_hour"`
	WindowEndHour   int `toml:"window_end_hour"`
	SlotMinutes     int `toml:"slot_minutes"`
}

// BookingConfig значения по умолчанию для аккаунтов без сохраненных настроек
type BookingConfig struct {
	DefaultTaxRatePercent    float64 `toml:"default_tax_rate_percent"`
	DefaultHoldDurationHours int     `toml:"default_hold_duration_hours"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "venue_booking",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "venue_booking",
		},
		Cache: CacheConfig{
			Addr: "localhost:6379",
			TTL:  300,
		},
		Calendar: CalendarConfig{
			WindowStartHour: 6,
			WindowEndHour:   24,
			SlotMinutes:     15,
		},
		Booking: BookingConfig{
			DefaultTaxRatePercent:    10,
			DefaultHoldDurationHours: 48,
		},
	}
}

// Load загружает конфигурацию из TOML файла поверх значений по умолчанию.
// Секреты можно переопределить переменными окружения DB_PASSWORD и REDIS_PASSWORD.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Cache.Password = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}
	if c.Cache.Enabled && c.Cache.Addr == "" {
		return fmt.Errorf("%w: cache.addr is required when cache is enabled", ErrInvalidConfig)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("%w: cache.ttl must not be negative", ErrInvalidConfig)
	}

	cal := c.Calendar
	if cal.SlotMinutes <= 0 || 60%cal.SlotMinutes != 0 {
		return fmt.Errorf("%w: calendar.slot_minutes=%d must divide 60", ErrInvalidConfig, cal.SlotMinutes)
	}
	if cal.WindowStartHour < 0 || cal.WindowEndHour > 24 || cal.WindowStartHour >= cal.WindowEndHour {
		return fmt.Errorf("%w: calendar window %d-%d", ErrInvalidConfig, cal.WindowStartHour, cal.WindowEndHour)
	}

	b := c.Booking
	if b.DefaultTaxRatePercent < 0 || b.DefaultTaxRatePercent > 100 {
		return fmt.Errorf("%w: booking.default_tax_rate_percent=%v", ErrInvalidConfig, b.DefaultTaxRatePercent)
	}
	if b.DefaultHoldDurationHours <= 0 {
		return fmt.Errorf("%w: booking.default_hold_duration_hours must be positive", ErrInvalidConfig)
	}

	return nil
}
