package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// EnvConfigPath переменная окружения, переопределяющая путь к файлу конфигурации
const EnvConfigPath = "CONFIG_PATH"

// DefaultPath путь к файлу конфигурации по умолчанию
const DefaultPath = "config.toml"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Cache     CacheConfig     `toml:"cache"`
	Engine    EngineConfig    `toml:"engine"`
	Timezones TimezonesConfig `toml:"timezones"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

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

type LogsConfig struct {
	File  string `toml:"file"` // пустой - stdout
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type CacheConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// TTL время жизни закэшированного расписания
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

type EngineConfig struct {
	DefaultHorizonDays      int              `toml:"default_horizon_days"`
	MaxHorizonDays          int              `toml:"max_horizon_days"`
	DefaultCalendarDays     int              `toml:"default_calendar_days"`
	MaxCalendarDays         int              `toml:"max_calendar_days"`
	DefaultOpenTime         types.TimeString `toml:"default_open_time"`
	DefaultCloseTime        types.TimeString `toml:"default_close_time"`
	MinBookingNoticeMinutes int              `toml:"min_booking_notice_minutes"`
	CalendarWorkers         int              `toml:"calendar_workers"`
}

// MinBookingNotice минимальный отступ от текущего момента до начала слота
func (e EngineConfig) MinBookingNotice() time.Duration {
	return time.Duration(e.MinBookingNoticeMinutes) * time.Minute
}

type TimezonesConfig struct {
	Supported []string          `toml:"supported"`
	Aliases   map[string]string `toml:"aliases"` // устаревшее имя -> каноническое IANA имя
}

// Path возвращает путь к конфигу с учетом CONFIG_PATH
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load читает TOML файл, заполняет значения по умолчанию и валидирует результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация, поверх которой декодируется файл
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "availability_service",
		},
		Cache: CacheConfig{
			Addr:       "localhost:6379",
			TTLSeconds: 60,
		},
		Engine: EngineConfig{
			DefaultHorizonDays:  domain.DefaultHorizonDays,
			MaxHorizonDays:      domain.MaxHorizonDays,
			DefaultCalendarDays: domain.DefaultCalendarDays,
			MaxCalendarDays:     domain.MaxCalendarDays,
			DefaultOpenTime:     "09:00",
			DefaultCloseTime:    "18:00",
			CalendarWorkers:     8,
		},
	}
}

// applyDefaults восстанавливает значения, явно обнуленные в файле
func (c *Config) applyDefaults() {
	def := Default()

	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = def.Server.ShutdownTimeout
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = def.Metrics.Path
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = def.Metrics.ServiceName
	}
	if c.Engine.DefaultOpenTime == "" {
		c.Engine.DefaultOpenTime = def.Engine.DefaultOpenTime
	}
	if c.Engine.DefaultCloseTime == "" {
		c.Engine.DefaultCloseTime = def.Engine.DefaultCloseTime
	}
	if c.Engine.CalendarWorkers <= 0 {
		c.Engine.CalendarWorkers = def.Engine.CalendarWorkers
	}
	if c.Timezones.Aliases == nil {
		c.Timezones.Aliases = map[string]string{}
	}
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}

	e := c.Engine
	if e.DefaultHorizonDays <= 0 || e.MaxHorizonDays <= 0 || e.DefaultHorizonDays > e.MaxHorizonDays {
		return fmt.Errorf("%w: engine horizon: default=%d max=%d", ErrInvalidConfig, e.DefaultHorizonDays, e.MaxHorizonDays)
	}
	if e.DefaultCalendarDays <= 0 || e.MaxCalendarDays <= 0 || e.DefaultCalendarDays > e.MaxCalendarDays {
		return fmt.Errorf("%w: engine calendar days: default=%d max=%d", ErrInvalidConfig, e.DefaultCalendarDays, e.MaxCalendarDays)
	}
	if err := e.DefaultOpenTime.Validate(); err != nil {
		return fmt.Errorf("%w: engine.default_open_time: %v", ErrInvalidConfig, err)
	}
	if err := e.DefaultCloseTime.Validate(); err != nil {
		return fmt.Errorf("%w: engine.default_close_time: %v", ErrInvalidConfig, err)
	}
	if !e.DefaultOpenTime.IsBefore(e.DefaultCloseTime) {
		return fmt.Errorf("%w: engine default hours: %s must be before %s", ErrInvalidConfig, e.DefaultOpenTime, e.DefaultCloseTime)
	}
	if e.MinBookingNoticeMinutes < 0 {
		return fmt.Errorf("%w: engine.min_booking_notice_minutes is negative", ErrInvalidConfig)
	}

	if len(c.Timezones.Supported) == 0 {
		return fmt.Errorf("%w: timezones.supported is empty", ErrInvalidConfig)
	}

	if c.Cache.Enabled {
		if c.Cache.Addr == "" {
			return fmt.Errorf("%w: cache.addr is required when cache is enabled", ErrInvalidConfig)
		}
		if c.Cache.TTLSeconds <= 0 {
			return fmt.Errorf("%w: cache.ttl_seconds must be positive", ErrInvalidConfig)
		}
	}

	return nil
}
