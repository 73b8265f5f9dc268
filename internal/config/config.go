package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-MinisterSchedule/pkg/sqlbuilder"
	"github.com/m04kA/SMC-MinisterSchedule/pkg/types"
)

// ErrInvalidConfig возвращается, когда конфигурация не прошла валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация приложения
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
	Telegram TelegramConfig `toml:"telegram"`
	Cache    CacheConfig    `toml:"cache"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки БД
// Для postgres используются host/port/user/password/dbname/sslmode, для sqlite - path
type DatabaseConfig struct {
	Driver          string `toml:"driver"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	Path            string `toml:"path"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для выбранного драйвера
func (d DatabaseConfig) DSN() string {
	if d.Driver == sqlbuilder.DriverSQLite {
		return d.Path
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig настройки расписания
type ScheduleConfig struct {
	DefaultPositions int            `toml:"default_positions"`
	DefaultRangeDays int            `toml:"default_range_days"`
	MaxRangeDays     int            `toml:"max_range_days"`
	WeekStart        string         `toml:"week_start"`
	Timezone         string         `toml:"timezone"`
	Fallback         FallbackConfig `toml:"fallback"`
}

// Location часовой пояс прихода, в котором считается "сегодня"
func (s ScheduleConfig) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(s.Timezone)
}

// WeekStartDay первый день недели для навигации по неделям
func (s ScheduleConfig) WeekStartDay() time.Weekday {
	if s.WeekStart == "monday" {
		return time.Monday
	}
	return time.Sunday
}

// FallbackConfig резервный список служб для дней без настроенного расписания
// По умолчанию выключен
type FallbackConfig struct {
	Enabled  bool              `toml:"enabled"`
	Weekdays []string          `toml:"weekdays"`
	Services []FallbackService `toml:"services"`
}

// FallbackService служба из резервного списка
type FallbackService struct {
	Time      string `toml:"time"`
	Name      string `toml:"name"`
	Positions int    `toml:"positions"`
}

// TelegramConfig настройки оповещений в Telegram
type TelegramConfig struct {
	Enabled bool   `toml:"enabled"`
	Token   string `toml:"token"`
	ChatID  int64  `toml:"chat_id"`
}

// CacheConfig настройки кэшей
type CacheConfig struct {
	MinistersSize int `toml:"ministers_size"`
}

// Load загружает конфигурацию из TOML файла
// Перед чтением файла подгружается .env (если есть), затем переменные окружения
// переопределяют значения из файла
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaults значения по умолчанию
func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Driver:          sqlbuilder.DriverPostgres,
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			Path:            "schedule.db",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "smc-minister-schedule",
		},
		Schedule: ScheduleConfig{
			DefaultPositions: 2,
			DefaultRangeDays: 21,
			MaxRangeDays:     92,
			WeekStart:        "sunday",
		},
		Cache: CacheConfig{
			MinistersSize: 256,
		},
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("TELEGRAM_TOKEN"); v != "" {
		c.Telegram.Token = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT must be a number: %v", ErrInvalidConfig, err)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Database.Driver {
	case sqlbuilder.DriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres", ErrInvalidConfig)
		}
	case sqlbuilder.DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("%w: database.path is required for sqlite", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unsupported database.driver %q", ErrInvalidConfig, c.Database.Driver)
	}

	if c.Schedule.DefaultPositions < 1 {
		return fmt.Errorf("%w: schedule.default_positions must be >= 1", ErrInvalidConfig)
	}
	if c.Schedule.DefaultRangeDays < 1 {
		return fmt.Errorf("%w: schedule.default_range_days must be >= 1", ErrInvalidConfig)
	}
	if c.Schedule.MaxRangeDays < c.Schedule.DefaultRangeDays {
		return fmt.Errorf("%w: schedule.max_range_days must be >= default_range_days", ErrInvalidConfig)
	}
	if c.Schedule.WeekStart != "sunday" && c.Schedule.WeekStart != "monday" {
		return fmt.Errorf("%w: schedule.week_start must be sunday or monday", ErrInvalidConfig)
	}
	if _, err := c.Schedule.Location(); err != nil {
		return fmt.Errorf("%w: schedule.timezone: %v", ErrInvalidConfig, err)
	}

	if c.Schedule.Fallback.Enabled {
		if _, err := c.Schedule.Fallback.ParsedWeekdays(); err != nil {
			return err
		}
		if len(c.Schedule.Fallback.Services) == 0 {
			return fmt.Errorf("%w: schedule.fallback.services must not be empty when fallback is enabled", ErrInvalidConfig)
		}
		for _, s := range c.Schedule.Fallback.Services {
			if _, err := types.NewTimeStringFromString(s.Time); err != nil {
				return fmt.Errorf("%w: schedule.fallback.services time %q: %v", ErrInvalidConfig, s.Time, err)
			}
			if s.Name == "" {
				return fmt.Errorf("%w: schedule.fallback.services name is required", ErrInvalidConfig)
			}
		}
	}

	if c.Telegram.Enabled && (c.Telegram.Token == "" || c.Telegram.ChatID == 0) {
		return fmt.Errorf("%w: telegram.token and telegram.chat_id are required when telegram is enabled", ErrInvalidConfig)
	}

	if c.Cache.MinistersSize <= 0 {
		return fmt.Errorf("%w: cache.ministers_size must be positive", ErrInvalidConfig)
	}

	return nil
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParsedWeekdays переводит названия дней недели в time.Weekday
func (f FallbackConfig) ParsedWeekdays() ([]time.Weekday, error) {
	result := make([]time.Weekday, 0, len(f.Weekdays))
	for _, name := range f.Weekdays {
		wd, ok := weekdayNames[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown weekday %q in schedule.fallback.weekdays", ErrInvalidConfig, name)
		}
		result = append(result, wd)
	}
	return result, nil
}
