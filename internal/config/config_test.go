package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_SQLiteWithDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
driver = "sqlite"
path = "test.db"

[logs]
level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "test.db", cfg.Database.DSN())
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 2, cfg.Schedule.DefaultPositions)
	assert.Equal(t, 21, cfg.Schedule.DefaultRangeDays)
	assert.Equal(t, time.Sunday, cfg.Schedule.WeekStartDay())
	assert.False(t, cfg.Schedule.Fallback.Enabled)
	assert.Equal(t, "debug", cfg.Logs.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("TELEGRAM_TOKEN", "123:abc")

	path := writeConfig(t, `
[database]
driver = "postgres"
host = "db"
port = 5432
user = "schedule"
password = "from-file"
dbname = "schedule"

[telegram]
enabled = true
chat_id = -100500
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Contains(t, cfg.Database.DSN(), "password=secret")
	assert.Equal(t, "123:abc", cfg.Telegram.Token)
}

func TestLoad_FallbackServices(t *testing.T) {
	path := writeConfig(t, `
[database]
driver = "sqlite"
path = "test.db"

[schedule]
week_start = "monday"

[schedule.fallback]
enabled = true
weekdays = ["sunday"]

[[schedule.fallback.services]]
time = "9:00"
name = "Morning Mass"
positions = 2

[[schedule.fallback.services]]
time = "11:30"
name = "Family Mass"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	weekdays, err := cfg.Schedule.Fallback.ParsedWeekdays()
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Sunday}, weekdays)
	assert.Len(t, cfg.Schedule.Fallback.Services, 2)
	assert.Equal(t, time.Monday, cfg.Schedule.WeekStartDay())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }},
		{"postgres without host", func(c *Config) { c.Database.Host = "" }},
		{"zero positions", func(c *Config) { c.Schedule.DefaultPositions = 0 }},
		{"max range below default", func(c *Config) { c.Schedule.MaxRangeDays = 7 }},
		{"bad week start", func(c *Config) { c.Schedule.WeekStart = "friday" }},
		{"bad timezone", func(c *Config) { c.Schedule.Timezone = "Mars/Olympus" }},
		{"fallback without services", func(c *Config) {
			c.Schedule.Fallback.Enabled = true
			c.Schedule.Fallback.Weekdays = []string{"sunday"}
		}},
		{"fallback bad weekday", func(c *Config) {
			c.Schedule.Fallback.Enabled = true
			c.Schedule.Fallback.Weekdays = []string{"someday"}
			c.Schedule.Fallback.Services = []FallbackService{{Time: "09:00", Name: "Mass"}}
		}},
		{"telegram without chat", func(c *Config) {
			c.Telegram.Enabled = true
			c.Telegram.Token = "t"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			cfg.Database.DBName = "schedule"
			require.NoError(t, cfg.Validate())

			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
