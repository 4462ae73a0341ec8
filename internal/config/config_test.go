package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

const minimalConfig = `
[database]
host = "db"
dbname = "availability"

[timezones]
supported = ["UTC", "Asia/Kolkata"]

[timezones.aliases]
"Asia/Calcutta" = "Asia/Kolkata"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 60, cfg.Engine.DefaultHorizonDays)
	assert.Equal(t, 366, cfg.Engine.MaxHorizonDays)
	assert.Equal(t, types.TimeString("09:00"), cfg.Engine.DefaultOpenTime)
	assert.Equal(t, types.TimeString("18:00"), cfg.Engine.DefaultCloseTime)
	assert.Equal(t, 8, cfg.Engine.CalendarWorkers)
	assert.Equal(t, map[string]string{"Asia/Calcutta": "Asia/Kolkata"}, cfg.Timezones.Aliases)
	assert.False(t, cfg.Cache.Enabled)
}

func TestLoad_RepositoryConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "config.toml"))
	require.NoError(t, err)

	assert.Contains(t, cfg.Timezones.Supported, "America/New_York")
	assert.Equal(t, "Asia/Kolkata", cfg.Timezones.Aliases["Asia/Calcutta"])
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "no timezones",
			content: "[database]\nhost = \"db\"\ndbname = \"a\"\n",
		},
		{
			name:    "open after close",
			content: minimalConfig + "\n[engine]\ndefault_open_time = \"19:00\"\n",
		},
		{
			name:    "bad open time",
			content: minimalConfig + "\n[engine]\ndefault_open_time = \"9am\"\n",
		},
		{
			name:    "default horizon above max",
			content: minimalConfig + "\n[engine]\ndefault_horizon_days = 400\n",
		},
		{
			name:    "cache without ttl",
			content: minimalConfig + "\n[cache]\nenabled = true\nttl_seconds = 0\n",
		},
		{
			name:    "negative notice",
			content: minimalConfig + "\n[engine]\nmin_booking_notice_minutes = -5\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_BrokenToml(t *testing.T) {
	_, err := Load(writeConfig(t, "[server\nhttp_port = "))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	assert.Equal(t, DefaultPath, Path())

	t.Setenv(EnvConfigPath, "/etc/availability/config.toml")
	assert.Equal(t, "/etc/availability/config.toml", Path())
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: 5433, User: "u", Password: "p", DBName: "d", SSLMode: "require"}
	assert.Equal(t, "host=h port=5433 user=u password=p dbname=d sslmode=require", d.DSN())
}
