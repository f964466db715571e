package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New(), nil)
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.True(t, cfg.Seed.Default)
	assert.Empty(t, cfg.Seed.File)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.Cors.AllowedOrigins)
	assert.Equal(t, "0 * * * *", cfg.DashboardReport.CronSchedule)
	assert.False(t, cfg.DashboardReport.Enabled)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://painel.exemplo.com")
	t.Setenv("DASHBOARD_REPORT_ENABLED", "true")
	t.Setenv("SEED_FILE", "/tmp/vendas.json")

	cfg, err := Load(viper.New(), nil)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"https://painel.exemplo.com"}, cfg.Cors.AllowedOrigins)
	assert.True(t, cfg.DashboardReport.Enabled)
	assert.Equal(t, "/tmp/vendas.json", cfg.Seed.File)
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("HOST", "0.0.0.0")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	Flags(fs)
	require.NoError(t, fs.Parse([]string{"--port", "7070"}))

	cfg, err := Load(viper.New(), fs)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host, "flag não informada não esconde o ambiente")
}
