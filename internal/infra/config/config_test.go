package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Data.Dir)
	assert.Equal(t, "case-studies", cfg.Chart.Dataset)
	assert.Empty(t, cfg.Chart.Output)
	assert.Equal(t, 1200, cfg.Chart.Width)
	assert.Equal(t, 800, cfg.Chart.Height)
	assert.Equal(t, "urban", cfg.Route.Scenario)
	assert.InDelta(t, 0.15, cfg.Route.FuelCost, 1e-9)
	assert.Equal(t, 3, cfg.Telegram.MaxRetries)
	assert.Equal(t, "logs", cfg.Log.Dir)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "-100500")
	t.Setenv("SCI_CHART_WIDTH", "1600")
	t.Setenv("CHART_FONT_PATHS", "fonts/a.ttf, fonts/b.ttf")

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.Telegram.BotToken)
	assert.Equal(t, "-100500", cfg.Telegram.ChatID)
	assert.Equal(t, 1600, cfg.Chart.Width)
	assert.Equal(t, []string{"fonts/a.ttf", "fonts/b.ttf"}, cfg.Chart.FontPaths)
	assert.NoError(t, cfg.ValidateTelegram())
}

func TestLoadConfigFlagsWin(t *testing.T) {
	t.Setenv("SCI_DATA_DIR", "from-env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("out", ".", "")
	flags.String("dataset", "case-studies", "")
	flags.Bool("open", false, "")
	require.NoError(t, flags.Parse([]string{"--out", "from-flag", "--dataset", "cost-factors", "--open"}))

	cfg, err := LoadConfig(flags)
	require.NoError(t, err)

	assert.Equal(t, "from-flag", cfg.Data.Dir)
	assert.Equal(t, "cost-factors", cfg.Chart.Dataset)
	assert.True(t, cfg.Chart.Open)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := "chart:\n  output: charts/out.png\n  font_paths:\n    - etc/fonts/Inter-Regular.ttf\nroute:\n  scenario: rural\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("config", "", "")
	require.NoError(t, flags.Parse([]string{"--config", path}))

	cfg, err := LoadConfig(flags)
	require.NoError(t, err)

	assert.Equal(t, "charts/out.png", cfg.Chart.Output)
	assert.Equal(t, []string{"etc/fonts/Inter-Regular.ttf"}, cfg.Chart.FontPaths)
	assert.Equal(t, "rural", cfg.Route.Scenario)
}

func TestLoadConfigMissingFileFails(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("config", "", "")
	require.NoError(t, flags.Parse([]string{"--config", filepath.Join(t.TempDir(), "absent.yaml")}))

	_, err := LoadConfig(flags)
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	t.Setenv("SCI_CHART_HEIGHT", "0")
	_, err := LoadConfig(nil)
	assert.Error(t, err)
}

func TestValidateTelegram(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.ValidateTelegram())

	cfg.Telegram.BotToken = "token"
	assert.Error(t, cfg.ValidateTelegram())

	cfg.Telegram.ChatID = "42"
	assert.NoError(t, cfg.ValidateTelegram())
}
