package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	Data     DataConfig     `mapstructure:"data"`
	Chart    ChartConfig    `mapstructure:"chart"`
	Route    RouteConfig    `mapstructure:"route"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Log      LogConfig      `mapstructure:"log"`
}

// DataConfig controls where generated datasets land.
type DataConfig struct {
	Dir  string `mapstructure:"dir"`
	XLSX string `mapstructure:"xlsx"` // optional workbook path, empty disables export
}

// ChartConfig controls the chart renderer.
type ChartConfig struct {
	Dataset   string   `mapstructure:"dataset"` // case-studies, cost-factors or algorithms
	Input     string   `mapstructure:"input"`   // CSV path, defaults to the preset file inside data.dir
	Output    string   `mapstructure:"output"`  // PNG path, defaults to the preset file name
	Width     int      `mapstructure:"width"`
	Height    int      `mapstructure:"height"`
	FontPaths []string `mapstructure:"font_paths"`
	Open      bool     `mapstructure:"open"`
}

// RouteConfig controls the scenario route planner.
type RouteConfig struct {
	Scenario  string  `mapstructure:"scenario"`
	Algorithm string  `mapstructure:"algorithm"`
	FuelCost  float64 `mapstructure:"fuel_cost"` // per distance unit
	MapOutput string  `mapstructure:"map_output"`
	Export    string  `mapstructure:"export"` // route CSV path, empty disables export
	Save      string  `mapstructure:"save"`   // scenario snapshot JSON path
}

// TelegramConfig controls chart delivery.
type TelegramConfig struct {
	BotToken       string  `mapstructure:"bot_token"`
	ChatID         string  `mapstructure:"chat_id"`
	APIEndpoint    string  `mapstructure:"api_endpoint"`
	RequestTimeout int     `mapstructure:"request_timeout"` // seconds
	MaxRetries     int     `mapstructure:"max_retries"`
	RatePerSecond  float64 `mapstructure:"rate_per_second"`
}

type LogConfig struct {
	Dir string `mapstructure:"dir"`
}

// flagKeys maps config keys to the CLI flag names that may override them.
// Flags are optional: only the ones registered on the running command bind.
var flagKeys = map[string]string{
	"data.dir":                 "out",
	"data.xlsx":                "xlsx",
	"chart.dataset":            "dataset",
	"chart.input":              "input",
	"chart.output":             "output",
	"chart.width":              "width",
	"chart.height":             "height",
	"chart.open":               "open",
	"route.scenario":           "scenario",
	"route.algorithm":          "algorithm",
	"route.fuel_cost":          "fuel-cost",
	"route.map_output":         "map",
	"route.export":             "export",
	"route.save":               "save",
	"telegram.chat_id":         "chat-id",
	"telegram.max_retries":     "max-retries",
	"telegram.request_timeout": "timeout",
	"log.dir":                  "log-dir",
}

// LoadConfig builds the configuration. Later sources win:
// 1. defaults
// 2. config.yaml (or the file given by --config)
// 3. .env and the process environment
// 4. command line flags
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	godotenv.Load(".env")

	v := viper.New()
	setDefaults(v)

	configFile := ""
	if flags != nil {
		if f := flags.Lookup("config"); f != nil {
			configFile = f.Value.String()
		}
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config.yaml: %w", err)
			}
		}
	}

	v.SetEnvPrefix("SCI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setupEnvAliases(v)

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// From .env the list arrives as one comma separated string.
	if raw := v.Get("chart.font_paths"); raw != nil {
		switch paths := raw.(type) {
		case string:
			cfg.Chart.FontPaths = splitList(paths)
		case []string:
			cfg.Chart.FontPaths = paths
		case []interface{}:
			result := make([]string, 0, len(paths))
			for _, item := range paths {
				if s, ok := item.(string); ok {
					result = append(result, strings.TrimSpace(s))
				}
			}
			cfg.Chart.FontPaths = result
		}
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func setupEnvAliases(v *viper.Viper) {
	// Short names used in .env files; SCI_* names work through AutomaticEnv.
	v.BindEnv("telegram.bot_token", "SCI_TELEGRAM_BOT_TOKEN", "TELEGRAM_BOT_TOKEN")
	v.BindEnv("telegram.chat_id", "SCI_TELEGRAM_CHAT_ID", "TELEGRAM_CHAT_ID")
	v.BindEnv("chart.font_paths", "SCI_CHART_FONT_PATHS", "CHART_FONT_PATHS")
	v.BindEnv("data.dir", "SCI_DATA_DIR", "DATA_DIR")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data.dir", ".")
	v.SetDefault("data.xlsx", "")

	v.SetDefault("chart.dataset", "case-studies")
	v.SetDefault("chart.input", "")
	v.SetDefault("chart.output", "") // empty: the preset file name
	v.SetDefault("chart.width", 1200)
	v.SetDefault("chart.height", 800)
	v.SetDefault("chart.font_paths", []string{})
	v.SetDefault("chart.open", false)

	v.SetDefault("route.scenario", "urban")
	v.SetDefault("route.algorithm", "dijkstra")
	v.SetDefault("route.fuel_cost", 0.15)
	v.SetDefault("route.map_output", "")
	v.SetDefault("route.export", "")
	v.SetDefault("route.save", "")

	v.SetDefault("telegram.bot_token", "")
	v.SetDefault("telegram.chat_id", "")
	v.SetDefault("telegram.api_endpoint", "")
	v.SetDefault("telegram.request_timeout", 30)
	v.SetDefault("telegram.max_retries", 3)
	v.SetDefault("telegram.rate_per_second", 1.0)

	v.SetDefault("log.dir", "logs")
}

func validateConfig(cfg *Config) error {
	if cfg.Chart.Width <= 0 || cfg.Chart.Height <= 0 {
		return fmt.Errorf("chart size must be positive, got %dx%d", cfg.Chart.Width, cfg.Chart.Height)
	}
	if cfg.Route.FuelCost < 0 {
		return fmt.Errorf("route.fuel_cost must not be negative, got %v", cfg.Route.FuelCost)
	}
	if cfg.Telegram.MaxRetries < 0 {
		return fmt.Errorf("telegram.max_retries must not be negative, got %d", cfg.Telegram.MaxRetries)
	}
	if cfg.Telegram.RatePerSecond <= 0 {
		return fmt.Errorf("telegram.rate_per_second must be positive, got %v", cfg.Telegram.RatePerSecond)
	}
	return nil
}

// ValidateTelegram checks the settings publish needs.
func (c *Config) ValidateTelegram() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required (env: TELEGRAM_BOT_TOKEN)")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required (env: TELEGRAM_CHAT_ID or --chat-id)")
	}
	return nil
}
