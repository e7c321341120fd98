package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	LayoutHeader  = "header"
	LayoutSidebar = "sidebar"

	defaultCronSpec     = "@hourly"
	defaultOuraBaseURL  = "https://api.ouraring.com"
	defaultOuraDaysBack = 30
)

type Config struct {
	Environment string
	Host        string
	Port        int
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// data refresh
	CronHourlyPull            bool   `toml:"cron_hourly_pull"`
	CronSpec                  string `toml:"cron_spec"`
	RefreshRateLimitPerMinute int    `toml:"refresh_rate_limit_per_min"`
	FitbodExportPath          string `toml:"fitbod_export_path"`
	FitbodDriveFile           string `toml:"fitbod_drive_file"`
	OuraBaseURL               string `toml:"oura_base_url"`
	OuraDaysBack              int    `toml:"oura_days_back"`
	// ui
	Layout  string  `toml:"layout"`
	Palette Palette `toml:"palette"`
}

// Palette holds the dashboard colors.
type Palette struct {
	White     string `toml:"white"`
	Teal      string `toml:"teal"`
	LightBlue string `toml:"light_blue"`
	DarkBlue  string `toml:"dark_blue"`
	Orange    string `toml:"orange"`
	Active    string `toml:"active"`
}

func DefaultPalette() Palette {
	return Palette{
		White:     "rgb(220, 220, 220)",
		Teal:      "rgb(100, 217, 236)",
		LightBlue: "rgb(56, 128, 139)",
		DarkBlue:  "rgb(39, 70, 84)",
		Orange:    "rgb(234, 150, 33)",
		Active:    "#64D9EC",
	}
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
		if cfg != nil {
			cfg.Environment = "development"
		}
	case "prod", "production":
		cfg = t.Production
		if cfg != nil {
			cfg.Environment = "production"
		}
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing", env)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Load reads the TOML file at path and returns the config section for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return t.Get(env)
}

func (c *Config) applyDefaults() {
	if c.CronSpec == "" {
		c.CronSpec = defaultCronSpec
	}
	if c.OuraBaseURL == "" {
		c.OuraBaseURL = defaultOuraBaseURL
	}
	if c.OuraDaysBack <= 0 {
		c.OuraDaysBack = defaultOuraDaysBack
	}
	if c.RefreshRateLimitPerMinute <= 0 {
		c.RefreshRateLimitPerMinute = 2
	}
	if c.Layout != LayoutSidebar {
		c.Layout = LayoutHeader
	}

	def := DefaultPalette()
	fill := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}
	fill(&c.Palette.White, def.White)
	fill(&c.Palette.Teal, def.Teal)
	fill(&c.Palette.LightBlue, def.LightBlue)
	fill(&c.Palette.DarkBlue, def.DarkBlue)
	fill(&c.Palette.Orange, def.Orange)
	fill(&c.Palette.Active, def.Active)
}
