package config

import (
	"fmt"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"

	"github.com/fernandozarate/portfolio/internal/carousel"
	"github.com/fernandozarate/portfolio/internal/theme"
)

// Config holds all application configuration
type Config struct {
	Addr     string
	GinMode  string
	LogLevel string

	CVPath   string
	CVSource string // "embedded" or a base URL

	// ThemeDefault is empty when the visitor's system preference decides.
	ThemeDefault theme.Mode

	CarouselAutoplay time.Duration
	CarouselBoundary carousel.Boundary

	DBPath          string
	CleanupSchedule string
	RetentionDays   int

	AdminUsername string
	AdminPassword string

	ContactEmail string
}

// SystemTheme is the ThemeDefault value that defers to the visitor.
const SystemTheme = "system"

// New returns a viper instance with defaults and env bindings applied.
// Every key can be set as PORTFOLIO_<KEY>; PORT is honoured for the address.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("portfolio")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("log_level", "info")
	v.SetDefault("cv_path", "/cv_fernandozarate_2026.pdf")
	v.SetDefault("cv_source", "embedded")
	v.SetDefault("theme_default", SystemTheme)
	v.SetDefault("carousel_autoplay", "0s")
	v.SetDefault("carousel_boundary", "wrap")
	v.SetDefault("db_path", "portfolio.db")
	v.SetDefault("cleanup_schedule", "@daily")
	v.SetDefault("retention_days", 365)
	v.SetDefault("admin_username", "admin")
	v.SetDefault("admin_password", "")
	v.SetDefault("contact_email", "")

	_ = v.BindEnv("port", "PORT")
	return v
}

// Load reads the configuration from v.
func Load(v *viper.Viper) (*Config, error) {
	addr := v.GetString("addr")
	if port := v.GetString("port"); port != "" {
		addr = ":" + port
	}

	cfg := &Config{
		Addr:             addr,
		GinMode:          v.GetString("gin_mode"),
		LogLevel:         v.GetString("log_level"),
		CVPath:           v.GetString("cv_path"),
		CVSource:         v.GetString("cv_source"),
		CarouselAutoplay: v.GetDuration("carousel_autoplay"),
		DBPath:           v.GetString("db_path"),
		CleanupSchedule:  v.GetString("cleanup_schedule"),
		RetentionDays:    v.GetInt("retention_days"),
		AdminUsername:    v.GetString("admin_username"),
		AdminPassword:    v.GetString("admin_password"),
		ContactEmail:     v.GetString("contact_email"),
	}

	if td := strings.ToLower(v.GetString("theme_default")); td != SystemTheme && td != "" {
		m, err := theme.ParseMode(td)
		if err != nil {
			return nil, fmt.Errorf("theme_default: %w", err)
		}
		cfg.ThemeDefault = m
	}

	switch b := strings.ToLower(v.GetString("carousel_boundary")); b {
	case "wrap":
		cfg.CarouselBoundary = carousel.Wrap
	case "clamp":
		cfg.CarouselBoundary = carousel.Clamp
	default:
		return nil, fmt.Errorf("carousel_boundary: unknown policy %q", b)
	}

	if !strings.HasPrefix(cfg.CVPath, "/") || len(cfg.CVPath) < 2 || strings.ContainsAny(cfg.CVPath, ":*?# ") {
		return nil, fmt.Errorf("cv_path must be an absolute URL path to a file, got %q", cfg.CVPath)
	}

	if cfg.RetentionDays <= 0 {
		return nil, fmt.Errorf("retention_days must be positive, got %d", cfg.RetentionDays)
	}
	return cfg, nil
}

// EmbeddedCV reports whether the CV is read from the bundled static files.
func (c *Config) EmbeddedCV() bool {
	return c.CVSource == "" || c.CVSource == "embedded"
}
