// Package config resolves runtime settings for the worthit binary.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Config holds runtime settings.
//
// Fields:
//   - DataDir: directory holding the user and items blobs.
//   - Locale: BCP 47 tag used for currency formatting.
//   - LogLevel, LogFormat: slog handler tuning ("warn"/"text" by default,
//     keeping the terminal quiet unless asked).
type Config struct {
	DataDir   string
	Locale    string
	LogLevel  string
	LogFormat string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	c.DataDir = filepath.Join(base, "worthit")
	c.Locale = "en-US"
	c.LogLevel = "warn"
	c.LogFormat = "text"
}

// Load constructs a Config: defaults first, then a .env file in the
// working directory (if present), then WORTHIT_* process environment.
// Later sources take precedence.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	_ = godotenv.Load()
	parseEnv(cfg)
	return cfg
}

func parseEnv(cfg *Config) {
	if v := os.Getenv("WORTHIT_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("WORTHIT_LOCALE"); v != "" {
		cfg.Locale = v
	}
	if v := os.Getenv("WORTHIT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("WORTHIT_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}

// LanguageTag parses the configured locale, falling back to en-US.
func (c *Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}
