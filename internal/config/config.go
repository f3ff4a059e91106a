package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jask/footprint/core/theme"
)

// Tabs lists the dashboard tab ids in display order.
var Tabs = []string{"home", "exposure", "vault", "monetization", "education", "profile"}

// Config holds application configuration.
type Config struct {
	UI   UIConfig   `mapstructure:"ui"`
	Scan ScanConfig `mapstructure:"scan"`
	Data DataConfig `mapstructure:"data"`
	Log  LogConfig  `mapstructure:"log"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme    string `mapstructure:"theme"`
	StartTab string `mapstructure:"start_tab"`
}

// ScanConfig tunes the simulated exposure scan.
type ScanConfig struct {
	Delay    time.Duration `mapstructure:"delay"`
	Progress int           `mapstructure:"progress"`
}

// DataConfig points at an alternative fixture file. Empty means the embedded one.
type DataConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig holds debug log settings. Empty path disables logging.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// flagKeys maps CLI flag names onto config keys.
var flagKeys = map[string]string{
	"theme":     "ui.theme",
	"tab":       "ui.start_tab",
	"data":      "data.path",
	"log":       "log.path",
	"log-level": "log.level",
}

// DefaultPath is where Load looks when neither an explicit path nor
// FOOTPRINT_CONFIG is given.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "footprint", "config.toml")
}

// Load reads configuration from defaults, the config file, env and flags, in
// increasing priority. Env var overrides use prefix FOOTPRINT_. A missing
// config file is not an error; a malformed one is.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.theme", string(theme.Light))
	v.SetDefault("ui.start_tab", Tabs[0])
	v.SetDefault("scan.delay", "3s")
	v.SetDefault("scan.progress", 47)
	v.SetDefault("data.path", "")
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	explicit := path != ""
	if !explicit {
		path = os.Getenv("FOOTPRINT_CONFIG")
		explicit = path != ""
	}
	if explicit {
		if _, err := os.Stat(path); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FOOTPRINT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

// Validate reports every out-of-range setting.
func (c Config) Validate() error {
	var errs []error
	if _, err := theme.ParseMode(c.UI.Theme); err != nil {
		errs = append(errs, fmt.Errorf("ui.theme: %w", err))
	}
	if _, err := TabIndex(c.UI.StartTab); err != nil {
		errs = append(errs, fmt.Errorf("ui.start_tab: %w", err))
	}
	if c.Scan.Delay <= 0 {
		errs = append(errs, fmt.Errorf("scan.delay: must be positive, got %s", c.Scan.Delay))
	}
	if c.Scan.Progress < 0 || c.Scan.Progress > 100 {
		errs = append(errs, fmt.Errorf("scan.progress: %d outside 0..100", c.Scan.Progress))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}
	return errors.Join(errs...)
}

// ThemeMode returns the parsed ui.theme. Call after Validate.
func (c Config) ThemeMode() theme.Mode {
	m, err := theme.ParseMode(c.UI.Theme)
	if err != nil {
		return theme.Light
	}
	return m
}

// TabIndex resolves a tab id ("vault") or its 1-based number ("3").
func TabIndex(name string) (int, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if i := slices.Index(Tabs, n); i >= 0 {
		return i, nil
	}
	if len(n) == 1 && n[0] >= '1' && int(n[0]-'0') <= len(Tabs) {
		return int(n[0] - '1'), nil
	}
	return 0, fmt.Errorf("unknown tab %q", name)
}
