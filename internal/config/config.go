package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Picker PickerConfig `mapstructure:"picker"`
	UI     UIConfig     `mapstructure:"ui"`
	// Keys maps an action name to the keys that replace its defaults.
	Keys map[string][]string `mapstructure:"keys"`
}

// PickerConfig holds the options handed to the picker controller.
type PickerConfig struct {
	SelectionType    string `mapstructure:"selection_type"`
	StartingView     string `mapstructure:"starting_view"`
	InitialDate      string `mapstructure:"initial_date"`
	StartingDate     string `mapstructure:"starting_date"`
	WeekStart        string `mapstructure:"week_start"`
	MonthTitleLayout string `mapstructure:"month_title_layout"`
	InitiallyOpen    bool   `mapstructure:"initially_open"`
	ConstraintsFile  string `mapstructure:"constraints_file"`
}

// UIConfig holds terminal host settings.
type UIConfig struct {
	CloseOnSelect bool   `mapstructure:"close_on_select"`
	DebugLog      string `mapstructure:"debug_log"`
}

// Path is the config file read by Load. DATEPICKER_CONFIG overrides the
// default under the user's config directory.
func Path() string {
	if p := os.Getenv("DATEPICKER_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "datepicker", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix DATEPICKER_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("DATEPICKER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	// relative constraint files live next to the config file
	if c.Picker.ConstraintsFile != "" && !filepath.IsAbs(c.Picker.ConstraintsFile) {
		c.Picker.ConstraintsFile = filepath.Join(filepath.Dir(Path()), c.Picker.ConstraintsFile)
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("picker.selection_type", "days")
	v.SetDefault("picker.starting_view", "")
	v.SetDefault("picker.initial_date", "")
	v.SetDefault("picker.starting_date", "")
	v.SetDefault("picker.week_start", "monday")
	v.SetDefault("picker.month_title_layout", "Jan 2006")
	v.SetDefault("picker.initially_open", true)
	v.SetDefault("picker.constraints_file", "")
	v.SetDefault("ui.close_on_select", true)
	v.SetDefault("ui.debug_log", "")
	v.SetDefault("keys", map[string][]string{})
}

// Save writes cfg to Path, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("picker.selection_type", cfg.Picker.SelectionType)
	v.Set("picker.starting_view", cfg.Picker.StartingView)
	v.Set("picker.initial_date", cfg.Picker.InitialDate)
	v.Set("picker.starting_date", cfg.Picker.StartingDate)
	v.Set("picker.week_start", cfg.Picker.WeekStart)
	v.Set("picker.month_title_layout", cfg.Picker.MonthTitleLayout)
	v.Set("picker.initially_open", cfg.Picker.InitiallyOpen)
	v.Set("picker.constraints_file", cfg.Picker.ConstraintsFile)
	v.Set("ui.close_on_select", cfg.UI.CloseOnSelect)
	v.Set("ui.debug_log", cfg.UI.DebugLog)
	for action, keys := range cfg.Keys {
		v.Set("keys."+action, keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Default is the configuration used when no file exists.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}
