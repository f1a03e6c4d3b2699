package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/tabshell/internal/app"
	"github.com/atomicstack/tabshell/internal/ui/command"
	"github.com/atomicstack/tabshell/internal/ui/state"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envPrefix  = "TABSHELL"
	envConfig  = "TABSHELL_CONFIG"
	configName = "config"
	configType = "toml"
	appDirName = "tabshell"
)

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"view":     "view",
	"items":    "items",
	"width":    "width",
	"height":   "height",
	"footer":   "footer",
	"script":   "script",
	"trace":    "trace",
	"log-file": "log_file",
}

// RegisterFlags declares every command-line option on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a TOML config file (default $XDG_CONFIG_HOME/tabshell/config.toml)")
	fs.String("view", "home", "initial view: home, list or about")
	fs.StringSlice("items", nil, "comma-separated list items (default Item0..Item9)")
	fs.Int("width", 0, "frame width in cells (0 uses terminal width)")
	fs.Int("height", 0, "frame height in rows (0 uses terminal height)")
	fs.Bool("footer", false, "show the key hint footer")
	fs.String("script", "", "replay key events from a file ('-' for stdin) instead of the terminal")
	fs.Bool("trace", false, "enable verbose JSON trace logging")
	fs.String("log-file", "", "path to the log file")
}

// LoadArgs parses args with a fresh flag set. Environment variables and
// config files are consulted as in FromFlags.
func LoadArgs(args []string) (Config, error) {
	fs := pflag.NewFlagSet("tabshell", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return FromFlags(fs, args)
}

// FromFlags resolves configuration from parsed flags, TABSHELL_* environment
// variables, an optional TOML file and defaults, in that order of precedence.
func FromFlags(fs *pflag.FlagSet, args []string) (Config, error) {
	v := viper.New()
	v.SetDefault("view", "home")
	v.SetDefault("width", 0)
	v.SetDefault("height", 0)
	v.SetDefault("footer", false)
	v.SetDefault("script", "")
	v.SetDefault("trace", false)
	v.SetDefault("log_file", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	file, err := readConfigFile(v, fs)
	if err != nil {
		return Config{}, err
	}

	view, err := state.ParseView(v.GetString("view"))
	if err != nil {
		return Config{}, err
	}
	width, height := v.GetInt("width"), v.GetInt("height")
	if width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", width)
	}
	if height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", height)
	}

	cfg := Config{
		App: app.Config{
			View:       view,
			Items:      items(v),
			Keys:       v.GetStringMapStringSlice("keys"),
			Width:      width,
			Height:     height,
			ShowFooter: v.GetBool("footer"),
			Script:     v.GetString("script"),
		},
		Logging: Logging{
			FilePath: v.GetString("log_file"),
			Trace:    v.GetBool("trace"),
		},
		File:  file,
		Flags: map[string]string{},
		Args:  append([]string(nil), args...),
	}
	fs.VisitAll(func(f *pflag.Flag) {
		cfg.Flags[f.Name] = f.Value.String()
	})
	return cfg, nil
}

// readConfigFile loads an explicit config file, or the default one when it
// exists. It returns the path that was read, if any.
func readConfigFile(v *viper.Viper, fs *pflag.FlagSet) (string, error) {
	v.SetConfigType(configType)
	explicit, _ := fs.GetString("config")
	if explicit == "" {
		explicit = os.Getenv(envConfig)
	}
	if explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("read config %s: %w", explicit, err)
		}
		return explicit, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", nil
	}
	v.AddConfigPath(filepath.Join(dir, appDirName))
	v.SetConfigName(configName)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("read config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// items returns nil when nothing is configured so the defaults apply.
// Environment values are split on commas.
func items(v *viper.Viper) []string {
	if !v.IsSet("items") {
		return nil
	}
	switch raw := v.Get("items").(type) {
	case string:
		return splitList(raw)
	case []string:
		return raw
	case []interface{}:
		out := make([]string, 0, len(raw))
		for _, item := range raw {
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return v.GetStringSlice("items")
	}
}

func splitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Validate checks cross-field constraints that parsing cannot.
func Validate(cfg Config) error {
	km := command.DefaultKeymap()
	if err := km.Override(cfg.App.Keys); err != nil {
		return err
	}
	if !cfg.App.View.Valid() {
		return fmt.Errorf("%w %s", state.ErrUnknownView, cfg.App.View)
	}
	return nil
}
