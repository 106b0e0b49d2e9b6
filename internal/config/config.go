// Package config resolves kflux settings from flags, KFLUX_* environment
// variables, an optional YAML config file and built-in defaults, in that
// order of precedence.
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

	"github.com/renato0307/kflux/internal/k8s"
	"github.com/renato0307/kflux/internal/logging"
	"github.com/renato0307/kflux/internal/tree"
	"github.com/renato0307/kflux/internal/ui"
)

// EnvPrefix prefixes every environment variable, e.g. KFLUX_LOG_FILE
const EnvPrefix = "KFLUX"

// Keys shared by flags, env and the config file
const (
	KeyConfig           = "config"
	KeyKubeconfig       = "kubeconfig"
	KeyContext          = "context"
	KeyTheme            = "theme"
	KeyDummy            = "dummy"
	KeyFluxNamespace    = "flux-namespace"
	KeyProbeTimeout     = "probe-timeout"
	KeyProbeConcurrency = "probe-concurrency"
	KeyPoolSize         = "pool-size"
	KeyLogFile          = "log-file"
	KeyLogLevel         = "log-level"
	KeyLogFormat        = "log-format"
)

// Config is the resolved configuration
type Config struct {
	Kubeconfig       string        `mapstructure:"kubeconfig"`
	Context          string        `mapstructure:"context"`
	Theme            string        `mapstructure:"theme"`
	Dummy            bool          `mapstructure:"dummy"`
	FluxNamespace    string        `mapstructure:"flux-namespace"`
	ProbeTimeout     time.Duration `mapstructure:"probe-timeout"`
	ProbeConcurrency int           `mapstructure:"probe-concurrency"`
	PoolSize         int           `mapstructure:"pool-size"`
	LogFile          string        `mapstructure:"log-file"`
	LogLevel         string        `mapstructure:"log-level"`
	LogFormat        string        `mapstructure:"log-format"`

	// ConfigFile is the file that was read, "" when none was found
	ConfigFile string `mapstructure:"-"`
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Theme:            "charm",
		FluxNamespace:    k8s.DefaultFluxNamespace,
		ProbeTimeout:     tree.DefaultProbeTimeout,
		ProbeConcurrency: tree.DefaultProbeConcurrency,
		PoolSize:         k8s.DefaultPoolSize,
		LogLevel:         "info",
		LogFormat:        string(logging.FormatText),
	}
}

// DefaultPaths lists the directories searched for config.yaml:
// $XDG_CONFIG_HOME/kflux then ~/.kflux
func DefaultPaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "kflux"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".kflux"))
	}
	return paths
}

// NewViper returns a viper instance with defaults, env binding and the
// given search paths
func NewViper(paths ...string) *viper.Viper {
	v := viper.New()

	d := Defaults()
	v.SetDefault(KeyKubeconfig, d.Kubeconfig)
	v.SetDefault(KeyContext, d.Context)
	v.SetDefault(KeyTheme, d.Theme)
	v.SetDefault(KeyDummy, d.Dummy)
	v.SetDefault(KeyFluxNamespace, d.FluxNamespace)
	v.SetDefault(KeyProbeTimeout, d.ProbeTimeout)
	v.SetDefault(KeyProbeConcurrency, d.ProbeConcurrency)
	v.SetDefault(KeyPoolSize, d.PoolSize)
	v.SetDefault(KeyLogFile, d.LogFile)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFormat, d.LogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	return v
}

// AddFlags registers every setting on flags
func AddFlags(flags *pflag.FlagSet) {
	d := Defaults()
	flags.String(KeyConfig, "", "Path to a config file (default: $XDG_CONFIG_HOME/kflux/config.yaml or ~/.kflux/config.yaml)")
	flags.String(KeyKubeconfig, d.Kubeconfig, "Path to kubeconfig file (default: merged $KUBECONFIG entries or $HOME/.kube/config)")
	flags.String(KeyContext, d.Context, "Kubernetes context to start in (this run only; the kubeconfig is not modified)")
	flags.String(KeyTheme, d.Theme, "Theme to use ("+strings.Join(ui.AvailableThemes(), ", ")+")")
	flags.Bool(KeyDummy, d.Dummy, "Use dummy data instead of connecting to clusters")
	flags.String(KeyFluxNamespace, d.FluxNamespace, "Namespace of the Flux controllers")
	flags.Duration(KeyProbeTimeout, d.ProbeTimeout, "Timeout of each Flux installation probe")
	flags.Int(KeyProbeConcurrency, d.ProbeConcurrency, "Clusters probed at once by the tree command")
	flags.Int(KeyPoolSize, d.PoolSize, "Maximum number of cached cluster clients")
	flags.String(KeyLogFile, d.LogFile, "Write logs to this file (logging is off when empty)")
	flags.String(KeyLogLevel, d.LogLevel, "Log level (debug, info, warn, error)")
	flags.String(KeyLogFormat, d.LogFormat, "Log format (text, json)")
}

// Load binds flags into v, reads the config file if any and returns the
// resolved configuration
func Load(v *viper.Viper, flags *pflag.FlagSet) (Config, error) {
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if file := v.GetString(KeyConfig); file != "" {
		if _, err := os.Stat(file); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		v.SetConfigFile(file)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values no component can work with
func (c Config) Validate() error {
	var errs []error
	if c.ProbeTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %s", KeyProbeTimeout, c.ProbeTimeout))
	}
	if c.ProbeConcurrency <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", KeyProbeConcurrency, c.ProbeConcurrency))
	}
	if c.PoolSize <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", KeyPoolSize, c.PoolSize))
	}
	if !slices.Contains(ui.AvailableThemes(), c.Theme) {
		errs = append(errs, fmt.Errorf("unknown %s %q", KeyTheme, c.Theme))
	}
	if c.FluxNamespace == "" {
		errs = append(errs, fmt.Errorf("%s must not be empty", KeyFluxNamespace))
	}
	switch logging.LogFormat(strings.ToLower(c.LogFormat)) {
	case logging.FormatText, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("%s must be text or json, got %q", KeyLogFormat, c.LogFormat))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Logging maps the log settings onto logging.Config
func (c Config) Logging() logging.Config {
	return logging.Config{
		FilePath: c.LogFile,
		Level:    logging.ParseLevel(c.LogLevel),
		Format:   logging.ParseFormat(c.LogFormat),
	}
}
