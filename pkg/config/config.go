package config

import (
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/streamprinter/pkg/errors"
	"github.com/arthur-debert/streamprinter/pkg/formatter"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment variable read into the config
	EnvPrefix = "STREAMPRINTER_"

	// UserConfigFile is the config file looked up under the XDG config dirs
	UserConfigFile = "streamprinter/config.toml"
)

// Config is the complete printer configuration
type Config struct {
	Output OutputConfig         `koanf:"output" toml:"output"`
	Styles formatter.StyleTable `koanf:"styles" toml:"styles"`
}

// OutputConfig holds the destination and its settings
type OutputConfig struct {
	Path      string `koanf:"path" toml:"path"`
	Decorated string `koanf:"decorated" toml:"decorated"`
	Verbose   bool   `koanf:"verbose" toml:"verbose"`
	Theme     string `koanf:"theme" toml:"theme"`
}

// LoadOptions selects the sources Load reads on top of the defaults
type LoadOptions struct {
	// ConfigFile is an explicit TOML file; it must exist when set
	ConfigFile string
	// SkipUserConfig ignores the XDG user config file
	SkipUserConfig bool
	// SkipEnv ignores STREAMPRINTER_* environment variables
	SkipEnv bool
	// Overrides are applied last, keyed by dotted path ("output.path")
	Overrides map[string]interface{}
}

// Load merges the configuration sources, later ones winning: embedded
// defaults, the XDG user file, opts.ConfigFile, the environment, then
// opts.Overrides.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	if !opts.SkipUserConfig {
		if path, err := xdg.SearchConfigFile(UserConfigFile); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load user config from %s", path).
					WithDetail(errors.DetailPath, path)
			}
		}
	}

	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", opts.ConfigFile).
				WithDetail(errors.DetailPath, opts.ConfigFile)
		}
		if err := k.Load(file.Provider(opts.ConfigFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", opts.ConfigFile).
				WithDetail(errors.DetailPath, opts.ConfigFile)
		}
	}

	if !opts.SkipEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	if cfg.Styles == nil {
		cfg.Styles = formatter.StyleTable{}
	}
	return &cfg, nil
}

// envKey maps STREAMPRINTER_OUTPUT_PATH to output.path. Style variables
// split on the last underscore only, so STREAMPRINTER_STYLES_MY_WARN_FOREGROUND
// sets styles.my_warn.foreground.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "styles_"); ok {
		if i := strings.LastIndex(rest, "_"); i > 0 {
			return "styles." + rest[:i] + "." + rest[i+1:]
		}
	}
	return strings.ReplaceAll(key, "_", ".")
}

// Default returns the configuration described by the embedded defaults only
func Default() (*Config, error) {
	return Load(LoadOptions{SkipUserConfig: true, SkipEnv: true})
}
