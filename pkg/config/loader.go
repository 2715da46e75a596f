package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/overlay/pkg/errors"
	"github.com/arthur-debert/overlay/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read as configuration
const EnvPrefix = "OVERLAY_"

// ConfigFileEnv names the variable that points at an explicit config file
const ConfigFileEnv = EnvPrefix + "CONFIG"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}

// LoadOptions controls which layers Load reads
type LoadOptions struct {
	// ConfigFile replaces the user config lookup when set
	ConfigFile string
	// Overrides are applied last, keyed by dotted path ("output.format")
	Overrides map[string]interface{}

	SkipUserConfig bool
	SkipEnv        bool
}

// Load builds the configuration from every enabled layer
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	if !opts.SkipUserConfig {
		path := opts.ConfigFile
		explicit := path != ""
		if !explicit {
			path = UserConfigPath()
		}
		if err := loadFile(k, path, explicit); err != nil {
			return nil, err
		}
	}

	// 3. Environment
	if !opts.SkipEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
		}
	}

	// 4. Explicit overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
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
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	logger.Trace().
		Strs("manifests", cfg.Manifest.Names).
		Str("format", cfg.Output.Format).
		Msg("Configuration loaded")
	return &cfg, nil
}

// UserConfigPath returns the user config file to read: $OVERLAY_CONFIG, or
// the first of config.toml, config.yaml, config.yml under the XDG config
// home. When none exists the config.toml path is returned.
func UserConfigPath() string {
	if path := os.Getenv(ConfigFileEnv); path != "" {
		return path
	}

	dir := filepath.Join(xdg.ConfigHome, logging.AppName)
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return filepath.Join(dir, "config.toml")
}

func loadFile(k *koanf.Koanf, path string, required bool) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path).
			WithDetail("path", path)
	}

	parser := koanf.Parser(toml.Parser())
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}

// envKey maps OVERLAY_MANIFEST_IGNORE_FILE to manifest.ignore_file. Only
// the first underscore separates the section from the key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func validate(cfg *Config) error {
	if len(cfg.Manifest.Names) == 0 {
		return errors.New(errors.ErrConfigParse, "manifest.names must list at least one file name").
			WithDetail("key", "manifest.names")
	}
	for _, name := range cfg.Manifest.Names {
		if name == "" || strings.ContainsRune(name, filepath.Separator) {
			return errors.Newf(errors.ErrConfigParse, "invalid manifest file name %q", name).
				WithDetail("key", "manifest.names")
		}
	}
	for _, pattern := range cfg.Packs.Ignore {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return errors.Wrapf(err, errors.ErrConfigParse, "invalid ignore pattern %q", pattern).
				WithDetail("key", "packs.ignore")
		}
	}
	return nil
}
