package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/jive-vlbi/ptboot/pkg/errors"
	"github.com/jive-vlbi/ptboot/pkg/logging"
	"github.com/jive-vlbi/ptboot/pkg/paths"
)

// envPrefix namespaces the environment variable overrides, e.g.
// PTBOOT_INSTALL_PYTHON maps to install.python.
const envPrefix = "PTBOOT_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Load builds the configuration from all layers. When configFile is
// empty the standard candidates (XDG config file, then ./ptboot.toml)
// are tried in order and the first one that exists wins.
func Load(configFile string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(confmap.Provider(systemDefaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load built-in defaults")
	}

	// 2. Embedded defaults.toml
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load embedded defaults")
	}

	// 3. Configuration file, if any
	candidates := []string{configFile}
	if configFile == "" {
		candidates = paths.New().ConfigFileCandidates()
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			if configFile != "" {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad,
					"config file %s not found", path)
			}
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse,
				"failed to parse %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
		break
	}

	// 4. Environment overrides
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
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
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}

	return &cfg, nil
}
