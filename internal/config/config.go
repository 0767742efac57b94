package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is stripped from environment variables, GL_LOG_FORMAT becomes log.format
const EnvPrefix = "GL_"

var K = koanf.New(".")

// Current holds the configuration loaded by the root command
var Current = Default()

// Config is the settings gl commands read after all sources are merged.
type Config struct {
	Debug bool       `koanf:"debug"`
	Color bool       `koanf:"color"`
	Log   LogConfig  `koanf:"log"`
	Diff  DiffConfig `koanf:"diff"`
}

type LogConfig struct {
	// "text" or "json"
	Format string `koanf:"format"`
}

type DiffConfig struct {
	// Directory for temporary diff files, empty means the OS default
	TmpDir string `koanf:"tmpdir"`
}

// Default returns the configuration used when no source sets a key.
func Default() Config {
	return Config{
		Color: true,
		Log:   LogConfig{Format: "text"},
	}
}

// LoadConfig merges the config file, environment and flags into a fresh K and stores the result in Current.
func LoadConfig(flagSet *pflag.FlagSet, configFile string) error {
	K = koanf.New(".")

	cfg, err := Load(K, flagSet, configFile)
	if err != nil {
		return err
	}

	Current = cfg
	return nil
}

// Load merges sources into k, lowest precedence first: config file, GL_* environment, flags.
func Load(k *koanf.Koanf, flagSet *pflag.FlagSet, configFile string) (Config, error) {
	// Load from config file if provided
	if configFile != "" {
		parser, err := parserForFile(configFile)
		if err != nil {
			return Config{}, fmt.Errorf("unsupported config file format: %w", err)
		}
		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return Config{}, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// This will convert GL_FOO_BAR to foo.bar
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, EnvPrefix)), "_", ".", -1)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("error loading environment: %w", err)
	}

	// Load from command-line flags (highest precedence)
	if flagSet != nil {
		if err := k.Load(posflag.Provider(flagSet, ".", k), nil); err != nil {
			return Config{}, fmt.Errorf("error loading flags: %w", err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	switch cfg.Log.Format {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("invalid log.format %q, expected text or json", cfg.Log.Format)
	}

	return cfg, nil
}

func parserForFile(path string) (koanf.Parser, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".env":
		return dotenv.Parser(), nil
	default:
		return nil, fmt.Errorf("unknown file extension: %s", ext)
	}
}
