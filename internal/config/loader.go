package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/olivier-w/eqviz/internal/errors"
	"github.com/spf13/viper"
)

// NewViper returns a viper instance primed with defaults and EQVIZ_*
// environment lookups. Callers bind their flags to it before Load.
func NewViper() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault("host", d.Host)
	v.SetDefault("port", d.Port)
	v.SetDefault("fps", d.FPS)
	v.SetDefault("style", d.Style)
	v.SetDefault("smoothing", d.Smoothing)
	v.SetDefault("attack", d.Attack)
	v.SetDefault("decay", d.Decay)
	v.SetDefault("spring.frequency", d.Spring.Frequency)
	v.SetDefault("spring.damping", d.Spring.Damping)
	v.SetDefault("frontend", d.Frontend)
	v.SetDefault("log_file", d.LogFile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file found by Find (if any) into v, decodes the
// merged settings and validates them.
func Load(v *viper.Viper, explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file "+path,
				"Check the file is valid YAML")
		}
	}

	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the value types in your config file and EQVIZ_* variables")
	}
	cfg.Path = path

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Find locates the config file:
//  1. the explicit path (from --config), which must exist
//  2. eqviz.yaml in the working directory
//  3. ~/.config/eqviz/config.yaml
//
// It returns "" when there is no config file, which is not an error.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Can't open config file "+explicit,
				"Check the path passed to --config")
		}
		return explicit, nil
	}

	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, FileName)
		if _, err := os.Stat(local); err == nil {
			return local, nil
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(global); err == nil {
			return global, nil
		}
	}

	return "", nil
}
