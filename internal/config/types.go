// Package config loads eqviz settings from defaults, a YAML file, EQVIZ_*
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"net"
	"strconv"

	"github.com/olivier-w/eqviz/internal/bands"
)

const (
	// FileName is looked up in the working directory.
	FileName = "eqviz.yaml"
	// GlobalConfigDir is relative to the user's home directory.
	GlobalConfigDir = ".config/eqviz"
	// GlobalConfigFile lives in GlobalConfigDir.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix namespaces environment overrides, e.g. EQVIZ_PORT.
	EnvPrefix = "EQVIZ"
)

// Frontends.
const (
	FrontendTcell = "tcell"
	FrontendTea   = "tea"
	FrontendLine  = "line"
)

// Config is the effective configuration.
type Config struct {
	Host      string       `yaml:"host" mapstructure:"host"`
	Port      int          `yaml:"port" mapstructure:"port"`
	FPS       int          `yaml:"fps" mapstructure:"fps"`
	Style     string       `yaml:"style" mapstructure:"style"`
	Smoothing string       `yaml:"smoothing" mapstructure:"smoothing"`
	Attack    float64      `yaml:"attack" mapstructure:"attack"`
	Decay     float64      `yaml:"decay" mapstructure:"decay"`
	Spring    SpringConfig `yaml:"spring" mapstructure:"spring"`
	Frontend  string       `yaml:"frontend" mapstructure:"frontend"`
	LogFile   string       `yaml:"log_file" mapstructure:"log_file"`

	// Path is the config file that was read, if any.
	Path string `yaml:"-" mapstructure:"-"`
}

// SpringConfig tunes the spring smoother.
type SpringConfig struct {
	Frequency float64 `yaml:"frequency" mapstructure:"frequency"`
	Damping   float64 `yaml:"damping" mapstructure:"damping"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Host:      "0.0.0.0",
		Port:      31337,
		FPS:       30,
		Style:     "square",
		Smoothing: "exponential",
		Attack:    bands.DefaultAttack,
		Decay:     bands.DefaultDecay,
		Spring: SpringConfig{
			Frequency: bands.DefaultSpringFrequency,
			Damping:   bands.DefaultSpringDamping,
		},
		Frontend: FrontendTcell,
	}
}

// Addr is the listen address as host:port.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// SmootherOptions maps the config onto bands.Options.
func (c Config) SmootherOptions() bands.Options {
	return bands.Options{
		Kind:            c.Smoothing,
		Attack:          c.Attack,
		Decay:           c.Decay,
		SpringFrequency: c.Spring.Frequency,
		SpringDamping:   c.Spring.Damping,
		FPS:             c.FPS,
	}
}
