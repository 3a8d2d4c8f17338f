package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/olivier-w/eqviz/internal/bands"
	"github.com/olivier-w/eqviz/internal/errors"
	"github.com/olivier-w/eqviz/internal/visualizer"
)

// MaxFPS caps the refresh rate.
const MaxFPS = 240

// Frontends lists the accepted frontend names.
func Frontends() []string {
	return []string{FrontendTcell, FrontendTea, FrontendLine}
}

// Validate checks cfg and normalizes the case of enumerated values.
func Validate(cfg *Config) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Port %d is out of range", cfg.Port),
			"Use a UDP port between 1 and 65535")
	}

	if cfg.FPS < 1 || cfg.FPS > MaxFPS {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Refresh rate %d fps is out of range", cfg.FPS),
			fmt.Sprintf("Use a value between 1 and %d", MaxFPS))
	}

	cfg.Style = strings.ToLower(cfg.Style)
	if _, err := visualizer.ByName(cfg.Style); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Unknown render style",
			"Use --style square or --style row")
	}

	cfg.Smoothing = strings.ToLower(cfg.Smoothing)
	if !slices.Contains(bands.Kinds(), cfg.Smoothing) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown smoothing %q", cfg.Smoothing),
			"Use one of: "+strings.Join(bands.Kinds(), ", "))
	}

	if cfg.Attack <= 0 || cfg.Attack > 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Attack %.2f is out of range", cfg.Attack),
			"Attack is the weight of a rising target, in (0, 1]")
	}
	if cfg.Decay <= 0 || cfg.Decay >= 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Decay %.2f is out of range", cfg.Decay),
			"Decay is the fraction kept per falling frame, in (0, 1)")
	}

	if cfg.Spring.Frequency <= 0 || cfg.Spring.Damping < 0 {
		return errors.New(errors.ErrConfig,
			"Spring settings are out of range",
			"spring.frequency must be positive and spring.damping non-negative")
	}

	cfg.Frontend = strings.ToLower(cfg.Frontend)
	if !slices.Contains(Frontends(), cfg.Frontend) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown frontend %q", cfg.Frontend),
			"Use one of: "+strings.Join(Frontends(), ", "))
	}

	return nil
}
