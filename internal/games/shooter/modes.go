package shooter

import (
	"fmt"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// Registered mode IDs.
const (
	ModeStandard = "shooter"
	ModeClassic  = "shooter_classic"
)

var modePresets = map[string]config.Preset{
	ModeStandard: config.PresetStandard,
	ModeClassic:  config.PresetClassic,
}

// ConfigFor loads the configuration for a mode, with the mode's preset applied.
func ConfigFor(mode, path string) (config.ShooterConfig, error) {
	preset, ok := modePresets[mode]
	if !ok {
		return config.ShooterConfig{}, fmt.Errorf("shooter: unknown mode %q", mode)
	}

	cfg, err := config.LoadShooter(path)
	if err != nil {
		return config.ShooterConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// Register the modes with the registry
func init() {
	registry.Register(ModeStandard, func() registry.Game {
		return New()
	})
	registry.Register(ModeClassic, func() registry.Game {
		return NewClassic()
	})
}
