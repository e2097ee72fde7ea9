package config

// Preset names a rule set layered over a loaded configuration.
type Preset string

const (
	// PresetStandard keeps the configured rules.
	PresetStandard Preset = "standard"

	// PresetClassic is the one-touch variant: contact with an enemy ends the
	// run, escapes cost nothing and kills do not heal.
	PresetClassic Preset = "classic"
)

// ApplyPreset modifies the config according to a preset.
// Unknown presets leave the config unchanged.
func ApplyPreset(cfg *ShooterConfig, preset Preset) {
	switch preset {
	case PresetClassic:
		cfg.Rules.HitDamage = cfg.Rules.MaxHealth
		cfg.Rules.EscapePenalty = 0
		cfg.Rules.KillHeal = 0
	}
}
