package config

import (
	_ "embed"
)

//go:embed defaults/outbreak.yaml
var defaultOutbreakYAML []byte

// DefaultOutbreakConfig returns the default simulation configuration.
func DefaultOutbreakConfig() OutbreakConfig {
	return OutbreakConfig{
		Player: PlayerConfig{
			MaxHealth:     100,
			MaxArmor:      100,
			Speed:         200,
			CrouchSpeed:   100,
			ProneSpeed:    50,
			StartingMoney: 500,
		},
		Roll: RollConfig{
			Speed:      600,
			DurationMs: 500,
			CooldownMs: 1500,
		},
		Knife: KnifeConfig{
			Damage:     25,
			Range:      50,
			CooldownMs: 500,
		},
		Waves: WaveConfig{
			BaseZombies:         10,
			IncreasePerWave:     5,
			HealthMultiplier:    1.05,
			BreakMs:             10000,
			SpawnIntervalBaseMs: 2000,
			SpawnIntervalMinMs:  300,
		},
		PowerUps: PowerUpConfig{
			DropChance:       0.1,
			DurationMs:       15000,
			GroundLifetimeMs: 10000,
		},
		MysteryBox: MysteryBoxConfig{
			SpinMs: 3000,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultOutbreakYAML
}
