// Package config provides YAML-based simulation configuration loading
// and difficulty management for the outbreak engine.
package config

import "github.com/vovakirdan/precinct-outbreak/internal/game"

// OutbreakConfig contains every tunable the simulation reads. It maps
// one-to-one onto game.Tuning; the YAML layer exists so players can
// rebalance without rebuilding.
type OutbreakConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Roll       RollConfig       `yaml:"roll"`
	Knife      KnifeConfig      `yaml:"knife"`
	Waves      WaveConfig       `yaml:"waves"`
	PowerUps   PowerUpConfig    `yaml:"power_ups"`
	MysteryBox MysteryBoxConfig `yaml:"mystery_box"`
}

// PlayerConfig defines survivor movement and vitals.
type PlayerConfig struct {
	MaxHealth     float64 `yaml:"max_health"`
	MaxArmor      float64 `yaml:"max_armor"`
	Speed         float64 `yaml:"speed"`
	CrouchSpeed   float64 `yaml:"crouch_speed"`
	ProneSpeed    float64 `yaml:"prone_speed"`
	StartingMoney int     `yaml:"starting_money"`
}

// RollConfig defines the dodge roll.
type RollConfig struct {
	Speed      float64 `yaml:"speed"`
	DurationMs float64 `yaml:"duration_ms"`
	CooldownMs float64 `yaml:"cooldown_ms"`
}

// KnifeConfig defines the melee attack.
type KnifeConfig struct {
	Damage     float64 `yaml:"damage"`
	Range      float64 `yaml:"range"`
	CooldownMs float64 `yaml:"cooldown_ms"`
}

// WaveConfig defines wave progression and spawn pacing.
type WaveConfig struct {
	BaseZombies         int     `yaml:"base_zombies"`
	IncreasePerWave     int     `yaml:"increase_per_wave"`
	HealthMultiplier    float64 `yaml:"health_multiplier"`
	BreakMs             float64 `yaml:"break_ms"`
	SpawnIntervalBaseMs float64 `yaml:"spawn_interval_base_ms"`
	SpawnIntervalMinMs  float64 `yaml:"spawn_interval_min_ms"`
}

// PowerUpConfig defines drop behavior.
type PowerUpConfig struct {
	DropChance       float64 `yaml:"drop_chance"`
	DurationMs       float64 `yaml:"duration_ms"`
	GroundLifetimeMs float64 `yaml:"ground_lifetime_ms"`
}

// MysteryBoxConfig defines the weapon box.
type MysteryBoxConfig struct {
	SpinMs float64 `yaml:"spin_ms"`
}

// Tuning converts the loaded configuration into the engine's ruleset.
func (c OutbreakConfig) Tuning() game.Tuning {
	return game.Tuning{
		PlayerMaxHealth: c.Player.MaxHealth,
		PlayerMaxArmor:  c.Player.MaxArmor,
		PlayerSpeed:     c.Player.Speed,
		CrouchSpeed:     c.Player.CrouchSpeed,
		ProneSpeed:      c.Player.ProneSpeed,
		StartingMoney:   c.Player.StartingMoney,

		RollSpeed:      c.Roll.Speed,
		RollDurationMs: c.Roll.DurationMs,
		RollCooldownMs: c.Roll.CooldownMs,

		KnifeDamage:     c.Knife.Damage,
		KnifeRange:      c.Knife.Range,
		KnifeCooldownMs: c.Knife.CooldownMs,

		BaseZombiesPerWave:      c.Waves.BaseZombies,
		ZombiesIncreasePerWave:  c.Waves.IncreasePerWave,
		HealthMultiplierPerWave: c.Waves.HealthMultiplier,
		WaveBreakMs:             c.Waves.BreakMs,
		SpawnIntervalBaseMs:     c.Waves.SpawnIntervalBaseMs,
		SpawnIntervalMinMs:      c.Waves.SpawnIntervalMinMs,

		PowerUpDropChance:       c.PowerUps.DropChance,
		PowerUpDurationMs:       c.PowerUps.DurationMs,
		PowerUpGroundLifetimeMs: c.PowerUps.GroundLifetimeMs,

		MysteryBoxSpinMs: c.MysteryBox.SpinMs,
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Unknown names report false.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	}
	return "", false
}
