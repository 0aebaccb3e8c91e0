package game

// Tuning holds every gameplay knob the simulation reads at runtime.
// Durations are in milliseconds, speeds in pixels per second. The
// config layer maps YAML onto this struct; tests mostly run defaults.
type Tuning struct {
	// Player
	PlayerMaxHealth float64
	PlayerMaxArmor  float64
	PlayerSpeed     float64
	CrouchSpeed     float64
	ProneSpeed      float64
	StartingMoney   int

	// Roll
	RollSpeed      float64
	RollDurationMs float64
	RollCooldownMs float64

	// Knife
	KnifeDamage     float64
	KnifeRange      float64
	KnifeCooldownMs float64

	// Waves
	BaseZombiesPerWave      int
	ZombiesIncreasePerWave  int
	HealthMultiplierPerWave float64
	WaveBreakMs             float64
	SpawnIntervalBaseMs     float64
	SpawnIntervalMinMs      float64

	// Power-ups
	PowerUpDropChance       float64
	PowerUpDurationMs       float64
	PowerUpGroundLifetimeMs float64

	// Mystery box
	MysteryBoxSpinMs float64
}

// DefaultTuning returns the baseline ruleset.
func DefaultTuning() Tuning {
	return Tuning{
		PlayerMaxHealth: 100,
		PlayerMaxArmor:  100,
		PlayerSpeed:     200,
		CrouchSpeed:     100,
		ProneSpeed:      50,
		StartingMoney:   500,

		RollSpeed:      600,
		RollDurationMs: 500,
		RollCooldownMs: 1500,

		KnifeDamage:     25,
		KnifeRange:      50,
		KnifeCooldownMs: 500,

		BaseZombiesPerWave:      10,
		ZombiesIncreasePerWave:  5,
		HealthMultiplierPerWave: 1.05,
		WaveBreakMs:             10000,
		SpawnIntervalBaseMs:     2000,
		SpawnIntervalMinMs:      300,

		PowerUpDropChance:       0.1,
		PowerUpDurationMs:       15000,
		PowerUpGroundLifetimeMs: 10000,

		MysteryBoxSpinMs: 3000,
	}
}
