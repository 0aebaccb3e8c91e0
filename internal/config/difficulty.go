package config

// ApplyPreset rebalances the config for a named difficulty. Normal and
// fixed keep the file values; easy and hard rescale wave pressure and
// the starting wallet.
func ApplyPreset(cfg *OutbreakConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.StartingMoney = 1000
		cfg.Waves.BaseZombies = 8
		cfg.Waves.IncreasePerWave = 3
		cfg.Waves.HealthMultiplier = 1.03
		cfg.Waves.SpawnIntervalBaseMs = 2500
		cfg.Waves.BreakMs = 15000
		cfg.PowerUps.DropChance = 0.15
	case DifficultyHard:
		cfg.Player.StartingMoney = 250
		cfg.Waves.BaseZombies = 14
		cfg.Waves.IncreasePerWave = 7
		cfg.Waves.HealthMultiplier = 1.08
		cfg.Waves.SpawnIntervalBaseMs = 1500
		cfg.Waves.SpawnIntervalMinMs = 200
		cfg.Waves.BreakMs = 7000
		cfg.PowerUps.DropChance = 0.07
	}
}
