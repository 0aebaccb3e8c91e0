package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg OutbreakConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultOutbreakConfig() {
		t.Errorf("embedded default diverged from hardcoded default:\n%+v\nvs\n%+v", cfg, DefaultOutbreakConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "outbreak.yaml")
	body := []byte("player:\n  max_health: 150\n  starting_money: 2000\nwaves:\n  base_zombies: 20\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Player.MaxHealth != 150 || cfg.Player.StartingMoney != 2000 {
		t.Errorf("player config not applied: %+v", cfg.Player)
	}
	if cfg.Waves.BaseZombies != 20 {
		t.Errorf("wave config not applied: %+v", cfg.Waves)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing explicit config path")
	}
}

func TestTuningMapping(t *testing.T) {
	cfg := DefaultOutbreakConfig()
	tun := cfg.Tuning()

	if tun.PlayerSpeed != 200 || tun.CrouchSpeed != 100 || tun.ProneSpeed != 50 {
		t.Errorf("movement speeds: %+v", tun)
	}
	if tun.BaseZombiesPerWave != 10 || tun.ZombiesIncreasePerWave != 5 {
		t.Errorf("wave scaling: %+v", tun)
	}
	if tun.PowerUpDropChance != 0.1 || tun.MysteryBoxSpinMs != 3000 {
		t.Errorf("drops: %+v", tun)
	}
}

func TestApplyPreset(t *testing.T) {
	easy := DefaultOutbreakConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Player.StartingMoney <= 500 || easy.Waves.BaseZombies >= 10 {
		t.Errorf("easy preset not applied: %+v", easy)
	}

	hard := DefaultOutbreakConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Player.StartingMoney >= 500 || hard.Waves.BaseZombies <= 10 {
		t.Errorf("hard preset not applied: %+v", hard)
	}

	fixed := DefaultOutbreakConfig()
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed != DefaultOutbreakConfig() {
		t.Error("fixed preset should keep defaults")
	}
}

func TestParsePreset(t *testing.T) {
	if _, ok := ParsePreset("hard"); !ok {
		t.Error("hard rejected")
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset accepted")
	}
}
