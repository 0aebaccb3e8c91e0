package core

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ScreenW != 80 || cfg.ScreenH != 24 {
		t.Errorf("screen = %dx%d, want 80x24", cfg.ScreenW, cfg.ScreenH)
	}
	if cfg.TickRate != 60 {
		t.Errorf("tick rate = %d, want 60", cfg.TickRate)
	}
	if cfg.Seed != 0 {
		t.Errorf("seed = %d, want 0 (time-based)", cfg.Seed)
	}
}
