package core

// RuntimeConfig contains configuration passed to the session at initialization.
// The platform fills it from the terminal size and CLI flags.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// SessionStatus is the platform-facing summary of a running session.
// The renderer and score persistence read it after each tick.
type SessionStatus struct {
	Score    int  // Current score
	Wave     int  // Current wave number
	Kills    int  // Zombies killed this session
	GameOver bool // Whether the session has ended
	Paused   bool // Whether the simulation is paused
}
