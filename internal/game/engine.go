// Package game implements the outbreak simulation: a fixed-step update
// loop driving the player, zombie waves, projectiles, power-ups and the
// in-map economy over a generated precinct.
//
// The engine is fully deterministic for a given seed and input stream.
// All timers run on an internal millisecond clock that only advances
// inside Update, so pausing freezes every cooldown, reload and wave
// timer at once.
package game

import (
	"github.com/vovakirdan/precinct-outbreak/internal/audio"
	"github.com/vovakirdan/precinct-outbreak/internal/core"
	"github.com/vovakirdan/precinct-outbreak/internal/data"
	"github.com/vovakirdan/precinct-outbreak/internal/mapgen"
)

const (
	playerSize     = 32
	bulletSize     = 6
	powerUpSize    = 32
	grenadeSpeed   = 400
	detonateRadius = 20
	interactRange  = 100
	explosionVisMs = 500
	knifeFlashMs   = 100
)

// Engine owns the map, the state and the clock.
type Engine struct {
	Map   *mapgen.Map
	State *State

	tun  Tuning
	rng  *Rand
	sink audio.Sink
	seed int64

	clock      float64 // Milliseconds of simulated time
	viewportW  float64
	viewportH  float64
	lastSpawnAt   float64
	spawnInterval float64
	accessible    []mapgen.SpawnPoint
	nextID        int
}

// New creates an engine with a fresh map and initial state. A nil sink
// is replaced with a no-op one.
func New(tun Tuning, seed int64, sink audio.Sink) *Engine {
	if sink == nil {
		sink = audio.NopSink{}
	}
	e := &Engine{tun: tun, sink: sink}
	e.Reset(seed)
	return e
}

// Reset regenerates the map and restores the initial state. The seed
// replaces the RNG stream, so two resets with equal seeds replay
// identically under equal inputs.
func (e *Engine) Reset(seed int64) {
	e.seed = seed
	e.rng = NewRand(seed)
	e.Map = mapgen.Generate()
	e.State = e.initialState()
	e.clock = 0
	e.lastSpawnAt = 0
	e.spawnInterval = e.tun.SpawnIntervalBaseMs
	e.refreshAccessibleSpawns()
}

func (e *Engine) initialState() *State {
	throwable, _ := data.ThrowableByID(data.StartingThrowableID)
	pistol, _ := data.WeaponByID(data.StartingPistolID)
	return &State{
		Player: Player{
			Position:       e.Map.PlayerStart,
			Width:          playerSize,
			Height:         playerSize,
			Health:         e.tun.PlayerMaxHealth,
			MaxHealth:      e.tun.PlayerMaxHealth,
			MaxArmor:       e.tun.PlayerMaxArmor,
			Money:          e.tun.StartingMoney,
			Weapons:        []*WeaponState{newWeaponState(pistol)},
			Throwable:      throwable,
			ThrowableCount: data.StartingThrowableCount,
			Stance:         StanceStanding,
		},
		BetweenWaves: true,
		Camera:       e.Map.PlayerStart,
	}
}

// SetViewport tells the engine how large the visible window is, in
// pixels. Camera clamping and mouse-to-world conversion depend on it.
func (e *Engine) SetViewport(w, h float64) {
	e.viewportW = w
	e.viewportH = h
}

// Clock returns the simulated time in milliseconds.
func (e *Engine) Clock() float64 { return e.clock }

// Seed returns the seed the current session started from.
func (e *Engine) Seed() int64 { return e.seed }

// TogglePause flips the pause flag. A paused engine ignores Update.
func (e *Engine) TogglePause() {
	if !e.State.GameOver {
		e.State.Paused = !e.State.Paused
	}
}

// Update advances the simulation by dtMs milliseconds under the given
// input snapshot. It is a no-op while paused or after game over.
func (e *Engine) Update(dtMs float64, in core.InputState) {
	if e.State.Paused || e.State.GameOver {
		return
	}
	e.clock += dtMs
	dt := dtMs / 1000

	e.updatePlayer(dt, in)
	e.updateBullets(dt)
	e.updateZombies(dt)
	e.updateGroundPowerUps()
	e.updateExplosions()
	e.updateGrenades(dt)
	e.updateWaves()
	e.expirePowerUps()
	e.updateCamera(dt)

	if in.Interact {
		if id, ok := e.NearestInteractable(); ok {
			e.BuyItem(id)
		}
	}
}

// MouseWorld converts a screen-space mouse position to world pixels.
func (e *Engine) MouseWorld(mouse core.Vec2) core.Vec2 {
	return core.V(
		mouse.X-e.viewportW/2+e.State.Camera.X,
		mouse.Y-e.viewportH/2+e.State.Camera.Y,
	)
}

func (e *Engine) updateCamera(dt float64) {
	cam := &e.State.Camera
	*cam = core.LerpVec(*cam, e.State.Player.Position, 5*dt)

	halfW := e.viewportW / 2
	halfH := e.viewportH / 2
	cam.X = core.ClampF(cam.X, halfW, mapgen.MapWidth-halfW)
	cam.Y = core.ClampF(cam.Y, halfH, mapgen.MapHeight-halfH)
}

// Status summarizes the session for HUDs and the scoreboard.
func (e *Engine) Status() core.SessionStatus {
	return core.SessionStatus{
		Score:    e.State.Score,
		Wave:     e.State.Wave,
		Kills:    e.State.ZombiesKilled,
		GameOver: e.State.GameOver,
		Paused:   e.State.Paused,
	}
}

func (e *Engine) id() int {
	e.nextID++
	return e.nextID
}
