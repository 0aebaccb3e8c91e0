package game

import (
	"github.com/vovakirdan/precinct-outbreak/internal/core"
	"github.com/vovakirdan/precinct-outbreak/internal/data"
)

// Stance affects movement speed and profile.
type Stance string

const (
	StanceStanding  Stance = "standing"
	StanceCrouching Stance = "crouching"
	StanceProne     Stance = "prone"
)

// WeaponState is a carried weapon: the immutable spec plus ammo counters
// and reload/fire timers on the engine clock.
type WeaponState struct {
	Spec            data.WeaponSpec
	CurrentAmmo     int
	ReserveAmmo     int
	IsReloading     bool
	ReloadStartedAt float64
	LastFiredAt     float64
}

func newWeaponState(spec data.WeaponSpec) *WeaponState {
	return &WeaponState{
		Spec:        spec,
		CurrentAmmo: spec.MagazineSize,
		ReserveAmmo: spec.StartReserve,
		LastFiredAt: -1e9,
	}
}

// Player is the controlled survivor.
type Player struct {
	Position core.Vec2
	Width    float64
	Height   float64
	Rotation float64 // Aim angle in radians

	Health    float64
	MaxHealth float64
	Armor     float64
	MaxArmor  float64
	Money     int

	Weapons       []*WeaponState
	CurrentWeapon int
	Throwable     data.ThrowableSpec
	ThrowableCount int

	Stance          Stance
	IsRolling       bool
	RollDirection   core.Vec2
	RollEndsAt      float64
	RollCooldownMs  float64
	KnifeCooldownMs float64
	KnifeFlashUntil float64 // Clock time until which the knife swing renders
}

// Weapon returns the currently wielded weapon.
func (p *Player) Weapon() *WeaponState {
	if p.CurrentWeapon < 0 || p.CurrentWeapon >= len(p.Weapons) {
		return nil
	}
	return p.Weapons[p.CurrentWeapon]
}

// Zombie is a hostile walker chasing the player.
type Zombie struct {
	ID       int
	Type     data.ZombieType
	Position core.Vec2
	Width    float64
	Height   float64

	Health       float64
	MaxHealth    float64
	Damage       float64
	Speed        float64
	LastAttackAt float64
	Active       bool
}

// Bullet is a live projectile.
type Bullet struct {
	Position    core.Vec2
	Velocity    core.Vec2
	Width       float64
	Damage      float64
	Speed       float64
	MaxDistance float64
	Traveled    float64
}

// GroundPowerUp is a drop waiting on the floor.
type GroundPowerUp struct {
	ID        int
	Type      data.PowerUpType
	Position  core.Vec2
	Width     float64
	SpawnedAt float64
}

// ActivePowerUp is a timed buff currently applied to the session.
type ActivePowerUp struct {
	Type   data.PowerUpType
	EndsAt float64
}

// Grenade is a thrown explosive homing toward its target point.
type Grenade struct {
	ID       int
	Position core.Vec2
	Target   core.Vec2
	Speed    float64
	Spec     data.ThrowableSpec
}

// Explosion is a detonation, kept around briefly for rendering.
type Explosion struct {
	ID        int
	Position  core.Vec2
	Radius    float64
	Damage    float64
	Kind      data.ThrowableType
	StartedAt float64
	Duration  float64
}

// SessionStats accumulates per-run counters for the scoreboard.
type SessionStats struct {
	DoorsOpened        int
	MoneySpent         int
	MoneyEarned        int
	PowerUpsCollected  int
	MysteryBoxesOpened int
}

// State is the full mutable simulation state.
type State struct {
	Player     Player
	Zombies    []*Zombie
	Bullets    []*Bullet
	PowerUps   []*GroundPowerUp
	Grenades   []*Grenade
	Explosions []*Explosion

	Wave             int
	ZombiesRemaining int // Still to spawn this wave
	ZombiesKilled    int
	Score            int

	Paused        bool
	GameOver      bool
	BetweenWaves  bool
	WaveStartedAt float64

	ActivePerks    []data.PerkEffect
	ActivePowerUps []ActivePowerUp

	Camera core.Vec2
	Stats  SessionStats
}

// HasPerk reports whether a perk is active.
func (s *State) HasPerk(e data.PerkEffect) bool {
	for _, p := range s.ActivePerks {
		if p == e {
			return true
		}
	}
	return false
}

// HasPowerUp reports whether a timed power-up is active.
func (s *State) HasPowerUp(t data.PowerUpType) bool {
	for _, p := range s.ActivePowerUps {
		if p.Type == t {
			return true
		}
	}
	return false
}

// AliveZombies counts zombies still in play.
func (s *State) AliveZombies() int {
	n := 0
	for _, z := range s.Zombies {
		if z.Active {
			n++
		}
	}
	return n
}
