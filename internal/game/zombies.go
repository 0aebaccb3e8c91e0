package game

import (
	"math"

	"github.com/vovakirdan/precinct-outbreak/internal/audio"
	"github.com/vovakirdan/precinct-outbreak/internal/core"
	"github.com/vovakirdan/precinct-outbreak/internal/data"
	"github.com/vovakirdan/precinct-outbreak/internal/mapgen"
)

// Deflection angles tried when the direct path to the player is blocked,
// nearest first.
var steerAngles = []float64{
	math.Pi / 6, -math.Pi / 6,
	math.Pi / 4, -math.Pi / 4,
	math.Pi / 3, -math.Pi / 3,
	math.Pi / 2, -math.Pi / 2,
}

func (e *Engine) updateZombies(dt float64) {
	p := &e.State.Player

	for _, z := range e.State.Zombies {
		if !z.Active {
			continue
		}

		toPlayer := p.Position.Sub(z.Position)
		dist := toPlayer.Length()

		if dist > z.Width/2+p.Width/2 {
			e.steerZombie(z, toPlayer.Normalize(), dt)
		}

		// Attack when in reach, on cooldown
		if z.Position.Distance(p.Position) < z.Width/2+p.Width/2+10 {
			if e.clock-z.LastAttackAt >= data.AttackCooldownMs {
				z.LastAttackAt = e.clock
				e.sink.Play(audio.SoundZombieAttack)
				e.damagePlayer(z.Damage)
			}
		}
	}
}

// steerZombie moves toward the player, deflecting around obstacles.
// When every deflection is blocked it tries a random half-speed step.
func (e *Engine) steerZombie(z *Zombie, dir core.Vec2, dt float64) {
	next := z.Position.Add(dir.Scale(z.Speed * dt))

	if !e.zombieFits(next, z.Width/2) {
		found := false
		base := dir.Angle()
		for _, offset := range steerAngles {
			alt := z.Position.Add(core.FromAngle(base + offset).Scale(z.Speed * dt))
			if e.zombieFits(alt, z.Width/2) {
				next = alt
				found = true
				break
			}
		}
		if !found {
			random := core.FromAngle(e.rng.Float64() * 2 * math.Pi)
			alt := z.Position.Add(random.Scale(z.Speed * dt * 0.5))
			if e.zombieFits(alt, z.Width/2) {
				next = alt
			}
		}
	}

	if e.zombieFits(next, z.Width/2) {
		z.Position = next
	}
}

// zombieFits is the zombie variant of the bounding box check: locked
// doors block, unlocked ones pass.
func (e *Engine) zombieFits(pos core.Vec2, radius float64) bool {
	if pos.X-radius < 0 || pos.X+radius > mapgen.MapWidth {
		return false
	}
	if pos.Y-radius < 0 || pos.Y+radius > mapgen.MapHeight {
		return false
	}
	for _, pt := range boundingSamples(pos, radius) {
		if !e.Map.ZombiePassableAt(pt) {
			return false
		}
	}
	return true
}

// damagePlayer routes incoming damage through the juggernaut perk and
// then armor before it reaches health.
func (e *Engine) damagePlayer(damage float64) {
	p := &e.State.Player

	if e.State.HasPerk(data.PerkJuggernaut) {
		damage *= 0.7
	}
	if p.Armor > 0 {
		absorbed := math.Min(p.Armor, damage*0.7)
		p.Armor -= absorbed
		damage -= absorbed
	}
	p.Health -= damage
	e.sink.Play(audio.SoundPlayerHit)

	if p.Health <= 0 {
		e.State.GameOver = true
	}
}

// killZombie retires a zombie and pays out score, money and drops.
func (e *Engine) killZombie(z *Zombie) {
	z.Active = false
	e.State.ZombiesKilled++

	points := data.StatsFor(z.Type).Points
	if e.State.HasPowerUp(data.PowerDoublePoints) {
		points *= 2
	}
	e.State.Score += points
	e.State.Player.Money += points / 10
	e.State.Stats.MoneyEarned += points / 10

	if e.rng.Float64() < e.tun.PowerUpDropChance {
		e.dropPowerUp(z.Position)
	}
}

// spawnZombie places a wave-scaled zombie on a random accessible spawn
// point. Stronger breeds unlock as waves climb.
func (e *Engine) spawnZombie() {
	if e.State.ZombiesRemaining <= 0 || len(e.accessible) == 0 {
		return
	}
	point := e.accessible[e.rng.Intn(len(e.accessible))]

	zombieType := data.ZombieWalker
	roll := e.rng.Float64()
	switch {
	case e.State.Wave >= 5 && roll < 0.1:
		zombieType = data.ZombieBrute
	case e.State.Wave >= 3 && roll < 0.3:
		zombieType = data.ZombieRunner
	case e.State.Wave >= 2 && roll < 0.2:
		zombieType = data.ZombieCrawler
	}

	stats := data.StatsFor(zombieType)
	healthScale := math.Pow(e.tun.HealthMultiplierPerWave, float64(e.State.Wave-1))

	e.State.Zombies = append(e.State.Zombies, &Zombie{
		ID:        e.id(),
		Type:      zombieType,
		Position:  point.Position,
		Width:     stats.Size,
		Height:    stats.Size,
		Health:    stats.Health * healthScale,
		MaxHealth: stats.Health * healthScale,
		Damage:    stats.Damage,
		Speed:     stats.Speed,
		Active:    true,
	})
	e.State.ZombiesRemaining--
}
