package game

import (
	"github.com/vovakirdan/precinct-outbreak/internal/audio"
	"github.com/vovakirdan/precinct-outbreak/internal/core"
	"github.com/vovakirdan/precinct-outbreak/internal/data"
)

// dropPowerUp places a random drop where a zombie died.
func (e *Engine) dropPowerUp(pos core.Vec2) {
	types := data.PowerUpTypes()
	e.State.PowerUps = append(e.State.PowerUps, &GroundPowerUp{
		ID:        e.id(),
		Type:      types[e.rng.Intn(len(types))],
		Position:  pos,
		Width:     powerUpSize,
		SpawnedAt: e.clock,
	})
}

// updateGroundPowerUps expires stale drops and collects touched ones.
func (e *Engine) updateGroundPowerUps() {
	p := &e.State.Player
	live := e.State.PowerUps[:0]
	for _, pu := range e.State.PowerUps {
		if e.clock-pu.SpawnedAt > e.tun.PowerUpGroundLifetimeMs {
			continue
		}
		if p.Position.Distance(pu.Position) < p.Width/2+pu.Width/2 {
			e.State.Stats.PowerUpsCollected++
			e.activatePowerUp(pu.Type)
			continue
		}
		live = append(live, pu)
	}
	e.State.PowerUps = live
}

// activatePowerUp applies a drop. Max-ammo and nuke fire instantly;
// every other type becomes a timed buff.
func (e *Engine) activatePowerUp(t data.PowerUpType) {
	e.sink.Play(audio.PowerUpSound(t))

	switch t {
	case data.PowerMaxAmmo:
		p := &e.State.Player
		for _, w := range p.Weapons {
			w.ReserveAmmo = w.Spec.MaxReserve
		}
		p.ThrowableCount = p.Throwable.MaxCount
	case data.PowerNuke:
		for _, z := range e.State.Zombies {
			if z.Active {
				e.killZombie(z)
			}
		}
	default:
		e.State.ActivePowerUps = append(e.State.ActivePowerUps, ActivePowerUp{
			Type:   t,
			EndsAt: e.clock + e.tun.PowerUpDurationMs,
		})
	}
}

// expirePowerUps drops timed buffs whose window closed.
func (e *Engine) expirePowerUps() {
	live := e.State.ActivePowerUps[:0]
	for _, p := range e.State.ActivePowerUps {
		if p.EndsAt > e.clock {
			live = append(live, p)
		}
	}
	e.State.ActivePowerUps = live
}
