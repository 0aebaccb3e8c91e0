package game

import (
	"github.com/vovakirdan/precinct-outbreak/internal/audio"
	"github.com/vovakirdan/precinct-outbreak/internal/core"
	"github.com/vovakirdan/precinct-outbreak/internal/data"
)

// instaKillDamage overrides bullet damage while the insta-kill drop runs.
const instaKillDamage = 9999

// knifeAttack hits every zombie inside the melee cone: within range and
// less than 60 degrees off the aim direction.
func (e *Engine) knifeAttack() {
	p := &e.State.Player
	attackDir := core.FromAngle(p.Rotation)

	for _, z := range e.State.Zombies {
		if !z.Active {
			continue
		}
		toZombie := z.Position.Sub(p.Position)
		dist := toZombie.Length()
		if dist > e.tun.KnifeRange+z.Width/2 || dist == 0 {
			continue
		}
		if toZombie.Dot(attackDir)/dist > 0.5 {
			z.Health -= e.tun.KnifeDamage
			if z.Health <= 0 {
				e.killZombie(z)
			}
		}
	}
}

// tryShoot fires the current weapon if the fire interval has elapsed.
// An empty magazine auto-reloads instead of firing.
func (e *Engine) tryShoot() {
	p := &e.State.Player
	w := p.Weapon()
	if w == nil || w.IsReloading {
		return
	}

	fireRate := w.Spec.FireRate
	if e.State.HasPerk(data.PerkDoubleTap) {
		fireRate *= 1.5
	}
	if e.clock-w.LastFiredAt < 1000/fireRate {
		return
	}

	if w.CurrentAmmo <= 0 {
		e.StartReload()
		return
	}

	w.LastFiredAt = e.clock
	w.CurrentAmmo--
	e.sink.Play(audio.WeaponSound(w.Spec.Class))

	pellets := 1
	if w.Spec.Class == data.ClassShotgun {
		pellets = data.ShotgunPellets
	}
	for i := 0; i < pellets; i++ {
		angle := p.Rotation + (e.rng.Float64()-0.5)*w.Spec.Spread
		e.State.Bullets = append(e.State.Bullets, &Bullet{
			Position:    p.Position,
			Velocity:    core.FromAngle(angle).Scale(w.Spec.BulletSpeed),
			Width:       bulletSize,
			Damage:      w.Spec.Damage,
			Speed:       w.Spec.BulletSpeed,
			MaxDistance: w.Spec.Range,
		})
	}
}

// updateBullets advances projectiles, retiring them on range exhaustion,
// wall impact or the first zombie hit.
func (e *Engine) updateBullets(dt float64) {
	live := e.State.Bullets[:0]
	for _, b := range e.State.Bullets {
		b.Position = b.Position.Add(b.Velocity.Scale(dt))
		b.Traveled += b.Speed * dt

		if b.Traveled >= b.MaxDistance {
			continue
		}
		if !e.Map.WalkableAt(b.Position) {
			continue
		}
		if e.hitZombie(b) {
			continue
		}
		live = append(live, b)
	}
	e.State.Bullets = live
}

func (e *Engine) hitZombie(b *Bullet) bool {
	for _, z := range e.State.Zombies {
		if !z.Active {
			continue
		}
		if b.Position.Distance(z.Position) < z.Width/2+b.Width/2 {
			damage := b.Damage
			if e.State.HasPowerUp(data.PowerInstaKill) {
				damage = instaKillDamage
			}
			z.Health -= damage
			if z.Health <= 0 {
				e.killZombie(z)
			}
			e.sink.Play(audio.SoundZombieHit)
			return true
		}
	}
	return false
}

// ThrowGrenade lobs the equipped throwable toward the mouse position.
func (e *Engine) ThrowGrenade(mouse core.Vec2) {
	p := &e.State.Player
	if p.ThrowableCount <= 0 {
		return
	}
	p.ThrowableCount--
	e.State.Grenades = append(e.State.Grenades, &Grenade{
		ID:       e.id(),
		Position: p.Position,
		Target:   e.MouseWorld(mouse),
		Speed:    grenadeSpeed,
		Spec:     p.Throwable,
	})
}

// updateGrenades flies grenades toward their target point and detonates
// them on arrival.
func (e *Engine) updateGrenades(dt float64) {
	live := e.State.Grenades[:0]
	for _, g := range e.State.Grenades {
		toTarget := g.Target.Sub(g.Position)
		if toTarget.Length() < detonateRadius {
			e.detonate(g)
			continue
		}
		g.Position = g.Position.Add(toTarget.Normalize().Scale(g.Speed * dt))
		live = append(live, g)
	}
	e.State.Grenades = live
}

// detonate applies linear falloff damage inside the blast radius and
// records a short-lived explosion for rendering.
func (e *Engine) detonate(g *Grenade) {
	exp := &Explosion{
		ID:        e.id(),
		Position:  g.Position,
		Radius:    g.Spec.Radius,
		Damage:    g.Spec.Damage,
		Kind:      g.Spec.Type,
		StartedAt: e.clock,
		Duration:  explosionVisMs,
	}
	e.State.Explosions = append(e.State.Explosions, exp)
	e.sink.Play(audio.SoundExplosion)

	for _, z := range e.State.Zombies {
		if !z.Active {
			continue
		}
		dist := z.Position.Distance(exp.Position)
		if dist < exp.Radius+z.Width/2 {
			falloff := 1 - dist/exp.Radius
			if falloff < 0 {
				falloff = 0
			}
			z.Health -= exp.Damage * falloff
			if z.Health <= 0 {
				e.killZombie(z)
			}
		}
	}
}

func (e *Engine) updateExplosions() {
	live := e.State.Explosions[:0]
	for _, exp := range e.State.Explosions {
		if e.clock-exp.StartedAt < exp.Duration {
			live = append(live, exp)
		}
	}
	e.State.Explosions = live
}

// KnifeVisible reports whether the melee swing should render this frame.
func (e *Engine) KnifeVisible() bool {
	return e.clock < e.State.Player.KnifeFlashUntil
}
