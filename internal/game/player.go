package game

import (
	"github.com/vovakirdan/precinct-outbreak/internal/audio"
	"github.com/vovakirdan/precinct-outbreak/internal/core"
	"github.com/vovakirdan/precinct-outbreak/internal/data"
	"github.com/vovakirdan/precinct-outbreak/internal/mapgen"
)

func (e *Engine) updatePlayer(dt float64, in core.InputState) {
	p := &e.State.Player
	dtMs := dt * 1000

	if p.RollCooldownMs > 0 {
		p.RollCooldownMs -= dtMs
	}
	if p.KnifeCooldownMs > 0 {
		p.KnifeCooldownMs -= dtMs
	}

	if p.IsRolling {
		if e.clock >= p.RollEndsAt {
			p.IsRolling = false
		} else {
			next := p.Position.Add(p.RollDirection.Scale(e.tun.RollSpeed * dt))
			if e.playerFits(next, p.Width/2) {
				p.Position = next
			}
			return
		}
	}

	move := in.MoveDir()

	if in.Crouch {
		if p.Stance == StanceCrouching {
			p.Stance = StanceStanding
		} else {
			p.Stance = StanceCrouching
		}
	}
	if in.Prone {
		if p.Stance == StanceProne {
			p.Stance = StanceStanding
		} else {
			p.Stance = StanceProne
		}
	}

	if in.Roll && p.RollCooldownMs <= 0 && in.Moving() {
		p.IsRolling = true
		p.RollCooldownMs = e.tun.RollCooldownMs
		p.RollEndsAt = e.clock + e.tun.RollDurationMs
		p.RollDirection = move
		p.Stance = StanceStanding
		return
	}

	speed := e.tun.PlayerSpeed
	switch p.Stance {
	case StanceCrouching:
		speed = e.tun.CrouchSpeed
	case StanceProne:
		speed = e.tun.ProneSpeed
	}
	if e.State.HasPerk(data.PerkSpeedBoost) {
		speed *= 1.3
	}
	if e.State.HasPowerUp(data.PowerSpeedBoost) {
		speed *= 1.5
	}

	if in.Moving() {
		step := move.Scale(speed * dt)
		next := p.Position.Add(step)
		if e.playerFits(next, p.Width/2) {
			p.Position = next
		} else {
			// Slide along walls: try each axis on its own
			nextX := core.V(p.Position.X+step.X, p.Position.Y)
			nextY := core.V(p.Position.X, p.Position.Y+step.Y)
			if e.playerFits(nextX, p.Width/2) {
				p.Position = nextX
			} else if e.playerFits(nextY, p.Width/2) {
				p.Position = nextY
			}
		}
	}

	worldMouse := e.MouseWorld(in.Mouse)
	p.Rotation = worldMouse.Sub(p.Position).Angle()

	if in.Melee && p.KnifeCooldownMs <= 0 {
		p.KnifeCooldownMs = e.tun.KnifeCooldownMs
		p.KnifeFlashUntil = e.clock + knifeFlashMs
		e.knifeAttack()
	}

	if in.Fire {
		e.tryShoot()
	}

	e.finishReload(p.Weapon())
}

// playerFits samples the corners and edge midpoints of the bounding box
// of the player. Every sample must land on a walkable tile.
func (e *Engine) playerFits(pos core.Vec2, radius float64) bool {
	if pos.X-radius < 0 || pos.X+radius > mapgen.MapWidth {
		return false
	}
	if pos.Y-radius < 0 || pos.Y+radius > mapgen.MapHeight {
		return false
	}
	for _, pt := range boundingSamples(pos, radius) {
		if !e.Map.WalkableAt(pt) {
			return false
		}
	}
	return true
}

func boundingSamples(pos core.Vec2, radius float64) [8]core.Vec2 {
	return [8]core.Vec2{
		core.V(pos.X-radius, pos.Y-radius),
		core.V(pos.X+radius, pos.Y-radius),
		core.V(pos.X-radius, pos.Y+radius),
		core.V(pos.X+radius, pos.Y+radius),
		core.V(pos.X, pos.Y-radius),
		core.V(pos.X, pos.Y+radius),
		core.V(pos.X-radius, pos.Y),
		core.V(pos.X+radius, pos.Y),
	}
}

// StartReload begins reloading the current weapon. It refuses when a
// reload is running, the magazine is full or no reserve ammo is left.
func (e *Engine) StartReload() {
	w := e.State.Player.Weapon()
	if w == nil || w.IsReloading {
		return
	}
	if w.CurrentAmmo == w.Spec.MagazineSize || w.ReserveAmmo <= 0 {
		return
	}
	w.IsReloading = true
	w.ReloadStartedAt = e.clock
	e.sink.Play(audio.SoundReload)
}

// finishReload moves rounds from reserve into the magazine once the
// reload timer elapses. Reserve never goes negative.
func (e *Engine) finishReload(w *WeaponState) {
	if w == nil || !w.IsReloading {
		return
	}
	reloadTime := w.Spec.ReloadTimeMs
	if e.State.HasPerk(data.PerkQuickReload) {
		reloadTime *= 0.7
	}
	if e.clock-w.ReloadStartedAt < reloadTime {
		return
	}
	needed := w.Spec.MagazineSize - w.CurrentAmmo
	moved := core.Min(needed, w.ReserveAmmo)
	w.CurrentAmmo += moved
	w.ReserveAmmo -= moved
	w.IsReloading = false
}

// SwapWeapon cycles to the next carried weapon.
func (e *Engine) SwapWeapon() {
	p := &e.State.Player
	if len(p.Weapons) > 1 {
		p.CurrentWeapon = (p.CurrentWeapon + 1) % len(p.Weapons)
	}
}

// SwitchWeapon selects a weapon slot directly. Out-of-range indices are
// ignored.
func (e *Engine) SwitchWeapon(index int) {
	p := &e.State.Player
	if index >= 0 && index < len(p.Weapons) {
		p.CurrentWeapon = index
	}
}
