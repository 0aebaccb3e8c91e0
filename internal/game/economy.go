package game

import (
	"github.com/vovakirdan/precinct-outbreak/internal/audio"
	"github.com/vovakirdan/precinct-outbreak/internal/core"
	"github.com/vovakirdan/precinct-outbreak/internal/data"
	"github.com/vovakirdan/precinct-outbreak/internal/mapgen"
)

// NearestInteractable returns the ID of the closest door, shop, weapon
// rack, vending machine or mystery box within interaction range.
func (e *Engine) NearestInteractable() (string, bool) {
	pos := e.State.Player.Position
	bestID := ""
	bestDist := float64(interactRange)

	consider := func(id string, p core.Vec2) {
		if d := pos.Distance(p); d < bestDist {
			bestDist = d
			bestID = id
		}
	}

	for _, d := range e.Map.Doors {
		if d.IsLocked {
			consider(d.ID, d.Position)
		}
	}
	for _, shop := range e.Map.ShopAreas {
		consider(shop.Item.ID, shop.Position)
	}
	for _, spawn := range e.Map.WeaponSpawns {
		consider(spawn.Weapon.ID, spawn.Position)
	}
	for _, vm := range e.Map.VendingMachines {
		consider(vm.ID, vm.Position)
	}
	consider(e.Map.MysteryBox.ID, e.Map.MysteryBox.Position)

	return bestID, bestID != ""
}

// BuyItem attempts a purchase by interactable ID. Resolution order is
// doors, shops, weapon racks, vending machines, then the mystery box.
// Purchases the player cannot afford are silently refused.
func (e *Engine) BuyItem(itemID string) {
	p := &e.State.Player

	if door := e.Map.DoorByID(itemID); door != nil && door.IsLocked {
		if p.Money < door.Price {
			return
		}
		e.spend(door.Price)
		e.Map.Unlock(door)
		e.State.Stats.DoorsOpened++
		e.sink.Play(audio.SoundBuy)
		e.sink.Play(audio.SoundDoor)
		// New rooms mean new spawn points
		e.refreshAccessibleSpawns()
		return
	}

	for _, shop := range e.Map.ShopAreas {
		if shop.Item.ID == itemID && p.Position.Distance(shop.Position) < interactRange {
			e.buyShopItem(shop.Item)
			return
		}
	}

	for _, spawn := range e.Map.WeaponSpawns {
		if spawn.Weapon.ID == itemID && p.Position.Distance(spawn.Position) < interactRange {
			e.buyWeapon(spawn.Weapon)
			return
		}
	}

	for _, vm := range e.Map.VendingMachines {
		if vm.ID == itemID && p.Position.Distance(vm.Position) < interactRange {
			e.buyPerk(vm)
			return
		}
	}

	if itemID == e.Map.MysteryBox.ID && p.Position.Distance(e.Map.MysteryBox.Position) < interactRange {
		e.useMysteryBox()
	}
}

func (e *Engine) buyShopItem(item data.ShopItem) {
	p := &e.State.Player
	if p.Money < item.Price {
		return
	}

	switch item.Type {
	case data.ShopHealth:
		if p.Health >= p.MaxHealth {
			return
		}
		e.spend(item.Price)
		p.Health = p.MaxHealth
	case data.ShopArmor:
		if p.Armor >= p.MaxArmor {
			return
		}
		e.spend(item.Price)
		p.Armor = p.MaxArmor
	case data.ShopAmmo:
		e.spend(item.Price)
		for _, w := range p.Weapons {
			w.ReserveAmmo = w.Spec.MaxReserve
		}
		p.ThrowableCount = core.Min(p.ThrowableCount+p.Throwable.MaxCount, data.ThrowableCarryCap)
	default:
		return
	}
	e.sink.Play(audio.SoundBuy)
}

// buyWeapon sells a rack weapon. Owning it already converts the buy
// into a half-price ammo refill. Carrying two weapons replaces the one
// in hand.
func (e *Engine) buyWeapon(spec data.WeaponSpec) {
	p := &e.State.Player

	for _, w := range p.Weapons {
		if w.Spec.ID == spec.ID {
			refill := spec.Price / 2
			if p.Money < refill || w.ReserveAmmo >= w.Spec.MaxReserve {
				return
			}
			e.spend(refill)
			w.ReserveAmmo = w.Spec.MaxReserve
			e.sink.Play(audio.SoundBuy)
			return
		}
	}

	if p.Money < spec.Price {
		return
	}
	e.spend(spec.Price)
	e.sink.Play(audio.SoundBuy)
	e.giveWeapon(spec)
}

func (e *Engine) giveWeapon(spec data.WeaponSpec) {
	p := &e.State.Player
	if len(p.Weapons) < 2 {
		p.Weapons = append(p.Weapons, newWeaponState(spec))
	} else {
		p.Weapons[p.CurrentWeapon] = newWeaponState(spec)
	}
}

// buyPerk activates a vending machine perk. Each machine sells once and
// duplicate effects are refused.
func (e *Engine) buyPerk(vm *mapgen.VendingMachine) {
	p := &e.State.Player
	if vm.Purchased || e.State.HasPerk(vm.Perk.Effect) || p.Money < vm.Price {
		return
	}
	e.spend(vm.Price)
	vm.Purchased = true
	e.State.ActivePerks = append(e.State.ActivePerks, vm.Perk.Effect)
	e.sink.Play(audio.SoundVending)
}

// useMysteryBox pays to start a spin or, once the spin settles, hands
// over the rolled weapon and closes the box.
func (e *Engine) useMysteryBox() {
	p := &e.State.Player
	box := e.Map.MysteryBox

	if box.IsOpen && box.CurrentWeaponID != "" {
		if e.clock-box.OpenedAt >= e.tun.MysteryBoxSpinMs {
			if spec, ok := data.WeaponByID(box.CurrentWeaponID); ok {
				e.giveWeapon(spec)
			}
			box.IsOpen = false
			box.CurrentWeaponID = ""
		}
		return
	}

	if !box.IsOpen {
		if p.Money < box.Price {
			return
		}
		e.spend(box.Price)
		e.State.Stats.MysteryBoxesOpened++
		box.IsOpen = true
		box.OpenedAt = e.clock
		box.CurrentWeaponID = data.WeaponAt(e.rng.Intn(data.WeaponCount())).ID
	}
}

// GivePlayerMoney adds to the wallet. Used by debug tooling and tests.
func (e *Engine) GivePlayerMoney(amount int) {
	e.State.Player.Money += amount
	e.State.Stats.MoneyEarned += amount
}

func (e *Engine) spend(amount int) {
	e.State.Player.Money -= amount
	e.State.Stats.MoneySpent += amount
}
