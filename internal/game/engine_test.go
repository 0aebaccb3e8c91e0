package game

import (
	"testing"

	"github.com/vovakirdan/precinct-outbreak/internal/core"
	"github.com/vovakirdan/precinct-outbreak/internal/data"
)

func newTestEngine(seed int64) *Engine {
	e := New(DefaultTuning(), seed, nil)
	e.SetViewport(800, 600)
	return e
}

func idle() core.InputState {
	return core.InputState{}
}

func run(e *Engine, frames int, in core.InputState) {
	for i := 0; i < frames; i++ {
		e.Update(16, in)
	}
}

func TestInitialState(t *testing.T) {
	e := newTestEngine(1)
	p := &e.State.Player

	if p.Money != 500 {
		t.Errorf("starting money = %d, want 500", p.Money)
	}
	if p.Health != 100 || p.MaxHealth != 100 {
		t.Errorf("health %v/%v, want 100/100", p.Health, p.MaxHealth)
	}
	if p.Armor != 0 {
		t.Errorf("starting armor = %v, want 0", p.Armor)
	}
	if len(p.Weapons) != 1 || p.Weapons[0].Spec.ID != data.StartingPistolID {
		t.Fatalf("expected a single starting pistol")
	}
	w := p.Weapons[0]
	if w.CurrentAmmo != 8 || w.ReserveAmmo != 96 {
		t.Errorf("pistol ammo %d/%d, want 8/96", w.CurrentAmmo, w.ReserveAmmo)
	}
	if p.ThrowableCount != 2 {
		t.Errorf("throwables = %d, want 2", p.ThrowableCount)
	}
	if !e.State.BetweenWaves || e.State.Wave != 0 {
		t.Error("session should start in the pre-wave break")
	}
	if p.Position != e.Map.PlayerStart {
		t.Error("player not at map start")
	}
}

func TestFirstWaveStartsImmediately(t *testing.T) {
	e := newTestEngine(1)
	e.Update(16, idle())
	if e.State.Wave != 1 {
		t.Fatalf("wave = %d after first update, want 1", e.State.Wave)
	}
	if e.State.ZombiesRemaining != 10 {
		t.Errorf("wave 1 quota = %d, want 10", e.State.ZombiesRemaining)
	}
	if e.State.BetweenWaves {
		t.Error("still between waves")
	}
}

func TestWaveQuotaGrowth(t *testing.T) {
	e := newTestEngine(1)
	for wave, want := range map[int]int{1: 10, 2: 15, 3: 20, 10: 55} {
		if got := e.WaveQuota(wave); got != want {
			t.Errorf("quota(wave %d) = %d, want %d", wave, got, want)
		}
	}
}

func TestZombiesSpawnOverTime(t *testing.T) {
	e := newTestEngine(7)
	// Wave 1 spawn interval is 1900ms; 4 seconds fits at least two spawns
	run(e, 250, idle())
	if len(e.State.Zombies) == 0 {
		t.Fatal("no zombies spawned after 4 seconds")
	}
	for _, z := range e.State.Zombies {
		if z.Health <= 0 || z.Speed <= 0 {
			t.Errorf("zombie %d spawned with bad stats: %+v", z.ID, z)
		}
	}
}

func TestWaveEndsOnlyWhenFieldClear(t *testing.T) {
	e := newTestEngine(5)
	e.Update(16, idle())
	quota := e.WaveQuota(1)

	// Kill every zombie the moment it appears. The wave must still not
	// close on the tick that spawns its final zombie.
	for frames := 0; !e.State.BetweenWaves; frames++ {
		if frames > 5000 {
			t.Fatal("wave 1 never completed")
		}
		for _, z := range e.State.Zombies {
			if z.Active {
				e.killZombie(z)
			}
		}
		e.Update(16, idle())
		if e.State.BetweenWaves && e.State.AliveZombies() != 0 {
			t.Fatalf("wave ended with %d zombies alive", e.State.AliveZombies())
		}
	}

	if e.State.ZombiesKilled != quota {
		t.Errorf("kills = %d, want the full quota %d", e.State.ZombiesKilled, quota)
	}
	if e.State.ZombiesRemaining != 0 {
		t.Errorf("zombies remaining = %d after wave end, want 0", e.State.ZombiesRemaining)
	}
}

func TestFiringConsumesAmmoAndSpawnsBullet(t *testing.T) {
	e := newTestEngine(1)
	in := idle()
	in.Fire = true
	in.Mouse = core.V(700, 300)

	e.Update(16, in)
	w := e.State.Player.Weapon()
	if w.CurrentAmmo != 7 {
		t.Errorf("ammo = %d after one shot, want 7", w.CurrentAmmo)
	}
	if len(e.State.Bullets) != 1 {
		t.Fatalf("bullets = %d, want 1", len(e.State.Bullets))
	}

	// Next frame is inside the fire interval (250ms at 4 rps)
	e.Update(16, in)
	if w.CurrentAmmo != 7 {
		t.Errorf("fire interval not enforced, ammo = %d", w.CurrentAmmo)
	}
}

func TestShotgunFiresPellets(t *testing.T) {
	e := newTestEngine(1)
	shotgun, _ := data.WeaponByID("m870")
	e.State.Player.Weapons = []*WeaponState{newWeaponState(shotgun)}

	in := idle()
	in.Fire = true
	e.Update(16, in)

	w := e.State.Player.Weapon()
	if w.CurrentAmmo != shotgun.MagazineSize-1 {
		t.Errorf("one trigger pull should cost one shell, ammo = %d", w.CurrentAmmo)
	}
	if len(e.State.Bullets) != data.ShotgunPellets {
		t.Errorf("pellets = %d, want %d", len(e.State.Bullets), data.ShotgunPellets)
	}
}

func TestReloadConservesAmmo(t *testing.T) {
	e := newTestEngine(1)
	w := e.State.Player.Weapon()
	w.CurrentAmmo = 2
	total := w.CurrentAmmo + w.ReserveAmmo

	e.StartReload()
	if !w.IsReloading {
		t.Fatal("reload did not start")
	}
	// Pistol reload is 1500ms
	run(e, 100, idle())

	if w.IsReloading {
		t.Fatal("reload never finished")
	}
	if w.CurrentAmmo != w.Spec.MagazineSize {
		t.Errorf("magazine = %d, want %d", w.CurrentAmmo, w.Spec.MagazineSize)
	}
	if w.CurrentAmmo+w.ReserveAmmo != total {
		t.Errorf("reload changed total ammo: %d != %d", w.CurrentAmmo+w.ReserveAmmo, total)
	}
}

func TestReloadRefusals(t *testing.T) {
	e := newTestEngine(1)
	w := e.State.Player.Weapon()

	e.StartReload()
	if w.IsReloading {
		t.Error("full magazine should not reload")
	}

	w.CurrentAmmo = 3
	w.ReserveAmmo = 0
	e.StartReload()
	if w.IsReloading {
		t.Error("empty reserve should not reload")
	}
}

func TestKnifeConeHitsOnlyFacingTargets(t *testing.T) {
	e := newTestEngine(1)
	p := &e.State.Player
	p.Rotation = 0

	front := &Zombie{ID: 1, Type: data.ZombieWalker, Position: p.Position.Add(core.V(40, 0)), Width: 32, Health: 100, Active: true}
	behind := &Zombie{ID: 2, Type: data.ZombieWalker, Position: p.Position.Add(core.V(-40, 0)), Width: 32, Health: 100, Active: true}
	far := &Zombie{ID: 3, Type: data.ZombieWalker, Position: p.Position.Add(core.V(300, 0)), Width: 32, Health: 100, Active: true}
	e.State.Zombies = []*Zombie{front, behind, far}

	e.knifeAttack()

	if front.Health != 75 {
		t.Errorf("facing zombie health = %v, want 75", front.Health)
	}
	if behind.Health != 100 {
		t.Errorf("zombie behind player took damage: %v", behind.Health)
	}
	if far.Health != 100 {
		t.Errorf("out-of-range zombie took damage: %v", far.Health)
	}
}

func TestDamageOrderPerkThenArmor(t *testing.T) {
	e := newTestEngine(1)
	p := &e.State.Player
	p.Armor = 50

	e.damagePlayer(20)
	// Armor absorbs min(50, 14) = 14, health takes 6
	if p.Armor != 36 {
		t.Errorf("armor = %v, want 36", p.Armor)
	}
	if p.Health != 94 {
		t.Errorf("health = %v, want 94", p.Health)
	}

	e.State.ActivePerks = append(e.State.ActivePerks, data.PerkJuggernaut)
	e.damagePlayer(20)
	// Perk reduces to 14 first, armor absorbs 9.8, health takes 4.2
	if diff := p.Health - 89.8; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("health = %v, want 89.8", p.Health)
	}
}

func TestZombieAttackEndsGame(t *testing.T) {
	e := newTestEngine(1)
	p := &e.State.Player
	p.Health = 5
	z := &Zombie{
		ID: 1, Type: data.ZombieWalker,
		Position: p.Position.Add(core.V(30, 0)),
		Width:    32, Health: 100, Damage: 20, Speed: 60,
		LastAttackAt: -data.AttackCooldownMs,
		Active:       true,
	}
	e.State.Zombies = []*Zombie{z}

	e.Update(16, idle())
	if !e.State.GameOver {
		t.Fatal("lethal hit did not end the game")
	}

	// Updates after game over change nothing
	before := e.Clock()
	e.Update(16, idle())
	if e.Clock() != before {
		t.Error("clock advanced after game over")
	}
}

func TestKillRewardsAndDoublePoints(t *testing.T) {
	e := newTestEngine(1)
	money := e.State.Player.Money

	z := &Zombie{ID: 1, Type: data.ZombieBrute, Health: 1, Width: 48, Active: true}
	e.State.Zombies = []*Zombie{z}
	e.killZombie(z)

	if e.State.Score != 200 {
		t.Errorf("brute kill score = %d, want 200", e.State.Score)
	}
	if e.State.Player.Money != money+20 {
		t.Errorf("kill payout = %d, want 20", e.State.Player.Money-money)
	}
	if e.State.ZombiesKilled != 1 {
		t.Errorf("kill counter = %d", e.State.ZombiesKilled)
	}

	e.State.ActivePowerUps = append(e.State.ActivePowerUps, ActivePowerUp{Type: data.PowerDoublePoints, EndsAt: e.clock + 1000})
	z2 := &Zombie{ID: 2, Type: data.ZombieWalker, Health: 1, Width: 32, Active: true}
	e.State.Zombies = append(e.State.Zombies, z2)
	e.killZombie(z2)
	if e.State.Score != 400 {
		t.Errorf("double points score = %d, want 400", e.State.Score)
	}
}

func TestDoorPurchaseIsMonotone(t *testing.T) {
	e := newTestEngine(1)
	e.GivePlayerMoney(10000)
	money := e.State.Player.Money
	spawnsBefore := len(e.accessible)

	e.BuyItem("door-0")
	door := e.Map.DoorByID("door-0")
	if door.IsLocked {
		t.Fatal("door still locked after purchase")
	}
	if e.State.Player.Money != money-door.Price {
		t.Errorf("money = %d, want %d", e.State.Player.Money, money-door.Price)
	}
	if e.State.Stats.DoorsOpened != 1 {
		t.Errorf("doors opened = %d", e.State.Stats.DoorsOpened)
	}
	if len(e.accessible) <= spawnsBefore {
		t.Error("unlock did not extend accessible spawn points")
	}

	// Re-buying an open door is free and keeps it open
	money = e.State.Player.Money
	e.BuyItem("door-0")
	if e.State.Player.Money != money || door.IsLocked {
		t.Error("second purchase of an open door changed state")
	}
}

func TestPurchaseRefusedWhenBroke(t *testing.T) {
	e := newTestEngine(1)
	// Starting money is 500, the cheapest door costs 750
	e.BuyItem("door-0")
	if !e.Map.DoorByID("door-0").IsLocked {
		t.Fatal("unaffordable door opened")
	}
	if e.State.Player.Money != 500 {
		t.Errorf("money = %d, want 500", e.State.Player.Money)
	}
	if e.State.Player.Money < 0 {
		t.Error("money went negative")
	}
}

func TestWeaponPurchaseSlotCap(t *testing.T) {
	e := newTestEngine(1)
	e.GivePlayerMoney(10000)
	mp5, _ := data.WeaponByID("mp5")
	m4, _ := data.WeaponByID("m4a1")

	e.buyWeapon(mp5)
	if len(e.State.Player.Weapons) != 2 {
		t.Fatalf("weapons = %d, want 2", len(e.State.Player.Weapons))
	}

	// Third weapon replaces the one in hand (slot 0)
	e.buyWeapon(m4)
	p := &e.State.Player
	if len(p.Weapons) != 2 {
		t.Fatalf("weapons = %d after replacement, want 2", len(p.Weapons))
	}
	if p.Weapons[0].Spec.ID != "m4a1" {
		t.Errorf("slot 0 holds %q, want m4a1", p.Weapons[0].Spec.ID)
	}
}

func TestOwnedWeaponBuysHalfPriceAmmo(t *testing.T) {
	e := newTestEngine(1)
	e.GivePlayerMoney(10000)
	mp5, _ := data.WeaponByID("mp5")
	e.buyWeapon(mp5)

	owned := e.State.Player.Weapons[1]
	owned.ReserveAmmo = 10
	money := e.State.Player.Money

	e.buyWeapon(mp5)
	if owned.ReserveAmmo != mp5.MaxReserve {
		t.Errorf("reserve = %d, want %d", owned.ReserveAmmo, mp5.MaxReserve)
	}
	if spent := money - e.State.Player.Money; spent != mp5.Price/2 {
		t.Errorf("refill cost %d, want %d", spent, mp5.Price/2)
	}

	// Full reserve refuses the refill
	money = e.State.Player.Money
	e.buyWeapon(mp5)
	if e.State.Player.Money != money {
		t.Error("paid for a refill with a full reserve")
	}
}

func TestAmmoCrateTopsUpThrowables(t *testing.T) {
	e := newTestEngine(1)
	e.GivePlayerMoney(10000)
	p := &e.State.Player

	var crate data.ShopItem
	for _, item := range data.ShopItems() {
		if item.Type == data.ShopAmmo {
			crate = item
		}
	}
	if crate.ID == "" {
		t.Fatal("no ammo crate in the shop catalog")
	}

	// Starts at 2, each crate adds MaxCount, capped at the carry limit
	for i := 0; i < 5; i++ {
		e.buyShopItem(crate)
	}
	if p.ThrowableCount != data.ThrowableCarryCap {
		t.Errorf("throwables = %d, want the carry cap %d", p.ThrowableCount, data.ThrowableCarryCap)
	}
}

func TestVendingMachineSellsOnce(t *testing.T) {
	e := newTestEngine(1)
	e.GivePlayerMoney(10000)
	vm := e.Map.VendingMachines[0]

	e.buyPerk(vm)
	if !vm.Purchased || !e.State.HasPerk(vm.Perk.Effect) {
		t.Fatal("perk purchase did not apply")
	}

	money := e.State.Player.Money
	e.buyPerk(vm)
	if e.State.Player.Money != money {
		t.Error("vending machine sold twice")
	}
}

func TestMysteryBoxCycle(t *testing.T) {
	e := newTestEngine(1)
	e.GivePlayerMoney(10000)
	box := e.Map.MysteryBox
	money := e.State.Player.Money

	e.useMysteryBox()
	if !box.IsOpen || box.CurrentWeaponID == "" {
		t.Fatal("paying did not start a spin")
	}
	if e.State.Player.Money != money-box.Price {
		t.Errorf("spin cost %d, want %d", money-e.State.Player.Money, box.Price)
	}

	// Weapon is not collectible mid-spin
	e.useMysteryBox()
	if !box.IsOpen {
		t.Fatal("collected during the spin")
	}

	rolled := box.CurrentWeaponID
	e.clock += e.tun.MysteryBoxSpinMs
	e.useMysteryBox()
	if box.IsOpen || box.CurrentWeaponID != "" {
		t.Error("box did not close after collection")
	}
	found := false
	for _, w := range e.State.Player.Weapons {
		if w.Spec.ID == rolled {
			found = true
		}
	}
	if !found && rolled != data.StartingPistolID {
		t.Errorf("rolled weapon %q not in inventory", rolled)
	}
}

func TestMysteryBoxRefusedWhenBroke(t *testing.T) {
	e := newTestEngine(1)
	box := e.Map.MysteryBox

	// Starting money is 500, the box costs 950
	e.useMysteryBox()
	if box.IsOpen || box.CurrentWeaponID != "" {
		t.Fatal("unaffordable spin opened the box")
	}
	if e.State.Player.Money != 500 {
		t.Errorf("money = %d, want 500", e.State.Player.Money)
	}
	if e.State.Stats.MysteryBoxesOpened != 0 {
		t.Errorf("boxes opened = %d, want 0", e.State.Stats.MysteryBoxesOpened)
	}
}

func TestNukeKillsEverything(t *testing.T) {
	e := newTestEngine(1)
	for i := 0; i < 5; i++ {
		e.State.Zombies = append(e.State.Zombies, &Zombie{ID: i, Type: data.ZombieWalker, Health: 100, Width: 32, Active: true})
	}
	e.activatePowerUp(data.PowerNuke)

	if alive := e.State.AliveZombies(); alive != 0 {
		t.Errorf("%d zombies survived the nuke", alive)
	}
	if e.State.ZombiesKilled != 5 {
		t.Errorf("kills = %d, want 5", e.State.ZombiesKilled)
	}
}

func TestMaxAmmoRefillsEverything(t *testing.T) {
	e := newTestEngine(1)
	p := &e.State.Player
	p.Weapons[0].ReserveAmmo = 1
	p.ThrowableCount = 0

	e.activatePowerUp(data.PowerMaxAmmo)
	if p.Weapons[0].ReserveAmmo != p.Weapons[0].Spec.MaxReserve {
		t.Error("reserve not refilled")
	}
	if p.ThrowableCount != p.Throwable.MaxCount {
		t.Error("throwables not refilled")
	}
}

func TestTimedPowerUpExpires(t *testing.T) {
	e := newTestEngine(1)
	e.activatePowerUp(data.PowerInstaKill)
	if !e.State.HasPowerUp(data.PowerInstaKill) {
		t.Fatal("power-up not active")
	}

	e.clock += e.tun.PowerUpDurationMs + 1
	e.expirePowerUps()
	if e.State.HasPowerUp(data.PowerInstaKill) {
		t.Error("power-up outlived its window")
	}
}

func TestGrenadeDetonatesWithFalloff(t *testing.T) {
	e := newTestEngine(1)
	p := &e.State.Player
	near := &Zombie{ID: 1, Type: data.ZombieWalker, Position: p.Position.Add(core.V(10, 0)), Width: 32, Health: 1000, Active: true}
	e.State.Zombies = []*Zombie{near}

	// Viewport center maps the screen midpoint onto the camera position,
	// which starts on the player, so the grenade lands at its feet.
	e.ThrowGrenade(core.V(400, 300))
	if e.State.Player.ThrowableCount != 1 {
		t.Errorf("throwables = %d, want 1", e.State.Player.ThrowableCount)
	}
	e.updateGrenades(0.016)

	if len(e.State.Grenades) != 0 {
		t.Fatal("grenade did not detonate at its target")
	}
	if len(e.State.Explosions) != 1 {
		t.Fatal("no explosion recorded")
	}
	if near.Health >= 1000 {
		t.Error("zombie in blast radius unharmed")
	}

	e.ThrowGrenade(core.V(400, 300))
	e.ThrowGrenade(core.V(400, 300))
	if e.State.Player.ThrowableCount != 0 {
		t.Fatalf("throwables = %d, want 0", e.State.Player.ThrowableCount)
	}
	e.updateGrenades(0.016)
	e.ThrowGrenade(core.V(400, 300))
	if len(e.State.Grenades) != 0 {
		t.Error("threw a grenade with an empty pouch")
	}
}

func TestRollLifecycle(t *testing.T) {
	e := newTestEngine(1)
	in := idle()
	in.MoveX = 1
	in.Roll = true

	e.Update(16, in)
	p := &e.State.Player
	if !p.IsRolling {
		t.Fatal("roll did not start")
	}
	if p.RollCooldownMs <= 0 {
		t.Error("roll cooldown not armed")
	}

	// 500ms duration at 16ms per frame
	run(e, 40, idle())
	if p.IsRolling {
		t.Error("roll never ended")
	}
}

func TestStanceTogglesAndSpeeds(t *testing.T) {
	e := newTestEngine(1)
	p := &e.State.Player

	in := idle()
	in.Crouch = true
	e.Update(16, in)
	if p.Stance != StanceCrouching {
		t.Fatalf("stance = %q, want crouching", p.Stance)
	}
	e.Update(16, in)
	if p.Stance != StanceStanding {
		t.Fatalf("second toggle: stance = %q, want standing", p.Stance)
	}

	in = idle()
	in.Prone = true
	e.Update(16, in)
	if p.Stance != StanceProne {
		t.Fatalf("stance = %q, want prone", p.Stance)
	}
}

func TestPauseFreezesClock(t *testing.T) {
	e := newTestEngine(1)
	run(e, 10, idle())
	e.TogglePause()

	before := e.Clock()
	run(e, 10, idle())
	if e.Clock() != before {
		t.Error("clock advanced while paused")
	}

	e.TogglePause()
	run(e, 1, idle())
	if e.Clock() == before {
		t.Error("clock frozen after unpause")
	}
}

func TestDeterministicReplay(t *testing.T) {
	script := func(frame int) core.InputState {
		in := core.InputState{Mouse: core.V(500, 200)}
		if frame%3 == 0 {
			in.MoveX = 1
		}
		if frame%5 == 0 {
			in.Fire = true
		}
		return in
	}

	a := newTestEngine(99)
	b := newTestEngine(99)
	for i := 0; i < 400; i++ {
		a.Update(16, script(i))
		b.Update(16, script(i))
	}

	if a.State.Score != b.State.Score {
		t.Errorf("scores diverged: %d vs %d", a.State.Score, b.State.Score)
	}
	if a.State.Player.Position != b.State.Player.Position {
		t.Errorf("positions diverged: %v vs %v", a.State.Player.Position, b.State.Player.Position)
	}
	if len(a.State.Zombies) != len(b.State.Zombies) {
		t.Errorf("zombie counts diverged: %d vs %d", len(a.State.Zombies), len(b.State.Zombies))
	}
	for i := range a.State.Zombies {
		if a.State.Zombies[i].Position != b.State.Zombies[i].Position {
			t.Fatalf("zombie %d diverged", i)
		}
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	e := newTestEngine(5)
	run(e, 200, idle())
	e.GivePlayerMoney(5000)
	e.BuyItem("door-0")

	e.Reset(5)
	if e.State.Player.Money != 500 || e.State.Wave != 0 {
		t.Error("reset kept session progress")
	}
	if !e.Map.DoorByID("door-0").IsLocked {
		t.Error("reset kept opened doors")
	}
	if e.Clock() != 0 {
		t.Error("reset kept the clock")
	}
}

func TestCameraClampsToMap(t *testing.T) {
	e := newTestEngine(1)
	e.State.Player.Position = core.V(10, 10)
	for i := 0; i < 200; i++ {
		e.updateCamera(0.016)
	}
	if e.State.Camera.X < 400 || e.State.Camera.Y < 300 {
		t.Errorf("camera left the map: %v", e.State.Camera)
	}
}

func TestStatusSnapshot(t *testing.T) {
	e := newTestEngine(1)
	e.State.Score = 1234
	e.State.Wave = 3
	e.State.ZombiesKilled = 17

	st := e.Status()
	if st.Score != 1234 || st.Wave != 3 || st.Kills != 17 {
		t.Errorf("status = %+v", st)
	}
}
