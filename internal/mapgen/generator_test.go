package mapgen

import (
	"testing"

	"github.com/vovakirdan/precinct-outbreak/internal/core"
)

func TestGenerateGridDimensions(t *testing.T) {
	m := Generate()
	if len(m.Tiles) != TilesY {
		t.Fatalf("expected %d rows, got %d", TilesY, len(m.Tiles))
	}
	for y, row := range m.Tiles {
		if len(row) != TilesX {
			t.Fatalf("row %d: expected %d tiles, got %d", y, TilesX, len(row))
		}
	}
}

func TestGenerateBorderWalls(t *testing.T) {
	m := Generate()
	for x := 0; x < TilesX; x++ {
		if m.Tiles[0][x].Type != TileWall || m.Tiles[TilesY-1][x].Type != TileWall {
			t.Fatalf("border not walled at column %d", x)
		}
	}
	for y := 0; y < TilesY; y++ {
		if m.Tiles[y][0].Type != TileWall || m.Tiles[y][TilesX-1].Type != TileWall {
			t.Fatalf("border not walled at row %d", y)
		}
	}
}

func TestDoorPricesEscalate(t *testing.T) {
	m := Generate()
	if len(m.Doors) != 18 {
		t.Fatalf("expected 18 doors, got %d", len(m.Doors))
	}
	for i, d := range m.Doors {
		want := DoorBasePrice + i*DoorPriceIncrement
		if d.Price != want {
			t.Errorf("door %s: price %d, want %d", d.ID, d.Price, want)
		}
		if !d.IsLocked {
			t.Errorf("door %s starts unlocked", d.ID)
		}
		tile := m.Tiles[d.TileY][d.TileX]
		if tile.Type != TileDoor || tile.Walkable {
			t.Errorf("door %s: tile is %q walkable=%v", d.ID, tile.Type, tile.Walkable)
		}
		if tile.DoorID != d.ID {
			t.Errorf("door %s: tile references %q", d.ID, tile.DoorID)
		}
	}
}

func TestUnlockOpensTile(t *testing.T) {
	m := Generate()
	d := m.DoorByID("door-4")
	if d == nil {
		t.Fatal("door-4 missing")
	}
	if d.UnlocksRoom != "office" {
		t.Fatalf("door-4 unlocks %q", d.UnlocksRoom)
	}
	if m.WalkableAt(d.Position) {
		t.Fatal("locked door walkable")
	}
	if m.ZombiePassableAt(d.Position) {
		t.Fatal("locked door passable for zombies")
	}
	m.Unlock(d)
	if d.IsLocked {
		t.Fatal("door still locked after unlock")
	}
	if !m.WalkableAt(d.Position) {
		t.Fatal("unlocked door not walkable")
	}
	if !m.ZombiePassableAt(d.Position) {
		t.Fatal("unlocked door not passable for zombies")
	}
	// Unlocking again is a no-op
	m.Unlock(d)
	if d.IsLocked {
		t.Fatal("door re-locked")
	}
}

func TestMainSpawnPointsPresent(t *testing.T) {
	m := Generate()
	var main int
	for _, sp := range m.SpawnPoints {
		if sp.RoomID == "main" {
			main++
			if !m.WalkableAt(sp.Position) {
				t.Errorf("main spawn at (%.0f,%.0f) not walkable", sp.Position.X, sp.Position.Y)
			}
		}
	}
	if main != 8 {
		t.Fatalf("expected 8 lobby spawn points, got %d", main)
	}
	if len(m.SpawnPoints) != 27 {
		t.Fatalf("expected 27 spawn points total, got %d", len(m.SpawnPoints))
	}
}

func TestEveryDoorHasSpawnRoom(t *testing.T) {
	m := Generate()
	rooms := make(map[string]bool)
	for _, sp := range m.SpawnPoints {
		rooms[sp.RoomID] = true
	}
	for _, d := range m.Doors {
		if !rooms[d.UnlocksRoom] {
			t.Errorf("door %s opens %q which has no spawn point", d.ID, d.UnlocksRoom)
		}
	}
}

func TestDecorationsStayWalkable(t *testing.T) {
	m := Generate()
	for y := range m.Tiles {
		for x := range m.Tiles[y] {
			tile := m.Tiles[y][x]
			if (tile.Type == TileDebris || tile.Type == TileBlood) && !tile.Walkable {
				t.Errorf("decorative tile at (%d,%d) not walkable", x, y)
			}
		}
	}
}

func TestPlacements(t *testing.T) {
	m := Generate()
	if len(m.WeaponSpawns) != 4 {
		t.Fatalf("expected 4 weapon racks, got %d", len(m.WeaponSpawns))
	}
	if m.WeaponSpawns[0].Weapon.ID != "mp5" {
		t.Errorf("office rack sells %q", m.WeaponSpawns[0].Weapon.ID)
	}
	if len(m.ShopAreas) != 3 || len(m.VendingMachines) != 4 {
		t.Fatalf("shops=%d vending=%d", len(m.ShopAreas), len(m.VendingMachines))
	}
	for _, vm := range m.VendingMachines {
		if vm.Purchased {
			t.Errorf("vending %s starts purchased", vm.ID)
		}
	}
	if m.MysteryBox == nil || m.MysteryBox.Price != MysteryBoxPrice {
		t.Fatal("mystery box missing or mispriced")
	}
	center := core.V(MapWidth/2, MapHeight/2)
	if m.MysteryBox.Position != center {
		t.Errorf("mystery box at (%.0f,%.0f)", m.MysteryBox.Position.X, m.MysteryBox.Position.Y)
	}
	if !m.WalkableAt(m.PlayerStart) {
		t.Fatal("player start not walkable")
	}
}

func TestOutOfBoundsBlocks(t *testing.T) {
	m := Generate()
	if m.WalkableAt(core.V(-10, 100)) {
		t.Fatal("negative position walkable")
	}
	if m.WalkableAt(core.V(MapWidth+5, 100)) {
		t.Fatal("beyond-map position walkable")
	}
	if m.ZombiePassableAt(core.V(100, MapHeight+5)) {
		t.Fatal("beyond-map position passable")
	}
}
