package mapgen

import (
	"fmt"

	"github.com/vovakirdan/precinct-outbreak/internal/core"
	"github.com/vovakirdan/precinct-outbreak/internal/data"
)

// Door and mystery box pricing.
const (
	DoorBasePrice      = 750
	DoorPriceIncrement = 250
	MysteryBoxPrice    = 950
)

// builder accumulates the grid and door registry while the layout is
// stamped out. Door prices escalate with creation order.
type builder struct {
	tiles     [][]Tile
	doors     []*Door
	doorIndex int
}

func newBuilder() *builder {
	tiles := make([][]Tile, TilesY)
	for y := 0; y < TilesY; y++ {
		tiles[y] = make([]Tile, TilesX)
		for x := 0; x < TilesX; x++ {
			tiles[y][x] = Tile{X: x, Y: y, Type: TileFloor, Walkable: true}
		}
	}
	return &builder{tiles: tiles}
}

func (b *builder) set(x, y int, t TileType) {
	b.tiles[y][x] = Tile{X: x, Y: y, Type: t}
}

// wallRow stamps a horizontal wall run, inclusive on both ends.
func (b *builder) wallRow(y, x0, x1 int) {
	for x := x0; x <= x1; x++ {
		b.set(x, y, TileWall)
	}
}

// wallCol stamps a vertical wall run, inclusive on both ends.
func (b *builder) wallCol(x, y0, y1 int) {
	for y := y0; y <= y1; y++ {
		b.set(x, y, TileWall)
	}
}

func (b *builder) deskRow(y, x0, x1, step int) {
	for x := x0; x <= x1; x += step {
		b.set(x, y, TileDesk)
	}
}

// door places a locked door tile and registers the door. The tile stays
// non-walkable until the door is bought open.
func (b *builder) door(x, y int, room string) {
	d := &Door{
		ID:          fmt.Sprintf("door-%d", b.doorIndex),
		TileX:       x,
		TileY:       y,
		Position:    core.V(float64(x)*TileSize+TileSize/2, float64(y)*TileSize+TileSize/2),
		IsLocked:    true,
		Price:       DoorBasePrice + b.doorIndex*DoorPriceIncrement,
		UnlocksRoom: room,
	}
	b.doors = append(b.doors, d)
	b.doorIndex++
	b.tiles[y][x] = Tile{X: x, Y: y, Type: TileDoor, DoorID: d.ID}
}

// decorate converts a walkable tile to a decorative variant. Positions
// landing on walls or furniture are skipped.
func (b *builder) decorate(x, y int, t TileType) {
	if y < 0 || y >= TilesY || x < 0 || x >= TilesX {
		return
	}
	if !b.tiles[y][x].Walkable {
		return
	}
	b.tiles[y][x].Type = t
}

// Generate builds the precinct: a central lobby ringed by purchasable
// rooms, with every door, spawn point and interactable at a fixed spot.
// The layout is fully deterministic.
func Generate() *Map {
	b := newBuilder()

	// Outer walls
	b.wallRow(0, 0, TilesX-1)
	b.wallRow(TilesY-1, 0, TilesX-1)
	b.wallCol(0, 0, TilesY-1)
	b.wallCol(TilesX-1, 0, TilesY-1)

	// Reception desk across the lobby center
	for x := 32; x <= 42; x++ {
		b.set(x, 25, TileDesk)
	}

	// Holding cells, far left
	b.wallCol(18, 8, 25)
	b.wallRow(15, 1, 18)
	b.door(9, 15, "holding-upper")
	b.door(18, 20, "holding-lower")

	// Evidence room, far right
	b.wallCol(56, 8, 25)
	b.wallRow(15, 56, TilesX-2)
	b.door(65, 15, "evidence-upper")
	b.door(56, 20, "evidence-lower")

	// Office wing, top center
	b.wallRow(12, 22, 52)
	b.door(37, 12, "office")
	b.deskRow(5, 25, 49, 5)
	b.deskRow(8, 25, 49, 5)

	// Armory, bottom left
	b.wallCol(18, 38, 52)
	b.wallRow(38, 1, 18)
	b.door(9, 38, "armory")

	// SWAT room, bottom right
	b.wallCol(56, 38, 52)
	b.wallRow(38, 56, TilesX-2)
	b.door(65, 38, "swat")

	// Med bay, top right corner
	b.wallCol(56, 1, 10)
	b.door(56, 8, "medbay")

	// Records room, top left corner
	b.wallCol(18, 1, 10)
	b.door(18, 8, "records")

	// Garage, bottom center
	b.wallRow(42, 28, 46)
	b.door(37, 42, "garage")

	// Annex doors sealing off the outer corridors
	b.door(56, 53, "new-area")
	b.set(56, 54, TileWall)

	b.door(53, 12, "another-area")
	b.wallRow(12, 54, 55)

	b.door(21, 12, "third-area")
	b.wallRow(12, 19, 20)

	b.door(17, 25, "fourth-area")
	b.wallRow(25, 1, 16)

	b.door(73, 25, "fifth-area")
	b.wallRow(25, 57, 72)

	b.door(27, 42, "sixth-area")
	b.wallRow(42, 19, 26)

	b.door(55, 42, "seventh-area")
	b.wallRow(42, 47, 54)

	b.door(18, 53, "eighth-area")
	b.set(18, 54, TileWall)

	// Locker banks in the corner rooms
	for y := 2; y <= 5; y++ {
		b.set(TilesX-3, y, TileLocker)
		b.set(2, y, TileLocker)
	}

	for _, p := range [][2]int{
		{25, 30}, {45, 32}, {37, 35}, {22, 28}, {50, 28},
		{30, 45}, {44, 45}, {12, 22}, {62, 22},
	} {
		b.decorate(p[0], p[1], TileDebris)
	}
	for _, p := range [][2]int{
		{30, 35}, {42, 30}, {48, 38}, {10, 12}, {60, 45},
		{35, 20}, {8, 48}, {66, 12},
	} {
		b.decorate(p[0], p[1], TileBlood)
	}

	spawnPoints := []SpawnPoint{
		// Lobby points, live from wave one
		{Position: core.V(3233, 2412), RoomID: "main"},
		{Position: core.V(4326, 2028), RoomID: "main"},
		{Position: core.V(3237, 1755), RoomID: "main"},
		{Position: core.V(3233, 1058), RoomID: "main"},
		{Position: core.V(2209, 1246), RoomID: "main"},
		{Position: core.V(1572, 1826), RoomID: "main"},
		{Position: core.V(348, 1890), RoomID: "main"},
		{Position: core.V(1433, 2339), RoomID: "main"},

		// Room points, active once the matching door opens
		{Position: core.V(2400, 800), RoomID: "office"},
		{Position: core.V(3000, 800), RoomID: "office"},
		{Position: core.V(600, 1200), RoomID: "holding-upper"},
		{Position: core.V(600, 1800), RoomID: "holding-lower"},
		{Position: core.V(4200, 1200), RoomID: "evidence-upper"},
		{Position: core.V(4200, 1800), RoomID: "evidence-lower"},
		{Position: core.V(3938, 734), RoomID: "medbay"},
		{Position: core.V(600, 800), RoomID: "records"},
		{Position: core.V(990, 2660), RoomID: "armory"},
		{Position: core.V(3744, 3035), RoomID: "swat"},
		{Position: core.V(2400, 2700), RoomID: "garage"},

		{Position: core.V(3617, 3500), RoomID: "new-area"},
		{Position: core.V(3422, 900), RoomID: "another-area"},
		{Position: core.V(1369, 900), RoomID: "third-area"},
		{Position: core.V(1100, 1600), RoomID: "fourth-area"},
		{Position: core.V(4700, 1600), RoomID: "fifth-area"},
		{Position: core.V(1755, 2800), RoomID: "sixth-area"},
		{Position: core.V(3552, 2800), RoomID: "seventh-area"},
		{Position: core.V(1185, 3500), RoomID: "eighth-area"},
	}

	weaponSpawns := []WeaponSpawn{
		{Position: core.V(TileSize*30, TileSize*13), Weapon: data.WeaponAt(1)},
		{Position: core.V(TileSize*6, TileSize*45), Weapon: data.WeaponAt(2)},
		{Position: core.V(TileSize*68, TileSize*18), Weapon: data.WeaponAt(3)},
		{Position: core.V(TileSize*44, TileSize*13), Weapon: data.WeaponAt(4)},
	}

	shopItems := data.ShopItems()
	shopAreas := []ShopArea{
		{Position: core.V(TileSize*68, TileSize*5), Item: shopItems[0], AreaName: "MED BAY"},
		{Position: core.V(TileSize*8, TileSize*45), Item: shopItems[1], AreaName: "ARMORY"},
		{Position: core.V(TileSize*68, TileSize*45), Item: shopItems[2], AreaName: "SWAT SUPPLIES"},
	}

	vendingMachines := []*VendingMachine{
		{ID: "vm-1", Name: "Badge Boost", Position: core.V(TileSize*6, TileSize*6), Width: 64, Height: 96, Perk: data.PerkAt(0), Price: 2000},
		{ID: "vm-2", Name: "Quick Draw", Position: core.V(TileSize*68, TileSize*6), Width: 64, Height: 96, Perk: data.PerkAt(1), Price: 2500},
		{ID: "vm-3", Name: "Double Tap", Position: core.V(TileSize*6, TileSize*50), Width: 64, Height: 96, Perk: data.PerkAt(2), Price: 2000},
		{ID: "vm-4", Name: "Kevlar Cola", Position: core.V(TileSize*68, TileSize*50), Width: 64, Height: 96, Perk: data.PerkAt(3), Price: 3000},
	}

	box := &MysteryBox{
		ID:       "mystery-box",
		Position: core.V(MapWidth/2, MapHeight/2),
		Width:    80,
		Height:   48,
		Price:    MysteryBoxPrice,
	}

	return &Map{
		Tiles:           b.tiles,
		Doors:           b.doors,
		SpawnPoints:     spawnPoints,
		WeaponSpawns:    weaponSpawns,
		ShopAreas:       shopAreas,
		VendingMachines: vendingMachines,
		MysteryBox:      box,
		PlayerStart:     core.V(TileSize*37, TileSize*30),
	}
}
