// Package mapgen builds the precinct layout the simulation runs on: the
// tile grid, the priced door registry, room-tagged spawn points and every
// interactable placement (weapon racks, supply shops, vending machines,
// the mystery box).
package mapgen

import (
	"github.com/vovakirdan/precinct-outbreak/internal/core"
	"github.com/vovakirdan/precinct-outbreak/internal/data"
)

// World dimensions in pixels and the tile grid derived from them.
const (
	MapWidth  = 4800
	MapHeight = 3600
	TileSize  = 64

	TilesX = MapWidth / TileSize
	TilesY = MapHeight / TileSize
)

// TileType classifies a grid cell.
type TileType string

// Tile types. Debris and blood are decorative floor variants.
const (
	TileFloor  TileType = "floor"
	TileWall   TileType = "wall"
	TileDesk   TileType = "desk"
	TileLocker TileType = "locker"
	TileDoor   TileType = "door"
	TileDebris TileType = "debris"
	TileBlood  TileType = "blood"
)

// Tile is a single grid cell. Door tiles reference their door by ID
// instead of carrying a payload; interaction objects live on the Map.
type Tile struct {
	X, Y     int
	Type     TileType
	Walkable bool
	DoorID   string // Non-empty only on door tiles
}

// Door gates a room behind a one-time payment. Unlocking is irreversible
// for the life of a session.
type Door struct {
	ID          string
	TileX       int
	TileY       int
	Position    core.Vec2
	IsLocked    bool
	Price       int
	UnlocksRoom string
}

// SpawnPoint is a zombie spawn location tagged with the room it belongs to.
// Points in the always-accessible hub carry the room id "main".
type SpawnPoint struct {
	Position core.Vec2
	RoomID   string
}

// WeaponSpawn is a wall rack selling a specific weapon.
type WeaponSpawn struct {
	Position core.Vec2
	Weapon   data.WeaponSpec
}

// ShopArea is a supply station selling a single shop item.
type ShopArea struct {
	Position core.Vec2
	Item     data.ShopItem
	AreaName string
}

// VendingMachine sells a perk exactly once per session.
type VendingMachine struct {
	ID        string
	Name      string
	Position  core.Vec2
	Width     float64
	Height    float64
	Perk      data.Perk
	Price     int
	Purchased bool
}

// MysteryBox is the repeatable pay/spin/collect weapon dispenser.
// The engine drives its state; OpenedAt is on the engine's game clock.
type MysteryBox struct {
	ID              string
	Position        core.Vec2
	Width           float64
	Height          float64
	Price           int
	IsOpen          bool
	OpenedAt        float64
	CurrentWeaponID string
}

// Map is the immutable-once-built world the engine reasons about.
// The only post-generation mutations are door unlocks (tile walkability
// flip), vending machine purchases and mystery box cycling.
type Map struct {
	Tiles           [][]Tile // Indexed [y][x]
	Doors           []*Door
	SpawnPoints     []SpawnPoint
	WeaponSpawns    []WeaponSpawn
	ShopAreas       []ShopArea
	VendingMachines []*VendingMachine
	MysteryBox      *MysteryBox
	PlayerStart     core.Vec2
}

// TileAt returns the tile at grid coordinates, or false when out of bounds.
func (m *Map) TileAt(tx, ty int) (Tile, bool) {
	if ty < 0 || ty >= len(m.Tiles) || tx < 0 || tx >= len(m.Tiles[ty]) {
		return Tile{}, false
	}
	return m.Tiles[ty][tx], true
}

// TileAtWorld returns the tile covering a world position.
func (m *Map) TileAtWorld(pos core.Vec2) (Tile, bool) {
	return m.TileAt(int(pos.X)/TileSize, int(pos.Y)/TileSize)
}

// WalkableAt reports whether a world position lies on a walkable tile.
// Out-of-grid positions fail safe toward blocking.
func (m *Map) WalkableAt(pos core.Vec2) bool {
	tile, ok := m.TileAtWorld(pos)
	return ok && tile.Walkable
}

// ZombiePassableAt reports whether a zombie may occupy a world position.
// Zombies are blocked by walls, desks, lockers and locked doors, but may
// cross unlocked doors and decorative tiles.
func (m *Map) ZombiePassableAt(pos core.Vec2) bool {
	tile, ok := m.TileAtWorld(pos)
	if !ok {
		return false
	}
	switch tile.Type {
	case TileWall, TileDesk, TileLocker:
		return false
	case TileDoor:
		door := m.DoorByID(tile.DoorID)
		return door != nil && !door.IsLocked
	}
	return true
}

// DoorByID looks up a door by its identifier, nil when unknown.
func (m *Map) DoorByID(id string) *Door {
	for _, d := range m.Doors {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// Unlock marks a door unlocked and flips its tile walkable. It is a no-op
// for already-unlocked doors; doors never re-lock.
func (m *Map) Unlock(door *Door) {
	if door == nil || !door.IsLocked {
		return
	}
	door.IsLocked = false
	if door.TileY >= 0 && door.TileY < len(m.Tiles) && door.TileX >= 0 && door.TileX < len(m.Tiles[door.TileY]) {
		m.Tiles[door.TileY][door.TileX].Walkable = true
	}
}
