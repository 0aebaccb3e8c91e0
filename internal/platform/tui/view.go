package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/precinct-outbreak/internal/core"
	"github.com/vovakirdan/precinct-outbreak/internal/data"
	"github.com/vovakirdan/precinct-outbreak/internal/game"
	"github.com/vovakirdan/precinct-outbreak/internal/mapgen"
)

// World pixels covered by one terminal cell. The vertical size is double
// the horizontal to compensate for the cell aspect ratio.
const (
	cellPxW = 16.0
	cellPxH = 32.0
)

// viewportPx converts a terminal size in cells to the engine viewport in
// world pixels.
func viewportPx(w, h int) (float64, float64) {
	return float64(w) * cellPxW, float64(h) * cellPxH
}

// drawSession renders the visible slice of the world plus the HUD into the
// screen buffer. aim is the cursor position in viewport pixels.
func drawSession(s *core.Screen, e *game.Engine, aim core.Vec2) {
	s.Clear()

	vw, vh := viewportPx(s.Width(), s.Height())
	topLeft := e.State.Camera.Sub(core.V(vw/2, vh/2))

	drawTiles(s, e, topLeft)
	drawPlacements(s, e, topLeft)
	drawEntities(s, e, topLeft)
	drawMinimap(s, e)
	drawCrosshair(s, aim)
	drawHUD(s, e)

	if e.State.GameOver {
		drawGameOver(s, e)
	} else if e.State.Paused {
		s.DrawTextCentered(s.Height()/2, "= PAUSED =")
		s.DrawTextCentered(s.Height()/2+1, "p resume | esc menu")
	}
}

// toCell projects a world position onto the screen grid.
func toCell(pos, topLeft core.Vec2) (int, int) {
	return int((pos.X - topLeft.X) / cellPxW), int((pos.Y - topLeft.Y) / cellPxH)
}

func drawTiles(s *core.Screen, e *game.Engine, topLeft core.Vec2) {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			sample := core.V(
				topLeft.X+(float64(x)+0.5)*cellPxW,
				topLeft.Y+(float64(y)+0.5)*cellPxH,
			)
			tile, ok := e.Map.TileAtWorld(sample)
			if !ok {
				continue
			}

			switch tile.Type {
			case mapgen.TileWall:
				s.SetCell(x, y, '#', core.ColorGray)
			case mapgen.TileDesk:
				s.SetCell(x, y, '=', core.ColorOrange)
			case mapgen.TileLocker:
				s.SetCell(x, y, 'H', core.ColorCyan)
			case mapgen.TileDoor:
				if door := e.Map.DoorByID(tile.DoorID); door != nil && door.IsLocked {
					s.SetCell(x, y, '+', core.ColorBrightYellow)
				} else {
					s.SetCell(x, y, '.', core.ColorGray)
				}
			case mapgen.TileDebris:
				s.SetCell(x, y, ',', core.ColorGray)
			case mapgen.TileBlood:
				s.SetCell(x, y, '~', core.ColorRed)
			}
		}
	}
}

func drawPlacements(s *core.Screen, e *game.Engine, topLeft core.Vec2) {
	for _, spawn := range e.Map.WeaponSpawns {
		x, y := toCell(spawn.Position, topLeft)
		s.SetCell(x, y, 'W', core.ColorBrightCyan)
	}
	for _, shop := range e.Map.ShopAreas {
		x, y := toCell(shop.Position, topLeft)
		s.SetCell(x, y, '$', core.ColorBrightGreen)
	}
	for _, vm := range e.Map.VendingMachines {
		x, y := toCell(vm.Position, topLeft)
		color := core.ColorBrightMagenta
		if vm.Purchased {
			color = core.ColorGray
		}
		s.SetCell(x, y, 'V', color)
	}

	box := e.Map.MysteryBox
	x, y := toCell(box.Position, topLeft)
	if box.IsOpen {
		s.SetCell(x, y, '!', core.ColorBrightYellow)
	} else {
		s.SetCell(x, y, '?', core.ColorBrightYellow)
	}
}

func drawEntities(s *core.Screen, e *game.Engine, topLeft core.Vec2) {
	for _, p := range e.State.PowerUps {
		x, y := toCell(p.Position, topLeft)
		s.SetCell(x, y, '*', core.ColorBrightYellow)
	}

	for _, g := range e.State.Grenades {
		x, y := toCell(g.Position, topLeft)
		s.SetCell(x, y, 'o', core.ColorOrange)
	}

	for _, ex := range e.State.Explosions {
		drawExplosion(s, ex, topLeft)
	}

	for _, b := range e.State.Bullets {
		x, y := toCell(b.Position, topLeft)
		s.SetCell(x, y, '\'', core.ColorBrightWhite)
	}

	for _, z := range e.State.Zombies {
		if !z.Active {
			continue
		}
		x, y := toCell(z.Position, topLeft)
		s.SetCell(x, y, zombieGlyph(z.Type), zombieColor(z.Type))
	}

	px, py := toCell(e.State.Player.Position, topLeft)
	s.SetCell(px, py, '@', core.ColorBrightWhite)
	if e.KnifeVisible() {
		dir := core.FromAngle(e.State.Player.Rotation)
		s.SetCell(px+int(dir.X*1.5), py+int(dir.Y*1.5), '/', core.ColorBrightWhite)
	}
}

func drawExplosion(s *core.Screen, ex *game.Explosion, topLeft core.Vec2) {
	cx, cy := toCell(ex.Position, topLeft)
	span := int(ex.Radius/cellPxW) + 1
	for dy := -span; dy <= span; dy++ {
		for dx := -span; dx <= span; dx++ {
			world := core.V(
				topLeft.X+(float64(cx+dx)+0.5)*cellPxW,
				topLeft.Y+(float64(cy+dy)+0.5)*cellPxH,
			)
			if world.Distance(ex.Position) <= ex.Radius {
				s.SetCell(cx+dx, cy+dy, '*', core.ColorBrightRed)
			}
		}
	}
}

func zombieGlyph(t data.ZombieType) rune {
	switch t {
	case data.ZombieRunner:
		return 'r'
	case data.ZombieBrute:
		return 'B'
	case data.ZombieCrawler:
		return 'c'
	default:
		return 'z'
	}
}

func zombieColor(t data.ZombieType) core.Color {
	switch t {
	case data.ZombieRunner:
		return core.ColorBrightGreen
	case data.ZombieBrute:
		return core.ColorBrightRed
	case data.ZombieCrawler:
		return core.ColorYellow
	default:
		return core.ColorGreen
	}
}

// Minimap dimensions in screen cells. The whole precinct is downsampled
// into this box, so each minimap cell covers several tiles.
const (
	minimapW = 20
	minimapH = 8
)

// minimapRect returns the framed minimap area in screen cells, or a zero
// rect when the terminal is too small to spare the corner.
func minimapRect(s *core.Screen) core.Rect {
	if s.Width() < minimapW*3 || s.Height() < minimapH*2 {
		return core.Rect{}
	}
	return core.NewRect(s.Width()-minimapW-3, 1, minimapW+2, minimapH+2)
}

// drawMinimap renders a station overview in the top-right corner: walls,
// locked doors and the player marker.
func drawMinimap(s *core.Screen, e *game.Engine) {
	frame := minimapRect(s)
	if frame.W == 0 {
		return
	}
	s.DrawRect(frame, ' ')
	s.DrawBox(frame)

	left := frame.X + 1
	top := frame.Y + 1

	for my := 0; my < minimapH; my++ {
		for mx := 0; mx < minimapW; mx++ {
			tx := mx * mapgen.TilesX / minimapW
			ty := my * mapgen.TilesY / minimapH
			tile, ok := e.Map.TileAt(tx, ty)
			if !ok {
				continue
			}

			switch tile.Type {
			case mapgen.TileWall, mapgen.TileDesk, mapgen.TileLocker:
				s.SetCell(left+mx, top+my, '#', core.ColorGray)
			case mapgen.TileDoor:
				if door := e.Map.DoorByID(tile.DoorID); door != nil && door.IsLocked {
					s.SetCell(left+mx, top+my, '+', core.ColorYellow)
				} else {
					s.SetCell(left+mx, top+my, '.', core.ColorGray)
				}
			default:
				s.SetCell(left+mx, top+my, '.', core.ColorGray)
			}
		}
	}

	px := int(e.State.Player.Position.X) * minimapW / mapgen.MapWidth
	py := int(e.State.Player.Position.Y) * minimapH / mapgen.MapHeight
	s.SetCell(left+core.Clamp(px, 0, minimapW-1), top+core.Clamp(py, 0, minimapH-1), '@', core.ColorBrightGreen)
}

// drawCrosshair marks the aim cell unless it would scribble over an
// entity glyph or the minimap.
func drawCrosshair(s *core.Screen, aim core.Vec2) {
	x := int(aim.X / cellPxW)
	y := int(aim.Y / cellPxH)
	if minimapRect(s).Contains(x, y) {
		return
	}
	if s.Get(x, y) == ' ' {
		s.SetCell(x, y, '+', core.ColorBrightCyan)
	}
}

func drawHUD(s *core.Screen, e *game.Engine) {
	st := e.State
	p := st.Player

	top := fmt.Sprintf(" HP %3.0f  AR %3.0f  $%-5d  Wave %d  Kills %d  Score %d",
		p.Health, p.Armor, p.Money, st.Wave, st.ZombiesKilled, st.Score)
	if st.BetweenWaves && st.Wave > 0 {
		top += "  [WAVE CLEARED]"
	}
	if len(st.ActivePowerUps) > 0 {
		names := make([]string, 0, len(st.ActivePowerUps))
		for _, ap := range st.ActivePowerUps {
			names = append(names, string(ap.Type))
		}
		top += "  <" + strings.Join(names, " ") + ">"
	}
	s.DrawTextColored(0, 0, top, core.ColorBrightWhite)

	w := p.Weapon()
	bottom := fmt.Sprintf(" %s %d/%d", w.Spec.Name, w.CurrentAmmo, w.ReserveAmmo)
	if w.IsReloading {
		bottom += " [RELOADING]"
	}
	bottom += fmt.Sprintf("  G:%d", p.ThrowableCount)
	if id, ok := e.NearestInteractable(); ok {
		bottom += "  | e: " + interactLabel(e, id)
	}
	s.DrawTextColored(0, s.Height()-1, bottom, core.ColorBrightWhite)
}

// interactLabel resolves an interactable ID to a short prompt.
func interactLabel(e *game.Engine, id string) string {
	if door := e.Map.DoorByID(id); door != nil {
		return fmt.Sprintf("open %s $%d", door.UnlocksRoom, door.Price)
	}
	for _, shop := range e.Map.ShopAreas {
		if shop.Item.ID == id {
			return fmt.Sprintf("buy %s $%d", shop.Item.Name, shop.Item.Price)
		}
	}
	for _, spawn := range e.Map.WeaponSpawns {
		if spawn.Weapon.ID == id {
			return fmt.Sprintf("buy %s $%d", spawn.Weapon.Name, spawn.Weapon.Price)
		}
	}
	for _, vm := range e.Map.VendingMachines {
		if vm.ID == id {
			return fmt.Sprintf("%s $%d", vm.Name, vm.Price)
		}
	}
	if id == e.Map.MysteryBox.ID {
		if e.Map.MysteryBox.IsOpen {
			return "collect weapon"
		}
		return fmt.Sprintf("mystery box $%d", e.Map.MysteryBox.Price)
	}
	return id
}

func drawGameOver(s *core.Screen, e *game.Engine) {
	mid := s.Height() / 2
	s.DrawTextCentered(mid-2, "=== YOU DIED ===")
	s.DrawTextCentered(mid, fmt.Sprintf("Score %d  Wave %d  Kills %d",
		e.State.Score, e.State.Wave, e.State.ZombiesKilled))
	s.DrawTextCentered(mid+2, "n new run | esc menu | ctrl+c quit")
}
