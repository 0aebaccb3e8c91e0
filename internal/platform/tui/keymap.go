package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/precinct-outbreak/internal/core"
)

// Action is a session action derived from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionFire
	ActionMelee
	ActionRoll
	ActionCrouch
	ActionProne
	ActionInteract
	ActionReload
	ActionSwapWeapon
	ActionSlot1
	ActionSlot2
	ActionGrenade
	ActionPause
	ActionRestart
	ActionQuit
	ActionBack
)

// KeyMapper translates Bubble Tea key messages to session actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "ctrl+c":
		return ActionQuit
	case "w", "up":
		return ActionMoveUp
	case "s", "down":
		return ActionMoveDown
	case "a", "left":
		return ActionMoveLeft
	case "d", "right":
		return ActionMoveRight
	case "j", "enter":
		return ActionFire
	case "v":
		return ActionMelee
	case " ":
		return ActionRoll
	case "c":
		return ActionCrouch
	case "z":
		return ActionProne
	case "e", "f":
		return ActionInteract
	case "r":
		return ActionReload
	case "q", "tab":
		return ActionSwapWeapon
	case "1":
		return ActionSlot1
	case "2":
		return ActionSlot2
	case "g":
		return ActionGrenade
	case "p":
		return ActionPause
	case "n":
		return ActionRestart
	case "b", "esc":
		return ActionBack
	}
	return ActionNone
}

// keyHold is how long a movement or fire key counts as held after a press.
// Terminals report presses but never releases; auto-repeat keeps the window
// refreshed while the key stays down.
const keyHold = 150 * time.Millisecond

// inputTracker accumulates key and mouse events between ticks and converts
// them into a per-frame InputState for the engine.
type inputTracker struct {
	upUntil    time.Time
	downUntil  time.Time
	leftUntil  time.Time
	rightUntil time.Time
	fireUntil  time.Time

	aim core.Vec2 // Cursor position in viewport pixels

	melee    bool
	crouch   bool
	prone    bool
	roll     bool
	interact bool
}

// Apply records a single action press at the given time.
func (t *inputTracker) Apply(a Action, now time.Time) {
	switch a {
	case ActionMoveUp:
		t.upUntil = now.Add(keyHold)
	case ActionMoveDown:
		t.downUntil = now.Add(keyHold)
	case ActionMoveLeft:
		t.leftUntil = now.Add(keyHold)
	case ActionMoveRight:
		t.rightUntil = now.Add(keyHold)
	case ActionFire:
		t.fireUntil = now.Add(keyHold)
	case ActionMelee:
		t.melee = true
	case ActionCrouch:
		t.crouch = true
	case ActionProne:
		t.prone = true
	case ActionRoll:
		t.roll = true
	case ActionInteract:
		t.interact = true
	}
}

// Frame builds the InputState for the current tick and clears the
// edge-triggered actions so they fire for exactly one frame.
func (t *inputTracker) Frame(now time.Time) core.InputState {
	in := core.InputState{
		Mouse:    t.aim,
		Fire:     now.Before(t.fireUntil),
		Melee:    t.melee,
		Crouch:   t.crouch,
		Prone:    t.prone,
		Roll:     t.roll,
		Interact: t.interact,
	}

	if now.Before(t.upUntil) {
		in.MoveY--
	}
	if now.Before(t.downUntil) {
		in.MoveY++
	}
	if now.Before(t.leftUntil) {
		in.MoveX--
	}
	if now.Before(t.rightUntil) {
		in.MoveX++
	}

	t.melee = false
	t.crouch = false
	t.prone = false
	t.roll = false
	t.interact = false

	return in
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
