package core

// InputState is an immutable per-frame snapshot of player intent, rebuilt by
// the input adapter each frame and passed by value into the engine update.
// The engine never mutates it; edge-triggered actions (stance toggles, roll)
// must be set for exactly one frame by the adapter.
type InputState struct {
	// Held movement direction, each component in {-1, 0, 1}.
	MoveX, MoveY float64

	// Cursor position in screen space (pixels relative to the viewport
	// top-left). The engine converts it to world space using the camera.
	Mouse Vec2

	// Fire is true while the primary-fire button is held.
	Fire bool

	// Melee is true while the melee button is held.
	Melee bool

	// Edge-triggered actions, valid for one frame only.
	Crouch   bool // Toggle crouching stance
	Prone    bool // Toggle prone stance
	Roll     bool // Start a combat roll in the held movement direction
	Interact bool // Interaction key gate
}

// MoveDir returns the normalized held movement direction, or the zero vector
// if no movement keys are held.
func (in InputState) MoveDir() Vec2 {
	return Vec2{X: in.MoveX, Y: in.MoveY}.Normalize()
}

// Moving reports whether any movement key is held.
func (in InputState) Moving() bool {
	return in.MoveX != 0 || in.MoveY != 0
}
