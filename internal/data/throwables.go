package data

// ThrowableType distinguishes grenade behavior.
type ThrowableType string

// Throwable types.
const (
	ThrowFrag      ThrowableType = "frag"
	ThrowStun      ThrowableType = "stun"
	ThrowFlashbang ThrowableType = "flashbang"
)

// ThrowableSpec is the static profile of a throwable.
type ThrowableSpec struct {
	ID       string
	Name     string
	Type     ThrowableType
	Damage   float64 // Damage at blast center, falls off linearly
	Radius   float64 // Blast radius in pixels
	MaxCount int
	Price    int
}

var throwableCatalog = []ThrowableSpec{
	{ID: "frag", Name: "Frag Grenade", Type: ThrowFrag, Damage: 150, Radius: 120, MaxCount: 4, Price: 250},
	{ID: "stun", Name: "Stun Grenade", Type: ThrowStun, Damage: 10, Radius: 150, MaxCount: 4, Price: 200},
	{ID: "flashbang", Name: "Flashbang", Type: ThrowFlashbang, Damage: 0, Radius: 180, MaxCount: 4, Price: 150},
}

// Throwables returns a copy of the throwable catalog.
func Throwables() []ThrowableSpec {
	out := make([]ThrowableSpec, len(throwableCatalog))
	copy(out, throwableCatalog)
	return out
}

// ThrowableByID looks up a throwable spec by its identifier.
func ThrowableByID(id string) (ThrowableSpec, bool) {
	for _, t := range throwableCatalog {
		if t.ID == id {
			return t, true
		}
	}
	return ThrowableSpec{}, false
}

// StartingThrowableID identifies the throwable carried at session start.
const StartingThrowableID = "frag"

// StartingThrowableCount is how many the player carries at session start.
const StartingThrowableCount = 2

// ThrowableCarryCap is the maximum count the player can hold of the
// equipped throwable, regardless of the catalog MaxCount.
const ThrowableCarryCap = 10
