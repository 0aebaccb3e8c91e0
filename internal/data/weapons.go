// Package data holds the static domain catalogs: weapons, throwables,
// zombie stats, shop items and perks. Everything here is immutable
// configuration; callers copy specs into their own mutable state.
package data

// WeaponClass groups weapons by handling and sound.
type WeaponClass string

// Weapon classes.
const (
	ClassPistol  WeaponClass = "pistol"
	ClassSMG     WeaponClass = "smg"
	ClassShotgun WeaponClass = "shotgun"
	ClassRifle   WeaponClass = "rifle"
	ClassLMG     WeaponClass = "lmg"
)

// WeaponSpec is the static ballistic profile of a weapon.
type WeaponSpec struct {
	ID           string
	Name         string
	Class        WeaponClass
	Damage       float64
	FireRate     float64 // Rounds per second
	ReloadTimeMs float64
	MagazineSize int
	StartReserve int
	MaxReserve   int
	Range        float64 // Max bullet travel distance in pixels
	Spread       float64 // Aim jitter in radians
	BulletSpeed  float64 // Pixels per second
	Price        int
}

// StartingPistolID identifies the weapon every fresh session begins with.
const StartingPistolID = "m1911"

// Pellets per shotgun trigger pull.
const ShotgunPellets = 8

var weaponCatalog = []WeaponSpec{
	{
		ID: "m1911", Name: "M1911", Class: ClassPistol,
		Damage: 35, FireRate: 4, ReloadTimeMs: 1500,
		MagazineSize: 8, StartReserve: 96, MaxReserve: 120,
		Range: 400, Spread: 0.05, BulletSpeed: 800,
		Price: 0,
	},
	{
		ID: "mp5", Name: "MP5", Class: ClassSMG,
		Damage: 25, FireRate: 10, ReloadTimeMs: 2000,
		MagazineSize: 30, StartReserve: 120, MaxReserve: 180,
		Range: 350, Spread: 0.1, BulletSpeed: 700,
		Price: 1000,
	},
	{
		ID: "m870", Name: "M870 Shotgun", Class: ClassShotgun,
		Damage: 120, FireRate: 1.2, ReloadTimeMs: 2500,
		MagazineSize: 6, StartReserve: 24, MaxReserve: 36,
		Range: 200, Spread: 0.3, BulletSpeed: 600,
		Price: 1500,
	},
	{
		ID: "m4a1", Name: "M4A1", Class: ClassRifle,
		Damage: 40, FireRate: 8, ReloadTimeMs: 2200,
		MagazineSize: 30, StartReserve: 120, MaxReserve: 210,
		Range: 500, Spread: 0.06, BulletSpeed: 900,
		Price: 2500,
	},
	{
		ID: "rpd", Name: "RPD", Class: ClassLMG,
		Damage: 45, FireRate: 12, ReloadTimeMs: 4000,
		MagazineSize: 100, StartReserve: 300, MaxReserve: 500,
		Range: 450, Spread: 0.12, BulletSpeed: 850,
		Price: 4000,
	},
}

// Weapons returns a copy of the full weapon catalog in display order.
func Weapons() []WeaponSpec {
	out := make([]WeaponSpec, len(weaponCatalog))
	copy(out, weaponCatalog)
	return out
}

// WeaponByID looks up a weapon spec by its identifier.
func WeaponByID(id string) (WeaponSpec, bool) {
	for _, w := range weaponCatalog {
		if w.ID == id {
			return w, true
		}
	}
	return WeaponSpec{}, false
}

// WeaponCount returns the number of cataloged weapons.
func WeaponCount() int {
	return len(weaponCatalog)
}

// WeaponAt returns the weapon spec at the given catalog index.
// Panics on out-of-range indices; callers index with values from WeaponCount.
func WeaponAt(i int) WeaponSpec {
	return weaponCatalog[i]
}
