package data

// ZombieType distinguishes enemy breeds with distinct base stats.
type ZombieType string

// Zombie types.
const (
	ZombieWalker  ZombieType = "walker"
	ZombieRunner  ZombieType = "runner"
	ZombieBrute   ZombieType = "brute"
	ZombieCrawler ZombieType = "crawler"
)

// ZombieStats are the unscaled base stats for a zombie type.
// Health is multiplied by the per-wave health bonus at spawn time.
type ZombieStats struct {
	Health float64
	Damage float64
	Speed  float64 // Pixels per second
	Size   float64 // Bounding box side in pixels
	Points int     // Score awarded on kill
}

var zombieStats = map[ZombieType]ZombieStats{
	ZombieWalker:  {Health: 100, Damage: 20, Speed: 60, Size: 32, Points: 100},
	ZombieRunner:  {Health: 75, Damage: 15, Speed: 120, Size: 28, Points: 120},
	ZombieBrute:   {Health: 300, Damage: 40, Speed: 40, Size: 48, Points: 200},
	ZombieCrawler: {Health: 50, Damage: 10, Speed: 80, Size: 24, Points: 80},
}

// StatsFor returns the base stats for a zombie type.
// Unknown types fall back to walker stats.
func StatsFor(t ZombieType) ZombieStats {
	if s, ok := zombieStats[t]; ok {
		return s
	}
	return zombieStats[ZombieWalker]
}

// AttackCooldownMs is the minimum time between melee attacks for every
// zombie type.
const AttackCooldownMs = 1000
