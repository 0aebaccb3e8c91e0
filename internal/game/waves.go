package game

import "github.com/vovakirdan/precinct-outbreak/internal/audio"

// updateWaves drives the wave cycle: break, spawn trickle, completion.
// A wave is done when its full quota has spawned and died.
func (e *Engine) updateWaves() {
	s := e.State

	if s.BetweenWaves {
		if s.Wave == 0 || e.clock-s.WaveStartedAt >= e.tun.WaveBreakMs {
			e.startNextWave()
		}
		return
	}

	if s.AliveZombies() < s.ZombiesRemaining {
		if e.clock-e.lastSpawnAt >= e.spawnInterval {
			e.spawnZombie()
			e.lastSpawnAt = e.clock
		}
	}

	// Recount after spawning so a wave never closes over a zombie
	// born this tick.
	if s.AliveZombies() == 0 && s.ZombiesRemaining == 0 {
		s.BetweenWaves = true
		s.WaveStartedAt = e.clock
		e.sink.Play(audio.SoundRoundEnd)
	}
}

func (e *Engine) startNextWave() {
	s := e.State
	s.Wave++
	s.BetweenWaves = false
	s.ZombiesRemaining = e.tun.BaseZombiesPerWave + (s.Wave-1)*e.tun.ZombiesIncreasePerWave
	e.spawnInterval = e.tun.SpawnIntervalBaseMs - float64(s.Wave)*100
	if e.spawnInterval < e.tun.SpawnIntervalMinMs {
		e.spawnInterval = e.tun.SpawnIntervalMinMs
	}
	s.WaveStartedAt = e.clock
}

// WaveQuota returns the total zombie count for a wave number.
func (e *Engine) WaveQuota(wave int) int {
	return e.tun.BaseZombiesPerWave + (wave-1)*e.tun.ZombiesIncreasePerWave
}

// AccessibleRooms lists the rooms zombies may spawn in: the lobby plus
// every room whose door has been opened.
func (e *Engine) AccessibleRooms() map[string]bool {
	rooms := map[string]bool{"main": true}
	for _, d := range e.Map.Doors {
		if !d.IsLocked && d.UnlocksRoom != "" {
			rooms[d.UnlocksRoom] = true
		}
	}
	return rooms
}

// refreshAccessibleSpawns recomputes the cached spawn point set. Called
// on reset and whenever a door opens.
func (e *Engine) refreshAccessibleSpawns() {
	rooms := e.AccessibleRooms()
	e.accessible = e.accessible[:0]
	for _, sp := range e.Map.SpawnPoints {
		if rooms[sp.RoomID] {
			e.accessible = append(e.accessible, sp)
		}
	}
}
