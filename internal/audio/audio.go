// Package audio defines the sound event surface of the simulation. The
// engine emits sound IDs through a Sink; what a sink does with them is
// up to the platform (terminal builds typically log or drop them).
package audio

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/precinct-outbreak/internal/data"
)

// Sound identifies a sound effect.
type Sound string

const (
	SoundPistol       Sound = "pistol"
	SoundShotgun      Sound = "shotgun"
	SoundRifle        Sound = "rifle"
	SoundDoor         Sound = "door"
	SoundBackground   Sound = "background"
	SoundRoundEnd     Sound = "round-end"
	SoundExplosion    Sound = "explosion"
	SoundZombieAttack Sound = "zombie-attack"
	SoundBuy          Sound = "buy"
	SoundPlayerHit    Sound = "player-hit"
	SoundZombieHit    Sound = "zombie-hit"
	SoundReload       Sound = "reload"
	SoundVending      Sound = "vending"
	SoundMaxAmmo      Sound = "max-ammo"
	SoundDoublePoints Sound = "double-points"
	SoundInstaKill    Sound = "insta-kill"
	SoundNuke         Sound = "nuke"
	SoundSpeedBoost   Sound = "speed-boost"
)

// PowerUpSound maps a power-up type to its activation jingle.
func PowerUpSound(t data.PowerUpType) Sound {
	return Sound(t)
}

// WeaponSound maps a weapon class to its firing sound.
func WeaponSound(class data.WeaponClass) Sound {
	switch class {
	case data.ClassPistol:
		return SoundPistol
	case data.ClassShotgun:
		return SoundShotgun
	case data.ClassSMG, data.ClassRifle, data.ClassLMG:
		return SoundRifle
	default:
		return SoundPistol
	}
}

// Sink receives sound events from the engine. Implementations must be
// safe to call every frame.
type Sink interface {
	Play(s Sound)
	SetVolume(v float64)
	PauseAll()
	ResumeAll()
}

// NopSink discards every sound event.
type NopSink struct{}

func (NopSink) Play(Sound)        {}
func (NopSink) SetVolume(float64) {}
func (NopSink) PauseAll()         {}
func (NopSink) ResumeAll()        {}

// LogSink writes every sound event to a structured logger at debug level.
// Useful for following cue ordering without a playback backend.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink creates a sink that logs cues to the given logger.
func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Play(snd Sound) {
	s.logger.Debug("play", "sound", snd)
}

func (s *LogSink) SetVolume(v float64) {
	s.logger.Debug("volume", "level", v)
}

func (s *LogSink) PauseAll() {
	s.logger.Debug("pause all")
}

func (s *LogSink) ResumeAll() {
	s.logger.Debug("resume all")
}
