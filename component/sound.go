package component

// Sound names a sound effect cue. The value doubles as the asset name.
type Sound string

const (
	SoundBurgerDamage Sound = "burger_damage"
	SoundBurgerDeath  Sound = "burger_death"
	SoundBurgerShot   Sound = "burger_shot"
	SoundExplosion    Sound = "explosion"
	SoundTeddyBounce  Sound = "teddy_bounce"
	SoundTeddyShot    Sound = "teddy_shot"
)

// AllSounds lists every cue the simulation can emit.
var AllSounds = []Sound{
	SoundBurgerDamage,
	SoundBurgerDeath,
	SoundBurgerShot,
	SoundExplosion,
	SoundTeddyBounce,
	SoundTeddyShot,
}

// SoundEmitter forwards cues to a sink. A nil emitter or nil Play is silent.
type SoundEmitter struct {
	Play func(s Sound)
}

// Emit plays s on the sink.
func (e *SoundEmitter) Emit(s Sound) {
	if e == nil || e.Play == nil {
		return
	}
	e.Play(s)
}
