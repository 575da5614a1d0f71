package engine

import "faststack/internal/engine/randomizer"

// Config is the typed, host-populated configuration surface read at reset
// and at tick boundaries (spec.md 3 / 4.10). The engine never parses text;
// an external INI/CLI layer validates and pushes typed values here before
// calling Reset.
type Config struct {
	FieldWidth  int
	FieldHeight int

	MsPerTick int
	MsPerDraw int

	AreDelay       int
	AreCancellable bool

	LockStyle LockStyle
	LockDelay int

	RotationSystem RotationSystem

	// Gravity is in cells of actualY per millisecond (applyGravity
	// multiplies it by MsPerTick each tick); SoftDropGravity is the
	// per-tick contribution a host derives from a held soft-drop key.
	Gravity         float64
	SoftDropGravity float64

	NextPieceCount int
	Goal           int

	ReadyPhaseLength   int
	GoPhaseLength      int
	InfiniteReadyGoHold bool

	FloorkickLimit     int
	InitialActionStyle InitialActionStyle
	OneShotSoftDrop    bool

	Randomizer     RandomizerType
	RandomizerSeed int64
}

// Default returns the configuration used by the end-to-end scenarios of
// spec.md 8: SRS, 10x20 field, 16ms ticks, STEP lock style, 500ms lock
// delay, no ambient gravity.
func Default() Config {
	return Config{
		FieldWidth:  10,
		FieldHeight: 20,

		MsPerTick: 16,
		MsPerDraw: 16,

		AreDelay:       166,
		AreCancellable: true,

		LockStyle: LockStep,
		LockDelay: 500,

		RotationSystem: RotSRS,

		Gravity:         0,
		SoftDropGravity: 1,

		NextPieceCount: 4,
		Goal:           40,

		ReadyPhaseLength:    833,
		GoPhaseLength:       833,
		InfiniteReadyGoHold: false,

		FloorkickLimit:     1,
		InitialActionStyle: InitialActionNone,
		OneShotSoftDrop:    false,

		Randomizer:     RandNoSZOBag7,
		RandomizerSeed: 0,
	}
}

// ticks converts a millisecond duration to a tick count under this
// config's MsPerTick, per spec.md 4.3's ticks(ms) = ms / msPerTick.
func (c *Config) ticks(ms int) int {
	if c.MsPerTick <= 0 {
		return 0
	}
	return ms / c.MsPerTick
}

func (c *Config) randomizerKind() randomizer.Kind {
	switch c.Randomizer {
	case RandNoSZOBag7:
		return randomizer.NoSZOBag7
	case RandTGM1:
		return randomizer.TGM1
	case RandTGM2:
		return randomizer.TGM2
	default:
		return randomizer.Simple
	}
}
