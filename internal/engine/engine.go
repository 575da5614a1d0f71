package engine

import (
	"faststack/internal/engine/randomizer"
)

// Engine is a single player's headless game instance: the tick state
// machine, field, active piece, preview queue, hold slot and counters of
// spec.md 3. It owns no rendering, input capture, audio or I/O; a host
// drives it with a fixed-rate loop of Tick calls (spec.md 5).
type Engine struct {
	Config Config

	Field *Field
	Piece ActivePiece

	Preview []PieceType

	HoldPiece     PieceType
	HoldAvailable bool

	State State

	PhaseTimer int
	AreTimer   int
	LockTimer  int

	TotalTicks    int
	LinesCleared  int
	BlocksPlaced  int
	Finesse       int

	finessePieceDirection int
	finessePieceRotation  int

	LastInput Input

	rand           randomizer.Randomizer
	lastRandomizer RandomizerType
}

// New constructs an engine with the given configuration and immediately
// resets it (spec.md 3's lifecycle: "a game instance is produced by a
// reset operation").
func New(cfg Config) *Engine {
	e := &Engine{}
	e.Reset(cfg)
	return e
}

// Reset zeroes all state, installs the given config as defaults, primes
// the randomizer and fills the preview queue, per spec.md 3.
func (e *Engine) Reset(cfg Config) {
	*e = Engine{Config: cfg}

	e.Field = NewField(cfg.FieldWidth, cfg.FieldHeight)
	e.HoldPiece = PieceNone
	e.HoldAvailable = true
	e.Piece.Type = PieceNone

	e.lastRandomizer = cfg.Randomizer
	e.rand = randomizer.New(cfg.randomizerKind(), cfg.RandomizerSeed)

	n := cfg.NextPieceCount
	if n <= 0 {
		n = 1
	}
	if n > PreviewMax {
		n = PreviewMax
	}
	e.Preview = make([]PieceType, n)
	for i := range e.Preview {
		e.Preview[i] = e.drawPiece()
	}

	e.State = StateReady
}

// drawPiece reinitialises the randomizer if the configured selector has
// changed since the last draw (spec.md 4.9), then returns its next piece.
func (e *Engine) drawPiece() PieceType {
	if e.Config.Randomizer != e.lastRandomizer {
		e.rand = randomizer.New(e.Config.randomizerKind(), e.Config.RandomizerSeed)
		e.lastRandomizer = e.Config.Randomizer
	}
	return PieceType(e.rand.Next())
}

// spawn implements spec.md 4.7: place a fresh piece at the top centre,
// zero its per-piece counters, shift the preview queue and draw a
// replacement into the vacated last slot.
func (e *Engine) spawn() {
	e.Piece = ActivePiece{
		Type: e.Preview[0],
		X:    e.Field.Width/2 - 1,
	}
	e.Piece.SetIntegerY(0)
	e.LockTimer = 0
	e.finessePieceDirection = 0
	e.finessePieceRotation = 0

	copy(e.Preview, e.Preview[1:])
	e.Preview[len(e.Preview)-1] = e.drawPiece()

	e.HoldAvailable = true
}
