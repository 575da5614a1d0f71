// Package engine implements the headless FastStack game core: a tick state
// machine that advances a single player's playfield in response to an input
// snapshot. The package owns no rendering, input capture, audio or I/O.
package engine

// PieceType enumerates the seven tetrominoes plus the empty sentinel.
type PieceType int

const (
	PieceI PieceType = iota
	PieceJ
	PieceL
	PieceO
	PieceS
	PieceT
	PieceZ
	PieceNone
)

// NumPieceTypes is the number of real (non-sentinel) piece types.
const NumPieceTypes = 7

func (p PieceType) String() string {
	switch p {
	case PieceI:
		return "I"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	case PieceO:
		return "O"
	case PieceS:
		return "S"
	case PieceT:
		return "T"
	case PieceZ:
		return "Z"
	default:
		return "NONE"
	}
}

// Compile-time maxima. The line-clear bitmask algorithm requires
// MaxFieldHeight <= 32.
const (
	MaxFieldWidth  = 32
	MaxFieldHeight = 32
	PreviewMax     = 8
	MaxKickLen     = 8
	// NumRotationStates is the number of rotation states a piece may hold,
	// taken modulo 4.
	NumRotationStates = 4
	// NumWallkickTables bounds how many distinct kick tables a rotation
	// system may define (pieces commonly share tables).
	NumWallkickTables = 8
)

// Rotation amounts, matching the direction argument passed to rotate.
type RotationAmount int

const (
	RotateNone        RotationAmount = 0
	RotateCW          RotationAmount = 1
	RotateCCW         RotationAmount = -1
	RotateHalfTurn    RotationAmount = 2
)

// LockStyle selects when the lock-delay timer resets.
type LockStyle int

const (
	LockEntry LockStyle = iota
	LockStep
	LockMove
)

func (s LockStyle) String() string {
	switch s {
	case LockEntry:
		return "ENTRY"
	case LockStep:
		return "STEP"
	case LockMove:
		return "MOVE"
	default:
		return "UNKNOWN"
	}
}

// RotationSystem selects the active rotation/kick table set.
type RotationSystem int

const (
	RotSimple RotationSystem = iota
	RotSega
	RotSRS
	RotArikaSRS
	RotTGM12
	RotTGM3
	RotDTET
	numRotationSystems
)

func (r RotationSystem) String() string {
	switch r {
	case RotSimple:
		return "SIMPLE"
	case RotSega:
		return "SEGA"
	case RotSRS:
		return "SRS"
	case RotArikaSRS:
		return "ARIKA_SRS"
	case RotTGM12:
		return "TGM12"
	case RotTGM3:
		return "TGM3"
	case RotDTET:
		return "DTET"
	default:
		return "UNKNOWN"
	}
}

// RandomizerType selects the active piece-sequence generator.
type RandomizerType int

const (
	RandUndefined RandomizerType = iota
	RandSimple
	RandNoSZOBag7
	RandTGM1
	RandTGM2
)

func (r RandomizerType) String() string {
	switch r {
	case RandSimple:
		return "SIMPLE"
	case RandNoSZOBag7:
		return "NOSZO_BAG7"
	case RandTGM1:
		return "TGM1"
	case RandTGM2:
		return "TGM2"
	default:
		return "UNDEFINED"
	}
}

// InitialActionStyle governs how a held direction/rotation at spawn time
// is treated.
type InitialActionStyle int

const (
	InitialActionNone InitialActionStyle = iota
	InitialActionPersistent
	InitialActionTrigger
)

// State is a value in the tick state machine.
type State int

const (
	StateReady State = iota
	StateGo
	StateFalling
	StateLanded
	StateARE
	StateNewPiece
	StateLines
	StateQuit
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "READY"
	case StateGo:
		return "GO"
	case StateFalling:
		return "FALLING"
	case StateLanded:
		return "LANDED"
	case StateARE:
		return "ARE"
	case StateNewPiece:
		return "NEW_PIECE"
	case StateLines:
		return "LINES"
	case StateQuit:
		return "QUIT"
	case StateGameOver:
		return "GAMEOVER"
	default:
		return "UNKNOWN"
	}
}

// Cell is a single field cell: 0 means empty, 1 is reserved, >1 is an
// occupied cell tagged with the colour code of the piece that placed it.
type Cell uint8

// pieceColors mirrors the original engine's per-piece colour tags
// (fs.c's pieceColors), used to tag locked cells.
var pieceColors = [NumPieceTypes]Cell{
	PieceI: 0x10,
	PieceJ: 0x20,
	PieceL: 0x30,
	PieceO: 0x40,
	PieceS: 0x50,
	PieceT: 0x60,
	PieceZ: 0x70,
}

// Point2 is an integer 2D offset/coordinate.
type Point2 struct {
	X, Y int
}

// Extra is a bitset of auxiliary per-tick input signals.
type Extra uint16

const (
	ExtraHold Extra = 1 << iota
	ExtraHardDrop
	ExtraFinesseDirection
	ExtraFinesseRotation
	ExtraLock
)

// Input is the per-tick snapshot the host feeds to Tick.
type Input struct {
	// Movement is the signed number of cells to attempt to move this tick;
	// sign gives direction (negative = left, positive = right).
	Movement int
	// Rotation is one of RotateNone/RotateCW/RotateCCW/RotateHalfTurn.
	Rotation RotationAmount
	// Gravity is the host-computed soft-drop contribution to actualY for
	// this tick, in cells, added to actualY as is (unlike Config.Gravity,
	// it is not scaled by MsPerTick).
	Gravity float64
	// Extra carries auxiliary signals (hold, hard drop, finesse markers).
	Extra Extra
}
