package engine

// This file holds the engine's static, read-only data: per-piece block
// offsets (shared by every rotation system) and the per-rotation-system
// entry thetas and wallkick tables. Ported from the pieceOffsets and
// rotationSystems tables in original_source/src/fs.c,
// expressed as Go array literals instead of C initializer lists.

// offset is a single block's (x, y) position relative to a piece's origin.
type offset struct{ X, Y int }

// pieceOffsets gives each piece's 4 block offsets per rotation state, in
// SRS-relative form. Alternate rotation systems compensate via their own
// entryTheta rather than duplicating this table (spec.md 4.1).
var pieceOffsets = [NumPieceTypes][NumRotationStates][4]offset{
	PieceI: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	PieceJ: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{0, 2}, {1, 0}, {1, 1}, {1, 2}},
	},
	PieceL: {
		{{0, 1}, {1, 1}, {2, 0}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {2, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
	PieceO: {
		{{1, 0}, {1, 1}, {2, 0}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 0}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 0}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 0}, {2, 1}},
	},
	PieceS: {
		{{0, 1}, {1, 0}, {1, 1}, {2, 0}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{0, 2}, {1, 1}, {1, 2}, {2, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	PieceT: {
		{{0, 1}, {1, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 1}},
		{{0, 1}, {1, 0}, {1, 1}, {1, 2}},
	},
	PieceZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{1, 1}, {1, 2}, {2, 0}, {2, 1}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {0, 2}, {1, 0}, {1, 1}},
	},
}

// kickEntry is one test in a wallkick table row: (dx, dy) tried in order,
// with End marking the sentinel that terminates the row (spec.md's WK_END).
type kickEntry struct {
	DX, DY int
	End    bool
}

// kickTable holds up to MaxKickLen tests per rotation state.
type kickTable [NumRotationStates][MaxKickLen]kickEntry

// emptyKickTable is the explicit first-class "no kicks besides (0,0)"
// table referenced by rotation systems that never wallkick (spec.md 9
// replaces the original's "negative index means empty table" convention
// with this explicit sentinel table).
var emptyKickTable = buildTable(nil, nil, nil, nil)

// buildTable constructs a kickTable from up to 4 rows of (dx,dy) pairs,
// each row always implicitly starting with (0,0) and terminated by End.
func buildTable(r0, r1, r2, r3 [][2]int) kickTable {
	var t kickTable
	rows := [NumRotationStates][][2]int{r0, r1, r2, r3}
	for theta, row := range rows {
		t[theta][0] = kickEntry{0, 0, false}
		i := 1
		for _, p := range row {
			if i >= MaxKickLen-1 {
				break
			}
			t[theta][i] = kickEntry{p[0], p[1], false}
			i++
		}
		t[theta][i] = kickEntry{End: true}
	}
	return t
}

// Standard SRS kick tests (JLSTZ), in this engine's y-down coordinate
// convention (published SRS tables assume y-up; dy is negated here).
var srsJLSTZKicksCW = buildTable(
	[][2]int{{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},   // 0 -> 1
	[][2]int{{1, 0}, {1, 1}, {0, -2}, {1, -2}},     // 1 -> 2
	[][2]int{{1, 0}, {1, -1}, {0, 2}, {1, 2}},      // 2 -> 3
	[][2]int{{-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},  // 3 -> 0
)

var srsJLSTZKicksCCW = buildTable(
	[][2]int{{1, 0}, {1, -1}, {0, 2}, {1, 2}},      // 0 -> 3
	[][2]int{{1, 0}, {1, 1}, {0, -2}, {1, -2}},     // 1 -> 0
	[][2]int{{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},   // 2 -> 1
	[][2]int{{-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},  // 3 -> 2
)

var srsIKicksCW = buildTable(
	[][2]int{{-2, 0}, {1, 0}, {-2, 1}, {1, -2}},  // 0 -> 1
	[][2]int{{-1, 0}, {2, 0}, {-1, -2}, {2, 1}},  // 1 -> 2
	[][2]int{{2, 0}, {-1, 0}, {2, -1}, {-1, 2}},  // 2 -> 3
	[][2]int{{1, 0}, {-2, 0}, {1, 2}, {-2, -1}},  // 3 -> 0
)

var srsIKicksCCW = buildTable(
	[][2]int{{-1, 0}, {2, 0}, {-1, -2}, {2, 1}}, // 0 -> 3
	[][2]int{{2, 0}, {-1, 0}, {2, -1}, {-1, 2}}, // 1 -> 0
	[][2]int{{1, 0}, {-2, 0}, {1, 2}, {-2, -1}}, // 2 -> 1
	[][2]int{{-2, 0}, {1, 0}, {-2, 1}, {1, -2}}, // 3 -> 2
)

// halfTurnKicks is a small generic 180-rotation kick set shared by every
// piece in the SRS-like systems; spec.md 9 allows omitting half-turn
// analysis precision.
var halfTurnKicks = buildTable(
	[][2]int{{0, -1}, {1, 0}, {-1, 0}, {0, 1}},
	[][2]int{{0, -1}, {1, 0}, {-1, 0}, {0, 1}},
	[][2]int{{0, -1}, {1, 0}, {-1, 0}, {0, 1}},
	[][2]int{{0, -1}, {1, 0}, {-1, 0}, {0, 1}},
)

// dtetKicks is the small kick set historically used by DTET rotation
// systems: after (0,0), try one cell left, one cell right, then a one-up
// nudge.
var dtetKicks = buildTable(
	[][2]int{{-1, 0}, {1, 0}, {0, -1}},
	[][2]int{{-1, 0}, {1, 0}, {0, -1}},
	[][2]int{{-1, 0}, {1, 0}, {0, -1}},
	[][2]int{{-1, 0}, {1, 0}, {0, -1}},
)

// tgm3Kicks is Arika's reduced TGM3 wallkick: a single left/right wall
// push, nothing more (no floor-kick, no double-test). Distinct from the
// full 4-test SRS set and from TGM12's no-kick rule.
var tgm3Kicks = buildTable(
	[][2]int{{-1, 0}, {1, 0}},
	[][2]int{{-1, 0}, {1, 0}},
	[][2]int{{-1, 0}, {1, 0}},
	[][2]int{{-1, 0}, {1, 0}},
)

const tblEmpty = -1

const (
	tblJLSTZCW = iota
	tblJLSTZCCW
	tblICW
	tblICCW
	tblHalf
	tblDTET
)

// rotationSystem fully specifies one rotation system: per-piece spawn
// theta offset and per-piece/per-direction kick table selection.
type rotationSystem struct {
	entryTheta [NumPieceTypes]int
	kicksR     [NumPieceTypes]int // table index into kickTables, tblEmpty = no kicks
	kicksL     [NumPieceTypes]int
	kicksH     [NumPieceTypes]int
	kickTables []kickTable
}

// table resolves a kick table index to its kickTable, tblEmpty mapping to
// the shared emptyKickTable sentinel.
func (rs *rotationSystem) table(idx int) *kickTable {
	if idx < 0 {
		return &emptyKickTable
	}
	return &rs.kickTables[idx]
}

// noKickSystem builds a rotation system where every piece rotates freely
// with no wallkick beyond (0,0): used by SIMPLE, SEGA and TGM12, which
// historically never wallkick.
func noKickSystem() rotationSystem {
	var rs rotationSystem
	for p := 0; p < NumPieceTypes; p++ {
		rs.kicksR[p] = tblEmpty
		rs.kicksL[p] = tblEmpty
		rs.kicksH[p] = tblEmpty
	}
	return rs
}

// srsLikeSystem builds a rotation system sharing the standard SRS-style
// kick tables across all 7 piece types (I gets its own table, O needs no
// kicks, the rest share the JLSTZ table).
func srsLikeSystem(half int) rotationSystem {
	rs := rotationSystem{
		kickTables: []kickTable{srsJLSTZKicksCW, srsJLSTZKicksCCW, srsIKicksCW, srsIKicksCCW, halfTurnKicks},
	}
	for p := 0; p < NumPieceTypes; p++ {
		switch PieceType(p) {
		case PieceI:
			rs.kicksR[p] = tblICW
			rs.kicksL[p] = tblICCW
		case PieceO:
			rs.kicksR[p] = tblEmpty
			rs.kicksL[p] = tblEmpty
		default:
			rs.kicksR[p] = tblJLSTZCW
			rs.kicksL[p] = tblJLSTZCCW
		}
		rs.kicksH[p] = half
	}
	return rs
}

// rotationSystems holds the concrete table for every RotationSystem enum
// value. Built once at package init.
var rotationSystems [int(numRotationSystems)]rotationSystem

func init() {
	rotationSystems[RotSimple] = noKickSystem()
	rotationSystems[RotSega] = noKickSystem()
	rotationSystems[RotTGM12] = noKickSystem()

	tgm3 := rotationSystem{kickTables: []kickTable{tgm3Kicks}}
	for p := 0; p < NumPieceTypes; p++ {
		if PieceType(p) == PieceO {
			tgm3.kicksR[p] = tblEmpty
			tgm3.kicksL[p] = tblEmpty
		} else {
			tgm3.kicksR[p] = 0
			tgm3.kicksL[p] = 0
		}
		tgm3.kicksH[p] = tblEmpty
	}
	rotationSystems[RotTGM3] = tgm3

	srs := srsLikeSystem(tblHalf)
	rotationSystems[RotSRS] = srs

	// Arika SRS omits the commented-out overhang special cases present
	// (disabled) in fs.c's doRotate; spec.md 9 allows leaving them out,
	// so it otherwise shares the plain SRS kick tables.
	rotationSystems[RotArikaSRS] = srs

	dtet := rotationSystem{kickTables: []kickTable{dtetKicks}}
	for p := 0; p < NumPieceTypes; p++ {
		dtet.kicksR[p] = 0
		dtet.kicksL[p] = 0
		dtet.kicksH[p] = tblEmpty
	}
	rotationSystems[RotDTET] = dtet
}
