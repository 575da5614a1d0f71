package engine

// ActivePiece is the player-controlled piece: its type, integer position,
// high-precision fractional row accumulator, rotation state and cached
// hard-drop row. Grounded on fs.c's FSGame piece/x/y/actualY/theta/
// hardDropY fields.
type ActivePiece struct {
	Type PieceType

	X, Y int
	// ActualY is the sub-cell gravity accumulator; the invariant
	// Y == floor(ActualY) must hold whenever the piece is FALLING/LANDED.
	ActualY float64
	Theta   int

	// HardDropY is the greatest Y the piece can occupy at its current
	// (Type, X, Theta) without collision.
	HardDropY int
}

// UpdateHardDropY advances a probe downward from the current Y until a
// collision would occur, then records hardDropY = y - 1. Ported from
// fs.c's updateHardDropY.
func (p *ActivePiece) UpdateHardDropY(f *Field, rs RotationSystem) {
	y := p.Y
	for !f.IsCollision(rs, p.Type, p.X, y, p.Theta) {
		y++
	}
	p.HardDropY = y - 1
}

// SetIntegerY sets Y (and ActualY in lockstep) whenever Y is assigned
// externally: spawn, hold, or the hard-drop clamp in applyGravity. This
// preserves the Y == floor(ActualY) invariant (spec.md 9).
func (p *ActivePiece) SetIntegerY(y int) {
	p.Y = y
	p.ActualY = float64(y)
}
