package engine

// rotate attempts to rotate the active piece in the given direction using
// the active rotation system's kick table. Ported from fs.c's doRotate:
// walk the kick table row indexed by the current theta, up to MaxKickLen
// entries, stopping at the first End sentinel; commit on the first
// non-colliding test.
//
// ActualY is deliberately left untouched on success: the integer Y is
// authoritative for rotation (spec.md 4.2).
func rotate(f *Field, rsType RotationSystem, piece *ActivePiece, direction RotationAmount) bool {
	newTheta := ((piece.Theta + int(direction))%NumRotationStates + NumRotationStates) % NumRotationStates

	rs := &rotationSystems[rsType]
	var tableIdx int
	switch direction {
	case RotateCW:
		tableIdx = rs.kicksR[piece.Type]
	case RotateCCW:
		tableIdx = rs.kicksL[piece.Type]
	case RotateHalfTurn:
		tableIdx = rs.kicksH[piece.Type]
	default:
		return false
	}

	table := rs.table(tableIdx)
	row := table[piece.Theta]

	for k := 0; k < MaxKickLen; k++ {
		entry := row[k]
		if entry.End {
			break
		}

		kickX := piece.X + entry.DX
		kickY := piece.Y + entry.DY

		if !f.IsCollision(rsType, piece.Type, kickX, kickY, newTheta) {
			piece.X = kickX
			piece.Y = kickY
			piece.Theta = newTheta
			return true
		}
	}

	return false
}
