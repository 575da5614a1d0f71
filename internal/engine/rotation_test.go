package engine

import "testing"

func TestRotateRoundTripOnEmptyField(t *testing.T) {
	f := NewField(10, 20)
	piece := ActivePiece{Type: PieceT, X: 4, Y: 5, Theta: 0}

	if !rotate(f, RotSRS, &piece, RotateCW) {
		t.Fatal("expected CW rotation to succeed on an empty field")
	}
	if !rotate(f, RotSRS, &piece, RotateCCW) {
		t.Fatal("expected CCW rotation to succeed on an empty field")
	}

	if piece.X != 4 || piece.Y != 5 || piece.Theta != 0 {
		t.Errorf("expected piece to return to (4, 5, 0), got (%d, %d, %d)", piece.X, piece.Y, piece.Theta)
	}
}

func TestRotateNoKicksInNoKickSystem(t *testing.T) {
	f := NewField(10, 20)
	// Place the piece hard against the left wall so any JLSTZ-style
	// kick test would be required to succeed; SIMPLE never kicks.
	piece := ActivePiece{Type: PieceJ, X: -1, Y: 5, Theta: 1}

	if rotate(f, RotSimple, &piece, RotateCW) {
		t.Error("SIMPLE rotation system must never apply a wallkick")
	}
}

func TestRotateOPieceNeverKicks(t *testing.T) {
	f := NewField(10, 20)
	piece := ActivePiece{Type: PieceO, X: 4, Y: 5, Theta: 0}

	if !rotate(f, RotSRS, &piece, RotateCW) {
		t.Fatal("expected O piece rotation in open space to succeed via the identity test")
	}
	if piece.X != 4 || piece.Y != 5 {
		t.Errorf("O piece has no kick table entries beyond (0,0); position must not move, got (%d, %d)", piece.X, piece.Y)
	}
}

func TestRotateFailsWhenFullyBoxedIn(t *testing.T) {
	f := NewField(10, 20)
	// Fill the whole field except four cells forming a downward-pointing
	// T, so that no kick candidate for the CW (vertical) orientation fits.
	for x := 0; x < f.Width; x++ {
		for y := 0; y < f.Height; y++ {
			f.Set(x, y, 2)
		}
	}
	f.Set(4, 5, 0)
	f.Set(5, 5, 0)
	f.Set(6, 5, 0)
	f.Set(5, 6, 0)

	piece := ActivePiece{Type: PieceT, X: 4, Y: 5, Theta: 0}
	if rotate(f, RotSRS, &piece, RotateCW) {
		t.Error("expected rotation to fail when every kick candidate collides")
	}
	if piece.Theta != 0 {
		t.Error("a failed rotation must not mutate piece state")
	}
}
