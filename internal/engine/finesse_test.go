package engine

import "testing"

func TestFinesseWasteDirectOPlacement(t *testing.T) {
	// Single-move direct placement: 2 direction presses, 0 rotation,
	// O piece. Unambiguous per spec.md 9: no waste at all.
	if w := finesseWaste(PieceO, 0, 2, 0); w != 0 {
		t.Errorf("expected 0 waste for a direct 2-move O placement, got %d", w)
	}
}

func TestFinesseWasteDirectionalOverage(t *testing.T) {
	if w := finesseWaste(PieceT, 0, 5, 0); w != 3 {
		t.Errorf("expected directional waste of 3 (5-2), got %d", w)
	}
}

func TestFinesseWasteOPieceRotationIsAlwaysWaste(t *testing.T) {
	// The O piece is rotationally symmetric: any rotation press beyond
	// fLook[theta] is unambiguous waste regardless of theta.
	for theta := 0; theta < NumRotationStates; theta++ {
		w := finesseWaste(PieceO, theta, 0, fLook[theta]+1)
		if w != 1 {
			t.Errorf("theta %d: expected 1 waste rotation press beyond fLook, got %d", theta, w)
		}
		w = finesseWaste(PieceO, theta, 0, fLook[theta])
		if w != 0 {
			t.Errorf("theta %d: expected 0 waste at exactly fLook presses, got %d", theta, w)
		}
	}
}

func TestFinesseWasteNonOPieceChargesRawRotationCount(t *testing.T) {
	if w := finesseWaste(PieceT, 2, 0, 3); w != 3 {
		t.Errorf("expected non-O pieces to charge raw rotation presses as waste, got %d", w)
	}
}
