package engine

// Tick advances the engine by one logic step given the host's input
// snapshot for this tick (spec.md 4.6). Dispatch loops internally for the
// re-entrant transitions (ARE -> NEW_PIECE, LINES -> ARE) so that a spawn
// and a fall can both progress within the tick that ends ARE, and lines
// are cleared in the same tick the piece locks.
func (e *Engine) Tick(input Input) {
	e.LastInput = input

	again := true
	for again {
		again = false

		switch e.State {
		case StateReady:
			e.tickReadyOrGo(input)
			cur := e.PhaseTimer
			e.PhaseTimer++
			if cur > e.Config.ticks(e.Config.ReadyPhaseLength) {
				e.PhaseTimer = 0
				e.State = StateGo
				again = true
			}

		case StateGo:
			e.tickReadyOrGo(input)
			cur := e.PhaseTimer
			e.PhaseTimer++
			if cur > e.Config.ticks(e.Config.GoPhaseLength) {
				e.PhaseTimer = 0
				e.State = StateNewPiece
				again = true
			}

		case StateARE:
			cur := e.AreTimer
			e.AreTimer++
			if cur > e.Config.ticks(e.Config.AreDelay) {
				e.AreTimer = 0
				e.State = StateNewPiece
				again = true
			}

		case StateNewPiece:
			e.spawn()
			if e.Field.IsCollision(e.Config.RotationSystem, e.Piece.Type, e.Piece.X, e.Piece.Y, e.Piece.Theta) {
				e.State = StateGameOver
				again = true
				break
			}
			e.Piece.UpdateHardDropY(e.Field, e.Config.RotationSystem)
			e.State = StateFalling
			if e.Config.InitialActionStyle == InitialActionTrigger {
				// TRIGGER applies the held direction/rotation exactly
				// once on the spawn tick, by falling straight through
				// into the FALLING body with this tick's input.
				again = true
			}

		case StateFalling, StateLanded:
			e.tickFallingOrLanded(input)
			if e.State == StateLines {
				again = true
			}

		case StateLines:
			e.Field.LockPiece(e.Config.RotationSystem, e.Piece.Type, e.Piece.X, e.Piece.Y, e.Piece.Theta)
			e.BlocksPlaced++
			e.Finesse += finesseWaste(e.Piece.Type, e.Piece.Theta, e.finessePieceDirection, e.finessePieceRotation)
			e.Piece.Type = PieceNone

			e.LinesCleared += e.Field.ClearLines()
			e.AreTimer = 0
			if e.LinesCleared < e.Config.Goal {
				e.State = StateARE
			} else {
				e.State = StateGameOver
			}
			again = true

		case StateGameOver, StateQuit:
			// no-op
		}
	}

	e.TotalTicks++
}

// tickReadyOrGo implements the shared READY/GO body: hold is live during
// the countdown (spec.md 4.4), acting directly on the preview queue since
// there is no active piece yet to stash. infiniteReadyGoHold exempts this
// from consuming holdAvailable, letting the player cycle the hold slot
// freely before the first piece spawns.
func (e *Engine) tickReadyOrGo(input Input) {
	if input.Extra&ExtraHold == 0 || !e.HoldAvailable {
		return
	}

	if e.HoldPiece == PieceNone {
		e.HoldPiece = e.Preview[0]
		copy(e.Preview, e.Preview[1:])
		e.Preview[len(e.Preview)-1] = e.drawPiece()
	} else {
		e.HoldPiece, e.Preview[0] = e.Preview[0], e.HoldPiece
	}

	if !e.Config.InfiniteReadyGoHold {
		e.HoldAvailable = false
	}
}

// tickFallingOrLanded implements the shared FALLING/LANDED body of
// spec.md 4.6 step 113: hold, finesse accounting, rotation, horizontal
// movement, gravity, then the lock-timer/hard-drop check.
func (e *Engine) tickFallingOrLanded(input Input) {
	e.handleHold(input)

	if input.Extra&ExtraFinesseDirection != 0 {
		e.finessePieceDirection++
	}
	if input.Extra&ExtraFinesseRotation != 0 {
		e.finessePieceRotation++
	}

	moved := false

	if input.Rotation != RotateNone {
		if rotate(e.Field, e.Config.RotationSystem, &e.Piece, input.Rotation) {
			moved = true
		}
	}

	if input.Movement != 0 {
		step := 1
		if input.Movement < 0 {
			step = -1
		}
		for i := 0; i < abs(input.Movement); i++ {
			nx := e.Piece.X + step
			if e.Field.IsCollision(e.Config.RotationSystem, e.Piece.Type, nx, e.Piece.Y, e.Piece.Theta) {
				break
			}
			e.Piece.X = nx
			moved = true
		}
	}

	if moved {
		e.Piece.UpdateHardDropY(e.Field, e.Config.RotationSystem)
		if e.Config.LockStyle == LockMove {
			e.LockTimer = 0
		}
	}

	e.applyGravity(input.Gravity)

	if input.Extra&ExtraHardDrop != 0 || e.LockTimer > e.Config.ticks(e.Config.LockDelay) {
		e.State = StateLines
	}

	if e.State == StateLanded {
		e.LockTimer++
	}
}

// handleHold implements spec.md 4.4.
func (e *Engine) handleHold(input Input) {
	if input.Extra&ExtraHold == 0 || !e.HoldAvailable {
		return
	}

	if e.HoldPiece == PieceNone {
		e.HoldPiece = e.Piece.Type
		e.spawn()
	} else {
		e.HoldPiece, e.Piece.Type = e.Piece.Type, e.HoldPiece
		e.Piece.X = e.Field.Width/2 - 1
		e.Piece.SetIntegerY(0)
		e.Piece.Theta = 0
	}

	e.LockTimer = 0
	e.HoldAvailable = false
	e.Piece.UpdateHardDropY(e.Field, e.Config.RotationSystem)
}

// applyGravity implements spec.md 4.3.
func (e *Engine) applyGravity(inputGravity float64) {
	e.Piece.ActualY += float64(e.Config.MsPerTick)*e.Config.Gravity + inputGravity

	if e.Piece.ActualY >= float64(e.Piece.HardDropY) {
		e.Piece.ActualY = float64(e.Piece.HardDropY)
		e.Piece.Y = e.Piece.HardDropY
		e.State = StateLanded
		return
	}

	newY := int(e.Piece.ActualY)
	if (e.Config.LockStyle == LockStep || e.Config.LockStyle == LockMove) && newY > e.Piece.Y {
		e.LockTimer = 0
	}
	e.Piece.Y = newY
	e.State = StateFalling
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
