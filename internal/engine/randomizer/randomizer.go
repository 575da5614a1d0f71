// Package randomizer implements the FastStack piece-sequence generators
// (spec.md 4.9): SIMPLE, NOSZO_BAG7, TGM1 and TGM2. Each variant owns its
// own scratch state and produces piece ids 0..6 in the fixed order
// I, J, L, O, S, T, Z — the same order engine.PieceType uses, so callers
// can convert with a plain engine.PieceType(id) cast.
//
// This package cannot import the engine package (it is imported BY it),
// so it speaks in terms of the bare piece id rather than engine.PieceType.
package randomizer

import "math/rand"

// Piece ids, matching engine.PieceType's I..Z ordering.
const (
	I = iota
	J
	L
	O
	S
	T
	Z
	NumPieces
)

// Kind selects which generator Next draws from.
type Kind int

const (
	Simple Kind = iota
	NoSZOBag7
	TGM1
	TGM2
)

// Randomizer produces the next piece id given its internal state. Given
// an identical seed and identical call sequence, a fresh Randomizer of
// the same Kind produces identical output (spec.md 4.9's determinism
// contract) — callers needing reproducible replays construct it with a
// fixed seed rather than a wall-clock one.
type Randomizer interface {
	Next() int
}

// New constructs the generator for the given Kind and seed. The engine
// re-instantiates this whenever its configured Kind changes mid-game
// (spec.md 4.9 / 3's randomizer/lastRandomizer shadow-selector contract),
// mirroring the teacher's per-instance *rand.Rand field
// (internal/game/engine.go's Engine.rng) rather than a package-global PRNG.
func New(kind Kind, seed int64) Randomizer {
	src := rand.New(rand.NewSource(seed))
	switch kind {
	case NoSZOBag7:
		return &bag7{rng: src, firstBag: true}
	case TGM1:
		return newHistoryRandomizer(src, 4, 4)
	case TGM2:
		return newHistoryRandomizer(src, 4, 6)
	default:
		return &simple{rng: src}
	}
}

// simple draws pieces uniformly and independently.
type simple struct {
	rng *rand.Rand
}

func (s *simple) Next() int {
	return s.rng.Intn(NumPieces)
}

// bag7 deals successive shuffled permutations of the 7 pieces. The very
// first bag additionally forbids S, Z or O as its first draw, per
// spec.md 4.9; every later bag is a plain bag-7 shuffle.
type bag7 struct {
	rng      *rand.Rand
	bag      []int
	pos      int
	firstBag bool
}

func (b *bag7) Next() int {
	if b.bag == nil || b.pos >= len(b.bag) {
		b.fillBag()
	}
	p := b.bag[b.pos]
	b.pos++
	return p
}

func (b *bag7) fillBag() {
	bag := make([]int, NumPieces)
	for i := range bag {
		bag[i] = i
	}
	b.rng.Shuffle(len(bag), func(i, j int) { bag[i], bag[j] = bag[j], bag[i] })

	if b.firstBag {
		for isSZO(bag[0]) {
			b.rng.Shuffle(len(bag), func(i, j int) { bag[i], bag[j] = bag[j], bag[i] })
		}
		b.firstBag = false
	}

	b.bag = bag
	b.pos = 0
}

func isSZO(p int) bool {
	return p == S || p == Z || p == O
}

// historyRandomizer implements the TGM family's history-based reroll: draw
// a candidate, and while it appears in the last `depth` draws, reroll (up
// to maxRerolls times), then accept whatever the final draw was. TGM2's
// larger maxRerolls models its stricter repeat-avoidance policy
// relative to TGM1, while keeping the same history-depth-4 shape spec.md
// 4.9 describes for both.
type historyRandomizer struct {
	rng         *rand.Rand
	history     []int
	depth       int
	maxRerolls  int
	initialized bool
}

func newHistoryRandomizer(rng *rand.Rand, depth, maxRerolls int) *historyRandomizer {
	return &historyRandomizer{rng: rng, depth: depth, maxRerolls: maxRerolls}
}

func (h *historyRandomizer) Next() int {
	if !h.initialized {
		// The very first draw has no history to avoid; TGM seeds its
		// history buffer by drawing from a reduced start set that
		// excludes S, Z and O, mirroring NOSZO_BAG7's first-piece rule.
		h.initialized = true
		var p int
		for {
			p = h.rng.Intn(NumPieces)
			if !isSZO(p) {
				break
			}
		}
		h.record(p)
		return p
	}

	candidate := h.rng.Intn(NumPieces)
	for i := 0; i < h.maxRerolls && h.inHistory(candidate); i++ {
		candidate = h.rng.Intn(NumPieces)
	}
	h.record(candidate)
	return candidate
}

func (h *historyRandomizer) inHistory(p int) bool {
	for _, q := range h.history {
		if q == p {
			return true
		}
	}
	return false
}

func (h *historyRandomizer) record(p int) {
	h.history = append(h.history, p)
	if len(h.history) > h.depth {
		h.history = h.history[len(h.history)-h.depth:]
	}
}
