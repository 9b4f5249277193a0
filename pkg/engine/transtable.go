package engine

import (
	. "github.com/nanochess-go/chess/pkg/common"
)

const (
	boundLower = 1
	boundUpper = 2
	boundExact = boundLower | boundUpper
)

// ttSize is fixed at 2^20 entries, direct-mapped. Unlike the gated,
// depth-preferred replacement scheme this teacher uses for its
// multi-threaded table, a single-threaded search needs neither the atomic
// gate nor an aging date: every store unconditionally overwrites its slot.
const ttSizeBits = 20
const ttSize = 1 << ttSizeBits
const ttMask = ttSize - 1

// transEntry packs one search result. move is stored in 15 bits as
// (from, to, promotion), carrying promotion in place of the moving piece
// that the original 18-bit from/to/piece packing held, so promotion
// information is not dropped; see DESIGN.md.
type transEntry struct {
	key32 uint32
	move  uint16
	score int16
	depth int8
	bound int8
}

func packMove(m Move) uint16 {
	if m.IsEmpty() {
		return 0
	}
	return uint16(m.From) | uint16(m.To)<<6 | uint16(m.Promotion)<<12
}

func unpackMove(packed uint16, p *Position) Move {
	if packed == 0 {
		return MoveEmpty
	}
	var from = int(packed & 0x3f)
	var to = int((packed >> 6) & 0x3f)
	var promotion = int((packed >> 12) & 0x7)
	var piece = p.PieceAt(from)
	var captured = p.PieceAt(to)
	if piece == Pawn && to == p.EpSquare && captured == NoPiece {
		captured = Pawn
	}
	return Move{From: from, To: to, Piece: piece, Captured: captured, Promotion: promotion}
}

// transTable is a fixed-size, direct-mapped transposition table. There is
// no depth-preferred or always-replace heuristic: a store always rewrites
// the slot its key maps to.
type transTable struct {
	entries []transEntry
}

func newTransTable() *transTable {
	return &transTable{entries: make([]transEntry, ttSize)}
}

func (tt *transTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = transEntry{}
	}
}

func (tt *transTable) Probe(key uint64) (depth, score, bound int, move uint16, ok bool) {
	var e = &tt.entries[uint32(key)&ttMask]
	// A stored entry always carries a non-zero bound, so bound 0 marks a
	// slot that has never been written (or was cleared).
	if e.bound == 0 || e.key32 != uint32(key>>32) {
		return 0, 0, 0, 0, false
	}
	return int(e.depth), int(e.score), int(e.bound), e.move, true
}

func (tt *transTable) Store(key uint64, depth, score, bound int, move Move) {
	var e = &tt.entries[uint32(key)&ttMask]
	var packed = packMove(move)
	if packed == 0 && e.key32 == uint32(key>>32) {
		packed = e.move
	}
	*e = transEntry{
		key32: uint32(key >> 32),
		move:  packed,
		score: int16(score),
		depth: int8(depth),
		bound: int8(bound),
	}
}
