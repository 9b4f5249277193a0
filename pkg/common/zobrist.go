package common

import "math/rand"

// Precomputed Zobrist keys, built once at startup from a fixed seed so that
// hashes are reproducible across runs (useful for perft/TT regression tests).
var (
	pieceSquareKey [2][6][64]uint64
	castleKey      [16]uint64
	epFileKey      [8]uint64
	sideKey        uint64
)

func PieceSquareKey(color, piece, square int) uint64 {
	return pieceSquareKey[color][piece][square]
}

func init() {
	var r = rand.New(rand.NewSource(20190101))
	for c := 0; c < 2; c++ {
		for p := 0; p < 6; p++ {
			for sq := 0; sq < 64; sq++ {
				pieceSquareKey[c][p][sq] = r.Uint64()
			}
		}
	}
	for i := range epFileKey {
		epFileKey[i] = r.Uint64()
	}
	sideKey = r.Uint64()

	var castleBit [4]uint64
	for i := range castleBit {
		castleBit[i] = r.Uint64()
	}
	for cr := range castleKey {
		for bit := 0; bit < 4; bit++ {
			if cr&(1<<uint(bit)) != 0 {
				castleKey[cr] ^= castleBit[bit]
			}
		}
	}
}

// HashFromScratch recomputes the Zobrist key of p from its pieces, castling
// rights, en-passant square and side to move, independent of the incremental
// Hash field. Used by property tests to check hash consistency.
func HashFromScratch(p *Position) uint64 {
	var h uint64
	for c := 0; c < 2; c++ {
		for piece := 0; piece < 6; piece++ {
			for bb := p.Pieces[c][piece]; bb != 0; bb &= bb - 1 {
				h ^= PieceSquareKey(c, piece, FirstOne(bb))
			}
		}
	}
	h ^= castleKey[p.CastleRights]
	if p.EpSquare != SquareNone {
		h ^= epFileKey[File(p.EpSquare)]
	}
	if p.WhiteToMove {
		h ^= sideKey
	}
	return h
}
