package engine

import . "github.com/nanochess-go/chess/pkg/common"

var pieceValues = [6]int{100, 320, 330, 500, 900, 0}

const centralSquaresMask uint64 = 0x0000001818000000

// evaluate returns a score from white's perspective, negated for black to
// move, per §4.6: material plus a small king-safety/castling term, a
// central-pawn bonus, and a passed-pawn advancement ramp. This is
// deliberately a simple material+positional function, not a tuned one.
func evaluate(p *Position) int {
	var score int

	for piece := Pawn; piece <= King; piece++ {
		var count = PopCount(p.Pieces[White][piece]) - PopCount(p.Pieces[Black][piece])
		score += pieceValues[piece] * count
	}

	score += kingSafety(p, White) - kingSafety(p, Black)

	score += 20 * (PopCount(p.Pieces[White][Pawn]&centralSquaresMask) -
		PopCount(p.Pieces[Black][Pawn]&centralSquaresMask))

	for bb := p.Pieces[White][Pawn]; bb != 0; bb &= bb - 1 {
		var rank = Rank(FirstOne(bb))
		if rank >= Rank5 {
			score += (rank - Rank4) * 15
		}
	}
	for bb := p.Pieces[Black][Pawn]; bb != 0; bb &= bb - 1 {
		var rank = Rank(FirstOne(bb))
		if rank <= Rank4 {
			score -= (Rank5 - rank) * 15
		}
	}

	if !p.WhiteToMove {
		score = -score
	}
	return score
}

func kingSafety(p *Position, color int) int {
	var kingSq = p.KingSquare(color)
	if kingSq == SquareNone {
		return 0
	}
	var kingSide, queenSide, homeSq int
	if color == White {
		kingSide, queenSide, homeSq = SquareG1, SquareC1, SquareE1
	} else {
		kingSide, queenSide, homeSq = SquareG8, SquareC8, SquareE8
	}
	switch kingSq {
	case kingSide, queenSide:
		return 40
	case homeSq:
		return -20
	default:
		return 0
	}
}
