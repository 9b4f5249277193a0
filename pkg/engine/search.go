package engine

import (
	"context"

	. "github.com/nanochess-go/chess/pkg/common"
)

type pvLine struct {
	moves [stackSize]Move
	size  int
}

func (pv *pvLine) clear() {
	pv.size = 0
}

func (pv *pvLine) assign(m Move, child *pvLine) {
	pv.moves[0] = m
	pv.size = 1
	if child.size > 0 {
		copy(pv.moves[1:], child.moves[:child.size])
		pv.size += child.size
	}
}

func (pv *pvLine) toSlice() []Move {
	var result = make([]Move, pv.size)
	copy(result, pv.moves[:pv.size])
	return result
}

// searcher holds everything an in-progress search mutates: the
// transposition table, the history and killer tables, and a per-ply stack
// of scratch move buffers and PV lines. One searcher serves one Search
// call; the search is strictly single-threaded (§5), so none of this needs
// synchronization.
type searcher struct {
	tt      *transTable
	history historyTable
	killers [stackSize][2]Move
	pvs     [stackSize]pvLine
	moveBuf [stackSize][MaxMoves]Move
	qBuf    [maxQDepth + 1][MaxMoves]Move
	nodes   int64
	ctx     context.Context
	timeUp  bool
}

func newSearcher(ctx context.Context, tt *transTable) *searcher {
	return &searcher{ctx: ctx, tt: tt}
}

func (s *searcher) checkTime() {
	if s.nodes&2047 == 0 {
		select {
		case <-s.ctx.Done():
			s.timeUp = true
		default:
		}
	}
}

func colorIndexOf(p *Position) int {
	if p.WhiteToMove {
		return White
	}
	return Black
}

// quiescence implements §4.7: stand-pat, delta pruning, bounded recursion
// to maxQDepth. d starts at 0 and only ever decreases, so the comparison
// against -maxQDepth happens on negative numbers.
func (s *searcher) quiescence(p *Position, alpha, beta, d int) int {
	s.nodes++
	s.checkTime()

	var stand = evaluate(p)
	if stand >= beta {
		return beta
	}
	if stand > alpha {
		alpha = stand
	}
	if d <= -maxQDepth {
		return stand
	}

	var buf = s.qBuf[-d][:0]
	var moves = GenerateCaptureMoves(p, buf)
	orderMoves(moves, colorIndexOf(p), MoveEmpty, MoveEmpty, MoveEmpty, &s.history)

	var child Position
	for _, m := range moves {
		if s.timeUp {
			break
		}
		var delta = 200
		if m.Piece != Pawn {
			delta = 900
		}
		if d < -1 && stand+delta < alpha {
			continue
		}
		if !p.MakeMove(m, &child) {
			continue
		}
		var score = -s.quiescence(&child, -beta, -alpha, d-1)
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// alphaBeta implements §4.8's nine-step procedure, fail-hard throughout.
// ply is the distance from the search root; allowNull gates null-move
// pruning so a null move is never tried twice in a row.
func (s *searcher) alphaBeta(p *Position, depth, alpha, beta, ply int, allowNull bool) int {
	s.nodes++
	s.checkTime()

	if ply >= maxHeight {
		return evaluate(p)
	}
	s.pvs[ply].clear()

	var inCheck = p.InCheck()
	if inCheck && ply+1 < maxHeight {
		depth++
	}

	var oldAlpha = alpha
	var ttMove = MoveEmpty
	if ttDepth, ttValue, ttBound, ttPacked, ok := s.tt.Probe(p.Hash); ok {
		if ttPacked != 0 {
			ttMove = unpackMove(ttPacked, p)
		}
		if ttDepth >= depth {
			var v = valueFromTT(ttValue, ply)
			switch ttBound {
			case boundExact:
				if ply == 0 && ttMove != MoveEmpty {
					s.pvs[0].moves[0] = ttMove
					s.pvs[0].size = 1
				}
				return v
			case boundUpper:
				if v <= alpha {
					return alpha
				}
			case boundLower:
				if v >= beta {
					return beta
				}
			}
		}
	}

	if depth <= 0 {
		return s.quiescence(p, alpha, beta, 0)
	}

	var side = colorIndexOf(p)

	if allowNull && !inCheck && depth >= 3 && ply > 0 {
		var reduction = 2
		if depth > 6 {
			reduction = 3
		}
		var child Position
		p.MakeNullMove(&child)
		var score = -s.alphaBeta(&child, depth-1-reduction, -beta, -beta+1, ply+1, false)
		if score >= beta {
			return beta
		}
	}

	var buf = s.moveBuf[ply][:0]
	var moves = GenerateLegalMoves(p, buf)
	if len(moves) == 0 {
		if inCheck {
			return -valueMate + ply
		}
		return 0
	}

	var killer1, killer2 = s.killers[ply][0], s.killers[ply][1]
	orderMoves(moves, side, ttMove, killer1, killer2, &s.history)

	var bestMove = moves[0]
	var best = -valueInfinity
	var child Position

	for moveCount, m := range moves {
		if s.timeUp {
			break
		}
		var quiet = isQuiet(m)
		var notCapture = !m.IsCapture()

		var reduction int
		if moveCount+1 > 4 && depth >= 3 && !inCheck && quiet {
			var isKiller = m.SameAs(killer1) || m.SameAs(killer2)
			reduction = lmrReduction(depth, moveCount+1, inCheck, quiet, isKiller, s.history.Get(side, m))
		}

		if !p.MakeMove(m, &child) {
			continue
		}

		var newDepth = depth - 1 - reduction
		var score int
		var fullDepthSearched bool
		if moveCount == 0 {
			score = -s.alphaBeta(&child, newDepth, -beta, -alpha, ply+1, true)
		} else {
			score = -s.alphaBeta(&child, newDepth, -alpha-1, -alpha, ply+1, true)
			if score > alpha && score < beta {
				score = -s.alphaBeta(&child, depth-1, -beta, -alpha, ply+1, true)
				fullDepthSearched = true
			}
		}
		if reduction > 0 && score > alpha && !fullDepthSearched {
			score = -s.alphaBeta(&child, depth-1, -beta, -alpha, ply+1, true)
		}

		if score > best {
			best = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
			s.pvs[ply].assign(m, &s.pvs[ply+1])
			if notCapture {
				s.history.Update(side, m, depth)
			}
		}
		if alpha >= beta {
			if notCapture && !m.SameAs(s.killers[ply][0]) {
				s.killers[ply][1] = s.killers[ply][0]
				s.killers[ply][0] = m
			}
			break
		}

		if depth <= 2 && !inCheck && moveCount+1 > 8 && notCapture &&
			evaluate(p)+depth*100 < alpha {
			break
		}
	}

	var bound int
	switch {
	case best <= oldAlpha:
		bound = boundUpper
	case best >= beta:
		bound = boundLower
	default:
		bound = boundExact
	}
	s.tt.Store(p.Hash, depth, valueToTT(best, ply), bound, bestMove)

	return best
}
