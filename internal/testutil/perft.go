package testutil

import "github.com/nanochess-go/chess/pkg/common"

// Perft counts leaf nodes reachable from p in exactly depth plies, walking
// the legal move tree with copy-make. Used by the movegen perft test to
// check generated node counts against known seed totals.
func Perft(p *common.Position, depth int) int64 {
	if depth <= 0 {
		return 1
	}
	var buf [common.MaxMoves]common.Move
	var moves = common.GenerateLegalMoves(p, buf[:0])
	if depth == 1 {
		return int64(len(moves))
	}
	var total int64
	var child common.Position
	for _, m := range moves {
		p.MakeMove(m, &child)
		total += Perft(&child, depth-1)
	}
	return total
}
