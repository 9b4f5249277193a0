package engine

import . "github.com/nanochess-go/chess/pkg/common"

// Score priority tiers, per §4.5: TT move first, then captures by
// MVV-LVA, then killers, then history; a flat bonus nudges queen
// promotions above ordinary quiets.
const (
	scoreTT           = 1000000
	scoreCaptureBase  = 100000
	scoreKiller       = 90000
	scorePromoteQueen = 80000
)

var mvvAttackerValue = [6]int{100, 300, 300, 500, 900, 10000}

func moveScore(m Move, side int, ttMove Move, killer1, killer2 Move, history *historyTable) int {
	if m.SameAs(ttMove) {
		return scoreTT
	}
	var score int
	if m.IsCapture() {
		score = scoreCaptureBase + mvvAttackerValue[m.Captured]*10 - mvvAttackerValue[m.Piece]
	} else if m.SameAs(killer1) || m.SameAs(killer2) {
		score = scoreKiller
	} else {
		score = history.Get(side, m)
	}
	if m.Promotion == Queen {
		score += scorePromoteQueen
	}
	return score
}

// orderMoves scores every move in place and stable-insertion-sorts them
// descending by score; stability is not required by §4.5 but keeps move
// order deterministic across otherwise-equal scores, which is convenient
// for tests and reproducible PVs.
func orderMoves(moves []Move, side int, ttMove Move, killer1, killer2 Move, history *historyTable) {
	for i := range moves {
		moves[i].Score = moveScore(moves[i], side, ttMove, killer1, killer2, history)
	}
	for i := 1; i < len(moves); i++ {
		var j, t = i, moves[i]
		for ; j > 0 && moves[j-1].Score < t.Score; j-- {
			moves[j] = moves[j-1]
		}
		moves[j] = t
	}
}
