package engine

import . "github.com/nanochess-go/chess/pkg/common"

const historyAgeThreshold = 100000

// historyTable tracks how often a quiet move has raised alpha or produced a
// cutoff, indexed by (side to move, from, to). This is the plain
// depth-squared counter the original search used, rather than a
// continuation-history scheme.
type historyTable struct {
	scores [2][64][64]int
}

func (h *historyTable) Clear() {
	h.scores = [2][64][64]int{}
}

func (h *historyTable) Get(side int, m Move) int {
	return h.scores[side][m.From][m.To]
}

// Update rewards a quiet move that improved the search at depth, aging the
// whole table by halving once any entry crosses historyAgeThreshold.
func (h *historyTable) Update(side int, m Move, depth int) {
	var cell = &h.scores[side][m.From][m.To]
	*cell += depth * depth
	if *cell > historyAgeThreshold {
		for s := 0; s < 2; s++ {
			for f := 0; f < 64; f++ {
				for t := 0; t < 64; t++ {
					h.scores[s][f][t] /= 2
				}
			}
		}
	}
}
