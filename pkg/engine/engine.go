package engine

import (
	"context"
	"time"

	. "github.com/nanochess-go/chess/pkg/common"
)

// Engine is the synchronous, single-threaded search driver of §5: Search
// blocks until bestmove is ready, and there is no mid-search cancellation
// besides the time budget checked between iterative-deepening iterations
// and every couple thousand nodes inside the search itself.
type Engine struct {
	Options Options
	tt      *transTable
}

func NewEngine() *Engine {
	var e = &Engine{Options: NewOptions()}
	e.Prepare()
	return e
}

func (e *Engine) Prepare() {
	if e.tt == nil {
		e.tt = newTransTable()
	}
}

func (e *Engine) Clear() {
	if e.tt != nil {
		e.tt.Clear()
	}
}

// Search runs iterative deepening from searchParams.Position until the
// time budget or depth limit is reached, reporting progress through
// searchParams.Progress after each completed iteration.
func (e *Engine) Search(ctx context.Context, searchParams SearchParams) SearchInfo {
	e.Prepare()
	var start = time.Now()

	var p = searchParams.Position
	var sctx, cancel, budget, bounded = newSearchContext(ctx, searchParams.Limits, &p)
	defer cancel()

	var s = newSearcher(sctx, e.tt)

	var rootBuf [MaxMoves]Move
	var rootMoves = GenerateLegalMoves(&p, rootBuf[:0])

	var info SearchInfo
	if len(rootMoves) == 0 {
		return info
	}
	info.MainLine = []Move{rootMoves[0]}

	var maxDepth = e.Options.Depth
	if searchParams.Limits.Depth > 0 {
		maxDepth = searchParams.Limits.Depth
	}
	if maxDepth > maxHeight {
		maxDepth = maxHeight
	}

	var window = 50
	var score = 0

	for depth := 1; depth <= maxDepth; depth++ {
		var alpha, beta = -valueInfinity, valueInfinity
		if depth >= 4 {
			alpha, beta = score-window, score+window
		}

		var iterScore = s.alphaBeta(&p, depth, alpha, beta, 0, true)
		if s.timeUp {
			break
		}

		if depth >= 4 && (iterScore <= alpha || iterScore >= beta) {
			iterScore = s.alphaBeta(&p, depth, -valueInfinity, valueInfinity, 0, true)
			window = 50
		} else if depth >= 4 {
			window = 25
		}
		if s.timeUp {
			break
		}

		score = iterScore
		var bestMove = rootMoves[0]
		if s.pvs[0].size > 0 {
			bestMove = s.pvs[0].moves[0]
			info.MainLine = s.pvs[0].toSlice()
		} else {
			info.MainLine = []Move{bestMove}
		}
		info.Depth = depth
		info.Score = newUciScore(score)
		info.Nodes = s.nodes
		info.Time = time.Since(start)

		if searchParams.Progress != nil {
			searchParams.Progress(info)
		}

		if score >= valueMate-1000 || score <= -valueMate+1000 {
			break
		}
		if bounded && depth > 4 && time.Since(start) > (budget*40)/100 {
			break
		}
	}

	return info
}
