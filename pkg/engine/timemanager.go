package engine

import (
	"context"
	"time"

	. "github.com/nanochess-go/chess/pkg/common"
)

// timeBudget implements §6's allocation policy: an explicit movetime wins
// outright; otherwise a budget is derived from the side's remaining clock,
// divided by the moves left (40 when movestogo is not given), plus 80% of
// the side's increment, and
// capped so a single move can never eat more than a third of the clock. No
// budget at all means the search is bounded by depth only.
func timeBudget(limits LimitsType, whiteToMove bool) (budget time.Duration, bounded bool) {
	if limits.MoveTime > 0 {
		return time.Duration(float64(limits.MoveTime)*0.95) * time.Millisecond, true
	}

	var timeLeft, increment int
	if whiteToMove {
		timeLeft, increment = limits.WhiteTime, limits.WhiteIncrement
	} else {
		timeLeft, increment = limits.BlackTime, limits.BlackIncrement
	}
	if timeLeft <= 0 {
		return 0, false
	}

	var movesToGo = limits.MovesToGo
	if movesToGo <= 0 {
		movesToGo = 40
	}
	var ms = timeLeft/movesToGo + (increment*8)/10
	if cap := timeLeft / 3; ms > cap {
		ms = cap
	}
	return time.Duration(ms) * time.Millisecond, true
}

func newSearchContext(ctx context.Context, limits LimitsType, p *Position) (context.Context, context.CancelFunc, time.Duration, bool) {
	var budget, bounded = timeBudget(limits, p.WhiteToMove)
	if limits.Infinite {
		var c, cancel = context.WithCancel(ctx)
		return c, cancel, 0, false
	}
	if !bounded {
		var c, cancel = context.WithCancel(ctx)
		return c, cancel, 0, false
	}
	var c, cancel = context.WithTimeout(ctx, budget)
	return c, cancel, budget, true
}
