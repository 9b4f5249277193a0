package engine

// Options holds the handful of engine-tunable knobs exposed over UCI.
// Hash is accepted for protocol compatibility but does not resize the
// table: §6 specifies it need not, since the table is fixed at 2^20
// entries.
type Options struct {
	Depth int
	Hash  int
}

func NewOptions() Options {
	return Options{
		Depth: 10,
		Hash:  64,
	}
}

func (o *Options) SetDepth(d int) {
	if d < 1 {
		d = 1
	}
	if d > 30 {
		d = 30
	}
	o.Depth = d
}

// lmrReduction implements §4.8 step 7's late-move-reduction schedule: a
// reduction is only considered past the fourth move at depth >= 3, on a
// quiet, non-check move, and its size depends on how late the move was
// ordered. A move already flagged by the killer table or with a hot
// history score gets one ply of the reduction back.
func lmrReduction(depth, moveCount int, inCheck, quiet bool, isKiller bool, historyScore int) int {
	if !(moveCount > 4 && depth >= 3 && !inCheck && quiet) {
		return 0
	}
	var r int
	switch {
	case moveCount > 12:
		r = 3
	case moveCount > 6:
		r = 2
	default:
		r = 1
	}
	if isKiller || historyScore > 5000 {
		r--
		if r < 0 {
			r = 0
		}
	}
	return r
}
