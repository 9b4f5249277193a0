package engine

import (
	. "github.com/nanochess-go/chess/pkg/common"
)

const (
	stackSize     = 128
	maxHeight     = stackSize - 1
	maxQDepth     = 6
	valueMate     = 30000
	valueInfinity = valueMate + 1
	valueWin      = valueMate - 2*maxHeight
	valueLoss     = -valueWin
)

func winIn(height int) int {
	return valueMate - height
}

func lossIn(height int) int {
	return -valueMate + height
}

// valueToTT/valueFromTT adjust mate scores between the node's own ply and
// the ply-independent form stored in the transposition table, so a mate
// score found deep in one branch is not misread as a shorter or longer mate
// when retrieved at a different height.
func valueToTT(v, height int) int {
	if v >= valueWin {
		return v + height
	}
	if v <= valueLoss {
		return v - height
	}
	return v
}

func valueFromTT(v, height int) int {
	if v >= valueWin {
		return v - height
	}
	if v <= valueLoss {
		return v + height
	}
	return v
}

func newUciScore(v int) UciScore {
	if v >= valueWin {
		return UciScore{Mate: (valueMate - v + 1) / 2}
	} else if v <= valueLoss {
		return UciScore{Mate: (-valueMate - v) / 2}
	}
	return UciScore{Centipawns: v}
}

func isQuiet(m Move) bool {
	return !m.IsCaptureOrPromotion()
}
