package engine_test

import (
	"context"
	"testing"

	"github.com/nanochess-go/chess/internal/testutil"
	. "github.com/nanochess-go/chess/pkg/common"
	"github.com/nanochess-go/chess/pkg/engine"
)

func TestSearchReturnsLegalMoveFromInitialPosition(t *testing.T) {
	var e = engine.NewEngine()
	e.Options.SetDepth(4)
	var p = NewInitialPosition()

	var info = e.Search(context.Background(), SearchParams{
		Position: p,
		Limits:   LimitsType{Depth: 4},
	})

	testutil.AssertTrue(t, len(info.MainLine) > 0, "search should return a main line")

	var buf [MaxMoves]Move
	var legal = GenerateLegalMoves(&p, buf[:0])
	var found = false
	for _, m := range legal {
		if m.SameAs(info.MainLine[0]) {
			found = true
		}
	}
	testutil.AssertTrue(t, found, "best move should be one of the legal moves")
}

func TestSearchFindsMateInOne(t *testing.T) {
	// Black king on g8 boxed in by the g7 pawn and the king on g6; the white
	// queen mates in one (Qd8 or Qd5).
	var p, err = NewPositionFromFEN("6k1/6P1/6K1/8/8/8/8/3Q4 w - - 0 1")
	testutil.AssertNoError(t, err, "fen parse")

	var e = engine.NewEngine()
	e.Options.SetDepth(3)

	var info = e.Search(context.Background(), SearchParams{
		Position: p,
		Limits:   LimitsType{Depth: 3},
	})

	testutil.AssertTrue(t, info.Score.Mate != 0, "search should detect a forced mate")
}

func TestSearchIsDeterministicGivenSamePosition(t *testing.T) {
	var p = NewInitialPosition()
	var e1 = engine.NewEngine()
	e1.Options.SetDepth(3)
	var info1 = e1.Search(context.Background(), SearchParams{Position: p, Limits: LimitsType{Depth: 3}})

	var e2 = engine.NewEngine()
	e2.Options.SetDepth(3)
	var info2 = e2.Search(context.Background(), SearchParams{Position: p, Limits: LimitsType{Depth: 3}})

	testutil.AssertTrue(t, info1.MainLine[0].SameAs(info2.MainLine[0]), "search from a fixed position should be deterministic")
}
