package engine

import (
	"testing"

	"github.com/nanochess-go/chess/internal/testutil"
	. "github.com/nanochess-go/chess/pkg/common"
)

func TestTransTableRoundTripsStoredEntry(t *testing.T) {
	var tt = newTransTable()
	var p = NewInitialPosition()
	var m = Move{From: SquareE2, To: SquareE4, Piece: Pawn, Captured: NoPiece}

	tt.Store(p.Hash, 6, 123, boundExact, m)

	var depth, score, bound, packed, ok = tt.Probe(p.Hash)
	testutil.AssertTrue(t, ok, "probe should hit after store")
	testutil.AssertEqual(t, depth, 6, "depth")
	testutil.AssertEqual(t, score, 123, "score")
	testutil.AssertEqual(t, bound, boundExact, "bound")

	var got = unpackMove(packed, &p)
	testutil.AssertTrue(t, got.SameAs(m), "unpacked move should match stored move")
}

func TestTransTableStoreIsIdempotent(t *testing.T) {
	var tt = newTransTable()
	var p = NewInitialPosition()
	var m = Move{From: SquareD2, To: SquareD4, Piece: Pawn, Captured: NoPiece}

	tt.Store(p.Hash, 4, 50, boundLower, m)
	var depth1, score1, bound1, _, _ = tt.Probe(p.Hash)

	tt.Store(p.Hash, 4, 50, boundLower, m)
	var depth2, score2, bound2, _, _ = tt.Probe(p.Hash)

	testutil.AssertEqual(t, depth1, depth2, "depth should be unchanged on repeated identical store")
	testutil.AssertEqual(t, score1, score2, "score should be unchanged on repeated identical store")
	testutil.AssertEqual(t, bound1, bound2, "bound should be unchanged on repeated identical store")
}

func TestTransTableProbeMissOnDifferentKey(t *testing.T) {
	var tt = newTransTable()
	var _, _, _, _, ok = tt.Probe(0xdeadbeef)
	testutil.AssertFalse(t, ok, "empty table should miss every probe")
}

func TestPackMovePreservesPromotion(t *testing.T) {
	var m = Move{From: SquareA7, To: SquareA8, Piece: Pawn, Captured: NoPiece, Promotion: Queen}
	var p, _ = NewPositionFromFEN("8/P7/8/8/8/8/8/4k2K w - - 0 1")

	var packed = packMove(m)
	var got = unpackMove(packed, &p)

	testutil.AssertEqual(t, got.Promotion, Queen, "promotion should survive pack/unpack round trip")
}
