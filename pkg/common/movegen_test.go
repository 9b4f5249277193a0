package common_test

import (
	"testing"

	. "github.com/nanochess-go/chess/pkg/common"
	"github.com/nanochess-go/chess/internal/testutil"
)

// Known perft node counts from the initial position, used as a ground-truth
// regression check on the move generator and copy-make legality filter.
func TestPerftInitialPosition(t *testing.T) {
	var cases = []struct {
		depth int
		nodes int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	var p = NewInitialPosition()
	for _, c := range cases {
		var got = testutil.Perft(&p, c.depth)
		testutil.AssertEqual(t, got, c.nodes, "perft depth")
	}
}

func TestGenerateLegalMovesNeverLeavesKingInCheck(t *testing.T) {
	var p, err = NewPositionFromFEN("r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5Q2/PPPP1PPP/RNB1K1NR b KQkq - 2 3")
	testutil.AssertNoError(t, err, "fen parse")

	var buf [MaxMoves]Move
	var moves = GenerateLegalMoves(&p, buf[:0])
	testutil.AssertTrue(t, len(moves) > 0, "position should have legal moves")

	var child Position
	for _, m := range moves {
		p.MakeMove(m, &child)
		testutil.AssertFalse(t, child.IsAttacked(child.KingSquare(Black), White), "legal move "+m.String()+" left black king in check")
	}
}

func TestStalemateHasNoLegalMoves(t *testing.T) {
	// Classic stalemate: black king a8 boxed in, no check.
	var p, err = NewPositionFromFEN("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	testutil.AssertNoError(t, err, "fen parse")

	testutil.AssertFalse(t, p.InCheck(), "black should not be in check")
	testutil.AssertFalse(t, HasLegalMove(&p), "black should have no legal move")
}
