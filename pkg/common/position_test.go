package common_test

import (
	"testing"

	. "github.com/nanochess-go/chess/pkg/common"
	"github.com/nanochess-go/chess/internal/testutil"
)

func TestInitialPositionHashMatchesScratch(t *testing.T) {
	var p = NewInitialPosition()
	testutil.AssertEqual(t, p.Hash, HashFromScratch(&p), "initial position hash")
}

func TestMakeMoveKeepsHashConsistent(t *testing.T) {
	var p = NewInitialPosition()
	var buf [MaxMoves]Move
	var moves = GenerateLegalMoves(&p, buf[:0])
	for _, m := range moves {
		var child Position
		if !p.MakeMove(m, &child) {
			continue
		}
		testutil.AssertEqual(t, child.Hash, HashFromScratch(&child), "hash after "+m.String())
	}
}

func TestMakeMoveKeepsOccupancyConsistent(t *testing.T) {
	var p = NewInitialPosition()
	var buf [MaxMoves]Move
	var moves = GenerateLegalMoves(&p, buf[:0])
	for _, m := range moves {
		var child Position
		if !p.MakeMove(m, &child) {
			continue
		}
		var wantAll = child.Occ[White] | child.Occ[Black]
		testutil.AssertEqual(t, child.All, wantAll, "All after "+m.String())
		testutil.AssertTrue(t, child.Occ[White]&child.Occ[Black] == 0, "overlap after "+m.String())
	}
}

func TestNoLegalMoveLeavesOwnKingInCheck(t *testing.T) {
	var p = NewInitialPosition()
	var buf [MaxMoves]Move
	var moves = GenerateLegalMoves(&p, buf[:0])
	for _, m := range moves {
		var child Position
		p.MakeMove(m, &child)
		var mover = colorOf(p.WhiteToMove)
		testutil.AssertFalse(t, child.IsAttacked(child.KingSquare(mover), opposite(mover)), "own king left in check by "+m.String())
	}
}

func colorOf(whiteToMove bool) int {
	if whiteToMove {
		return White
	}
	return Black
}

func opposite(c int) int {
	return c ^ 1
}

func TestScholarsMateDeliversCheckmate(t *testing.T) {
	// 1.e4 e5 2.Bc4 Nc6 3.Qh5 Nf6 4.Qxf7#
	var p = NewInitialPosition()
	var moves = []string{"e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6", "h5f7"}
	for _, lan := range moves {
		var m, ok = ParseLANMove(&p, lan)
		testutil.AssertTrue(t, ok, "move "+lan+" should be legal")
		var child Position
		p.MakeMove(m, &child)
		p = child
	}
	testutil.AssertTrue(t, p.InCheck(), "black king should be in check after Qxf7")
	testutil.AssertFalse(t, HasLegalMove(&p), "black should have no legal replies")
}

func TestEnPassantCaptureRemovesPawn(t *testing.T) {
	var p, err = NewPositionFromFEN("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 4")
	testutil.AssertNoError(t, err, "fen parse")

	var m, ok = ParseLANMove(&p, "e5f6")
	testutil.AssertTrue(t, ok, "en passant capture should be legal")

	var child Position
	testutil.AssertTrue(t, p.MakeMove(m, &child), "en passant move should be legal")
	testutil.AssertEqual(t, child.PieceAt(MakeSquare(FileF, Rank5)), NoPiece, "captured pawn should be removed")
	testutil.AssertEqual(t, child.PieceAt(MakeSquare(FileF, Rank6)), Pawn, "capturing pawn should land on f6")
}

func TestCastlingBlockedByAttackedSquare(t *testing.T) {
	// White king on e1, rook on h1, black rook raking f1 via open file: O-O illegal.
	var p, err = NewPositionFromFEN("4k3/8/8/8/8/8/5r2/4K2R w K - 0 1")
	testutil.AssertNoError(t, err, "fen parse")

	var buf [MaxMoves]Move
	var moves = GenerateLegalMoves(&p, buf[:0])
	for _, m := range moves {
		testutil.AssertFalse(t, m.From == SquareE1 && m.To == SquareG1, "O-O should not be legal through an attacked square")
	}
}

func TestPromotionToQueen(t *testing.T) {
	var p, err = NewPositionFromFEN("8/P7/8/8/8/8/8/4k2K w - - 0 1")
	testutil.AssertNoError(t, err, "fen parse")

	var m, ok = ParseLANMove(&p, "a7a8q")
	testutil.AssertTrue(t, ok, "promotion move should be legal")
	testutil.AssertEqual(t, m.Promotion, Queen, "promotion piece")

	var child Position
	testutil.AssertTrue(t, p.MakeMove(m, &child), "promotion move should be legal")
	testutil.AssertEqual(t, child.PieceAt(SquareA8), Queen, "promoted piece should be a queen")
}
