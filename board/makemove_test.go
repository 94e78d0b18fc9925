package board_test

import (
	"errors"
	"testing"

	"libchess/board"
	"libchess/fen"
)

func mustApply(t *testing.T, b board.Board, m board.Move) board.Board {
	t.Helper()
	next, err := b.Apply(m)
	if err != nil {
		t.Fatalf("Apply(%s): %v", m, err)
	}
	return next
}

func TestApplyDoesNotMutateReceiver(t *testing.T) {
	b := board.StartingPosition()
	before := fen.Encode(b)
	sig := b.Signature()

	next := mustApply(t, b, board.NewMove(board.Pawn, board.E2, board.E4))

	if got := fen.Encode(b); got != before {
		t.Fatalf("receiver changed:\nbefore %s\nafter  %s", before, got)
	}
	if b.Signature() != sig {
		t.Fatal("receiver signature changed")
	}
	if next.Signature() == sig {
		t.Fatal("successor signature should differ")
	}
}

func TestApplyRejectsIllegalMove(t *testing.T) {
	b := board.StartingPosition()
	_, err := b.Apply(board.NewMove(board.Knight, board.B1, board.B4))
	if !errors.Is(err, board.ErrIllegalMove) {
		t.Fatalf("err = %v, want ErrIllegalMove", err)
	}
	// Moving the opponent's piece is just as illegal.
	_, err = b.Apply(board.NewMove(board.Pawn, board.E7, board.E5))
	if !errors.Is(err, board.ErrIllegalMove) {
		t.Fatalf("err = %v, want ErrIllegalMove", err)
	}
}

func TestDoublePushSetsEnPassantForOnePly(t *testing.T) {
	b := board.StartingPosition()
	b = mustApply(t, b, board.NewMove(board.Pawn, board.E2, board.E4))
	if b.EnPassantSquare() != board.E3 {
		t.Fatalf("en passant square = %v, want e3", b.EnPassantSquare())
	}

	// Any reply that is not an en-passant capture closes the window.
	b = mustApply(t, b, board.NewMove(board.Knight, board.G8, board.F6))
	if b.EnPassantSquare() != board.NoSquare {
		t.Fatalf("en passant square = %v, want none", b.EnPassantSquare())
	}
}

func TestEnPassantOnlyImmediately(t *testing.T) {
	start := decode(t, "rnbqkbnr/ppp1pppp/8/8/3p4/8/PPPPPPPP/RNBQKBNR w KQkq - 0 3")
	ep := board.NewMove(board.Pawn, board.D4, board.E3)

	// Right after e2e4 the d4 pawn may capture en passant.
	b := mustApply(t, start, board.NewMove(board.Pawn, board.E2, board.E4))
	after := mustApply(t, b, ep)
	if after.PieceAt(board.E4) != board.NoPiece {
		t.Fatal("en passant must remove the e4 pawn")
	}
	if after.PieceAt(board.E3) != board.BlackPawn {
		t.Fatal("capturing pawn should stand on e3")
	}

	// If Black lets the chance pass, it is gone for good.
	b = mustApply(t, b, board.NewMove(board.Knight, board.G8, board.F6))
	b = mustApply(t, b, board.NewMove(board.Knight, board.B1, board.C3))
	if _, err := b.Apply(ep); !errors.Is(err, board.ErrIllegalMove) {
		t.Fatalf("stale en passant: err = %v, want ErrIllegalMove", err)
	}
}

func TestCastlingMovesRookToo(t *testing.T) {
	b := decode(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	b = mustApply(t, b, board.NewMove(board.King, board.E1, board.G1))

	if b.PieceAt(board.G1) != board.WhiteKing || b.PieceAt(board.F1) != board.WhiteRook {
		t.Fatalf("after O-O: g1=%v f1=%v", b.PieceAt(board.G1), b.PieceAt(board.F1))
	}
	if b.PieceAt(board.H1) != board.NoPiece || b.PieceAt(board.E1) != board.NoPiece {
		t.Fatal("king and rook origins should be empty")
	}
	if b.CastlingRights().KingSide(board.White) || b.CastlingRights().QueenSide(board.White) {
		t.Fatal("white rights must be gone after castling")
	}

	// Black castles long.
	b = mustApply(t, b, board.NewMove(board.King, board.E8, board.C8))
	if b.PieceAt(board.C8) != board.BlackKing || b.PieceAt(board.D8) != board.BlackRook {
		t.Fatalf("after ...O-O-O: c8=%v d8=%v", b.PieceAt(board.C8), b.PieceAt(board.D8))
	}
}

func TestRookEventsClearCastlingRights(t *testing.T) {
	b := decode(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	// A rook leaving its corner drops that side's right.
	afterRookMove := mustApply(t, b, board.NewMove(board.Rook, board.A1, board.A4))
	if afterRookMove.CastlingRights().QueenSide(board.White) {
		t.Fatal("white queen-side right should be gone")
	}
	if !afterRookMove.CastlingRights().KingSide(board.White) {
		t.Fatal("white king-side right should remain")
	}

	// Capturing a rook on its home square drops the victim's right.
	c := decode(t, "r3k2r/8/8/8/8/8/6B1/R3K2R w KQkq - 0 1")
	afterCapture := mustApply(t, c, board.NewMove(board.Bishop, board.G2, board.A8))
	if afterCapture.CastlingRights().QueenSide(board.Black) {
		t.Fatal("black queen-side right should be gone after Bxa8")
	}
	if !afterCapture.CastlingRights().KingSide(board.Black) {
		t.Fatal("black king-side right should remain")
	}
}

func TestPromotionRequiresExplicitChoice(t *testing.T) {
	b := decode(t, "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1")

	// A plain pawn move to the last rank does not match any legal move.
	if _, err := b.Apply(board.NewMove(board.Pawn, board.B7, board.B8)); !errors.Is(err, board.ErrIllegalMove) {
		t.Fatalf("promotion without piece choice: err = %v, want ErrIllegalMove", err)
	}

	next := mustApply(t, b, board.NewPromotionMove(board.B7, board.B8, board.Knight))
	if next.PieceAt(board.B8) != board.WhiteKnight {
		t.Fatalf("b8 = %v, want white knight", next.PieceAt(board.B8))
	}
}

func TestClocks(t *testing.T) {
	b := board.StartingPosition()

	b = mustApply(t, b, board.NewMove(board.Knight, board.G1, board.F3))
	if b.HalfmoveClock() != 1 {
		t.Fatalf("halfmove clock = %d, want 1", b.HalfmoveClock())
	}
	if b.FullmoveNumber() != 1 {
		t.Fatalf("fullmove number = %d, want 1 before Black's reply", b.FullmoveNumber())
	}

	b = mustApply(t, b, board.NewMove(board.Knight, board.G8, board.F6))
	if b.FullmoveNumber() != 2 {
		t.Fatalf("fullmove number = %d, want 2 after Black's move", b.FullmoveNumber())
	}
	if b.HalfmoveClock() != 2 {
		t.Fatalf("halfmove clock = %d, want 2", b.HalfmoveClock())
	}

	// A pawn advance resets the clock.
	b = mustApply(t, b, board.NewMove(board.Pawn, board.D2, board.D4))
	if b.HalfmoveClock() != 0 {
		t.Fatalf("halfmove clock = %d, want 0 after pawn move", b.HalfmoveClock())
	}

	// So does a capture.
	b = mustApply(t, b, board.NewMove(board.Pawn, board.D7, board.D5))
	b = mustApply(t, b, board.NewMove(board.Knight, board.F3, board.E5))
	b = mustApply(t, b, board.NewMove(board.Knight, board.F6, board.E4))
	b = mustApply(t, b, board.NewMove(board.Knight, board.B1, board.C3))
	if b.HalfmoveClock() != 3 {
		t.Fatalf("halfmove clock = %d, want 3", b.HalfmoveClock())
	}
	b = mustApply(t, b, board.NewMove(board.Knight, board.E4, board.C3))
	if b.HalfmoveClock() != 0 {
		t.Fatalf("halfmove clock = %d, want 0 after capture", b.HalfmoveClock())
	}
}

func TestSignatureIncrementalMatchesRoundTrip(t *testing.T) {
	// The incrementally-maintained signature must equal the one a re-decode
	// of the encoded position computes from scratch.
	b := board.StartingPosition()
	script := []board.Move{
		board.NewMove(board.Pawn, board.E2, board.E4),
		board.NewMove(board.Pawn, board.C7, board.C5),
		board.NewMove(board.Knight, board.G1, board.F3),
		board.NewMove(board.Pawn, board.D7, board.D6),
		board.NewMove(board.Pawn, board.D2, board.D4),
		board.NewMove(board.Pawn, board.C5, board.D4),
		board.NewMove(board.Knight, board.F3, board.D4),
	}
	for _, m := range script {
		b = mustApply(t, b, m)
		fresh := decode(t, fen.Encode(b))
		if fresh.Signature() != b.Signature() {
			t.Fatalf("after %s: incremental %x != recomputed %x", m, b.Signature(), fresh.Signature())
		}
	}
}
