package board_test

import (
	"errors"
	"testing"

	"libchess/board"
)

func kings(white, black board.Square) []board.Placement {
	return []board.Placement{
		{Square: white, Piece: board.WhiteKing},
		{Square: black, Piece: board.BlackKing},
	}
}

func TestSetupStartingEquivalent(t *testing.T) {
	want := board.StartingPosition()
	got, err := board.Setup(want.Placements(), board.White, board.CastleAll, board.NoSquare, 0, 1)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if got.Signature() != want.Signature() {
		t.Fatalf("signature %x != %x", got.Signature(), want.Signature())
	}
}

func TestSetupKingCount(t *testing.T) {
	_, err := board.Setup([]board.Placement{
		{Square: board.E1, Piece: board.WhiteKing},
	}, board.White, board.CastleNone, board.NoSquare, 0, 1)
	if !errors.Is(err, board.ErrKingCount) {
		t.Fatalf("err = %v, want ErrKingCount", err)
	}

	two := append(kings(board.E1, board.E8), board.Placement{Square: board.A5, Piece: board.WhiteKing})
	_, err = board.Setup(two, board.White, board.CastleNone, board.NoSquare, 0, 1)
	if !errors.Is(err, board.ErrKingCount) {
		t.Fatalf("err = %v, want ErrKingCount", err)
	}
}

func TestSetupPieceOverlap(t *testing.T) {
	pl := append(kings(board.E1, board.E8),
		board.Placement{Square: board.D4, Piece: board.WhiteQueen},
		board.Placement{Square: board.D4, Piece: board.WhiteRook},
	)
	_, err := board.Setup(pl, board.White, board.CastleNone, board.NoSquare, 0, 1)
	if !errors.Is(err, board.ErrPieceOverlap) {
		t.Fatalf("err = %v, want ErrPieceOverlap", err)
	}
}

func TestSetupPawnOnBackRank(t *testing.T) {
	for _, sq := range []board.Square{board.C1, board.C8} {
		pl := append(kings(board.E1, board.E8),
			board.Placement{Square: sq, Piece: board.WhitePawn})
		_, err := board.Setup(pl, board.White, board.CastleNone, board.NoSquare, 0, 1)
		if !errors.Is(err, board.ErrPawnOnBackRank) {
			t.Fatalf("pawn on %v: err = %v, want ErrPawnOnBackRank", sq, err)
		}
	}
}

func TestSetupCastlingRightsNeedAnchors(t *testing.T) {
	// King on e1 but no rook on h1.
	_, err := board.Setup(kings(board.E1, board.E8), board.White, board.CastleWhiteKing, board.NoSquare, 0, 1)
	if !errors.Is(err, board.ErrInvalidCastlingRight) {
		t.Fatalf("err = %v, want ErrInvalidCastlingRight", err)
	}

	// With the rook in place the right is fine.
	pl := append(kings(board.E1, board.E8), board.Placement{Square: board.H1, Piece: board.WhiteRook})
	if _, err := board.Setup(pl, board.White, board.CastleWhiteKing, board.NoSquare, 0, 1); err != nil {
		t.Fatalf("Setup with anchored right: %v", err)
	}
}

func TestSetupEnPassantConsistency(t *testing.T) {
	// Claimed target e6 but no black pawn on e5.
	_, err := board.Setup(kings(board.E1, board.E8), board.White, board.CastleNone, board.E6, 0, 1)
	if !errors.Is(err, board.ErrInvalidEnPassant) {
		t.Fatalf("err = %v, want ErrInvalidEnPassant", err)
	}

	// Wrong rank for the side to move.
	_, err = board.Setup(kings(board.E1, board.E8), board.White, board.CastleNone, board.E3, 0, 1)
	if !errors.Is(err, board.ErrInvalidEnPassant) {
		t.Fatalf("err = %v, want ErrInvalidEnPassant", err)
	}

	// A proper double-push aftermath is accepted.
	pl := append(kings(board.E1, board.E8), board.Placement{Square: board.E5, Piece: board.BlackPawn})
	b, err := board.Setup(pl, board.White, board.CastleNone, board.E6, 0, 1)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if b.EnPassantSquare() != board.E6 {
		t.Fatalf("en passant square = %v, want e6", b.EnPassantSquare())
	}
}

func TestSetupOpponentInCheck(t *testing.T) {
	// White to move while the black king is already attacked.
	pl := append(kings(board.E1, board.E8), board.Placement{Square: board.E4, Piece: board.WhiteRook})
	_, err := board.Setup(pl, board.White, board.CastleNone, board.NoSquare, 0, 1)
	if !errors.Is(err, board.ErrOpponentInCheck) {
		t.Fatalf("err = %v, want ErrOpponentInCheck", err)
	}

	// The same position with Black to move is a legal check position.
	b, err := board.Setup(pl, board.Black, board.CastleNone, board.NoSquare, 0, 1)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if !b.InCheck(board.Black) {
		t.Fatal("black should be in check")
	}
}

func TestSetupClockDefaults(t *testing.T) {
	b, err := board.Setup(kings(board.E1, board.E8), board.White, board.CastleNone, board.NoSquare, -3, 0)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if b.HalfmoveClock() != 0 || b.FullmoveNumber() != 1 {
		t.Fatalf("clocks = %d/%d, want 0/1", b.HalfmoveClock(), b.FullmoveNumber())
	}
}
