package board

import "github.com/pkg/errors"

// Setup builds a validated position from scratch. Checks run in a fixed
// order, and the first violation wins: king counts, placement overlap, pawn
// ranks, castling-right consistency, en-passant consistency, and finally that
// the side not to move is not in check.
func Setup(placements []Placement, sideToMove Color, rights CastlingRights, enPassant Square, halfmoveClock, fullmoveNumber int) (Board, error) {
	var kings [2]int
	for _, pl := range placements {
		if pl.Piece.Type() == King {
			kings[pl.Piece.Color()]++
		}
	}
	if kings[White] != 1 || kings[Black] != 1 {
		return Board{}, errors.Wrapf(ErrKingCount, "white %d, black %d", kings[White], kings[Black])
	}

	var b Board
	b.enPassantSquare = NoSquare
	for _, pl := range placements {
		if !pl.Square.Valid() || pl.Piece.Type() == NoPieceType || pl.Piece.Type() > King {
			return Board{}, errors.Errorf("invalid placement %v on %v", pl.Piece, pl.Square)
		}
		if b.pieces[pl.Square] != NoPiece {
			return Board{}, errors.Wrapf(ErrPieceOverlap, "square %v", pl.Square)
		}
		b.addPiece(pl.Square, pl.Piece)
	}

	backRanks := Rank1BB.Union(Rank8BB)
	if !(b.pawns[White] | b.pawns[Black]).Intersect(backRanks).IsEmpty() {
		return Board{}, ErrPawnOnBackRank
	}

	if err := validateCastlingRights(&b, rights); err != nil {
		return Board{}, err
	}
	b.castlingRights = rights

	if enPassant != NoSquare {
		if err := validateEnPassant(&b, sideToMove, enPassant); err != nil {
			return Board{}, err
		}
		b.enPassantSquare = enPassant
	}

	b.sideToMove = sideToMove
	if b.InCheck(sideToMove.Other()) {
		return Board{}, errors.Wrapf(ErrOpponentInCheck, "%v king is attacked with %v to move", sideToMove.Other(), sideToMove)
	}

	if halfmoveClock < 0 {
		halfmoveClock = 0
	}
	if fullmoveNumber < 1 {
		fullmoveNumber = 1
	}
	b.halfmoveClock = halfmoveClock
	b.fullmoveNumber = fullmoveNumber

	b.signature = b.computeSignature()
	return b, nil
}

// validateCastlingRights checks that every retained right still has its king
// and rook on their home squares.
func validateCastlingRights(b *Board, rights CastlingRights) error {
	type anchor struct {
		right CastlingRights
		king  Square
		rook  Square
		kp    Piece
		rp    Piece
	}
	anchors := [4]anchor{
		{CastleWhiteKing, E1, H1, WhiteKing, WhiteRook},
		{CastleWhiteQueen, E1, A1, WhiteKing, WhiteRook},
		{CastleBlackKing, E8, H8, BlackKing, BlackRook},
		{CastleBlackQueen, E8, A8, BlackKing, BlackRook},
	}
	for _, a := range anchors {
		if rights&a.right == 0 {
			continue
		}
		if b.pieces[a.king] != a.kp || b.pieces[a.rook] != a.rp {
			return errors.Wrapf(ErrInvalidCastlingRight, "%v", a.right)
		}
	}
	return nil
}

// validateEnPassant checks that the claimed en-passant target matches a
// double push the opponent could have just played: right rank for the side
// to move, target and origin squares vacant, enemy pawn on the skipped-over
// pawn's current square.
func validateEnPassant(b *Board, sideToMove Color, ep Square) error {
	if !ep.Valid() {
		return errors.Wrapf(ErrInvalidEnPassant, "square %d off board", int(ep))
	}
	var wantRank int
	var pawnSq, originSq Square
	if sideToMove == White {
		// Black just double-pushed onto rank 5, over the rank-6 target.
		wantRank, pawnSq, originSq = 5, ep-8, ep+8
	} else {
		wantRank, pawnSq, originSq = 2, ep+8, ep-8
	}
	if ep.Rank() != wantRank {
		return errors.Wrapf(ErrInvalidEnPassant, "square %v on wrong rank for %v to move", ep, sideToMove)
	}
	if b.pieces[ep] != NoPiece || b.pieces[originSq] != NoPiece {
		return errors.Wrapf(ErrInvalidEnPassant, "path through %v is not vacant", ep)
	}
	if b.pieces[pawnSq] != NewPiece(sideToMove.Other(), Pawn) {
		return errors.Wrapf(ErrInvalidEnPassant, "no %v pawn on %v", sideToMove.Other(), pawnSq)
	}
	return nil
}
