package board

import "github.com/pkg/errors"

// Apply resolves a move request against the legal move set and returns the
// successor position. The receiver is never modified; on an illegal request
// the zero Board and ErrIllegalMove are returned.
func (b *Board) Apply(request Move) (Board, error) {
	for _, m := range b.LegalMoves() {
		if m.matches(request) {
			next := *b
			next.applyUnchecked(m)
			return next, nil
		}
	}
	return Board{}, errors.Wrapf(ErrIllegalMove, "%v cannot play %s", b.sideToMove, request)
}

// applyUnchecked mutates the board by a fully-encoded generator move without
// any legality check. Callers either verified legality beforehand or are
// about to (the scratch-copy filter in LegalMoves).
func (b *Board) applyUnchecked(m Move) {
	us := b.sideToMove
	from := m.From()
	to := m.To()
	moved := b.pieces[from]

	// The en-passant window lasts exactly one ply.
	if b.enPassantSquare != NoSquare {
		b.signature ^= zobristEnPassant[b.enPassantSquare.File()]
		b.enPassantSquare = NoSquare
	}

	captured := NoPiece
	if m.IsEnPassant() {
		// The captured pawn sits behind the destination square.
		capSq := to - 8
		if us == Black {
			capSq = to + 8
		}
		captured = b.removePiece(capSq)
	} else if b.pieces[to] != NoPiece {
		captured = b.removePiece(to)
	}

	b.removePiece(from)
	if promo := m.Promotion(); promo != NoPieceType {
		b.addPiece(to, NewPiece(us, promo))
	} else {
		b.addPiece(to, moved)
	}

	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(us, to)
		rook := b.removePiece(rookFrom)
		b.addPiece(rookTo, rook)
	}

	b.updateCastlingRights(moved, from, to, captured)

	if m.IsDoublePush() {
		ep := (from + to) / 2
		b.enPassantSquare = ep
		b.signature ^= zobristEnPassant[ep.File()]
	}

	if moved.Type() == Pawn || captured != NoPiece {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if us == Black {
		b.fullmoveNumber++
	}

	b.sideToMove = us.Other()
	b.signature ^= zobristSide
}

// castleRookSquares maps a castling king destination to the accompanying rook
// relocation.
func castleRookSquares(c Color, kingTo Square) (from, to Square) {
	switch {
	case c == White && kingTo == G1:
		return H1, F1
	case c == White && kingTo == C1:
		return A1, D1
	case c == Black && kingTo == G8:
		return H8, F8
	default:
		return A8, D8
	}
}

// updateCastlingRights clears rights invalidated by the move: the mover's
// rights on a king move, one right when a rook leaves its home square, and
// the opponent's right when their rook is captured on its home square.
func (b *Board) updateCastlingRights(moved Piece, from, to Square, captured Piece) {
	newCR := b.castlingRights
	switch moved {
	case WhiteKing:
		newCR &^= CastleWhiteKing | CastleWhiteQueen
	case BlackKing:
		newCR &^= CastleBlackKing | CastleBlackQueen
	case WhiteRook:
		if from == A1 {
			newCR &^= CastleWhiteQueen
		} else if from == H1 {
			newCR &^= CastleWhiteKing
		}
	case BlackRook:
		if from == A8 {
			newCR &^= CastleBlackQueen
		} else if from == H8 {
			newCR &^= CastleBlackKing
		}
	}
	if captured.Type() == Rook {
		switch to {
		case A1:
			newCR &^= CastleWhiteQueen
		case H1:
			newCR &^= CastleWhiteKing
		case A8:
			newCR &^= CastleBlackQueen
		case H8:
			newCR &^= CastleBlackKing
		}
	}
	if newCR != b.castlingRights {
		b.signature ^= zobristCastle[b.castlingRights]
		b.signature ^= zobristCastle[newCR]
		b.castlingRights = newCR
	}
}
