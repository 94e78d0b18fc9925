package board

// Board is an immutable-by-convention snapshot of a chess position. All
// fields are fixed-size arrays and scalars, so a plain struct copy yields an
// independent position; Apply relies on that to produce successor positions
// without touching its receiver.
type Board struct {
	// Piece bitboards per side (index 0 = white, 1 = black).
	pawns   [2]Bitboard
	knights [2]Bitboard
	bishops [2]Bitboard
	rooks   [2]Bitboard
	queens  [2]Bitboard
	kings   [2]Bitboard

	// Occupancy per side; overall occupancy is their union.
	occupancy [2]Bitboard

	// Mailbox view for O(1) piece-at-square queries.
	pieces [64]Piece

	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square
	halfmoveClock   int
	fullmoveNumber  int

	// Zobrist signature of the position, maintained incrementally.
	signature uint64
}

// StartingPosition returns the standard initial position.
func StartingPosition() Board {
	var b Board
	b.enPassantSquare = NoSquare
	b.castlingRights = CastleAll
	b.fullmoveNumber = 1

	backRank := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < 8; file++ {
		b.addPiece(NewSquare(file, 0), NewPiece(White, backRank[file]))
		b.addPiece(NewSquare(file, 1), WhitePawn)
		b.addPiece(NewSquare(file, 6), BlackPawn)
		b.addPiece(NewSquare(file, 7), NewPiece(Black, backRank[file]))
	}
	b.signature = b.computeSignature()
	return b
}

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.sideToMove }

// CastlingRights returns the remaining castling permissions.
func (b *Board) CastlingRights() CastlingRights { return b.castlingRights }

// EnPassantSquare returns the current en-passant target square or NoSquare.
func (b *Board) EnPassantSquare() Square { return b.enPassantSquare }

// HalfmoveClock returns the number of half-moves since the last capture or
// pawn advance.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the full move counter (incremented after Black's move).
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// Signature returns the Zobrist signature of the position. Two positions
// share a signature exactly when placement, side to move, castling rights and
// en-passant file coincide; the clocks do not participate.
func (b *Board) Signature() uint64 { return b.signature }

// PieceAt returns the piece on a square, or NoPiece.
func (b *Board) PieceAt(sq Square) Piece { return b.pieces[sq] }

// AllOccupancy returns the set of all occupied squares.
func (b *Board) AllOccupancy() Bitboard { return b.occupancy[White] | b.occupancy[Black] }

// ColorOccupancy returns the occupied squares of one side.
func (b *Board) ColorOccupancy(c Color) Bitboard { return b.occupancy[c] }

// PieceOccupancy returns the squares holding pieces of the given side and type.
func (b *Board) PieceOccupancy(c Color, pt PieceType) Bitboard {
	switch pt {
	case Pawn:
		return b.pawns[c]
	case Knight:
		return b.knights[c]
	case Bishop:
		return b.bishops[c]
	case Rook:
		return b.rooks[c]
	case Queen:
		return b.queens[c]
	case King:
		return b.kings[c]
	default:
		return EmptyBB
	}
}

// KingSquare returns the square of the given side's king, or NoSquare if
// absent (only possible on boards under construction).
func (b *Board) KingSquare(c Color) Square { return b.kings[c].LSB() }

// Placement is one occupied square of a position.
type Placement struct {
	Square Square
	Piece  Piece
}

// Placements enumerates all occupied squares in ascending square order. It is
// the surface notation layers consume; nothing else about the internal
// representation leaks out.
func (b *Board) Placements() []Placement {
	out := make([]Placement, 0, b.AllOccupancy().PopCount())
	for rest := b.AllOccupancy(); !rest.IsEmpty(); {
		var sq Square
		sq, rest = rest.PopLSB()
		out = append(out, Placement{Square: sq, Piece: b.pieces[sq]})
	}
	return out
}

// InCheck reports whether the given side's king is attacked.
func (b *Board) InCheck(c Color) bool {
	ksq := b.kings[c].LSB()
	if ksq == NoSquare {
		return false
	}
	return b.IsSquareAttacked(ksq, c.Other())
}

// HasLegalMoves reports whether the side to move has at least one legal move.
func (b *Board) HasLegalMoves() bool { return len(b.LegalMoves()) > 0 }

// IsCheckmate reports whether the side to move is checkmated.
func (b *Board) IsCheckmate() bool {
	return b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// IsStalemate reports whether the side to move has no legal moves while not
// in check.
func (b *Board) IsStalemate() bool {
	return !b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// addPiece places a piece on an empty square and updates bitboards, occupancy
// and the signature.
func (b *Board) addPiece(sq Square, p Piece) {
	if p == NoPiece {
		return
	}
	b.pieces[sq] = p
	c := p.Color()
	b.occupancy[c] = b.occupancy[c].Set(sq)
	switch p.Type() {
	case Pawn:
		b.pawns[c] = b.pawns[c].Set(sq)
	case Knight:
		b.knights[c] = b.knights[c].Set(sq)
	case Bishop:
		b.bishops[c] = b.bishops[c].Set(sq)
	case Rook:
		b.rooks[c] = b.rooks[c].Set(sq)
	case Queen:
		b.queens[c] = b.queens[c].Set(sq)
	case King:
		b.kings[c] = b.kings[c].Set(sq)
	}
	b.signature ^= zobristPiece[p][sq]
}

// removePiece removes a piece from a square and updates bitboards, occupancy
// and the signature. Returns the removed piece.
func (b *Board) removePiece(sq Square) Piece {
	p := b.pieces[sq]
	if p == NoPiece {
		return NoPiece
	}
	c := p.Color()
	b.pieces[sq] = NoPiece
	b.occupancy[c] = b.occupancy[c].Clear(sq)
	switch p.Type() {
	case Pawn:
		b.pawns[c] = b.pawns[c].Clear(sq)
	case Knight:
		b.knights[c] = b.knights[c].Clear(sq)
	case Bishop:
		b.bishops[c] = b.bishops[c].Clear(sq)
	case Rook:
		b.rooks[c] = b.rooks[c].Clear(sq)
	case Queen:
		b.queens[c] = b.queens[c].Clear(sq)
	case King:
		b.kings[c] = b.kings[c].Clear(sq)
	}
	b.signature ^= zobristPiece[p][sq]
	return p
}
