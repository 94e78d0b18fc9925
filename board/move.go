package board

// Move encodes a chess move in a 32-bit value.
type Move uint32

// Bitfield layout within Move (from LSB to MSB).
const (
	moveFromShift    = 0  // 6 bits
	moveToShift      = 6  // 6 bits
	movePieceShift   = 12 // 4 bits
	moveCaptureShift = 16 // 4 bits
	movePromoteShift = 20 // 4 bits
	moveFlagShift    = 24 // 2 bits
)

// Move flags. At most one applies to any move, so two bits suffice.
const (
	FlagNone       = 0
	FlagCastle     = 1
	FlagEnPassant  = 2
	FlagDoublePush = 3
	// (Promotion is indicated by a non-zero promotion piece)
)

// NewMove constructs a plain move request: a piece of the given type travels
// from one square to another. Castling is requested as the king's two-square
// move. The request is resolved against the legal move set by Apply, which
// fills in capture and flag details.
func NewMove(pt PieceType, from, to Square) Move {
	return encodeMove(from, to, Piece(pt), NoPiece, NoPiece, FlagNone)
}

// NewPromotionMove constructs a pawn promotion request.
func NewPromotionMove(from, to Square, promotion PieceType) Move {
	return encodeMove(from, to, Piece(Pawn), NoPiece, Piece(promotion), FlagNone)
}

func encodeMove(from, to Square, piece, captured, promotion Piece, flag uint8) Move {
	m := uint32(from&0x3F) |
		(uint32(to&0x3F) << moveToShift) |
		(uint32(piece&0xF) << movePieceShift) |
		(uint32(captured&0xF) << moveCaptureShift) |
		(uint32(promotion&0xF) << movePromoteShift) |
		(uint32(flag&0x3) << moveFlagShift)
	return Move(m)
}

// From returns the source square of the move.
func (m Move) From() Square { return Square((uint32(m) >> moveFromShift) & 0x3F) }

// To returns the destination square of the move.
func (m Move) To() Square { return Square((uint32(m) >> moveToShift) & 0x3F) }

// movedPiece returns the concrete piece code that moves. Only meaningful for
// moves produced by the generator; requests built with NewMove carry just the
// type.
func (m Move) movedPiece() Piece { return Piece((uint32(m) >> movePieceShift) & 0xF) }

// PieceType returns the colorless type of the moving piece.
func (m Move) PieceType() PieceType { return m.movedPiece().Type() }

// capturedPiece returns the captured piece code, or NoPiece.
func (m Move) capturedPiece() Piece { return Piece((uint32(m) >> moveCaptureShift) & 0xF) }

// IsCapture reports whether the move takes an enemy piece, en passant included.
func (m Move) IsCapture() bool { return m.capturedPiece() != NoPiece }

// CapturedType returns the colorless type of the captured piece, or NoPieceType.
func (m Move) CapturedType() PieceType { return m.capturedPiece().Type() }

// promotionPiece returns the promotion piece code, or NoPiece.
func (m Move) promotionPiece() Piece { return Piece((uint32(m) >> movePromoteShift) & 0xF) }

// Promotion returns the colorless type the pawn promotes to, or NoPieceType.
func (m Move) Promotion() PieceType { return m.promotionPiece().Type() }

// flags returns the special move flag.
func (m Move) flags() uint8 { return uint8((uint32(m) >> moveFlagShift) & 0x3) }

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool { return m.flags() == FlagCastle }

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool { return m.flags() == FlagEnPassant }

// IsDoublePush reports whether the move is a two-square pawn advance.
func (m Move) IsDoublePush() bool { return m.flags() == FlagDoublePush }

// String produces the coordinate form of the move (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	s := m.From().String() + m.To().String()
	switch m.Promotion() {
	case Knight:
		s += "n"
	case Bishop:
		s += "b"
	case Rook:
		s += "r"
	case Queen:
		s += "q"
	}
	return s
}

// matches reports whether a generated legal move satisfies a move request:
// same origin, destination, moving piece type and promotion type.
func (m Move) matches(request Move) bool {
	return m.From() == request.From() &&
		m.To() == request.To() &&
		m.PieceType() == request.PieceType() &&
		m.Promotion() == request.Promotion()
}
