package board

// Color identifies a side.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return 1 - c }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is a colorless representation of a chess piece used for table lookups.
type PieceType uint8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1
	Knight      PieceType = 2
	Bishop      PieceType = 3
	Rook        PieceType = 4
	Queen       PieceType = 5
	King        PieceType = 6
)

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// Piece combines a type with a side in a single byte.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece type | 8) so that
	// - piece & 7 gives the type in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// Type returns the colorless type of the piece (ignores side).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// NewPiece combines a colorless type with a side to produce a concrete Piece.
func NewPiece(c Color, pt PieceType) Piece {
	if pt == NoPieceType {
		return NoPiece
	}
	p := Piece(pt)
	if c == Black {
		p |= 8
	}
	return p
}

// Square indexes a board cell, a1=0 through h8=63 (file-major within rank).
type Square int

// NoSquare marks the absence of a square, e.g. no en-passant target.
const NoSquare Square = -1

// Named square constants, rank by rank from White's side.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare builds a square from zero-based file and rank.
func NewSquare(file, rank int) Square { return Square(rank*8 + file) }

// File returns the zero-based file (column) of the square, 0 = a-file.
func (sq Square) File() int { return int(sq) % 8 }

// Rank returns the zero-based rank (row) of the square, 0 = rank 1.
func (sq Square) Rank() int { return int(sq) / 8 }

// Valid reports whether the square lies on the board.
func (sq Square) Valid() bool { return sq >= A1 && sq <= H8 }

func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// CastlingRights is a bit set of the four castling permissions.
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastleWhiteKing CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastleWhiteQueen
	// Black king-side castling
	CastleBlackKing
	// Black queen-side castling
	CastleBlackQueen

	CastleNone CastlingRights = 0
	CastleAll  CastlingRights = CastleWhiteKing | CastleWhiteQueen | CastleBlackKing | CastleBlackQueen
)

// Has reports whether every right in mask is present.
func (cr CastlingRights) Has(mask CastlingRights) bool { return cr&mask == mask }

// KingSide reports the king-side right for the given color.
func (cr CastlingRights) KingSide(c Color) bool {
	if c == White {
		return cr&CastleWhiteKing != 0
	}
	return cr&CastleBlackKing != 0
}

// QueenSide reports the queen-side right for the given color.
func (cr CastlingRights) QueenSide(c Color) bool {
	if c == White {
		return cr&CastleWhiteQueen != 0
	}
	return cr&CastleBlackQueen != 0
}

func (cr CastlingRights) String() string {
	if cr == CastleNone {
		return "-"
	}
	buf := make([]byte, 0, 4)
	if cr&CastleWhiteKing != 0 {
		buf = append(buf, 'K')
	}
	if cr&CastleWhiteQueen != 0 {
		buf = append(buf, 'Q')
	}
	if cr&CastleBlackKing != 0 {
		buf = append(buf, 'k')
	}
	if cr&CastleBlackQueen != 0 {
		buf = append(buf, 'q')
	}
	return string(buf)
}
