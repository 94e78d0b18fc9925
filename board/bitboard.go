package board

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares, bit i corresponding to Square(i).
type Bitboard uint64

const (
	EmptyBB Bitboard = 0
	FullBB  Bitboard = ^EmptyBB

	FileABB Bitboard = 0x0101010101010101
	FileHBB Bitboard = FileABB << 7

	Rank1BB Bitboard = 0xFF
	Rank2BB Bitboard = Rank1BB << 8
	Rank4BB Bitboard = Rank1BB << 24
	Rank5BB Bitboard = Rank1BB << 32
	Rank7BB Bitboard = Rank1BB << 48
	Rank8BB Bitboard = Rank1BB << 56
)

// SquareBB returns a bitboard with only the given square set.
func SquareBB(sq Square) Bitboard {
	if !sq.Valid() {
		return EmptyBB
	}
	return 1 << uint(sq)
}

// FileBB returns the mask of a zero-based file.
func FileBB(file int) Bitboard { return FileABB << uint(file) }

// RankBB returns the mask of a zero-based rank.
func RankBB(rank int) Bitboard { return Rank1BB << uint(rank*8) }

// Union returns the squares present in either set.
func (b Bitboard) Union(other Bitboard) Bitboard { return b | other }

// Intersect returns the squares present in both sets.
func (b Bitboard) Intersect(other Bitboard) Bitboard { return b & other }

// Without returns the squares of b not present in other.
func (b Bitboard) Without(other Bitboard) Bitboard { return b &^ other }

// Complement returns the squares not present in the set.
func (b Bitboard) Complement() Bitboard { return ^b }

// Set returns the set with the given square added.
func (b Bitboard) Set(sq Square) Bitboard { return b | SquareBB(sq) }

// Clear returns the set with the given square removed.
func (b Bitboard) Clear(sq Square) Bitboard { return b &^ SquareBB(sq) }

// Occupied reports whether the square is present in the set.
func (b Bitboard) Occupied(sq Square) bool { return b&SquareBB(sq) != 0 }

// IsEmpty reports whether no square is set.
func (b Bitboard) IsEmpty() bool { return b == 0 }

// PopCount counts the set squares.
func (b Bitboard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// Shift shifts the set left (positive) or right (negative).
func (b Bitboard) Shift(amount int) Bitboard {
	if amount >= 0 {
		return b << uint(amount)
	}
	return b >> uint(-amount)
}

// LSB returns the lowest set square, or NoSquare when empty.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// MSB returns the highest set square, or NoSquare when empty.
func (b Bitboard) MSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLSB returns the lowest set square and the set without it.
func (b Bitboard) PopLSB() (Square, Bitboard) {
	if b == 0 {
		return NoSquare, b
	}
	return Square(bits.TrailingZeros64(uint64(b))), b & (b - 1)
}

// Squares returns all set squares ordered LSB to MSB.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	for rest := b; rest != 0; {
		var sq Square
		sq, rest = rest.PopLSB()
		squares = append(squares, sq)
	}
	return squares
}

// String renders the set as an 8x8 grid with rank 8 on top.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if b.Occupied(NewSquare(file, rank)) {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
			if file < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
