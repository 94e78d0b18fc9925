package board

// Precomputed attack masks for knights and kings from each square.
var knightMoves [64]Bitboard
var kingMoves [64]Bitboard

// Pawn attack masks: pawnAttacks[color][sq] gives the squares a pawn of
// 'color' attacks from 'sq'.
var pawnAttacks [2][64]Bitboard

// Precomputed rays for sliders. For each square and direction, the bitboard of
// squares in that ray (excluding the origin square).
// Rook directions: 0=N, 1=S, 2=E, 3=W
var rookRays [64][4]Bitboard

// Bishop directions: 0=NE, 1=NW, 2=SE, 3=SW
var bishopRays [64][4]Bitboard

func init() {
	initLeaperTables()
	initRays()
}

// initLeaperTables precomputes attack bitboards for knights, kings, and pawn captures.
func initLeaperTables() {
	knightOffsets := [8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	kingOffsets := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}

	for sq := A1; sq <= H8; sq++ {
		file := sq.File()
		rank := sq.Rank()

		var mask Bitboard
		for _, off := range knightOffsets {
			r, f := rank+off[0], file+off[1]
			if r >= 0 && r < 8 && f >= 0 && f < 8 {
				mask = mask.Set(NewSquare(f, r))
			}
		}
		knightMoves[sq] = mask

		mask = EmptyBB
		for _, off := range kingOffsets {
			r, f := rank+off[0], file+off[1]
			if r >= 0 && r < 8 && f >= 0 && f < 8 {
				mask = mask.Set(NewSquare(f, r))
			}
		}
		kingMoves[sq] = mask

		// White pawns capture upward, black pawns downward.
		if rank < 7 {
			if file > 0 {
				pawnAttacks[White][sq] = pawnAttacks[White][sq].Set(NewSquare(file-1, rank+1))
			}
			if file < 7 {
				pawnAttacks[White][sq] = pawnAttacks[White][sq].Set(NewSquare(file+1, rank+1))
			}
		}
		if rank > 0 {
			if file > 0 {
				pawnAttacks[Black][sq] = pawnAttacks[Black][sq].Set(NewSquare(file-1, rank-1))
			}
			if file < 7 {
				pawnAttacks[Black][sq] = pawnAttacks[Black][sq].Set(NewSquare(file+1, rank-1))
			}
		}
	}
}

// initRays precomputes directional rays for rook and bishop moves.
func initRays() {
	for sq := A1; sq <= H8; sq++ {
		file := sq.File()
		rank := sq.Rank()

		var ray Bitboard
		for r := rank + 1; r < 8; r++ { // N
			ray = ray.Set(NewSquare(file, r))
		}
		rookRays[sq][0] = ray

		ray = EmptyBB
		for r := rank - 1; r >= 0; r-- { // S
			ray = ray.Set(NewSquare(file, r))
		}
		rookRays[sq][1] = ray

		ray = EmptyBB
		for f := file + 1; f < 8; f++ { // E
			ray = ray.Set(NewSquare(f, rank))
		}
		rookRays[sq][2] = ray

		ray = EmptyBB
		for f := file - 1; f >= 0; f-- { // W
			ray = ray.Set(NewSquare(f, rank))
		}
		rookRays[sq][3] = ray

		ray = EmptyBB
		for r, f := rank+1, file+1; r < 8 && f < 8; r, f = r+1, f+1 { // NE
			ray = ray.Set(NewSquare(f, r))
		}
		bishopRays[sq][0] = ray

		ray = EmptyBB
		for r, f := rank+1, file-1; r < 8 && f >= 0; r, f = r+1, f-1 { // NW
			ray = ray.Set(NewSquare(f, r))
		}
		bishopRays[sq][1] = ray

		ray = EmptyBB
		for r, f := rank-1, file+1; r >= 0 && f < 8; r, f = r-1, f+1 { // SE
			ray = ray.Set(NewSquare(f, r))
		}
		bishopRays[sq][2] = ray

		ray = EmptyBB
		for r, f := rank-1, file-1; r >= 0 && f >= 0; r, f = r-1, f-1 { // SW
			ray = ray.Set(NewSquare(f, r))
		}
		bishopRays[sq][3] = ray
	}
}

// slideRay truncates a precomputed ray at the first blocker. The blocker
// square itself stays in the result; whether it is a capture or a friendly
// piece is the caller's concern. increasing selects LSB-first scan order for
// rays that grow toward higher square indices.
func slideRay(ray, occ Bitboard, rays *[64][4]Bitboard, dir int, increasing bool) Bitboard {
	blockers := ray.Intersect(occ)
	if blockers.IsEmpty() {
		return ray
	}
	var first Square
	if increasing {
		first = blockers.LSB()
	} else {
		first = blockers.MSB()
	}
	return ray.Without(rays[first][dir])
}

// RookAttacks returns the rook attack set from sq given the occupancy.
func RookAttacks(sq Square, occ Bitboard) Bitboard {
	attacks := slideRay(rookRays[sq][0], occ, &rookRays, 0, true) // N
	attacks |= slideRay(rookRays[sq][1], occ, &rookRays, 1, false)
	attacks |= slideRay(rookRays[sq][2], occ, &rookRays, 2, true)
	attacks |= slideRay(rookRays[sq][3], occ, &rookRays, 3, false)
	return attacks
}

// BishopAttacks returns the bishop attack set from sq given the occupancy.
func BishopAttacks(sq Square, occ Bitboard) Bitboard {
	attacks := slideRay(bishopRays[sq][0], occ, &bishopRays, 0, true) // NE
	attacks |= slideRay(bishopRays[sq][1], occ, &bishopRays, 1, true)
	attacks |= slideRay(bishopRays[sq][2], occ, &bishopRays, 2, false)
	attacks |= slideRay(bishopRays[sq][3], occ, &bishopRays, 3, false)
	return attacks
}

// QueenAttacks combines rook and bishop attack sets.
func QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return RookAttacks(sq, occ) | BishopAttacks(sq, occ)
}

// AttacksFrom returns the attack set of a piece of the given type and color
// standing on sq, given the full occupancy. Pawn forward pushes are not
// attacks and are not included.
func AttacksFrom(pt PieceType, c Color, sq Square, occ Bitboard) Bitboard {
	switch pt {
	case Pawn:
		return pawnAttacks[c][sq]
	case Knight:
		return knightMoves[sq]
	case Bishop:
		return BishopAttacks(sq, occ)
	case Rook:
		return RookAttacks(sq, occ)
	case Queen:
		return QueenAttacks(sq, occ)
	case King:
		return kingMoves[sq]
	default:
		return EmptyBB
	}
}

// isSquareAttackedWithOcc reports whether 'by' attacks square s under the
// given occupancy, using reverse attack lookups: a white pawn attacks s
// exactly when a black pawn on s would attack the white pawn's square, and
// slider reach is symmetric.
func (b *Board) isSquareAttackedWithOcc(s Square, by Color, occ Bitboard) bool {
	if !pawnAttacks[by.Other()][s].Intersect(b.pawns[by]).IsEmpty() {
		return true
	}
	if !knightMoves[s].Intersect(b.knights[by]).IsEmpty() {
		return true
	}
	if !kingMoves[s].Intersect(b.kings[by]).IsEmpty() {
		return true
	}

	rq := b.rooks[by] | b.queens[by]
	if !rq.IsEmpty() && !RookAttacks(s, occ).Intersect(rq).IsEmpty() {
		return true
	}
	bq := b.bishops[by] | b.queens[by]
	if !bq.IsEmpty() && !BishopAttacks(s, occ).Intersect(bq).IsEmpty() {
		return true
	}
	return false
}

// IsSquareAttacked reports whether the given square is attacked by the given color.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	return b.isSquareAttackedWithOcc(sq, by, b.AllOccupancy())
}
