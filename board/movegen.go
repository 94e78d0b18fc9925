package board

// promotionOrder fixes the expansion order of promotion moves so the legal
// move list is deterministic.
var promotionOrder = [4]PieceType{Knight, Bishop, Rook, Queen}

// LegalMoves returns every legal move for the side to move, eagerly and in a
// deterministic order: piece types from pawn to king, origin squares from a1
// to h8, destinations LSB first. Each pseudo-legal candidate is vetted by
// applying it to a scratch copy and testing whether the mover's king ends up
// attacked; that one rule covers pins, checks and illegal king steps alike.
func (b *Board) LegalMoves() []Move {
	pseudo := b.pseudoLegalMoves()
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		scratch := *b
		scratch.applyUnchecked(m)
		if !scratch.InCheck(b.sideToMove) {
			legal = append(legal, m)
		}
	}
	return legal
}

// pseudoLegalMoves generates moves that obey piece movement rules but may
// still expose the mover's own king.
func (b *Board) pseudoLegalMoves() []Move {
	moves := make([]Move, 0, 64)
	moves = b.pawnMoves(moves)
	moves = b.leaperMoves(Knight, moves)
	moves = b.sliderMoves(Bishop, moves)
	moves = b.sliderMoves(Rook, moves)
	moves = b.sliderMoves(Queen, moves)
	moves = b.leaperMoves(King, moves)
	moves = b.castlingMoves(moves)
	return moves
}

func (b *Board) pawnMoves(moves []Move) []Move {
	us := b.sideToMove
	them := us.Other()
	pawn := NewPiece(us, Pawn)
	occ := b.AllOccupancy()

	var forward int
	var startRank, promoRank int
	if us == White {
		forward, startRank, promoRank = 8, 1, 7
	} else {
		forward, startRank, promoRank = -8, 6, 0
	}

	for rest := b.pawns[us]; !rest.IsEmpty(); {
		var from Square
		from, rest = rest.PopLSB()

		// Pushes.
		single := from + Square(forward)
		if !occ.Occupied(single) {
			if single.Rank() == promoRank {
				for _, pt := range promotionOrder {
					moves = append(moves, encodeMove(from, single, pawn, NoPiece, NewPiece(us, pt), FlagNone))
				}
			} else {
				moves = append(moves, encodeMove(from, single, pawn, NoPiece, NoPiece, FlagNone))
				if from.Rank() == startRank {
					double := single + Square(forward)
					if !occ.Occupied(double) {
						moves = append(moves, encodeMove(from, double, pawn, NoPiece, NoPiece, FlagDoublePush))
					}
				}
			}
		}

		// Captures.
		for targets := pawnAttacks[us][from].Intersect(b.occupancy[them]); !targets.IsEmpty(); {
			var to Square
			to, targets = targets.PopLSB()
			captured := b.pieces[to]
			if to.Rank() == promoRank {
				for _, pt := range promotionOrder {
					moves = append(moves, encodeMove(from, to, pawn, captured, NewPiece(us, pt), FlagNone))
				}
			} else {
				moves = append(moves, encodeMove(from, to, pawn, captured, NoPiece, FlagNone))
			}
		}

		// En passant: the captured pawn sits beside the origin, not on the
		// destination square.
		if b.enPassantSquare != NoSquare && pawnAttacks[us][from].Occupied(b.enPassantSquare) {
			moves = append(moves, encodeMove(from, b.enPassantSquare, pawn, NewPiece(them, Pawn), NoPiece, FlagEnPassant))
		}
	}
	return moves
}

func (b *Board) leaperMoves(pt PieceType, moves []Move) []Move {
	us := b.sideToMove
	piece := NewPiece(us, pt)
	table := &knightMoves
	if pt == King {
		table = &kingMoves
	}
	for rest := b.PieceOccupancy(us, pt); !rest.IsEmpty(); {
		var from Square
		from, rest = rest.PopLSB()
		for targets := table[from].Without(b.occupancy[us]); !targets.IsEmpty(); {
			var to Square
			to, targets = targets.PopLSB()
			moves = append(moves, encodeMove(from, to, piece, b.pieces[to], NoPiece, FlagNone))
		}
	}
	return moves
}

func (b *Board) sliderMoves(pt PieceType, moves []Move) []Move {
	us := b.sideToMove
	piece := NewPiece(us, pt)
	occ := b.AllOccupancy()
	for rest := b.PieceOccupancy(us, pt); !rest.IsEmpty(); {
		var from Square
		from, rest = rest.PopLSB()
		var attacks Bitboard
		switch pt {
		case Bishop:
			attacks = BishopAttacks(from, occ)
		case Rook:
			attacks = RookAttacks(from, occ)
		default:
			attacks = QueenAttacks(from, occ)
		}
		for targets := attacks.Without(b.occupancy[us]); !targets.IsEmpty(); {
			var to Square
			to, targets = targets.PopLSB()
			moves = append(moves, encodeMove(from, to, piece, b.pieces[to], NoPiece, FlagNone))
		}
	}
	return moves
}

// castlingMoves emits castle candidates for the side to move. Beyond the
// retained right, castling demands an empty corridor between king and rook
// and that the king neither starts in check nor crosses an attacked square.
// The destination square is vetted by the common legality filter.
func (b *Board) castlingMoves(moves []Move) []Move {
	us := b.sideToMove
	them := us.Other()
	occ := b.AllOccupancy()
	king := NewPiece(us, King)

	var kingFrom Square
	var kingSideTo, queenSideTo Square
	if us == White {
		kingFrom, kingSideTo, queenSideTo = E1, G1, C1
	} else {
		kingFrom, kingSideTo, queenSideTo = E8, G8, C8
	}

	if b.castlingRights.KingSide(us) {
		// f1/g1 empty (resp. f8/g8), e and f squares safe.
		corridor := SquareBB(kingFrom + 1).Union(SquareBB(kingFrom + 2))
		if occ.Intersect(corridor).IsEmpty() &&
			!b.IsSquareAttacked(kingFrom, them) &&
			!b.IsSquareAttacked(kingFrom+1, them) {
			moves = append(moves, encodeMove(kingFrom, kingSideTo, king, NoPiece, NoPiece, FlagCastle))
		}
	}
	if b.castlingRights.QueenSide(us) {
		// b1/c1/d1 empty (resp. b8/c8/d8), e and d squares safe.
		corridor := SquareBB(kingFrom - 1).Union(SquareBB(kingFrom - 2)).Union(SquareBB(kingFrom - 3))
		if occ.Intersect(corridor).IsEmpty() &&
			!b.IsSquareAttacked(kingFrom, them) &&
			!b.IsSquareAttacked(kingFrom-1, them) {
			moves = append(moves, encodeMove(kingFrom, queenSideTo, king, NoPiece, NoPiece, FlagCastle))
		}
	}
	return moves
}
