package board

// HasInsufficientMaterial reports whether neither side can deliver checkmate
// by any sequence of legal moves. The rule deliberately stays conservative:
// each side may have at most the king plus one minor piece. Positions that
// are dead for subtler reasons (same-colored-bishop fortresses and the like)
// are not recognized.
func (b *Board) HasInsufficientMaterial() bool {
	for c := White; c <= Black; c++ {
		if !(b.pawns[c] | b.rooks[c] | b.queens[c]).IsEmpty() {
			return false
		}
		minors := b.knights[c] | b.bishops[c]
		if minors.PopCount() > 1 {
			return false
		}
	}
	return true
}
