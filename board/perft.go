package board

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Used by tests and cmd/perft to cross-check move generation.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		next := *b
		next.applyUnchecked(m)
		nodes += Perft(&next, depth-1)
	}
	return nodes
}

// PerftDivide returns the per-root-move node counts at the given depth,
// keyed by the move's coordinate form.
func PerftDivide(b *Board, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	for _, m := range b.LegalMoves() {
		next := *b
		next.applyUnchecked(m)
		out[m.String()] = Perft(&next, depth-1)
	}
	return out
}
