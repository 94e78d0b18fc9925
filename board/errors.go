package board

import "github.com/pkg/errors"

// Position setup failures, reported in validation order.
var (
	ErrKingCount            = errors.New("each side must have exactly one king")
	ErrPieceOverlap         = errors.New("two pieces placed on the same square")
	ErrPawnOnBackRank       = errors.New("pawn placed on a back rank")
	ErrInvalidCastlingRight = errors.New("castling right without king and rook on their home squares")
	ErrInvalidEnPassant     = errors.New("en-passant square inconsistent with pawn placement")
	ErrOpponentInCheck      = errors.New("side not to move is in check")
)

// ErrIllegalMove is returned by Apply when the requested move is not in the
// legal move set of the position.
var ErrIllegalMove = errors.New("illegal move")
