package game

import "libchess/board"

// Annotation carries the facts about a played move that notation layers need
// and that are cheapest to capture at play time, when both the position
// before and after the move are at hand.
type Annotation struct {
	IsCapture   bool
	Captured    board.PieceType
	IsCheck     bool
	IsCheckmate bool
}

var noAnnotation Annotation

// Record is one entry of a game's append-only history: the action taken, the
// position after it, and move annotations when the action was a move.
type Record struct {
	Action     Action
	Board      board.Board
	Annotation Annotation
}

func (g *Game) record(a Action, ann Annotation) {
	g.history = append(g.history, Record{
		Action:     a,
		Board:      g.current,
		Annotation: ann,
	})
}
