// Package game drives a full chess game on top of package board: it owns the
// action protocol (moves, resignation, draw offers), the append-only history,
// and the automatic draw bookkeeping the board itself cannot see (threefold
// repetition needs the past, agreed draws need the players).
package game

import (
	"github.com/pkg/errors"

	"libchess/board"
)

// StatusKind classifies how a game stands or ended.
type StatusKind uint8

const (
	KindOngoing StatusKind = iota
	KindCheckmate
	KindStalemate
	KindInsufficientMaterial
	KindFiftyMoves
	KindRepetition
	KindDrawAgreed
	KindResigned
)

// Status describes the game outcome. Loser is meaningful only for checkmate
// and resignation. Status values are comparable.
type Status struct {
	Kind  StatusKind
	Loser board.Color
}

// Ongoing is the status of a live game.
var Ongoing = Status{Kind: KindOngoing}

// Checkmated returns the status of a game the given side lost by checkmate.
func Checkmated(loser board.Color) Status { return Status{Kind: KindCheckmate, Loser: loser} }

// Resigned returns the status of a game the given side resigned.
func Resigned(loser board.Color) Status { return Status{Kind: KindResigned, Loser: loser} }

// Terminal reports whether the game has ended.
func (s Status) Terminal() bool { return s.Kind != KindOngoing }

func (s Status) String() string {
	switch s.Kind {
	case KindOngoing:
		return "ongoing"
	case KindCheckmate:
		return s.Loser.String() + " checkmated"
	case KindStalemate:
		return "stalemate"
	case KindInsufficientMaterial:
		return "draw by insufficient material"
	case KindFiftyMoves:
		return "draw by fifty-move rule"
	case KindRepetition:
		return "draw by threefold repetition"
	case KindDrawAgreed:
		return "draw by agreement"
	case KindResigned:
		return s.Loser.String() + " resigned"
	default:
		return "unknown"
	}
}

// Action is a closed sum of the things a player can do on their turn.
type Action interface{ isAction() }

// MoveAction plays a move for the side to move.
type MoveAction struct{ Move board.Move }

// ResignAction ends the game immediately in the opponent's favor.
type ResignAction struct{ Side board.Color }

// OfferDrawAction proposes a draw; the opponent must accept, decline, or
// resign before play continues.
type OfferDrawAction struct{}

// AcceptDrawAction accepts a pending draw offer.
type AcceptDrawAction struct{}

// DeclineDrawAction declines a pending draw offer.
type DeclineDrawAction struct{}

func (MoveAction) isAction()        {}
func (ResignAction) isAction()      {}
func (OfferDrawAction) isAction()   {}
func (AcceptDrawAction) isAction()  {}
func (DeclineDrawAction) isAction() {}

var (
	// ErrGameOver rejects any action on a decided game.
	ErrGameOver = errors.New("game is already decided")
	// ErrDrawOfferPending rejects moves and fresh offers while an offer awaits an answer.
	ErrDrawOfferPending = errors.New("a draw offer is pending")
	// ErrNoDrawOffer rejects accept/decline when nothing was offered.
	ErrNoDrawOffer = errors.New("no draw offer to answer")
)

// Game is a chess game in progress. The zero value is not usable; construct
// with New or FromBoard.
type Game struct {
	current     board.Board
	status      Status
	drawOffered bool
	history     []Record
	seen        map[uint64]int
}

// New starts a game from the standard initial position.
func New() *Game {
	return FromBoard(board.StartingPosition())
}

// FromBoard starts a game from an arbitrary validated position. The status is
// evaluated immediately, so a position that is already checkmate or a forced
// draw yields a decided game.
func FromBoard(b board.Board) *Game {
	g := &Game{
		current: b,
		seen:    map[uint64]int{b.Signature(): 1},
	}
	g.status = g.positionStatus()
	return g
}

// Board returns a copy of the current position.
func (g *Game) Board() board.Board { return g.current }

// Status returns the current game status.
func (g *Game) Status() Status { return g.status }

// DrawOffered reports whether a draw offer awaits an answer.
func (g *Game) DrawOffered() bool { return g.drawOffered }

// History returns the actions taken so far, oldest first. The returned slice
// is shared; callers must not modify it.
func (g *Game) History() []Record { return g.history }

// LegalMoves returns the legal moves of the current position. Empty when the
// game is decided or a draw offer is pending.
func (g *Game) LegalMoves() []board.Move {
	if g.status.Terminal() || g.drawOffered {
		return nil
	}
	return g.current.LegalMoves()
}

// Do performs one action. On error the game state is unchanged.
func (g *Game) Do(action Action) error {
	if g.status.Terminal() {
		return errors.Wrapf(ErrGameOver, "%s", g.status)
	}

	switch a := action.(type) {
	case MoveAction:
		return g.doMove(a)
	case ResignAction:
		g.status = Resigned(a.Side)
		g.record(action, noAnnotation)
		return nil
	case OfferDrawAction:
		if g.drawOffered {
			return ErrDrawOfferPending
		}
		g.drawOffered = true
		g.record(action, noAnnotation)
		return nil
	case AcceptDrawAction:
		if !g.drawOffered {
			return ErrNoDrawOffer
		}
		g.drawOffered = false
		g.status = Status{Kind: KindDrawAgreed}
		g.record(action, noAnnotation)
		return nil
	case DeclineDrawAction:
		if !g.drawOffered {
			return ErrNoDrawOffer
		}
		g.drawOffered = false
		g.record(action, noAnnotation)
		return nil
	default:
		return errors.Errorf("unknown action %T", action)
	}
}

func (g *Game) doMove(a MoveAction) error {
	if g.drawOffered {
		return ErrDrawOfferPending
	}

	// The request move carries no capture information; read it off the
	// position before applying.
	var ann Annotation
	if victim := g.current.PieceAt(a.Move.To()); victim != board.NoPiece {
		ann.IsCapture = true
		ann.Captured = victim.Type()
	} else if a.Move.PieceType() == board.Pawn && a.Move.To() == g.current.EnPassantSquare() {
		ann.IsCapture = true
		ann.Captured = board.Pawn
	}

	next, err := g.current.Apply(a.Move)
	if err != nil {
		return err
	}
	g.current = next
	g.seen[next.Signature()]++
	g.status = g.positionStatus()
	ann.IsCheck = next.InCheck(next.SideToMove())
	ann.IsCheckmate = g.status == Checkmated(next.SideToMove())
	g.record(a, ann)
	return nil
}

// positionStatus derives the automatic outcome of the current position. The
// priority order is fixed: checkmate beats stalemate beats insufficient
// material beats the fifty-move rule beats threefold repetition.
func (g *Game) positionStatus() Status {
	b := g.current
	if !b.HasLegalMoves() {
		if b.InCheck(b.SideToMove()) {
			return Checkmated(b.SideToMove())
		}
		return Status{Kind: KindStalemate}
	}
	if b.HasInsufficientMaterial() {
		return Status{Kind: KindInsufficientMaterial}
	}
	if b.HalfmoveClock() >= 100 {
		return Status{Kind: KindFiftyMoves}
	}
	if g.seen[b.Signature()] >= 3 {
		return Status{Kind: KindRepetition}
	}
	return Ongoing
}
