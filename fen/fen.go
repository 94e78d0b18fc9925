// Package fen converts positions to and from Forsyth-Edwards Notation. It is
// a consumer of package board's public surface: decoding feeds board.Setup,
// which owns all position validation, and encoding reads the same accessors
// any other client would.
package fen

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"libchess/board"
)

// Starting is the FEN string of the standard initial position.
const Starting = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var pieceChars = map[byte]board.Piece{
	'P': board.WhitePawn, 'N': board.WhiteKnight, 'B': board.WhiteBishop,
	'R': board.WhiteRook, 'Q': board.WhiteQueen, 'K': board.WhiteKing,
	'p': board.BlackPawn, 'n': board.BlackKnight, 'b': board.BlackBishop,
	'r': board.BlackRook, 'q': board.BlackQueen, 'k': board.BlackKing,
}

func charFromPiece(p board.Piece) byte {
	chars := [...]byte{0, 'P', 'N', 'B', 'R', 'Q', 'K'}
	ch := chars[p.Type()]
	if p.Color() == board.Black {
		ch += 'a' - 'A'
	}
	return ch
}

// Decode parses a six-field FEN string into a validated position. The clock
// fields may be omitted and default to 0 and 1.
func Decode(fen string) (board.Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return board.Board{}, errors.Errorf("fen: want at least 4 fields, got %d", len(fields))
	}

	placements, err := decodePlacement(fields[0])
	if err != nil {
		return board.Board{}, err
	}

	var stm board.Color
	switch fields[1] {
	case "w":
		stm = board.White
	case "b":
		stm = board.Black
	default:
		return board.Board{}, errors.Errorf("fen: side to move %q", fields[1])
	}

	rights, err := decodeCastling(fields[2])
	if err != nil {
		return board.Board{}, err
	}

	ep := board.NoSquare
	if fields[3] != "-" {
		ep, err = decodeSquare(fields[3])
		if err != nil {
			return board.Board{}, err
		}
	}

	halfmove, fullmove := 0, 1
	if len(fields) > 4 {
		if halfmove, err = strconv.Atoi(fields[4]); err != nil {
			return board.Board{}, errors.Errorf("fen: halfmove clock %q", fields[4])
		}
	}
	if len(fields) > 5 {
		if fullmove, err = strconv.Atoi(fields[5]); err != nil {
			return board.Board{}, errors.Errorf("fen: fullmove number %q", fields[5])
		}
	}

	b, err := board.Setup(placements, stm, rights, ep, halfmove, fullmove)
	if err != nil {
		return board.Board{}, errors.Wrap(err, "fen")
	}
	return b, nil
}

func decodePlacement(field string) ([]board.Placement, error) {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return nil, errors.Errorf("fen: want 8 ranks, got %d", len(ranks))
	}
	var placements []board.Placement
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			p, ok := pieceChars[ch]
			if !ok {
				return nil, errors.Errorf("fen: piece char %q", ch)
			}
			if file >= 8 {
				return nil, errors.Errorf("fen: rank %d overfull", rank+1)
			}
			placements = append(placements, board.Placement{
				Square: board.NewSquare(file, rank),
				Piece:  p,
			})
			file++
		}
		if file != 8 {
			return nil, errors.Errorf("fen: rank %d has %d files", rank+1, file)
		}
	}
	return placements, nil
}

func decodeCastling(field string) (board.CastlingRights, error) {
	if field == "-" {
		return board.CastleNone, nil
	}
	var rights board.CastlingRights
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			rights |= board.CastleWhiteKing
		case 'Q':
			rights |= board.CastleWhiteQueen
		case 'k':
			rights |= board.CastleBlackKing
		case 'q':
			rights |= board.CastleBlackQueen
		default:
			return 0, errors.Errorf("fen: castling char %q", field[i])
		}
	}
	return rights, nil
}

func decodeSquare(s string) (board.Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return board.NoSquare, errors.Errorf("fen: square %q", s)
	}
	return board.NewSquare(int(s[0]-'a'), int(s[1]-'1')), nil
}

// Encode renders a position as a six-field FEN string.
func Encode(b board.Board) string {
	var sb strings.Builder

	occupied := make(map[board.Square]board.Piece, 32)
	for _, pl := range b.Placements() {
		occupied[pl.Square] = pl.Piece
	}
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p, ok := occupied[board.NewSquare(file, rank)]
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(charFromPiece(p))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.SideToMove() == board.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(b.CastlingRights().String())

	sb.WriteByte(' ')
	sb.WriteString(b.EnPassantSquare().String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.HalfmoveClock()))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.FullmoveNumber()))
	return sb.String()
}
