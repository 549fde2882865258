package chess

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// StartingFEN is the standard initial position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrMalformedPosition marks FEN input that does not describe a
// reachable chess position. It is surfaced to the caller, never
// silently corrected.
var ErrMalformedPosition = errors.New("chess: malformed position")

func pieceFromFENChar(ch rune) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// FENChar returns the FEN letter for a piece: uppercase for White,
// lowercase for Black.
func (p Piece) FENChar() byte {
	ch := pieceTypeLetter(p.Type())
	if p.Color() == Black {
		ch += 'a' - 'A'
	}
	return ch
}

// ParseFEN builds a board from Forsyth-Edwards notation. Beyond the
// grammar it validates that the position is materially possible:
// exactly one king per side and no pawns on the back ranks.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: want at least 4 fields, got %d", ErrMalformedPosition, len(fields))
	}

	b := &Board{epSquare: NoSquare, fullmove: 1}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: want 8 ranks, got %d", ErrMalformedPosition, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			p := pieceFromFENChar(ch)
			if p == NoPiece {
				return nil, fmt.Errorf("%w: unrecognized piece %q", ErrMalformedPosition, ch)
			}
			if file >= 8 {
				return nil, fmt.Errorf("%w: rank %d overflows", ErrMalformedPosition, rank+1)
			}
			b.addPiece(SquareOf(file, rank), p)
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("%w: rank %d has %d files", ErrMalformedPosition, rank+1, file)
		}
	}

	switch fields[1] {
	case "w":
		b.turn = White
	case "b":
		b.turn = Black
	default:
		return nil, fmt.Errorf("%w: side to move %q", ErrMalformedPosition, fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				b.castling |= WhiteKingside
			case 'Q':
				b.castling |= WhiteQueenside
			case 'k':
				b.castling |= BlackKingside
			case 'q':
				b.castling |= BlackQueenside
			default:
				return nil, fmt.Errorf("%w: castling rights %q", ErrMalformedPosition, fields[2])
			}
		}
	}

	if fields[3] != "-" {
		ep, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("%w: en passant square %q", ErrMalformedPosition, fields[3])
		}
		b.epSquare = ep
	}

	if len(fields) > 4 {
		halfmove, err := strconv.Atoi(fields[4])
		if err != nil || halfmove < 0 {
			return nil, fmt.Errorf("%w: halfmove clock %q", ErrMalformedPosition, fields[4])
		}
		b.halfmove = halfmove
	}
	if len(fields) > 5 {
		fullmove, err := strconv.Atoi(fields[5])
		if err != nil || fullmove < 1 {
			return nil, fmt.Errorf("%w: fullmove number %q", ErrMalformedPosition, fields[5])
		}
		b.fullmove = fullmove
	}

	if err := b.checkMaterial(); err != nil {
		return nil, err
	}

	b.key = b.computeZobrist()
	return b, nil
}

// checkMaterial rejects placements no game can reach.
func (b *Board) checkMaterial() error {
	for c := White; c <= Black; c++ {
		if n := bits.OnesCount64(b.pieces[c][King]); n != 1 {
			return fmt.Errorf("%w: %v has %d kings", ErrMalformedPosition, c, n)
		}
	}
	const backRanks = uint64(0xFF) | uint64(0xFF)<<56
	if (b.pieces[White][Pawn]|b.pieces[Black][Pawn])&backRanks != 0 {
		return fmt.Errorf("%w: pawn on a back rank", ErrMalformedPosition)
	}
	return nil
}

// ToFEN serializes the position. ParseFEN(b.ToFEN()) reproduces b
// field for field.
func (b *Board) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.squares[SquareOf(file, rank)]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(p.FENChar())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.turn == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if b.castling == 0 {
		sb.WriteByte('-')
	} else {
		if b.castling&WhiteKingside != 0 {
			sb.WriteByte('K')
		}
		if b.castling&WhiteQueenside != 0 {
			sb.WriteByte('Q')
		}
		if b.castling&BlackKingside != 0 {
			sb.WriteByte('k')
		}
		if b.castling&BlackQueenside != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.epSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmove))
	return sb.String()
}
