package chess

import (
	"errors"
	"strings"
)

// Move packs a fully self-describing move into 32 bits, so it can be
// applied or reversed without re-deriving intent from the board.
//
// Layout from the LSB: from (6 bits), to (6), moved piece (4),
// captured piece (4), promotion piece (4), special flag (2).
type Move uint32

const (
	moveToShift      = 6
	movePieceShift   = 12
	moveCaptureShift = 16
	movePromoteShift = 20
	moveFlagShift    = 24
)

// Special move flags. Promotion is indicated by a non-zero promotion piece.
const (
	FlagNone uint8 = iota
	FlagCastle
	FlagEnPassant
)

// NewMove constructs a move from its components.
func NewMove(from, to Square, moved, captured, promotion Piece, flag uint8) Move {
	return Move(uint32(from&0x3F) |
		uint32(to&0x3F)<<moveToShift |
		uint32(moved&0xF)<<movePieceShift |
		uint32(captured&0xF)<<moveCaptureShift |
		uint32(promotion&0xF)<<movePromoteShift |
		uint32(flag&0x3)<<moveFlagShift)
}

// From returns the origin square.
func (m Move) From() Square { return Square(m & 0x3F) }

// To returns the destination square.
func (m Move) To() Square { return Square(m >> moveToShift & 0x3F) }

// MovedPiece returns the piece being moved.
func (m Move) MovedPiece() Piece { return Piece(m >> movePieceShift & 0xF) }

// CapturedPiece returns the captured piece, or NoPiece. For en passant
// this is the pawn removed from behind the destination square.
func (m Move) CapturedPiece() Piece { return Piece(m >> moveCaptureShift & 0xF) }

// PromotionPiece returns the piece a pawn promotes to, or NoPiece.
func (m Move) PromotionPiece() Piece { return Piece(m >> movePromoteShift & 0xF) }

// Flags returns the special move flag.
func (m Move) Flags() uint8 { return uint8(m >> moveFlagShift & 0x3) }

// IsCapture reports whether the move takes a piece, en passant included.
func (m Move) IsCapture() bool { return m.CapturedPiece() != NoPiece }

// String renders the move in coordinate (UCI) form, e.g. "e2e4", "e7e8q".
func (m Move) String() string {
	s := m.From().String() + m.To().String()
	if promo := m.PromotionPiece(); promo != NoPiece {
		s += string(pieceTypeLetter(promo.Type()) + ('a' - 'A'))
	}
	return s
}

func pieceTypeLetter(pt PieceType) byte {
	switch pt {
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	default:
		return 'P'
	}
}

// ParseSquare converts algebraic coordinates ("e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, errors.New("chess: square must be two characters")
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, errors.New("chess: square out of range: " + s)
	}
	return SquareOf(int(file-'a'), int(rank-'1')), nil
}

// MoveRequest is caller intent: the endpoints of a desired move plus
// the promotion choice, before it has been matched against the legal
// move set. Castling is expressed as the king's two-square step.
type MoveRequest struct {
	From      Square
	To        Square
	Promotion PieceType
}

// ParseMoveRequest reads coordinate notation ("e2e4", "e7e8q") into a
// MoveRequest. It performs no legality checking.
func ParseMoveRequest(s string) (MoveRequest, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if len(s) < 4 || len(s) > 5 {
		return MoveRequest{}, errors.New("chess: move must be 4 or 5 characters")
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return MoveRequest{}, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return MoveRequest{}, err
	}
	req := MoveRequest{From: from, To: to}
	if len(s) == 5 {
		switch s[4] {
		case 'n':
			req.Promotion = Knight
		case 'b':
			req.Promotion = Bishop
		case 'r':
			req.Promotion = Rook
		case 'q':
			req.Promotion = Queen
		default:
			return MoveRequest{}, errors.New("chess: invalid promotion letter")
		}
	}
	return req, nil
}

// Matches reports whether m realizes the request: same endpoints and
// the same promotion choice. Comparison is by value, never identity.
func (r MoveRequest) Matches(m Move) bool {
	return m.From() == r.From && m.To() == r.To && m.PromotionPiece().Type() == r.Promotion
}
