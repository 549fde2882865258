package chess

import "math/bits"

// Color identifies a side. White moves first.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is a colorless piece kind in [1..6]; 0 means no piece.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Piece packs a type and a color into one byte:
// bits 0-2 hold the PieceType, bit 3 is set for Black.
type Piece uint8

const NoPiece Piece = 0

const (
	WhitePawn   Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhiteRook   Piece = Piece(Rook)
	WhiteQueen  Piece = Piece(Queen)
	WhiteKing   Piece = Piece(King)

	BlackPawn   Piece = Piece(Pawn) | 8
	BlackKnight Piece = Piece(Knight) | 8
	BlackBishop Piece = Piece(Bishop) | 8
	BlackRook   Piece = Piece(Rook) | 8
	BlackQueen  Piece = Piece(Queen) | 8
	BlackKing   Piece = Piece(King) | 8
)

// MakePiece combines a side and a colorless type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == NoPieceType {
		return NoPiece
	}
	return Piece(pt) | Piece(c<<3)
}

// Type returns the colorless type of the piece.
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece reports White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// Square addresses one of the 64 board cells, a1=0 .. h8=63.
type Square int

const NoSquare Square = -1

// SquareOf builds a square from file and rank coordinates in [0..7].
func SquareOf(file, rank int) Square { return Square(rank*8 + file) }

// File returns the file index in [0..7], 0 being the a-file.
func (s Square) File() int { return int(s) % 8 }

// Rank returns the rank index in [0..7], 0 being rank 1.
func (s Square) Rank() int { return int(s) / 8 }

func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

// CastlingRights is a bitmask of the four castling permissions.
// Rights only ever transition from set to cleared.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// Board is a chess position: piece placement plus the state needed to
// continue the game (turn, castling rights, en passant target, clocks).
// It is a plain value; copying it yields an independent snapshot.
type Board struct {
	// pieces[color][type] bitboards, type indexed by PieceType (index 0 unused)
	pieces [2][7]uint64

	// occupancy per side
	occ [2]uint64

	// mailbox mirror of the bitboards
	squares [64]Piece

	turn      Color
	castling  CastlingRights
	epSquare  Square
	halfmove  int
	fullmove  int
	key       uint64
}

// NewBoard returns a board set up in the standard starting position.
func NewBoard() Board {
	b, err := ParseFEN(StartingFEN)
	if err != nil {
		panic("chess: starting position failed to parse: " + err.Error())
	}
	return *b
}

// PieceAt returns the piece occupying sq, or NoPiece.
func (b *Board) PieceAt(sq Square) Piece { return b.squares[sq] }

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.turn }

// CastlingRights returns the remaining castling permissions.
func (b *Board) CastlingRights() CastlingRights { return b.castling }

// EnPassantTarget returns the en passant capture square, or NoSquare.
// It is set only for the ply immediately after a double pawn push.
func (b *Board) EnPassantTarget() Square { return b.epSquare }

// HalfmoveClock returns the ply count since the last capture or pawn move.
func (b *Board) HalfmoveClock() int { return b.halfmove }

// FullmoveNumber returns the full move counter, starting at 1 and
// incremented after each Black move.
func (b *Board) FullmoveNumber() int { return b.fullmove }

// Hash returns the Zobrist key of the position. The key covers piece
// placement, side to move, castling rights, and the en passant file.
func (b *Board) Hash() uint64 { return b.key }

// KingSquare returns the square of the given side's king in O(1).
func (b *Board) KingSquare(c Color) Square {
	kings := b.pieces[c][King]
	if kings == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(kings))
}

// Occupancy returns the bitboard of all squares occupied by either side.
func (b *Board) Occupancy() uint64 { return b.occ[White] | b.occ[Black] }

// ColorOccupancy returns the bitboard of squares occupied by c.
func (b *Board) ColorOccupancy(c Color) uint64 { return b.occ[c] }

// PieceBitboard returns the bitboard for one piece type of one side.
func (b *Board) PieceBitboard(c Color, pt PieceType) uint64 { return b.pieces[c][pt] }

// bb returns a bitboard with the bit for sq set.
func bb(sq Square) uint64 { return 1 << uint(sq) }

// popLSB removes and returns the index of the lowest set bit.
func popLSB(mask *uint64) int {
	idx := bits.TrailingZeros64(*mask)
	*mask &= *mask - 1
	return idx
}

// addPiece places p on an empty square, maintaining bitboards,
// occupancy, mailbox and the Zobrist key.
func (b *Board) addPiece(sq Square, p Piece) {
	if p == NoPiece {
		return
	}
	c := p.Color()
	b.squares[sq] = p
	b.occ[c] |= bb(sq)
	b.pieces[c][p.Type()] |= bb(sq)
	b.key ^= zobristPiece[p][sq]
}

// removePiece lifts whatever occupies sq and returns it.
func (b *Board) removePiece(sq Square) Piece {
	p := b.squares[sq]
	if p == NoPiece {
		return NoPiece
	}
	c := p.Color()
	b.squares[sq] = NoPiece
	b.occ[c] &^= bb(sq)
	b.pieces[c][p.Type()] &^= bb(sq)
	b.key ^= zobristPiece[p][sq]
	return p
}

// SetPiece puts p on sq, replacing any occupant. Low-level mutator:
// it performs no rule validation and does not touch game state.
func (b *Board) SetPiece(sq Square, p Piece) {
	b.removePiece(sq)
	b.addPiece(sq, p)
}

// ClearSquare removes any piece from sq.
func (b *Board) ClearSquare(sq Square) { b.removePiece(sq) }

// MovePiece relocates the occupant of from to to, capturing any piece
// already on to. Low-level mutator used by the apply/undo machinery.
func (b *Board) MovePiece(from, to Square) {
	moving := b.removePiece(from)
	b.removePiece(to)
	b.addPiece(to, moving)
}

// InCheck reports whether c's king is attacked by the opponent.
func (b *Board) InCheck(c Color) bool {
	ks := b.KingSquare(c)
	if ks == NoSquare {
		return false
	}
	return b.IsSquareAttacked(ks, c.Other())
}

// HasLegalMoves reports whether the side to move has any legal move.
func (b *Board) HasLegalMoves() bool {
	buf := make([]Move, 0, 64)
	return len(b.LegalMovesInto(buf)) > 0
}

// InCheckmate reports whether the side to move is checkmated.
func (b *Board) InCheckmate() bool {
	return b.InCheck(b.turn) && !b.HasLegalMoves()
}

// InStalemate reports whether the side to move is stalemated.
func (b *Board) InStalemate() bool {
	return !b.InCheck(b.turn) && !b.HasLegalMoves()
}

// IsDrawByFiftyMove reports whether the fifty-move rule applies:
// one hundred plies without a capture or pawn move.
func (b *Board) IsDrawByFiftyMove() bool { return b.halfmove >= 100 }

// IsDrawByRepetition reports a threefold repetition given the Zobrist
// keys of every position reached so far, oldest first. The current
// position counts as one occurrence; if the final history entry equals
// the current key it is not double-counted.
func (b *Board) IsDrawByRepetition(history []uint64) bool {
	end := len(history)
	if end > 0 && history[end-1] == b.key {
		end--
	}
	seen := 1
	for i := 0; i < end; i++ {
		if history[i] == b.key {
			seen++
			if seen >= 3 {
				return true
			}
		}
	}
	return false
}

const (
	lightSquares = 0x55AA55AA55AA55AA
	darkSquares  = 0xAA55AA55AA55AA55
)

// HasInsufficientMaterial reports whether neither side can possibly
// deliver checkmate: bare kings, a lone minor piece, or bishops that
// all stand on squares of one color.
func (b *Board) HasInsufficientMaterial() bool {
	for c := White; c <= Black; c++ {
		if b.pieces[c][Pawn] != 0 || b.pieces[c][Rook] != 0 || b.pieces[c][Queen] != 0 {
			return false
		}
	}
	knights := b.pieces[White][Knight] | b.pieces[Black][Knight]
	bishops := b.pieces[White][Bishop] | b.pieces[Black][Bishop]
	minors := bits.OnesCount64(knights | bishops)
	if minors <= 1 {
		return true
	}
	// Any knight alongside another minor piece keeps mating chances alive.
	if knights != 0 {
		return false
	}
	// Only bishops remain: dead position iff they never leave one square color.
	return bishops&lightSquares == 0 || bishops&darkSquares == 0
}

// Equal reports whether two boards match in every field, clocks and
// counters included. Board is a pure value, so this is plain equality.
func (b Board) Equal(o Board) bool { return b == o }

// Validate cross-checks the mailbox, bitboards, occupancy and Zobrist
// key for internal consistency. Intended for tests and assertions;
// a false return indicates a defect in this package.
func (b *Board) Validate() bool {
	var occ [2]uint64
	var pieces [2][7]uint64
	for sq := Square(0); sq < 64; sq++ {
		p := b.squares[sq]
		if p == NoPiece {
			continue
		}
		c := p.Color()
		occ[c] |= bb(sq)
		pieces[c][p.Type()] |= bb(sq)
	}
	if occ != b.occ || pieces != b.pieces {
		return false
	}
	return b.key == b.computeZobrist()
}
