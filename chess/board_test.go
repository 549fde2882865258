package chess_test

import (
	"testing"

	"github.com/BewiZ/Chess-Rust/chess"
)

func mustParse(t *testing.T, fen string) *chess.Board {
	t.Helper()
	b, err := chess.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

func TestStartingPosition(t *testing.T) {
	b := chess.NewBoard()
	if got := b.PieceAt(chess.SquareOf(4, 0)); got != chess.WhiteKing {
		t.Fatalf("e1: got %v want white king", got)
	}
	if got := b.PieceAt(chess.SquareOf(3, 7)); got != chess.BlackQueen {
		t.Fatalf("d8: got %v want black queen", got)
	}
	if b.SideToMove() != chess.White {
		t.Fatalf("side to move: got %v", b.SideToMove())
	}
	if b.CastlingRights() != chess.WhiteKingside|chess.WhiteQueenside|chess.BlackKingside|chess.BlackQueenside {
		t.Fatalf("castling rights: got %v", b.CastlingRights())
	}
	if b.EnPassantTarget() != chess.NoSquare {
		t.Fatalf("en passant target should be unset")
	}
	if !b.Validate() {
		t.Fatalf("starting board fails validation")
	}
}

func TestKingSquareTracking(t *testing.T) {
	b := chess.NewBoard()
	if got := b.KingSquare(chess.White); got.String() != "e1" {
		t.Fatalf("white king: got %v", got)
	}
	if got := b.KingSquare(chess.Black); got.String() != "e8" {
		t.Fatalf("black king: got %v", got)
	}
	b.MovePiece(chess.SquareOf(4, 0), chess.SquareOf(4, 3))
	if got := b.KingSquare(chess.White); got.String() != "e4" {
		t.Fatalf("white king after move: got %v", got)
	}
}

func TestLowLevelMutators(t *testing.T) {
	b := mustParse(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	sq := chess.SquareOf(3, 3) // d4
	b.SetPiece(sq, chess.WhiteRook)
	if got := b.PieceAt(sq); got != chess.WhiteRook {
		t.Fatalf("after SetPiece: got %v", got)
	}
	// Replacing an occupant must not leave two pieces on one square.
	b.SetPiece(sq, chess.BlackKnight)
	if got := b.PieceAt(sq); got != chess.BlackKnight {
		t.Fatalf("after replace: got %v", got)
	}
	if !b.Validate() {
		t.Fatalf("board invalid after replace")
	}
	b.ClearSquare(sq)
	if got := b.PieceAt(sq); got != chess.NoPiece {
		t.Fatalf("after ClearSquare: got %v", got)
	}
	if !b.Validate() {
		t.Fatalf("board invalid after clear")
	}
}

func TestSquareCoordinates(t *testing.T) {
	cases := []struct {
		name string
		file int
		rank int
	}{
		{"a1", 0, 0},
		{"h1", 7, 0},
		{"e4", 4, 3},
		{"a8", 0, 7},
		{"h8", 7, 7},
	}
	for _, tc := range cases {
		sq := chess.SquareOf(tc.file, tc.rank)
		if sq.String() != tc.name {
			t.Errorf("SquareOf(%d,%d) = %v, want %s", tc.file, tc.rank, sq, tc.name)
		}
		parsed, err := chess.ParseSquare(tc.name)
		if err != nil || parsed != sq {
			t.Errorf("ParseSquare(%q) = %v, %v", tc.name, parsed, err)
		}
	}
	if _, err := chess.ParseSquare("i9"); err == nil {
		t.Errorf("ParseSquare(i9) should fail")
	}
}

func TestInsufficientMaterial(t *testing.T) {
	cases := []struct {
		fen  string
		want bool
	}{
		{"4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},                // K vs K
		{"4k3/8/8/8/8/8/8/4KN2 w - - 0 1", true},               // KN vs K
		{"4k3/8/8/8/8/8/8/4KB2 w - - 0 1", true},               // KB vs K
		{"4k3/8/8/8/8/8/8/3BKB2 w - - 0 1", false},             // bishop pair, opposite colors
		{"2b1k3/8/8/8/8/8/8/4KB2 w - - 0 1", true},             // same-colored bishops both sides
		{"4k3/8/8/8/8/8/8/4KBN1 w - - 0 1", false},             // B+N can mate
		{"4k3/8/8/8/8/8/8/3NKN2 w - - 0 1", false},             // two knights keep chances
		{"4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},             // pawn can promote
		{"4k3/8/8/8/8/8/8/R3K3 w - - 0 1", false},              // rook mates
		{"4k3/8/8/8/8/8/8/3QK3 w - - 0 1", false},              // queen mates
	}
	for _, tc := range cases {
		b := mustParse(t, tc.fen)
		if got := b.HasInsufficientMaterial(); got != tc.want {
			t.Errorf("%s: HasInsufficientMaterial = %v, want %v", tc.fen, got, tc.want)
		}
	}
}

func TestRepetitionCounting(t *testing.T) {
	b := chess.NewBoard()
	key := b.Hash()
	if b.IsDrawByRepetition([]uint64{key}) {
		t.Fatalf("single occurrence must not count as repetition")
	}
	if b.IsDrawByRepetition([]uint64{key, 1, key}) {
		t.Fatalf("history tail equal to current key must not double-count")
	}
	if !b.IsDrawByRepetition([]uint64{key, 1, key, 2, key}) {
		t.Fatalf("third occurrence must report repetition")
	}
}

func TestPieceEncoding(t *testing.T) {
	for _, c := range []chess.Color{chess.White, chess.Black} {
		for pt := chess.Pawn; pt <= chess.King; pt++ {
			p := chess.MakePiece(c, pt)
			if p.Type() != pt || p.Color() != c {
				t.Fatalf("MakePiece(%v,%v) round-trip got %v/%v", c, pt, p.Color(), p.Type())
			}
		}
	}
	if chess.MakePiece(chess.Black, chess.NoPieceType) != chess.NoPiece {
		t.Fatalf("MakePiece with no type must be NoPiece")
	}
}
