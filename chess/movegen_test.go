package chess_test

import (
	"testing"

	"github.com/BewiZ/Chess-Rust/chess"
)

// findMove looks up a legal move by its coordinate spelling.
func findMove(t *testing.T, b *chess.Board, uci string) chess.Move {
	t.Helper()
	for _, m := range b.LegalMoves() {
		if m.String() == uci {
			return m
		}
	}
	t.Fatalf("move %s not found in legal moves for %s", uci, b.ToFEN())
	return 0
}

func hasMove(b *chess.Board, uci string) bool {
	for _, m := range b.LegalMoves() {
		if m.String() == uci {
			return true
		}
	}
	return false
}

func TestStartingMoveCount(t *testing.T) {
	b := chess.NewBoard()
	moves := b.LegalMoves()
	if len(moves) != 20 {
		t.Fatalf("starting position: got %d legal moves, want 20", len(moves))
	}
}

func TestPawnDoublePushBlocked(t *testing.T) {
	// A piece on e3 blocks both the single and the double push.
	b := mustParse(t, "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1")
	if hasMove(b, "e2e3") || hasMove(b, "e2e4") {
		t.Fatalf("blocked pawn must not push: %v", b.LegalMoves())
	}
}

func TestPromotionGeneratesFourMoves(t *testing.T) {
	b := mustParse(t, "8/4P2k/8/8/8/8/8/4K3 w - - 0 1")
	var promos []string
	for _, m := range b.LegalMoves() {
		if m.PromotionPiece() != chess.NoPiece {
			promos = append(promos, m.String())
		}
	}
	if len(promos) != 4 {
		t.Fatalf("got %d promotion moves %v, want 4", len(promos), promos)
	}
	for _, want := range []string{"e7e8q", "e7e8r", "e7e8b", "e7e8n"} {
		if !hasMove(b, want) {
			t.Errorf("missing promotion %s", want)
		}
	}
}

func TestEnPassantOffered(t *testing.T) {
	b := chess.NewBoard()
	for _, uci := range []string{"e2e4", "a7a6", "e4e5", "d7d5"} {
		m := findMove(t, &b, uci)
		if ok, _ := b.MakeMove(m); !ok {
			t.Fatalf("MakeMove(%s) rejected", uci)
		}
	}
	if b.EnPassantTarget().String() != "d6" {
		t.Fatalf("en passant target: got %v, want d6", b.EnPassantTarget())
	}
	ep := findMove(t, &b, "e5d6")
	if ep.Flags() != chess.FlagEnPassant {
		t.Fatalf("e5d6 should carry the en passant flag")
	}
	if ep.CapturedPiece() != chess.BlackPawn {
		t.Fatalf("en passant capture: got %v, want black pawn", ep.CapturedPiece())
	}
}

func TestCastlingAvailability(t *testing.T) {
	// Open position with all four rights intact.
	b := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if !hasMove(b, "e1g1") || !hasMove(b, "e1c1") {
		t.Fatalf("white should have both castles available")
	}

	// Rights stripped: the same geometry must not offer castling.
	b = mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1")
	if hasMove(b, "e1g1") || hasMove(b, "e1c1") {
		t.Fatalf("castling offered without rights")
	}

	// A piece between king and rook blocks that side only.
	b = mustParse(t, "r3k2r/8/8/8/8/8/8/R2QK2R w KQkq - 0 1")
	if !hasMove(b, "e1g1") {
		t.Fatalf("kingside castle should survive a queenside blocker")
	}
	if hasMove(b, "e1c1") {
		t.Fatalf("queenside castle through d1 blocker")
	}
}

func TestCastlingThroughAttackForbidden(t *testing.T) {
	// Black rook on f8 covers f1: the white king may not cross it.
	b := mustParse(t, "r4rk1/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if hasMove(b, "e1g1") {
		t.Fatalf("castled through an attacked square")
	}
	if !hasMove(b, "e1c1") {
		t.Fatalf("queenside path is safe and should be offered")
	}

	// Castling out of check is never legal.
	b = mustParse(t, "4r1k1/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if hasMove(b, "e1g1") || hasMove(b, "e1c1") {
		t.Fatalf("castled while in check")
	}
}

func TestPinnedPieceMovesExcluded(t *testing.T) {
	// The e-file knight is pinned against the king by the black rook.
	b := mustParse(t, "4r1k1/8/8/8/8/4N3/8/4K3 w - - 0 1")
	for _, m := range b.LegalMoves() {
		if m.MovedPiece() == chess.WhiteKnight {
			t.Fatalf("pinned knight offered move %s", m)
		}
	}
}

func TestCheckEvasionsOnly(t *testing.T) {
	// White is checked by the rook on e8: block, capture, or step aside.
	b := mustParse(t, "4r1k1/8/8/8/8/8/3B4/4K3 w - - 0 1")
	moves := b.LegalMoves()
	for _, m := range moves {
		if ok, st := b.MakeMove(m); ok {
			if b.InCheck(chess.White) {
				t.Fatalf("evasion %s leaves the king in check", m)
			}
			b.UnmakeMove(m, st)
		} else {
			t.Fatalf("generated illegal evasion %s", m)
		}
	}
	if !hasMove(b, "d2e3") {
		t.Fatalf("bishop block d2e3 missing")
	}
}
