package chess_test

import (
	"testing"

	"github.com/BewiZ/Chess-Rust/chess"
)

func TestSANRendering(t *testing.T) {
	cases := []struct {
		fen  string
		uci  string
		want string
	}{
		{chess.StartingFEN, "e2e4", "e4"},
		{chess.StartingFEN, "g1f3", "Nf3"},
		{"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2", "e4d5", "exd5"},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", "O-O"},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1", "O-O-O"},
		{"8/4P2k/8/8/8/8/8/4K3 w - - 0 1", "e7e8q", "e8=Q"},
		{"8/4P2k/8/8/8/8/8/4K3 w - - 0 1", "e7e8n", "e8=N"},
		// Knights on b1 and f3 both reach d2: disambiguate by file.
		{"4k3/8/8/8/8/5N2/8/RN2K3 w - - 0 1", "f3d2", "Nfd2"},
		// Rooks doubled on the a-file: disambiguate by rank.
		{"4k3/8/8/8/R7/8/8/R3K3 w - - 0 1", "a4a2", "R4a2"},
		// Check and mate suffixes.
		{"4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1a8", "Ra8+"},
		{"6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1", "a1a8", "Ra8#"},
		// Pawn capture with promotion.
		{"3r3k/4P3/8/8/8/8/8/4K3 w - - 0 1", "e7d8q", "exd8=Q+"},
		// En passant renders as a plain pawn capture.
		{"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3", "e5f6", "exf6"},
	}
	for _, tc := range cases {
		b := mustParse(t, tc.fen)
		m := findMove(t, b, tc.uci)
		if got := b.SAN(m); got != tc.want {
			t.Errorf("%s in %s: SAN = %q, want %q", tc.uci, tc.fen, got, tc.want)
		}
	}
}

func TestSANFullDisambiguation(t *testing.T) {
	// Queens on d5, d1 and h5 all reach f3: the d1 queen shares the
	// mover's file and the h5 queen its rank, so both coordinates stay.
	b := mustParse(t, "8/k7/8/3Q3Q/8/8/8/3QK3 w - - 0 1")
	m := findMove(t, b, "d5f3")
	if got := b.SAN(m); got != "Qd5f3" {
		t.Errorf("full disambiguation: got %q, want Qd5f3", got)
	}
}

func TestParseSANResolvesMoves(t *testing.T) {
	b := chess.NewBoard()
	cases := []struct {
		san string
		uci string
	}{
		{"e4", "e2e4"},
		{"Nf3", "g1f3"},
		{"a3", "a2a3"},
	}
	for _, tc := range cases {
		m, err := b.ParseSAN(tc.san)
		if err != nil {
			t.Fatalf("ParseSAN(%q): %v", tc.san, err)
		}
		if m.String() != tc.uci {
			t.Errorf("ParseSAN(%q) = %s, want %s", tc.san, m, tc.uci)
		}
	}
}

func TestParseSANTolerantOfDecorations(t *testing.T) {
	b := mustParse(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	for _, s := range []string{"Ra8+", "Ra8", "Ra8!"} {
		m, err := b.ParseSAN(s)
		if err != nil {
			t.Fatalf("ParseSAN(%q): %v", s, err)
		}
		if m.String() != "a1a8" {
			t.Errorf("ParseSAN(%q) = %s, want a1a8", s, m)
		}
	}
	// 0-0 spelling normalizes to O-O.
	b = mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	m, err := b.ParseSAN("0-0")
	if err != nil {
		t.Fatalf("ParseSAN(0-0): %v", err)
	}
	if m.String() != "e1g1" {
		t.Errorf("ParseSAN(0-0) = %s, want e1g1", m)
	}
}

func TestParseSANRejectsUnmatched(t *testing.T) {
	b := chess.NewBoard()
	for _, s := range []string{"", "Ke2", "e5", "O-O", "Qh5"} {
		if _, err := b.ParseSAN(s); err == nil {
			t.Errorf("ParseSAN(%q) should fail in the starting position", s)
		}
	}
}
