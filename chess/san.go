package chess

import (
	"fmt"
	"strings"
)

// SAN renders a move in standard algebraic notation relative to the
// current position. The move must be legal here; disambiguation and
// the check/mate suffix depend on the position it is played from.
func (b *Board) SAN(m Move) string {
	var sb strings.Builder

	switch {
	case m.Flags() == FlagCastle && m.To().File() == 6:
		sb.WriteString("O-O")
	case m.Flags() == FlagCastle:
		sb.WriteString("O-O-O")
	case m.MovedPiece().Type() == Pawn:
		if m.IsCapture() {
			sb.WriteByte('a' + byte(m.From().File()))
			sb.WriteByte('x')
		}
		sb.WriteString(m.To().String())
		if promo := m.PromotionPiece(); promo != NoPiece {
			sb.WriteByte('=')
			sb.WriteByte(pieceTypeLetter(promo.Type()))
		}
	default:
		sb.WriteByte(pieceTypeLetter(m.MovedPiece().Type()))
		sb.WriteString(b.sanDisambiguation(m))
		if m.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To().String())
	}

	ok, st := b.MakeMove(m)
	if ok {
		if b.InCheck(b.turn) {
			if b.HasLegalMoves() {
				sb.WriteByte('+')
			} else {
				sb.WriteByte('#')
			}
		}
		b.UnmakeMove(m, st)
	}
	return sb.String()
}

// sanDisambiguation returns the origin qualifier required when another
// piece of the same type can also reach the destination: file first,
// rank if the file does not split them, both as a last resort.
func (b *Board) sanDisambiguation(m Move) string {
	var sameFile, sameRank, others bool
	for _, alt := range b.LegalMoves() {
		if alt == m || alt.To() != m.To() || alt.MovedPiece() != m.MovedPiece() || alt.From() == m.From() {
			continue
		}
		others = true
		if alt.From().File() == m.From().File() {
			sameFile = true
		}
		if alt.From().Rank() == m.From().Rank() {
			sameRank = true
		}
	}
	switch {
	case !others:
		return ""
	case !sameFile:
		return string([]byte{'a' + byte(m.From().File())})
	case !sameRank:
		return string([]byte{'1' + byte(m.From().Rank())})
	default:
		return m.From().String()
	}
}

// ParseSAN resolves standard algebraic notation against the current
// legal move set. Decorations that do not change the move identity
// ("+", "#", "!", "?") are ignored.
func (b *Board) ParseSAN(s string) (Move, error) {
	want := strings.TrimRight(strings.TrimSpace(s), "+#!?")
	if want == "" {
		return 0, fmt.Errorf("chess: empty SAN string")
	}
	// 0-0 is a common castling spelling; normalize to O-O.
	want = strings.ReplaceAll(want, "0", "O")
	for _, m := range b.LegalMoves() {
		got := strings.TrimRight(b.SAN(m), "+#")
		if got == want {
			return m, nil
		}
	}
	return 0, fmt.Errorf("chess: no legal move matches SAN %q", s)
}
