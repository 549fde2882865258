package chess

// castlePathSafe verifies the castling-specific legality conditions:
// the king is not in check, does not cross an attacked square, and
// does not land on one. All three are attack queries on the pre-move
// position; the generic self-check filter cannot see the crossed square.
func (b *Board) castlePathSafe(m Move) bool {
	us := b.turn
	them := us.Other()
	from, to := m.From(), m.To()
	if b.IsSquareAttacked(from, them) {
		return false
	}
	crossed := (from + to) / 2
	return !b.IsSquareAttacked(crossed, them) && !b.IsSquareAttacked(to, them)
}

// LegalMoves returns every legal move for the side to move. A move is
// legal when it is pseudo-legal and does not leave the mover's own
// king attacked; this filter is the single point of truth for
// legality, and nothing else commits moves.
func (b *Board) LegalMoves() []Move {
	return b.LegalMovesInto(make([]Move, 0, 64))
}

// LegalMovesInto appends legal moves to dst[:0] and returns it.
// Each pseudo-legal candidate is applied to the board and reverted;
// MakeMove rejects the ones that expose the king.
func (b *Board) LegalMovesInto(dst []Move) []Move {
	pseudo := b.PseudoLegalMovesInto(nil)
	moves := dst[:0]
	for _, m := range pseudo {
		if m.Flags() == FlagCastle && !b.castlePathSafe(m) {
			continue
		}
		ok, st := b.MakeMove(m)
		if !ok {
			continue
		}
		b.UnmakeMove(m, st)
		moves = append(moves, m)
	}
	return moves
}

// Perft counts the leaf nodes of the legal move tree to the given
// depth. It is the standard cross-check for generator correctness.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	bufs := make([][]Move, depth)
	return perft(b, depth, bufs)
}

func perft(b *Board, depth int, bufs [][]Move) uint64 {
	moves := b.LegalMovesInto(bufs[depth-1])
	bufs[depth-1] = moves
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		if ok, st := b.MakeMove(m); ok {
			nodes += perft(b, depth-1, bufs)
			b.UnmakeMove(m, st)
		}
	}
	return nodes
}

// PerftDivide maps each legal root move to its subtree leaf count.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range b.LegalMoves() {
		if ok, st := b.MakeMove(m); ok {
			result[m] = Perft(b, depth-1)
			b.UnmakeMove(m, st)
		}
	}
	return result
}
