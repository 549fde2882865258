package chess

// MoveState captures the irreversible parts of the position before a
// move, so UnmakeMove can restore them exactly.
type MoveState struct {
	captured     Piece
	prevCastling CastlingRights
	prevEP       Square
	prevHalfmove int
	prevFullmove int
	prevKey      uint64
}

// rookCastleSquares maps a castling king destination to the rook's
// relocation for that castle.
func rookCastleSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case 6: // g1
		return 7, 5
	case 2: // c1
		return 0, 3
	case 62: // g8
		return 63, 61
	case 58: // c8
		return 56, 59
	}
	return NoSquare, NoSquare
}

// castlingRevocations[sq] holds the rights lost when a king or rook
// moves from, or a rook is captured on, its original square.
var castlingRevocations = func() [64]CastlingRights {
	var rev [64]CastlingRights
	rev[0] = WhiteQueenside
	rev[4] = WhiteKingside | WhiteQueenside
	rev[7] = WhiteKingside
	rev[56] = BlackQueenside
	rev[60] = BlackKingside | BlackQueenside
	rev[63] = BlackKingside
	return rev
}()

// MakeMove applies m to the board. If the move would leave the mover's
// own king attacked it is rejected: the board is restored and ok is
// false. On success the returned state allows an exact UnmakeMove.
//
// MakeMove trusts m's piece fields; it is fed from the generator and
// from the game layer, which matches caller intent against generated
// moves first.
func (b *Board) MakeMove(m Move) (ok bool, st MoveState) {
	st = MoveState{
		captured:     NoPiece,
		prevCastling: b.castling,
		prevEP:       b.epSquare,
		prevHalfmove: b.halfmove,
		prevFullmove: b.fullmove,
		prevKey:      b.key,
	}

	from, to := m.From(), m.To()
	moved := m.MovedPiece()
	us := b.turn

	// The en passant window closes every ply; a double push below reopens it.
	if b.epSquare != NoSquare {
		b.key ^= zobristEnPassant[b.epSquare.File()]
		b.epSquare = NoSquare
	}

	switch m.Flags() {
	case FlagEnPassant:
		capSq := to - 8
		if us == Black {
			capSq = to + 8
		}
		st.captured = b.removePiece(capSq)
		b.MovePiece(from, to)
	case FlagCastle:
		b.MovePiece(from, to)
		rookFrom, rookTo := rookCastleSquares(to)
		b.MovePiece(rookFrom, rookTo)
	default:
		st.captured = b.removePiece(to)
		if promo := m.PromotionPiece(); promo != NoPiece {
			b.removePiece(from)
			b.addPiece(to, promo)
		} else {
			b.MovePiece(from, to)
		}
	}

	// Rights are monotone: moving a king or rook off its original
	// square, or capturing a rook on one, revokes forever.
	newCastling := b.castling &^ (castlingRevocations[from] | castlingRevocations[to])
	if newCastling != b.castling {
		b.key ^= zobristCastle[b.castling]
		b.key ^= zobristCastle[newCastling]
		b.castling = newCastling
	}

	// A double pawn push opens the en passant window behind the pawn.
	if moved.Type() == Pawn && (to-from == 16 || from-to == 16) {
		b.epSquare = (from + to) / 2
		b.key ^= zobristEnPassant[b.epSquare.File()]
	}

	b.turn = us.Other()
	b.key ^= zobristTurn

	if ks := b.KingSquare(us); ks == NoSquare || b.IsSquareAttacked(ks, b.turn) {
		b.UnmakeMove(m, st)
		return false, st
	}

	if moved.Type() == Pawn || st.captured != NoPiece {
		b.halfmove = 0
	} else {
		b.halfmove++
	}
	if us == Black {
		b.fullmove++
	}
	return true, st
}

// UnmakeMove reverses a move previously applied with MakeMove.
func (b *Board) UnmakeMove(m Move, st MoveState) {
	b.turn = b.turn.Other()

	from, to := m.From(), m.To()

	switch m.Flags() {
	case FlagEnPassant:
		b.MovePiece(to, from)
		capSq := to - 8
		if b.turn == Black {
			capSq = to + 8
		}
		b.addPiece(capSq, st.captured)
	case FlagCastle:
		rookFrom, rookTo := rookCastleSquares(to)
		b.MovePiece(rookTo, rookFrom)
		b.MovePiece(to, from)
	default:
		if m.PromotionPiece() != NoPiece {
			b.removePiece(to)
			b.addPiece(from, m.MovedPiece())
		} else {
			b.MovePiece(to, from)
		}
		if st.captured != NoPiece {
			b.addPiece(to, st.captured)
		}
	}

	b.castling = st.prevCastling
	b.epSquare = st.prevEP
	b.halfmove = st.prevHalfmove
	b.fullmove = st.prevFullmove
	// The piece helpers XOR the key piecemeal; restoring the saved key
	// squares away side/castling/en-passant terms in one step.
	b.key = st.prevKey
}
