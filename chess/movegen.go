package chess

import "math/bits"

// Precomputed attack masks from each square.
var knightAttacks [64]uint64
var kingAttacks [64]uint64

// pawnCaptures[color][sq]: squares a pawn of color attacks from sq.
var pawnCaptures [2][64]uint64

// Slider rays, origin square excluded.
// Orthogonal directions: 0=N, 1=S, 2=E, 3=W.
// Diagonal directions: 0=NE, 1=NW, 2=SE, 3=SW.
// Directions 0 and 2 scan toward higher square indices for orthogonals;
// 0 and 1 do for diagonals. The scan order matters when picking the
// first blocker below.
var orthoRays [64][4]uint64
var diagRays [64][4]uint64

func init() {
	initLeaperTables()
	initRayTables()
}

func initLeaperTables() {
	knightOffsets := [8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	kingOffsets := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	for sq := 0; sq < 64; sq++ {
		file, rank := sq%8, sq/8
		for _, off := range knightOffsets {
			if r, f := rank+off[0], file+off[1]; r >= 0 && r < 8 && f >= 0 && f < 8 {
				knightAttacks[sq] |= 1 << uint(r*8+f)
			}
		}
		for _, off := range kingOffsets {
			if r, f := rank+off[0], file+off[1]; r >= 0 && r < 8 && f >= 0 && f < 8 {
				kingAttacks[sq] |= 1 << uint(r*8+f)
			}
		}
		if rank < 7 {
			if file > 0 {
				pawnCaptures[White][sq] |= 1 << uint((rank+1)*8+file-1)
			}
			if file < 7 {
				pawnCaptures[White][sq] |= 1 << uint((rank+1)*8+file+1)
			}
		}
		if rank > 0 {
			if file > 0 {
				pawnCaptures[Black][sq] |= 1 << uint((rank-1)*8+file-1)
			}
			if file < 7 {
				pawnCaptures[Black][sq] |= 1 << uint((rank-1)*8+file+1)
			}
		}
	}
}

func initRayTables() {
	// [dRank, dFile] per direction, same order as the ray arrays.
	orthoDirs := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagDirs := [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	for sq := 0; sq < 64; sq++ {
		file, rank := sq%8, sq/8
		for d, dir := range orthoDirs {
			for r, f := rank+dir[0], file+dir[1]; r >= 0 && r < 8 && f >= 0 && f < 8; r, f = r+dir[0], f+dir[1] {
				orthoRays[sq][d] |= 1 << uint(r*8+f)
			}
		}
		for d, dir := range diagDirs {
			for r, f := rank+dir[0], file+dir[1]; r >= 0 && r < 8 && f >= 0 && f < 8; r, f = r+dir[0], f+dir[1] {
				diagRays[sq][d] |= 1 << uint(r*8+f)
			}
		}
	}
}

// firstBlocker picks the occupied square nearest the ray origin.
// towardLSB is true for directions that scan toward higher indices.
func firstBlocker(blockers uint64, towardLSB bool) int {
	if towardLSB {
		return bits.TrailingZeros64(blockers)
	}
	return 63 - bits.LeadingZeros64(blockers)
}

// rookAttacks returns the orthogonal attack set from sq under occ:
// each ray runs to the first occupied square inclusive.
func rookAttacks(sq int, occ uint64) uint64 {
	var attacks uint64
	for d := 0; d < 4; d++ {
		ray := orthoRays[sq][d]
		if blockers := ray & occ; blockers != 0 {
			first := firstBlocker(blockers, d == 0 || d == 2)
			ray &^= orthoRays[first][d]
		}
		attacks |= ray
	}
	return attacks
}

// bishopAttacks returns the diagonal attack set from sq under occ.
func bishopAttacks(sq int, occ uint64) uint64 {
	var attacks uint64
	for d := 0; d < 4; d++ {
		ray := diagRays[sq][d]
		if blockers := ray & occ; blockers != 0 {
			first := firstBlocker(blockers, d == 0 || d == 1)
			ray &^= diagRays[first][d]
		}
		attacks |= ray
	}
	return attacks
}

// IsSquareAttacked reports whether any piece of color by could capture
// on sq, regardless of whose turn it is. This is the primitive behind
// check detection and the castling path test.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	return b.attackedWithOcc(int(sq), by, b.Occupancy())
}

// attackedWithOcc is IsSquareAttacked against an explicit occupancy,
// letting callers probe hypothetical positions (e.g. en passant).
func (b *Board) attackedWithOcc(sq int, by Color, occ uint64) bool {
	// A pawn of 'by' attacks sq iff a pawn of the other color on sq
	// would attack the pawn's square; use the reverse table.
	if pawnCaptures[by.Other()][sq]&b.pieces[by][Pawn] != 0 {
		return true
	}
	if knightAttacks[sq]&b.pieces[by][Knight] != 0 {
		return true
	}
	if kingAttacks[sq]&b.pieces[by][King] != 0 {
		return true
	}
	if rq := b.pieces[by][Rook] | b.pieces[by][Queen]; rq != 0 && rookAttacks(sq, occ)&rq != 0 {
		return true
	}
	if bq := b.pieces[by][Bishop] | b.pieces[by][Queen]; bq != 0 && bishopAttacks(sq, occ)&bq != 0 {
		return true
	}
	return false
}

// PseudoLegalMoves returns every move consistent with piece movement
// rules for the side to move, without testing king safety. Castling is
// offered whenever the right is held and the intervening squares are
// empty; whether the king's path is attacked is the legality filter's
// concern.
func (b *Board) PseudoLegalMoves() []Move {
	return b.PseudoLegalMovesInto(make([]Move, 0, 64))
}

// PseudoLegalMovesInto appends pseudo-legal moves to dst[:0] and
// returns it, reusing capacity across calls.
func (b *Board) PseudoLegalMovesInto(dst []Move) []Move {
	moves := dst[:0]
	us := b.turn
	them := us.Other()
	ownOcc := b.occ[us]
	oppOcc := b.occ[them]
	allOcc := ownOcc | oppOcc

	moves = b.pawnMoves(moves, us, allOcc, oppOcc)

	for pieces := b.pieces[us][Knight]; pieces != 0; {
		from := popLSB(&pieces)
		moves = b.appendTargets(moves, Square(from), knightAttacks[from]&^ownOcc)
	}
	for pieces := b.pieces[us][Bishop]; pieces != 0; {
		from := popLSB(&pieces)
		moves = b.appendTargets(moves, Square(from), bishopAttacks(from, allOcc)&^ownOcc)
	}
	for pieces := b.pieces[us][Rook]; pieces != 0; {
		from := popLSB(&pieces)
		moves = b.appendTargets(moves, Square(from), rookAttacks(from, allOcc)&^ownOcc)
	}
	for pieces := b.pieces[us][Queen]; pieces != 0; {
		from := popLSB(&pieces)
		targets := (rookAttacks(from, allOcc) | bishopAttacks(from, allOcc)) &^ ownOcc
		moves = b.appendTargets(moves, Square(from), targets)
	}
	if kingBB := b.pieces[us][King]; kingBB != 0 {
		from := bits.TrailingZeros64(kingBB)
		moves = b.appendTargets(moves, Square(from), kingAttacks[from]&^ownOcc)
		moves = b.castleMoves(moves, us)
	}
	return moves
}

// appendTargets emits one move per set bit of targets for the piece on from.
func (b *Board) appendTargets(moves []Move, from Square, targets uint64) []Move {
	moved := b.squares[from]
	for targets != 0 {
		to := Square(popLSB(&targets))
		moves = append(moves, NewMove(from, to, moved, b.squares[to], NoPiece, FlagNone))
	}
	return moves
}

// pawnPromotions emits the four promotion choices for one pawn move.
// A promotion is never a single unqualified move.
func pawnPromotions(moves []Move, from, to Square, moved, captured Piece, us Color) []Move {
	for _, pt := range [4]PieceType{Queen, Rook, Bishop, Knight} {
		moves = append(moves, NewMove(from, to, moved, captured, MakePiece(us, pt), FlagNone))
	}
	return moves
}

func (b *Board) pawnMoves(moves []Move, us Color, allOcc, oppOcc uint64) []Move {
	// push: +8 for White, -8 for Black; start and promotion ranks mirror.
	push, startRank, promoRank := 8, 1, 7
	if us == Black {
		push, startRank, promoRank = -8, 6, 1
	}

	for pawns := b.pieces[us][Pawn]; pawns != 0; {
		from := popLSB(&pawns)
		fromSq := Square(from)
		moved := b.squares[from]

		one := from + push
		if allOcc&(1<<uint(one)) == 0 {
			if one/8 == promoRank {
				moves = pawnPromotions(moves, fromSq, Square(one), moved, NoPiece, us)
			} else {
				moves = append(moves, NewMove(fromSq, Square(one), moved, NoPiece, NoPiece, FlagNone))
				if from/8 == startRank {
					two := one + push
					if allOcc&(1<<uint(two)) == 0 {
						moves = append(moves, NewMove(fromSq, Square(two), moved, NoPiece, NoPiece, FlagNone))
					}
				}
			}
		}

		caps := pawnCaptures[us][from]
		for targets := caps & oppOcc; targets != 0; {
			to := popLSB(&targets)
			captured := b.squares[to]
			if to/8 == promoRank {
				moves = pawnPromotions(moves, fromSq, Square(to), moved, captured, us)
			} else {
				moves = append(moves, NewMove(fromSq, Square(to), moved, captured, NoPiece, FlagNone))
			}
		}

		// En passant: the captured pawn sits behind the target square,
		// not on it.
		if b.epSquare != NoSquare && caps&bb(b.epSquare) != 0 {
			captured := MakePiece(us.Other(), Pawn)
			moves = append(moves, NewMove(fromSq, b.epSquare, moved, captured, NoPiece, FlagEnPassant))
		}
	}
	return moves
}

// Castling origin and path squares per side.
var castleGeometry = [2]struct {
	kingFrom             Square
	ksTo, ksRook         Square
	ksEmpty              [2]Square
	qsTo, qsRook         Square
	qsEmpty              [3]Square
	kingside, queenside  CastlingRights
}{
	{4, 6, 7, [2]Square{5, 6}, 2, 0, [3]Square{1, 2, 3}, WhiteKingside, WhiteQueenside},
	{60, 62, 63, [2]Square{61, 62}, 58, 56, [3]Square{57, 58, 59}, BlackKingside, BlackQueenside},
}

func (b *Board) castleMoves(moves []Move, us Color) []Move {
	geo := &castleGeometry[us]
	king := MakePiece(us, King)
	rook := MakePiece(us, Rook)
	if b.squares[geo.kingFrom] != king {
		return moves
	}
	if b.castling&geo.kingside != 0 &&
		b.squares[geo.ksEmpty[0]] == NoPiece && b.squares[geo.ksEmpty[1]] == NoPiece &&
		b.squares[geo.ksRook] == rook {
		moves = append(moves, NewMove(geo.kingFrom, geo.ksTo, king, NoPiece, NoPiece, FlagCastle))
	}
	if b.castling&geo.queenside != 0 &&
		b.squares[geo.qsEmpty[0]] == NoPiece && b.squares[geo.qsEmpty[1]] == NoPiece && b.squares[geo.qsEmpty[2]] == NoPiece &&
		b.squares[geo.qsRook] == rook {
		moves = append(moves, NewMove(geo.kingFrom, geo.qsTo, king, NoPiece, NoPiece, FlagCastle))
	}
	return moves
}
