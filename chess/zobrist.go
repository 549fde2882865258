package chess

import "math/rand"

// Zobrist key tables. Piece codes occupy [1..14] with a gap at 7-8,
// so the piece table is sized for the full code range.
var zobristPiece [15][64]uint64
var zobristCastle [16]uint64
var zobristEnPassant [8]uint64
var zobristTurn uint64

func init() {
	// Fixed seed keeps keys reproducible across runs and tests.
	rnd := rand.New(rand.NewSource(0x5EED))

	for p := range zobristPiece {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := range zobristCastle {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristTurn = rnd.Uint64()
}

// computeZobrist derives the key for the current position from scratch.
// Normal play maintains the key incrementally; this is the reference.
func (b *Board) computeZobrist() uint64 {
	var key uint64
	for sq := Square(0); sq < 64; sq++ {
		if p := b.squares[sq]; p != NoPiece {
			key ^= zobristPiece[p][sq]
		}
	}
	if b.turn == Black {
		key ^= zobristTurn
	}
	key ^= zobristCastle[b.castling]
	if b.epSquare != NoSquare {
		key ^= zobristEnPassant[b.epSquare.File()]
	}
	return key
}
