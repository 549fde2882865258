// Package game drives a chess game on top of the rules engine: it owns
// the authoritative position, the move history, and the derived game
// phase. It is a synchronous state machine; callers submit moves and
// read back legality and outcome. Concurrent use must be serialized
// externally.
package game

import (
	"fmt"

	"github.com/BewiZ/Chess-Rust/chess"
)

// Phase classifies the current position. Check is non-terminal and
// re-enterable; everything from Checkmate on ends the game.
type Phase int

const (
	Ongoing Phase = iota
	Check
	Checkmate
	Stalemate
	DrawByFiftyMove
	DrawByRepetition
	DrawByInsufficientMaterial
)

// Terminal reports whether the phase ends the game.
func (p Phase) Terminal() bool { return p >= Checkmate }

func (p Phase) String() string {
	switch p {
	case Ongoing:
		return "ongoing"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawByFiftyMove:
		return "draw by fifty-move rule"
	case DrawByRepetition:
		return "draw by threefold repetition"
	case DrawByInsufficientMaterial:
		return "draw by insufficient material"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// HistoryEntry is one applied move together with the position it
// produced. Positions are stored as full snapshots so undo and replay
// restore them verbatim instead of inverse-simulating.
type HistoryEntry struct {
	Move     chess.Move
	SAN      string
	Position chess.Board
}

// Game is the authoritative game state. The zero value is not usable;
// construct with New or NewFromFEN.
type Game struct {
	board   chess.Board
	start   chess.Board
	history []HistoryEntry
	keys    []uint64 // Zobrist key of every position reached, start included
	phase   Phase
}

// New starts a game from the standard initial position.
func New() *Game {
	g := &Game{}
	g.resetTo(chess.NewBoard())
	return g
}

// NewFromFEN starts a game from an arbitrary position. Malformed input
// surfaces the parse error unchanged.
func NewFromFEN(fen string) (*Game, error) {
	b, err := chess.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	g := &Game{}
	g.resetTo(*b)
	return g, nil
}

func (g *Game) resetTo(b chess.Board) {
	g.board = b
	g.start = b
	g.history = g.history[:0]
	g.keys = append(g.keys[:0], b.Hash())
	g.phase = g.computePhase()
}

// Reset restarts the game. An empty fen selects the standard starting
// position; otherwise the position is parsed and validated first, and
// the game is left untouched on error.
func (g *Game) Reset(fen string) error {
	if fen == "" {
		g.resetTo(chess.NewBoard())
		return nil
	}
	b, err := chess.ParseFEN(fen)
	if err != nil {
		return err
	}
	g.resetTo(*b)
	return nil
}

// Position returns a snapshot of the current position. The copy is
// independent; mutating it does not affect the game.
func (g *Game) Position() chess.Board { return g.board }

// FEN serializes the current position.
func (g *Game) FEN() string { return g.board.ToFEN() }

// Phase returns the current game phase. It is recomputed after every
// mutation, never cached across them.
func (g *Game) Phase() Phase { return g.phase }

// HistoryLength returns the number of applied moves.
func (g *Game) HistoryLength() int { return len(g.history) }

// Moves returns a read-only copy of the move history for display.
func (g *Game) Moves() []HistoryEntry {
	out := make([]HistoryEntry, len(g.history))
	copy(out, g.history)
	return out
}

// PositionAt returns a snapshot of the position after n moves;
// PositionAt(0) is the starting position. Jumping does not mutate the
// live game.
func (g *Game) PositionAt(n int) (chess.Board, error) {
	switch {
	case n < 0 || n > len(g.history):
		return chess.Board{}, fmt.Errorf("game: position index %d out of range [0,%d]", n, len(g.history))
	case n == 0:
		return g.start, nil
	default:
		return g.history[n-1].Position, nil
	}
}

// LegalMoves returns the legal moves for the side to move, or nothing
// once the game has ended.
func (g *Game) LegalMoves() []chess.Move {
	if g.phase.Terminal() {
		return nil
	}
	return g.board.LegalMoves()
}

// ApplyMove submits a move. The move is accepted only if it matches a
// member of the current legal move set by endpoints, promotion and
// special flag; anything else returns ErrIllegalMove with the state
// untouched. On success the board is mutated, the move is appended to
// history, and the recomputed phase is returned.
func (g *Game) ApplyMove(m chess.Move) (Phase, error) {
	req := chess.MoveRequest{From: m.From(), To: m.To(), Promotion: m.PromotionPiece().Type()}
	return g.apply(req)
}

// ApplyRequest submits caller intent (for example a dragged piece's
// endpoints) without requiring a fully populated Move value.
func (g *Game) ApplyRequest(req chess.MoveRequest) (Phase, error) {
	return g.apply(req)
}

func (g *Game) apply(req chess.MoveRequest) (Phase, error) {
	for _, candidate := range g.LegalMoves() {
		if req.Matches(candidate) {
			g.commit(candidate)
			return g.phase, nil
		}
	}
	return g.phase, fmt.Errorf("%w: %v%v", ErrIllegalMove, req.From, req.To)
}

// commit applies a move already known to be legal.
func (g *Game) commit(m chess.Move) {
	san := g.board.SAN(m)
	if ok, _ := g.board.MakeMove(m); !ok {
		// The move came from the legal set; failure here is a defect.
		panic("game: legal move rejected by MakeMove")
	}
	g.history = append(g.history, HistoryEntry{Move: m, SAN: san, Position: g.board})
	g.keys = append(g.keys, g.board.Hash())
	g.phase = g.computePhase()
}

// Undo pops the last move and restores the preceding position from its
// stored snapshot. It fails with ErrNoHistory at the start of the game.
func (g *Game) Undo() error {
	n := len(g.history)
	if n == 0 {
		return ErrNoHistory
	}
	g.history = g.history[:n-1]
	g.keys = g.keys[:len(g.keys)-1]
	if n == 1 {
		g.board = g.start
	} else {
		g.board = g.history[n-2].Position
	}
	g.phase = g.computePhase()
	return nil
}

// computePhase derives the phase of the current position. Mate and
// stalemate outrank the draw rules: a move that delivers mate ends the
// game even if it also reaches a draw threshold.
func (g *Game) computePhase() Phase {
	inCheck := g.board.InCheck(g.board.SideToMove())
	if !g.board.HasLegalMoves() {
		if inCheck {
			return Checkmate
		}
		return Stalemate
	}
	switch {
	case g.board.IsDrawByFiftyMove():
		return DrawByFiftyMove
	case g.board.IsDrawByRepetition(g.keys):
		return DrawByRepetition
	case g.board.HasInsufficientMaterial():
		return DrawByInsufficientMaterial
	case inCheck:
		return Check
	default:
		return Ongoing
	}
}
