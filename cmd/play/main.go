// Command play is a minimal terminal front end for the rules engine:
// it renders the board, reads coordinate moves, and reports the game
// phase after every ply. It is a thin adapter; all rule knowledge
// lives in the chess and game packages.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/BewiZ/Chess-Rust/chess"
	"github.com/BewiZ/Chess-Rust/game"
)

var pieceGlyphs = map[chess.Piece]rune{
	chess.WhiteKing:   '♔',
	chess.WhiteQueen:  '♕',
	chess.WhiteRook:   '♖',
	chess.WhiteBishop: '♗',
	chess.WhiteKnight: '♘',
	chess.WhitePawn:   '♙',
	chess.BlackKing:   '♚',
	chess.BlackQueen:  '♛',
	chess.BlackRook:   '♜',
	chess.BlackBishop: '♝',
	chess.BlackKnight: '♞',
	chess.BlackPawn:   '♟',
}

func printBoard(b chess.Board) {
	fmt.Println("  a b c d e f g h")
	for rank := 7; rank >= 0; rank-- {
		fmt.Printf("%d ", rank+1)
		for file := 0; file < 8; file++ {
			p := b.PieceAt(chess.SquareOf(file, rank))
			if p == chess.NoPiece {
				fmt.Print(". ")
			} else {
				fmt.Printf("%c ", pieceGlyphs[p])
			}
		}
		fmt.Printf("%d\n", rank+1)
	}
	fmt.Println("  a b c d e f g h")
}

func printHistory(g *game.Game) {
	moves := g.Moves()
	if len(moves) == 0 {
		fmt.Println("no moves played")
		return
	}
	for i := 0; i < len(moves); i += 2 {
		line := fmt.Sprintf("%d. %s", i/2+1, moves[i].SAN)
		if i+1 < len(moves) {
			line += " " + moves[i+1].SAN
		}
		fmt.Println(line)
	}
}

func printHelp() {
	fmt.Println("enter moves in coordinate form: e2e4, e7e8q")
	fmt.Println("commands:")
	fmt.Println("  moves    list legal moves")
	fmt.Println("  history  show the move list")
	fmt.Println("  undo     take back the last move")
	fmt.Println("  fen      print the current position as FEN")
	fmt.Println("  new      restart from the initial position")
	fmt.Println("  quit     leave the game")
}

func main() {
	startFEN := flag.String("fen", "", "Start from this FEN instead of the initial position")
	flag.Parse()

	g := game.New()
	if *startFEN != "" {
		if err := g.Reset(*startFEN); err != nil {
			fmt.Fprintf(os.Stderr, "bad -fen: %v\n", err)
			os.Exit(2)
		}
	}

	fmt.Println("type 'help' for commands")
	in := bufio.NewScanner(os.Stdin)
	for {
		pos := g.Position()
		printBoard(pos)
		phase := g.Phase()
		if phase.Terminal() {
			fmt.Printf("game over: %v\n", phase)
			printHistory(g)
			return
		}
		if phase == game.Check {
			fmt.Printf("%v is in check\n", pos.SideToMove())
		}

		fmt.Printf("%v to move> ", pos.SideToMove())
		if !in.Scan() {
			return
		}
		input := strings.TrimSpace(in.Text())
		// Tolerate the "e2 e4" spelling.
		input = strings.ReplaceAll(input, " ", "")

		switch input {
		case "":
			continue
		case "quit", "exit":
			printHistory(g)
			return
		case "help":
			printHelp()
			continue
		case "history":
			printHistory(g)
			continue
		case "moves":
			var sans []string
			pos := g.Position()
			for _, m := range g.LegalMoves() {
				sans = append(sans, pos.SAN(m))
			}
			fmt.Println(strings.Join(sans, " "))
			continue
		case "fen":
			fmt.Println(g.FEN())
			continue
		case "new":
			if err := g.Reset(""); err != nil {
				fmt.Println(err)
			}
			continue
		case "undo":
			if err := g.Undo(); err != nil {
				fmt.Println(err)
			}
			continue
		}

		req, err := chess.ParseMoveRequest(input)
		if err != nil {
			fmt.Printf("unrecognized input %q (try 'help')\n", input)
			continue
		}
		if req.Promotion == chess.NoPieceType && needsPromotion(g, req) {
			req.Promotion = askPromotion(in)
		}
		if _, err := g.ApplyRequest(req); err != nil {
			fmt.Println(err)
		}
	}
}

// needsPromotion reports whether the request moves a pawn onto its
// promotion rank, in which case the piece choice must be supplied.
func needsPromotion(g *game.Game, req chess.MoveRequest) bool {
	pos := g.Position()
	p := pos.PieceAt(req.From)
	if p.Type() != chess.Pawn {
		return false
	}
	last := 7
	if p.Color() == chess.Black {
		last = 0
	}
	return req.To.Rank() == last
}

func askPromotion(in *bufio.Scanner) chess.PieceType {
	fmt.Print("promote to (q/r/b/n, default q)> ")
	if !in.Scan() {
		return chess.Queen
	}
	switch strings.TrimSpace(strings.ToLower(in.Text())) {
	case "r":
		return chess.Rook
	case "b":
		return chess.Bishop
	case "n":
		return chess.Knight
	default:
		return chess.Queen
	}
}
