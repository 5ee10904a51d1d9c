package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/fatih/color"

	"shashki/internal/shashki"
)

var (
	darkSquare  = color.New(color.BgGreen)
	lightSquare = color.New(color.BgWhite)
	whitePiece  = color.New(color.BgGreen, color.FgHiWhite, color.Bold)
	blackPiece  = color.New(color.BgGreen, color.FgBlack, color.Bold)
	origin      = color.New(color.BgYellow, color.FgBlack, color.Bold)
)

func main() {
	fen := flag.String("fen", "", "position to inspect (default: starting position)")
	flag.Parse()

	pos := shashki.NewInitialPosition()
	if *fen != "" {
		var err error
		if pos, err = shashki.DecodePosition(*fen); err != nil {
			log.Fatalf("decode %q: %v", *fen, err)
		}
	}

	a := pos.LegalActions()
	fmt.Println("FEN:", pos.Encode())
	fmt.Printf("Hash: %016x\n", pos.Hash)
	printBoard(pos, a)

	fmt.Printf("%s to move, mode=%s, turns=%d\n", pos.SideToMove, a.Mode, a.Turns())
	if a.Empty() {
		fmt.Printf("no legal actions: %s wins\n", shashki.Opposite(pos.SideToMove))
		return
	}
	for _, from := range a.Origins() {
		if a.Mode == shashki.ModeCapture {
			for _, seq := range a.Captures[from] {
				fmt.Printf("  %s", shashki.SquareName(from))
				for _, h := range seq {
					fmt.Printf(" x%s(%s)", shashki.SquareName(h.To), shashki.SquareName(h.Captured))
				}
				fmt.Println()
			}
			continue
		}
		for _, to := range a.Moves[from] {
			fmt.Printf("  %s-%s\n", shashki.SquareName(from), shashki.SquareName(to))
		}
	}
}

func printBoard(pos *shashki.Position, a shashki.Actions) {
	for r := 0; r < shashki.Rows; r++ {
		fmt.Printf("%d ", shashki.Rows-r)
		for c := 0; c < shashki.Cols; c++ {
			sq := shashki.Square(r, c)
			pc := pos.Board.Squares[sq]
			cell := " . "
			switch pc.Rank() {
			case shashki.RankMan:
				cell = " o "
			case shashki.RankKing:
				cell = " K "
			}
			switch {
			case !shashki.IsDark(sq):
				lightSquare.Print("   ")
			case a.Contains(sq):
				origin.Print(cell)
			case pc.Side() == shashki.White:
				whitePiece.Print(cell)
			case pc.Side() == shashki.Black:
				blackPiece.Print(cell)
			default:
				darkSquare.Print(cell)
			}
		}
		fmt.Println()
	}
	fmt.Println("   a  b  c  d  e  f  g  h")
}
