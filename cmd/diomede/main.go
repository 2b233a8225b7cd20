// diomede is a simple console chess engine. It prints the board, accepts
// moves in coordinate notation ("e2e4", "e7e8q" for promotions) and replies
// with its best move.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/herohde/diomede/pkg/board"
	"github.com/herohde/diomede/pkg/eval"
	"github.com/herohde/diomede/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

var (
	depth = flag.Uint("depth", 0, "Fixed search depth (zero uses the dynamic schedule)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: diomede [options]

DIOMEDE is a simple console chess engine. Enter moves in coordinate
notation, such as "e2e4" or "e7e8q". Commands: "score", "moves", "quit".
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	var limit lang.Optional[uint]
	if *depth > 0 {
		limit = lang.Some(*depth)
	}

	fmt.Printf("diomede %v\n", version)

	mm := board.NewMoveMap()
	pos := board.NewPosition()
	printBoard(&pos)

	in := readStdinLines(ctx)
	for line := range in {
		switch strings.TrimSpace(line) {
		case "":
			continue
		case "quit", "exit":
			return
		case "score":
			fmt.Println(eval.EvaluateTerms(&pos, mm, eval.NewSettings()))
			continue
		case "moves":
			var moves []string
			for _, s := range pos.Successors(mm) {
				moves = append(moves, s.LastMove().String())
			}
			fmt.Println(strings.Join(moves, " "))
			continue
		}

		next, err := play(mm, &pos, strings.TrimSpace(line))
		if err != nil {
			fmt.Printf("illegal move: %v\n", err)
			continue
		}
		pos = next
		printBoard(&pos)
		if over(mm, &pos) {
			return
		}

		s := eval.NewSettingsDepth(searchDepth(&pos, limit))
		ranked := search.Minimax(mm, s, &pos)
		logw.Debugf(ctx, "Searched %v moves at depth=%v", len(ranked), s.SearchDepth)

		best := ranked[0]
		fmt.Printf("my move: %v (score %v)\n", best.Position.LastMove(), best.Score)
		pos = best.Position
		printBoard(&pos)
		if over(mm, &pos) {
			return
		}
	}
}

// play applies a move in coordinate notation by matching it against the legal
// successors. A fifth character selects the promotion piece.
func play(mm *board.MoveMap, pos *board.Position, str string) (board.Position, error) {
	promotion := board.NoPiece
	if len(str) == 5 {
		p, ok := board.ParsePiece(rune(str[4]))
		if !ok {
			return board.Position{}, fmt.Errorf("invalid promotion: %q", str)
		}
		promotion = board.NewPiece(pos.Turn(), p.Kind())
		str = str[:4]
	}
	m, err := board.ParseMove(str)
	if err != nil {
		return board.Position{}, err
	}

	for _, s := range pos.Successors(mm) {
		if !s.LastMove().Equals(m) {
			continue
		}
		if promotion != board.NoPiece && s.At(m.To) != promotion {
			continue
		}
		return s, nil
	}
	return board.Position{}, fmt.Errorf("no legal move %v", m)
}

// over prints the game result if the side to move has no legal moves.
func over(mm *board.MoveMap, pos *board.Position) bool {
	if len(pos.Successors(mm)) > 0 {
		return false
	}
	if pos.IsChecked(mm, pos.Turn()) {
		fmt.Printf("checkmate: %v loses\n", pos.Turn())
	} else {
		fmt.Println("stalemate: draw")
	}
	return true
}

func searchDepth(pos *board.Position, limit lang.Optional[uint]) int {
	if d, ok := limit.V(); ok {
		return int(d)
	}
	return eval.DynamicDepth(pos)
}

func printBoard(pos *board.Position) {
	grid := pos.Decode()
	for row := 0; row < 8; row++ {
		fmt.Printf("%v  ", 8-row)
		for col := 0; col < 8; col++ {
			piece := grid[row][col]
			if piece == board.NoPiece {
				fmt.Print(". ")
			} else {
				fmt.Printf("%v ", piece)
			}
		}
		fmt.Println()
	}
	fmt.Printf("   a b c d e f g h   (%v to move, ply %v)\n", pos.Turn(), pos.Ply())
}

func readStdinLines(ctx context.Context) <-chan string {
	ret := make(chan string, 1)
	go func() {
		defer close(ret)

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			logw.Debugf(ctx, "<< %v", scanner.Text())
			ret <- scanner.Text()
		}
	}()
	return ret
}
