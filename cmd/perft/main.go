// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
// It reports both reachable positions and terminal (no legal move) states per depth.
package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"time"

	"github.com/herohde/diomede/pkg/board"
	"github.com/schollz/progressbar/v3"
	"github.com/seekerror/logw"
)

var (
	depth    = flag.Int("depth", 4, "Search depth")
	state    = flag.String("state", "", "Start position as a hex-encoded state (default to standard)")
	divide   = flag.Bool("divide", false, "Divide counts by initial move")
	progress = flag.Bool("progress", false, "Show progress over initial moves at the deepest level")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	pos := board.NewPosition()
	if *state != "" {
		data, err := hex.DecodeString(*state)
		if err != nil {
			logw.Exitf(ctx, "Invalid state '%v': %v", *state, err)
		}
		pos, err = board.Unmarshal(data)
		if err != nil {
			logw.Exitf(ctx, "Invalid state '%v': %v", *state, err)
		}
	}

	mm := board.NewMoveMap()

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes, terminals := search(mm, &pos, i, *divide && i == *depth, *progress && i == *depth)
		duration := time.Since(start)

		println(fmt.Sprintf("perft,%v,%v,%v,%v,%v", pos, i, nodes, terminals, duration.Microseconds()))
	}
}

// search splits the top level off walk for divide output and progress.
func search(mm *board.MoveMap, pos *board.Position, depth int, d, p bool) (int64, int64) {
	if depth == 1 {
		return walk(mm, pos, depth)
	}

	succ := pos.Successors(mm)
	var bar *progressbar.ProgressBar
	if p {
		bar = progressbar.Default(int64(len(succ)))
	}

	var nodes, terminals int64
	for i := range succ {
		n, t := walk(mm, &succ[i], depth-1)
		if d {
			println(fmt.Sprintf("%v: %v", succ[i].LastMove(), n))
		}
		if bar != nil {
			_ = bar.Add(1)
		}
		nodes += n
		terminals += t
	}
	return nodes, terminals
}

// walk counts the positions reachable after exactly depth plies and the
// states along the way that ran out of legal moves at the last ply.
func walk(mm *board.MoveMap, pos *board.Position, depth int) (int64, int64) {
	succ := pos.Successors(mm)
	if depth == 1 {
		if len(succ) == 0 {
			return 0, 1
		}
		return int64(len(succ)), 0
	}

	var nodes, terminals int64
	for i := range succ {
		n, t := walk(mm, &succ[i], depth-1)
		nodes += n
		terminals += t
	}
	return nodes, terminals
}
