// Command perft counts legal-move-tree leaves for a position, optionally
// split per root move and optionally cross-checked against the dragontoothmg
// move generator.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"libchess/board"
	"libchess/fen"
)

func main() {
	fenStr := flag.String("fen", fen.Starting, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	compare := flag.Bool("compare", false, "Cross-check the node count against dragontoothmg")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	b, err := fen.Decode(*fenStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode FEN: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div := board.PerftDivide(&b, *depth)
		moves := maps.Keys(div)
		slices.Sort(moves)
		var sum uint64
		for _, mv := range moves {
			fmt.Printf("%s: %d\n", mv, div[mv])
			sum += div[mv]
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	start := time.Now()
	nodes := board.Perft(&b, *depth)
	elapsed := time.Since(start)
	fmt.Printf("depth %d \t%d nodes \t%s \t%.0f nps\n",
		*depth, nodes, elapsed, float64(nodes)/elapsed.Seconds())

	if *compare {
		ref := dragontoothmg.ParseFen(*fenStr)
		refNodes := dragonPerft(&ref, *depth)
		if refNodes != nodes {
			fmt.Fprintf(os.Stderr, "MISMATCH: dragontoothmg counts %d nodes\n", refNodes)
			os.Exit(1)
		}
		fmt.Println("dragontoothmg agrees")
	}
}

func dragonPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := b.Apply(m)
		nodes += dragonPerft(b, depth-1)
		undo()
	}
	return nodes
}
