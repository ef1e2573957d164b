// Command perft walks the legal-move tree to a given depth and counts leaf
// nodes, the standard move generator correctness check
// (https://www.chessprogramming.org/Perft_Results). Adapted from the
// teacher's two near-duplicate perft tools into one, built on
// movegen.Perft instead of re-walking the tree by hand.
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/datavorous/touchgrass/bitboard"
	"github.com/datavorous/touchgrass/fen"
	"github.com/datavorous/touchgrass/movegen"
	"github.com/datavorous/touchgrass/position"
)

func main() {
	depth := flag.Int("depth", 5, "perft depth")
	fenStr := flag.String("fen", fen.Startpos, "FEN of the root position")
	verbose := flag.Bool("verbose", false, "print the root position before running")
	cpuprofile := flag.String("cpuprofile", "", "file to write a CPU profile to")

	flag.Parse()
	bitboard.Init()

	res, err := fen.Parse(*fenStr)
	if err != nil {
		log.Fatalf("fen: %v", err)
	}

	if *verbose {
		log.Printf("root position:\n%s\n%s\n", res.Board.Render(), *fenStr)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	printer := message.NewPrinter(language.English)

	start := time.Now()
	nodes := runPerft(res.Board, res.SideToMove, *depth)
	elapsed := time.Since(start)

	printer.Printf("depth %d: %d nodes in %s\n", *depth, nodes, elapsed)
}

func runPerft(b position.Board, side bitboard.Color, depth int) int {
	return movegen.Perft(b, side, depth)
}
