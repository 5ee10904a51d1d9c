package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"shashki/internal/shashki"
)

func main() {
	fen := flag.String("fen", "", "position (default: starting position)")
	depth := flag.Int("depth", 6, "perft depth in turns")
	divide := flag.Bool("divide", false, "print node counts per first turn")
	flag.Parse()

	pos := shashki.NewInitialPosition()
	if *fen != "" {
		var err error
		if pos, err = shashki.DecodePosition(*fen); err != nil {
			log.Fatalf("decode %q: %v", *fen, err)
		}
	}

	if *divide {
		for _, d := range shashki.Divide(pos, *depth) {
			fmt.Printf("%s: %d\n", d.Turn, d.Nodes)
		}
	}

	for d := 1; d <= *depth; d++ {
		start := time.Now()
		nodes := shashki.Perft(pos, d)
		elapsed := time.Since(start)
		nps := int64(0)
		if elapsed > 0 {
			nps = int64(float64(nodes) / elapsed.Seconds())
		}
		fmt.Printf("perft(%d) = %d  time=%v  nps=%d\n", d, nodes, elapsed, nps)
	}
}
