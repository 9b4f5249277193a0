package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nanochess-go/chess/pkg/common"
)

// perft counts leaf nodes at depth by running one goroutine per legal root
// move, matching the invariant of §8 property 3: the total equals the sum
// over each root move of the leaves at depth-1 from the resulting position.
func main() {
	var fen = flag.String("fen", common.InitialPositionFen, "FEN of the position to count")
	var depth = flag.Int("depth", 5, "perft depth")
	flag.Parse()

	var p, err = common.NewPositionFromFEN(*fen)
	if err != nil {
		log.Fatal(err)
	}

	var start = time.Now()
	var total, gerr = perftParallel(&p, *depth)
	if gerr != nil {
		log.Fatal(gerr)
	}
	var elapsed = time.Since(start)

	fmt.Printf("depth %v nodes %v time %v nps %v\n",
		*depth, total, elapsed, float64(total)/elapsed.Seconds())
}

func perftParallel(p *common.Position, depth int) (int64, error) {
	if depth <= 0 {
		return 1, nil
	}

	var buf [common.MaxMoves]common.Move
	var moves = common.GenerateLegalMoves(p, buf[:0])

	var counts = make([]int64, len(moves))
	var g errgroup.Group
	for i, m := range moves {
		var i, m = i, m
		g.Go(func() error {
			var child common.Position
			p.MakeMove(m, &child)
			counts[i] = perftSequential(&child, depth-1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total int64
	for _, c := range counts {
		total += c
	}
	return total, nil
}

func perftSequential(p *common.Position, depth int) int64 {
	if depth <= 0 {
		return 1
	}
	var buf [common.MaxMoves]common.Move
	var moves = common.GenerateLegalMoves(p, buf[:0])
	if depth == 1 {
		return int64(len(moves))
	}
	var total int64
	var child common.Position
	for _, m := range moves {
		p.MakeMove(m, &child)
		total += perftSequential(&child, depth-1)
	}
	return total
}
