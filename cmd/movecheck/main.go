// movecheck is a tool for answering whether a single chess move is
// geometrically legal for a given piece, independent of board occupancy.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kwalsh/chess-rules-go/internal/chess"
	"github.com/kwalsh/chess-rules-go/internal/piece"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("movecheck version %s\n", programVersion)
		os.Exit(0)
	}

	if *pieceFlag == "" || *fromFlag == "" || *toFlag == "" {
		fmt.Fprintln(os.Stderr, "movecheck: -piece, -from and -to are required")
		usage()
		os.Exit(2)
	}

	p, from, to, err := buildQuery(*pieceFlag, *colourFlag, *fromFlag, *toFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "movecheck: %v\n", err)
		os.Exit(2)
	}

	mt := chess.Quiet
	if *captureFlag {
		mt = chess.Capture
	}

	if *valueFlag {
		fmt.Printf("%v: %d points\n", p, p.PointValue())
	}

	if p.Movable(from, to, mt) {
		fmt.Printf("legal: %v %v %v -> %v\n", p, mt, from, to)
		os.Exit(0)
	}
	fmt.Printf("illegal: %v %v %v -> %v\n", p, mt, from, to)
	os.Exit(1)
}

// buildQuery resolves the textual piece and square arguments into a piece
// and a pair of canonical squares.
func buildQuery(kindName, colourName, fromName, toName string) (*piece.Piece, *chess.Square, *chess.Square, error) {
	kind, err := piece.ParseKind(kindName)
	if err != nil {
		return nil, nil, nil, err
	}

	colour, err := chess.ParseColour(colourName)
	if err != nil {
		return nil, nil, nil, err
	}

	p, err := piece.New(kind, colour)
	if err != nil {
		return nil, nil, nil, err
	}

	from, err := chess.Parse(fromName)
	if err != nil {
		return nil, nil, nil, err
	}

	to, err := chess.Parse(toName)
	if err != nil {
		return nil, nil, nil, err
	}

	return p, from, to, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: movecheck -piece <kind> -from <square> -to <square> [options]\n\n")
	fmt.Fprintf(os.Stderr, "Checks whether a chess move is geometrically legal for a single piece.\n")
	fmt.Fprintf(os.Stderr, "Board occupancy is not considered.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExit status:\n")
	fmt.Fprintf(os.Stderr, "  0  the move is legal\n")
	fmt.Fprintf(os.Stderr, "  1  the move is illegal\n")
	fmt.Fprintf(os.Stderr, "  2  the arguments could not be parsed\n")
}
