// flags.go - Command-line flag definitions for movecheck
package main

import "flag"

var (
	// Move query
	pieceFlag   = flag.String("piece", "", "Piece kind: pawn, knight, bishop, rook, queen or king")
	colourFlag  = flag.String("colour", "white", "Piece colour: white or black")
	fromFlag    = flag.String("from", "", "Source square in algebraic form, e.g. e2")
	toFlag      = flag.String("to", "", "Target square in algebraic form, e.g. e4")
	captureFlag = flag.Bool("capture", false, "Treat the move as a capture")

	// Output options
	valueFlag = flag.Bool("value", false, "Also print the piece's point value")

	// Miscellaneous
	version = flag.Bool("version", false, "Print version and exit")
	help    = flag.Bool("help", false, "Show usage information")
)
