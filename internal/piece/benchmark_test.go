package piece

import (
	"testing"

	"github.com/kwalsh/chess-rules-go/internal/chess"
)

func BenchmarkMovable(b *testing.B) {
	cases := []struct {
		name     string
		piece    *Piece
		from, to string
		mt       chess.MoveType
	}{
		{"QueenLongSlide", NewQueen(chess.White), "a1", "h8", chess.Quiet},
		{"QueenMiss", NewQueen(chess.White), "a1", "g8", chess.Quiet},
		{"RookFile", NewRook(chess.White), "d4", "d8", chess.Quiet},
		{"KnightLeap", NewKnight(chess.Black), "b1", "c3", chess.Quiet},
		{"KingStep", NewKing(chess.White), "e1", "e2", chess.Quiet},
		{"PawnDouble", NewPawn(chess.White), "e2", "e4", chess.Quiet},
		{"PawnCapture", NewPawn(chess.Black), "e7", "d6", chess.Capture},
	}

	for _, bc := range cases {
		b.Run(bc.name, func(b *testing.B) {
			from, err := chess.Parse(bc.from)
			if err != nil {
				b.Fatal(err)
			}
			to, err := chess.Parse(bc.to)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				bc.piece.Movable(from, to, bc.mt)
			}
		})
	}
}

func BenchmarkParseSquare(b *testing.B) {
	for i := 0; i < b.N; i++ {
		chess.Parse("e4")
	}
}
