package piece

import (
	"sync"
	"testing"

	"github.com/kwalsh/chess-rules-go/internal/chess"
	"github.com/kwalsh/chess-rules-go/internal/testutil"
)

func TestKind(t *testing.T) {
	tests := []struct {
		kind   Kind
		name   string
		letter byte
	}{
		{Pawn, "Pawn", 'P'},
		{Knight, "Knight", 'N'},
		{Bishop, "Bishop", 'B'},
		{Rook, "Rook", 'R'},
		{Queen, "Queen", 'Q'},
		{King, "King", 'K'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.name {
				t.Errorf("String() = %q; want %q", got, tt.name)
			}
			if got := tt.kind.Letter(); got != tt.letter {
				t.Errorf("Letter() = %c; want %c", got, tt.letter)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"pawn", Pawn, false},
		{"Knight", Knight, false},
		{"BISHOP", Bishop, false},
		{"rook", Rook, false},
		{"queen", Queen, false},
		{"king", King, false},
		{"duke", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.wantErr {
				testutil.AssertError(t, err, "ParseKind(%q)", tt.input)
				return
			}
			testutil.AssertNoError(t, err, "ParseKind(%q)", tt.input)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestPointValues(t *testing.T) {
	tests := []struct {
		piece *Piece
		want  int
	}{
		{NewPawn(chess.White), 1},
		{NewKnight(chess.White), 3},
		{NewBishop(chess.Black), 3},
		{NewRook(chess.White), 5},
		{NewQueen(chess.Black), 9},
		{NewKing(chess.White), 0},
	}

	for _, tt := range tests {
		t.Run(tt.piece.String(), func(t *testing.T) {
			if got := tt.piece.PointValue(); got != tt.want {
				t.Errorf("PointValue() = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestPresentation(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		testutil.AssertEqual(t, NewQueen(chess.White).String(), "White Queen")
		testutil.AssertEqual(t, NewKnight(chess.Black).String(), "Black Knight")
	})

	t.Run("letters colour cased", func(t *testing.T) {
		if got := NewQueen(chess.White).Letter(); got != 'Q' {
			t.Errorf("white queen Letter() = %c; want Q", got)
		}
		if got := NewQueen(chess.Black).Letter(); got != 'q' {
			t.Errorf("black queen Letter() = %c; want q", got)
		}
		if got := NewPawn(chess.Black).Letter(); got != 'p' {
			t.Errorf("black pawn Letter() = %c; want p", got)
		}
	})

	t.Run("colour and kind accessors", func(t *testing.T) {
		p := NewRook(chess.Black)
		testutil.AssertEqual(t, p.Colour(), chess.Black)
		testutil.AssertEqual(t, p.Kind(), Rook)
	})
}

func TestRookMovable(t *testing.T) {
	rook := NewRook(chess.White)
	d4 := testutil.MustParseSquare(t, "d4")

	if !rook.Movable(d4, testutil.MustParseSquare(t, "d8"), chess.Quiet) {
		t.Error("Movable(d4, d8, Quiet) = false; want true")
	}
	if rook.Movable(d4, testutil.MustParseSquare(t, "e5"), chess.Quiet) {
		t.Error("Movable(d4, e5, Quiet) = true; want false")
	}
}

func TestBishopMovable(t *testing.T) {
	bishop := NewBishop(chess.Black)
	c1 := testutil.MustParseSquare(t, "c1")

	if !bishop.Movable(c1, testutil.MustParseSquare(t, "h6"), chess.Capture) {
		t.Error("Movable(c1, h6, Capture) = false; want true")
	}
	if bishop.Movable(c1, testutil.MustParseSquare(t, "c8"), chess.Quiet) {
		t.Error("Movable(c1, c8, Quiet) = true; want false")
	}
}

func TestQueenMovable(t *testing.T) {
	queen := NewQueen(chess.White)
	d1 := testutil.MustParseSquare(t, "d1")

	for _, target := range []string{"d8", "a1", "h1", "a4", "h5"} {
		if !queen.Movable(d1, testutil.MustParseSquare(t, target), chess.Quiet) {
			t.Errorf("Movable(d1, %s, Quiet) = false; want true", target)
		}
	}
	if queen.Movable(d1, testutil.MustParseSquare(t, "e3"), chess.Quiet) {
		t.Error("Movable(d1, e3, Quiet) = true; want false")
	}
}

func TestKingMovable(t *testing.T) {
	king := NewKing(chess.White)
	e1 := testutil.MustParseSquare(t, "e1")

	if !king.Movable(e1, testutil.MustParseSquare(t, "e2"), chess.Quiet) {
		t.Error("Movable(e1, e2, Quiet) = false; want true")
	}
	if king.Movable(e1, testutil.MustParseSquare(t, "e3"), chess.Quiet) {
		t.Error("Movable(e1, e3, Quiet) = true; want false")
	}
}

func TestKnightMovable(t *testing.T) {
	knight := NewKnight(chess.Black)
	b1 := testutil.MustParseSquare(t, "b1")

	if !knight.Movable(b1, testutil.MustParseSquare(t, "c3"), chess.Quiet) {
		t.Error("Movable(b1, c3, Quiet) = false; want true")
	}
	if knight.Movable(b1, testutil.MustParseSquare(t, "b3"), chess.Quiet) {
		t.Error("Movable(b1, b3, Quiet) = true; want false")
	}
}

func TestPawnMovable(t *testing.T) {
	t.Run("white", func(t *testing.T) {
		pawn := NewPawn(chess.White)
		e2 := testutil.MustParseSquare(t, "e2")
		e4 := testutil.MustParseSquare(t, "e4")
		f3 := testutil.MustParseSquare(t, "f3")

		testutil.AssertTrue(t, pawn.Movable(e2, e4, chess.Quiet), "e2 -> e4 quiet")
		testutil.AssertFalse(t, pawn.Movable(e2, e4, chess.Capture), "e2 -> e4 capture")
		testutil.AssertTrue(t, pawn.Movable(e2, f3, chess.Capture), "e2 -> f3 capture")
		testutil.AssertFalse(t, pawn.Movable(e2, f3, chess.Quiet), "e2 -> f3 quiet")
	})

	t.Run("black", func(t *testing.T) {
		pawn := NewPawn(chess.Black)
		e7 := testutil.MustParseSquare(t, "e7")
		e5 := testutil.MustParseSquare(t, "e5")
		d6 := testutil.MustParseSquare(t, "d6")

		testutil.AssertTrue(t, pawn.Movable(e7, e5, chess.Quiet), "e7 -> e5 quiet")
		testutil.AssertTrue(t, pawn.Movable(e7, d6, chess.Capture), "e7 -> d6 capture")
		testutil.AssertFalse(t, pawn.Movable(e7, testutil.MustParseSquare(t, "e8"), chess.Quiet), "e7 -> e8 quiet")
	})

	t.Run("colour fixed at construction", func(t *testing.T) {
		white := NewPawn(chess.White)
		black := NewPawn(chess.Black)
		testutil.AssertEqual(t, white.Colour(), chess.White)
		testutil.AssertEqual(t, black.Colour(), chess.Black)
		testutil.AssertEqual(t, white.Kind(), Pawn)
		testutil.AssertEqual(t, black.Kind(), Pawn)
	})
}

func TestNew(t *testing.T) {
	for _, kind := range []Kind{Pawn, Knight, Bishop, Rook, Queen, King} {
		p, err := New(kind, chess.White)
		if err != nil {
			t.Fatalf("New(%v, White) error: %v", kind, err)
		}
		if p.Kind() != kind {
			t.Errorf("New(%v, White).Kind() = %v", kind, p.Kind())
		}
	}

	if _, err := New(Kind(42), chess.White); err == nil {
		t.Error("New(Kind(42), White) expected error, got nil")
	}
}

// TestConcurrentQueries exercises shared pieces from many goroutines; legality
// queries are read-only, so the race detector should stay quiet.
func TestConcurrentQueries(t *testing.T) {
	queen := NewQueen(chess.White)
	d4 := testutil.MustParseSquare(t, "d4")
	targets := chess.AllSquares()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, to := range targets {
				queen.Movable(d4, to, chess.Quiet)
				queen.Movable(d4, to, chess.Capture)
			}
		}()
	}
	wg.Wait()

	if !queen.Movable(d4, testutil.MustParseSquare(t, "d8"), chess.Quiet) {
		t.Error("Movable(d4, d8, Quiet) = false after concurrent use; want true")
	}
}
