package chess

// Direction is one of the 8 compass unit step vectors. North is towards
// higher ranks (White's forward), East towards higher columns.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

// directionDeltas maps each direction to its (column, rank) unit vector.
var directionDeltas = [...]struct{ dc, dr int }{
	North:     {0, 1},
	South:     {0, -1},
	East:      {1, 0},
	West:      {-1, 0},
	NorthEast: {1, 1},
	NorthWest: {-1, 1},
	SouthEast: {1, -1},
	SouthWest: {-1, -1},
}

// Direction sets shared by the standard piece configurations.
var (
	// OrthogonalDirections are the four rank/file directions (rook lines).
	OrthogonalDirections = []Direction{North, South, East, West}

	// DiagonalDirections are the four diagonal directions (bishop lines).
	DiagonalDirections = []Direction{NorthEast, NorthWest, SouthEast, SouthWest}

	// AllDirections is the full compass (queen and king lines).
	AllDirections = []Direction{
		North, South, East, West,
		NorthEast, NorthWest, SouthEast, SouthWest,
	}
)

// Delta returns the direction's unit (column, rank) vector.
func (d Direction) Delta() (dc, dr int) {
	v := directionDeltas[d]
	return v.dc, v.dr
}

// String returns the compass name of the direction.
func (d Direction) String() string {
	names := []string{"N", "S", "E", "W", "NE", "NW", "SE", "SW"}
	if int(d) < len(names) {
		return names[d]
	}
	return "Unknown"
}

// Step advances one unit in the given direction. The second result is false
// when the step leaves the board; this is an expected termination signal for
// sliding geometry, not an error.
func (s *Square) Step(d Direction) (*Square, bool) {
	dc, dr := d.Delta()
	col := Col(int(s.col) + dc)
	rank := Rank(int(s.rank) + dr)
	if !col.Valid() || !rank.Valid() {
		return nil, false
	}
	return &squares[col.Index()][rank.Index()], true
}

// Delta returns the (column, rank) displacement from one square to another.
func Delta(from, to *Square) (dc, dr int) {
	return int(to.col) - int(from.col), int(to.rank) - int(from.rank)
}
