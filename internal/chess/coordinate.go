package chess

import (
	"github.com/lgbarn/movegen-go/internal/errors"
)

// BoardSize is the number of files and ranks.
const BoardSize = 8

// File is a board column, a through h.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// FileFromIndex accepts 0-7 only.
func FileFromIndex(i int) (File, error) {
	if i < 0 || i >= BoardSize {
		return 0, &errors.BoundsError{Axis: errors.AxisFile, Value: i}
	}
	return File(i), nil
}

// TryMoving translates the file by delta, failing when it leaves the board.
func (f File) TryMoving(delta int) (File, error) {
	return FileFromIndex(int(f) + delta)
}

// String returns the file letter.
func (f File) String() string {
	return string(rune('a' + f))
}

// Rank is a board row, 1 through 8.
type Rank int8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// RankFromIndex accepts 0-7 only.
func RankFromIndex(i int) (Rank, error) {
	if i < 0 || i >= BoardSize {
		return 0, &errors.BoundsError{Axis: errors.AxisRank, Value: i}
	}
	return Rank(i), nil
}

// TryMoving translates the rank by delta, failing when it leaves the board.
func (r Rank) TryMoving(delta int) (Rank, error) {
	return RankFromIndex(int(r) + delta)
}

// String returns the rank digit.
func (r Rank) String() string {
	return string(rune('1' + r))
}

// Direction is a signed (file, rank) step.
type Direction struct {
	DeltaFile int
	DeltaRank int
}

// NewDirection builds an arbitrary step, used for knight offsets.
func NewDirection(deltaFile, deltaRank int) Direction {
	return Direction{DeltaFile: deltaFile, DeltaRank: deltaRank}
}

// Up steps one rank towards rank 8.
func Up() Direction { return Direction{0, 1} }

// Down steps one rank towards rank 1.
func Down() Direction { return Direction{0, -1} }

// Left steps one file towards the a-file.
func Left() Direction { return Direction{-1, 0} }

// Right steps one file towards the h-file.
func Right() Direction { return Direction{1, 0} }

// UpperLeft combines Up and Left.
func UpperLeft() Direction { return Direction{-1, 1} }

// UpperRight combines Up and Right.
func UpperRight() Direction { return Direction{1, 1} }

// LowerLeft combines Down and Left.
func LowerLeft() Direction { return Direction{-1, -1} }

// LowerRight combines Down and Right.
func LowerRight() Direction { return Direction{1, -1} }

// Coordinate is an immutable (file, rank) pair. Every Coordinate value
// built through this package is on the board.
type Coordinate struct {
	File File
	Rank Rank
}

// NewCoordinate creates a coordinate from already-valid axes.
func NewCoordinate(f File, r Rank) Coordinate {
	return Coordinate{File: f, Rank: r}
}

// CoordinateFromIndices validates both axes.
func CoordinateFromIndices(file, rank int) (Coordinate, error) {
	f, err := FileFromIndex(file)
	if err != nil {
		return Coordinate{}, err
	}
	r, err := RankFromIndex(rank)
	if err != nil {
		return Coordinate{}, err
	}
	return Coordinate{File: f, Rank: r}, nil
}

// TryMoving translates by d. It fails with the file error first, then the
// rank error; no partially moved coordinate is ever returned.
func (c Coordinate) TryMoving(d Direction) (Coordinate, error) {
	f, err := c.File.TryMoving(d.DeltaFile)
	if err != nil {
		return c, err
	}
	r, err := c.Rank.TryMoving(d.DeltaRank)
	if err != nil {
		return c, err
	}
	return Coordinate{File: f, Rank: r}, nil
}

// String returns algebraic notation, e.g. "e4".
func (c Coordinate) String() string {
	return c.File.String() + c.Rank.String()
}

// ParseCoordinate parses algebraic notation. The file letter is
// case-insensitive; anything but exactly two characters is rejected.
func ParseCoordinate(s string) (Coordinate, error) {
	if len(s) != 2 {
		return Coordinate{}, errors.Wrapf(errors.ErrMalformed, "coordinate %q", s)
	}
	fc := s[0]
	if fc >= 'A' && fc <= 'Z' {
		fc += 'a' - 'A'
	}
	if fc < 'a' || fc > 'z' {
		return Coordinate{}, errors.Wrapf(errors.ErrMalformed, "coordinate %q", s)
	}
	f, err := FileFromIndex(int(fc) - 'a')
	if err != nil {
		return Coordinate{}, err
	}
	rc := s[1]
	if rc < '0' || rc > '9' {
		return Coordinate{}, errors.Wrapf(errors.ErrMalformed, "coordinate %q", s)
	}
	r, err := RankFromIndex(int(rc) - '1')
	if err != nil {
		return Coordinate{}, err
	}
	return Coordinate{File: f, Rank: r}, nil
}

// MustParseCoordinate is ParseCoordinate for constant inputs.
func MustParseCoordinate(s string) Coordinate {
	c, err := ParseCoordinate(s)
	if err != nil {
		panic(err)
	}
	return c
}

// AllCoordinates returns the 64 coordinates in file-major, rank-minor order
// (a1, a2, ... a8, b1, ... h8).
func AllCoordinates() []Coordinate {
	coords := make([]Coordinate, 0, BoardSize*BoardSize)
	for f := FileA; f <= FileH; f++ {
		for r := Rank1; r <= Rank8; r++ {
			coords = append(coords, Coordinate{File: f, Rank: r})
		}
	}
	return coords
}
