package dock

import "strconv"

const (
	// CellsPerBrick is the number of readings in each brick.
	CellsPerBrick = 7
	// CellCount is the number of readings a record must carry.
	CellCount = 2 * CellsPerBrick
)

// Stats summarises the readings of one brick.
type Stats struct {
	Max     int     `json:"max"`
	Min     int     `json:"min"`
	Sum     int     `json:"sum"`
	Average float64 `json:"average"`
}

// AverageText formats Average with exactly two decimals.
func (s Stats) AverageText() string {
	return strconv.FormatFloat(s.Average, 'f', 2, 64)
}

// Bricks holds the readings split into the bottom brick (readings 0-6) and
// the top brick (readings 7-13).
type Bricks struct {
	Bottom []int
	Top    []int
}

// Split divides the readings into bricks. Readings past CellCount are
// ignored; fewer than CellCount readings yield a *DataFormatError.
func Split(readings []int) (Bricks, error) {
	if len(readings) < CellCount {
		return Bricks{}, &DataFormatError{Got: len(readings), Want: CellCount}
	}
	return Bricks{
		Bottom: readings[:CellsPerBrick:CellsPerBrick],
		Top:    readings[CellsPerBrick:CellCount:CellCount],
	}, nil
}

// Compute returns max, min, sum and average of values. Empty input yields
// the zero Stats.
func Compute(values []int) Stats {
	if len(values) == 0 {
		return Stats{}
	}
	s := Stats{Max: values[0], Min: values[0]}
	for _, v := range values {
		if v > s.Max {
			s.Max = v
		}
		if v < s.Min {
			s.Min = v
		}
		s.Sum += v
	}
	s.Average = float64(s.Sum) / float64(len(values))
	return s
}
