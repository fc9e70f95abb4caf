package pipeline

import (
	"io"

	"github.com/robot-dreams/gpxstream"
)

// limit sets an upper bound on the number of Coordinates that can be read
// from the input cursor.  Useful against unbounded sources: once the bound
// is reached the upstream is simply never pulled again.
type limit struct {
	cur             gpxstream.CoordinateCursor
	maxElements     int
	numElementsRead int
}

var _ gpxstream.CoordinateCursor = (*limit)(nil)

func NewLimit(cur gpxstream.CoordinateCursor, maxElements int) *limit {
	return &limit{
		cur:         cur,
		maxElements: maxElements,
	}
}

func (l *limit) Next() (gpxstream.Coordinate, error) {
	if l.numElementsRead == l.maxElements {
		return gpxstream.Coordinate{}, io.EOF
	}
	coordinate, err := l.cur.Next()
	if err != nil {
		return gpxstream.Coordinate{}, err
	}
	l.numElementsRead++
	return coordinate, nil
}

func (l *limit) Close() error {
	return l.cur.Close()
}
