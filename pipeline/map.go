package pipeline

import "github.com/robot-dreams/gpxstream"

// mapping applies a Transform to each Record pulled from the input, one
// element per pull, never pulling ahead of the downstream request.
type mapping struct {
	cur gpxstream.RecordCursor
	t   gpxstream.Transform
}

var _ gpxstream.CoordinateCursor = (*mapping)(nil)

func NewMap(cur gpxstream.RecordCursor, t gpxstream.Transform) *mapping {
	return &mapping{
		cur: cur,
		t:   t,
	}
}

func (m *mapping) Next() (gpxstream.Coordinate, error) {
	record, err := m.cur.Next()
	if err != nil {
		return gpxstream.Coordinate{}, err
	}
	return m.t(record)
}

func (m *mapping) Close() error {
	return m.cur.Close()
}
