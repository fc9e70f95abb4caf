// Package pipeline provides the lazy stages between the gpx decoder and the
// jsonarray encoder.  Every stage wraps an upstream cursor and holds at most
// one in-flight element; nothing is pulled until the downstream consumer
// asks, and nothing is ever collected.
package pipeline

import "github.com/robot-dreams/gpxstream"

// filter restricts Records from the input to those that satisfy the
// specified Predicate.  Records that fail are dropped silently; dropping is
// not an error.
type filter struct {
	cur gpxstream.RecordCursor
	p   gpxstream.Predicate
}

var _ gpxstream.RecordCursor = (*filter)(nil)

func NewFilter(cur gpxstream.RecordCursor, p gpxstream.Predicate) *filter {
	return &filter{
		cur: cur,
		p:   p,
	}
}

func (f *filter) Next() (gpxstream.Record, error) {
	for {
		record, err := f.cur.Next()
		if err != nil {
			return gpxstream.Record{}, err
		}
		if f.p(record) {
			return record, nil
		}
	}
}

func (f *filter) Close() error {
	return f.cur.Close()
}
