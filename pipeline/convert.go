package pipeline

import (
	"io"

	"github.com/robot-dreams/gpxstream"
	"github.com/robot-dreams/gpxstream/gpx"
	"github.com/robot-dreams/gpxstream/jsonarray"
)

// Convert decodes the GPX document read from r and writes the JSON array of
// its valid coordinates to w.  The encoder is the sole driver: each pull
// cascades map -> filter -> decoder -> tokenizer -> r, so at most one
// Record/Coordinate per stage is live at any instant, independent of input
// size.  r and w remain owned by the caller.
func Convert(r io.Reader, w io.Writer) error {
	coordinates := NewCoordinates(r)
	err := jsonarray.Encode(coordinates, w)
	closeErr := coordinates.Close()
	if err != nil {
		return err
	}
	return closeErr
}

// NewCoordinates is the fixed stage composition: decode, filter on
// validity, project.  The filter must run before the projection; Project
// assumes its input already passed Valid.
func NewCoordinates(r io.Reader) gpxstream.CoordinateCursor {
	return NewMap(NewFilter(gpx.NewScan(r), gpxstream.Valid), gpxstream.Project)
}
