// Package gpx decodes waypoint-like records out of a GPX document without
// ever holding more than one record in memory.  The underlying tokenizer is
// encoding/xml in token mode: a forward-only cursor of structural events,
// never a parsed tree.
package gpx

import (
	"encoding/xml"
	"io"

	"github.com/dropbox/godropbox/errors"
	"github.com/robot-dreams/gpxstream"
)

// All three GPX point types carry lat/lon as element attributes.
var recordElements = map[string]bool{
	"wpt":   true,
	"trkpt": true,
	"rtept": true,
}

type scanState uint8

const (
	// seeking: between records, looking for the next record start or the
	// envelope terminator.
	seeking scanState = iota
	// done: the envelope terminator was seen; Next returns io.EOF forever.
	done
	// failed: the input turned out to be malformed or truncated; the error
	// is sticky.
	failed
)

type scan struct {
	d      *xml.Decoder
	state  scanState
	err    error
	// Number of currently open container elements, envelope included.
	// The envelope terminator is the EndElement that brings this to zero.
	depth   int
	sawRoot bool
	closed  bool
}

var _ gpxstream.RecordCursor = (*scan)(nil)

// NewScan returns a RecordCursor over the GPX document read from r.  The
// caller retains ownership of r; Close does not close it.  The cursor is
// single-use: once exhausted or failed it cannot be restarted.
func NewScan(r io.Reader) *scan {
	return &scan{
		d: xml.NewDecoder(r),
	}
}

func (s *scan) Next() (gpxstream.Record, error) {
	if s.closed {
		return gpxstream.Record{}, errors.New(
			"Next cannot be called after scan was closed.")
	}
	switch s.state {
	case done:
		return gpxstream.Record{}, io.EOF
	case failed:
		return gpxstream.Record{}, s.err
	}
	for {
		token, err := s.d.Token()
		if err == io.EOF {
			// The tokenizer ran out of input while we were still seeking:
			// the envelope terminator was never observed.  This must not
			// be treated as a normal end of data.
			if !s.sawRoot {
				return s.fail(gpxstream.Structuralf(
					"input ended before any envelope was seen"))
			}
			return s.fail(gpxstream.Structuralf(
				"input ended before the envelope terminator"))
		} else if err != nil {
			if _, ok := err.(*xml.SyntaxError); ok {
				return s.fail(gpxstream.Structuralf(
					"malformed input: %v", err))
			}
			// Read failure on the underlying source.
			return s.fail(err)
		}
		switch t := token.(type) {
		case xml.StartElement:
			if !s.sawRoot {
				s.sawRoot = true
				s.depth++
				continue
			}
			if recordElements[t.Name.Local] {
				record := recordFromAttrs(t.Attr)
				// Drop the record body (child elements, text) without
				// buffering it or building a tree.
				if err := s.d.Skip(); err != nil {
					if _, ok := err.(*xml.SyntaxError); ok {
						return s.fail(gpxstream.Structuralf(
							"record is missing its end tag: %v", err))
					}
					return s.fail(err)
				}
				return record, nil
			}
			// A container element (trk, trkseg, rte, metadata, ...):
			// descend into it, records may be nested inside.
			s.depth++
		case xml.EndElement:
			s.depth--
			if s.depth == 0 {
				s.state = done
				return gpxstream.Record{}, io.EOF
			}
		default:
			// Character data, comments, processing instructions between
			// records are not ours to interpret.
		}
	}
}

func (s *scan) fail(err error) (gpxstream.Record, error) {
	s.state = failed
	s.err = err
	return gpxstream.Record{}, err
}

func (s *scan) Close() error {
	s.closed = true
	return nil
}

func recordFromAttrs(attrs []xml.Attr) gpxstream.Record {
	var record gpxstream.Record
	for _, a := range attrs {
		switch a.Name.Local {
		case "lat":
			record.Lat = gpxstream.Attr{Text: a.Value, Present: true}
		case "lon":
			record.Lon = gpxstream.Attr{Text: a.Value, Present: true}
		}
	}
	return record
}
