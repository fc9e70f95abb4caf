// Package jsonarray writes a stream of Coordinates as a JSON array,
// incrementally: elements hit the sink as they arrive, so output for a
// many-GB input starts immediately and never accumulates.
package jsonarray

import (
	"io"
	"strconv"

	"github.com/robot-dreams/gpxstream"
)

type write struct {
	w io.Writer
	// The only inter-element state: whether a separator is needed before
	// the next element.
	wroteElement bool
	closed       bool
	scratch      []byte
}

// NewWrite starts a JSON array on w by emitting the opening bracket.  The
// caller owns w; Close finalizes the array but does not close w.  On a
// write failure, bytes already emitted are left as-is.
func NewWrite(w io.Writer) (*write, error) {
	wr := &write{w: w}
	if _, err := wr.w.Write([]byte{'['}); err != nil {
		return nil, err
	}
	return wr, nil
}

// WriteCoordinate emits one element, preceded by a comma iff an element was
// already written.  Numbers use shortest round-trip formatting, so "1"
// stays "1".
func (w *write) WriteCoordinate(coordinate gpxstream.Coordinate) error {
	buf := w.scratch[:0]
	if w.wroteElement {
		buf = append(buf, ',')
	}
	buf = append(buf, `{"lat":`...)
	buf = strconv.AppendFloat(buf, coordinate.Lat, 'g', -1, 64)
	buf = append(buf, `,"lon":`...)
	buf = strconv.AppendFloat(buf, coordinate.Lon, 'g', -1, 64)
	buf = append(buf, '}')
	w.scratch = buf
	if _, err := w.w.Write(buf); err != nil {
		return err
	}
	w.wroteElement = true
	return nil
}

// Close emits the closing bracket.  Repeated calls are no-ops.
func (w *write) Close() error {
	if w.closed {
		return nil
	}
	if _, err := w.w.Write([]byte{']'}); err != nil {
		return err
	}
	w.closed = true
	return nil
}

// Encode drains cur into w as a complete JSON array.  This is the pipeline
// driver: the next element is pulled only after the previous one has been
// written.  A cursor that yields nothing produces the literal "[]".
func Encode(cur gpxstream.CoordinateCursor, w io.Writer) error {
	wr, err := NewWrite(w)
	if err != nil {
		return err
	}
	for {
		coordinate, err := cur.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		err = wr.WriteCoordinate(coordinate)
		if err != nil {
			return err
		}
	}
	return wr.Close()
}
