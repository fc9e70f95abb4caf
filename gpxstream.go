package gpxstream

// Attr is the raw text of a single record attribute.  Absence is a valid
// state for a Record attribute, not an error, so presence is tracked
// explicitly instead of overloading the empty string.
type Attr struct {
	Text    string
	Present bool
}

// Record is one decoded structural unit from the input: the two attributes
// of interest, each possibly absent.  Every other attribute and all nested
// content is discarded at decode time and never reaches a Record.
type Record struct {
	Lat Attr
	Lon Attr
}

// Coordinate is the validated, projected output value.  Both fields are
// guaranteed present, parseable, and finite by the time a Coordinate exists.
type Coordinate struct {
	Lat float64
	Lon float64
}

type Predicate func(Record) bool

type Transform func(Record) (Coordinate, error)

// RecordCursor produces Records on demand.  Next returns io.EOF once the
// cursor is exhausted; repeated calls after that continue to return io.EOF.
// Cursors are single-use and forward-only.
type RecordCursor interface {
	Next() (Record, error)
	Close() error
}

// CoordinateCursor is the Coordinate-typed counterpart of RecordCursor.
type CoordinateCursor interface {
	Next() (Coordinate, error)
	Close() error
}
