package gpxstream

import (
	"math"
	"strconv"

	"github.com/dropbox/godropbox/errors"
)

// Valid reports whether both attributes of interest are present and parse as
// finite numbers.  Records that fail are silently excluded from output; a
// validation failure is never an error.
func Valid(record Record) bool {
	return finite(record.Lat) && finite(record.Lon)
}

func finite(a Attr) bool {
	if !a.Present {
		return false
	}
	x, err := strconv.ParseFloat(a.Text, 64)
	if err != nil {
		return false
	}
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Project converts a valid Record into a Coordinate.  It assumes the Record
// already passed Valid; composing Project before the validity filter is
// incorrect.
func Project(record Record) (Coordinate, error) {
	lat, err := strconv.ParseFloat(record.Lat.Text, 64)
	if err != nil {
		return Coordinate{}, errors.Wrapf(err, "lat %q is not numeric", record.Lat.Text)
	}
	lon, err := strconv.ParseFloat(record.Lon.Text, 64)
	if err != nil {
		return Coordinate{}, errors.Wrapf(err, "lon %q is not numeric", record.Lon.Text)
	}
	return Coordinate{Lat: lat, Lon: lon}, nil
}
