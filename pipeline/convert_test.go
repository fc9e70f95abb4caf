package pipeline

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	. "gopkg.in/check.v1"

	. "github.com/dropbox/godropbox/gocheck2"

	"github.com/robot-dreams/gpxstream"
)

type ConvertSuite struct{}

var _ = Suite(&ConvertSuite{})

func convertToString(c *C, input string) string {
	var buf bytes.Buffer
	err := Convert(strings.NewReader(input), &buf)
	c.Assert(err, IsNil)
	return buf.String()
}

func (s *ConvertSuite) TestConvert(c *C) {
	input := `<gpx>
		<wpt lat="1" lon="2"/>
		<wpt lat="3"/>
		<wpt lat="4" lon="5"/>
	</gpx>`
	c.Assert(
		convertToString(c, input),
		Equals,
		`[{"lat":1,"lon":2},{"lat":4,"lon":5}]`)
}

func (s *ConvertSuite) TestEmptyEnvelope(c *C) {
	c.Assert(convertToString(c, `<gpx></gpx>`), Equals, `[]`)
}

func (s *ConvertSuite) TestNoValidRecords(c *C) {
	input := `<gpx>
		<wpt lat="1"/>
		<wpt lon="2"/>
		<wpt lat="x" lon="y"/>
	</gpx>`
	c.Assert(convertToString(c, input), Equals, `[]`)
}

func (s *ConvertSuite) TestUnrelatedAttributesDropped(c *C) {
	input := `<gpx>
		<wpt lat="1" lon="2" ele="100" name="summit">
			<desc>not in output</desc>
		</wpt>
	</gpx>`
	c.Assert(convertToString(c, input), Equals, `[{"lat":1,"lon":2}]`)
}

func (s *ConvertSuite) TestMissingEnvelopeTerminator(c *C) {
	var buf bytes.Buffer
	err := Convert(strings.NewReader(`<gpx><wpt lat="1" lon="2"/>`), &buf)
	c.Assert(err, NotNil)
	c.Assert(gpxstream.IsStructural(err), IsTrue)
	// Whatever was emitted is an incomplete array, never a closed one.
	c.Assert(strings.HasSuffix(buf.String(), `]`), IsFalse)
}

// generatedGPX produces a GPX document of numRecords waypoints on the fly,
// one record per refill, so the input is never materialized.  Every third
// record is missing its lon attribute.
type generatedGPX struct {
	numRecords  int
	nextRecord  int
	pending     []byte
	wroteHeader bool
	wroteFooter bool
}

func (g *generatedGPX) Read(p []byte) (int, error) {
	if len(g.pending) == 0 {
		g.refill()
	}
	if len(g.pending) == 0 {
		return 0, io.EOF
	}
	n := copy(p, g.pending)
	g.pending = g.pending[n:]
	return n, nil
}

func (g *generatedGPX) refill() {
	switch {
	case !g.wroteHeader:
		g.pending = []byte(`<gpx>`)
		g.wroteHeader = true
	case g.nextRecord < g.numRecords:
		i := g.nextRecord
		if i%3 == 0 {
			g.pending = []byte(fmt.Sprintf(`<wpt lat="%d"/>`, i))
		} else {
			g.pending = []byte(fmt.Sprintf(`<wpt lat="%d" lon="%d"/>`, i, -i))
		}
		g.nextRecord++
	case !g.wroteFooter:
		g.pending = []byte(`</gpx>`)
		g.wroteFooter = true
	}
}

func (s *ConvertSuite) TestLargeGeneratedInput(c *C) {
	numRecords := 50000
	var buf bytes.Buffer
	err := Convert(&generatedGPX{numRecords: numRecords}, &buf)
	c.Assert(err, IsNil)
	out := buf.String()
	c.Assert(strings.HasPrefix(out, `[`), IsTrue)
	c.Assert(strings.HasSuffix(out, `]`), IsTrue)
	// Records 0, 3, 6, ... were invalid and must be absent.
	numValid := numRecords - (numRecords+2)/3
	c.Assert(strings.Count(out, `{"lat":`), Equals, numValid)
	// Order is the input order restricted to valid records.
	c.Assert(strings.HasPrefix(out, `[{"lat":1,"lon":-1},{"lat":2,"lon":-2},{"lat":4,"lon":-4}`), IsTrue)
}

func (s *ConvertSuite) TestDistinctAndLimitComposition(c *C) {
	input := `<gpx>
		<wpt lat="1" lon="2"/>
		<wpt lat="1" lon="2"/>
		<wpt lat="3" lon="4"/>
		<wpt lat="5" lon="6"/>
	</gpx>`
	coordinates := NewLimit(NewDistinct(NewCoordinates(strings.NewReader(input))), 2)
	expected := []gpxstream.Coordinate{
		{Lat: 1, Lon: 2},
		{Lat: 3, Lon: 4},
	}
	gpxstream.CheckCoordinateCursor(c, coordinates, expected)
}
