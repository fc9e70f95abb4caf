package pipeline

import (
	"errors"
	"io"

	. "gopkg.in/check.v1"

	"github.com/robot-dreams/gpxstream"
)

type FilterSuite struct{}

var _ = Suite(&FilterSuite{})

func (s *FilterSuite) TestFilter(c *C) {
	records := []gpxstream.Record{
		{Lat: attr("1"), Lon: attr("2")},
		{Lat: attr("3")},
		{Lat: attr("x"), Lon: attr("5")},
		{Lat: attr("4"), Lon: attr("5")},
	}
	filter := NewFilter(gpxstream.NewInMemoryScan(records), gpxstream.Valid)
	expected := []gpxstream.Record{
		{Lat: attr("1"), Lon: attr("2")},
		{Lat: attr("4"), Lon: attr("5")},
	}
	gpxstream.CheckRecordCursor(c, filter, expected)
}

func (s *FilterSuite) TestAllRecordsDropped(c *C) {
	records := []gpxstream.Record{
		{Lat: attr("1")},
		{Lon: attr("2")},
	}
	filter := NewFilter(gpxstream.NewInMemoryScan(records), gpxstream.Valid)
	gpxstream.CheckRecordCursor(c, filter, nil)
}

func (s *FilterSuite) TestNoPullAhead(c *C) {
	records := []gpxstream.Record{
		{Lat: attr("1"), Lon: attr("2")},
		{Lat: attr("3"), Lon: attr("4")},
		{Lat: attr("5"), Lon: attr("6")},
	}
	scan := &countingScan{cur: gpxstream.NewInMemoryScan(records)}
	filter := NewFilter(scan, gpxstream.Valid)
	// Every record passes the predicate, so each downstream pull must
	// cause exactly one upstream pull.
	_, err := filter.Next()
	c.Assert(err, IsNil)
	c.Assert(scan.numPulls, Equals, 1)
	_, err = filter.Next()
	c.Assert(err, IsNil)
	c.Assert(scan.numPulls, Equals, 2)
}

func (s *FilterSuite) TestPredicateCalledOncePerElement(c *C) {
	records := []gpxstream.Record{
		{Lat: attr("1"), Lon: attr("2")},
		{Lat: attr("3"), Lon: attr("4")},
	}
	numCalls := 0
	filter := NewFilter(
		gpxstream.NewInMemoryScan(records),
		func(record gpxstream.Record) bool {
			numCalls++
			return true
		})
	_, err := filter.Next()
	c.Assert(err, IsNil)
	c.Assert(numCalls, Equals, 1)
	_, err = filter.Next()
	c.Assert(err, IsNil)
	c.Assert(numCalls, Equals, 2)
}

type failingScan struct {
	err error
}

func (f *failingScan) Next() (gpxstream.Record, error) {
	return gpxstream.Record{}, f.err
}

func (f *failingScan) Close() error {
	return nil
}

func (s *FilterSuite) TestErrorPassthrough(c *C) {
	scanErr := errors.New("scan failed")
	filter := NewFilter(&failingScan{err: scanErr}, gpxstream.Valid)
	_, err := filter.Next()
	c.Assert(err, Equals, scanErr)

	filter = NewFilter(&failingScan{err: io.EOF}, gpxstream.Valid)
	_, err = filter.Next()
	c.Assert(err, Equals, io.EOF)
}
