package gpxstream

import (
	"io"

	. "gopkg.in/check.v1"
)

// CheckRecordCursor should only be used in tests.
func CheckRecordCursor(c *C, cur RecordCursor, expected []Record) {
	// Ensure that the cursor contains exactly the expected Records.
	for _, record := range expected {
		actual, err := cur.Next()
		c.Assert(err, IsNil)
		c.Assert(actual, Equals, record)
	}
	_, err := cur.Next()
	c.Assert(err, Equals, io.EOF)
	// Repeated calls to Next should continue to return io.EOF after
	// reaching the end of the cursor.
	_, err = cur.Next()
	c.Assert(err, Equals, io.EOF)
	_, err = cur.Next()
	c.Assert(err, Equals, io.EOF)
	// Repeated calls to Close should be handled properly.
	err = cur.Close()
	c.Assert(err, IsNil)
	err = cur.Close()
	c.Assert(err, IsNil)
}

// CheckCoordinateCursor should only be used in tests.
func CheckCoordinateCursor(c *C, cur CoordinateCursor, expected []Coordinate) {
	for _, coordinate := range expected {
		actual, err := cur.Next()
		c.Assert(err, IsNil)
		c.Assert(actual, Equals, coordinate)
	}
	_, err := cur.Next()
	c.Assert(err, Equals, io.EOF)
	_, err = cur.Next()
	c.Assert(err, Equals, io.EOF)
	err = cur.Close()
	c.Assert(err, IsNil)
	err = cur.Close()
	c.Assert(err, IsNil)
}
