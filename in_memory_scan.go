package gpxstream

import (
	"io"
)

type inMemoryScan struct {
	records []Record
}

var _ RecordCursor = (*inMemoryScan)(nil)

func NewInMemoryScan(records []Record) *inMemoryScan {
	return &inMemoryScan{
		records: records,
	}
}

func (m *inMemoryScan) Next() (Record, error) {
	if len(m.records) == 0 {
		return Record{}, io.EOF
	}
	record := m.records[0]
	m.records = m.records[1:]
	return record, nil
}

func (m *inMemoryScan) Close() error {
	m.records = nil
	return nil
}

type inMemoryCoordinates struct {
	coordinates []Coordinate
}

var _ CoordinateCursor = (*inMemoryCoordinates)(nil)

func NewInMemoryCoordinates(coordinates []Coordinate) *inMemoryCoordinates {
	return &inMemoryCoordinates{
		coordinates: coordinates,
	}
}

func (m *inMemoryCoordinates) Next() (Coordinate, error) {
	if len(m.coordinates) == 0 {
		return Coordinate{}, io.EOF
	}
	coordinate := m.coordinates[0]
	m.coordinates = m.coordinates[1:]
	return coordinate, nil
}

func (m *inMemoryCoordinates) Close() error {
	m.coordinates = nil
	return nil
}
