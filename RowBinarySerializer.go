package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var SerializerError = errors.New("invalid serialized data")

// RowBinarySerializer stores a sheet row as a cell count followed by
// length-prefixed cells, little endian.
type RowBinarySerializer struct {
}

func NewRowBinarySerializer() *RowBinarySerializer {
	return &RowBinarySerializer{}
}

func (s *RowBinarySerializer) Marshal(cells []string) ([]byte, error) {
	if len(cells) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d cells, at most %d per row", SerializerError, len(cells), math.MaxUint16)
	}

	size := 2
	for _, cell := range cells {
		if uint64(len(cell)) > math.MaxUint32 {
			return nil, fmt.Errorf("%w: cell of %d bytes", SerializerError, len(cell))
		}
		size += 4 + len(cell)
	}

	serializedData := make([]byte, 0, size)
	serializedData = binary.LittleEndian.AppendUint16(serializedData, uint16(len(cells)))
	for _, cell := range cells {
		serializedData = binary.LittleEndian.AppendUint32(serializedData, uint32(len(cell)))
		serializedData = append(serializedData, cell...)
	}
	return serializedData, nil
}

func (s *RowBinarySerializer) Unmarshal(data []byte) ([]string, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("%w: should be at least 2 bytes (data: %v)", SerializerError, string(data))
	}

	count := int(binary.LittleEndian.Uint16(data))
	cells := make([]string, 0, count)
	offset := 2

	for i := 0; i < count; i++ {
		if len(data) < offset+4 {
			return nil, fmt.Errorf("%w: cell %d length is truncated", SerializerError, i)
		}
		cellLength := int(binary.LittleEndian.Uint32(data[offset:]))
		offset += 4

		if len(data) < offset+cellLength {
			return nil, fmt.Errorf("%w: cell %d is shorter than its length (length: %d)", SerializerError, i, cellLength)
		}
		cells = append(cells, string(data[offset:offset+cellLength]))
		offset += cellLength
	}

	if offset != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes", SerializerError, len(data)-offset)
	}

	return cells, nil
}
