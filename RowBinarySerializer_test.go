package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func TestRowBinarySerializer_Marshal(t *testing.T) {
	serializer := &RowBinarySerializer{}

	t.Run("valid_row", func(t *testing.T) {
		serialized, err := serializer.Marshal([]string{"1.1", "병동"})
		assert.NoError(t, err)
		assert.Equal(t, 2+4+3+4+len("병동"), len(serialized))
	})

	t.Run("too_many_cells", func(t *testing.T) {
		serialized, err := serializer.Marshal(make([]string, math.MaxUint16+1))
		assert.ErrorIs(t, err, SerializerError)
		assert.Nil(t, serialized)

		_, err = serializer.Marshal(make([]string, math.MaxUint16))
		assert.NoError(t, err)
	})
}

func TestRowBinarySerializer_Unmarshal(t *testing.T) {
	serializer := &RowBinarySerializer{}

	t.Run("valid_data", func(t *testing.T) {
		assertMarshalAndUnmarshal := func(expected []string) {
			serialized, err := serializer.Marshal(expected)
			require.NoError(t, err)

			actual, err := serializer.Unmarshal(serialized)
			assert.NoError(t, err)
			assert.Equal(t, expected, actual)
		}

		assertMarshalAndUnmarshal([]string{"1.1", "병동", "", "환자 확인 절차가 있는가?", "있음", "상"})
		assertMarshalAndUnmarshal([]string{})
		assertMarshalAndUnmarshal([]string{"", "", ""})
	})

	t.Run("empty_data", func(t *testing.T) {
		cells, err := serializer.Unmarshal([]byte{})

		assert.ErrorIs(t, err, SerializerError)
		assert.Nil(t, cells)
	})

	t.Run("truncated_cell", func(t *testing.T) {
		serialized, err := serializer.Marshal([]string{"value1"})
		require.NoError(t, err)

		cells, err := serializer.Unmarshal(serialized[:len(serialized)-2])

		assert.ErrorIs(t, err, SerializerError)
		assert.Nil(t, cells)
	})

	t.Run("trailing_bytes", func(t *testing.T) {
		serialized, err := serializer.Marshal([]string{"value1"})
		require.NoError(t, err)

		cells, err := serializer.Unmarshal(append(serialized, 'x'))

		assert.ErrorIs(t, err, SerializerError)
		assert.Nil(t, cells)
	})
}
