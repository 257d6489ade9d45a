package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"github.com/cnuhqi5485/certification/contracts"
	"go.etcd.io/bbolt"
	"sort"
	"strings"
)

// BoltSheetBackend keeps a sheet in a bbolt bucket, one key per grid row.
type BoltSheetBackend struct {
	db         *bbolt.DB
	sheetId    []byte
	serializer contracts.RowSerializer
}

func NewBoltSheetBackend(db *bbolt.DB, sheetId string, serializer contracts.RowSerializer) *BoltSheetBackend {
	return &BoltSheetBackend{
		db:         db,
		sheetId:    []byte(strings.ToLower(sheetId)),
		serializer: serializer,
	}
}

func (s *BoltSheetBackend) ReadGrid(_ context.Context) (contracts.Grid, error) {
	grid := contracts.Grid{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(s.sheetId)
		if bucket == nil {
			return nil
		}

		c := bucket.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			line := int(binary.BigEndian.Uint32(k))
			cells, err := s.serializer.Unmarshal(v)
			if err != nil {
				return fmt.Errorf("row %d: %w", line+1, err)
			}

			for len(grid) < line {
				grid = append(grid, []string{})
			}
			grid = append(grid, cells)
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("%w: %w", contracts.BackendError, err)
	}

	return grid, nil
}

func (s *BoltSheetBackend) WriteCells(_ context.Context, updates []contracts.CellUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	byRow := map[int][]contracts.CellUpdate{}
	for _, update := range updates {
		byRow[update.Row] = append(byRow[update.Row], update)
	}

	lines := make([]int, 0, len(byRow))
	for line := range byRow {
		lines = append(lines, line)
	}
	sort.Ints(lines)

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(s.sheetId)
		if err != nil {
			return err
		}

		for _, line := range lines {
			key := makeRowKey(line)

			cells := []string{}
			if stored := bucket.Get(key); stored != nil {
				cells, err = s.serializer.Unmarshal(stored)
				if err != nil {
					return fmt.Errorf("row %d: %w", line+1, err)
				}
			}

			for _, update := range byRow[line] {
				for len(cells) <= update.Col {
					cells = append(cells, "")
				}
				cells[update.Col] = update.Value
			}

			serialized, err := s.serializer.Marshal(cells)
			if err != nil {
				return fmt.Errorf("row %d: %w", line+1, err)
			}

			err = bucket.Put(key, serialized)
			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("%w: %w", contracts.BackendError, err)
	}

	return nil
}

// Import replaces the sheet content with grid.
func (s *BoltSheetBackend) Import(_ context.Context, grid contracts.Grid) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket(s.sheetId) != nil {
			if err := tx.DeleteBucket(s.sheetId); err != nil {
				return err
			}
		}

		bucket, err := tx.CreateBucket(s.sheetId)
		if err != nil {
			return err
		}

		for line, cells := range grid {
			serialized, err := s.serializer.Marshal(cells)
			if err != nil {
				return fmt.Errorf("row %d: %w", line+1, err)
			}

			err = bucket.Put(makeRowKey(line), serialized)
			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("%w: %w", contracts.BackendError, err)
	}

	return nil
}

// makeRowKey is big endian so the cursor walks rows in sheet order.
func makeRowKey(line int) []byte {
	return binary.BigEndian.AppendUint32(make([]byte, 0, 4), uint32(line))
}
