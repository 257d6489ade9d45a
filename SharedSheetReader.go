package main

import (
	"context"
	"github.com/cnuhqi5485/certification/contracts"
	"golang.org/x/sync/singleflight"
)

const sharedReadKey = "grid"

// SharedSheetReader collapses concurrent ReadGrid calls into one backend
// request. Callers get copies, so a caller mutating its grid never affects
// another. The shared request outlives a cancelled caller, each caller only
// stops waiting for it.
type SharedSheetReader struct {
	backend contracts.SheetBackend
	group   singleflight.Group
}

func NewSharedSheetReader(backend contracts.SheetBackend) *SharedSheetReader {
	return &SharedSheetReader{backend: backend}
}

func (s *SharedSheetReader) ReadGrid(ctx context.Context) (contracts.Grid, error) {
	sharedCtx := context.WithoutCancel(ctx)
	results := s.group.DoChan(sharedReadKey, func() (interface{}, error) {
		return s.backend.ReadGrid(sharedCtx)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-results:
		if result.Err != nil {
			return nil, result.Err
		}

		grid := result.Val.(contracts.Grid)
		if !result.Shared {
			return grid, nil
		}
		return copyGrid(grid), nil
	}
}

func (s *SharedSheetReader) WriteCells(ctx context.Context, updates []contracts.CellUpdate) error {
	s.group.Forget(sharedReadKey)
	return s.backend.WriteCells(ctx, updates)
}

func copyGrid(grid contracts.Grid) contracts.Grid {
	copied := make(contracts.Grid, len(grid))
	for index, line := range grid {
		copied[index] = append([]string(nil), line...)
	}
	return copied
}
