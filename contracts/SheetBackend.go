package contracts

import "context"

type SheetBackend interface {
	ReadGrid(ctx context.Context) (Grid, error)
	WriteCells(ctx context.Context, updates []CellUpdate) error
}
