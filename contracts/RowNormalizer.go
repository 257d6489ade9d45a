package contracts

type RowNormalizer interface {
	Normalize(grid Grid) (*Table, error)
	// Patch returns the cell writes that store columns of rows back into the
	// grid the table was normalized from.
	Patch(table *Table, rows []*Row, columns []string) []CellUpdate
}
