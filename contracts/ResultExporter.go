package contracts

import "io"

type ResultExporter interface {
	Export(table *Table, format string, w io.Writer) error
	FileName(format string) (string, error)
	ContentType(format string) (string, error)
}
