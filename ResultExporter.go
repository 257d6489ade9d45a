package main

import (
	"encoding/csv"
	"fmt"
	"github.com/cnuhqi5485/certification/contracts"
	"github.com/xuri/excelize/v2"
	"io"
)

const (
	ExportFormatCsv  = "csv"
	ExportFormatXlsx = "xlsx"
)

const exportBaseName = "checklist_result"

const xlsxResultSheet = "결과"

// utf8Bom lets spreadsheet programs detect the encoding of the csv export.
var utf8Bom = []byte{0xEF, 0xBB, 0xBF}

type ResultExporter struct {
}

func NewResultExporter() *ResultExporter {
	return &ResultExporter{}
}

func (e *ResultExporter) Export(table *contracts.Table, format string, w io.Writer) error {
	switch format {
	case ExportFormatCsv:
		return e.exportCsv(table, w)
	case ExportFormatXlsx:
		return e.exportXlsx(table, w)
	}
	return fmt.Errorf("%s: %w", format, contracts.UnknownExportFormatError)
}

func (e *ResultExporter) FileName(format string) (string, error) {
	switch format {
	case ExportFormatCsv, ExportFormatXlsx:
		return exportBaseName + "." + format, nil
	}
	return "", fmt.Errorf("%s: %w", format, contracts.UnknownExportFormatError)
}

func (e *ResultExporter) ContentType(format string) (string, error) {
	switch format {
	case ExportFormatCsv:
		return "text/csv", nil
	case ExportFormatXlsx:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
	}
	return "", fmt.Errorf("%s: %w", format, contracts.UnknownExportFormatError)
}

func (e *ResultExporter) exportCsv(table *contracts.Table, w io.Writer) error {
	if _, err := w.Write(utf8Bom); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(table.Header); err != nil {
		return err
	}
	for _, row := range table.Rows {
		if err := writer.Write(row.Cells); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func (e *ResultExporter) exportXlsx(table *contracts.Table, w io.Writer) error {
	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	err := file.SetSheetName(file.GetSheetName(0), xlsxResultSheet)
	if err != nil {
		return err
	}

	streamWriter, err := file.NewStreamWriter(xlsxResultSheet)
	if err != nil {
		return err
	}

	writeLine := func(line int, cells []string) error {
		cellName, err := excelize.CoordinatesToCellName(1, line)
		if err != nil {
			return err
		}

		values := make([]interface{}, len(cells))
		for index, cell := range cells {
			values[index] = cell
		}
		return streamWriter.SetRow(cellName, values)
	}

	if err = writeLine(1, table.Header); err != nil {
		return err
	}
	for index, row := range table.Rows {
		if err = writeLine(index+2, row.Cells); err != nil {
			return err
		}
	}

	if err = streamWriter.Flush(); err != nil {
		return err
	}

	_, err = file.WriteTo(w)
	return err
}
