package main

import (
	"context"
	"fmt"
	"github.com/cnuhqi5485/certification/contracts"
	"github.com/xuri/excelize/v2"
	"io"
)

// XlsxSheetBackend reads and writes a workbook on the local disk.
// An empty sheet name selects the first worksheet.
type XlsxSheetBackend struct {
	path  string
	sheet string
}

func NewXlsxSheetBackend(path string, sheet string) *XlsxSheetBackend {
	return &XlsxSheetBackend{path: path, sheet: sheet}
}

func (s *XlsxSheetBackend) ReadGrid(_ context.Context) (contracts.Grid, error) {
	file, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", contracts.BackendError, err)
	}
	defer func() { _ = file.Close() }()

	return readWorkbookGrid(file, s.sheet)
}

func (s *XlsxSheetBackend) WriteCells(_ context.Context, updates []contracts.CellUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	file, err := excelize.OpenFile(s.path)
	if err != nil {
		return fmt.Errorf("%w: %w", contracts.BackendError, err)
	}
	defer func() { _ = file.Close() }()

	sheetName, err := resolveSheetName(file, s.sheet)
	if err != nil {
		return err
	}

	for _, update := range updates {
		cellName, err := excelize.CoordinatesToCellName(update.Col+1, update.Row+1)
		if err != nil {
			return fmt.Errorf("%w: %w", contracts.BackendError, err)
		}

		err = file.SetCellValue(sheetName, cellName, update.Value)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", contracts.BackendError, cellName, err)
		}
	}

	if err = file.Save(); err != nil {
		return fmt.Errorf("%w: %w", contracts.BackendError, err)
	}

	return nil
}

// ReadWorkbook loads the grid of an uploaded or imported workbook.
func ReadWorkbook(reader io.Reader, sheet string) (contracts.Grid, error) {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", contracts.BackendError, err)
	}
	defer func() { _ = file.Close() }()

	return readWorkbookGrid(file, sheet)
}

func readWorkbookGrid(file *excelize.File, sheet string) (contracts.Grid, error) {
	sheetName, err := resolveSheetName(file, sheet)
	if err != nil {
		return nil, err
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", contracts.BackendError, err)
	}

	return rows, nil
}

func resolveSheetName(file *excelize.File, sheet string) (string, error) {
	if sheet == "" {
		sheet = file.GetSheetName(0)
	}

	index, err := file.GetSheetIndex(sheet)
	if err != nil || index < 0 {
		return "", fmt.Errorf("%w: worksheet %q not found", contracts.BackendError, sheet)
	}

	return sheet, nil
}
