package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/cenkalti/backoff/v4"
	"github.com/cnuhqi5485/certification/contracts"
	"github.com/xuri/excelize/v2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const sheetsMaxElapsedTime = 30 * time.Second

// GoogleSheetBackend talks to a hosted spreadsheet through the Sheets API.
// Grid coordinates are relative to the top-left cell of readRange.
type GoogleSheetBackend struct {
	service       *sheets.Service
	spreadsheetId string
	sheet         string
	readRange     string
	originRow     int
	originCol     int
}

func NewGoogleSheetBackend(ctx context.Context, config BackendConfig, opts ...option.ClientOption) (*GoogleSheetBackend, error) {
	originRow, originCol, err := rangeOrigin(config.Range)
	if err != nil {
		return nil, fmt.Errorf("%w: backend.range %q: %w", ConfigError, config.Range, err)
	}

	if config.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(config.CredentialsFile))
	}
	opts = append(opts, option.WithScopes(sheets.SpreadsheetsScope))

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Sheets client: %w", contracts.BackendError, err)
	}

	return &GoogleSheetBackend{
		service:       service,
		spreadsheetId: config.SpreadsheetId,
		sheet:         config.Sheet,
		readRange:     config.Range,
		originRow:     originRow,
		originCol:     originCol,
	}, nil
}

func (s *GoogleSheetBackend) ReadGrid(ctx context.Context) (contracts.Grid, error) {
	var valueRange *sheets.ValueRange

	err := s.retry(ctx, func() (err error) {
		valueRange, err = s.service.Spreadsheets.Values.Get(s.spreadsheetId, s.a1(s.readRange)).
			ValueRenderOption("FORMATTED_VALUE").
			Context(ctx).
			Do()
		return
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", contracts.BackendError, err)
	}

	grid := make(contracts.Grid, 0, len(valueRange.Values))
	for _, values := range valueRange.Values {
		line := make([]string, 0, len(values))
		for _, value := range values {
			if value == nil {
				line = append(line, "")
			} else {
				line = append(line, fmt.Sprint(value))
			}
		}
		grid = append(grid, line)
	}

	return grid, nil
}

func (s *GoogleSheetBackend) WriteCells(ctx context.Context, updates []contracts.CellUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	request := &sheets.BatchUpdateValuesRequest{
		ValueInputOption: "RAW",
		Data:             make([]*sheets.ValueRange, 0, len(updates)),
	}

	for _, update := range updates {
		cellName, err := excelize.CoordinatesToCellName(s.originCol+update.Col+1, s.originRow+update.Row+1)
		if err != nil {
			return fmt.Errorf("%w: %w", contracts.BackendError, err)
		}

		request.Data = append(request.Data, &sheets.ValueRange{
			Range:  s.a1(cellName),
			Values: [][]interface{}{{update.Value}},
		})
	}

	err := s.retry(ctx, func() error {
		_, err := s.service.Spreadsheets.Values.BatchUpdate(s.spreadsheetId, request).Context(ctx).Do()
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: %w", contracts.BackendError, err)
	}

	return nil
}

func (s *GoogleSheetBackend) a1(cells string) string {
	if s.sheet == "" {
		return cells
	}
	return "'" + strings.ReplaceAll(s.sheet, "'", "''") + "'!" + cells
}

// rangeOrigin returns the 0-based row and column of the top-left cell of an
// A1 range. Open ranges like "C:J" or "5:100" start at the first row or column.
func rangeOrigin(a1Range string) (row int, col int, err error) {
	if bang := strings.LastIndex(a1Range, "!"); bang >= 0 {
		a1Range = a1Range[bang+1:]
	}
	topLeft, _, _ := strings.Cut(a1Range, ":")
	topLeft = strings.ReplaceAll(strings.TrimSpace(topLeft), "$", "")
	if topLeft == "" {
		return 0, 0, nil
	}

	digits := strings.IndexAny(topLeft, "0123456789")
	if digits < 0 {
		digits = len(topLeft)
	}

	if letters := topLeft[:digits]; letters != "" {
		number, err := excelize.ColumnNameToNumber(letters)
		if err != nil {
			return 0, 0, err
		}
		col = number - 1
	}

	if digits < len(topLeft) {
		number, err := strconv.Atoi(topLeft[digits:])
		if err != nil || number < 1 {
			return 0, 0, fmt.Errorf("invalid row in %q", topLeft)
		}
		row = number - 1
	}

	return row, col, nil
}

// retry backs off on quota and server errors, other API errors are final.
func (s *GoogleSheetBackend) retry(ctx context.Context, operation func() error) error {
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = sheetsMaxElapsedTime

	return backoff.Retry(func() error {
		err := operation()

		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code != http.StatusTooManyRequests && apiErr.Code < 500 {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(policy, ctx))
}
