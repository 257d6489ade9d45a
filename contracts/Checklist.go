package contracts

import (
	"errors"
)

// Canonical column names of the checklist sheet.
const (
	ColumnItemId   = "문항"
	ColumnLocation = "평가장소"
	ColumnTarget   = "평가대상"
	ColumnQuestion = "질문"
	ColumnAnswer   = "답변"
	ColumnVerdict  = "평가"
	ColumnReviewer = "담당위원"
)

// Grid is the raw sheet content, row-major. Rows may have different lengths.
type Grid [][]string

// CellUpdate is a single cell write in 0-based grid coordinates.
type CellUpdate struct {
	Row   int
	Col   int
	Value string
}

type Row struct {
	// Line is the 0-based grid row the data came from.
	Line  int
	Cells []string
}

type Table struct {
	HeaderLine  int
	Header      []string
	SourceWidth int // columns after SourceWidth were appended by the normalizer
	Rows        []*Row
}

func (t *Table) ColumnIndex(name string) int {
	for index, column := range t.Header {
		if column == name {
			return index
		}
	}
	return -1
}

func (t *Table) Get(row *Row, column string) string {
	index := t.ColumnIndex(column)
	if index < 0 || index >= len(row.Cells) {
		return ""
	}
	return row.Cells[index]
}

func (t *Table) Set(row *Row, column string, value string) bool {
	index := t.ColumnIndex(column)
	if index < 0 || index >= len(row.Cells) {
		return false
	}
	row.Cells[index] = value
	return true
}

func (t *Table) FindRow(line int) *Row {
	for _, row := range t.Rows {
		if row.Line == line {
			return row
		}
	}
	return nil
}

// Item builds the API view of row.
func (t *Table) Item(row *Row) *ChecklistItem {
	return &ChecklistItem{
		Row:      row.Line + 1,
		ItemId:   t.Get(row, ColumnItemId),
		Location: t.Get(row, ColumnLocation),
		Target:   t.Get(row, ColumnTarget),
		Question: t.Get(row, ColumnQuestion),
		Answer:   t.Get(row, ColumnAnswer),
		Verdict:  t.Get(row, ColumnVerdict),
		Reviewer: t.Get(row, ColumnReviewer),
	}
}

func (t *Table) Items(rows []*Row) []*ChecklistItem {
	items := make([]*ChecklistItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, t.Item(row))
	}
	return items
}

// ChecklistItem is a normalized row as shown to reviewers and administrators.
// Row is the 1-based sheet row number and identifies the row on submission.
type ChecklistItem struct {
	Row      int    `json:"row"`
	ItemId   string `json:"item_id"`
	Location string `json:"location"`
	Target   string `json:"target"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Verdict  string `json:"verdict"`
	Reviewer string `json:"reviewer"`
}

type Evaluation struct {
	Row     int    `json:"row" binding:"required"`
	Verdict string `json:"verdict"`
}

type AssignResult struct {
	Reviewer     string   `json:"reviewer"`
	AssignedRows int      `json:"assigned_rows"`
	MatchedIds   []string `json:"matched_ids"`
	UnknownIds   []string `json:"unknown_ids"`
}

type ReviewerSummary struct {
	Reviewer  string         `json:"reviewer"`
	Assigned  int            `json:"assigned"`
	Evaluated int            `json:"evaluated"`
	Verdicts  map[string]int `json:"verdicts"`
}

type Summary struct {
	TotalRows      int                `json:"total_rows"`
	DistinctItems  int                `json:"distinct_items"`
	UnassignedRows int                `json:"unassigned_rows"`
	Reviewers      []*ReviewerSummary `json:"reviewers"`
}

var SheetEmptyError = errors.New("sheet is empty")

var HeaderNotFoundError = errors.New("header row not found")

var ColumnNotFoundError = errors.New("column not found")

var ItemNotFoundError = errors.New("item not found")

var ReviewerNotFoundError = errors.New("no items assigned to reviewer")

var ReviewerRequiredError = errors.New("reviewer name is required")

var RowNotAssignedError = errors.New("row is not assigned to reviewer")

var InvalidVerdictError = errors.New("invalid verdict")

var RuleError = errors.New("rule error")

var BackendError = errors.New("sheet backend error")

var UnknownExportFormatError = errors.New("unknown export format")
