package main

import (
	"fmt"
	"github.com/agnivade/levenshtein"
	"github.com/cnuhqi5485/certification/contracts"
	"strconv"
	"strings"
	"unicode/utf8"
)

// HeaderRowAuto makes the normalizer search for the header row.
const HeaderRowAuto = -1

// headerSearchDepth limits how far the auto detection looks for a header.
const headerSearchDepth = 10

const unnamedColumnPrefix = "Unnamed: "

// CanonicalColumns in the order they are matched by name.
var CanonicalColumns = []string{
	contracts.ColumnItemId,
	contracts.ColumnLocation,
	contracts.ColumnTarget,
	contracts.ColumnQuestion,
	contracts.ColumnAnswer,
	contracts.ColumnVerdict,
	contracts.ColumnReviewer,
}

// AssignableColumns always exist in a normalized table.
var AssignableColumns = []string{contracts.ColumnReviewer, contracts.ColumnVerdict}

type RowNormalizer struct {
	config        NormalizerConfig
	canonicalizer contracts.Canonicalizer
}

func NewRowNormalizer(config NormalizerConfig, canonicalizer contracts.Canonicalizer) *RowNormalizer {
	return &RowNormalizer{
		config:        config,
		canonicalizer: canonicalizer,
	}
}

func (n *RowNormalizer) Normalize(grid contracts.Grid) (*contracts.Table, error) {
	if n.isGridEmpty(grid) {
		return nil, contracts.SheetEmptyError
	}

	headerLine, err := n.findHeaderLine(grid)
	if err != nil {
		return nil, err
	}

	width := 0
	for _, line := range grid[headerLine:] {
		if len(line) > width {
			width = len(line)
		}
	}

	rawHeader := n.cleanLine(grid[headerLine], width, n.canonicalizer.Canonicalize)
	header := n.renameColumns(rawHeader)

	itemIdIndex := indexOf(header, contracts.ColumnItemId)
	if itemIdIndex < 0 {
		return nil, fmt.Errorf("%s: %w", contracts.ColumnItemId, contracts.ColumnNotFoundError)
	}

	table := &contracts.Table{
		HeaderLine:  headerLine,
		Header:      header,
		SourceWidth: width,
		Rows:        make([]*contracts.Row, 0, len(grid)-headerLine),
	}

	for line := headerLine + 1; line < len(grid); line++ {
		cells := n.cleanLine(grid[line], width, n.canonicalizer.Clean)
		if isBlankLine(cells) {
			continue
		}
		table.Rows = append(table.Rows, &contracts.Row{Line: line, Cells: cells})
	}

	junk := n.junkKeys(rawHeader[itemIdIndex])
	isJunk := func(row *contracts.Row) bool {
		return junk[n.canonicalizer.Key(row.Cells[itemIdIndex])]
	}

	n.forwardFill(table, isJunk)
	table.Rows = n.dropJunkRows(table, itemIdIndex, isJunk)
	n.appendAssignableColumns(table)

	return table, nil
}

func (n *RowNormalizer) Patch(table *contracts.Table, rows []*contracts.Row, columns []string) []contracts.CellUpdate {
	updates := make([]contracts.CellUpdate, 0, (len(rows)+1)*len(columns))

	for _, column := range columns {
		index := table.ColumnIndex(column)
		if index < 0 {
			continue
		}

		if index >= table.SourceWidth && len(rows) > 0 {
			updates = append(updates, contracts.CellUpdate{Row: table.HeaderLine, Col: index, Value: column})
		}

		for _, row := range rows {
			updates = append(updates, contracts.CellUpdate{Row: row.Line, Col: index, Value: row.Cells[index]})
		}
	}

	return updates
}

func (n *RowNormalizer) isGridEmpty(grid contracts.Grid) bool {
	for _, line := range grid {
		for _, cell := range line {
			if !n.canonicalizer.IsBlank(cell) {
				return false
			}
		}
	}
	return true
}

func (n *RowNormalizer) findHeaderLine(grid contracts.Grid) (int, error) {
	if n.config.HeaderRow != HeaderRowAuto {
		if n.config.HeaderRow < 0 || n.config.HeaderRow >= len(grid) {
			return 0, fmt.Errorf("row %d of %d: %w", n.config.HeaderRow+1, len(grid), contracts.HeaderNotFoundError)
		}
		return n.config.HeaderRow, nil
	}

	for line := 0; line < len(grid) && line < headerSearchDepth; line++ {
		for _, cell := range grid[line] {
			if n.matchScore(n.canonicalizer.Key(cell), contracts.ColumnItemId) >= 2 {
				return line, nil
			}
		}
	}

	return 0, fmt.Errorf("no %s column in first %d rows: %w", contracts.ColumnItemId, headerSearchDepth, contracts.HeaderNotFoundError)
}

// cleanLine pads line to width, blanking null markers. Header cells are
// canonicalized, content cells keep their line breaks.
func (n *RowNormalizer) cleanLine(line []string, width int, clean func(string) string) []string {
	cells := make([]string, width)
	for index := 0; index < width && index < len(line); index++ {
		if !n.canonicalizer.IsBlank(line[index]) {
			cells[index] = clean(line[index])
		}
	}
	return cells
}

// renameColumns applies positional renames first, then matches the remaining
// canonical columns by name, and finally makes every name unique.
func (n *RowNormalizer) renameColumns(rawHeader []string) []string {
	header := make([]string, len(rawHeader))
	claimed := make([]bool, len(rawHeader))

	for index, name := range rawHeader {
		if name == "" {
			header[index] = unnamedColumnPrefix + strconv.Itoa(index)
		} else {
			header[index] = name
		}
	}

	placed := map[string]bool{}
	if len(rawHeader) >= n.config.MinColumns {
		for _, position := range n.config.Positions {
			if position.Position < 0 || position.Position >= len(header) || placed[position.Name] {
				continue
			}
			header[position.Position] = position.Name
			claimed[position.Position] = true
			placed[position.Name] = true
		}
	}

	// stronger matches win: exact/alias, then edit distance, then containment
	for score := 3; score > 0; score-- {
		for _, column := range CanonicalColumns {
			if placed[column] {
				continue
			}

			found := -1
			for index, name := range rawHeader {
				if claimed[index] || n.matchScore(n.canonicalizer.Key(name), column) != score {
					continue
				}
				if found >= 0 && score == 1 {
					// ambiguous containment
					found = -2
					break
				}
				if found == -1 {
					found = index
				}
			}

			if found >= 0 {
				header[found] = column
				claimed[found] = true
				placed[column] = true
			}
		}
	}

	return n.deduplicate(header, claimed)
}

// matchScore rates how well a header key names column: 3 for an exact or
// alias match, 2 for a one-edit typo, 1 for containment and 0 for no match.
func (n *RowNormalizer) matchScore(headerKey string, column string) int {
	if headerKey == "" {
		return 0
	}

	columnKey := n.canonicalizer.Key(column)
	candidates := append([]string{columnKey}, n.aliasKeys(column)...)

	for _, candidate := range candidates {
		if headerKey == candidate {
			return 3
		}
	}

	for _, candidate := range candidates {
		if utf8.RuneCountInString(candidate) >= 3 && levenshtein.ComputeDistance(headerKey, candidate) <= 1 {
			return 2
		}
	}

	for _, candidate := range candidates {
		if utf8.RuneCountInString(candidate) >= 2 && containsKey(headerKey, candidate) {
			return 1
		}
	}

	return 0
}

func (n *RowNormalizer) aliasKeys(column string) []string {
	aliases := n.config.Aliases[column]
	keys := make([]string, 0, len(aliases))
	for _, alias := range aliases {
		if key := n.canonicalizer.Key(alias); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

func (n *RowNormalizer) deduplicate(header []string, claimed []bool) []string {
	seen := map[string]int{}
	for index, name := range header {
		if claimed[index] {
			seen[name]++
		}
	}

	for index, name := range header {
		if claimed[index] {
			continue
		}
		if count, ok := seen[name]; ok {
			for {
				candidate := name + "." + strconv.Itoa(count)
				count++
				if _, taken := seen[candidate]; !taken {
					seen[name] = count
					seen[candidate] = 1
					header[index] = candidate
					break
				}
			}
		} else {
			seen[name] = 1
		}
	}

	return header
}

// forwardFill fills blank cells from the row above. Header remnants are
// neither filled nor used as a fill source.
func (n *RowNormalizer) forwardFill(table *contracts.Table, isJunk func(*contracts.Row) bool) {
	for _, column := range n.config.ForwardFill {
		index := table.ColumnIndex(column)
		if index < 0 {
			continue
		}

		previous := ""
		for _, row := range table.Rows {
			if isJunk(row) {
				continue
			}
			if row.Cells[index] == "" {
				row.Cells[index] = previous
			} else {
				previous = row.Cells[index]
			}
		}
	}
}

func (n *RowNormalizer) junkKeys(rawItemIdHeader string) map[string]bool {
	junk := map[string]bool{
		n.canonicalizer.Key(contracts.ColumnItemId): true,
	}
	if rawItemIdHeader != "" {
		junk[n.canonicalizer.Key(rawItemIdHeader)] = true
	}
	for _, value := range n.config.JunkValues {
		if key := n.canonicalizer.Key(value); key != "" {
			junk[key] = true
		}
	}
	return junk
}

func (n *RowNormalizer) dropJunkRows(table *contracts.Table, itemIdIndex int, isJunk func(*contracts.Row) bool) []*contracts.Row {
	rows := make([]*contracts.Row, 0, len(table.Rows))
	for _, row := range table.Rows {
		if row.Cells[itemIdIndex] == "" || isJunk(row) {
			continue
		}
		rows = append(rows, row)
	}

	return rows
}

func (n *RowNormalizer) appendAssignableColumns(table *contracts.Table) {
	for _, column := range AssignableColumns {
		if table.ColumnIndex(column) >= 0 {
			continue
		}

		table.Header = append(table.Header, column)
		for _, row := range table.Rows {
			row.Cells = append(row.Cells, "")
		}
	}
}

func isBlankLine(cells []string) bool {
	for _, cell := range cells {
		if cell != "" {
			return false
		}
	}
	return true
}

func indexOf(list []string, value string) int {
	for index, item := range list {
		if item == value {
			return index
		}
	}
	return -1
}

func containsKey(haystack string, needle string) bool {
	return len(haystack) > len(needle) && strings.Contains(haystack, needle)
}
