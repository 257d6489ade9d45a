package main

import (
	"bytes"
	"context"
	"github.com/cnuhqi5485/certification/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func _runCommand(args ...string) (string, error) {
	var out bytes.Buffer

	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func TestImportExportCommands(t *testing.T) {
	t.Setenv("DATABASE_FILEPATH", filepath.Join(t.TempDir(), "db.db"))

	workbook := _createTmpWorkbook(t, "체크리스트", _assignedGrid())

	output, err := _runCommand("import", workbook, "--sheet", "체크리스트")
	require.NoError(t, err)
	assert.Equal(t, "imported 7 lines, 4 checklist rows\n", output)

	resultPath := filepath.Join(t.TempDir(), "result.csv")
	output, err = _runCommand("export", "--format", "csv", "--output", resultPath)
	require.NoError(t, err)
	assert.Equal(t, "exported "+resultPath+"\n", output)

	result, err := os.ReadFile(resultPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(result, utf8Bom))
	assert.Contains(t, string(result), "1.2,수술실,마취과,,낙상 위험 평가는?,,,\n")
	assert.Contains(t, string(result), "\"김철수, 이영희\"")
}

func TestImportCommand_Errors(t *testing.T) {
	t.Run("missing argument", func(t *testing.T) {
		_, err := _runCommand("import")
		assert.Error(t, err)
	})

	t.Run("not a checklist", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "db.db")
		t.Setenv("DATABASE_FILEPATH", dbPath)

		workbook := _createTmpWorkbook(t, "Sheet1", contracts.Grid{{"title"}, {"a", "b"}, {"1", "2"}})

		_, err := _runCommand("import", workbook)
		assert.ErrorIs(t, err, contracts.ColumnNotFoundError)

		_, statErr := os.Stat(dbPath)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("wrong backend", func(t *testing.T) {
		t.Setenv("CHECKLIST_BACKEND", BackendXlsx)
		t.Setenv("CHECKLIST_XLSX_PATH", filepath.Join(t.TempDir(), "checklist.xlsx"))

		_, err := _runCommand("import", "checklist.xlsx")
		assert.ErrorIs(t, err, ConfigError)
	})
}

func TestExportCommand_UnknownFormat(t *testing.T) {
	t.Setenv("DATABASE_FILEPATH", filepath.Join(t.TempDir(), "db.db"))

	_, err := _runCommand("export", "--format", "pdf")
	assert.ErrorIs(t, err, contracts.UnknownExportFormatError)
}
