package main

import (
	"github.com/cnuhqi5485/certification/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	t.Run("file_then_env", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
listen: "127.0.0.1:9000"
admin_password: secret
matching: contains
backend:
  type: xlsx
  xlsx_path: /data/checklist.xlsx
  sheet: 체크리스트
normalizer:
  header_row: -1
  junk_values: ["기준 번호", "소계"]
verdict_options: [A, B]
webhooks:
  urls: ["http://hooks.local/a"]
  timeout: 2s
`), 0600))

		t.Setenv("CHECKLIST_ADMIN_PASSWORD", "override")
		t.Setenv("CHECKLIST_WEBHOOK_URLS", "http://hooks.local/b, ,http://hooks.local/c")

		config, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "127.0.0.1:9000", config.Listen)
		assert.Equal(t, "override", config.AdminPassword)
		assert.Equal(t, MatchingContains, config.Matching)
		assert.Equal(t, BackendXlsx, config.Backend.Type)
		assert.Equal(t, "체크리스트", config.Backend.Sheet)
		assert.Equal(t, HeaderRowAuto, config.Normalizer.HeaderRow)
		assert.Equal(t, []string{"기준 번호", "소계"}, config.Normalizer.JunkValues)
		assert.Equal(t, []string{"A", "B"}, config.VerdictOptions)
		assert.Equal(t, []string{"http://hooks.local/b", "http://hooks.local/c"}, config.Webhooks.Urls)
		assert.Equal(t, 2*time.Second, config.Webhooks.Timeout)

		// untouched sections keep their defaults
		assert.Equal(t, 7, config.Normalizer.MinColumns)
		assert.Equal(t, []string{contracts.ColumnItemId, contracts.ColumnLocation, contracts.ColumnQuestion}, config.Normalizer.ForwardFill)
		assert.Equal(t, 5, config.Webhooks.Workers)
	})

	t.Run("database_filepath_env", func(t *testing.T) {
		t.Setenv("DATABASE_FILEPATH", "/tmp/db.db")
		t.Setenv("CHECKLIST_HEADER_ROW", "0")

		config, err := LoadConfig("")
		require.NoError(t, err)

		assert.Equal(t, "/tmp/db.db", config.Backend.BoltPath)
		assert.Equal(t, 0, config.Normalizer.HeaderRow)
		assert.Equal(t, ListenPort, config.Listen)
	})

	t.Run("invalid_header_row_env", func(t *testing.T) {
		t.Setenv("DATABASE_FILEPATH", "/tmp/db.db")
		t.Setenv("CHECKLIST_HEADER_ROW", "second")

		_, err := LoadConfig("")
		assert.Error(t, err)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("broken_yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("backend: [\n"), 0600))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		config := DefaultConfig()
		config.Backend.BoltPath = "/tmp/db.db"
		return config
	}

	assert.NoError(t, valid().Validate())

	invalidCases := map[string]func(config *Config){
		"bolt path":       func(config *Config) { config.Backend.BoltPath = "" },
		"xlsx path":       func(config *Config) { config.Backend.Type = BackendXlsx },
		"spreadsheet id":  func(config *Config) { config.Backend.Type = BackendGSheets },
		"backend type":    func(config *Config) { config.Backend.Type = "csv" },
		"matching":        func(config *Config) { config.Matching = "fuzzy" },
		"header row":      func(config *Config) { config.Normalizer.HeaderRow = -2 },
		"verdict options": func(config *Config) { config.VerdictOptions = nil },
		"workers":         func(config *Config) { config.Webhooks.Workers = 0 },
		"queue size":      func(config *Config) { config.Webhooks.QueueSize = 0 },
		"listen":          func(config *Config) { config.Listen = "8080" },
	}

	for name, modify := range invalidCases {
		t.Run(name, func(t *testing.T) {
			config := valid()
			modify(config)

			assert.ErrorIs(t, config.Validate(), ConfigError)
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"1.1", "1.2", "2"}, SplitList(" 1.1,1.2 ,, 2 ,"))
	assert.Empty(t, SplitList(" , "))
}
