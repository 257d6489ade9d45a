package main

import (
	"errors"
	"fmt"
	"github.com/cnuhqi5485/certification/contracts"
	"gopkg.in/yaml.v3"
	"os"
	"strconv"
	"strings"
	"time"
)

const ListenPort = ":8080"

const (
	BackendBolt    = "bolt"
	BackendXlsx    = "xlsx"
	BackendGSheets = "gsheets"
)

const (
	MatchingToken    = "token"
	MatchingContains = "contains"
)

const envPrefix = "CHECKLIST_"

var ConfigError = errors.New("invalid config")

type Config struct {
	Listen         string           `yaml:"listen"`
	LogLevel       string           `yaml:"log_level"`
	AdminPassword  string           `yaml:"admin_password"`
	Backend        BackendConfig    `yaml:"backend"`
	Normalizer     NormalizerConfig `yaml:"normalizer"`
	Matching       string           `yaml:"matching"`
	VerdictOptions []string         `yaml:"verdict_options"`
	Webhooks       WebhooksConfig   `yaml:"webhooks"`
}

type BackendConfig struct {
	Type            string `yaml:"type"`
	BoltPath        string `yaml:"bolt_path"`
	Sheet           string `yaml:"sheet"`
	XlsxPath        string `yaml:"xlsx_path"`
	SpreadsheetId   string `yaml:"spreadsheet_id"`
	Range           string `yaml:"range"`
	CredentialsFile string `yaml:"credentials_file"`
}

type ColumnPosition struct {
	Position int    `yaml:"position"`
	Name     string `yaml:"name"`
}

// NormalizerConfig.HeaderRow is the 0-based header line, HeaderRowAuto
// searches for it.
type NormalizerConfig struct {
	HeaderRow   int                 `yaml:"header_row"`
	MinColumns  int                 `yaml:"min_columns"`
	Positions   []ColumnPosition    `yaml:"positions"`
	Aliases     map[string][]string `yaml:"aliases"`
	ForwardFill []string            `yaml:"forward_fill"`
	JunkValues  []string            `yaml:"junk_values"`
}

type WebhooksConfig struct {
	Urls      []string      `yaml:"urls"`
	Workers   int           `yaml:"workers"`
	QueueSize int           `yaml:"queue_size"`
	Timeout   time.Duration `yaml:"timeout"`
}

func DefaultConfig() *Config {
	return &Config{
		Listen:   ListenPort,
		LogLevel: "info",
		Backend: BackendConfig{
			Type:  BackendBolt,
			Range: "A1:Z2000",
		},
		Normalizer:     DefaultNormalizerConfig(),
		Matching:       MatchingToken,
		VerdictOptions: []string{"상", "중", "하", "해당없음"},
		Webhooks: WebhooksConfig{
			Workers:   5,
			QueueSize: 20,
			Timeout:   5 * time.Second,
		},
	}
}

// DefaultNormalizerConfig describes the checklist layout: a title row, then
// the header, with the patient column at position 3 left untouched.
func DefaultNormalizerConfig() NormalizerConfig {
	return NormalizerConfig{
		HeaderRow:  1,
		MinColumns: 7,
		Positions: []ColumnPosition{
			{Position: 0, Name: contracts.ColumnItemId},
			{Position: 1, Name: contracts.ColumnLocation},
			{Position: 2, Name: contracts.ColumnTarget},
			{Position: 4, Name: contracts.ColumnQuestion},
			{Position: 5, Name: contracts.ColumnAnswer},
			{Position: 6, Name: contracts.ColumnVerdict},
		},
		Aliases: map[string][]string{
			contracts.ColumnItemId:   {"문항번호", "항목번호", "No"},
			contracts.ColumnLocation: {"장소"},
			contracts.ColumnTarget:   {"대상"},
			contracts.ColumnQuestion: {"질의", "질문내용"},
			contracts.ColumnAnswer:   {"응답", "답변내용"},
			contracts.ColumnVerdict:  {"평가결과", "결과"},
			contracts.ColumnReviewer: {"평가위원", "담당자", "위원"},
		},
		ForwardFill: []string{contracts.ColumnItemId, contracts.ColumnLocation, contracts.ColumnQuestion},
		JunkValues:  []string{"기준 번호"},
	}
}

// LoadConfig reads defaults, then the YAML file when given, then environment
// overrides, and validates the result.
func LoadConfig(filename string) (*Config, error) {
	config := DefaultConfig()

	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
		}

		err = yaml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", filename, err)
		}
	}

	err := config.loadFromEnv(os.Getenv)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}

	err = config.Validate()
	if err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) loadFromEnv(getenv func(string) string) error {
	// kept for compatibility with the docker setup
	if value := getenv("DATABASE_FILEPATH"); value != "" {
		c.Backend.BoltPath = value
	}

	stringVars := map[string]*string{
		"LISTEN":           &c.Listen,
		"LOG_LEVEL":        &c.LogLevel,
		"ADMIN_PASSWORD":   &c.AdminPassword,
		"MATCHING":         &c.Matching,
		"BACKEND":          &c.Backend.Type,
		"BOLT_PATH":        &c.Backend.BoltPath,
		"SHEET":            &c.Backend.Sheet,
		"XLSX_PATH":        &c.Backend.XlsxPath,
		"SPREADSHEET_ID":   &c.Backend.SpreadsheetId,
		"RANGE":            &c.Backend.Range,
		"CREDENTIALS_FILE": &c.Backend.CredentialsFile,
	}
	for name, target := range stringVars {
		if value := getenv(envPrefix + name); value != "" {
			*target = value
		}
	}

	if value := getenv(envPrefix + "HEADER_ROW"); value != "" {
		headerRow, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%sHEADER_ROW: %w", envPrefix, err)
		}
		c.Normalizer.HeaderRow = headerRow
	}

	if value := getenv(envPrefix + "WEBHOOK_URLS"); value != "" {
		c.Webhooks.Urls = SplitList(value)
	}

	return nil
}

func (c *Config) Validate() error {
	switch c.Backend.Type {
	case BackendBolt:
		if c.Backend.BoltPath == "" {
			return fmt.Errorf("%w: backend.bolt_path is required for %s backend", ConfigError, BackendBolt)
		}
	case BackendXlsx:
		if c.Backend.XlsxPath == "" {
			return fmt.Errorf("%w: backend.xlsx_path is required for %s backend", ConfigError, BackendXlsx)
		}
	case BackendGSheets:
		if c.Backend.SpreadsheetId == "" {
			return fmt.Errorf("%w: backend.spreadsheet_id is required for %s backend", ConfigError, BackendGSheets)
		}
	default:
		return fmt.Errorf("%w: unknown backend type %q", ConfigError, c.Backend.Type)
	}

	if c.Matching != MatchingToken && c.Matching != MatchingContains {
		return fmt.Errorf("%w: matching should be %s or %s", ConfigError, MatchingToken, MatchingContains)
	}

	if c.Normalizer.HeaderRow < HeaderRowAuto {
		return fmt.Errorf("%w: normalizer.header_row should be %d or greater", ConfigError, HeaderRowAuto)
	}

	if len(c.VerdictOptions) == 0 {
		return fmt.Errorf("%w: verdict_options should not be empty", ConfigError)
	}

	if c.Webhooks.Workers < 1 || c.Webhooks.QueueSize < 1 {
		return fmt.Errorf("%w: webhooks.workers and webhooks.queue_size should be positive", ConfigError)
	}

	if !strings.Contains(c.Listen, ":") {
		return fmt.Errorf("%w: listen should be host:port", ConfigError)
	}

	return nil
}

// SplitList splits a comma separated list, trimming items and skipping blanks.
func SplitList(value string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
