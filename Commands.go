package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"os"
)

func NewRootCommand() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "certification",
		Short:         "Checklist assignment and evaluation service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to the YAML config file")

	root.AddCommand(
		newServeCommand(&configFile),
		newImportCommand(&configFile),
		newExportCommand(&configFile),
	)

	return root
}

func newServeCommand(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunApp(cmd.Context(), *configFile)
		},
	}
}

func newImportCommand(configFile *string) *cobra.Command {
	var sheet string

	cmd := &cobra.Command{
		Use:   "import <workbook.xlsx>",
		Short: "Load a checklist workbook into the bolt database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig(*configFile)
			if err != nil {
				return err
			}

			lines, items, err := ImportWorkbook(cmd.Context(), config, args[0], sheet)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d lines, %d checklist rows\n", lines, items)
			return err
		},
	}
	cmd.Flags().StringVar(&sheet, "sheet", "", "worksheet name (first sheet when empty)")

	return cmd
}

func newExportCommand(configFile *string) *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the evaluation results to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig(*configFile)
			if err != nil {
				return err
			}

			if output == "" {
				output, err = NewResultExporter().FileName(format)
				if err != nil {
					return err
				}
			}

			err = ExportResults(cmd.Context(), config, format, output)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "exported %s\n", output)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", ExportFormatCsv, "export format: csv or xlsx")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (checklist_result.<format> when empty)")

	return cmd
}

// ImportWorkbook replaces the bolt sheet with the workbook at path. The
// workbook has to normalize cleanly before anything is written.
func ImportWorkbook(ctx context.Context, config *Config, path string, sheet string) (lines int, items int, err error) {
	if config.Backend.Type != BackendBolt {
		return 0, 0, fmt.Errorf("%w: import needs the %s backend", ConfigError, BackendBolt)
	}

	file, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer file.Close()

	grid, err := ReadWorkbook(file, sheet)
	if err != nil {
		return 0, 0, err
	}

	table, err := NewRowNormalizer(config.Normalizer, NewCanonicalizer()).Normalize(grid)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", path, err)
	}

	db, err := OpenDatabase(config.Backend.BoltPath)
	if err != nil {
		return 0, 0, err
	}
	defer db.Close()

	err = NewBoltSheetBackend(db, BoltSheetId(config.Backend), NewRowBinarySerializer()).Import(ctx, grid)
	if err != nil {
		return 0, 0, err
	}

	return len(grid), len(table.Rows), nil
}

func ExportResults(ctx context.Context, config *Config, format string, output string) error {
	serviceContainer, err := BuildServiceContainer(ctx, config, zap.NewNop())
	if err != nil {
		return err
	}
	defer serviceContainer.Close()

	file, err := os.Create(output)
	if err != nil {
		return err
	}

	err = serviceContainer.ChecklistRepository.Export(ctx, format, file)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(output)
	}

	return err
}
