package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kalimdor-ml/kalimdor/internal/loader"
	"github.com/kalimdor-ml/kalimdor/internal/parallel"
	"github.com/kalimdor-ml/kalimdor/internal/tensor"
)

// app holds state shared by every subcommand of one invocation.
type app struct {
	configDir string
	jsonOut   bool
	logLevel  string
	csvHeader bool

	cfg *config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "kalimdor",
		Short: "Inspect, validate and reshape tensor files",
		Long: `kalimdor infers shapes of nested arrays, validates rank and element
types, and reshapes tensors. Inputs are JSON, YAML or CSV files.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&a.configDir, "config-dir", "", "directory holding kalimdor.yaml (default: current directory)")
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "output as JSON")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	root.PersistentFlags().BoolVar(&a.csvHeader, "header", false, "CSV inputs start with a header row")

	root.AddCommand(
		newVersionCmd(),
		newShapeCmd(a),
		newValidateCmd(a),
		newReshapeCmd(a),
		newFitCheckCmd(a),
		newIrisCmd(a),
		newTokenizeCmd(a),
	)
	return root
}

func (a *app) init(stderr io.Writer) error {
	cfg, err := loadConfig(a.configDir)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}

	logger, err := newLogger(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger
	return nil
}

// parallelConfig maps the workers setting onto a parallel.Config; 0 means
// one worker per CPU.
func (a *app) parallelConfig() parallel.Config {
	cfg := parallel.DefaultConfig()
	cfg.MinChunkSize = 1
	if a.cfg.Workers > 0 {
		cfg.NumWorkers = a.cfg.Workers
	} else {
		cfg.NumWorkers = runtime.NumCPU()
	}
	cfg.Enabled = cfg.NumWorkers > 1
	return cfg
}

// load reads one tensor file.
func (a *app) load(path string) (tensor.Value, error) {
	v, err := loader.LoadFile(path, loader.CSVOptions{Header: a.csvHeader})
	if err != nil {
		return tensor.Value{}, err
	}
	a.log.Debug("loaded tensor", "path", path, "format", loader.DetectFormat(path).String())
	return v, nil
}

// loadDataset reads a CSV file or SQLite database and splits off target.
func (a *app) loadDataset(ctx context.Context, path, target, query string) (*loader.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		if query == "" {
			return nil, fmt.Errorf("SQLite input %s requires --query", path)
		}
		db, err := loader.OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		a.log.Debug("querying dataset", "path", path, "query", query)
		return loader.QueryDataset(ctx, db, target, query)
	case ".csv":
		f, err := os.Open(path) //nolint:gosec // G304: path comes from the command line
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		defer f.Close()
		return loader.ReadCSV(f, loader.CSVOptions{Header: true, Target: target})
	default:
		return nil, fmt.Errorf("--target needs a CSV or SQLite input, got %s", path)
	}
}

// print writes text, or v as indented JSON when --json is set.
func (a *app) print(w io.Writer, text string, v any) error {
	if !a.jsonOut {
		_, err := fmt.Fprintln(w, text)
		return err
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// splitList accepts both repeated values and comma-separated lists.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
