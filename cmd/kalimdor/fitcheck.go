package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kalimdor-ml/kalimdor/internal/tensor"
)

func newFitCheckCmd(a *app) *cobra.Command {
	var target, query string

	cmd := &cobra.Command{
		Use:   "fit-check <X file> [<y file>]",
		Short: "Check that X is a 2D matrix and y a 1D vector",
		Long: `Fit-check validates a feature matrix and target vector the way every
estimator does before fitting, and additionally checks that both have the
same number of samples.

With a single CSV file, --target names the column holding y. A single
SQLite database (.db, .sqlite) is read with --query instead.

Example:
  kalimdor fit-check X.json y.json
  kalimdor fit-check --header --target label data.csv
  kalimdor fit-check --target label --query "SELECT x1, x2, label FROM t" data.db`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := a.loadFitInputs(cmd.Context(), args, target, query)
			if err != nil {
				return err
			}
			if err := tensor.ValidateFitInputs(x, y); err != nil {
				return err
			}
			if x.Len() != y.Len() {
				return fmt.Errorf("X has %d samples but y has %d", x.Len(), y.Len())
			}

			xs, _ := tensor.InferShape(x)
			ys, _ := tensor.InferShape(y)
			a.log.Info("fit inputs valid", "X", xs.String(), "y", ys.String())

			return a.print(cmd.OutOrStdout(),
				fmt.Sprintf("ok: X %s, y %s", xs, ys),
				map[string]any{"x_shape": []int(xs), "y_shape": []int(ys)})
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "column holding y (single-file form)")
	cmd.Flags().StringVar(&query, "query", "", "SQL query selecting features and target (SQLite input)")
	return cmd
}

func (a *app) loadFitInputs(ctx context.Context, args []string, target, query string) (x, y tensor.Value, err error) {
	if len(args) == 2 {
		if x, err = a.load(args[0]); err != nil {
			return x, y, err
		}
		y, err = a.load(args[1])
		return x, y, err
	}

	if target == "" {
		return x, y, fmt.Errorf("a single input file requires --target")
	}
	ds, err := a.loadDataset(ctx, args[0], target, query)
	if err != nil {
		return x, y, err
	}
	return ds.X, ds.Y, nil
}
