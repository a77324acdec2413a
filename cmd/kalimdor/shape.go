package main

import (
	"github.com/spf13/cobra"

	"github.com/kalimdor-ml/kalimdor/internal/tensor"
)

func newShapeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shape <file>",
		Short: "Print the inferred shape of a tensor file",
		Long: `Shape infers the per-axis extents of the nested array in <file>.
Ragged input fails with the index path of the first offending element.

Example:
  kalimdor shape X.json
  kalimdor shape --header iris.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.load(args[0])
			if err != nil {
				return err
			}
			shape, err := tensor.InferShape(v)
			if err != nil {
				return err
			}
			a.log.Info("inferred shape", "path", args[0], "shape", shape.String())

			return a.print(cmd.OutOrStdout(), shape.String(), map[string]any{
				"shape": []int(shape),
				"rank":  shape.Rank(),
				"size":  shape.NumElements(),
			})
		},
	}
}
