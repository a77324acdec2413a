package main

import (
	"github.com/spf13/cobra"

	"github.com/kalimdor-ml/kalimdor/internal/tensor"
)

func newReshapeCmd(a *app) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "reshape <file> --shape <dims>",
		Short: "Reshape a tensor file and print the result",
		Long: `Reshape re-nests the elements of <file> in row-major order into the
target shape. The element count must match exactly.

Example:
  kalimdor reshape --shape 3,2 X.json
  kalimdor reshape --shape [6] X.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shape, err := tensor.ParseShape(target)
			if err != nil {
				return err
			}
			v, err := a.load(args[0])
			if err != nil {
				return err
			}
			out, err := tensor.Reshape(v, shape)
			if err != nil {
				return err
			}
			a.log.Info("reshaped", "path", args[0], "shape", shape.String())

			return a.print(cmd.OutOrStdout(), tensor.Render(out), tensor.ToAny(out))
		},
	}

	cmd.Flags().StringVar(&target, "shape", "", "target shape, e.g. 2,3 or [2,3]")
	_ = cmd.MarkFlagRequired("shape")
	return cmd
}
