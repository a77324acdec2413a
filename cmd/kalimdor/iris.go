package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kalimdor-ml/kalimdor/internal/datasets"
	"github.com/kalimdor-ml/kalimdor/internal/tensor"
)

func newIrisCmd(a *app) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "iris",
		Short: "Describe the built-in Iris dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := datasets.Iris()
			if err != nil {
				return err
			}
			shape, err := tensor.InferShape(ds.Data)
			if err != nil {
				return err
			}

			if dump {
				return a.print(cmd.OutOrStdout(), tensor.Render(ds.Data), map[string]any{
					"data":    tensor.ToAny(ds.Data),
					"targets": tensor.ToAny(ds.Targets),
				})
			}
			return a.print(cmd.OutOrStdout(),
				fmt.Sprintf("iris: %d samples, %d features, %d classes", shape[0], shape[1], len(ds.TargetNames)),
				map[string]any{
					"shape":         []int(shape),
					"feature_names": ds.FeatureNames,
					"target_names":  ds.TargetNames,
				})
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "print the data matrix")
	return cmd
}
