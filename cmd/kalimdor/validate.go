package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kalimdor-ml/kalimdor/internal/parallel"
	"github.com/kalimdor-ml/kalimdor/internal/tensor"
)

func newValidateCmd(a *app) *cobra.Command {
	var (
		rank  int
		kinds []string
	)

	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check rank and element types of tensor files",
		Long: `Validate checks every file for a consistent shape, the requested rank
(if --rank is given) and element types. Files are checked concurrently;
the error of the first failing file in argument order is reported.

Allowed kinds default to the allowed_kinds config key.

Example:
  kalimdor validate --rank 2 --kinds number X.json
  kalimdor validate a.json b.yaml c.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := kinds
			if len(names) == 0 {
				names = a.cfg.AllowedKinds
			}
			allowed, err := tensor.ParseKinds(splitList(names))
			if err != nil {
				return err
			}

			check := func(v tensor.Value) error {
				if rank >= 0 {
					if err := tensor.ValidateRank(v, rank); err != nil {
						return err
					}
				} else if _, err := tensor.InferShape(v); err != nil {
					return err
				}
				return tensor.ValidateMatrixType(v, allowed)
			}

			err = parallel.ForErr(len(args), func(i int) error {
				v, err := a.load(args[i])
				if err != nil {
					return err
				}
				if err := check(v); err != nil {
					return fmt.Errorf("%s: %w", args[i], err)
				}
				return nil
			}, a.parallelConfig())
			if err != nil {
				return err
			}

			a.log.Info("validated", "files", len(args), "kinds", allowed.String())
			return a.print(cmd.OutOrStdout(), "ok", map[string]any{"valid": true, "files": args})
		},
	}

	cmd.Flags().IntVar(&rank, "rank", -1, "required rank (default: any)")
	cmd.Flags().StringSliceVar(&kinds, "kinds", nil, "allowed element kinds: number, string, boolean")
	return cmd
}
