package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kalimdor-ml/kalimdor/internal/tensor"
	"github.com/kalimdor-ml/kalimdor/internal/tokenizer"
)

const encodingVocabulary = "vocabulary"

func newTokenizeCmd(a *app) *cobra.Command {
	var (
		encoding string
		width    int
		pad      int32
	)

	cmd := &cobra.Command{
		Use:   "tokenize <file>",
		Short: "Turn a 1D string tensor into a 2D token-id matrix",
		Long: `Tokenize encodes every string of a rank-1 tensor and prints a
[len, width] matrix of token IDs. Short rows are padded, long rows truncated;
--width 0 uses the longest row.

Encodings: vocabulary (word-level, built from the input), or a tiktoken
encoding such as cl100k_base.

Example:
  kalimdor tokenize --width 8 docs.json
  kalimdor tokenize --encoding cl100k_base docs.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := a.load(args[0])
			if err != nil {
				return err
			}

			var enc tokenizer.Encoder
			if encoding == encodingVocabulary {
				if enc, err = tokenizer.BuildVocabulary(docs); err != nil {
					return err
				}
			} else {
				if enc, err = tokenizer.NewTikToken(encoding); err != nil {
					return err
				}
			}

			x, err := tokenizer.Vectorize(enc, docs, width, pad)
			if err != nil {
				return err
			}
			shape, err := tensor.InferShape(x)
			if err != nil {
				return fmt.Errorf("vectorized output: %w", err)
			}
			a.log.Info("tokenized", "path", args[0], "encoding", enc.Name(), "shape", shape.String())

			return a.print(cmd.OutOrStdout(), tensor.Render(x), tensor.ToAny(x))
		},
	}

	cmd.Flags().StringVar(&encoding, "encoding", encodingVocabulary, "vocabulary or a tiktoken encoding name")
	cmd.Flags().IntVar(&width, "width", 0, "row width (0: longest row)")
	cmd.Flags().Int32Var(&pad, "pad", 0, "padding token ID")
	return cmd
}
