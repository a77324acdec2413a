package tokenizer

// Encoder maps one text cell to a row of token IDs. Vectorize calls it once
// per element of a rank-1 string tensor and pads the rows into a rank-2
// number tensor, so IDs must be non-negative and stable across calls.
type Encoder interface {
	Encode(text string) ([]int32, error)

	// Name identifies the encoder in CLI output and error messages.
	Name() string
}

// Decoder is implemented by encoders that can turn a row back into text.
type Decoder interface {
	Decode(tokens []int32) (string, error)
}
