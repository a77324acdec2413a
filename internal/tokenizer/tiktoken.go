package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// endOfText IDs per BPE rank table. Used as the default pad for Vectorize.
var endOfText = map[string]int32{
	"cl100k_base": 100257,
	"p50k_base":   50256,
	"r50k_base":   50256,
}

// TikToken is a subword Encoder backed by a tiktoken BPE rank table.
//
// The rank table is fetched on first load and cached under
// TIKTOKEN_CACHE_DIR; offline use needs a warm cache.
type TikToken struct {
	bpe   *tiktoken.Tiktoken
	table string // rank table name, empty if resolved by model
	name  string
}

// NewTikToken loads a rank table by name, e.g. "cl100k_base".
func NewTikToken(table string) (*TikToken, error) {
	bpe, err := tiktoken.GetEncoding(table)
	if err != nil {
		return nil, fmt.Errorf("tokenizer: load rank table %q: %w", table, err)
	}
	return &TikToken{bpe: bpe, table: table, name: table}, nil
}

// NewTikTokenForModel resolves the rank table registered for model.
func NewTikTokenForModel(model string) (*TikToken, error) {
	bpe, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, fmt.Errorf("tokenizer: no rank table for %q: %w", model, err)
	}
	return &TikToken{bpe: bpe, name: model}, nil
}

// Encode returns the token IDs of text. Special tokens are encoded as text.
func (t *TikToken) Encode(text string) ([]int32, error) {
	ids := t.bpe.Encode(text, nil, nil)
	row := make([]int32, len(ids))
	for i, id := range ids {
		row[i] = int32(id) //nolint:gosec // rank tables hold < 2^31 entries
	}
	return row, nil
}

// Decode joins the byte sequences of tokens.
func (t *TikToken) Decode(tokens []int32) (string, error) {
	ids := make([]int, len(tokens))
	for i, id := range tokens {
		ids[i] = int(id)
	}
	return t.bpe.Decode(ids), nil
}

// EosToken returns the end-of-text ID of the rank table, or -1 when the
// table is unknown or was resolved by model name.
func (t *TikToken) EosToken() int32 {
	if id, ok := endOfText[t.table]; ok {
		return id
	}
	return -1
}

// Name returns the rank table or model name the encoder was built from.
func (t *TikToken) Name() string {
	return t.name
}
