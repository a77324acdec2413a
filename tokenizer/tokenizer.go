// Copyright 2025 Kalimdor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tokenizer turns text tensors into token-id tensors.
//
// Supported encoders:
//   - TikToken: OpenAI BPE encodings (cl100k_base, p50k_base, r50k_base)
//   - Vocabulary: word-level vocabulary built from the data
//
// Example usage:
//
//	import (
//	    "github.com/kalimdor-ml/kalimdor/tensor"
//	    "github.com/kalimdor-ml/kalimdor/tokenizer"
//	)
//
//	docs := tensor.Strings("the cat sat", "the dog")
//	vocab, err := tokenizer.BuildVocabulary(docs)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	x, err := tokenizer.Vectorize(vocab, docs, 0, tokenizer.UnknownToken) // shape [2,3]
package tokenizer

import (
	"github.com/kalimdor-ml/kalimdor/internal/tokenizer"
	"github.com/kalimdor-ml/kalimdor/tensor"
)

// Encoder converts text to token IDs.
type Encoder = tokenizer.Encoder

// Decoder converts token IDs back to text.
type Decoder = tokenizer.Decoder

// TikToken wraps an OpenAI BPE encoding.
type TikToken = tokenizer.TikToken

// Vocabulary is a whitespace word-level encoder.
type Vocabulary = tokenizer.Vocabulary

// UnknownToken is the ID Vocabulary assigns to unseen words.
const UnknownToken = tokenizer.UnknownToken

// ErrInvalidWidth is returned for a negative Vectorize width.
var ErrInvalidWidth = tokenizer.ErrInvalidWidth

// NewTikToken loads the named encoding.
//
// Supported encodings: "cl100k_base" (GPT-4), "p50k_base" and "r50k_base" (GPT-3).
func NewTikToken(encodingName string) (*TikToken, error) {
	return tokenizer.NewTikToken(encodingName)
}

// NewTikTokenForModel loads the encoding used by a model such as "gpt-4".
func NewTikTokenForModel(modelName string) (*TikToken, error) {
	return tokenizer.NewTikTokenForModel(modelName)
}

// NewVocabulary assigns IDs 1..n to words in order.
func NewVocabulary(words []string) *Vocabulary {
	return tokenizer.NewVocabulary(words)
}

// BuildVocabulary collects every word of a rank-1 string tensor.
func BuildVocabulary(docs tensor.Value) (*Vocabulary, error) {
	return tokenizer.BuildVocabulary(docs)
}

// Vectorize encodes a rank-1 string tensor into a [len, width] number tensor.
func Vectorize(enc Encoder, docs tensor.Value, width int, pad int32) (tensor.Value, error) {
	return tokenizer.Vectorize(enc, docs, width, pad)
}
