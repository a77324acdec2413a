// Package tokenizer turns text tensors into token-id tensors.
//
// An Encoder maps one string to token IDs. Two encoders are provided:
//   - TikToken: OpenAI BPE encodings (cl100k_base, p50k_base, r50k_base)
//   - Vocabulary: a word-level vocabulary built from the data itself
//
// Vectorize applies an encoder to every element of a rank-1 string tensor
// and returns a rank-2 number tensor of shape [len, width], padded or
// truncated per row, ready for the fit validators.
//
// Example usage:
//
//	enc, err := tokenizer.NewTikToken("cl100k_base")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	x, err := tokenizer.Vectorize(enc, docs, 16, enc.EosToken())
package tokenizer
