package tokenizer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kalimdor-ml/kalimdor/internal/tensor"
)

// UnknownToken is the ID Vocabulary assigns to words it has not seen.
const UnknownToken int32 = 0

// Vocabulary is a whitespace word-level encoder. IDs start at 1; 0 is
// reserved for unknown words.
type Vocabulary struct {
	vocab   map[string]int32 // word -> ID
	reverse map[int32]string // ID -> word
}

// NewVocabulary assigns IDs 1..n to words in order. Duplicates keep their
// first ID.
func NewVocabulary(words []string) *Vocabulary {
	v := &Vocabulary{
		vocab:   make(map[string]int32, len(words)),
		reverse: make(map[int32]string, len(words)),
	}
	for _, w := range words {
		if _, ok := v.vocab[w]; ok {
			continue
		}
		id := int32(len(v.vocab) + 1) //nolint:gosec // G115: vocabularies stay far below 2^31.
		v.vocab[w] = id
		v.reverse[id] = w
	}
	return v
}

// BuildVocabulary collects every word of a rank-1 string tensor, sorted.
func BuildVocabulary(docs tensor.Value) (*Vocabulary, error) {
	texts, err := texts(docs)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var words []string
	for _, text := range texts {
		for _, w := range strings.Fields(text) {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			words = append(words, w)
		}
	}
	sort.Strings(words)
	return NewVocabulary(words), nil
}

// Encode splits text on whitespace and maps each word to its ID.
func (v *Vocabulary) Encode(text string) ([]int32, error) {
	words := strings.Fields(text)
	ids := make([]int32, len(words))
	for i, w := range words {
		if id, ok := v.vocab[w]; ok {
			ids[i] = id
		} else {
			ids[i] = UnknownToken
		}
	}
	return ids, nil
}

// Decode joins the words of tokens with single spaces.
func (v *Vocabulary) Decode(tokens []int32) (string, error) {
	words := make([]string, len(tokens))
	for i, id := range tokens {
		w, ok := v.reverse[id]
		if !ok {
			return "", fmt.Errorf("unknown token ID %d", id)
		}
		words[i] = w
	}
	return strings.Join(words, " "), nil
}

// Size returns the number of known words.
func (v *Vocabulary) Size() int {
	return len(v.vocab)
}

// Name returns "vocabulary".
func (v *Vocabulary) Name() string {
	return "vocabulary"
}
