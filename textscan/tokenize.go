package textscan

import (
	"strings"

	"github.com/clipperhouse/uax29/iterators/filter"
	"github.com/clipperhouse/uax29/sentences"
	"github.com/clipperhouse/uax29/words"
)

// Words splits text into word tokens per Unicode UAX #29 segmentation.
// Whitespace and punctuation-only segments are dropped.
func Words(text string) []string {
	seg := words.NewSegmenter([]byte(text))
	seg.Filter(filter.Wordlike)

	var tokens []string
	for seg.Next() {
		tokens = append(tokens, string(seg.Bytes()))
	}
	return tokens
}

// Sentences splits text into sentences per Unicode UAX #29 segmentation,
// trimming surrounding whitespace from each.
func Sentences(text string) []string {
	seg := sentences.NewSegmenter([]byte(text))

	var result []string
	for seg.Next() {
		s := strings.TrimSpace(string(seg.Bytes()))
		if s != "" {
			result = append(result, s)
		}
	}
	return result
}
