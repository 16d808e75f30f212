package textscan

import "mvdan.cc/xurls/v2"

// strict requires a scheme, avoiding the false positives relaxed mode
// produces on things like version strings.
var strict = xurls.Strict()

// Links extracts URLs from text.
func Links(text string) []Match {
	idx := strict.FindAllStringIndex(text, -1)

	matches := make([]Match, 0, len(idx))
	for _, pos := range idx {
		matches = append(matches, Match{
			Text:  text[pos[0]:pos[1]],
			Start: pos[0],
			End:   pos[1],
		})
	}
	return matches
}
