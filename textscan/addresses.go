package textscan

import "regexp"

// addressPattern matches the common written form of a US-style street
// address: house number, capitalized street words, and a street suffix,
// optionally followed by a unit designator. Heuristic by nature; there is
// no authoritative grammar for postal addresses in running text.
var addressPattern = regexp.MustCompile(
	`\b\d{1,6} (?:[A-Z][A-Za-z'.-]* ){1,4}` +
		`(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Lane|Ln|Drive|Dr|Court|Ct|Place|Pl|Square|Sq|Way|Terrace|Ter|Parkway|Pkwy)\.?` +
		`(?:,? (?:Apt|Apartment|Suite|Ste|Unit|Floor|Fl)\.? ?#?\w+)?`,
)

// Addresses extracts street addresses from text.
func Addresses(text string) []Match {
	idx := addressPattern.FindAllStringIndex(text, -1)

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
