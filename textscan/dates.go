package textscan

import (
	"regexp"
	"sort"
	"time"

	"github.com/araddon/dateparse"
)

// Date is a parsed calendar date or timestamp found in text.
type Date struct {
	Match
	// Time is the parsed value. Dates without a time component parse to
	// midnight; dates without a zone parse as UTC.
	Time time.Time `json:"time"`
}

// dateCandidates cover the written forms worth handing to the parser:
// ISO 8601, slash/dot numeric dates, and spelled-out month names.
var dateCandidates = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}(?:[T ]\d{2}:\d{2}(?::\d{2})?(?:Z|[+-]\d{2}:?\d{2})?)?\b`),
	regexp.MustCompile(`\b\d{1,2}[/.]\d{1,2}[/.]\d{4}\b`),
	regexp.MustCompile(`\b(?:January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)\.? \d{1,2}(?:st|nd|rd|th)?,? \d{4}\b`),
	regexp.MustCompile(`\b\d{1,2} (?:January|February|March|April|May|June|July|August|September|October|November|December) \d{4}\b`),
}

// Dates extracts dates and timestamps from text, in input order. Every
// candidate the patterns produce is validated by the parser; unparseable
// candidates are dropped.
func Dates(text string) []Date {
	var found []Date
	for _, re := range dateCandidates {
		for _, pos := range re.FindAllStringIndex(text, -1) {
			candidate := text[pos[0]:pos[1]]
			parsed, err := dateparse.ParseAny(candidate)
			if err != nil {
				continue
			}
			found = append(found, Date{
				Match: Match{Text: candidate, Start: pos[0], End: pos[1]},
				Time:  parsed,
			})
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].Start < found[j].Start })
	return found
}
