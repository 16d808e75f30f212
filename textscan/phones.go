package textscan

import (
	"regexp"

	"github.com/nyaruka/phonenumbers"
)

// Phone is a validated phone number found in text.
type Phone struct {
	Match
	// E164 is the number in canonical +<country><national> form.
	E164 string `json:"e164"`
}

// phoneCandidate over-matches on purpose; every candidate is then
// validated by libphonenumber, which is the authority on what counts.
var phoneCandidate = regexp.MustCompile(`[+(]?\d[\d() ./-]{5,16}\d`)

// Phones extracts valid phone numbers from text. region is the ISO
// 3166-1 alpha-2 country used to interpret numbers without an explicit
// country prefix, e.g. "US".
func Phones(text, region string) []Phone {
	if region == "" {
		region = "US"
	}

	var found []Phone
	for _, pos := range phoneCandidate.FindAllStringIndex(text, -1) {
		candidate := text[pos[0]:pos[1]]

		num, err := phonenumbers.Parse(candidate, region)
		if err != nil || !phonenumbers.IsValidNumber(num) {
			continue
		}
		found = append(found, Phone{
			Match: Match{Text: candidate, Start: pos[0], End: pos[1]},
			E164:  phonenumbers.Format(num, phonenumbers.E164),
		})
	}
	return found
}
