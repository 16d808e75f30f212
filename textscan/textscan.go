// Package textscan provides linguistic extraction over plain text:
// Unicode tokenization plus detectors for links, phone numbers, dates,
// and street addresses. Detectors return matches in input order with
// byte offsets into the original text.
package textscan

// Match is one detected substring.
type Match struct {
	// Text is the matched substring as it appears in the input.
	Text string `json:"text"`
	// Start and End are byte offsets into the input, half-open.
	Start int `json:"start"`
	End   int `json:"end"`
}
