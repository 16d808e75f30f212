package textscan_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/hostkit-io/hostkit/textscan"
)

func TestWords(t *testing.T) {
	got := textscan.Words("Hello, world! It's 42.")
	want := []string{"Hello", "world", "It's", "42"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestWordsEmpty(t *testing.T) {
	if got := textscan.Words(""); len(got) != 0 {
		t.Fatalf("expected no tokens, got %v", got)
	}
	if got := textscan.Words("... !!!"); len(got) != 0 {
		t.Fatalf("expected no tokens for punctuation, got %v", got)
	}
}

func TestSentences(t *testing.T) {
	got := textscan.Sentences("First sentence. Second one? Third!")
	if len(got) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %v", len(got), got)
	}
	if got[0] != "First sentence." {
		t.Fatalf("expected trimmed first sentence, got %q", got[0])
	}
}

func TestLinks(t *testing.T) {
	text := "docs at https://example.com/docs and http://foo.example/x, nothing else"
	got := textscan.Links(text)
	if len(got) != 2 {
		t.Fatalf("expected 2 links, got %d: %v", len(got), got)
	}
	for _, m := range got {
		if text[m.Start:m.End] != m.Text {
			t.Fatalf("offsets do not cover text: %+v", m)
		}
	}
	if got[0].Text != "https://example.com/docs" {
		t.Fatalf("unexpected first link: %q", got[0].Text)
	}
}

func TestLinksRequireScheme(t *testing.T) {
	if got := textscan.Links("version 1.2.3 of example.com tooling"); len(got) != 0 {
		t.Fatalf("expected no schemeless matches, got %v", got)
	}
}

func TestPhones(t *testing.T) {
	text := "call (650) 253-0000 or +44 20 7031 3000 tomorrow"
	got := textscan.Phones(text, "US")
	if len(got) != 2 {
		t.Fatalf("expected 2 phones, got %d: %v", len(got), got)
	}
	if got[0].E164 != "+16502530000" {
		t.Fatalf("unexpected E164 for first match: %q", got[0].E164)
	}
	if got[1].E164 != "+442070313000" {
		t.Fatalf("unexpected E164 for second match: %q", got[1].E164)
	}
	for _, p := range got {
		if text[p.Start:p.End] != p.Text {
			t.Fatalf("offsets do not cover text: %+v", p)
		}
	}
}

func TestPhonesRejectInvalid(t *testing.T) {
	if got := textscan.Phones("order 123456789 was shipped", "US"); len(got) != 0 {
		t.Fatalf("expected no phones, got %v", got)
	}
}

func TestDates(t *testing.T) {
	text := "kickoff 2024-03-15, review on March 20, 2024, done by 4/1/2024"
	got := textscan.Dates(text)
	if len(got) != 3 {
		t.Fatalf("expected 3 dates, got %d: %v", len(got), got)
	}

	// In input order.
	if got[0].Text != "2024-03-15" {
		t.Fatalf("unexpected first date: %q", got[0].Text)
	}
	if got[0].Time.Year() != 2024 || got[0].Time.Month() != time.March || got[0].Time.Day() != 15 {
		t.Fatalf("unexpected parsed time: %v", got[0].Time)
	}
	if got[1].Time.Day() != 20 {
		t.Fatalf("unexpected second date: %v", got[1].Time)
	}
	if got[2].Time.Month() != time.April {
		t.Fatalf("unexpected third date: %v", got[2].Time)
	}
}

func TestDatesNone(t *testing.T) {
	if got := textscan.Dates("no temporal content here"); len(got) != 0 {
		t.Fatalf("expected no dates, got %v", got)
	}
}

func TestAddresses(t *testing.T) {
	text := "Ship to 1600 Pennsylvania Avenue then 350 Fifth Ave, Suite 300 please"
	got := textscan.Addresses(text)
	if len(got) != 2 {
		t.Fatalf("expected 2 addresses, got %d: %v", len(got), got)
	}
	if got[0].Text != "1600 Pennsylvania Avenue" {
		t.Fatalf("unexpected first address: %q", got[0].Text)
	}
	if got[1].Text != "350 Fifth Ave, Suite 300" {
		t.Fatalf("unexpected second address: %q", got[1].Text)
	}
}

func TestAddressesNone(t *testing.T) {
	if got := textscan.Addresses("42 is not an address"); len(got) != 0 {
		t.Fatalf("expected no addresses, got %v", got)
	}
}
