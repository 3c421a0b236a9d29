package bench

import "bytes"

// Expect is the outcome a fixture requires from every searcher.
type Expect int

const (
	ExpectAny Expect = iota
	ExpectFound
	ExpectMissing
)

func (e Expect) String() string {
	switch e {
	case ExpectFound:
		return "found"
	case ExpectMissing:
		return "missing"
	}
	return "any"
}

// Fixture is one text and pattern pair to time every searcher against.
type Fixture struct {
	Name    string
	Text    []byte
	Pattern []byte
	Expect  Expect
}

var (
	sampleText  = []byte("This is a sample text for substring search. This text is for testing the algorithms.")
	exampleText = []byte("Another example text to test substring search algorithms.")
	largeText   = bytes.Repeat([]byte("abcabcabcabcabcabcabcabcabcabcabcabcabcabcabcabcabcabcabcabcabc"), 100)
)

// DefaultFixtures returns the stock comparison: short sentences with present
// and absent patterns, and a long, highly repetitive text.
func DefaultFixtures() []Fixture {
	return []Fixture{
		{Name: "sample/substring", Text: sampleText, Pattern: []byte("substring"), Expect: ExpectFound},
		{Name: "example/example", Text: exampleText, Pattern: []byte("example"), Expect: ExpectFound},
		{Name: "sample/nonexistent", Text: sampleText, Pattern: []byte("nonexistent"), Expect: ExpectMissing},
		{Name: "example/randompattern", Text: exampleText, Pattern: []byte("randompattern"), Expect: ExpectMissing},
		{Name: "large/abcabc", Text: largeText, Pattern: []byte("abcabc"), Expect: ExpectFound},
		{Name: "large/abc", Text: largeText, Pattern: []byte("abc"), Expect: ExpectFound},
	}
}
