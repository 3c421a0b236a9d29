// Package corpus acquires the texts and patterns fed to the searchers: it
// reads and decodes text files, keeps recently decoded files cached, and
// extracts or synthesizes patterns.
package corpus

import (
	"errors"
	"fmt"
	"math/rand"
	"unicode/utf8"

	"github.com/scottcagno/substr/pkg/util"
	"golang.org/x/text/encoding/charmap"
)

var ErrPatternTooLong = errors.New("corpus: pattern longer than text")

// Encoding names the encoding a text was decoded from.
type Encoding string

const (
	UTF8   Encoding = "utf-8"
	Latin1 Encoding = "iso-8859-1"
)

// Decode returns raw unchanged when it is valid UTF-8. Otherwise raw is
// treated as ISO-8859-1 and transcoded to UTF-8, which cannot fail since
// every byte is a valid Latin-1 character.
func Decode(raw []byte) ([]byte, Encoding, error) {
	if utf8.Valid(raw) {
		return raw, UTF8, nil
	}
	b, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", Latin1, err)
	}
	return b, Latin1, nil
}

// RandomPattern returns a copy of a random contiguous run of n units of text.
func RandomPattern(rng *rand.Rand, text []byte, n int) ([]byte, error) {
	if n > len(text) {
		return nil, fmt.Errorf("%w: %d > %d", ErrPatternTooLong, n, len(text))
	}
	if n <= 0 {
		return []byte{}, nil
	}
	i := rng.Intn(len(text) - n + 1)
	return append([]byte(nil), text[i:i+n]...), nil
}

// AbsentPattern builds an n unit pattern only from byte values that never
// occur in text, so it can never match. It reports false when text uses
// every byte value.
func AbsentPattern(text []byte, n int) ([]byte, bool) {
	var seen [256]bool
	for _, c := range text {
		seen[c] = true
	}
	var unused []byte
	for c := 0; c < len(seen); c++ {
		if !seen[c] {
			unused = append(unused, byte(c))
		}
	}
	if len(unused) == 0 {
		return nil, false
	}
	p := make([]byte, n)
	for i := range p {
		p[i] = unused[i%len(unused)]
	}
	return p, true
}

// Synthetic returns n units of random text over alphabet.
func Synthetic(rng *rand.Rand, n int, alphabet string) []byte {
	return util.RandBytes(rng, n, alphabet)
}
