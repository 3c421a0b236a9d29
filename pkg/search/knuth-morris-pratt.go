package search

// KnuthMorrisPratt algorithm is oftentimes only the best performing when it's used on shorter texts
// or texts with a lot of repetition. Otherwise, Boyer-Moore will beat it most of the time.
type KnuthMorrisPratt struct{}

func NewKnuthMorrisPratt() *KnuthMorrisPratt {
	return new(KnuthMorrisPratt)
}

func (kmp *KnuthMorrisPratt) String() string {
	return "KNUTH-MORRIS-PRATT"
}

func (kmp *KnuthMorrisPratt) FindIndex(text, pattern []byte) int {
	return IndexKnuthMorrisPratt(text, pattern)
}

func (kmp *KnuthMorrisPratt) FindIndexString(text, pattern string) int {
	return IndexKnuthMorrisPratt([]byte(text), []byte(pattern))
}

func (kmp *KnuthMorrisPratt) FindAllIndex(text, pattern []byte) []int {
	return allIndex(kmpFinder[byte], text, pattern)
}

func (kmp *KnuthMorrisPratt) Contains(text, pattern []byte) bool {
	return ContainsKnuthMorrisPratt(text, pattern)
}

// ContainsKnuthMorrisPratt reports whether pattern occurs as a contiguous run of text.
func ContainsKnuthMorrisPratt[T comparable](text, pattern []T) bool {
	return IndexKnuthMorrisPratt(text, pattern) >= 0
}

// IndexKnuthMorrisPratt returns the index of the first occurrence of pattern
// in text, 0 for an empty pattern, or -1 if not present.
func IndexKnuthMorrisPratt[T comparable](text, pattern []T) int {
	return firstIndex(kmpFinder[T], text, pattern)
}

// prefixTable builds the longest prefix suffix table: lps[i] is the length of
// the longest proper prefix of pattern[:i+1] that is also its suffix.
func prefixTable[T comparable](pattern []T) []int {
	lps := make([]int, len(pattern))
	j := 0
	for i := 1; i < len(pattern); i++ {
		for j > 0 && pattern[i] != pattern[j] {
			j = lps[j-1]
		}
		if pattern[i] == pattern[j] {
			j++
		}
		lps[i] = j
	}
	return lps
}

func kmpFinder[T comparable](text, pattern []T, found func(int) bool) {
	n, m := len(text), len(pattern)
	lps := prefixTable(pattern)
	// i never moves backwards
	for i, j := 0, 0; i < n; {
		if text[i] == pattern[j] {
			i++
			j++
			if j < m {
				continue
			}
			if !found(i - j) {
				return
			}
			j = lps[j-1]
			continue
		}
		if j > 0 {
			j = lps[j-1]
		} else {
			i++
		}
	}
}
