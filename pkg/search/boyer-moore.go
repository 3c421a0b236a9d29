package search

// BoyerMoore uses only the bad character rule. It tends to win on long
// patterns drawn from a large alphabet, where most windows are rejected by
// their last unit and the shift covers a good part of the pattern.
type BoyerMoore struct{}

func NewBoyerMoore() *BoyerMoore {
	return new(BoyerMoore)
}

func (bm *BoyerMoore) String() string {
	return "BOYER-MOORE"
}

func (bm *BoyerMoore) FindIndex(text, pattern []byte) int {
	return IndexBoyerMoore(text, pattern)
}

func (bm *BoyerMoore) FindIndexString(text, pattern string) int {
	return IndexBoyerMoore([]byte(text), []byte(pattern))
}

func (bm *BoyerMoore) FindAllIndex(text, pattern []byte) []int {
	return allIndex(boyerMooreFinder[byte], text, pattern)
}

func (bm *BoyerMoore) Contains(text, pattern []byte) bool {
	return ContainsBoyerMoore(text, pattern)
}

// ContainsBoyerMoore reports whether pattern occurs as a contiguous run of text.
func ContainsBoyerMoore[T comparable](text, pattern []T) bool {
	return IndexBoyerMoore(text, pattern) >= 0
}

// IndexBoyerMoore returns the index of the first occurrence of pattern in
// text, 0 for an empty pattern, or -1 if not present.
func IndexBoyerMoore[T comparable](text, pattern []T) int {
	return firstIndex(boyerMooreFinder[T], text, pattern)
}

// badCharTable maps every unit of the pattern to the rightmost index it
// occupies. Units missing from the pattern are reported as -1.
type badCharTable[T comparable] map[T]int

func newBadCharTable[T comparable](pattern []T) badCharTable[T] {
	bc := make(badCharTable[T], len(pattern))
	for i, u := range pattern {
		bc[u] = i
	}
	return bc
}

func (bc badCharTable[T]) last(u T) int {
	if i, ok := bc[u]; ok {
		return i
	}
	return -1
}

func boyerMooreFinder[T comparable](text, pattern []T, found func(int) bool) {
	n, m := len(text), len(pattern)
	bc := newBadCharTable(pattern)
	for s := 0; s <= n-m; {
		j := m - 1
		for j >= 0 && pattern[j] == text[s+j] {
			j--
		}
		if j >= 0 {
			s += max(1, j-bc.last(text[s+j]))
			continue
		}
		if !found(s) {
			return
		}
		// align the unit just past the window with its last occurrence
		if s+m < n {
			s += max(1, m-bc.last(text[s+m]))
		} else {
			s++
		}
	}
}
