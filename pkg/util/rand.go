package util

import "math/rand"

const LetterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandBytes returns n units drawn uniformly from alphabet, or from
// LetterBytes when alphabet is empty.
func RandBytes(rng *rand.Rand, n int, alphabet string) []byte {
	if alphabet == "" {
		alphabet = LetterBytes
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return b
}

// RandIntn returns a random int in [min, max).
func RandIntn(rng *rand.Rand, min, max int) int {
	return rng.Intn(max-min) + min
}
