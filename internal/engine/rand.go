package engine

import (
	"crypto/rand"
	"math/big"
)

var mockRandQueue []int

// MockRand queues deterministic results for the next random index picks.
// Each queued value is taken modulo the requested bound.
func MockRand(values []int) {
	mockRandQueue = values
}

// ResetMockRand clears the deterministic queue.
func ResetMockRand() {
	mockRandQueue = nil
}

// randIndex fetches a strongly uniform random index in [0, n) via crypto/rand.
func randIndex(n int) int {
	if n <= 0 {
		return 0
	}
	if len(mockRandQueue) > 0 {
		v := mockRandQueue[0]
		mockRandQueue = mockRandQueue[1:]
		if v < 0 {
			v = -v
		}
		return v % n
	}
	r, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(r.Int64())
}

// shuffleIDs returns a Fisher-Yates permutation of ids. Membership never changes.
func shuffleIDs(ids []string) []string {
	out := cloneIDs(ids)
	for i := len(out) - 1; i > 0; i-- {
		j := randIndex(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// ShuffleCharacters permutes a character list with the same source of
// randomness as bag draws, so setup auto-fill is mockable in tests.
func ShuffleCharacters(chars []Character) []Character {
	out := make([]Character, len(chars))
	copy(out, chars)
	for i := len(out) - 1; i > 0; i-- {
		j := randIndex(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
