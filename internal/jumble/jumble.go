// internal/jumble/jumble.go
//
// Jumble generation: picks vocabulary words, pools their letters, and
// scrambles the pool into the display string handed to the player.
//
// Selection policy:
//   Walk the vocabulary in a shuffled order, pooling the letters of one
//   word at a time, until the pooled letters admit at least targetCount
//   distinct vocabulary words under the letterbag containment rule. Each
//   pooled word is itself spellable from the pool, so solvability is
//   guaranteed by construction. The pool is then emitted as a uniform
//   Fisher–Yates permutation.
//
// Determinism:
//   A non-nil seed makes word selection and shuffling fully reproducible
//   for a given vocabulary ordering. A nil seed draws a seed from process
//   entropy instead.

package jumble

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"errors"
	"math/rand"

	"github.com/lettergames/jumble-server/internal/letterbag"
	"github.com/lettergames/jumble-server/internal/vocab"
)

// ErrEmptyVocabulary is returned when no jumble can be produced because
// there are no words to draw from.
var ErrEmptyVocabulary = errors.New("jumble: vocabulary is empty")

// Generate produces a scrambled letter string whose letters admit at least
// targetCount distinct words from v. targetCount is clamped to [1, v.Len()].
func Generate(v *vocab.Vocab, targetCount int, seed *int64) (string, error) {
	words := v.AsList()
	if len(words) == 0 {
		return "", ErrEmptyVocabulary
	}
	if targetCount < 1 {
		targetCount = 1
	}
	if targetCount > len(words) {
		targetCount = len(words)
	}

	rng := newRand(seed)

	var pool []rune
	for _, i := range rng.Perm(len(words)) {
		pool = append(pool, []rune(words[i])...)
		if solvable(string(pool), words) >= targetCount {
			break
		}
	}
	// Shuffling after selection keeps the word-picking stream and the
	// permutation stream in a fixed order for seeded reproducibility.
	rng.Shuffle(len(pool), func(a, b int) {
		pool[a], pool[b] = pool[b], pool[a]
	})
	return string(pool), nil
}

// Solvable returns how many distinct vocabulary words can be spelled from
// the letters of jumble. Exported for diagnostics.
func Solvable(v *vocab.Vocab, jumble string) int {
	return solvable(jumble, v.AsList())
}

func solvable(jumble string, words []string) int {
	bag := letterbag.New(jumble)
	n := 0
	for _, w := range words {
		if bag.Contains(w) {
			n++
		}
	}
	return n
}

// newRand returns a seeded source when seed is non-nil, otherwise one
// seeded from crypto entropy.
func newRand(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed))
	}
	var b [8]byte
	_, _ = cryptorand.Read(b[:])
	return rand.New(rand.NewSource(int64(binary.BigEndian.Uint64(b[:]))))
}
