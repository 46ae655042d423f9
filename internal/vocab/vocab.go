// internal/vocab/vocab.go
//
// Vocabulary store for the jumble game.
//
// Responsibilities:
//   - Load the word list once at startup, from a configured file or the
//     embedded default.
//   - Maintain a set for membership lookups and a stable ordered list for
//     jumble generation.
//
// Constraints:
//   • Words are normalized to lowercase and must be alphabetic a–z.
//   • Duplicate entries are dropped, first occurrence wins, so the list
//     and the set always agree on size.
//   • A Vocab is immutable after construction and safe to share across
//     request handlers without locking.

package vocab

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lettergames/jumble-server/assets"
)

// ErrEmpty is returned when a vocabulary source yields no usable words.
// It is fatal at startup: the game cannot run without words.
var ErrEmpty = errors.New("vocab: no usable words in source")

// Vocab is the immutable set of valid target words.
type Vocab struct {
	words []string            // stable load order, deduplicated
	set   map[string]struct{} // lowercase membership set
}

// New builds a Vocab from raw words: lowercases, trims, drops anything
// non-alphabetic, deduplicates preserving first-seen order.
func New(raw []string) (*Vocab, error) {
	v := &Vocab{set: make(map[string]struct{}, len(raw))}
	for _, w := range raw {
		w = strings.TrimSpace(strings.ToLower(w))
		if w == "" || !isAlpha(w) {
			continue
		}
		if _, ok := v.set[w]; ok {
			continue
		}
		v.set[w] = struct{}{}
		v.words = append(v.words, w)
	}
	if len(v.words) == 0 {
		return nil, ErrEmpty
	}
	return v, nil
}

// Load reads one word per line from path. Blank lines and '#' comments are
// skipped. An unreadable or empty source is an error.
func Load(path string) (*Vocab, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: open %s: %w", path, err)
	}
	defer f.Close()

	var raw []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		raw = append(raw, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("vocab: read %s: %w", path, err)
	}
	return New(raw)
}

// Default loads the embedded fallback vocabulary, used when no file is
// configured (ensures the server runs out of the box).
func Default() (*Vocab, error) {
	raw, err := assets.VocabList()
	if err != nil {
		return nil, fmt.Errorf("vocab: embedded list: %w", err)
	}
	return New(raw)
}

// Has reports whether w is a vocabulary word. The query is normalized the
// same way load-time words are.
func (v *Vocab) Has(w string) bool {
	_, ok := v.set[strings.TrimSpace(strings.ToLower(w))]
	return ok
}

// AsList returns the words in load order. The returned slice is a copy, so
// callers cannot disturb the shared instance.
func (v *Vocab) AsList() []string {
	out := make([]string, len(v.words))
	copy(out, v.words)
	return out
}

// Len returns the number of distinct words.
func (v *Vocab) Len() int { return len(v.words) }

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
