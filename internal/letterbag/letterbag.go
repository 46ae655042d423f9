// internal/letterbag/letterbag.go
//
// Letter multiset for containment checks between a candidate word and the
// letters of a jumble. Handles repeated letters correctly: "letter" needs
// two t's and two e's, and a bag with only one of either rejects it.

package letterbag

import "strings"

// LetterBag counts the characters of a source string, case-normalized.
// A bag is read-only after construction; Contains never mutates it, so a
// session can reuse one bag across many attempts.
type LetterBag struct {
	counts map[rune]int
}

// New builds a bag from every character of s (lowercased). The generator
// only produces letters, but any character is counted as-is, so a stray
// space or hyphen in the source simply becomes a countable character.
func New(s string) LetterBag {
	m := make(map[rune]int, len(s))
	for _, r := range strings.ToLower(s) {
		m[r]++
	}
	return LetterBag{counts: m}
}

// Contains reports whether candidate can be spelled from the bag's letters
// without exceeding any letter's available count. The empty string is
// trivially contained.
func (b LetterBag) Contains(candidate string) bool {
	need := make(map[rune]int, len(candidate))
	for _, r := range strings.ToLower(candidate) {
		need[r]++
		if need[r] > b.counts[r] {
			return false
		}
	}
	return true
}

// Size returns the total number of characters in the bag.
func (b LetterBag) Size() int {
	n := 0
	for _, c := range b.counts {
		n += c
	}
	return n
}
