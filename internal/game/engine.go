// internal/game/engine.go
//
// Session lifecycle and the word-check operation.
// Responsibilities:
//   - Start new sessions with a freshly generated jumble and a target
//     count clamped to the vocabulary size.
//   - Classify check attempts (duplicate / not a word / not from jumble /
//     accepted) and apply accepted words to the session.
//   - Track the in-progress → complete transition.
//
// Notes:
//   - Check is total over all string inputs: empty or garbage candidates
//     classify as a rejection outcome, they never return an error. The
//     only error case is a session that was never initialized.
//   - Duplicate-check precedes validity checks. A word sitting in matches
//     is reported as a duplicate even if it would fail the other
//     predicates, so no combination of the three is left unclassified.
package game

import (
	"errors"
	"strings"

	"github.com/lettergames/jumble-server/internal/jumble"
	"github.com/lettergames/jumble-server/internal/letterbag"
	"github.com/lettergames/jumble-server/internal/vocab"
)

// ErrNoJumble is returned when Check is called on a session that has no
// jumble, i.e. the serving layer skipped session initialization.
var ErrNoJumble = errors.New("game: session has no jumble")

// Start creates a fresh session: target count is min(vocabulary size,
// successAt), the jumble is generated from the vocabulary, matches start
// empty. seed semantics follow jumble.Generate.
func Start(v *vocab.Vocab, successAt int, seed *int64) (*Session, error) {
	target := successAt
	if target > v.Len() {
		target = v.Len()
	}
	if target < 1 {
		target = 1
	}
	j, err := jumble.Generate(v, target, seed)
	if err != nil {
		return nil, err
	}
	return &Session{Jumble: j, TargetCount: target, Matches: []string{}}, nil
}

// CheckResult is the outcome of a single check attempt.
type CheckResult struct {
	Outcome  Outcome
	Word     string   // the normalized candidate
	Matches  []string // matches after the attempt
	Complete bool     // true once target count is reached
}

// Check classifies candidate against the session's jumble and the
// vocabulary, appending it to matches when accepted.
//
// Precedence: duplicate, then vocabulary membership, then jumble
// containment. Rejected attempts leave the session untouched, so repeated
// checks of a bad candidate are idempotent.
func (s *Session) Check(v *vocab.Vocab, candidate string) (CheckResult, error) {
	if s == nil || s.Jumble == "" {
		return CheckResult{}, ErrNoJumble
	}
	word := strings.TrimSpace(strings.ToLower(candidate))

	already := false
	for _, m := range s.Matches {
		if m == word {
			already = true
			break
		}
	}

	var outcome Outcome
	switch {
	case already:
		outcome = OutcomeDuplicate
	case !v.Has(word):
		outcome = OutcomeNotAWord
	case !letterbag.New(s.Jumble).Contains(word):
		outcome = OutcomeNotFromJumble
	default:
		outcome = OutcomeAccepted
		s.Matches = append(s.Matches, word)
	}

	return CheckResult{
		Outcome:  outcome,
		Word:     word,
		Matches:  s.Matches,
		Complete: s.Complete(),
	}, nil
}
