// internal/game/types.go
//
// Core type definitions for the jumble game session.
// Defines:
//   - Outcome: classification of a single word-check attempt.
//   - Session: per-player state for one round of the game.

package game

// Outcome classifies a word-check attempt.
// Possible values:
//   - "accepted":        valid new word, appended to matches.
//   - "duplicate":       the player already found this word.
//   - "not_a_word":      not in the vocabulary.
//   - "not_from_jumble": cannot be spelled from the jumble's letters.
type Outcome string

const (
	OutcomeAccepted      Outcome = "accepted"
	OutcomeDuplicate     Outcome = "duplicate"
	OutcomeNotAWord      Outcome = "not_a_word"
	OutcomeNotFromJumble Outcome = "not_from_jumble"
)

// Session holds the state of one round: the jumble in play, how many words
// the player needs, and the words found so far (append-only until a
// restart replaces the whole session).
type Session struct {
	Jumble      string   `json:"jumble"`
	TargetCount int      `json:"target_count"`
	Matches     []string `json:"matches"`
}

// Complete reports whether the player has reached the target count.
func (s *Session) Complete() bool {
	return len(s.Matches) >= s.TargetCount
}
