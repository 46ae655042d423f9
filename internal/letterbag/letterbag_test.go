package letterbag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	tests := []struct {
		name      string
		jumble    string
		candidate string
		want      bool
	}{
		{"self containment", "cart", "cart", true},
		{"permutation of source", "cart", "trac", true},
		{"subset", "cart", "cat", true},
		{"single letter", "cart", "a", true},
		{"empty candidate trivially contained", "cart", "", true},
		{"empty bag rejects non-empty", "", "a", false},
		{"empty bag contains empty", "", "", true},
		{"letter not in bag", "tac", "cats", false},
		{"repeats within counts", "letter", "treet", true},
		{"repeated letter exceeds count", "letter", "tettle", false},
		{"needs two e has one", "ten", "teen", false},
		{"case normalized candidate", "tac", "CAT", true},
		{"case normalized source", "TAC", "cat", true},
		{"punctuation absent from bag", "cart", "c-t", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bag := New(tt.jumble)
			assert.Equal(t, tt.want, bag.Contains(tt.candidate))
		})
	}
}

func TestContainsDoesNotMutate(t *testing.T) {
	bag := New("tac")
	// a session reuses one bag across many attempts
	for i := 0; i < 3; i++ {
		assert.True(t, bag.Contains("cat"))
		assert.False(t, bag.Contains("catt"))
	}
	assert.Equal(t, 3, bag.Size())
}

func TestSize(t *testing.T) {
	assert.Equal(t, 0, New("").Size())
	assert.Equal(t, 6, New("letter").Size())
}
