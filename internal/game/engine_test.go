package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quintle/quintle/internal/words"
)

func TestMain(m *testing.M) {
	if err := words.Init(); err != nil {
		panic(err)
	}
	m.Run()
}

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		guess  string
		answer string
		want   []Mark
	}{
		{
			name:   "exact match is all correct",
			guess:  "crane",
			answer: "crane",
			want:   []Mark{MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect},
		},
		{
			name:   "trace against crane",
			guess:  "trace",
			answer: "crane",
			want:   []Mark{MarkAbsent, MarkCorrect, MarkCorrect, MarkPresent, MarkCorrect},
		},
		{
			// The answer has two e's and pass 1 consumes neither,
			// so both guessed e's mark present.
			name:   "erase against speed",
			guess:  "erase",
			answer: "speed",
			want:   []Mark{MarkPresent, MarkAbsent, MarkAbsent, MarkPresent, MarkPresent},
		},
		{
			// Leftmost guess positions win ties for repeated letters.
			// llama carries one non-correct l after the exact match at
			// position 1, so only the first spare l in the guess scores.
			name:   "alloy against llama",
			guess:  "alloy",
			answer: "llama",
			want:   []Mark{MarkPresent, MarkCorrect, MarkPresent, MarkAbsent, MarkAbsent},
		},
		{
			name:   "no shared letters is all absent",
			guess:  "spilt",
			answer: "crane",
			want:   []Mark{MarkAbsent, MarkAbsent, MarkAbsent, MarkAbsent, MarkAbsent},
		},
		{
			// crane has one e, so only the leftmost spare e scores.
			name:   "guess repeats a letter the answer has once",
			guess:  "beech",
			answer: "crane",
			want:   []Mark{MarkAbsent, MarkPresent, MarkAbsent, MarkPresent, MarkAbsent},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Score(tt.guess, tt.answer)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScore_CaseInsensitive(t *testing.T) {
	upper, err := Score("TRACE", "CRANE")
	require.NoError(t, err)
	lower, err := Score("trace", "crane")
	require.NoError(t, err)
	assert.Equal(t, lower, upper)

	mixed, err := Score("TrAcE", "cRaNe")
	require.NoError(t, err)
	assert.Equal(t, lower, mixed)
}

func TestScore_Idempotent(t *testing.T) {
	first, err := Score("erase", "speed")
	require.NoError(t, err)
	second, err := Score("erase", "speed")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// Per letter, correct+present marks must never exceed that letter's
// occurrence count in the answer.
func TestScore_LetterCountInvariant(t *testing.T) {
	pairs := [][2]string{
		{"alloy", "llama"},
		{"erase", "speed"},
		{"geese", "crane"},
		{"mamma", "llama"},
		{"speed", "erase"},
		{"llama", "alloy"},
	}
	for _, p := range pairs {
		guess, answer := p[0], p[1]
		marks, err := Score(guess, answer)
		require.NoError(t, err)

		consumed := map[byte]int{}
		for i, m := range marks {
			if m == MarkCorrect || m == MarkPresent {
				consumed[guess[i]]++
			}
		}
		for letter, n := range consumed {
			have := strings.Count(answer, string(letter))
			assert.LessOrEqual(t, n, have,
				"guess %q vs answer %q: letter %q marked %d times but occurs %d times",
				guess, answer, string(letter), n, have)
		}
	}
}

func TestScore_FailsFastOnMalformedInput(t *testing.T) {
	cases := []struct {
		name   string
		guess  string
		answer string
	}{
		{"short guess", "cat", "crane"},
		{"long guess", "cranes", "crane"},
		{"empty guess", "", "crane"},
		{"non-alphabetic guess", "cr4ne", "crane"},
		{"guess with space", "cr ne", "crane"},
		{"short answer", "crane", "cat"},
		{"non-alphabetic answer", "crane", "cr4ne"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			marks, err := Score(tt.guess, tt.answer)
			require.ErrorIs(t, err, ErrInvalidGuess)
			assert.Nil(t, marks)
		})
	}
}

func TestAllCorrect(t *testing.T) {
	marks, err := Score("crane", "crane")
	require.NoError(t, err)
	assert.True(t, AllCorrect(marks))

	marks, err = Score("trace", "crane")
	require.NoError(t, err)
	assert.False(t, AllCorrect(marks))

	assert.False(t, AllCorrect(nil))
}

func TestNew(t *testing.T) {
	g := New("CRANE")
	assert.Equal(t, "crane", g.Answer)
	assert.Equal(t, 6, g.Rows)
	assert.Equal(t, 5, g.Cols)
	assert.Len(t, g.ID, 16)
	assert.Equal(t, StatePlaying, g.State())

	random := New("")
	assert.True(t, words.IsAnswer(random.Answer))
	assert.NotEqual(t, g.ID, random.ID)
}

func TestApplyGuess_WinAndFinish(t *testing.T) {
	g := New("crane")

	marks, state, err := g.ApplyGuess("trace")
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, state)
	assert.False(t, AllCorrect(marks))

	marks, state, err = g.ApplyGuess("CRANE")
	require.NoError(t, err)
	assert.Equal(t, StateWon, state)
	assert.True(t, AllCorrect(marks))
	assert.True(t, g.Finished)
	assert.True(t, g.Won)

	_, state, err = g.ApplyGuess("slate")
	require.ErrorIs(t, err, ErrGameFinished)
	assert.Equal(t, StateWon, state)
	assert.Len(t, g.Guesses, 2)
}

func TestApplyGuess_LossAfterMaxRows(t *testing.T) {
	g := New("crane")
	wrong := []string{"slate", "stare", "store", "share", "shore", "spare"}
	for i, w := range wrong {
		_, state, err := g.ApplyGuess(w)
		require.NoError(t, err, "guess %d", i)
		if i < len(wrong)-1 {
			assert.Equal(t, StatePlaying, state)
		} else {
			assert.Equal(t, StateLost, state)
		}
	}
	assert.True(t, g.Finished)
	assert.False(t, g.Won)
}

func TestApplyGuess_Validation(t *testing.T) {
	g := New("crane")

	_, _, err := g.ApplyGuess("cat")
	assert.ErrorIs(t, err, ErrInvalidGuess)

	_, _, err = g.ApplyGuess("cr4ne")
	assert.ErrorIs(t, err, ErrInvalidGuess)

	_, _, err = g.ApplyGuess("zzzzz")
	assert.ErrorIs(t, err, ErrNotInWordList)

	// Rejected guesses do not consume a row.
	assert.Empty(t, g.Guesses)
	assert.Equal(t, StatePlaying, g.State())
}
