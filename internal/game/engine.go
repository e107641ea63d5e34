// Game engine for a single Quintle session.
// Responsibilities:
//   - Create new games with deterministic dimensions (6x5).
//   - Validate and apply guesses (length, alphabetic, allowed list).
//   - Score guesses with the two-pass duplicate-aware algorithm.
//   - Track state transitions: playing -> won/lost.
//
// Answers and allowed lists are provided by the words package.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/quintle/quintle/internal/words"
)

const (
	defaultRows = 6

	// WordLength is the fixed letter count for answers and guesses.
	WordLength = 5
)

var (
	// ErrGameFinished is returned for guesses against a completed game.
	ErrGameFinished = errors.New("game finished")

	// ErrInvalidGuess is returned when a guess is not exactly five
	// ASCII letters.
	ErrInvalidGuess = errors.New("invalid guess")

	// ErrNotInWordList is returned when a guess is not an allowed word.
	ErrNotInWordList = errors.New("not in word list")
)

// New constructs a new game instance.
// If withAnswer is empty, a random answer is chosen from the words package.
func New(withAnswer string) *Game {
	ans := withAnswer
	if ans == "" {
		ans = words.RandomAnswer()
	}
	return &Game{
		ID:      randomID(),
		Answer:  strings.ToLower(ans),
		Rows:    defaultRows,
		Cols:    WordLength,
		Guesses: []string{},
	}
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns the per-letter marks, the new state string, or an error.
//
// Validation rules:
//   - Game must not be finished.
//   - Guess must be exactly g.Cols letters, alphabetic a-z.
//   - Guess must be present in the allowed list.
//
// State transitions:
//   - All marks correct -> Finished = true, Won = true.
//   - Guess count reaches g.Rows -> Finished = true (loss).
func (g *Game) ApplyGuess(guess string) ([]Mark, string, error) {
	if g.Finished {
		return nil, g.State(), ErrGameFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != g.Cols || !isAlpha(guess) {
		return nil, g.State(), ErrInvalidGuess
	}
	if !words.IsAllowed(guess) {
		return nil, g.State(), ErrNotInWordList
	}

	marks, err := Score(guess, g.Answer)
	if err != nil {
		return nil, g.State(), err
	}
	g.Guesses = append(g.Guesses, guess)

	if AllCorrect(marks) {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return marks, g.State(), nil
}

// State reports a coarse string representation of the current game state.
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Score classifies each letter of guess against answer using the standard
// two-pass algorithm.
//
// Pass 1:
//   - Mark exact matches as correct.
//   - Count remaining (non-correct) answer letters by letter index.
//
// Pass 2:
//   - For each non-correct guess letter, left to right: if remaining count
//     for that letter is positive, mark present and decrement; otherwise
//     mark absent.
//
// Consuming counts only after all exact matches are known keeps the output
// honest for repeated letters: per letter, correct+present marks never
// exceed that letter's occurrences in the answer. Leftmost guess positions
// win ties when the guess repeats a letter more often than the answer does.
//
// Inputs are case-insensitive. Both must be exactly five ASCII letters;
// anything else is a caller bug and fails fast with an error rather than
// being truncated or padded.
func Score(guess, answer string) ([]Mark, error) {
	guess = strings.ToLower(guess)
	answer = strings.ToLower(answer)
	if len(guess) != WordLength || !isAlpha(guess) {
		return nil, fmt.Errorf("score: guess %q: %w", guess, ErrInvalidGuess)
	}
	if len(answer) != WordLength || !isAlpha(answer) {
		return nil, fmt.Errorf("score: answer is not a five-letter word: %w", ErrInvalidGuess)
	}

	res := make([]Mark, WordLength)

	// Letter frequency for the non-correct answer positions (a-z).
	var counts [26]int

	for i := 0; i < WordLength; i++ {
		if guess[i] == answer[i] {
			res[i] = MarkCorrect
		} else {
			counts[idx(answer[i])]++
		}
	}

	for i := 0; i < WordLength; i++ {
		if res[i] == MarkCorrect {
			continue
		}
		j := idx(guess[i])
		if counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkAbsent
		}
	}
	return res, nil
}

// AllCorrect returns true if every mark is MarkCorrect.
func AllCorrect(m []Mark) bool {
	for _, x := range m {
		if x != MarkCorrect {
			return false
		}
	}
	return len(m) > 0
}

// idx maps a lowercase ASCII letter byte to 0..25.
// Assumes inputs are validated to a-z beforehand.
func idx(b byte) int { return int(b - 'a') }

// isAlpha checks that a string consists only of lowercase a-z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
