// Core types for the Quintle game engine.
// Defines:
//   - Mark: per-letter classification of a scored guess.
//   - Game: state for a single in-progress or finished game.

package game

// Mark is the classification of a single guessed letter.
// Possible values:
//   - "correct": letter matches the answer at this position.
//   - "present": letter occurs in the answer, but not at this position,
//     and an occurrence remains unconsumed by earlier matches.
//   - "absent":  letter does not occur in the answer, or every occurrence
//     was already consumed.
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// Game state strings reported by ApplyGuess.
const (
	StatePlaying = "playing"
	StateWon     = "won"
	StateLost    = "lost"
)

// Game holds the state of a single game session.
type Game struct {
	ID       string   // unique game identifier (random hex string)
	Answer   string   // the solution word (always lowercase)
	Rows     int      // maximum number of guesses allowed (typically 6)
	Cols     int      // number of letters per word (typically 5)
	Guesses  []string // guesses made so far (lowercased)
	Finished bool     // true once the game is over (won or lost)
	Won      bool     // true if the game finished with a win
}
