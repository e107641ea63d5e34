// Word list management for the game engine.
//
// Two lists are maintained:
//   - "answers": canonical solutions (exactly 5 lowercase letters).
//   - "allowed": valid guesses (always a superset of answers).
//
// Initialization behavior (Init):
//  1. If WORDS_ANSWERS_FILE and WORDS_ALLOWED_FILE are both set,
//     load answers from the first and allowed guesses from the second.
//  2. If only WORDS_ALLOWED_FILE is set, load that file and use it for
//     both answers and allowed guesses.
//  3. If neither is set, fall back to the embedded default lists.
//
// Words are normalized to lowercase and filtered to 5 alphabetic letters.
// Initialization runs once (sync.Once).
package words

import (
	"bufio"
	"crypto/rand"
	_ "embed"
	"encoding/json"
	"errors"
	"math/big"
	"os"
	"strings"
	"sync"

	"github.com/samber/lo"
)

//go:embed default_answers.txt
var embeddedAnswers string

//go:embed default_allowed.txt
var embeddedAllowed string

//go:embed hints.json
var embeddedHints []byte

var (
	initOnce   sync.Once
	answers    []string            // canonical answers
	allowedSet map[string]struct{} // answers plus extra guesses
	answersSet map[string]struct{} // answers only
	hintMap    map[string]string   // word -> hint
	initialErr error
)

// hintEntry mirrors one record of hints.json.
type hintEntry struct {
	Word string `json:"word"`
	Hint string `json:"hint"`
}

// Init loads word lists exactly once.
// Returns an error if the answers list ends up empty.
func Init() error {
	initOnce.Do(func() {
		var ansList, allowList []string

		answersPath := os.Getenv("WORDS_ANSWERS_FILE")
		allowedPath := os.Getenv("WORDS_ALLOWED_FILE")

		switch {
		// Case 1: both lists provided
		case answersPath != "" && allowedPath != "":
			var err error
			ansList, err = readWordFile(answersPath)
			if err != nil {
				initialErr = err
				return
			}
			allowList, err = readWordFile(allowedPath)
			if err != nil {
				initialErr = err
				return
			}

		// Case 2: only allowed file provided, use for both
		case answersPath == "" && allowedPath != "":
			var err error
			allowList, err = readWordFile(allowedPath)
			if err != nil {
				initialErr = err
				return
			}
			ansList = allowList

		// Case 3: embedded defaults
		default:
			ansList = normalizeLines(embeddedAnswers)
			allowList = normalizeLines(embeddedAllowed)
		}

		answers = ansList
		answersSet = toSet(ansList)

		// Answers are always allowed guesses too.
		allowedSet = toSet(ansList)
		for _, w := range allowList {
			allowedSet[w] = struct{}{}
		}

		if len(answers) == 0 {
			initialErr = errors.New("words: answers list is empty")
			return
		}

		var entries []hintEntry
		if err := json.Unmarshal(embeddedHints, &entries); err != nil {
			initialErr = err
			return
		}
		hintMap = lo.Associate(entries, func(e hintEntry) (string, string) {
			return strings.ToLower(e.Word), e.Hint
		})
	})
	return initialErr
}

// readWordFile loads one word per line from a file, lowercases, trims,
// and keeps only valid 5-letter alphabetic words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if len(w) == 5 && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// normalizeLines processes an embedded multiline string into a slice of
// valid lowercase 5-letter words. Blank lines and # comments are skipped.
func normalizeLines(s string) []string {
	lines := strings.Split(s, "\n")
	return lo.FilterMap(lines, func(line string, _ int) (string, bool) {
		w := strings.TrimSpace(strings.ToLower(line))
		if w == "" || strings.HasPrefix(w, "#") {
			return "", false
		}
		return w, len(w) == 5 && isAlpha(w)
	})
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// RandomAnswer returns a cryptographically random answer word.
// If answers are not loaded yet or empty, falls back to "crane".
func RandomAnswer() string {
	if len(answers) == 0 {
		return "crane"
	}
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(answers))))
	return answers[nBig.Int64()]
}

// IsAllowed reports whether w is a valid guess.
func IsAllowed(w string) bool {
	_, ok := allowedSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func IsAnswer(w string) bool {
	_, ok := answersSet[strings.ToLower(w)]
	return ok
}

// Answers returns the canonical answer list (all lowercase).
// The daily challenge indexes into this slice, so order is load order.
func Answers() []string {
	return answers
}

// Allowed returns the allowed guess set (all lowercase).
func Allowed() map[string]struct{} {
	return allowedSet
}

// Hint returns the hint for a word, or "" when none is known.
func Hint(w string) string {
	return hintMap[strings.ToLower(w)]
}

// Stats returns counts of loaded words: (answers, allowed).
func Stats() (answersCount int, allowedCount int) {
	return len(answers), len(allowedSet)
}
