package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Force the embedded defaults regardless of the environment.
	os.Unsetenv("WORDS_ANSWERS_FILE")
	os.Unsetenv("WORDS_ALLOWED_FILE")
	if err := Init(); err != nil {
		panic(err)
	}
	m.Run()
}

func TestInit_EmbeddedDefaults(t *testing.T) {
	ans, allowed := Stats()
	assert.Greater(t, ans, 0)
	assert.GreaterOrEqual(t, allowed, ans)

	for _, w := range Answers() {
		assert.Len(t, w, 5, "answer %q", w)
		assert.True(t, IsAllowed(w), "answer %q must be an allowed guess", w)
		assert.True(t, IsAnswer(w))
	}
}

func TestInit_Idempotent(t *testing.T) {
	before, _ := Stats()
	require.NoError(t, Init())
	after, _ := Stats()
	assert.Equal(t, before, after)
}

func TestIsAllowed(t *testing.T) {
	assert.True(t, IsAllowed("crane"))
	assert.True(t, IsAllowed("CRANE"))
	assert.True(t, IsAllowed("trace"), "guess-only words are allowed")
	assert.False(t, IsAllowed("zzzzz"))
	assert.False(t, IsAllowed(""))
}

func TestIsAnswer(t *testing.T) {
	assert.True(t, IsAnswer("crane"))
	assert.False(t, IsAnswer("trace"), "guess-only words are not answers")
	assert.False(t, IsAnswer("zzzzz"))
}

func TestRandomAnswer(t *testing.T) {
	for i := 0; i < 20; i++ {
		w := RandomAnswer()
		assert.True(t, IsAnswer(w), "random answer %q must come from the answer list", w)
	}
}

func TestHint(t *testing.T) {
	assert.NotEmpty(t, Hint("crane"))
	assert.Equal(t, Hint("crane"), Hint("CRANE"))
	assert.Empty(t, Hint("zzzzz"))
	assert.Empty(t, Hint(""))
}

func TestNormalizeLines(t *testing.T) {
	in := "# comment\ncrane\n  TRACE \n\ncat\ntoolong\ncr4ne\nspeed\n"
	got := normalizeLines(in)
	assert.Equal(t, []string{"crane", "trace", "speed"}, got)
}

func TestReadWordFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("CRANE\nshort\nno\nLLAMA\n12345\n"), 0o644))

	got, err := readWordFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "short", "llama"}, got)

	_, err = readWordFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
