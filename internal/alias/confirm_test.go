package alias

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		reply string
		want  Answer
	}{
		{"y", AnswerYes},
		{"Y", AnswerYes},
		{"yes", AnswerYes},
		{"  YES \n", AnswerYes},
		{"n", AnswerNo},
		{"No", AnswerNo},
		{"no\r\n", AnswerNo},
		{"", AnswerInvalid},
		{"yep", AnswerInvalid},
		{"nope", AnswerInvalid},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseAnswer(tt.reply), "reply %q", tt.reply)
	}
}

func TestPromptConfirmer_ReadsOneLine(t *testing.T) {
	var out bytes.Buffer
	c := NewPromptConfirmer(strings.NewReader("y\nn\n"), &out)

	first, err := c.Confirm("overwrite?")
	require.NoError(t, err)
	assert.Equal(t, AnswerYes, first)

	second, err := c.Confirm("overwrite?")
	require.NoError(t, err)
	assert.Equal(t, AnswerNo, second)

	assert.Equal(t, "overwrite?\noverwrite?\n", out.String())
}

func TestPromptConfirmer_LastLineWithoutNewline(t *testing.T) {
	c := NewPromptConfirmer(strings.NewReader("yes"), &bytes.Buffer{})

	answer, err := c.Confirm("q")
	require.NoError(t, err)
	assert.Equal(t, AnswerYes, answer)
}

func TestPromptConfirmer_EOF(t *testing.T) {
	c := NewPromptConfirmer(strings.NewReader(""), &bytes.Buffer{})

	answer, err := c.Confirm("q")
	require.NoError(t, err)
	assert.Equal(t, AnswerInvalid, answer)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestPromptConfirmer_ReadError(t *testing.T) {
	c := NewPromptConfirmer(failingReader{}, &bytes.Buffer{})

	_, err := c.Confirm("q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tty gone")
}
