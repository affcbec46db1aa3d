package alias

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Answer is the normalized reply to a confirmation prompt.
type Answer int

const (
	// AnswerNo leaves the existing alias untouched.
	AnswerNo Answer = iota
	// AnswerYes overwrites the existing alias.
	AnswerYes
	// AnswerInvalid is anything other than y/yes/n/no. It is treated as no.
	AnswerInvalid
)

// Confirmer asks the user whether an existing alias may be overwritten.
type Confirmer interface {
	Confirm(question string) (Answer, error)
}

// ParseAnswer maps a raw reply to an Answer, ignoring case and surrounding
// whitespace.
func ParseAnswer(reply string) Answer {
	switch strings.ToLower(strings.TrimSpace(reply)) {
	case "y", "yes":
		return AnswerYes
	case "n", "no":
		return AnswerNo
	default:
		return AnswerInvalid
	}
}

// PromptConfirmer writes the question to W and reads one line from R.
type PromptConfirmer struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewPromptConfirmer returns a Confirmer reading replies from r and printing
// prompts to w.
func NewPromptConfirmer(r io.Reader, w io.Writer) *PromptConfirmer {
	return &PromptConfirmer{reader: bufio.NewReader(r), w: w}
}

// Confirm prints question and reads a single line. A closed input with no
// reply counts as invalid.
func (p *PromptConfirmer) Confirm(question string) (Answer, error) {
	fmt.Fprintln(p.w, question)
	line, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return AnswerInvalid, nil
		}
		return AnswerInvalid, fmt.Errorf("reading confirmation: %w", err)
	}
	return ParseAnswer(line), nil
}
