package mini

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Prompter asks the user for one line of input.
// io.EOF means the user is gone and the session ends.
type Prompter interface {
	Prompt(message string) (string, error)
}

// Lines reads answers line by line, for pipes and scripted sessions.
type Lines struct {
	out     io.Writer
	scanner *bufio.Scanner
}

// NewLines creates a line prompter.
func NewLines(in io.Reader, out io.Writer) *Lines {
	return &Lines{out: out, scanner: bufio.NewScanner(in)}
}

func (l *Lines) Prompt(message string) (string, error) {
	_, _ = fmt.Fprint(l.out, message)

	if !l.scanner.Scan() {
		if err := l.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return strings.TrimSpace(l.scanner.Text()), nil
}

// Survey prompts through survey's line editor, with history-free editing and Ctrl+C handling.
type Survey struct{}

func (Survey) Prompt(message string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{Message: strings.TrimSpace(message)}, &answer)
	if errors.Is(err, terminal.InterruptErr) {
		return "", io.EOF
	}
	return strings.TrimSpace(answer), err
}
