package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

// promptLine prints a prompt to w and reads a single line of input from
// reader, with the trailing newline trimmed. If EOF occurs after some
// input was read, the partial line is returned.
func promptLine(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptSecret reads a line from the terminal without echo. The returned
// bytes should be wiped by the caller when no longer needed.
func promptSecret(w io.Writer, prompt string) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return nil, err
	}
	b, err := readPassword()
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// promptSecretConfirm reads a hidden value twice and insists the two
// match, the usual guard against typos in input nobody can see.
func promptSecretConfirm(w io.Writer, prompt string) ([]byte, error) {
	first, err := promptSecret(w, prompt)
	if err != nil {
		return nil, err
	}
	second, err := promptSecret(w, "Repeat to confirm: ")
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(first, second) {
		return nil, errors.New("inputs do not match")
	}
	return first, nil
}

// confirm asks a yes/no question and returns true only on an explicit yes.
func confirm(reader *bufio.Reader, question string, w io.Writer) (bool, error) {
	answer, err := promptLine(reader, question+" [y/N]: ", w)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
