package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func stubReadPassword(t *testing.T, answers ...string) {
	t.Helper()
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	i := 0
	readPassword = func() ([]byte, error) {
		require.Less(t, i, len(answers), "unexpected extra password prompt")
		b := []byte(answers[i])
		i++
		return b, nil
	}
}

func TestPromptLine_TrimsWhitespace(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("  hello world  \n"))

	got, err := promptLine(reader, "name: ", &out)
	require.NoError(t, err)
	require.Equal(t, "hello world", got)
	require.Equal(t, "name: ", out.String())
}

func TestPromptLine_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("no newline"))

	got, err := promptLine(reader, "> ", &out)
	require.NoError(t, err)
	require.Equal(t, "no newline", got)
}

func TestPromptSecretConfirm_Match(t *testing.T) {
	stubReadPassword(t, "s3cret", "s3cret")
	var out bytes.Buffer

	got, err := promptSecretConfirm(&out, "Secret: ")
	require.NoError(t, err)
	require.Equal(t, []byte("s3cret"), got)
}

func TestPromptSecretConfirm_Mismatch(t *testing.T) {
	stubReadPassword(t, "one", "two")
	var out bytes.Buffer

	_, err := promptSecretConfirm(&out, "Secret: ")
	require.Error(t, err)
	require.Contains(t, err.Error(), "do not match")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"whatever\n", false},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.answer)+"_answer", func(t *testing.T) {
			var out bytes.Buffer
			reader := bufio.NewReader(strings.NewReader(tt.answer))
			got, err := confirm(reader, "Proceed?", &out)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
