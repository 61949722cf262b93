package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentsplit/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSplitCmd_Lines(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "Hello world. How are you?")
	b := writeFile(t, dir, "b.txt", "Fine")

	out, err := execute(t, "split", a, b)

	require.NoError(t, err)
	assert.Equal(t, "Hello world.\nHow are you?\nFine\n", out)
}

func TestSplitCmd_MathOnlyJSON(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "Hello world. <MATH>E=mc^2</MATH>.")
	b := writeFile(t, dir, "b.txt", "No math here.")

	out, err := execute(t, "split", "--math-only", "--json", a, b)

	require.NoError(t, err)
	assert.JSONEq(t, `{"sentences":["<MATH>E=mc^2</MATH>."]}`, out)
}

func TestSplitCmd_DecodeError(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.txt", "\xff\xfe")

	_, err := execute(t, "split", bad)

	assert.ErrorIs(t, err, domain.ErrDecode)
}

func TestSplitCmd_UnknownEngine(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "A.")

	_, err := execute(t, "split", "--engine", "nope", a)

	assert.ErrorIs(t, err, domain.ErrUnknownSplitter)
}

func TestSplitCmd_RequiresFiles(t *testing.T) {
	_, err := execute(t, "split")
	assert.Error(t, err)
}

func TestSplitCmd_CSV(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "One. <math>2</math>.")
	b := writeFile(t, dir, "b.txt", "Three.")

	out, err := execute(t, "split", "--csv", a, b)

	require.NoError(t, err)
	assert.Equal(t,
		"Document,Sentence Number,Sentence,Math\n"+
			"a.txt,1,One.,No\n"+
			"a.txt,2,<math>2</math>.,Yes\n"+
			"b.txt,1,Three.,No\n",
		out)
}

func TestSplitCmd_CSVAndJSONConflict(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "A.")

	_, err := execute(t, "split", "--csv", "--json", a)

	assert.Error(t, err)
}
