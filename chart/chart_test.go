package chart

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/morse"
)

func mustOpenFixture(t *testing.T, file string) *os.File {
	t.Helper()
	f, err := os.Open(filepath.Join("..", "testdata", file))
	if err != nil {
		t.Fatalf("cannot open fixture %s: %v", file, err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestReaderEntries(t *testing.T) {
	r := NewReader(strings.NewReader(`
# comment
!name tiny
  .-   A a
-...  B b  Ƀ
`))
	e, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, morse.Entry{Symbol: ".-", Chars: "Aa"}, e)
	e, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, morse.Entry{Symbol: "-...", Chars: "BbɃ"}, e)
	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, "tiny", r.Identifier())
}

func TestReaderErrorsCarryLineNumbers(t *testing.T) {
	tests := []struct {
		chart string
		line  string
	}{
		{".- A\n-...\n", "line 2"},
		{"# x\n\n.-x A\n", "line 3"},
		{"........ A\n", "line 1"},
	}
	for _, tt := range tests {
		_, err := morse.ReadEntries(NewReader(strings.NewReader(tt.chart)))
		require.Error(t, err, "chart %q", tt.chart)
		assert.Contains(t, err.Error(), tt.line)
	}
}

func TestLoadFixture(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "morse")
	defer teardown()

	table, codebook, err := Load("", mustOpenFixture(t, "itu-latin.chart"))
	require.NoError(t, err)
	assert.Equal(t, "Latin (ITU-R M.1677-1)", table.Name())
	assert.Equal(t, 27+10+13, table.Len())

	morseText := codebook.Encode("Hello, World?")
	assert.Equal(t, ".... . .-.. .-.. --- --..-- / .-- --- .-. .-.. -.. ..--..", morseText)
	assert.Equal(t, "HELLO, WORLD?", table.Decode([]byte(morseText)))
	assert.Equal(t, "", codebook.Symbol('!'), "! is not part of ITU-R M.1677-1")
}

func TestLoadRejectsDuplicates(t *testing.T) {
	_, _, err := Load("dup", strings.NewReader(".- A\n.- B\n"))
	assert.Error(t, err)
	_, _, err = Load("dup", strings.NewReader(".- A\n-... A\n"))
	assert.Error(t, err)
}
