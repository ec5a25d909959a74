package main

import (
	"bufio"
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, argv ...string) string {
	t.Helper()
	var args cli
	parser, err := kong.New(&args, kong.Name("sfmtcheck"))
	require.NoError(t, err)
	ctx, err := parser.Parse(argv)
	require.NoError(t, err)

	var buf bytes.Buffer
	out := bufio.NewWriter(&buf)
	require.NoError(t, ctx.Run(out))
	require.NoError(t, out.Flush())
	return buf.String()
}

func TestSampleMatchesTranscript(t *testing.T) {
	want, err := os.ReadFile("../../testdata/sample1234_u64.txt")
	require.NoError(t, err)
	assert.Equal(t, string(want), run(t, "sample", "--seed", "1234", "--count", "10000"))
}

func TestSampleUint32(t *testing.T) {
	got := run(t, "sample", "--seed=1234", "--count=5", "--kind=u32")
	assert.Equal(t, "3440181298\n1564997079\n1510669302\n2930277156\n1452439940\n", got)
}

func TestSampleByArray(t *testing.T) {
	got := run(t, "sample", "--key=4660,22136,39612,57072", "--count=2", "--kind=u32")
	assert.Equal(t, "2920711183\n3885745737\n", got)
}

func TestSampleZeroCount(t *testing.T) {
	assert.Empty(t, run(t, "sample", "--count=0"))
}

func TestInitMatchesDump(t *testing.T) {
	want, err := os.ReadFile("../../testdata/init1234.txt")
	require.NoError(t, err)
	assert.Equal(t, string(want), run(t, "init", "--seed=1234"))
}

func TestInitOtherMEXP(t *testing.T) {
	got := run(t, "init", "--mexp=607", "--seed=1")
	assert.Len(t, strings.Split(strings.TrimSuffix(got, "\n"), "\n"), 5)
}

func TestRecursion(t *testing.T) {
	assert.Equal(t, "33816833 50856450 67896067 1049604\n398459137 1355284994 -363068669 32506884\n", run(t, "recursion"))
}

func TestUnsupportedMEXP(t *testing.T) {
	var args cli
	parser, err := kong.New(&args)
	require.NoError(t, err)
	ctx, err := parser.Parse([]string{"sample", "--mexp=1000"})
	require.NoError(t, err)
	var buf bytes.Buffer
	assert.Error(t, ctx.Run(bufio.NewWriter(&buf)))
}

func TestRejectsUnknownKind(t *testing.T) {
	var args cli
	parser, err := kong.New(&args, kong.Exit(func(int) {}))
	require.NoError(t, err)
	_, err = parser.Parse([]string{"sample", "--kind=u16"})
	assert.Error(t, err)
}
