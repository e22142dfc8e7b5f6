package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solattr/internal/parser"
)

func writeSources(t *testing.T, sources map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, src := range sources {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
	}
	return dir
}

func TestParseFilesKeepsOrder(t *testing.T) {
	dir := writeSources(t, map[string]string{
		"a.sol": "external view onlyOwner",
		"b.sol": "override(A, B)",
		"c.sol": "memory",
		"d.sol": "f(",
	})
	urls := []string{
		filepath.Join(dir, "d.sol"),
		filepath.Join(dir, "a.sol"),
		filepath.Join(dir, "c.sol"),
		filepath.Join(dir, "b.sol"),
	}

	results, err := New().ParseFiles(context.Background(), urls, 2)
	require.NoError(t, err)
	require.Len(t, results, 4)

	for i, res := range results {
		assert.Equal(t, urls[i], res.URL)
	}
	assert.True(t, results[0].Failed())
	assert.True(t, parser.IsUnclosedGroup(&results[0].ParseErrors[0]))
	assert.Len(t, results[1].Nodes, 3)
	assert.Equal(t, "memory", results[2].Nodes[0].String())
	assert.Equal(t, "override(A, B)", results[3].Nodes[0].String())
}

func TestParseFilesMissingSource(t *testing.T) {
	dir := writeSources(t, map[string]string{"a.sol": "public"})

	_, err := New().ParseFiles(context.Background(), []string{
		filepath.Join(dir, "a.sol"),
		filepath.Join(dir, "missing.sol"),
	}, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.sol")
}

func TestParseFilesCancelled(t *testing.T) {
	dir := writeSources(t, map[string]string{"a.sol": "public"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().ParseFiles(ctx, []string{filepath.Join(dir, "a.sol")}, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestParseFilesEmpty(t *testing.T) {
	results, err := New().ParseFiles(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestLoad(t *testing.T) {
	dir := writeSources(t, map[string]string{"a.sol": "pure onlyOwner"})

	src, err := New().Load(context.Background(), filepath.Join(dir, "a.sol"))
	require.NoError(t, err)
	assert.Equal(t, "pure onlyOwner", src)
}

func TestDedupe(t *testing.T) {
	nodes, perrs, _ := parser.ParseSource("a.sol",
		"public onlyOwner override(A) validAmount(1) public onlyOwner(x) override(A) override validAmount(2) memory")
	require.Empty(t, perrs)

	repeats := Dedupe(nodes)
	var rendered []string
	for _, r := range repeats {
		rendered = append(rendered, r.Node.String()+" <- "+r.First.String())
	}

	assert.Equal(t, []string{
		"public <- public",
		"onlyOwner(x) <- onlyOwner",
		"override(A) <- override(A)",
		"validAmount(2) <- validAmount(1)",
	}, rendered)
}

func TestStore(t *testing.T) {
	dir := writeSources(t, map[string]string{"a.sol": "pure  onlyOwner"})
	url := filepath.Join(dir, "a.sol")
	d := New()

	require.NoError(t, d.Store(context.Background(), url, "pure onlyOwner\n"))

	data, err := os.ReadFile(url)
	require.NoError(t, err)
	assert.Equal(t, "pure onlyOwner\n", string(data))
}

func TestParseKeepsComments(t *testing.T) {
	dir := writeSources(t, map[string]string{
		"a.sol": "public // keep me\nonlyOwner /* note */\n",
	})

	res, err := New().Parse(context.Background(), filepath.Join(dir, "a.sol"))
	require.NoError(t, err)
	assert.False(t, res.Failed())
	require.Len(t, res.Nodes, 2)
	require.Len(t, res.Comments, 2)
	assert.Equal(t, 7, res.Comments[0].Start.Offset)
}
