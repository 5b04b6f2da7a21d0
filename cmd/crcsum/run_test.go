package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), append([]string{"-log-level", "error"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestSumFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(a, []byte("123456789"), 0o644))
	require.NoError(t, os.WriteFile(b, nil, 0o644))

	code, out, _ := runCLI(t, a, b)
	assert.Equal(t, 0, code)
	assert.Equal(t, "cbf43926  "+a+"\n00000000  "+b+"\n", out)
}

func TestManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "one"), []byte("one"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "two"), []byte("two"), 0o644))
	out := filepath.Join(t.TempDir(), "sums.crcm")

	code, _, _ := runCLI(t, "-r", "-o", out, dir)
	require.Equal(t, 0, code)

	code, stdout, _ := runCLI(t, "-c", out)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, filepath.Join(dir, "one")+": OK")
	assert.Contains(t, stdout, filepath.Join(dir, "nested", "two")+": OK")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "one"), []byte("uno"), 0o644))
	code, stdout, _ = runCLI(t, "-c", out)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, filepath.Join(dir, "one")+": FAILED")
}

func TestMissingInput(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	code, out, stderr := runCLI(t, missing)
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "crcsum: "+missing+": no such file or directory")
}

func TestMissingInputDoesNotStopOthers(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	missing := filepath.Join(dir, "missing")
	require.NoError(t, os.WriteFile(a, []byte("123456789"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("abc"), 0o644))

	code, out, stderr := runCLI(t, a, missing, b)
	assert.Equal(t, 1, code)
	assert.Equal(t, "cbf43926  "+a+"\n352441c2  "+b+"\n", out)
	assert.Contains(t, stderr, "crcsum: "+missing+":")
}

func TestDirectoryWithoutRecursive(t *testing.T) {
	dir := t.TempDir()
	code, _, stderr := runCLI(t, dir)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "crcsum: "+dir+": is a directory")
}

func TestRecursiveWalksDotGithub(t *testing.T) {
	dir := t.TempDir()
	ci := filepath.Join(dir, ".github", "workflows", "ci.yml")
	require.NoError(t, os.MkdirAll(filepath.Dir(ci), 0o755))
	require.NoError(t, os.WriteFile(ci, []byte("abc"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".git", "HEAD"), []byte("ref"), 0o644))
	top := filepath.Join(dir, "top")
	require.NoError(t, os.WriteFile(top, []byte("123456789"), 0o644))

	code, out, _ := runCLI(t, "-r", dir)
	assert.Equal(t, 0, code)
	assert.Equal(t, "352441c2  "+ci+"\ncbf43926  "+top+"\n", out)
}

func TestBadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))

	code, _, _ := runCLI(t, "-c", path)
	assert.Equal(t, 1, code)
}

func TestInvalidFlags(t *testing.T) {
	code, _, stderr := runCLI(t, "-format", "zstd", "x")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "invalid format")

	code, _, _ = runCLI(t, "-no-such-flag")
	assert.Equal(t, 2, code)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "crcsum.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("scan:\n  recursive: true\n"), 0o644))
	data := filepath.Join(dir, "data")
	require.NoError(t, os.MkdirAll(data, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(data, "f"), []byte("123456789"), 0o644))

	code, out, _ := runCLI(t, "-config", cfg, data)
	assert.Equal(t, 0, code)
	assert.Equal(t, "cbf43926  "+filepath.Join(data, "f")+"\n", out)
}

func TestJSONOutput(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	require.NoError(t, os.WriteFile(a, []byte("123456789"), 0o644))

	code, out, _ := runCLI(t, "-json", a)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, `"checksum":"cbf43926"`)
	assert.Contains(t, out, `"size":9`)
}
