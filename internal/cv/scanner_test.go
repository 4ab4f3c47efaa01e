package cv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReader struct {
	texts map[string]string
}

func (r *stubReader) ReadText(path string) (string, error) {
	text, ok := r.texts[filepath.Base(path)]
	if !ok {
		return "", errors.New("cannot decode")
	}
	return text, nil
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o644))
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "b.docx", "a.txt", "broken.pdf", "notes.md")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.txt"), 0o755))

	reader := &stubReader{texts: map[string]string{
		"a.txt":  "Asha Rao\nasha@rao.dev\n9123456789",
		"b.docx": "Ben Okafor\nben.okafor@mail.ng",
	}}

	got, err := NewScanner(reader, 2).ScanDir(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "a.txt", got[0].SourceID)
	assert.Equal(t, "Asha Rao", got[0].Name)
	assert.Equal(t, "asha@rao.dev", got[0].Email)
	assert.Equal(t, "+91 9123456789", got[0].Phone)

	assert.Equal(t, "b.docx", got[1].SourceID)
	assert.Equal(t, "Ben Okafor", got[1].Name)
	assert.Empty(t, got[1].Phone)

	assert.Equal(t, "broken.pdf", got[2].SourceID)
	assert.Equal(t, ErrNoText, got[2].Error)
}

func TestScanDirMissing(t *testing.T) {
	_, err := NewScanner(&stubReader{}, 0).ScanDir(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "failed to scan resume directory"))
}

func TestScanDirCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.txt")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewScanner(&stubReader{}, 1).ScanDir(ctx, dir)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("CV.PDF"))
	assert.True(t, IsSupported("cv.docx"))
	assert.False(t, IsSupported("cv.png"))
	assert.False(t, IsSupported("docx"))
}

func TestDocReaderPlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\n"), 0o644))

	text, err := NewDocReader().ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\n", text)

	_, err = NewDocReader().ReadText(filepath.Join(t.TempDir(), "cv.png"))
	assert.Error(t, err)
}
