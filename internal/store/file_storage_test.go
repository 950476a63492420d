package store

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-stego-client/internal/logger"
	"github.com/MKhiriev/go-stego-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (*LocalFileStorage, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "downloads")
	return NewLocalFileStorage(dir, logger.Nop()), dir
}

// ── Save ────────────────────────────────────────────────────────────────────

func TestSave_WritesFileAndCreatesDir(t *testing.T) {
	s, dir := newTestStorage(t)

	saved, err := s.Save(context.Background(), models.DownloadedFile{Name: "cat.png", Content: []byte("PNG")})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cat.png"), saved.Path)
	assert.Equal(t, int64(3), saved.Size)

	data, err := os.ReadFile(saved.Path)
	require.NoError(t, err)
	assert.Equal(t, "PNG", string(data))
}

func TestSave_NeverOverwrites(t *testing.T) {
	s, dir := newTestStorage(t)
	ctx := context.Background()

	first, err := s.Save(ctx, models.DownloadedFile{Name: "a.wav", Content: []byte("1")})
	require.NoError(t, err)
	second, err := s.Save(ctx, models.DownloadedFile{Name: "a.wav", Content: []byte("2")})
	require.NoError(t, err)
	third, err := s.Save(ctx, models.DownloadedFile{Name: "a.wav", Content: []byte("3")})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "a.wav"), first.Path)
	assert.Equal(t, filepath.Join(dir, "a (1).wav"), second.Path)
	assert.Equal(t, filepath.Join(dir, "a (2).wav"), third.Path)

	data, err := os.ReadFile(first.Path)
	require.NoError(t, err)
	assert.Equal(t, "1", string(data))
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	s, dir := newTestStorage(t)

	_, err := s.Save(context.Background(), models.DownloadedFile{Name: "doc.pdf", Content: []byte("%PDF")})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "doc.pdf", entries[0].Name())
}

func TestSave_StripsDirectories(t *testing.T) {
	s, dir := newTestStorage(t)

	saved, err := s.Save(context.Background(), models.DownloadedFile{Name: "../../evil.mp4", Content: []byte("x")})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "evil.mp4"), saved.Path)
}

func TestSave_EmptyName(t *testing.T) {
	for _, name := range []string{"", "   ", "..", "/"} {
		t.Run(name, func(t *testing.T) {
			s, _ := newTestStorage(t)

			_, err := s.Save(context.Background(), models.DownloadedFile{Name: name, Content: []byte("x")})
			assert.ErrorIs(t, err, ErrEmptyFileName)
		})
	}
}

func TestSave_CancelledContext(t *testing.T) {
	s, dir := newTestStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Save(ctx, models.DownloadedFile{Name: "a.png"})

	assert.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

// ── Stat / Open ─────────────────────────────────────────────────────────────

func TestStat_RegularFile(t *testing.T) {
	s, _ := newTestStorage(t)
	p := filepath.Join(t.TempDir(), "carrier.png")
	require.NoError(t, os.WriteFile(p, []byte("12345"), 0o600))

	got, err := s.Stat(p)

	require.NoError(t, err)
	assert.Equal(t, models.SelectedFile{Path: p, Name: "carrier.png", Size: 5}, got)
}

func TestStat_Directory(t *testing.T) {
	s, _ := newTestStorage(t)

	_, err := s.Stat(t.TempDir())

	assert.ErrorIs(t, err, ErrNotRegularFile)
}

func TestStat_Missing(t *testing.T) {
	s, _ := newTestStorage(t)

	_, err := s.Stat(filepath.Join(t.TempDir(), "nope.png"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStat_EmptyPath(t *testing.T) {
	s, _ := newTestStorage(t)

	_, err := s.Stat("  ")

	assert.ErrorIs(t, err, ErrNotRegularFile)
}

func TestStat_HomeExpansion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "in.wav"), []byte("RIFF"), 0o600))
	s, _ := newTestStorage(t)

	got, err := s.Stat("~/in.wav")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "in.wav"), got.Path)
}

func TestOpen_ReadsContent(t *testing.T) {
	s, _ := newTestStorage(t)
	p := filepath.Join(t.TempDir(), "carrier.txt")
	require.NoError(t, os.WriteFile(p, []byte("hello"), 0o600))

	rc, err := s.Open(context.Background(), models.SelectedFile{Path: p, Name: "carrier.txt"})
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestOpen_Missing(t *testing.T) {
	s, _ := newTestStorage(t)

	_, err := s.Open(context.Background(), models.SelectedFile{Path: filepath.Join(t.TempDir(), "gone")})

	assert.ErrorIs(t, err, os.ErrNotExist)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func TestSanitizeFileName(t *testing.T) {
	tests := map[string]string{
		"a.png":            "a.png",
		" spaced name.wav": "spaced name.wav",
		"dir/sub/x.pdf":    "x.pdf",
		`C:\tmp\y.mp4`:     "y.mp4",
		"..":               "",
		"":                 "",
	}

	for in, want := range tests {
		assert.Equal(t, want, sanitizeFileName(in), "input %q", in)
	}
}
