package service

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-stego-client/internal/logger"
	"github.com/MKhiriev/go-stego-client/internal/store"
	"github.com/MKhiriev/go-stego-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mp4Header = []byte("\x00\x00\x00\x18ftypmp42\x00\x00\x00\x00mp42isom")

func newTestPreviewSvc(t *testing.T) ClientPreviewService {
	t.Helper()
	return NewClientPreviewService(store.NewLocalFileStorage(t.TempDir(), logger.Nop()), logger.Nop())
}

func writeFile(t *testing.T, name string, data []byte) models.SelectedFile {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return models.SelectedFile{Path: p, Name: name, Size: int64(len(data))}
}

func writePNG(t *testing.T, w, h int) models.SelectedFile {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 40), G: uint8(y * 40), B: 200, A: 255})
		}
	}

	p := filepath.Join(t.TempDir(), "carrier.png")
	f, err := os.Create(p)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	info, err := os.Stat(p)
	require.NoError(t, err)
	return models.SelectedFile{Path: p, Name: "carrier.png", Size: info.Size()}
}

// ── image ────────────────────────────────────────────────────────────────────

func TestPreviewDecode_ImageKeepsSmallImages(t *testing.T) {
	svc := newTestPreviewSvc(t)
	file := writePNG(t, 4, 4)

	got, err := svc.Decode(context.Background(), models.Image, file, models.PreviewBounds{Width: 32, Height: 12})

	require.NoError(t, err)
	assert.Equal(t, "image/png", got.MIMEType)
	assert.Equal(t, 4, got.Width)
	assert.Equal(t, 4, got.Height)
	assert.Equal(t, file.Size, got.Size)
	assert.Equal(t, 8, strings.Count(got.Render, halfBlock))
	assert.Len(t, strings.Split(got.Render, "\n"), 2)
}

func TestPreviewDecode_ImageFitsBounds(t *testing.T) {
	svc := newTestPreviewSvc(t)
	file := writePNG(t, 100, 50)

	got, err := svc.Decode(context.Background(), models.Image, file, models.PreviewBounds{Width: 10, Height: 10})

	require.NoError(t, err)
	lines := strings.Split(got.Render, "\n")
	assert.LessOrEqual(t, len(lines), 10)
	assert.Equal(t, 10, strings.Count(lines[0], halfBlock))
	assert.Equal(t, 100, got.Width)
}

func TestPreviewDecode_ImageDefaultBounds(t *testing.T) {
	svc := newTestPreviewSvc(t)
	file := writePNG(t, 200, 200)

	got, err := svc.Decode(context.Background(), models.Image, file, models.PreviewBounds{})

	require.NoError(t, err)
	lines := strings.Split(got.Render, "\n")
	assert.LessOrEqual(t, len(lines), defaultPreviewHeight)
	assert.LessOrEqual(t, strings.Count(lines[0], halfBlock), defaultPreviewWidth)
}

func TestPreviewDecode_CorruptImage(t *testing.T) {
	svc := newTestPreviewSvc(t)
	file := writeFile(t, "broken.png", []byte("definitely not a png"))

	_, err := svc.Decode(context.Background(), models.Image, file, models.PreviewBounds{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode image")
}

func TestPreviewDecode_MissingFile(t *testing.T) {
	svc := newTestPreviewSvc(t)

	_, err := svc.Decode(context.Background(), models.Image, models.SelectedFile{Path: filepath.Join(t.TempDir(), "x.png")}, models.PreviewBounds{})

	assert.ErrorIs(t, err, os.ErrNotExist)
}

// ── video ────────────────────────────────────────────────────────────────────

func TestPreviewDecode_Video(t *testing.T) {
	svc := newTestPreviewSvc(t)
	file := writeFile(t, "clip.mp4", append(mp4Header, make([]byte, 2048)...))

	got, err := svc.Decode(context.Background(), models.Video, file, models.PreviewBounds{})

	require.NoError(t, err)
	assert.Equal(t, "video/mp4", got.MIMEType)
	assert.Contains(t, got.Render, "clip.mp4")
	assert.Contains(t, got.Render, "2.0 KiB")
	assert.Zero(t, got.Width)
}

func TestPreviewDecode_NotAVideo(t *testing.T) {
	svc := newTestPreviewSvc(t)
	file := writeFile(t, "clip.mp4", []byte("just some text pretending"))

	_, err := svc.Decode(context.Background(), models.Video, file, models.PreviewBounds{})

	assert.ErrorIs(t, err, ErrNotAVideo)
}

func TestPreviewDecode_EmptyVideo(t *testing.T) {
	svc := newTestPreviewSvc(t)
	file := writeFile(t, "empty.mp4", nil)

	_, err := svc.Decode(context.Background(), models.Video, file, models.PreviewBounds{})

	assert.Error(t, err)
}

// ── unsupported ──────────────────────────────────────────────────────────────

func TestPreviewDecode_UnsupportedMedia(t *testing.T) {
	svc := newTestPreviewSvc(t)

	for _, m := range []models.MediaType{models.Audio, models.Document} {
		_, err := svc.Decode(context.Background(), m, models.SelectedFile{}, models.PreviewBounds{})
		assert.ErrorIs(t, err, ErrPreviewUnsupported)
	}
}
