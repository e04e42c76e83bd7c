package imageio

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riordanpawley/asciiart/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(i % 256)
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.png")
	writePNG(t, path, 12, 7)

	img, err := NewLoader(testLogger()).Load(path)

	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, 7, img.Bounds().Dy())
	assert.Equal(t, color.GrayModel, img.ColorModel())
}

func TestLoader_Load_Errors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0644))

	tests := []struct {
		name   string
		path   string
		wantOp string
	}{
		{"empty path", "", "load"},
		{"missing file", filepath.Join(dir, "missing.png"), "load"},
		{"not an image", garbage, "decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader(testLogger()).Load(tt.path)
			require.Error(t, err)

			var imgErr *domain.ImageError
			require.ErrorAs(t, err, &imgErr)
			assert.Equal(t, tt.wantOp, imgErr.Op)
		})
	}
}

func TestWatcher_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "live.png")
	writePNG(t, path, 4, 4)

	w, err := NewWatcher(testLogger())
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Watch(path))

	msgs := make(chan any, 1)
	go func() { msgs <- w.Wait()() }()

	writePNG(t, path, 8, 8)

	select {
	case msg := <-msgs:
		changed, ok := msg.(ChangedMsg)
		require.True(t, ok, "expected ChangedMsg, got %T", msg)
		abs, _ := filepath.Abs(path)
		assert.Equal(t, abs, changed.Path)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatcher_FailedSwitchClearsPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "live.png")
	writePNG(t, path, 4, 4)

	w, err := NewWatcher(testLogger())
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Watch(path))
	abs, _ := filepath.Abs(path)
	assert.Equal(t, abs, w.Path())

	err = w.Watch(filepath.Join(dir, "missing", "other.png"))
	require.Error(t, err)

	var imgErr *domain.ImageError
	require.ErrorAs(t, err, &imgErr)
	assert.Equal(t, "watch", imgErr.Op)
	assert.Empty(t, w.Path(), "old file is no longer watched")
	assert.False(t, w.matches(path))
}
