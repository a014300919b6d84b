package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	imageExts = []string{"png", "jpg", "jpeg", "gif", "webp"}
	videoExts = []string{"mp4", "mov", "avi", "webm"}
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewStore(dir, imageExts, videoExts)
	require.NoError(t, err)
	return store, dir
}

func TestSaveMediaAcceptsAllowedExtensions(t *testing.T) {
	store, dir := newTestStore(t)

	url, err := store.SaveMedia("photo.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/photo.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "photo.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	_, err = store.SaveMedia("clip.mp4", strings.NewReader("mp4-bytes"))
	assert.NoError(t, err)
}

func TestSaveMediaRejectsDisallowedExtensions(t *testing.T) {
	store, _ := newTestStore(t)

	cases := []string{"x.exe", "x.sh", "noext", "trailingdot."}
	for _, name := range cases {
		_, err := store.SaveMedia(name, strings.NewReader("data"))
		assert.ErrorIs(t, err, ErrUnsupportedMedia, "filename %q", name)
	}
}

func TestSaveMediaIsCaseInsensitiveOnExtension(t *testing.T) {
	store, _ := newTestStore(t)

	url, err := store.SaveMedia("photo.PNG", strings.NewReader("data"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/"))
}

func TestSaveImageRejectsVideos(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.SaveImage("clip.mp4", strings.NewReader("data"))
	assert.ErrorIs(t, err, ErrUnsupportedMedia)

	_, err = store.SaveImage("face.jpg", strings.NewReader("data"))
	assert.NoError(t, err)
}

func TestSaveMediaSanitizesTraversal(t *testing.T) {
	store, dir := newTestStore(t)

	url, err := store.SaveMedia("../../etc/passwd.png", strings.NewReader("data"))
	require.NoError(t, err)

	name := strings.TrimPrefix(url, "/uploads/")
	assert.NotContains(t, name, "/")
	assert.NotContains(t, name, "..")

	// The file landed inside the uploads directory.
	_, err = os.Stat(filepath.Join(dir, name))
	assert.NoError(t, err)
}

func TestSaveMediaCollisionGetsSuffix(t *testing.T) {
	store, dir := newTestStore(t)

	first, err := store.SaveMedia("same.png", strings.NewReader("first"))
	require.NoError(t, err)
	second, err := store.SaveMedia("same.png", strings.NewReader("second"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasSuffix(second, ".png"))

	// The earlier upload is untouched.
	data, err := os.ReadFile(filepath.Join(dir, "same.png"))
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
}

func TestSaveMediaEmptyAfterSanitize(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.SaveMedia(".png", strings.NewReader("data"))
	assert.ErrorIs(t, err, ErrEmptyFilename)
}
