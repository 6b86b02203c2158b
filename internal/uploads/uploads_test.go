package uploads

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupStore(t *testing.T) *Store {
	store, err := NewStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	return store
}

// fileHeader builds a real multipart.FileHeader the way gin hands it to the
// upload handlers.
func fileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["file"][0]
}

func TestStore_SaveGeneratesDistinctNames(t *testing.T) {
	store := setupStore(t)

	p1, err := store.Save(fileHeader(t, "photo.jpg", "one"))
	assert.NoError(t, err)
	p2, err := store.Save(fileHeader(t, "photo.jpg", "two"))
	assert.NoError(t, err)

	assert.NotEqual(t, p1, p2)
	assert.True(t, strings.HasPrefix(p1, PublicPrefix+"/"))
	assert.True(t, strings.HasSuffix(p1, ".jpg"))

	// both files landed on disk with the stored content
	data, err := os.ReadFile(filepath.Join(store.BasePath(), strings.TrimPrefix(p1, PublicPrefix+"/")))
	assert.NoError(t, err)
	assert.Equal(t, "one", string(data))
}

func TestStore_SavePreservesExtensionLowercased(t *testing.T) {
	store := setupStore(t)

	p, err := store.Save(fileHeader(t, "IMG_0042.JPEG", "x"))
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(p, ".jpeg"))
}

func TestStore_OwnerPortraitSingleSlot(t *testing.T) {
	store := setupStore(t)

	assert.Empty(t, store.OwnerPortraitPath())

	p1, err := store.SaveOwnerPortrait(fileHeader(t, "me.png", "first"))
	assert.NoError(t, err)
	assert.Equal(t, PublicPrefix+"/"+OwnerPortraitName, p1)

	// second upload overwrites the same file, last writer wins
	p2, err := store.SaveOwnerPortrait(fileHeader(t, "other.jpg", "second"))
	assert.NoError(t, err)
	assert.Equal(t, p1, p2)

	data, err := os.ReadFile(filepath.Join(store.BasePath(), OwnerPortraitName))
	assert.NoError(t, err)
	assert.Equal(t, "second", string(data))

	assert.Equal(t, p1, store.OwnerPortraitPath())
}

func TestStore_RemoveBestEffort(t *testing.T) {
	store := setupStore(t)

	p, err := store.Save(fileHeader(t, "gone.jpg", "bye"))
	assert.NoError(t, err)

	store.Remove(p)
	_, statErr := os.Stat(filepath.Join(store.BasePath(), strings.TrimPrefix(p, PublicPrefix+"/")))
	assert.True(t, os.IsNotExist(statErr))

	// removing again, or removing junk, never panics or errors out
	store.Remove(p)
	store.Remove("")
	store.Remove("/somewhere/else.jpg")
	store.Remove(PublicPrefix + "/../../etc/passwd")
}

func TestStore_RemoveAll(t *testing.T) {
	store := setupStore(t)

	p1, _ := store.Save(fileHeader(t, "a.jpg", "a"))
	p2, _ := store.Save(fileHeader(t, "b.jpg", "b"))

	store.RemoveAll([]string{p1, p2, "/uploads/never-existed.jpg"})

	entries, err := os.ReadDir(store.BasePath())
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestIsValidName(t *testing.T) {
	assert.True(t, isValidName("1699999_ab12cd34.jpg"))
	assert.True(t, isValidName(OwnerPortraitName))
	assert.False(t, isValidName(""))
	assert.False(t, isValidName("../escape.jpg"))
	assert.False(t, isValidName("/abs/path.jpg"))
	assert.False(t, isValidName("weird name.jpg"))
}
