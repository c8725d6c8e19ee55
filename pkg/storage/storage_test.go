package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fashionworld/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadWritesUnderBucket(t *testing.T) {
	root := t.TempDir()
	d := storage.NewDiskStorage(root, "http://localhost:8080/uploads/")

	url, err := d.Upload("banners", "hero.jpg", strings.NewReader("jpeg bytes"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/banners/hero.jpg", url)

	data, err := os.ReadFile(filepath.Join(root, "banners", "hero.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))
}

func TestUploadSanitizesPathSegments(t *testing.T) {
	root := t.TempDir()
	d := storage.NewDiskStorage(root, "http://localhost:8080/uploads")

	url, err := d.Upload("../../outside", "../../../etc/evil.jpg", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/outside/evil.jpg", url)

	// The object landed inside the root under the reduced segments.
	_, err = os.Stat(filepath.Join(root, "outside", "evil.jpg"))
	assert.NoError(t, err)

	// Nothing was written above the root.
	_, err = os.Stat(filepath.Join(filepath.Dir(root), "outside"))
	assert.True(t, os.IsNotExist(err))
}
