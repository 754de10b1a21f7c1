package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_CreateOpenDelete(t *testing.T) {
	s := NewLocalStorage(t.TempDir())

	wc, err := s.Create("slides", "picture.jpg")
	require.NoError(t, err)
	_, err = io.Copy(wc, strings.NewReader("payload"))
	require.NoError(t, err)
	require.NoError(t, wc.Close())

	rc, err := s.Open("slides", "picture.jpg")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "payload", string(data))

	require.NoError(t, s.Delete("slides", "picture.jpg"))

	_, err = s.Open("slides", "picture.jpg")
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_FilePathPerCategory(t *testing.T) {
	base := t.TempDir()
	s := NewLocalStorage(base)

	wc, err := s.Create("projects", "demo.png")
	require.NoError(t, err)
	require.NoError(t, wc.Close())

	_, err = os.Stat(filepath.Join(base, "projects", "demo.png"))
	assert.NoError(t, err)
}

func TestLocalStorage_DeleteMissingFile(t *testing.T) {
	s := NewLocalStorage(t.TempDir())

	err := s.Delete("slides", "absent.jpg")
	assert.True(t, os.IsNotExist(err))
}

func TestUniqueFileName(t *testing.T) {
	tests := []struct {
		name      string
		extension string
		suffix    string
	}{
		{name: "with dot", extension: ".jpg", suffix: ".jpg"},
		{name: "without dot", extension: "png", suffix: ".png"},
		{name: "empty extension", extension: "", suffix: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UniqueFileName(tt.extension)
			assert.True(t, strings.HasSuffix(got, tt.suffix))
			digits := strings.TrimSuffix(got, tt.suffix)
			assert.NotEmpty(t, digits)
			for _, r := range digits {
				assert.True(t, r >= '0' && r <= '9')
			}
		})
	}
}

func TestContentTypeByExtension(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{filename: "a.jpg", expected: "image/jpeg"},
		{filename: "a.JPEG", expected: "image/jpeg"},
		{filename: "a.png", expected: "image/png"},
		{filename: "clip.mp4", expected: "video/mp4"},
		{filename: "clip.mov", expected: "video/mp4"},
		{filename: "unknown.xyz", expected: "application/octet-stream"},
		{filename: "noextension", expected: "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.expected, ContentTypeByExtension(tt.filename))
		})
	}
}

func TestSizeWriter(t *testing.T) {
	sw := NewSizeWriter()

	n, err := sw.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = sw.Write([]byte(" world"))
	require.NoError(t, err)
	assert.Equal(t, int64(11), sw.Size())
}
