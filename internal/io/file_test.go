package ioutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMP3Files(t *testing.T) {
	fs := afero.NewMemMapFs()
	files := []string{
		"/music/Daft Punk - Homework.mp3",
		"/music/Air - Moon Safari.mp3",
		"/music/Unknown.mp3",
		"/music/cover.jpg",
		"/music/Loud - Song.MP3",
		"/music/nested/Deep - Track.mp3",
	}
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fs, f, []byte("data"), 0644))
	}
	require.NoError(t, fs.MkdirAll("/music/Folder - Named.mp3", 0755))

	names, err := ListMP3Files(fs, "/music")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Air - Moon Safari.mp3",
		"Daft Punk - Homework.mp3",
		"Unknown.mp3",
	}, names)
}

func TestListMP3Files_Symlinks(t *testing.T) {
	dir := t.TempDir()
	library := t.TempDir()

	target := filepath.Join(library, "Air - Moon Safari.mp3")
	require.NoError(t, os.WriteFile(target, []byte("data"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(library, "albums"), 0755))

	require.NoError(t, os.Symlink(target, filepath.Join(dir, "Air - Moon Safari.mp3")))
	require.NoError(t, os.Symlink(filepath.Join(library, "gone.mp3"), filepath.Join(dir, "Broken - Link.mp3")))
	require.NoError(t, os.Symlink(filepath.Join(library, "albums"), filepath.Join(dir, "Dir - Link.mp3")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Daft Punk - Homework.mp3"), []byte("data"), 0644))

	names, err := ListMP3Files(afero.NewOsFs(), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Air - Moon Safari.mp3",
		"Daft Punk - Homework.mp3",
	}, names)
}

func TestListMP3Files_EmptyFolder(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/music", 0755))

	names, err := ListMP3Files(fs, "/music")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestListMP3Files_MissingFolder(t *testing.T) {
	_, err := ListMP3Files(afero.NewMemMapFs(), "/nowhere")
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, WriteFile(fs, "/music/music.m3u", []byte("first")))
	require.NoError(t, WriteFile(fs, "/music/music.m3u", []byte("second")))

	data, err := ReadFile(fs, "/music/music.m3u")
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestWriteFile_ReadOnly(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	assert.Error(t, WriteFile(fs, "/music/music.m3u", []byte("data")))
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"normal-file.mp3", "normal-file.mp3"},
		{"file:with:colons.mp3", "file_with_colons.mp3"},
		{"file<with>brackets.mp3", "file_with_brackets.mp3"},
		{"file/with\\slashes.mp3", "file_with_slashes.mp3"},
		{"file|with|pipes.mp3", "file_with_pipes.mp3"},
		{"file?with*wildcards.mp3", "file_with_wildcards.mp3"},
		{"file\"with\"quotes.mp3", "file_with_quotes.mp3"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
		{"trailing spaces   ", "trailing spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFileName(tt.input))
		})
	}
}
