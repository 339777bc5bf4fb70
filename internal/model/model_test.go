package model

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntry(t *testing.T) {
	tests := []struct {
		name       string
		fileName   string
		wantOK     bool
		wantArtist string
		wantTitle  string
	}{
		{
			name:       "simple",
			fileName:   "Daft Punk - One More Time.mp3",
			wantOK:     true,
			wantArtist: "Daft Punk",
			wantTitle:  "One More Time",
		},
		{
			name:       "parenthesis in title",
			fileName:   "Daft Punk - Discovery (Remastered).mp3",
			wantOK:     true,
			wantArtist: "Daft Punk",
			wantTitle:  "Discovery (Remastered)",
		},
		{
			name:       "extra whitespace is trimmed",
			fileName:   "Air  -  Moon Safari .mp3",
			wantOK:     true,
			wantArtist: "Air",
			wantTitle:  "Moon Safari",
		},
		{
			name:     "no separator",
			fileName: "Unknown.mp3",
		},
		{
			name:     "hyphen in artist",
			fileName: "Jay-Z - Encore.mp3",
		},
		{
			name:     "hyphen in title",
			fileName: "Beck - Loser - Live.mp3",
		},
		{
			name:     "separator without spaces",
			fileName: "Artist-Title.mp3",
		},
		{
			name:     "uppercase extension",
			fileName: "Artist - Title.MP3",
		},
		{
			name:     "other extension",
			fileName: "Artist - Title.flac",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := ParseEntry("/music", tt.fileName)
			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Nil(t, entry)
				return
			}

			assert.Equal(t, tt.wantArtist, entry.Artist)
			assert.Equal(t, tt.wantTitle, entry.Title)
			assert.Equal(t, tt.fileName, entry.FileName)
			assert.Equal(t, filepath.Join("/music", tt.fileName), entry.Path)
		})
	}
}

func TestAlbumFromTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Discovery (Remastered)", "Discovery"},
		{"Homework", "Homework"},
		{"  Alive 2007  ", "Alive 2007"},
		{"Random Access Memories (10th Anniversary) (Deluxe)", "Random Access Memories"},
		{"(Intro)", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, AlbumFromTitle(tt.title))
		})
	}
}

func TestEntry_Query(t *testing.T) {
	entry, ok := ParseEntry("/music", "Daft Punk - Discovery (Remastered).mp3")
	require.True(t, ok)

	assert.Equal(t, "Daft Punk - Discovery (Remastered) album cover", entry.Query("album cover"))
	assert.Equal(t, "Daft Punk - Discovery (Remastered)", entry.Query(""))
	assert.Equal(t, "Discovery", entry.Album())
}

func TestNewTagSet(t *testing.T) {
	entry, ok := ParseEntry("/music", "Daft Punk - Discovery (Remastered).mp3")
	require.True(t, ok)

	t.Run("with artwork", func(t *testing.T) {
		art := []byte{0xFF, 0xD8, 0xFF}
		tags := NewTagSet(entry, art)

		assert.Equal(t, "Discovery (Remastered)", tags.Title)
		assert.Equal(t, "Daft Punk", tags.Artist)
		assert.Equal(t, "Discovery", tags.Album)
		assert.Equal(t, "Daft Punk", tags.Performer)
		require.True(t, tags.HasPicture())
		assert.Equal(t, "image/jpeg", tags.Picture.MimeType)
		assert.Equal(t, PictureTypeFrontCover, tags.Picture.PictureType)
		assert.Equal(t, "Album Art", tags.Picture.Description)
		assert.Equal(t, art, tags.Picture.Data)
	})

	t.Run("without artwork", func(t *testing.T) {
		tags := NewTagSet(entry, nil)

		assert.False(t, tags.HasPicture())
		assert.Equal(t, "Discovery", tags.Album)
	})
}
