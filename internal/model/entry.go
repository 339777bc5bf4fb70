package model

import (
	"path/filepath"
	"regexp"
	"strings"
)

// fileNamePattern matches "<artist> - <title>.mp3". Neither part may contain
// a hyphen, otherwise the split between artist and title is ambiguous.
var fileNamePattern = regexp.MustCompile(`^([^-]+) - ([^-]+)\.mp3$`)

// Entry represents one MP3 file found in the scanned folder.
//
// Entry holds everything derived from the file name:
//   - FileName as listed in the folder
//   - Path, the folder joined with FileName
//   - Artist and Title parsed from the name
//
// Example:
//
//	entry, ok := ParseEntry("/music", "Daft Punk - Discovery (Remastered).mp3")
//	// entry.Artist = "Daft Punk"
//	// entry.Title  = "Discovery (Remastered)"
//	// entry.Album() = "Discovery"
type Entry struct {
	// FileName is the base name of the file.
	FileName string

	// Path is the location of the file, always <folder>/<FileName>.
	Path string

	// Artist is the trimmed artist part of the file name.
	Artist string

	// Title is the trimmed title part of the file name.
	Title string
}

// ParseEntry parses a file name of the form "Artist - Title.mp3".
//
// The second return value is false when the name does not match. That is
// a skip condition for the caller, not an error.
func ParseEntry(folder, fileName string) (*Entry, bool) {
	match := fileNamePattern.FindStringSubmatch(fileName)
	if match == nil {
		return nil, false
	}

	return &Entry{
		FileName: fileName,
		Path:     filepath.Join(folder, fileName),
		Artist:   strings.TrimSpace(match[1]),
		Title:    strings.TrimSpace(match[2]),
	}, true
}

// Album returns the album name derived from the title.
func (e *Entry) Album() string {
	return AlbumFromTitle(e.Title)
}

// Query returns the image search query for this entry, for example
// "Daft Punk - Discovery (Remastered) album cover".
func (e *Entry) Query(suffix string) string {
	query := e.Artist + " - " + e.Title
	if suffix = strings.TrimSpace(suffix); suffix != "" {
		query += " " + suffix
	}
	return query
}

// AlbumFromTitle returns the part of the title before the first "(",
// trimmed. A title without parenthesis is its own album name.
//
// Example:
//
//	AlbumFromTitle("Discovery (Remastered)") // Returns "Discovery"
//	AlbumFromTitle("Homework")               // Returns "Homework"
func AlbumFromTitle(title string) string {
	album, _, _ := strings.Cut(title, "(")
	return strings.TrimSpace(album)
}
