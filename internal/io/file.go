package ioutils

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// MP3Extension is the suffix a file name must end with to be picked up.
// The match is case-sensitive.
const MP3Extension = ".mp3"

// ListMP3Files returns the names of the regular files directly inside dir
// whose name ends in ".mp3", sorted by name.
//
// Symlinks are followed; ones pointing at a regular file are listed and
// broken ones are skipped. Directories are skipped even when their name
// ends in ".mp3", and the listing does not recurse.
//
// Example:
//
//	names, err := ListMP3Files(afero.NewOsFs(), "/music")
//	// names = ["Air - Moon Safari.mp3", "Daft Punk - Homework.mp3"]
func ListMP3Files(fs afero.Fs, dir string) ([]string, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, info := range infos {
		name := info.Name()
		if !strings.HasSuffix(name, MP3Extension) {
			continue
		}
		if info.Mode()&os.ModeSymlink != 0 {
			target, err := fs.Stat(filepath.Join(dir, name))
			if err != nil {
				continue
			}
			info = target
		}
		if info.Mode().IsRegular() {
			names = append(names, name)
		}
	}

	sort.Strings(names)
	return names, nil
}

// ReadFile reads a whole file, such as service-account credentials.
func ReadFile(fs afero.Fs, path string) ([]byte, error) {
	return afero.ReadFile(fs, path)
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
//
// Example:
//
//	playlistContent := []byte("#EXTM3U\n...")
//	err := WriteFile(fs, "/music/music.m3u", playlistContent)
func WriteFile(fs afero.Fs, path string, data []byte) error {
	return afero.WriteFile(fs, path, data, 0644)
}

var (
	invalidChars   = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots   = regexp.MustCompile(`\.+$`)
	repeatedSpaces = regexp.MustCompile(`\s+`)
)

// SanitizeFileName removes or replaces characters that are invalid in file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("Song: Part 1/2")     // Returns "Song_ Part 1_2"
//	SanitizeFileName("Track...")           // Returns "Track"
//	SanitizeFileName("Name   with  spaces") // Returns "Name with spaces"
func SanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = repeatedSpaces.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}
