package audio

import (
	"fmt"

	"github.com/bogem/id3v2"

	"github.com/handiism/covertag/internal/model"
)

// Tagger writes ID3 tags to MP3 files.
//
// Tagger uses the id3v2 library to write:
//   - Title (TIT2)
//   - Artist (TPE1)
//   - Album (TALB)
//   - Performer (TPE2)
//   - Cover Art (APIC, front cover)
//
// The existing tag of the file is not parsed: whatever was there before is
// replaced by the frames built from the TagSet.
//
// Example:
//
//	tagger := NewTagger()
//
//	err := tagger.WriteTags(entry.Path, model.NewTagSet(entry, artwork))
//	if err != nil {
//	    log.Printf("Failed to tag %s: %v", entry.Path, err)
//	}
type Tagger struct{}

// NewTagger creates a new Tagger.
func NewTagger() *Tagger {
	return &Tagger{}
}

// WriteTags replaces the ID3 tag of the MP3 file at path.
//
// This method:
//  1. Opens the MP3 file without parsing the existing tag
//  2. Adds the text frames from tags
//  3. Embeds the picture if tags has one
//  4. Saves the new tag in front of the audio data
//
// Returns an error if the file cannot be opened or saved.
func (t *Tagger) WriteTags(path string, tags *model.TagSet) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: false})
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer tag.Close()

	// The old tag may be v2.3, which has no UTF-8 text encoding.
	tag.SetVersion(4)
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetTitle(tags.Title)
	tag.SetArtist(tags.Artist)
	tag.SetAlbum(tags.Album)
	tag.AddTextFrame("TPE2", tag.DefaultEncoding(), tags.Performer)

	if tags.HasPicture() {
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    tag.DefaultEncoding(),
			MimeType:    tags.Picture.MimeType,
			PictureType: tags.Picture.PictureType,
			Description: tags.Picture.Description,
			Picture:     tags.Picture.Data,
		})
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("saving tags to %s: %w", path, err)
	}
	return nil
}
