package model

const (
	// CoverMimeType is the MIME type recorded for every embedded cover.
	CoverMimeType = "image/jpeg"

	// CoverDescription is the description recorded for every embedded cover.
	CoverDescription = "Album Art"

	// PictureTypeFrontCover is the ID3 picture type code for a front cover.
	PictureTypeFrontCover byte = 3
)

// TagSet is the metadata written into a single MP3 file.
//
// A TagSet is built fresh for each file and replaces whatever tag the file
// carried before. Picture is nil when no cover art could be downloaded.
//
// Example:
//
//	tags := NewTagSet(entry, jpegBytes)
//	// tags.Title     = entry.Title
//	// tags.Artist    = entry.Artist
//	// tags.Album     = entry.Album()
//	// tags.Performer = entry.Artist
type TagSet struct {
	// Title is written to the TIT2 frame.
	Title string

	// Artist is written to the TPE1 frame.
	Artist string

	// Album is written to the TALB frame.
	Album string

	// Performer is written to the TPE2 (band/orchestra) frame.
	Performer string

	// Picture is written as an APIC frame when not nil.
	Picture *Picture
}

// Picture describes an attached image.
type Picture struct {
	MimeType    string
	PictureType byte
	Description string
	Data        []byte
}

// NewTagSet builds the tags for an entry. When artwork is empty the
// resulting TagSet has no picture.
func NewTagSet(entry *Entry, artwork []byte) *TagSet {
	tags := &TagSet{
		Title:     entry.Title,
		Artist:    entry.Artist,
		Album:     entry.Album(),
		Performer: entry.Artist,
	}

	if len(artwork) > 0 {
		tags.Picture = &Picture{
			MimeType:    CoverMimeType,
			PictureType: PictureTypeFrontCover,
			Description: CoverDescription,
			Data:        artwork,
		}
	}

	return tags
}

// HasPicture returns true if the tag set carries cover art.
func (t *TagSet) HasPicture() bool {
	return t.Picture != nil
}
