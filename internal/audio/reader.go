package audio

import (
	"errors"
	"fmt"

	"github.com/dhowden/tag"
	"github.com/spf13/afero"

	"github.com/handiism/covertag/internal/model"
)

// ReadTags reads the current tags of the file at path.
//
// A file without any tag yields an empty TagSet and no error. Only the
// fields covertag writes are returned; the picture MIME type and data are
// taken as stored.
func ReadTags(fs afero.Fs, path string) (*model.TagSet, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		if errors.Is(err, tag.ErrNoTagsFound) {
			return &model.TagSet{}, nil
		}
		return nil, fmt.Errorf("reading tags of %s: %w", path, err)
	}

	tags := &model.TagSet{
		Title:     m.Title(),
		Artist:    m.Artist(),
		Album:     m.Album(),
		Performer: m.AlbumArtist(),
	}

	if pic := m.Picture(); pic != nil {
		tags.Picture = &model.Picture{
			MimeType:    pic.MIMEType,
			Description: pic.Description,
			Data:        pic.Data,
		}
	}

	return tags, nil
}
