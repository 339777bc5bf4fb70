// Package audio provides audio file manipulation services including
// ID3 tag writing, tag reading and playlist generation.
//
// # ID3 Tagging
//
// Use the Tagger to replace the ID3 tag of an MP3 file:
//
//	tagger := audio.NewTagger()
//	err := tagger.WriteTags(entry.Path, model.NewTagSet(entry, artworkBytes))
//
// The tagger writes:
//   - Title, Artist, Album
//   - Performer (band/orchestra frame)
//   - Cover Art (embedded in MP3 as front cover)
//
// # Reading Tags
//
// ReadTags reports the current tags of a file through any afero.Fs:
//
//	tags, err := audio.ReadTags(afero.NewOsFs(), "/music/Artist - Title.mp3")
//
// # Playlist Generation
//
// Generate playlists in various formats:
//
//	creator := audio.NewPlaylistCreator(audio.FormatM3U, true) // extended M3U
//	content := creator.CreatePlaylist("Folder", entries)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
//   - WPL (Windows Media Player)
//   - ZPL (Zune Media Player)
package audio
