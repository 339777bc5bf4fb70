// Package model defines the core data structures used throughout
// the covertag application.
//
// # Entry
//
// Entry represents an MP3 file whose name follows "Artist - Title.mp3":
//
//	entry, ok := model.ParseEntry("/music", "Daft Punk - One More Time.mp3")
//	if !ok {
//	    // skip, the name doesn't match the expected format
//	}
//	fmt.Println(entry.Path)    // /music/Daft Punk - One More Time.mp3
//	fmt.Println(entry.Album()) // One More Time
//
// # TagSet
//
// TagSet is the ID3 metadata built for one entry:
//
//	tags := model.NewTagSet(entry, coverBytes)
//
// The album is always the part of the title before the first "(", trimmed.
package model
