// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - Listing the MP3 files of a folder
//   - Reading and writing files through afero
//   - Filename sanitization for cross-platform compatibility
//   - Image resizing and format conversion
//
// # File Operations
//
//	fs := afero.NewOsFs()
//
//	// List "*.mp3" files in a folder, sorted by name
//	names, err := ioutils.ListMP3Files(fs, "/music")
//
//	// Write data to file
//	err := ioutils.WriteFile(fs, "/music/music.m3u", []byte("content"))
//
// # Filename Sanitization
//
// Use SanitizeFileName to remove invalid characters from filenames:
//
//	safe := ioutils.SanitizeFileName("Song: Part 1/2") // Returns "Song_ Part 1_2"
//
// # Image Processing
//
// The ImageService handles cover art manipulation:
//
//	svc := ioutils.NewImageService()
//
//	// Resize image to fit within 500x500
//	resized, _ := svc.ResizeImage(ctx, imageData, 500, 500)
//
//	// Convert to JPEG
//	jpeg, _ := svc.ConvertToJPEG(ctx, webpData)
package ioutils
