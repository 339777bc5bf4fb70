// Package config provides configuration management for covertag.
//
// This package handles:
//   - Loading and saving settings from YAML files
//   - Default configuration values
//   - Validation before a run starts
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Credentials read from ./service-account.json
//	// Query suffix "album cover"
//	// Cover art converted to JPEG and resized to fit 1000x1000
//
// # Loading from File
//
//	settings, err := config.Load(afero.NewOsFs(), "/path/to/covertag.yaml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Configuration Options
//
// Settings includes options for:
//   - Image search engine id and service-account credentials
//   - Download user agent and timeout
//   - Cover art conversion and resizing
//   - Playlist generation
//   - Dry runs
package config
