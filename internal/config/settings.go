package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/handiism/covertag/internal/audio"
)

// ErrMissingSearchEngineID is returned by Validate when no search engine id
// is configured for a run that needs to query the image search API.
var ErrMissingSearchEngineID = errors.New("no search engine id configured")

// Settings holds all configuration options.
type Settings struct {
	// Search settings
	SearchEngineID  string `yaml:"search_engine_id"`
	CredentialsPath string `yaml:"credentials_path"`
	QuerySuffix     string `yaml:"query_suffix"`

	// Download settings
	UserAgent       string        `yaml:"user_agent"`
	DownloadTimeout time.Duration `yaml:"download_timeout"` // zero means no timeout

	// Cover art settings. Both off embeds the downloaded bytes unchanged.
	ConvertCoverArtToJPG  bool `yaml:"convert_cover_art_to_jpg"`
	CoverArtInTagsResize  bool `yaml:"cover_art_in_tags_resize"`
	CoverArtInTagsMaxSize int  `yaml:"cover_art_in_tags_max_size"`

	// Playlist settings
	CreatePlaylist bool   `yaml:"create_playlist"`
	PlaylistFormat string `yaml:"playlist_format"` // m3u, pls, wpl, zpl
	M3UExtended    bool   `yaml:"m3u_extended"`

	// DryRun reports what would be done without touching the network or files.
	DryRun bool `yaml:"dry_run"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		CredentialsPath: filepath.Join(".", "service-account.json"),
		QuerySuffix:     "album cover",

		UserAgent:       "covertag",
		DownloadTimeout: 0,

		ConvertCoverArtToJPG:  false,
		CoverArtInTagsResize:  false,
		CoverArtInTagsMaxSize: 1000,

		CreatePlaylist: false,
		PlaylistFormat: "m3u",
		M3UExtended:    true,
	}
}

// Load reads settings from a YAML file.
//
// Values missing from the file keep their defaults. A missing file is not
// an error and yields DefaultSettings.
func Load(fs afero.Fs, path string) (*Settings, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a YAML file.
func (s *Settings) Save(fs afero.Fs, path string) error {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	return afero.WriteFile(fs, path, data, 0644)
}

// Validate checks that the settings are usable for a run.
func (s *Settings) Validate() error {
	if s.DryRun {
		return nil
	}
	if s.SearchEngineID == "" {
		return ErrMissingSearchEngineID
	}
	if s.CredentialsPath == "" {
		return errors.New("no credentials path configured")
	}
	if s.CoverArtInTagsResize && s.CoverArtInTagsMaxSize <= 0 {
		return fmt.Errorf("invalid cover art max size: %d", s.CoverArtInTagsMaxSize)
	}
	if _, ok := audio.ParsePlaylistFormat(s.PlaylistFormat); !ok {
		return fmt.Errorf("unknown playlist format: %q", s.PlaylistFormat)
	}
	return nil
}

// ToPlaylistFormat converts the configured playlist format name.
// Unknown names fall back to M3U.
func (s *Settings) ToPlaylistFormat() audio.PlaylistFormat {
	format, ok := audio.ParsePlaylistFormat(s.PlaylistFormat)
	if !ok {
		return audio.FormatM3U
	}
	return format
}
