package config

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/covertag/internal/audio"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()

	settings, err := Load(fs, "covertag.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := `
search_engine_id: abc123
query_suffix: front cover
download_timeout: 15s
cover_art_in_tags_max_size: 600
playlist_format: pls
`
	require.NoError(t, afero.WriteFile(fs, "covertag.yaml", []byte(content), 0644))

	settings, err := Load(fs, "covertag.yaml")
	require.NoError(t, err)

	assert.Equal(t, "abc123", settings.SearchEngineID)
	assert.Equal(t, "front cover", settings.QuerySuffix)
	assert.Equal(t, 15*time.Second, settings.DownloadTimeout)
	assert.Equal(t, 600, settings.CoverArtInTagsMaxSize)
	assert.Equal(t, audio.FormatPLS, settings.ToPlaylistFormat())

	// untouched keys keep their defaults
	assert.Equal(t, DefaultSettings().CredentialsPath, settings.CredentialsPath)
	assert.False(t, settings.ConvertCoverArtToJPG)
	assert.False(t, settings.CoverArtInTagsResize)
}

func TestLoad_InvalidYAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "covertag.yaml", []byte("query_suffix: [unterminated"), 0644))

	_, err := Load(fs, "covertag.yaml")
	assert.Error(t, err)
}

func TestSettings_Save(t *testing.T) {
	fs := afero.NewMemMapFs()
	settings := DefaultSettings()
	settings.SearchEngineID = "engine"

	require.NoError(t, settings.Save(fs, "conf/covertag.yaml"))

	loaded, err := Load(fs, "conf/covertag.yaml")
	require.NoError(t, err)
	assert.Equal(t, "engine", loaded.SearchEngineID)
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(s *Settings)
		wantErr bool
	}{
		{
			name:   "valid",
			modify: func(s *Settings) { s.SearchEngineID = "cx" },
		},
		{
			name:    "missing search engine id",
			modify:  func(s *Settings) {},
			wantErr: true,
		},
		{
			name:   "dry run needs no search engine id",
			modify: func(s *Settings) { s.DryRun = true },
		},
		{
			name: "missing credentials",
			modify: func(s *Settings) {
				s.SearchEngineID = "cx"
				s.CredentialsPath = ""
			},
			wantErr: true,
		},
		{
			name: "bad max size",
			modify: func(s *Settings) {
				s.SearchEngineID = "cx"
				s.CoverArtInTagsMaxSize = 0
			},
			wantErr: true,
		},
		{
			name: "unknown playlist format",
			modify: func(s *Settings) {
				s.SearchEngineID = "cx"
				s.PlaylistFormat = "xspf"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(s)

			err := s.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_MissingSearchEngineIDSentinel(t *testing.T) {
	assert.ErrorIs(t, DefaultSettings().Validate(), ErrMissingSearchEngineID)
}
