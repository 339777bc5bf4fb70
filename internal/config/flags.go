package config

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/spf13/afero"
)

// Flag names shared by the covertag commands.
const (
	FlagSearchEngineID = "search-engine-id"
	FlagCredentials    = "credentials"
	FlagConfig         = "config"
	FlagDryRun         = "dry-run"
	FlagPlaylist       = "playlist"
	FlagPlaylistFormat = "playlist-format"
)

// DefineFlags registers the settings flags on flags. With envflag each one
// can also be given in the environment, e.g. SEARCH_ENGINE_ID.
func DefineFlags(flags *flag.FlagSet) {
	defaults := DefaultSettings()

	flags.String(FlagSearchEngineID, "", "Programmable Search Engine id used for image searches")
	flags.String(FlagCredentials, defaults.CredentialsPath, "Path to the service-account JSON key file")
	flags.String(FlagConfig, "", "Path to a YAML settings file")
	flags.Bool(FlagDryRun, false, "Show what would be tagged without searching, downloading or writing")
	flags.Bool(FlagPlaylist, false, "Create a playlist of the tagged files")
	flags.String(FlagPlaylistFormat, "", "Playlist format: m3u, pls, wpl or zpl")
}

// FromFlags loads the settings file named by the config flag, if any, and
// applies every flag that was given.
//
// A flag counts as given when it was set through the flag set or when its
// value differs from its default, so values assigned directly to the flag,
// as environment loaders may do, are honoured too.
func FromFlags(fs afero.Fs, flags *flag.FlagSet) (*Settings, error) {
	settings := DefaultSettings()
	if f := flags.Lookup(FlagConfig); f != nil && f.Value.String() != "" {
		var err error
		settings, err = Load(fs, f.Value.String())
		if err != nil {
			return nil, err
		}
	}

	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	var applyErr error
	flags.VisitAll(func(f *flag.Flag) {
		value := f.Value.String()
		if !set[f.Name] && value == f.DefValue {
			return
		}
		if err := settings.applyFlag(f.Name, value); err != nil && applyErr == nil {
			applyErr = err
		}
	})
	if applyErr != nil {
		return nil, applyErr
	}

	return settings, nil
}

func (s *Settings) applyFlag(name, value string) error {
	switch name {
	case FlagSearchEngineID:
		s.SearchEngineID = value
	case FlagCredentials:
		s.CredentialsPath = value
	case FlagPlaylistFormat:
		s.PlaylistFormat = value
	case FlagDryRun, FlagPlaylist:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value %q for -%s: %w", value, name, err)
		}
		if name == FlagDryRun {
			s.DryRun = b
		} else {
			s.CreatePlaylist = b
		}
	}
	return nil
}
