package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/spf13/afero"

	"github.com/handiism/covertag/internal/audio"
	"github.com/handiism/covertag/internal/config"
	"github.com/handiism/covertag/internal/http"
	ioutils "github.com/handiism/covertag/internal/io"
	"github.com/handiism/covertag/internal/model"
	"github.com/handiism/covertag/internal/search"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents the outcome of one file.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
	Result  Result
}

// Fetcher downloads the bytes behind a URL.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// TagWriter replaces the tag of the MP3 file at path.
type TagWriter interface {
	WriteTags(path string, tags *model.TagSet) error
}

// Manager runs the tagging pipeline over a folder.
type Manager struct {
	settings     *config.Settings
	fs           afero.Fs
	locator      search.Locator
	fetcher      Fetcher
	tagger       TagWriter
	imageService *ioutils.ImageService
	playlist     *audio.PlaylistCreator
	logger       *slog.Logger

	totalFiles     int32
	processedFiles int32

	onProgress func(ProgressEvent)
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithProgress sets a callback invoked after each file.
func WithProgress(onProgress func(ProgressEvent)) Option {
	return func(m *Manager) {
		m.onProgress = onProgress
	}
}

// WithFetcher replaces the HTTP client used to download covers.
func WithFetcher(fetcher Fetcher) Option {
	return func(m *Manager) {
		m.fetcher = fetcher
	}
}

// WithTagWriter replaces the ID3 tagger.
func WithTagWriter(tagger TagWriter) Option {
	return func(m *Manager) {
		m.tagger = tagger
	}
}

// NewManager creates a new Manager.
//
// locator may be nil for dry runs, which never search.
func NewManager(settings *config.Settings, fs afero.Fs, locator search.Locator, opts ...Option) *Manager {
	m := &Manager{
		settings:     settings,
		fs:           fs,
		locator:      locator,
		fetcher:      http.NewClient(settings.UserAgent, settings.DownloadTimeout),
		tagger:       audio.NewTagger(),
		imageService: ioutils.NewImageService(),
		playlist:     audio.NewPlaylistCreator(settings.ToPlaylistFormat(), settings.M3UExtended),
		logger:       slog.Default(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// NewFromSettings validates settings and creates a Manager with a Google
// image search locator authenticated from the configured credentials file.
// Dry runs get no locator and need no credentials.
func NewFromSettings(ctx context.Context, settings *config.Settings, fs afero.Fs, opts ...Option) (*Manager, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	var locator search.Locator
	if !settings.DryRun {
		creds, err := search.CredentialsFile(fs, settings.CredentialsPath)
		if err != nil {
			return nil, err
		}

		locator, err = search.NewGoogleLocator(ctx, settings.SearchEngineID, creds...)
		if err != nil {
			return nil, err
		}
	}

	return NewManager(settings, fs, locator, opts...), nil
}

// Run processes every MP3 file directly inside folder, one at a time, in
// name order.
//
// Per-file problems never stop the run; they are recorded in the returned
// Summary. An error is returned only when the folder cannot be listed, or
// together with the partial Summary when ctx is cancelled.
func (m *Manager) Run(ctx context.Context, folder string) (*Summary, error) {
	names, err := ioutils.ListMP3Files(m.fs, folder)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", folder, err)
	}

	atomic.StoreInt32(&m.totalFiles, int32(len(names)))
	atomic.StoreInt32(&m.processedFiles, 0)
	m.logger.Info("Found MP3 files", "folder", folder, "count", len(names), "dry_run", m.settings.DryRun)

	summary := &Summary{}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result := m.Process(ctx, folder, name)
		summary.Add(result)
		atomic.AddInt32(&m.processedFiles, 1)
		m.progress(result)
	}

	if err := ctx.Err(); err != nil {
		return summary, err
	}

	if m.settings.CreatePlaylist && !m.settings.DryRun {
		m.writePlaylist(folder, summary.Tagged())
	}

	m.logger.Info("Finished", "folder", folder, "summary", summary)
	return summary, nil
}

// GetProgress returns how many files were processed out of the total
// found by the current run.
func (m *Manager) GetProgress() (processed, total int32) {
	return atomic.LoadInt32(&m.processedFiles), atomic.LoadInt32(&m.totalFiles)
}

// Process runs parse, search, download and write for a single file.
func (m *Manager) Process(ctx context.Context, folder, fileName string) Result {
	entry, ok := model.ParseEntry(folder, fileName)
	if !ok {
		m.logger.Info("Skipping file, doesn't match expected format", "file", fileName)
		return Result{FileName: fileName, Status: StatusSkippedUnparsable}
	}

	if m.settings.DryRun {
		return m.dryRun(entry)
	}

	result := Result{FileName: fileName, Entry: entry}

	coverURL, err := m.findCoverArt(ctx, entry)
	if err != nil {
		if !errors.Is(err, search.ErrNoCoverArt) {
			m.logger.Warn("Error fetching cover art", "file", fileName, "error", err)
			result.Err = err
		}
		m.logger.Info("Skipping file, no cover art found", "file", fileName)
		result.Status = StatusSkippedNoCoverArt
		return result
	}
	result.CoverURL = coverURL

	artwork := m.downloadArtwork(ctx, entry, coverURL)

	// Cancelled during the download: leave the file untouched.
	if err := ctx.Err(); err != nil {
		m.logger.Info("Skipping file, interrupted", "file", fileName)
		result.Status = StatusInterrupted
		result.Err = err
		return result
	}

	tags := model.NewTagSet(entry, artwork)

	if err := m.tagger.WriteTags(entry.Path, tags); err != nil {
		m.logger.Error("Error processing file", "file", fileName, "error", err)
		result.Status = StatusFailed
		result.Err = err
		return result
	}

	if tags.HasPicture() {
		result.Status = StatusTagged
	} else {
		result.Status = StatusTaggedWithoutArt
	}

	m.logger.Info("Processed", "file", fileName, "album", tags.Album, "cover", tags.HasPicture())
	return result
}

func (m *Manager) findCoverArt(ctx context.Context, entry *model.Entry) (string, error) {
	if m.locator == nil {
		return "", errors.New("no cover art locator configured")
	}

	query := entry.Query(m.settings.QuerySuffix)
	m.logger.Debug("Searching cover art", "file", entry.FileName, "query", query)
	return m.locator.FindCoverArt(ctx, query)
}

// downloadArtwork returns nil when the image cannot be downloaded; the
// file is then tagged without a picture.
func (m *Manager) downloadArtwork(ctx context.Context, entry *model.Entry, url string) []byte {
	data, err := m.fetcher.Get(ctx, url)
	if err != nil {
		m.logger.Warn("Error downloading image", "file", entry.FileName, "url", url, "error", err)
		return nil
	}

	m.logger.Debug("Downloaded image", "file", entry.FileName, "url", url, "bytes", len(data))
	return m.prepareArtwork(ctx, entry, data)
}

// prepareArtwork re-encodes the cover as JPEG, resized if configured.
// Undecodable data is embedded as downloaded.
func (m *Manager) prepareArtwork(ctx context.Context, entry *model.Entry, data []byte) []byte {
	if len(data) == 0 {
		return nil
	}

	var (
		out []byte
		err error
	)
	switch {
	case m.settings.CoverArtInTagsResize:
		maxSize := m.settings.CoverArtInTagsMaxSize
		out, err = m.imageService.ResizeImage(ctx, data, maxSize, maxSize)
	case m.settings.ConvertCoverArtToJPG:
		out, err = m.imageService.ConvertToJPEG(ctx, data)
	default:
		return data
	}

	if err != nil {
		m.logger.Debug("Embedding image as downloaded", "file", entry.FileName, "error", err)
		return data
	}

	if format, width, height, err := m.imageService.DecodeConfig(data); err == nil {
		m.logger.Debug("Converted image", "file", entry.FileName, "from", format, "width", width, "height", height)
	}
	return out
}

func (m *Manager) dryRun(entry *model.Entry) Result {
	result := Result{FileName: entry.FileName, Entry: entry, Status: StatusDryRun}

	current, err := audio.ReadTags(m.fs, entry.Path)
	if err != nil {
		m.logger.Warn("Error reading current tags", "file", entry.FileName, "error", err)
		current = &model.TagSet{}
	}

	m.logger.Info(
		"Would tag",
		"file", entry.FileName,
		"query", entry.Query(m.settings.QuerySuffix),
		"title", entry.Title,
		"artist", entry.Artist,
		"album", entry.Album(),
		"current_title", current.Title,
		"current_artist", current.Artist,
		"current_album", current.Album,
		"current_cover", current.HasPicture(),
	)
	return result
}

func (m *Manager) writePlaylist(folder string, entries []*model.Entry) {
	if len(entries) == 0 {
		return
	}

	title := filepath.Base(filepath.Clean(folder))
	name := ioutils.SanitizeFileName(title)
	if name == "" {
		name = "playlist"
	}
	path := filepath.Join(folder, name+m.playlist.Format().Extension())

	content := m.playlist.CreatePlaylist(title, entries)
	if err := ioutils.WriteFile(m.fs, path, []byte(content)); err != nil {
		m.logger.Warn("Error creating playlist", "path", path, "error", err)
		return
	}

	m.logger.Info("Created playlist", "path", path, "entries", len(entries))
}

func (m *Manager) progress(result Result) {
	if m.onProgress == nil {
		return
	}

	var level ProgressLevel
	switch result.Status {
	case StatusTagged:
		level = LevelSuccess
	case StatusTaggedWithoutArt, StatusSkippedNoCoverArt, StatusInterrupted:
		level = LevelWarning
	case StatusFailed:
		level = LevelError
	case StatusSkippedUnparsable:
		level = LevelVerbose
	default:
		level = LevelInfo
	}

	m.onProgress(ProgressEvent{Message: result.Message(), Level: level, Result: result})
}
