package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/handiism/covertag/internal/model"
)

// Status is the outcome of processing one file.
type Status int

const (
	// StatusTagged means tags and cover art were written.
	StatusTagged Status = iota

	// StatusTaggedWithoutArt means tags were written but the cover could
	// not be downloaded.
	StatusTaggedWithoutArt

	// StatusSkippedUnparsable means the file name is not "Artist - Title.mp3".
	StatusSkippedUnparsable

	// StatusSkippedNoCoverArt means the image search failed or found nothing,
	// so the file was left untouched.
	StatusSkippedNoCoverArt

	// StatusFailed means writing the tags failed.
	StatusFailed

	// StatusDryRun means the file was parsed and reported only.
	StatusDryRun

	// StatusInterrupted means the run was cancelled before the tags were
	// written; the file was left untouched.
	StatusInterrupted
)

func (s Status) String() string {
	switch s {
	case StatusTagged:
		return "tagged"
	case StatusTaggedWithoutArt:
		return "tagged_without_art"
	case StatusSkippedUnparsable:
		return "skipped_unparsable"
	case StatusSkippedNoCoverArt:
		return "skipped_no_cover_art"
	case StatusFailed:
		return "failed"
	case StatusDryRun:
		return "dry_run"
	case StatusInterrupted:
		return "interrupted"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result describes what happened to one file.
type Result struct {
	// FileName is the listed name of the file.
	FileName string

	// Entry is nil when the file name could not be parsed.
	Entry *model.Entry

	// CoverURL is the image search result, if any.
	CoverURL string

	Status Status

	// Err is the underlying error for StatusFailed, and for
	// StatusSkippedNoCoverArt when the search itself failed.
	Err error
}

// Message returns a one-line human readable description of the result.
func (r Result) Message() string {
	switch r.Status {
	case StatusTagged:
		return fmt.Sprintf("Processed: %s", r.FileName)
	case StatusTaggedWithoutArt:
		return fmt.Sprintf("Processed without cover art: %s", r.FileName)
	case StatusSkippedUnparsable:
		return fmt.Sprintf("Skipping %s - doesn't match expected format", r.FileName)
	case StatusSkippedNoCoverArt:
		return fmt.Sprintf("Skipping %s - no cover art found", r.FileName)
	case StatusFailed:
		return fmt.Sprintf("Error processing %s: %v", r.FileName, r.Err)
	case StatusDryRun:
		return fmt.Sprintf("Would tag: %s", r.FileName)
	case StatusInterrupted:
		return fmt.Sprintf("Interrupted before tagging %s", r.FileName)
	default:
		return r.FileName
	}
}

// Summary aggregates the results of a run in processing order.
type Summary struct {
	Results []Result
}

// Add appends a result.
func (s *Summary) Add(r Result) {
	s.Results = append(s.Results, r)
}

// Count returns the number of results with the given status.
func (s *Summary) Count(status Status) int {
	n := 0
	for _, r := range s.Results {
		if r.Status == status {
			n++
		}
	}
	return n
}

// Tagged returns the entries whose tags were written, with or without art.
func (s *Summary) Tagged() []*model.Entry {
	var entries []*model.Entry
	for _, r := range s.Results {
		if r.Status == StatusTagged || r.Status == StatusTaggedWithoutArt {
			entries = append(entries, r.Entry)
		}
	}
	return entries
}

// LogValue implements slog.LogValuer.
func (s *Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("files", len(s.Results)),
		slog.Int(StatusTagged.String(), s.Count(StatusTagged)),
		slog.Int(StatusTaggedWithoutArt.String(), s.Count(StatusTaggedWithoutArt)),
		slog.Int(StatusSkippedUnparsable.String(), s.Count(StatusSkippedUnparsable)),
		slog.Int(StatusSkippedNoCoverArt.String(), s.Count(StatusSkippedNoCoverArt)),
		slog.Int(StatusFailed.String(), s.Count(StatusFailed)),
		slog.Int(StatusDryRun.String(), s.Count(StatusDryRun)),
		slog.Int(StatusInterrupted.String(), s.Count(StatusInterrupted)),
	)
}
