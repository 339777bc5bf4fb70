package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	ioutils "github.com/handiism/covertag/internal/io"
)

// CSEScope is the OAuth scope granting access to the Custom Search API.
const CSEScope = "https://www.googleapis.com/auth/cse"

// ErrNoCoverArt is returned when a search succeeds but yields no image.
var ErrNoCoverArt = errors.New("no cover art found")

// Locator finds the URL of an album cover for a free-text query.
type Locator interface {
	// FindCoverArt returns the URL of the best image for query, or
	// ErrNoCoverArt when there is none.
	FindCoverArt(ctx context.Context, query string) (string, error)
}

// GoogleLocator finds cover art with the Google Custom Search JSON API.
//
// Every query is an image search asking for exactly one result; the link
// of that result is the cover URL.
//
// Example:
//
//	creds, err := search.CredentialsFile(fs, "./service-account.json")
//	locator, err := search.NewGoogleLocator(ctx, engineID, creds...)
//
//	url, err := locator.FindCoverArt(ctx, "Daft Punk - Discovery album cover")
//	if errors.Is(err, search.ErrNoCoverArt) {
//	    // nothing found
//	}
type GoogleLocator struct {
	service  *customsearch.Service
	engineID string
}

// NewGoogleLocator creates a GoogleLocator for the programmable search
// engine engineID. opts carry authentication, usually CredentialsFile.
func NewGoogleLocator(ctx context.Context, engineID string, opts ...option.ClientOption) (*GoogleLocator, error) {
	if engineID == "" {
		return nil, errors.New("search engine id is required")
	}

	service, err := customsearch.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating custom search service: %w", err)
	}

	return &GoogleLocator{
		service:  service,
		engineID: engineID,
	}, nil
}

// FindCoverArt runs an image search for query and returns the first link.
func (l *GoogleLocator) FindCoverArt(ctx context.Context, query string) (string, error) {
	res, err := l.service.Cse.List().
		Context(ctx).
		Cx(l.engineID).
		Q(query).
		SearchType("image").
		Num(1).
		Do()
	if err != nil {
		return "", fmt.Errorf("image search for %q: %w", query, err)
	}

	for _, item := range res.Items {
		if item != nil && item.Link != "" {
			return item.Link, nil
		}
	}

	return "", ErrNoCoverArt
}

// CredentialsFile reads service-account credentials from path and returns
// the client options authorising image searches with them.
func CredentialsFile(fs afero.Fs, path string) ([]option.ClientOption, error) {
	data, err := ioutils.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading credentials: %w", err)
	}

	return []option.ClientOption{
		option.WithCredentialsJSON(data),
		option.WithScopes(CSEScope),
	}, nil
}
