// Package pipeline tags every "Artist - Title.mp3" file of a folder with
// metadata taken from its name and a cover found by image search.
//
// # Manager
//
// The Manager takes each file through four steps, one file at a time:
//
//  1. Parse the file name into artist, title and album
//  2. Search for a cover image URL
//  3. Download and normalise the cover
//  4. Replace the file's ID3 tag
//
// A file whose name cannot be parsed, or for which no cover is found, is
// skipped and left untouched. A failed download still tags the file, only
// without a picture. Nothing that happens to one file stops the run.
//
// # Basic Usage
//
//	manager, err := pipeline.NewFromSettings(ctx, settings, afero.NewOsFs(),
//	    pipeline.WithProgress(func(event pipeline.ProgressEvent) {
//	        fmt.Println(event.Message)
//	    }),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	summary, err := manager.Run(ctx, "/music")
//
// # Dry Run
//
// With settings.DryRun the Manager only parses names and reads the
// current tags. It makes no network requests and writes nothing.
package pipeline
