// Package http provides the HTTP client used to download cover art.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Optional timeouts
//   - Treating any non-2xx answer as a failure
//
// # Basic Usage
//
//	client := http.NewClient("covertag", 0)
//
//	// Download an image into memory
//	data, err := client.Get(ctx, coverURL)
//
//	var statusErr *http.StatusError
//	if errors.As(err, &statusErr) {
//	    fmt.Println(statusErr.StatusCode)
//	}
package http
