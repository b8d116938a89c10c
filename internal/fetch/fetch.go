// Package fetch loads the text tally counts;
// it reads from standard input, local files, or HTTP(S) URLs.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"time"
)

// Size limits; the whole text is held in memory while counting
const (
	MaxFileSizeBytes = 10 * 1024 * 1024 // 10MB limit for files and stdin
	MaxHTTPSizeBytes = 20 * 1024 * 1024 // 20MB limit for HTTP content
)

// HTTPRequestTimeout bounds a whole URL fetch
const HTTPRequestTimeout = 20 * time.Second

// Kind identifies where a source's content comes from.
type Kind int

const (
	// Stdin is the "-" source
	Stdin Kind = iota
	// URL is an http:// or https:// source
	URL
	// File is a local file path
	File
)

// String returns the string representation of the source kind.
func (k Kind) String() string {
	switch k {
	case Stdin:
		return "stdin"
	case URL:
		return "url"
	case File:
		return "file"
	default:
		return "unknown"
	}
}

// Classify reports the kind of the given source.
func Classify(source string) Kind {
	switch {
	case source == "-":
		return Stdin
	case IsURL(source):
		return URL
	default:
		return File
	}
}

// IsURL reports whether source is an http:// or https:// URL.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// httpClient is shared across fetches and safe for concurrent use.
var httpClient = &http.Client{
	Timeout: HTTPRequestTimeout,
	Transport: &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: HTTPRequestTimeout / 4,
		}).DialContext,
		TLSHandshakeTimeout:   HTTPRequestTimeout / 4,
		ResponseHeaderTimeout: HTTPRequestTimeout / 2,
		DisableKeepAlives:     true,
	},
}

// stdin is swapped in tests
var stdin io.ReadCloser = os.Stdin

// GetContent opens the given source for reading:
//   - "-" reads from standard input
//   - URLs starting with "http://" or "https://" are fetched via HTTP
//   - everything else is treated as a local file path
//
// ctx allows for cancellation of URL fetches.
func GetContent(ctx context.Context, source string) (io.ReadCloser, error) {
	switch Classify(source) {
	case Stdin:
		return io.NopCloser(stdin), nil
	case URL:
		return fetchURL(ctx, source)
	default:
		return fetchFile(source)
	}
}

// ReadAll loads the full content of source, enforcing the size limit for its kind.
func ReadAll(ctx context.Context, source string) ([]byte, error) {
	reader, err := GetContent(ctx, source)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	limit := int64(MaxFileSizeBytes)
	if Classify(source) == URL {
		limit = MaxHTTPSizeBytes
	}

	// read one byte past the limit to detect oversized content
	data, err := io.ReadAll(io.LimitReader(reader, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s %q: %w", Classify(source), source, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("content from %q exceeds size limit (%d bytes)", source, limit)
	}

	slog.Debug("Source loaded", "source", source, "kind", Classify(source), "bytes", len(data))
	return data, nil
}

// fetchURL retrieves content from an HTTP or HTTPS URL
func fetchURL(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for URL %q: %w", url, err)
	}
	req.Header.Set("User-Agent", "tally/0.1")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL %q: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP request failed for URL %q: status %s", url, resp.Status)
	}

	if resp.ContentLength > MaxHTTPSizeBytes {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP content too large (%d bytes > %d bytes limit)", resp.ContentLength, MaxHTTPSizeBytes)
	}

	return resp.Body, nil
}

// fetchFile opens a local file for reading with better error messages
func fetchFile(path string) (io.ReadCloser, error) {
	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file %q does not exist", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to access file %q: %w", path, err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%q is a directory", path)
	}

	if fileInfo.Size() > MaxFileSizeBytes {
		return nil, fmt.Errorf("file %q is too large (%d bytes > %d bytes limit)", path, fileInfo.Size(), MaxFileSizeBytes)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", path, err)
	}

	return file, nil
}
