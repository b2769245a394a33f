// Package retriever turns a URI into an in-memory byte buffer. It understands
// http and https URLs, file:// URIs and bare filesystem paths.
package retriever

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Client is used for http(s) fetches. Callers wanting different latency
// bounds can swap it before use.
var Client = &http.Client{Timeout: 30 * time.Second}

// Get fetches the resource behind uri in a single attempt and returns its
// contents.
func Get(uri string) ([]byte, error) {
	switch {
	case strings.HasPrefix(uri, "http://"), strings.HasPrefix(uri, "https://"):
		resp, err := Client.Get(uri)
		if err != nil {
			return nil, fmt.Errorf("retriever: fetching %s: %w", uri, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("retriever: fetching %s: unexpected status %s", uri, resp.Status)
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("retriever: reading %s: %w", uri, err)
		}
		return data, nil

	case strings.HasPrefix(uri, "file://"):
		return readFile(strings.TrimPrefix(uri, "file://"))

	default:
		return readFile(uri)
	}
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("retriever: %w", err)
	}
	return data, nil
}
