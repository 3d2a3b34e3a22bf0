// Package fetch downloads release artifacts over HTTP into a destination
// directory, one blocking transfer at a time.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/tips-vision/tips-fetch/pkg/observability/logging"
)

// Fetcher downloads artifacts sequentially. The zero value downloads into
// the current working directory using the default HTTP client, which matches
// the release contract: files land where the tool is run, with whatever
// timeouts the transport defaults to.
type Fetcher struct {
	// Client is the HTTP client used for transfers. Nil means http.DefaultClient.
	Client *http.Client
	// DestDir is where downloaded files are written. Empty means ".".
	DestDir string
}

// New returns a Fetcher that writes into the current working directory.
func New() *Fetcher {
	return &Fetcher{}
}

func (f *Fetcher) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return http.DefaultClient
}

func (f *Fetcher) destDir() string {
	if f.DestDir != "" {
		return f.DestDir
	}
	return "."
}

// Basename returns the final path segment of a URL, the name the downloaded
// file is stored under.
func Basename(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		return path.Base(u.Path)
	}
	return path.Base(rawURL)
}

// Fetch performs one blocking GET and writes the response body to the
// destination directory under the URL's final path segment. An existing file
// with the same name is truncated. Returns the number of bytes written.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build request for %s: %w", rawURL, err)
	}

	resp, err := f.client().Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("bad status for %s: %s", rawURL, resp.Status)
	}

	name := Basename(rawURL)
	out, err := os.Create(filepath.Join(f.destDir(), name))
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer out.Close()

	n, err := io.Copy(out, resp.Body)
	if err != nil {
		return n, fmt.Errorf("failed to write %s: %w", name, err)
	}

	return n, nil
}

// FetchAll downloads every URL in slice order, one at a time. A failed
// download is logged and the remaining URLs are still attempted; there is no
// retry. The returned error, if any, reports how many downloads failed.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string) error {
	failed := 0
	for _, u := range urls {
		logging.Infof("Downloading %s...", Basename(u))
		n, err := f.Fetch(ctx, u)
		if err != nil {
			logging.Warnf("Failed to download %s: %v", u, err)
			failed++
			continue
		}
		logging.Infof("Wrote %s (%d bytes)", Basename(u), n)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d downloads failed", failed, len(urls))
	}
	return nil
}
