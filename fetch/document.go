// Package fetch retrieves remote documents over HTTP and strips any
// leading byte order mark from their bodies.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jrh3k5/skipbom"
)

// Document is a remote document whose body is read through a
// marker-stripping reader. Marker detection resolves lazily on the first
// ReadBom or Read call, the same as skipbom.Reader.
type Document struct {
	*skipbom.Reader
	body io.ReadCloser
}

// Close releases the underlying response body.
func (d *Document) Close() error {
	return d.body.Close()
}

// Open retrieves the document at the given URL and wraps its body in a
// reader recognizing the given candidate markers. A nil candidate slice
// recognizes the full catalog; an empty non-nil slice recognizes nothing.
func Open(ctx context.Context, client Doer, url string, candidates []skipbom.BomType) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for fetching document: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request for fetching document: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer func() { _ = resp.Body.Close() }()

		return nil, fmt.Errorf("document server returned status %d", resp.StatusCode)
	}

	slog.DebugContext(
		ctx,
		fmt.Sprintf("Checking document at '%s' for a leading byte order mark", url),
	)

	var reader *skipbom.Reader
	if candidates == nil {
		reader = skipbom.NewReader(resp.Body)
	} else {
		reader = skipbom.NewReaderSet(resp.Body, candidates)
	}

	return &Document{Reader: reader, body: resp.Body}, nil
}
