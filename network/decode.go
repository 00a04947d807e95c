package network

import (
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"golang.org/x/net/html/charset"
)

const acceptEncoding = "gzip, br"

// decodedBody reads the converted text and closes the decompressor.
// The response body itself stays owned by the caller.
type decodedBody struct {
	io.Reader
	io.Closer
}

// body returns the decompressed response body converted to UTF-8.
func body(resp *http.Response) (io.ReadCloser, error) {
	var r io.ReadCloser = io.NopCloser(resp.Body)

	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "", "identity":
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		r = gz
	case "br":
		r = io.NopCloser(brotli.NewReader(resp.Body))
	default:
		return nil, fmt.Errorf("unsupported content encoding %q", resp.Header.Get("Content-Encoding"))
	}

	converted, err := charset.NewReader(r, resp.Header.Get("Content-Type"))
	if err != nil {
		_ = r.Close()
		return nil, err
	}
	return decodedBody{Reader: converted, Closer: r}, nil
}
