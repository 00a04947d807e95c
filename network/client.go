// Package network owns the HTTP session used to fetch catalog pages.
package network

import (
	"crypto/tls"
	"net/http"
	"time"
)

// Client is the shared HTTP client for requests outside of the catalog session,
// such as release checks.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(false),
}

// newTransport initializes a tuned http.Transport. The fetcher is strictly
// sequential, so the pool only has to keep a few connections warm.
func newTransport(insecure bool) *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.MaxIdleConnsPerHost = 2
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 5 * time.Second
	if insecure {
		t.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return t
}
