package network

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/pencuri-cli/pencuri/adblock"
	"github.com/pencuri-cli/pencuri/log"
)

// ErrBlocked is returned for requests to known ad and tracker hosts.
var ErrBlocked = errors.New("blocked ad or tracker host")

// blockingTransport refuses requests to ad hosts before any connection is made,
// including hosts reached through redirects.
type blockingTransport struct {
	next http.RoundTripper
}

func (b *blockingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if adblock.IsAdHost(req.URL.Hostname()) {
		log.Warnf("network: blocked request to %s", req.URL.Host)
		return nil, fmt.Errorf("%w: %s", ErrBlocked, req.URL.Host)
	}
	return b.next.RoundTrip(req)
}
