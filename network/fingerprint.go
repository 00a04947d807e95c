package network

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/pencuri-cli/pencuri/log"
	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

const dialTimeout = 15 * time.Second

// fingerprintTransport performs requests with a Chrome TLS Client Hello.
//
// It first attempts HTTP/2, which most CDNs negotiate, and falls back to an
// HTTP/1.1 transport advertising only http/1.1 when that fails.
// Plain http requests go through the regular transport.
type fingerprintTransport struct {
	insecure bool
	h2       *http2.Transport
	h1       *http.Transport
	plain    http.RoundTripper
}

func newFingerprintTransport(insecure bool) *fingerprintTransport {
	t := &fingerprintTransport{insecure: insecure, plain: newTransport(insecure)}

	t.h2 = &http2.Transport{
		DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
			return t.dial(ctx, network, addr, nil)
		},
	}

	t.h1 = &http.Transport{
		DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return t.dial(ctx, network, addr, []string{"http/1.1"})
		},
		IdleConnTimeout: 30 * time.Second,
	}

	return t
}

func (t *fingerprintTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return t.plain.RoundTrip(req)
	}

	resp, err := t.h2.RoundTrip(req)
	if err == nil {
		return resp, nil
	}

	// only bodiless requests are retried
	if req.Body != nil && req.Body != http.NoBody {
		return nil, err
	}

	log.Debugf("network: h2 failed for %s, falling back to http/1.1: %s", req.URL.Host, err)
	return t.h1.RoundTrip(req.Clone(req.Context()))
}

// dial opens a TLS connection mimicking Chrome's fingerprint.
// A nil protos advertises both h2 and http/1.1, as Chrome does.
func (t *fingerprintTransport) dial(ctx context.Context, network, addr string, protos []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName:         host,
		InsecureSkipVerify: t.insecure,
		MinVersion:         tls.VersionTLS12,
		NextProtos:         protos,
	}, utls.HelloCustom)

	spec, err := chromeSpec(protos)
	if err == nil {
		err = tlsConn.ApplyPreset(spec)
	}
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("tls hello: %w", err)
	}

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}

// chromeSpec returns Chrome's Client Hello, restricted to protos when given.
// The preset ALPN extension wins over the config otherwise.
func chromeSpec(protos []string) (*utls.ClientHelloSpec, error) {
	spec, err := utls.UTLSIdToSpec(utls.HelloChrome_120)
	if err != nil {
		return nil, err
	}

	if protos != nil {
		for _, ext := range spec.Extensions {
			if alpn, ok := ext.(*utls.ALPNExtension); ok {
				alpn.AlpnProtocols = protos
			}
		}
	}
	return &spec, nil
}
