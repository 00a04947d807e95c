package network

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pencuri-cli/pencuri/constant"
	"github.com/pencuri-cli/pencuri/dom"
	"github.com/pencuri-cli/pencuri/key"
	"github.com/pencuri-cli/pencuri/log"
	"github.com/spf13/viper"
	"golang.org/x/net/html"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"
)

var (
	// ErrTransport covers connection failures, timeouts and non-200 responses.
	ErrTransport = errors.New("transport failure")

	// ErrChallenge is returned when the site answers with an anti-bot interstitial.
	ErrChallenge = errors.New("blocked by challenge page")
)

// Options configure a Fetcher.
type Options struct {
	// BaseURL is the catalog site. Cookies and the Referer are only sent to its host.
	BaseURL     string
	Cookies     []string
	UserAgent   string
	Timeout     time.Duration
	Insecure    bool
	Fingerprint bool
	BlockAds    bool

	// Rate limits page fetches per second. Zero or less disables limiting.
	Rate float64
}

// OptionsFromConfig reads the session options from the configuration.
func OptionsFromConfig() Options {
	return Options{
		BaseURL:     viper.GetString(key.SiteBaseURL),
		Cookies:     viper.GetStringSlice(key.SiteCookies),
		UserAgent:   viper.GetString(key.NetworkUserAgent),
		Timeout:     time.Duration(viper.GetInt(key.NetworkTimeout)) * time.Second,
		Insecure:    viper.GetBool(key.NetworkInsecure),
		Fingerprint: viper.GetBool(key.NetworkFingerprint),
		BlockAds:    viper.GetBool(key.NetworkBlockAds),
		Rate:        viper.GetFloat64(key.NetworkRate),
	}
}

// Page is one fetched and parsed document.
type Page struct {
	// URL is the final URL after redirects.
	URL   *url.URL
	Title string
	Root  dom.Node
}

// Abs resolves a possibly relative or protocol-relative link against the page URL.
func (p *Page) Abs(href string) string {
	href = strings.TrimSpace(href)
	if href == "" || p.URL == nil {
		return href
	}

	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return p.URL.ResolveReference(ref).String()
}

// Fetcher is the HTTP session of the catalog site.
// Its cookie jar is the only state shared across fetches.
type Fetcher struct {
	site      *url.URL
	userAgent string
	timeout   time.Duration
	client    *http.Client
	limiter   *rate.Limiter
}

// New creates a Fetcher and seeds its cookie jar.
func New(opts Options) (*Fetcher, error) {
	site, err := url.Parse(opts.BaseURL)
	if err != nil || site.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", opts.BaseURL)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}

	cookies, err := parseCookies(opts.Cookies)
	if err != nil {
		return nil, err
	}
	jar.SetCookies(site, cookies)

	var transport http.RoundTripper
	if opts.Fingerprint {
		transport = newFingerprintTransport(opts.Insecure)
	} else {
		transport = newTransport(opts.Insecure)
	}
	if opts.BlockAds {
		transport = &blockingTransport{next: transport}
	}

	limit := rate.Inf
	if opts.Rate > 0 {
		limit = rate.Limit(opts.Rate)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = constant.UserAgent
	}

	return &Fetcher{
		site:      site,
		userAgent: userAgent,
		timeout:   timeout,
		client:    &http.Client{Jar: jar, Transport: transport},
		limiter:   rate.NewLimiter(limit, 1),
	}, nil
}

// NewFromConfig creates a Fetcher from the configuration.
func NewFromConfig() (*Fetcher, error) {
	return New(OptionsFromConfig())
}

// Site returns the catalog site URL.
func (f *Fetcher) Site() *url.URL {
	return f.site
}

func parseCookies(pairs []string) ([]*http.Cookie, error) {
	var cookies []*http.Cookie
	for _, pair := range pairs {
		if strings.TrimSpace(pair) == "" {
			continue
		}

		parsed, err := http.ParseCookie(pair)
		if err != nil {
			return nil, fmt.Errorf("cookie %q: %w", pair, err)
		}
		cookies = append(cookies, parsed...)
	}
	return cookies, nil
}

func (f *Fetcher) newRequest(ctx context.Context, rawURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Accept-Encoding", acceptEncoding)
	req.Header.Set("Upgrade-Insecure-Requests", "1")

	// never leak the referer to third-party hosts
	if req.URL.Host == f.site.Host {
		req.Header.Set("Referer", f.site.String())
	}

	return req, nil
}

// Fetch downloads and parses one page.
//
// The challenge check runs before the status check, since challenge pages
// are usually served with an error status. A timeout is a transport failure.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := f.newRequest(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	log.Debugf("network: GET %s", rawURL)
	resp, err := f.client.Do(req)
	if err != nil {
		log.Errorf("network: GET %s: %s", rawURL, err)
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	reader, err := body(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	root, err := html.Parse(reader)
	_ = reader.Close()
	if err != nil {
		return nil, fmt.Errorf("%w: parse: %w", ErrTransport, err)
	}

	title := strings.TrimSpace(goquery.NewDocumentFromNode(root).Find("title").First().Text())
	if strings.Contains(title, constant.ChallengeMarker) {
		log.Warnf("network: challenge page at %s (status %d)", rawURL, resp.StatusCode)
		return nil, ErrChallenge
	}

	if resp.StatusCode != http.StatusOK {
		log.Errorf("network: GET %s: %s", rawURL, resp.Status)
		return nil, fmt.Errorf("%w: %s", ErrTransport, resp.Status)
	}

	log.Debugf("network: %s %q", resp.Status, title)
	return &Page{URL: resp.Request.URL, Title: title, Root: dom.Wrap(root)}, nil
}

// Resolve follows the redirects of a link and returns its final URL.
func (f *Fetcher) Resolve(ctx context.Context, rawURL string) (string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return rawURL, err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := f.newRequest(ctx, rawURL)
	if err != nil {
		return rawURL, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return rawURL, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))

	final := resp.Request.URL.String()
	if final != rawURL {
		log.Debugf("network: %s resolved to %s", rawURL, final)
	}
	return final, nil
}
