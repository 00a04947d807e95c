package network

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/pencuri-cli/pencuri/dom"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

const page = `<html><head><title>Catalog</title></head><body><h2>Hello</h2></body></html>`

func newFetcher(base string) *Fetcher {
	return lo.Must(New(Options{
		BaseURL:   base,
		Cookies:   []string{"wpdiscuz_hide_bubble_hint=1; cf_clearance=token"},
		UserAgent: "pencuri-test",
		Timeout:   2 * time.Second,
		BlockAds:  true,
	}))
}

func TestFetch(t *testing.T) {
	Convey("Given a catalog site", t, func() {
		var got *http.Request
		site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r
			switch r.URL.Path {
			case "/challenge":
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`<html><head><title>Just a moment...</title></head></html>`))
			case "/missing":
				http.NotFound(w, r)
			case "/gzip":
				w.Header().Set("Content-Encoding", "gzip")
				gz := gzip.NewWriter(w)
				_, _ = gz.Write([]byte(page))
				_ = gz.Close()
			case "/br":
				w.Header().Set("Content-Encoding", "br")
				br := brotli.NewWriter(w)
				_, _ = br.Write([]byte(page))
				_ = br.Close()
			case "/moved":
				http.Redirect(w, r, "/", http.StatusFound)
			default:
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				_, _ = w.Write([]byte(page))
			}
		}))
		Reset(site.Close)

		fetcher := newFetcher(site.URL)
		ctx := context.Background()

		Convey("A page is parsed into a tree", func() {
			p, err := fetcher.Fetch(ctx, site.URL+"/")
			So(err, ShouldBeNil)
			So(p.Title, ShouldEqual, "Catalog")

			h2, ok := dom.FindFirst(p.Root, dom.Tag("h2"))
			So(ok, ShouldBeTrue)
			So(dom.TextOf(h2), ShouldEqual, "Hello")
		})

		Convey("Browser headers, cookies and the referer are sent to the site", func() {
			_, err := fetcher.Fetch(ctx, site.URL+"/")
			So(err, ShouldBeNil)
			So(got.Header.Get("User-Agent"), ShouldEqual, "pencuri-test")
			So(got.Header.Get("Referer"), ShouldEqual, site.URL)
			So(got.Header.Get("Upgrade-Insecure-Requests"), ShouldEqual, "1")
			So(got.Header.Get("Accept-Encoding"), ShouldEqual, "gzip, br")

			cookie, err := got.Cookie("cf_clearance")
			So(err, ShouldBeNil)
			So(cookie.Value, ShouldEqual, "token")
		})

		Convey("Compressed pages are decoded", func() {
			for _, path := range []string{"/gzip", "/br"} {
				p, err := fetcher.Fetch(ctx, site.URL+path)
				So(err, ShouldBeNil)
				So(p.Title, ShouldEqual, "Catalog")
			}
		})

		Convey("A challenge page is reported distinctly", func() {
			_, err := fetcher.Fetch(ctx, site.URL+"/challenge")
			So(errors.Is(err, ErrChallenge), ShouldBeTrue)
			So(errors.Is(err, ErrTransport), ShouldBeFalse)
		})

		Convey("A non-200 response is a transport failure", func() {
			_, err := fetcher.Fetch(ctx, site.URL+"/missing")
			So(errors.Is(err, ErrTransport), ShouldBeTrue)
		})

		Convey("Redirects update the page URL", func() {
			p, err := fetcher.Fetch(ctx, site.URL+"/moved")
			So(err, ShouldBeNil)
			So(p.URL.Path, ShouldEqual, "/")
			So(p.Abs("/movie/x/"), ShouldEqual, site.URL+"/movie/x/")
			So(p.Abs("//cdn.example/v.js"), ShouldEqual, "http://cdn.example/v.js")
			So(p.Abs("https://other.example/a"), ShouldEqual, "https://other.example/a")
		})

		Convey("Resolve returns the final URL", func() {
			final, err := fetcher.Resolve(ctx, site.URL+"/moved")
			So(err, ShouldBeNil)
			So(final, ShouldEqual, site.URL+"/")
		})
	})

	Convey("Given a third-party host", t, func() {
		var got *http.Request
		other := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r
			_, _ = w.Write([]byte(page))
		}))
		Reset(other.Close)

		fetcher := newFetcher("https://catalog.example")

		Convey("Neither the referer nor the cookies are sent", func() {
			_, err := fetcher.Fetch(context.Background(), other.URL)
			So(err, ShouldBeNil)
			So(got.Header.Get("Referer"), ShouldBeEmpty)
			So(got.Header.Get("Cookie"), ShouldBeEmpty)
		})
	})

	Convey("Given a slow site", t, func() {
		slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		Reset(slow.Close)

		fetcher := lo.Must(New(Options{BaseURL: slow.URL, Timeout: 50 * time.Millisecond}))

		Convey("A timeout is a transport failure", func() {
			_, err := fetcher.Fetch(context.Background(), slow.URL)
			So(errors.Is(err, ErrTransport), ShouldBeTrue)
		})
	})

	Convey("Requests to ad hosts are refused before dialing", t, func() {
		fetcher := newFetcher("https://catalog.example")
		_, err := fetcher.Fetch(context.Background(), "http://ads.doubleclick.net/pixel")
		So(errors.Is(err, ErrTransport), ShouldBeTrue)
		So(errors.Is(err, ErrBlocked), ShouldBeTrue)
	})

	Convey("An invalid base url is rejected", t, func() {
		_, err := New(Options{BaseURL: "not a url"})
		So(err, ShouldNotBeNil)
	})
}

func TestBody(t *testing.T) {
	Convey("An unknown content encoding is an error", t, func() {
		resp := &http.Response{
			Header: http.Header{"Content-Encoding": []string{"zstd"}},
			Body:   http.NoBody,
		}
		_, err := body(resp)
		So(err, ShouldNotBeNil)
	})

	Convey("Decoded bodies close their decompressor but not the response", t, func() {
		var gz bytes.Buffer
		w := gzip.NewWriter(&gz)
		_, _ = w.Write([]byte(page))
		_ = w.Close()

		raw := &trackingBody{Reader: bytes.NewReader(gz.Bytes())}
		resp := &http.Response{
			Header: http.Header{"Content-Encoding": []string{"gzip"}, "Content-Type": []string{"text/html; charset=utf-8"}},
			Body:   raw,
		}

		r, err := body(resp)
		So(err, ShouldBeNil)

		var out bytes.Buffer
		_, _ = out.ReadFrom(r)
		So(out.String(), ShouldEqual, page)
		So(r.Close(), ShouldBeNil)
		So(raw.closed, ShouldBeFalse)
	})

	Convey("Brotli and identity bodies are closable too", t, func() {
		var br bytes.Buffer
		w := brotli.NewWriter(&br)
		_, _ = w.Write([]byte(page))
		_ = w.Close()

		for encoding, content := range map[string][]byte{"br": br.Bytes(), "": []byte(page)} {
			raw := &trackingBody{Reader: bytes.NewReader(content)}
			resp := &http.Response{
				Header: http.Header{"Content-Encoding": []string{encoding}, "Content-Type": []string{"text/html; charset=utf-8"}},
				Body:   raw,
			}

			r, err := body(resp)
			So(err, ShouldBeNil)

			var out bytes.Buffer
			_, _ = out.ReadFrom(r)
			So(out.String(), ShouldEqual, page)
			So(r.Close(), ShouldBeNil)
			So(raw.closed, ShouldBeFalse)
		}
	})

	Convey("Latin-1 pages are converted to UTF-8", t, func() {
		resp := &http.Response{
			Header: http.Header{"Content-Type": []string{"text/html; charset=iso-8859-1"}},
			Body:   nopCloser{bytes.NewReader([]byte("caf\xe9"))},
		}
		r, err := body(resp)
		So(err, ShouldBeNil)

		var out bytes.Buffer
		_, _ = out.ReadFrom(r)
		So(out.String(), ShouldEqual, "café")
	})
}

type nopCloser struct{ *bytes.Reader }

func (nopCloser) Close() error { return nil }

type trackingBody struct {
	*bytes.Reader
	closed bool
}

func (b *trackingBody) Close() error {
	b.closed = true
	return nil
}
