package version

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pencuri-cli/pencuri/constant"
	"github.com/pencuri-cli/pencuri/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestCompare(t *testing.T) {
	Convey("Compare orders semantic versions", t, func() {
		for _, tc := range []struct {
			a, b string
			want int
		}{
			{"1.0.0", "1.0.0", 0},
			{"v1.2.0", "1.1.9", 1},
			{"0.3.1", "0.10.0", -1},
			{"2.0.0", "v1.99.99", 1},
			{"1.2", "1.2.0", 0},
			{"1.3.0-rc1", "1.2.9", 1},
		} {
			got, err := Compare(tc.a, tc.b)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, tc.want)
		}

		for _, bad := range []string{"latest", "1.2.3.4", "1.-2.0", ""} {
			_, err := Compare(bad, "1.0.0")
			So(err, ShouldNotBeNil)
		}
	})
}

func serve(status int, body string) func() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))

	previous := releasesURL
	releasesURL = server.URL
	return func() {
		releasesURL = previous
		server.Close()
	}
}

func TestLatest(t *testing.T) {
	Convey("Given a release endpoint", t, func() {
		Convey("The tag is returned without its prefix", func() {
			defer serve(http.StatusOK, `{"tag_name":"v9.1.0"}`)()
			v, err := Latest(context.Background())
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "9.1.0")
		})

		Convey("An empty tag is an error", func() {
			defer serve(http.StatusOK, `{}`)()
			_, err := Latest(context.Background())
			So(err, ShouldNotBeNil)
		})

		Convey("A failing status is an error", func() {
			defer serve(http.StatusForbidden, `rate limited`)()
			_, err := Latest(context.Background())
			So(err, ShouldNotBeNil)
		})
	})
}

func TestNotify(t *testing.T) {
	Convey("Given version checks are enabled", t, func() {
		viper.Set(key.CliVersionCheck, true)
		defer viper.Set(key.CliVersionCheck, false)

		var buf bytes.Buffer

		Convey("A newer release is announced", func() {
			defer serve(http.StatusOK, `{"tag_name":"v99.0.0"}`)()
			Notify(context.Background(), &buf)
			So(buf.String(), ShouldContainSubstring, "New version is available")
		})

		Convey("The current release stays silent", func() {
			defer serve(http.StatusOK, `{"tag_name":"v`+constant.Version+`"}`)()
			Notify(context.Background(), &buf)
			So(buf.String(), ShouldNotContainSubstring, "New version")
		})

		Convey("A failed check stays silent", func() {
			defer serve(http.StatusInternalServerError, ``)()
			Notify(context.Background(), &buf)
			So(buf.String(), ShouldNotContainSubstring, "New version")
		})
	})
}
