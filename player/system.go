package player

import (
	"context"

	"github.com/pencuri-cli/pencuri/open"
)

// System opens sources with the platform's default URL handler, or with App when set.
// On Android this is the chooser of installed browsers and players.
type System struct {
	App string
}

func (System) Name() string { return "default browser" }

func (System) Available() bool { return true }

func (s System) Launch(_ context.Context, link string) error {
	return open.StartWith(link, s.App)
}
