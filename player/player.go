// Package player hands a chosen source to the best available playback tier.
//
// Tiers are tried in order: the enhanced browser, which loads an ad-filter
// extension and hardens every page it opens, then the system default handler.
package player

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/pencuri-cli/pencuri/key"
	"github.com/pencuri-cli/pencuri/log"
	"github.com/spf13/viper"
)

// ErrNoTier is returned when no tier could open the source.
var ErrNoTier = errors.New("no player could open the source")

// Player plays a source URL.
type Player interface {
	Play(ctx context.Context, link string) error
}

// Tier is one way of launching playback.
type Tier interface {
	Name() string

	// Available reports whether the tier can run on this machine.
	Available() bool

	Launch(ctx context.Context, link string) error
}

// Launcher tries its tiers in order until one launches.
type Launcher struct {
	Tiers []Tier
}

// New returns the configured tiers.
func New() *Launcher {
	return &Launcher{Tiers: []Tier{NewBrowserFromConfig(), System{App: viper.GetString(key.PlayerApp)}}}
}

// Play launches the source with the first available tier that succeeds.
func (l *Launcher) Play(ctx context.Context, link string) error {
	target, err := Sanitize(link)
	if err != nil {
		return fmt.Errorf("invalid source: %w", err)
	}

	var errs []error
	for _, tier := range l.Tiers {
		if !tier.Available() {
			log.Debugf("player: %s is not available", tier.Name())
			continue
		}

		log.Infof("player: launching %s with %s", target, tier.Name())
		if err := tier.Launch(ctx, target); err != nil {
			log.Warnf("player: %s failed: %s", tier.Name(), err)
			errs = append(errs, fmt.Errorf("%s: %w", tier.Name(), err))
			continue
		}
		return nil
	}

	return errors.Join(append([]error{ErrNoTier}, errs...)...)
}

// Sanitize validates a source URL before it is handed to another program.
func Sanitize(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", errors.New("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r\t") {
		return "", errors.New("invalid control characters in URL")
	}

	// would be read as a flag by the launched program
	if strings.HasPrefix(l, "-") {
		return "", errors.New("url must not start with '-'")
	}

	u, err := url.Parse(l)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return l, nil
	default:
		return "", fmt.Errorf("unsupported URL scheme: %q", u.Scheme)
	}
}
