package mini

import (
	"errors"
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/pencuri-cli/pencuri/catalog"
	"github.com/pencuri-cli/pencuri/icon"
	"github.com/pencuri-cli/pencuri/log"
	"github.com/pencuri-cli/pencuri/network"
	"github.com/pencuri-cli/pencuri/style"
)

const (
	msgChallenge = "Blocked by Cloudflare. Cookies required."
	msgNoResults = "No results."
	msgInvalid   = "Invalid."
)

func (m *mini) println(a ...any) {
	_, _ = fmt.Fprintln(m.out, a...)
}

func (m *mini) title(s string) {
	m.println()
	m.println(style.Bold(s))
}

func (m *mini) fail(s string) {
	m.println(icon.Get(icon.Fail), s)
}

func (m *mini) info(s string) {
	m.println(icon.Get(icon.Info), s)
}

// report shows a short message for a failed fetch.
func (m *mini) report(err error) {
	log.Error(err)

	switch {
	case errors.Is(err, network.ErrChallenge):
		m.println(icon.Get(icon.Shield), msgChallenge)
	case errors.Is(err, catalog.ErrNoSources):
		m.fail("No playable links found.")
	case errors.Is(err, network.ErrTransport):
		m.fail("Connection error: " + strings.TrimPrefix(err.Error(), network.ErrTransport.Error()+": "))
	default:
		m.fail(err.Error())
	}
}

func (m *mini) list(items []fmt.Stringer) {
	for i, item := range items {
		m.println(fmt.Sprintf("%d. %s", i+1, item))
	}
}

func (m *mini) preview(link string) string {
	if len(link) <= m.previewWidth {
		return link
	}
	return truncate.String(link, uint(m.previewWidth)) + "..."
}

func stringers[T fmt.Stringer](items []T) []fmt.Stringer {
	out := make([]fmt.Stringer, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
