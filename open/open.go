// Package open launches URLs and files with the system's default handler.
package open

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pencuri-cli/pencuri/constant"
)

// ErrUnsupported is returned on platforms without a known default handler.
var ErrUnsupported = errors.New("unsupported OS: " + runtime.GOOS)

// Start opens the input with the default handler without waiting for it.
func Start(input string) error {
	cmd, err := Command(runtime.GOOS, input)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// StartWith opens the input with a specific application without waiting for it.
func StartWith(input, app string) error {
	if app == "" {
		return Start(input)
	}

	cmd, err := CommandWith(runtime.GOOS, input, app)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// Command builds the default handler invocation for the given platform.
func Command(goos, input string) (*exec.Cmd, error) {
	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), nil
	case constant.Darwin:
		return exec.Command("open", input), nil
	case constant.Linux:
		return exec.Command("xdg-open", input), nil
	case constant.Android:
		// termux hands the URL to the chooser of installed browsers and players
		return exec.Command("termux-open-url", input), nil
	default:
		return nil, ErrUnsupported
	}
}

// CommandWith builds an invocation of a specific application for the given platform.
func CommandWith(goos, input, app string) (*exec.Cmd, error) {
	switch goos {
	case constant.Windows:
		// cmd's start treats & as a command separator
		escaped := strings.ReplaceAll(input, "&", "^&")
		return exec.Command("cmd", "/C", "start", "", app, escaped), nil
	case constant.Darwin:
		return exec.Command("open", "-a", app, input), nil
	case constant.Linux:
		return exec.Command(app, input), nil
	case constant.Android:
		return exec.Command("termux-open", "--choose", input), nil
	default:
		return nil, ErrUnsupported
	}
}
