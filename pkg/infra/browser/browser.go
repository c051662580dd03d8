package browser

import (
	"fmt"
	"io"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/leetvault/leetvault/pkg/domain/interfaces"
	"github.com/leetvault/leetvault/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// System opens URLs with the desktop's default handler.
type System struct {
	goos    string
	command func(name string, args ...string) *exec.Cmd
}

var _ interfaces.Browser = (*System)(nil)

func New() *System {
	return &System{
		goos:    runtime.GOOS,
		command: exec.Command,
	}
}

func (x *System) Open(target string) error {
	if err := validate(target); err != nil {
		return err
	}

	var cmd *exec.Cmd
	switch x.goos {
	case "darwin":
		cmd = x.command("open", target)
	case "linux", "freebsd", "openbsd", "netbsd":
		cmd = x.command("xdg-open", target)
	case "windows":
		// "start" would split the URL at '&'
		cmd = x.command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		return goerr.Wrap(types.ErrInvalidOption, "unsupported platform", goerr.V("goos", x.goos))
	}

	if err := cmd.Start(); err != nil {
		return goerr.Wrap(err, "failed to open browser", goerr.V("url", target))
	}
	// Reap the launcher without waiting on it.
	go func() { _ = cmd.Wait() }()

	return nil
}

// Printer prints the URL for the user to open by hand.
type Printer struct {
	w io.Writer
}

var _ interfaces.Browser = (*Printer)(nil)

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (x *Printer) Open(target string) error {
	if err := validate(target); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(x.w, "Open the following URL in your browser:\n\n  %s\n\n", target); err != nil {
		return goerr.Wrap(err, "failed to print URL")
	}
	return nil
}

func validate(target string) error {
	u, err := url.Parse(target)
	if err != nil {
		return goerr.Wrap(types.ErrInvalidOption, "invalid URL", goerr.V("url", target), goerr.V("cause", err))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return goerr.Wrap(types.ErrInvalidOption, "only http and https URLs can be opened", goerr.V("url", target))
	}
	return nil
}
