// Package browser opens URLs in the user's web browser.
package browser

import (
	"fmt"
	"io"

	ghbrowser "github.com/cli/go-gh/v2/pkg/browser"

	"github.com/richhaase/open-pr/internal/domain"
)

// Opener opens a URL for the user.
type Opener interface {
	Open(url string) error
}

// Browser launches URLs through a configured command or the system default.
type Browser struct {
	launcher string
	b        *ghbrowser.Browser
}

// New creates a Browser. An empty launcher falls back to GH_BROWSER, the gh
// config, BROWSER, then the operating system's URL handler, in that order.
// The launcher may include arguments; the URL is appended as the last one.
func New(launcher string, stdout, stderr io.Writer) *Browser {
	return &Browser{
		launcher: launcher,
		b:        ghbrowser.New(launcher, stdout, stderr),
	}
}

// Open launches url. Errors wrap domain.ErrBrowserLaunch.
func (b *Browser) Open(url string) error {
	if err := b.b.Browse(url); err != nil {
		if b.launcher != "" {
			return fmt.Errorf("%w: %s: %v", domain.ErrBrowserLaunch, b.launcher, err)
		}
		return fmt.Errorf("%w: %v", domain.ErrBrowserLaunch, err)
	}
	return nil
}
