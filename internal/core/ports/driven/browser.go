package driven

import "context"

// Browser performs the side-effecting actions requested by the picker.
// None of the methods return data the core depends on.
type Browser interface {
	// ActivateTab focuses an already open tab.
	ActivateTab(ctx context.Context, tabID int, url string) error

	// OpenInNewTab opens url in a new tab. A background tab does not take focus.
	OpenInNewTab(ctx context.Context, url string, background bool) error

	// OpenInNewWindow opens url in a new window.
	OpenInNewWindow(ctx context.Context, url string) error
}
