// Command quickswitch is a keyboard-driven switcher for browser tabs,
// history and bookmarks.
package main

import (
	"github.com/custodia-labs/quickswitch/internal/adapters/driving/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetServiceFactory(buildServices)
	cli.Execute()
}
