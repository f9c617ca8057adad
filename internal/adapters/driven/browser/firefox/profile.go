package firefox

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

// placesFile is the history and bookmarks database inside a profile.
const placesFile = "places.sqlite"

// profilePatterns are tried in order when locating the default profile.
var profilePatterns = []string{"*.default-release", "*.default"}

// profileRoots returns the directories that hold Firefox profiles on this OS.
func profileRoots() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	switch runtime.GOOS {
	case "darwin":
		return []string{filepath.Join(home, "Library", "Application Support", "Firefox", "Profiles")}
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return []string{filepath.Join(appData, "Mozilla", "Firefox", "Profiles")}
		}
		return nil
	default:
		return []string{
			filepath.Join(home, ".mozilla", "firefox"),
			filepath.Join(home, "snap", "firefox", "common", ".mozilla", "firefox"),
		}
	}
}

// FindProfile returns the first default profile directory that contains
// places.sqlite under any of roots. With no roots the OS locations are used.
func FindProfile(roots ...string) (string, error) {
	if len(roots) == 0 {
		roots = profileRoots()
	}

	for _, pattern := range profilePatterns {
		for _, root := range roots {
			matches, err := filepath.Glob(filepath.Join(root, pattern))
			if err != nil {
				continue
			}
			sort.Strings(matches)
			for _, dir := range matches {
				if _, err := os.Stat(filepath.Join(dir, placesFile)); err == nil {
					return dir, nil
				}
			}
		}
	}

	return "", fmt.Errorf("no firefox profile found: %w", domain.ErrNotFound)
}
