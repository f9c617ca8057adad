package memory

import "strings"

// matchesWords reports whether every whitespace-separated word of text
// appears in title or url, ignoring case. Empty text matches everything.
func matchesWords(text, title, url string) bool {
	title = strings.ToLower(title)
	url = strings.ToLower(url)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if !strings.Contains(title, word) && !strings.Contains(url, word) {
			return false
		}
	}
	return true
}
