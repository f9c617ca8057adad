// Package netscape reads the Netscape bookmark file format that browsers
// produce when exporting bookmarks to HTML.
package netscape

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.BookmarkParser = (*Parser)(nil)

// Parser decodes Netscape bookmark files.
type Parser struct{}

// New creates a new bookmark file parser.
func New() *Parser {
	return &Parser{}
}

var (
	anchorTag    = regexp.MustCompile(`(?is)<a\s([^>]*)>(.*?)</a>`)
	attribute    = regexp.MustCompile(`(?is)([a-z_]+)\s*=\s*(?:"([^"]*)"|'([^']*)')`)
	allTags      = regexp.MustCompile(`<[^>]+>`)
	htmlComments = regexp.MustCompile(`(?s)<!--.*?-->`)
	multiSpaces  = regexp.MustCompile(`\s+`)
)

// skippedSchemes are browser-internal links that cannot be opened from a
// bookmark entry.
var skippedSchemes = []string{"place:", "javascript:", "about:", "chrome:"}

// ParseBookmarks flattens every <A HREF> entry in the file.
// IDs are derived from the url so re-importing the same file is stable.
func (p *Parser) ParseBookmarks(r io.Reader) ([]domain.Bookmark, error) {
	if r == nil {
		return nil, domain.ErrInvalidInput
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading bookmark file: %w", err)
	}
	data = htmlComments.ReplaceAll(data, nil)

	var bookmarks []domain.Bookmark
	for _, m := range anchorTag.FindAllSubmatch(data, -1) {
		attrs := parseAttributes(m[1])

		href := strings.TrimSpace(attrs["href"])
		if href == "" || skipped(href) {
			continue
		}

		title := cleanText(m[2])
		if title == "" {
			title = href
		}

		bookmarks = append(bookmarks, domain.Bookmark{
			ID:         uuid.NewSHA1(uuid.NameSpaceURL, []byte(href)).String(),
			Title:      title,
			URL:        href,
			FavIconURL: favicon(attrs),
		})
	}
	return bookmarks, nil
}

func parseAttributes(raw []byte) map[string]string {
	attrs := make(map[string]string)
	for _, m := range attribute.FindAllSubmatch(raw, -1) {
		value := m[2]
		if len(value) == 0 {
			value = m[3]
		}
		attrs[string(bytes.ToLower(m[1]))] = html.UnescapeString(string(value))
	}
	return attrs
}

// favicon prefers a remote icon url over an embedded data: icon.
func favicon(attrs map[string]string) string {
	if uri := attrs["icon_uri"]; uri != "" {
		return uri
	}
	return attrs["icon"]
}

func cleanText(raw []byte) string {
	text := allTags.ReplaceAllString(string(raw), "")
	text = html.UnescapeString(text)
	return strings.TrimSpace(multiSpaces.ReplaceAllString(text, " "))
}

func skipped(href string) bool {
	lower := strings.ToLower(href)
	for _, scheme := range skippedSchemes {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}
	return false
}
