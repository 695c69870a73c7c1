// Package breadcrumb derives the navigation trail shown above every page
// from the current request path. It is a pure string transformation: no
// project lookups, no caching, no error paths.
package breadcrumb

import (
	"strings"
	"unicode"
)

// ListPath is the canonical project list route and the target of every
// trail's root anchor.
const ListPath = "/projects"

// Entry is one element of a trail. Non-terminal entries are rendered as
// links to TargetPath; the terminal entry is rendered as plain text.
type Entry struct {
	Label      string
	TargetPath string
	Terminal   bool
}

// segmentLabels maps known route keywords to their display labels.
// Matching is exact and case-sensitive.
var segmentLabels = map[string]string{
	"projects":  "Projects",
	"new":       "New Project",
	"edit":      "Edit Project",
	"attendees": "Attendee Management",
	"features":  "Feature Management",
}

// Segments splits a route path on "/" and drops empty components, so
// leading, trailing and doubled slashes never produce segments.
func Segments(path string) []string {
	parts := strings.Split(path, "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// Trail resolves a route path into its breadcrumb entries.
//
// Paths with fewer than two segments (the landing and list pages) have no
// ancestor context and yield a nil trail, which the layout renders as
// nothing. Otherwise the first entry is always the fixed "Projects" anchor,
// and each following segment resolves to one entry whose target is the
// cumulative path up to and including that segment. The last entry is
// marked terminal.
func Trail(path string) []Entry {
	segments := Segments(path)
	if len(segments) <= 1 {
		return nil
	}

	trail := make([]Entry, 0, len(segments))
	trail = append(trail, Entry{Label: "Projects", TargetPath: ListPath})

	for i := 1; i < len(segments); i++ {
		trail = append(trail, Entry{
			Label:      labelFor(segments[i]),
			TargetPath: "/" + strings.Join(segments[:i+1], "/"),
			Terminal:   i == len(segments)-1,
		})
	}
	return trail
}

// labelFor resolves a single segment to a display label: known keyword,
// then identifier shape, then capitalized fallback.
func labelFor(segment string) string {
	if label, ok := segmentLabels[segment]; ok {
		return label
	}
	if isIdentifier(segment) {
		return "Project " + segment[:8] + "..."
	}
	return capitalize(segment)
}

// isIdentifier reports whether a segment looks like an opaque record
// identifier: exactly 36 characters, each a hex digit or hyphen. Hyphen
// placement is deliberately not checked; a non-canonical identifier should
// still get the truncated label rather than the generic fallback.
func isIdentifier(segment string) bool {
	if len(segment) != 36 {
		return false
	}
	for _, r := range segment {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		case r == '-':
		default:
			return false
		}
	}
	return true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
