package breadcrumb

import (
	"reflect"
	"strings"
	"testing"
)

func TestSegments(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected []string
	}{
		{
			name:     "empty path",
			path:     "",
			expected: []string{},
		},
		{
			name:     "root only",
			path:     "/",
			expected: []string{},
		},
		{
			name:     "single segment",
			path:     "/projects",
			expected: []string{"projects"},
		},
		{
			name:     "trailing slash",
			path:     "/projects/",
			expected: []string{"projects"},
		},
		{
			name:     "doubled slashes",
			path:     "//projects///new",
			expected: []string{"projects", "new"},
		},
		{
			name:     "nested path",
			path:     "/projects/3fa85f64-5717-4562-b3fc-2c963f66afa6/attendees",
			expected: []string{"projects", "3fa85f64-5717-4562-b3fc-2c963f66afa6", "attendees"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Segments(tt.path)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Segments(%q) = %v; want %v", tt.path, result, tt.expected)
			}
		})
	}
}

func TestTrailHiddenForShortPaths(t *testing.T) {
	for _, path := range []string{"", "/", "/projects", "/projects/", "//"} {
		if trail := Trail(path); len(trail) != 0 {
			t.Errorf("Trail(%q) = %v; want empty trail", path, trail)
		}
	}
}

func TestTrailConcreteCases(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected []Entry
	}{
		{
			name: "attendee management page",
			path: "/projects/3fa85f64-5717-4562-b3fc-2c963f66afa6/attendees",
			expected: []Entry{
				{Label: "Projects", TargetPath: "/projects"},
				{Label: "Project 3fa85f64...", TargetPath: "/projects/3fa85f64-5717-4562-b3fc-2c963f66afa6"},
				{Label: "Attendee Management", TargetPath: "/projects/3fa85f64-5717-4562-b3fc-2c963f66afa6/attendees", Terminal: true},
			},
		},
		{
			name: "edit page",
			path: "/projects/3fa85f64-5717-4562-b3fc-2c963f66afa6/edit",
			expected: []Entry{
				{Label: "Projects", TargetPath: "/projects"},
				{Label: "Project 3fa85f64...", TargetPath: "/projects/3fa85f64-5717-4562-b3fc-2c963f66afa6"},
				{Label: "Edit Project", TargetPath: "/projects/3fa85f64-5717-4562-b3fc-2c963f66afa6/edit", Terminal: true},
			},
		},
		{
			name: "feature management page",
			path: "/projects/3fa85f64-5717-4562-b3fc-2c963f66afa6/features",
			expected: []Entry{
				{Label: "Projects", TargetPath: "/projects"},
				{Label: "Project 3fa85f64...", TargetPath: "/projects/3fa85f64-5717-4562-b3fc-2c963f66afa6"},
				{Label: "Feature Management", TargetPath: "/projects/3fa85f64-5717-4562-b3fc-2c963f66afa6/features", Terminal: true},
			},
		},
		{
			name: "new project page",
			path: "/projects/new",
			expected: []Entry{
				{Label: "Projects", TargetPath: "/projects"},
				{Label: "New Project", TargetPath: "/projects/new", Terminal: true},
			},
		},
		{
			name: "unknown segment falls back to capitalization",
			path: "/projects/newthing",
			expected: []Entry{
				{Label: "Projects", TargetPath: "/projects"},
				{Label: "Newthing", TargetPath: "/projects/newthing", Terminal: true},
			},
		},
		{
			name: "root anchor ignores literal first segment",
			path: "/plans/new",
			expected: []Entry{
				{Label: "Projects", TargetPath: "/projects"},
				{Label: "New Project", TargetPath: "/plans/new", Terminal: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Trail(tt.path)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Trail(%q) = %v; want %v", tt.path, result, tt.expected)
			}
		})
	}
}

func TestTrailInvariants(t *testing.T) {
	paths := []string{
		"/projects/new",
		"/projects/3fa85f64-5717-4562-b3fc-2c963f66afa6",
		"/projects/3fa85f64-5717-4562-b3fc-2c963f66afa6/attendees",
		"/projects/3fa85f64-5717-4562-b3fc-2c963f66afa6/features",
		"/projects/3fa85f64-5717-4562-b3fc-2c963f66afa6/edit",
		"/projects/newthing/deeper/again",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			trail := Trail(path)
			segments := Segments(path)

			if len(trail) != len(segments) {
				t.Fatalf("len(Trail) = %d; want %d (one entry per segment)", len(trail), len(segments))
			}

			terminals := 0
			for i, e := range trail {
				if e.Terminal {
					terminals++
					if i != len(trail)-1 {
						t.Errorf("entry %d marked terminal; only the last may be", i)
					}
				}
			}
			if terminals != 1 {
				t.Errorf("got %d terminal entries; want exactly 1", terminals)
			}

			// Target paths form a chain of prefixes ending at the full path.
			for i := 1; i < len(trail); i++ {
				if !strings.HasPrefix(trail[i].TargetPath, trail[i-1].TargetPath) {
					t.Errorf("target %q is not prefixed by %q", trail[i].TargetPath, trail[i-1].TargetPath)
				}
			}
			want := "/" + strings.Join(segments, "/")
			if last := trail[len(trail)-1].TargetPath; last != want {
				t.Errorf("terminal target = %q; want full path %q", last, want)
			}

			if trail[0].Label != "Projects" || trail[0].TargetPath != ListPath {
				t.Errorf("root anchor = %+v; want fixed Projects entry", trail[0])
			}
		})
	}
}

func TestTrailIdempotent(t *testing.T) {
	path := "/projects/3fa85f64-5717-4562-b3fc-2c963f66afa6/attendees"
	first := Trail(path)
	second := Trail(path)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Trail is not idempotent: %v vs %v", first, second)
	}
}

func TestLabelFor(t *testing.T) {
	tests := []struct {
		name     string
		segment  string
		expected string
	}{
		{
			name:     "known keyword",
			segment:  "attendees",
			expected: "Attendee Management",
		},
		{
			name:     "keyword matching is case-sensitive",
			segment:  "Attendees",
			expected: "Attendees",
		},
		{
			name:     "canonical identifier",
			segment:  "3fa85f64-5717-4562-b3fc-2c963f66afa6",
			expected: "Project 3fa85f64...",
		},
		{
			name:     "uppercase identifier",
			segment:  "3FA85F64-5717-4562-B3FC-2C963F66AFA6",
			expected: "Project 3FA85F64...",
		},
		{
			name:     "non-canonical hyphen placement still counts",
			segment:  "3fa85f645717-4562-b3fc-2c963f66afa6-",
			expected: "Project 3fa85f64...",
		},
		{
			name:     "35 characters is not an identifier",
			segment:  "3fa85f64-5717-4562-b3fc-2c963f66afa",
			expected: "3fa85f64-5717-4562-b3fc-2c963f66afa",
		},
		{
			name:     "36 characters with a non-hex rune",
			segment:  "3fa85f64-5717-4562-b3fc-2c963f66afag",
			expected: "3fa85f64-5717-4562-b3fc-2c963f66afag",
		},
		{
			name:     "fallback capitalizes first character only",
			segment:  "newthing",
			expected: "Newthing",
		},
		{
			name:     "fallback leaves remainder untouched",
			segment:  "someCamelCase",
			expected: "SomeCamelCase",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := labelFor(tt.segment)
			if result != tt.expected {
				t.Errorf("labelFor(%q) = %q; want %q", tt.segment, result, tt.expected)
			}
		})
	}
}
