package handlers

import "testing"

func TestProjectCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		uuid     string
		expected string
	}{
		{
			name:     "route uuid",
			uuid:     "3fa85f64-5717-4562-b3fc-2c963f66afa6",
			expected: "projects:detail:3fa85f64-5717-4562-b3fc-2c963f66afa6",
		},
		{
			name:     "distinct uuids get distinct keys",
			uuid:     "00000000-0000-0000-0000-000000000000",
			expected: "projects:detail:00000000-0000-0000-0000-000000000000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := projectCacheKey(tt.uuid); got != tt.expected {
				t.Errorf("projectCacheKey(%q) = %q; want %q", tt.uuid, got, tt.expected)
			}
		})
	}

	if projectCacheKey("abc") == projectListCacheKey {
		t.Error("detail key must not collide with the list key")
	}
}
