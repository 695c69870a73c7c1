package services

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestGetOrSetWithoutCache(t *testing.T) {
	ctx := context.Background()

	calls := 0
	got, err := GetOrSet(nil, ctx, "projects:list", time.Minute, func() ([]string, error) {
		calls++
		return []string{"alpha"}, nil
	})
	if err != nil {
		t.Fatalf("GetOrSet with nil cache returned error: %v", err)
	}
	if len(got) != 1 || got[0] != "alpha" {
		t.Errorf("GetOrSet = %v; want [alpha]", got)
	}
	if calls != 1 {
		t.Errorf("loader called %d times; want 1", calls)
	}

	// Without a backing store every call falls through to the loader
	_, err = GetOrSet(nil, ctx, "projects:list", time.Minute, func() ([]string, error) {
		calls++
		return nil, nil
	})
	if err != nil {
		t.Fatalf("second GetOrSet returned error: %v", err)
	}
	if calls != 2 {
		t.Errorf("loader called %d times after two lookups; want 2", calls)
	}
}

func TestGetOrSetWithoutCachePropagatesLoaderError(t *testing.T) {
	wantErr := errors.New("database unavailable")
	_, err := GetOrSet(nil, context.Background(), "projects:detail:abc", time.Minute, func() (int, error) {
		return 0, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("GetOrSet error = %v; want %v", err, wantErr)
	}
}
