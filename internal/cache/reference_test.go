package cache

import (
	"context"
	"testing"
	"time"
)

func TestNilReferenceIsNoOp(t *testing.T) {
	var ref *Reference
	ctx := context.Background()

	var dest []string
	if ref.GetJSON(ctx, KeyRoles, &dest) {
		t.Fatal("nil cache reported a hit")
	}

	// Must not panic.
	ref.SetJSON(ctx, KeyRoles, []string{"Admin"})
	ref.Invalidate(ctx, KeyRoles, KeySpecies)
}

func TestNewFromURLEmptyDisables(t *testing.T) {
	if ref := NewFromURL("", time.Minute); ref != nil {
		t.Fatal("empty URL should disable the cache")
	}
}

func TestNewFromURLInvalidDisables(t *testing.T) {
	if ref := NewFromURL("://not-a-url", time.Minute); ref != nil {
		t.Fatal("unparseable URL should disable the cache")
	}
}
