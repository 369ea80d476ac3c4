package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/casthive/media-store-go/internal/db"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewCache(mr.Addr(), "")
}

func TestCache_MissReturnsNil(t *testing.T) {
	c := newTestCache(t)

	data, err := c.GetAssetDetails(context.Background(), db.NewUUID())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data != nil {
		t.Errorf("expected a cache miss, got %q", data)
	}

	etag, err := c.GetEtagAssetDetails(context.Background(), db.NewUUID())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if etag != "" {
		t.Errorf("expected empty etag on miss, got %q", etag)
	}
}

func TestCache_SetGetRoundtrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()
	id := db.NewUUID()

	c.SetAssetDetails(ctx, id, []byte(`{"id":"x"}`))
	c.SetEtagAssetDetails(ctx, id, `"abcd1234"`)

	data, err := c.GetAssetDetails(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `{"id":"x"}` {
		t.Errorf("data = %q", data)
	}

	etag, err := c.GetEtagAssetDetails(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if etag != `"abcd1234"` {
		t.Errorf("etag = %q", etag)
	}
}

func TestCache_Delete(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()
	id := db.NewUUID()

	c.SetAssetDetails(ctx, id, []byte("payload"))
	c.SetEtagAssetDetails(ctx, id, "tag")

	if err := c.DeleteAssetDetails(ctx, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.DeleteEtagAssetDetails(ctx, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if data, _ := c.GetAssetDetails(ctx, id); data != nil {
		t.Errorf("expected miss after delete, got %q", data)
	}
	if etag, _ := c.GetEtagAssetDetails(ctx, id); etag != "" {
		t.Errorf("expected empty etag after delete, got %q", etag)
	}
}
