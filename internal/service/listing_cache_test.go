package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"marketplace-backend/internal/model"
	"marketplace-backend/internal/sample"
)

// fakeCache is an in-memory ListCache that records traffic and can be made
// to fail on either side.
type fakeCache struct {
	data    map[string][]byte
	getErr  error
	setErr  error
	sets    []string
	deletes []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (f *fakeCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	if f.getErr != nil {
		return false, f.getErr
	}
	raw, ok := f.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = raw
	f.sets = append(f.sets, key)
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	delete(f.data, key)
	f.deletes = append(f.deletes, key)
	return nil
}

func TestBrowseCacheHitSkipsStore(t *testing.T) {
	repo := &fakeListingRepo{listings: []model.Listing{{ID: "x1", Title: "Canoe", Category: "Sporting Goods"}}}
	c := newFakeCache()
	svc := NewListingService(repo, sample.NewProvider(), c)

	// First browse populates the cache from the store.
	first, fallback := svc.Browse(context.Background())
	if fallback || len(first) != 1 || repo.listCalls != 1 {
		t.Fatalf("fallback=%v len=%d listCalls=%d", fallback, len(first), repo.listCalls)
	}
	if len(c.sets) != 1 || c.sets[0] != listCacheKey {
		t.Fatalf("sets=%v", c.sets)
	}

	// Second browse is served from the cache even with the store down.
	repo.err = errStoreDown
	second, fallback := svc.Browse(context.Background())
	if fallback {
		t.Fatal("cache hit must not be flagged as fallback")
	}
	if len(second) != 1 || second[0].ID != "x1" {
		t.Fatalf("got=%+v", second)
	}
	if repo.listCalls != 1 {
		t.Fatalf("store consulted on a cache hit, listCalls=%d", repo.listCalls)
	}
}

func TestBrowseFallbackIsNeverCached(t *testing.T) {
	c := newFakeCache()
	svc := NewListingService(&fakeListingRepo{err: errStoreDown}, sample.NewProvider(), c)

	listings, fallback := svc.Browse(context.Background())
	if !fallback || len(listings) != 5 {
		t.Fatalf("fallback=%v len=%d", fallback, len(listings))
	}
	if len(c.sets) != 0 {
		t.Fatalf("fallback result was cached: sets=%v", c.sets)
	}
	if len(c.data) != 0 {
		t.Fatal("cache must stay empty after a fallback read")
	}
}

func TestBrowseCacheErrorsDegradeToStore(t *testing.T) {
	repo := &fakeListingRepo{listings: []model.Listing{{ID: "x1", Title: "Canoe", Category: "Sporting Goods"}}}
	c := newFakeCache()
	c.getErr = errors.New("redis: connection pool timeout")
	c.setErr = errors.New("redis: connection pool timeout")
	svc := NewListingService(repo, sample.NewProvider(), c)

	listings, fallback := svc.Browse(context.Background())
	if fallback {
		t.Fatal("cache failure is not a store failure")
	}
	if len(listings) != 1 || repo.listCalls != 1 {
		t.Fatalf("len=%d listCalls=%d", len(listings), repo.listCalls)
	}
}

func TestWritesInvalidateListCache(t *testing.T) {
	stored := model.Listing{ID: "x1", Title: "Canoe", SellerEmail: "owner@example.com"}
	repo := &fakeListingRepo{listings: []model.Listing{stored}}
	c := newFakeCache()
	svc := NewListingService(repo, sample.NewProvider(), c)

	if _, fallback := svc.Browse(context.Background()); fallback {
		t.Fatal("unexpected fallback")
	}
	if _, err := svc.Create(context.Background(), CreateListingInput{
		Title:       "Kayak",
		Price:       200,
		Category:    "Sporting Goods",
		SellerEmail: "s@example.com",
		SellerName:  "Sam",
	}); err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(c.deletes) != 1 || c.deletes[0] != listCacheKey {
		t.Fatalf("create did not invalidate: deletes=%v", c.deletes)
	}

	if err := svc.Delete(context.Background(), "x1", "owner@example.com"); err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(c.deletes) != 2 {
		t.Fatalf("delete did not invalidate: deletes=%v", c.deletes)
	}
}
