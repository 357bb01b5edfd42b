// Package cache provides the in-memory cache of rendered checklist
// pages for the preview server. It uses patrickmn/go-cache for
// TTL-based expiry so an idle server drops stale renders on its own.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Pages caches rendered HTML keyed by document digest, so a re-render
// only happens when the source actually changed.
type Pages struct {
	store *gocache.Cache
}

// New creates a page cache with the given TTL and cleanup interval.
func New(defaultTTL, cleanupInterval time.Duration) *Pages {
	return &Pages{
		store: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Page returns the cached render for a digest.
func (p *Pages) Page(digest string) ([]byte, bool) {
	v, found := p.store.Get(digest)
	if !found {
		return nil, false
	}
	page, ok := v.([]byte)
	return page, ok
}

// SetPage stores a rendered page under its digest with the default TTL.
func (p *Pages) SetPage(digest string, html []byte) {
	p.store.Set(digest, html, gocache.DefaultExpiration)
}

// Invalidate drops every cached page. Called when the source file
// changes on disk.
func (p *Pages) Invalidate() {
	p.store.Flush()
}

// Len returns the number of cached pages.
func (p *Pages) Len() int {
	return p.store.ItemCount()
}
