package catalog

import (
	"context"
	"sync"
	"time"

	"greencart/internal"
	"greencart/internal/util"
)

// Index owns the current catalogue snapshot. Refresh is the only writer and
// swaps the whole entry slice at once; readers always see a complete
// snapshot. Overlapping refreshes share one in-flight fetch.
type Index struct {
	mu       sync.Mutex
	provider Provider
	interval time.Duration

	entries   []internal.IndexedEntry
	source    string
	lastTs    time.Time
	lastError *string
	loaded    bool
	inFlight  *refreshCall
}

type refreshCall struct {
	done chan struct{}
	meta internal.CatalogMeta
}

// NewIndex starts out on the bundled catalogue. With a nil provider the
// index stays on the bundled data for the whole process lifetime.
func NewIndex(provider Provider, refreshInterval time.Duration) *Index {
	idx := &Index{
		provider: provider,
		interval: refreshInterval,
		entries:  BuildEntries(Fallback),
		source:   "local:fallback",
	}
	if provider != nil {
		idx.source = "remote:pending"
	}
	return idx
}

// BuildEntries precomputes normalized names for matching. Entries without an
// id or without any names are dropped; a bad row never blocks the rest.
func BuildEntries(entries []internal.CatalogEntry) []internal.IndexedEntry {
	out := make([]internal.IndexedEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.ID == "" || len(entry.Names) == 0 {
			continue
		}
		normalized := make([]string, len(entry.Names))
		for i, name := range entry.Names {
			normalized[i] = util.Normalize(name)
		}
		out = append(out, internal.IndexedEntry{CatalogEntry: entry, NormalizedNames: normalized})
	}
	return out
}

// Entries returns the current snapshot. Callers must not mutate it.
func (x *Index) Entries() []internal.IndexedEntry {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.entries
}

func (x *Index) Meta() internal.CatalogMeta {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.metaLocked()
}

func (x *Index) metaLocked() internal.CatalogMeta {
	var ts int64
	if !x.lastTs.IsZero() {
		ts = x.lastTs.UnixMilli()
	}
	return internal.CatalogMeta{
		Source:        x.source,
		RemoteEnabled: x.provider != nil,
		LastRefreshTs: ts,
		ItemCount:     len(x.entries),
		LastError:     x.lastError,
	}
}

// Refresh fetches the catalogue from the remote provider. Failures and empty
// results fall back to the bundled catalogue; the error is recorded in the
// metadata but never returned. Calls within the refresh interval are no-ops
// unless forced, and callers arriving while a fetch is outstanding wait for
// that fetch instead of starting their own.
func (x *Index) Refresh(ctx context.Context, force bool) internal.CatalogMeta {
	x.mu.Lock()
	if x.provider == nil {
		x.lastTs = time.Now()
		x.source = "local:fallback"
		x.lastError = nil
		meta := x.metaLocked()
		x.mu.Unlock()
		return meta
	}

	if !force && !x.lastTs.IsZero() && time.Since(x.lastTs) < x.interval {
		meta := x.metaLocked()
		x.mu.Unlock()
		return meta
	}

	if x.inFlight != nil {
		call := x.inFlight
		x.mu.Unlock()
		<-call.done
		return call.meta
	}

	call := &refreshCall{done: make(chan struct{})}
	x.inFlight = call
	x.mu.Unlock()

	entries, err := x.provider.FetchEntries(ctx)

	x.mu.Lock()
	switch {
	case err != nil:
		msg := err.Error()
		x.lastError = &msg
		x.entries = BuildEntries(Fallback)
		x.source = "local:fallback"
	case len(entries) == 0:
		// Empty remote table keeps the bundled catalogue.
		x.lastError = nil
		x.entries = BuildEntries(Fallback)
		x.source = "local:fallback"
	default:
		x.lastError = nil
		x.entries = BuildEntries(entries)
		x.source = "remote:" + x.provider.Name()
	}
	x.lastTs = time.Now()
	x.loaded = true
	call.meta = x.metaLocked()
	x.inFlight = nil
	x.mu.Unlock()
	close(call.done)

	return call.meta
}

// EnsureLoaded forces a refresh when the index has never loaded from the
// provider or the refresh interval has elapsed; otherwise it is I/O-free.
func (x *Index) EnsureLoaded(ctx context.Context) internal.CatalogMeta {
	x.mu.Lock()
	if x.provider == nil {
		meta := x.metaLocked()
		x.mu.Unlock()
		return meta
	}
	stale := !x.loaded || time.Since(x.lastTs) > x.interval
	x.mu.Unlock()

	if stale {
		return x.Refresh(ctx, true)
	}
	return x.Meta()
}
