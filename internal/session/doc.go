// Package session provides the paged list the demo browser paginates over:
// an in-memory, time-ordered collection of browser sessions with
// Relay-style cursor windows.
//
// The store implements the pager's fetching collaborator on both levels:
// FetchPage returns a page of sessions plus its metadata for rendering, and
// Metadata alone satisfies pager.MetadataSource for the adjacent-pages
// deriver. Cursors are the session ULIDs, opaque to the pager.
//
// CachedSource wraps any metadata source with a TTL cache and single-flight
// deduplication; caching policy belongs on this side of the
// pager/collaborator boundary, never inside the deriver.
package session
