package pager

import "context"

// PageMetadata is the server-reported description of the page a window
// fetched: whether pages exist on either side, and the cursors bounding the
// returned items. Either cursor may be nil when the page is empty.
//
// Metadata is authoritative once resolved: the deriver trusts these flags
// over its own optimism, even if a later inconsistent fetch could disagree.
type PageMetadata struct {
	HasPreviousPage bool
	HasNextPage     bool
	StartCursor     *Cursor
	EndCursor       *Cursor
}

// MetadataSource fetches the page metadata for a window. It is the
// transport-owning collaborator: retry, caching and timeout policy live
// behind this function, never in the pager. Errors are propagated to the
// deriver's result unchanged.
type MetadataSource func(ctx context.Context, window Pagination) (PageMetadata, error)
