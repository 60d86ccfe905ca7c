// Package pager implements a reactive controller for cursor-based
// pagination: it tracks the window a list is currently showing, accepts
// navigation actions (first page, last page, explicit window), and derives
// which adjacent pages exist from server-reported page metadata.
//
// The package reconciles three sources of truth that can disagree while a
// fetch is in flight:
//   - the shape of the current window (which direction the user last moved),
//   - the configured page size (mutable while paginated),
//   - the server's authoritative hasPreviousPage/hasNextPage flags.
//
// Availability of a previous or next page is computed optimistically from
// the current window's own cursor before metadata arrives, then ORed with
// the authoritative flags once it does, so navigation affordances never
// flicker hidden-then-shown during a fetch. See Adjacent for the exact rule.
//
// The package holds no transport: fetching a page and its metadata is the
// MetadataSource collaborator's job, including any retry or timeout policy.
package pager
