package session

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/seamlist/pageflow/internal/pager"
)

// ErrUnknownCursor is returned when a window's cursor does not identify any
// session in the store.
var ErrUnknownCursor = errors.New("unknown cursor")

// PageResult is one fetched page: the sessions in list order plus the
// metadata describing the page's surroundings.
type PageResult struct {
	Nodes []Session
	Meta  pager.PageMetadata
}

// Store is an in-memory, cursor-ordered session list implementing the
// pager's fetching collaborator. It is read-only after construction and safe
// for concurrent use.
type Store struct {
	sessions []Session
	latency  time.Duration
}

// NewStore creates a store over the given sessions, ordering them by cursor
// if they are not already.
func NewStore(sessions []Session) *Store {
	ordered := make([]Session, len(sessions))
	copy(ordered, sessions)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].ID.Compare(ordered[j].ID) < 0
	})
	return &Store{sessions: ordered}
}

// WithLatency makes every fetch wait the given duration before answering,
// to exercise the pager's pending states interactively. It returns the
// store for chaining.
func (s *Store) WithLatency(d time.Duration) *Store {
	s.latency = d
	return s
}

// Len returns the number of sessions in the store.
func (s *Store) Len() int {
	return len(s.sessions)
}

// FetchPage evaluates a pagination window against the list.
//
// Forward windows return up to Size sessions strictly after the cursor (nil
// cursor meaning the start of the list); backward windows up to Size
// sessions strictly before it (nil meaning the end). The metadata's
// previous/next flags are computed from the page's actual position, and its
// boundary cursors from the returned slice.
func (s *Store) FetchPage(ctx context.Context, window pager.Pagination) (PageResult, error) {
	if err := s.wait(ctx); err != nil {
		return PageResult{}, err
	}

	start, end, err := s.bounds(window)
	if err != nil {
		return PageResult{}, err
	}

	nodes := s.sessions[start:end]
	meta := pager.PageMetadata{
		HasPreviousPage: start > 0,
		HasNextPage:     end < len(s.sessions),
	}
	if len(nodes) > 0 {
		meta.StartCursor = pager.CursorPtr(pager.Cursor(nodes[0].Cursor()))
		meta.EndCursor = pager.CursorPtr(pager.Cursor(nodes[len(nodes)-1].Cursor()))
	}

	return PageResult{Nodes: nodes, Meta: meta}, nil
}

// Metadata fetches only the page metadata for a window. It satisfies
// pager.MetadataSource.
func (s *Store) Metadata(ctx context.Context, window pager.Pagination) (pager.PageMetadata, error) {
	res, err := s.FetchPage(ctx, window)
	if err != nil {
		return pager.PageMetadata{}, err
	}
	return res.Meta, nil
}

// bounds resolves a window to a half-open index range over the list.
func (s *Store) bounds(window pager.Pagination) (int, int, error) {
	size := window.Size()
	if size < 0 {
		size = 0
	}

	if window.IsForward() {
		start := 0
		if c := window.Cursor(); c != nil {
			idx, err := s.indexOf(string(*c))
			if err != nil {
				return 0, 0, err
			}
			start = idx + 1
		}
		end := min(start+size, len(s.sessions))
		return start, end, nil
	}

	end := len(s.sessions)
	if c := window.Cursor(); c != nil {
		idx, err := s.indexOf(string(*c))
		if err != nil {
			return 0, 0, err
		}
		end = idx
	}
	start := max(end-size, 0)
	return start, end, nil
}

// indexOf finds a session by cursor. The list is in cursor order, so a
// binary search suffices.
func (s *Store) indexOf(cursor string) (int, error) {
	idx := sort.Search(len(s.sessions), func(i int) bool {
		return s.sessions[i].Cursor() >= cursor
	})
	if idx >= len(s.sessions) || s.sessions[idx].Cursor() != cursor {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCursor, cursor)
	}
	return idx, nil
}

func (s *Store) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
