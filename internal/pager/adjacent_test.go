package pager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjacent_OptimisticWhileMetadataPending(t *testing.T) {
	tests := []struct {
		name         string
		current      Pagination
		wantPrevious *Pagination
		wantNext     *Pagination
	}{
		{
			name:    "forward from start implies nothing",
			current: Forward(6, nil),
		},
		{
			name:         "forward past a cursor implies a previous page",
			current:      Forward(6, CursorPtr("c")),
			wantPrevious: windowPtr(Backward(6, nil)),
		},
		{
			name:    "backward from end implies nothing",
			current: Backward(6, nil),
		},
		{
			name:     "backward before a cursor implies a next page",
			current:  Backward(6, CursorPtr("c")),
			wantNext: windowPtr(Forward(6, nil)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Adjacent(tt.current, 6, nil)
			assert.Equal(t, tt.wantPrevious, got.Previous)
			assert.Equal(t, tt.wantNext, got.Next)
		})
	}
}

func TestAdjacent_AuthoritativeORsOptimistic(t *testing.T) {
	tests := []struct {
		name         string
		current      Pagination
		meta         PageMetadata
		wantPrevious *Pagination
		wantNext     *Pagination
	}{
		{
			name:     "server confirms next only",
			current:  Forward(6, nil),
			meta:     PageMetadata{HasNextPage: true, EndCursor: CursorPtr("E1")},
			wantNext: windowPtr(Forward(6, CursorPtr("E1"))),
		},
		{
			name:         "server confirms previous only",
			current:      Forward(6, CursorPtr("E1")),
			meta:         PageMetadata{HasPreviousPage: true, StartCursor: CursorPtr("S2")},
			wantPrevious: windowPtr(Backward(6, CursorPtr("S2"))),
		},
		{
			name:    "both flags false on boundary window means no affordance",
			current: Forward(6, nil),
			meta:    PageMetadata{},
		},
		{
			name:    "server denies previous but window cursor still implies one",
			current: Forward(6, CursorPtr("c")),
			meta:    PageMetadata{HasPreviousPage: false, StartCursor: CursorPtr("S1")},
			// Optimism survives the OR: the window is not at the list start.
			wantPrevious: windowPtr(Backward(6, CursorPtr("S1"))),
		},
		{
			name:    "server denies next but backward cursor still implies one",
			current: Backward(6, CursorPtr("c")),
			meta:    PageMetadata{HasNextPage: false, EndCursor: CursorPtr("E9")},
			wantNext: windowPtr(Forward(6, CursorPtr("E9"))),
		},
		{
			name:         "both directions available",
			current:      Forward(6, CursorPtr("mid")),
			meta:         PageMetadata{HasPreviousPage: true, HasNextPage: true, StartCursor: CursorPtr("S"), EndCursor: CursorPtr("E")},
			wantPrevious: windowPtr(Backward(6, CursorPtr("S"))),
			wantNext:     windowPtr(Forward(6, CursorPtr("E"))),
		},
		{
			name:         "missing boundary cursors fall back to list boundaries",
			current:      Forward(6, nil),
			meta:         PageMetadata{HasPreviousPage: true, HasNextPage: true},
			wantPrevious: windowPtr(Backward(6, nil)),
			wantNext:     windowPtr(Forward(6, nil)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Adjacent(tt.current, 6, &tt.meta)
			assert.Equal(t, tt.wantPrevious, got.Previous)
			assert.Equal(t, tt.wantNext, got.Next)
		})
	}
}

func TestAdjacent_ProducedWindowsUseGivenSize(t *testing.T) {
	meta := PageMetadata{HasPreviousPage: true, HasNextPage: true}
	got := Adjacent(Forward(6, CursorPtr("c")), 25, &meta)

	require.NotNil(t, got.Previous)
	require.NotNil(t, got.Next)
	assert.Equal(t, 25, got.Previous.Size())
	assert.Equal(t, 25, got.Next.Size())
}

// Walks the round trip from the first page to the second and back, the way a
// Next/Previous UI drives the pager.
func TestAdjacent_ForwardThenBackScenario(t *testing.T) {
	size := NewSizeCell()
	c := NewController(size)

	// First page: server reports a next page ending at E1.
	meta := PageMetadata{HasNextPage: true, EndCursor: CursorPtr("E1")}
	pages := Adjacent(c.Current(), c.PageSize(), &meta)
	require.Nil(t, pages.Previous)
	require.NotNil(t, pages.Next)
	assert.Equal(t, Forward(6, CursorPtr("E1")), *pages.Next)

	// Follow the next affordance.
	c.Dispatch(Goto{Window: *pages.Next})
	assert.Equal(t, Forward(6, CursorPtr("E1")), c.Current())

	// Second page: server reports only a previous page starting at S2.
	meta = PageMetadata{HasPreviousPage: true, StartCursor: CursorPtr("S2")}
	pages = Adjacent(c.Current(), c.PageSize(), &meta)
	require.NotNil(t, pages.Previous)
	assert.Equal(t, Backward(6, CursorPtr("S2")), *pages.Previous)
	assert.Nil(t, pages.Next)
}

func TestAdjacent_LastPagePendingShowsNothing(t *testing.T) {
	size := NewSizeCell()
	c := NewController(size)

	c.Dispatch(LastPage{})
	require.Equal(t, Backward(6, nil), c.Current())

	// No before cursor to imply a next page, wrong shape for a previous one.
	pages := Adjacent(c.Current(), c.PageSize(), nil)
	assert.Nil(t, pages.Previous)
	assert.Nil(t, pages.Next)
}

func windowPtr(p Pagination) *Pagination {
	return &p
}
