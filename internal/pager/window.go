package pager

import "fmt"

// DefaultPageSize is the number of items requested per page until the
// page-size cell is changed.
const DefaultPageSize = 6

// Cursor is an opaque token identifying a position in an ordered list,
// supplied by a previous page fetch. The pager never inspects its contents.
type Cursor string

// CursorPtr returns a pointer to c, for building windows and metadata.
func CursorPtr(c Cursor) *Cursor {
	return &c
}

// Direction distinguishes the two window shapes.
type Direction int

const (
	// DirectionForward requests items strictly after a cursor.
	DirectionForward Direction = iota
	// DirectionBackward requests items strictly before a cursor.
	DirectionBackward
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	if d == DirectionBackward {
		return "backward"
	}
	return "forward"
}

// Pagination is a request window over an ordered list: either a forward
// window (up to Size items strictly after the cursor, nil meaning the start
// of the list) or a backward window (up to Size items strictly before the
// cursor, nil meaning the end of the list).
//
// The type is a tagged union: a value is always exactly one of the two
// shapes, fixed at construction. The zero value is a forward window of size
// zero from the start of the list; callers are expected to build windows
// through Forward and Backward with a positive size.
type Pagination struct {
	direction Direction
	size      int
	cursor    *Cursor
}

// Forward builds a window requesting up to first items strictly after the
// given cursor. A nil cursor means the start of the list.
func Forward(first int, after *Cursor) Pagination {
	return Pagination{direction: DirectionForward, size: first, cursor: after}
}

// Backward builds a window requesting up to last items strictly before the
// given cursor. A nil cursor means the end of the list.
func Backward(last int, before *Cursor) Pagination {
	return Pagination{direction: DirectionBackward, size: last, cursor: before}
}

// Direction returns which shape this window is.
func (p Pagination) Direction() Direction {
	return p.direction
}

// IsForward reports whether this is a forward (first/after) window.
func (p Pagination) IsForward() bool {
	return p.direction == DirectionForward
}

// IsBackward reports whether this is a backward (last/before) window.
func (p Pagination) IsBackward() bool {
	return p.direction == DirectionBackward
}

// Size returns the maximum number of items the window requests.
func (p Pagination) Size() int {
	return p.size
}

// Cursor returns the window's anchor cursor, nil meaning the relevant list
// boundary (start for forward windows, end for backward ones).
func (p Pagination) Cursor() *Cursor {
	return p.cursor
}

// String renders the window for logs, e.g. "forward[first=6 after=<start>]".
func (p Pagination) String() string {
	anchor := "after"
	boundary := "<start>"
	sizeField := "first"
	if p.IsBackward() {
		anchor = "before"
		boundary = "<end>"
		sizeField = "last"
	}
	at := boundary
	if p.cursor != nil {
		at = string(*p.cursor)
	}
	return fmt.Sprintf("%s[%s=%d %s=%s]", p.direction, sizeField, p.size, anchor, at)
}
