package pager

// Action is the only way to move a Controller: jump to the first page, jump
// to the last page, or jump to an explicit window. All actions are valid in
// every state; there are no forbidden transitions.
type Action interface {
	isAction()
}

// FirstPage resets the controller to its default state. The first-page
// window is re-derived lazily on every read, so a page-size change while on
// the first page is reflected immediately.
type FirstPage struct{}

func (FirstPage) isAction() {}

// LastPage moves the controller to a backward window anchored at the end of
// the list. Unlike FirstPage, the page size is frozen at dispatch time: the
// last page needs a concrete window to request immediately.
type LastPage struct{}

func (LastPage) isAction() {}

// Goto moves the controller to the given window verbatim, including
// whatever size it carries.
type Goto struct {
	Window Pagination
}

func (Goto) isAction() {}
