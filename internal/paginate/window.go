package paginate

// Window shows a fixed number of items per page. The page start is
// (page*size) mod max(n,1) and a short tail is padded from the front of
// the list, so near the wrap an item can appear on two consecutive pages.
type Window[T any] struct {
	items []T
	size  int
	page  Cursor
}

// NewWindow returns a window of size items per page; size < 1 is treated
// as 1.
func NewWindow[T any](items []T, size int) *Window[T] {
	return &Window[T]{items: items, size: max(size, 1), page: NewCursor(len(items))}
}

func (w *Window[T]) Replace(items []T) {
	w.items = items
	w.page.Resize(len(items))
}

func (w *Window[T]) Len() int  { return len(w.items) }
func (w *Window[T]) Size() int { return w.size }

// Page is the page cursor, always in [0, n).
func (w *Window[T]) Page() int { return w.page.Pos() }

// Start is the list index of the first item on the current page.
func (w *Window[T]) Start() int {
	return (w.page.Pos() * w.size) % max(len(w.items), 1)
}

// Indices returns the list indices visible on the current page, exactly
// size of them when the list is non-empty and none when it is empty.
func (w *Window[T]) Indices() []int {
	n := len(w.items)
	if n == 0 {
		return nil
	}
	start := w.Start()
	out := make([]int, w.size)
	for j := range out {
		out[j] = (start + j) % n
	}
	return out
}

// Visible returns the items on the current page.
func (w *Window[T]) Visible() []T {
	idx := w.Indices()
	if idx == nil {
		return nil
	}
	out := make([]T, len(idx))
	for j, i := range idx {
		out[j] = w.items[i]
	}
	return out
}

func (w *Window[T]) Forward()       { w.page.Forward() }
func (w *Window[T]) BackwardClamp() { w.page.BackwardClamp() }
func (w *Window[T]) Seek(p int)     { w.page.Seek(p) }
