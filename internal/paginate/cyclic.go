package paginate

// Cyclic shows one item at a time from a list, wrapping at either end.
type Cyclic[T any] struct {
	items []T
	cur   Cursor
}

func NewCyclic[T any](items []T) *Cyclic[T] {
	return &Cyclic[T]{items: items, cur: NewCursor(len(items))}
}

// Replace swaps in a freshly fetched list. The cursor is kept when still
// in range and reset to 0 otherwise.
func (c *Cyclic[T]) Replace(items []T) {
	c.items = items
	c.cur.Resize(len(items))
}

func (c *Cyclic[T]) Len() int   { return len(c.items) }
func (c *Cyclic[T]) Index() int { return c.cur.Pos() }

// Current returns the visible item; ok is false for an empty list.
func (c *Cyclic[T]) Current() (item T, ok bool) {
	if len(c.items) == 0 {
		return item, false
	}
	return c.items[c.cur.Pos()%len(c.items)], true
}

func (c *Cyclic[T]) Forward()       { c.cur.Forward() }
func (c *Cyclic[T]) Backward()      { c.cur.Backward() }
func (c *Cyclic[T]) BackwardClamp() { c.cur.BackwardClamp() }
func (c *Cyclic[T]) Seek(i int)     { c.cur.Seek(i) }
