package paginate

// CursorStore keeps named cursors for the lifetime of a display session.
type CursorStore interface {
	Cursor(key string) int
	SetCursor(key string, v int)
}

// Persistent is a cyclic cursor whose position lives in a CursorStore, so
// it keeps its place while the owning section is not on screen.
type Persistent[T any] struct {
	store CursorStore
	key   string
	items []T
}

func NewPersistent[T any](store CursorStore, key string, items []T) *Persistent[T] {
	p := &Persistent[T]{store: store, key: key}
	p.Replace(items)
	return p
}

// Replace swaps the catalog; a stored cursor now out of range resets to 0.
func (p *Persistent[T]) Replace(items []T) {
	p.items = items
	if i := p.store.Cursor(p.key); i < 0 || i >= len(items) {
		p.store.SetCursor(p.key, 0)
	}
}

func (p *Persistent[T]) Len() int   { return len(p.items) }
func (p *Persistent[T]) Index() int { return p.store.Cursor(p.key) }

// Current returns the item at the stored cursor without moving it.
func (p *Persistent[T]) Current() (item T, ok bool) {
	if len(p.items) == 0 {
		return item, false
	}
	return p.items[p.store.Cursor(p.key)%len(p.items)], true
}

// Next returns the item at the stored cursor, then advances it.
func (p *Persistent[T]) Next() (item T, ok bool) {
	item, ok = p.Current()
	p.Hide()
	return item, ok
}

// Hide advances the cursor. It is called when the section is deactivated
// so the next time it is shown it displays the following item.
func (p *Persistent[T]) Hide() {
	if len(p.items) == 0 {
		p.store.SetCursor(p.key, 0)
		return
	}
	p.store.SetCursor(p.key, (p.store.Cursor(p.key)+1)%len(p.items))
}
