// Package paginate turns content lists into the slices a slide shows:
// a single-item cyclic cursor, a fixed-size wraparound window and a
// cursor that persists across a section being hidden and re-shown.
package paginate

// Cursor is an offset into a list of length n. After every operation the
// position is in [0, n), or 0 when n is 0.
type Cursor struct {
	pos int
	n   int
}

// NewCursor returns a cursor at 0 over a list of length n.
func NewCursor(n int) Cursor {
	return Cursor{n: max(n, 0)}
}

func (c Cursor) Pos() int { return c.pos }
func (c Cursor) Len() int { return c.n }

// Resize adopts a new list length. A position that would now be out of
// range resets to 0; an in-range one is kept.
func (c *Cursor) Resize(n int) {
	c.n = max(n, 0)
	if c.pos >= c.n || c.pos < 0 {
		c.pos = 0
	}
}

// Forward moves by one, wrapping to 0 past the end.
func (c *Cursor) Forward() {
	if c.n == 0 {
		c.pos = 0
		return
	}
	c.pos = (c.pos + 1) % c.n
}

// Backward moves back by one, wrapping to the last index below 0.
func (c *Cursor) Backward() {
	if c.n == 0 {
		c.pos = 0
		return
	}
	c.pos = (c.pos - 1 + c.n) % c.n
}

// BackwardClamp moves back by one but never below 0.
func (c *Cursor) BackwardClamp() {
	if c.pos > 0 {
		c.pos--
	}
}

// Seek sets the position modulo the list length.
func (c *Cursor) Seek(pos int) {
	if c.n == 0 {
		c.pos = 0
		return
	}
	c.pos = ((pos % c.n) + c.n) % c.n
}
