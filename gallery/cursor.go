package gallery

// Cursor is a circular index over [0, total).
type Cursor struct {
	index int
	total int
}

func NewCursor(total int) *Cursor {
	c := &Cursor{}
	c.SetTotal(total)
	return c
}

func (c *Cursor) Next() {
	if c.total == 0 {
		return
	}
	c.index = (c.index + 1) % c.total
}

func (c *Cursor) Previous() {
	if c.total == 0 {
		return
	}
	c.index = (c.index - 1 + c.total) % c.total
}

// SetTotal must be called after every catalog mutation, before the cursor is
// read again.
func (c *Cursor) SetTotal(n int) {
	if n < 0 {
		n = 0
	}
	c.total = n
	if c.index >= n {
		c.index = 0
	}
}

func (c *Cursor) Reset() {
	c.index = 0
}

func (c *Cursor) Index() int {
	return c.index
}

func (c *Cursor) Total() int {
	return c.total
}
