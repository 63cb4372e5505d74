package nav

// Cursor tracks a position inside a list of Count items. Every operation
// is a no-op when the list is empty; the cursor is meaningless then.
type Cursor struct {
	Index int
	Count int
}

// Move shifts the cursor by delta with wrap-around. Reports whether the
// cursor landed somewhere new.
func (c *Cursor) Move(delta int) bool {
	if c.Count <= 0 {
		c.Index = 0
		return false
	}
	old := c.Index
	c.Index = WrapIndex(c.Index, delta, c.Count)
	return c.Index != old
}

// Home jumps to the first item.
func (c *Cursor) Home() bool {
	if c.Count <= 0 {
		c.Index = 0
		return false
	}
	old := c.Index
	c.Index = 0
	return old != 0
}

// End jumps to the last item.
func (c *Cursor) End() bool {
	if c.Count <= 0 {
		c.Index = 0
		return false
	}
	old := c.Index
	c.Index = c.Count - 1
	return old != c.Index
}

// Resize updates the item count and clamps the cursor into range.
func (c *Cursor) Resize(count int) {
	c.Count = count
	c.Index = ClampIndex(c.Index, count)
}

// Reset moves the cursor back to the first item of a count-sized list.
func (c *Cursor) Reset(count int) {
	c.Count = count
	c.Index = 0
}

// Valid reports whether the cursor points at an existing item.
func (c *Cursor) Valid() bool {
	return c.Count > 0 && c.Index >= 0 && c.Index < c.Count
}
