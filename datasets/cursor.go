package datasets

// Cursor reads one split sequentially.
type Cursor struct {
	data  []Record
	index []int
	pos   int
}

// Next returns the next unread record and advances.
func (c *Cursor) Next() (Record, bool) {
	if c.pos >= len(c.index) {
		return Record{}, false
	}
	rec := c.data[c.index[c.pos]]
	c.pos++
	return rec, true
}

// HasNext reports whether unread records remain.
func (c *Cursor) HasNext() bool {
	return c.pos < len(c.index)
}

// Reset rewinds the cursor to the first record.
func (c *Cursor) Reset() {
	c.pos = 0
}

// Len returns the number of records in the split.
func (c *Cursor) Len() int {
	return len(c.index)
}
