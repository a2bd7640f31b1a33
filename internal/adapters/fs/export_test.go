package fs

// SetRemove replaces the function the cleaner uses to delete a single entry.
func (c *Cleaner) SetRemove(remove func(string) error) {
	c.remove = remove
}
