package cbor

// FindKey searches a map cursor (as produced by EnterMap) for a text-string
// key equal to want, leaving the cursor positioned at the corresponding
// value on success. It does not attempt to match non-text keys: a
// non-text key is skipped along with its value.
//
// Returns ErrNotFound if the map is exhausted without a match; this is the
// one error after which the cursor remains well-defined, positioned just
// past the last entry examined.
func (c *Cursor) FindKey(want string) error {
	for !c.AtEnd() {
		major, err := c.Type()
		if err != nil {
			return err
		}
		if major != MajorText {
			if err := c.Skip(); err != nil {
				return err
			}
			if err := c.Skip(); err != nil {
				return err
			}
			continue
		}
		key, err := c.GetText()
		if err != nil {
			return err
		}
		if key == want {
			return nil
		}
		if err := c.Skip(); err != nil {
			return err
		}
	}
	return ErrNotFound
}
