package libdiff

// Reverse returns the change undoing c: patching the result of Patch(doc, c)
// with Reverse(c) yields doc again.
func Reverse(c Change) Change {
	switch c := c.(type) {
	case Insert:
		return Delete(c)
	case Delete:
		return Insert(c)
	case Replace:
		return Replace{From: c.To, To: c.From}
	case Fields:
		res := make(Fields, len(c))
		for i, e := range c {
			res[i] = Entry{Key: e.Key, Change: Reverse(e.Change)}
		}
		return res
	case Elements:
		res := make(Elements, len(c))
		for i, e := range c {
			res[i] = Reverse(e)
		}
		return res
	case Text:
		res := make(Text, len(c))
		for i, e := range c {
			switch e := e.(type) {
			case Ins:
				res[i] = Del(e)
			case Del:
				res[i] = Ins(e)
			default:
				res[i] = e
			}
		}
		return res
	}
	return c
}
