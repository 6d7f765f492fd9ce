package parse

const defaultMaxDepth = 128

type parseOpts struct {
	preserveOrder bool
	maxDepth      int
}

type ParseOption func(*parseOpts)

// PreserveOrder makes dynamically decoded maps keep their entries in
// document order instead of sorted by key.
func PreserveOrder() ParseOption {
	return func(o *parseOpts) { o.preserveOrder = true }
}

// MaxDepth limits the nesting of containers. Deeper input fails with
// token.ExceededRecursionLimit.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

func newOpts(opts []ParseOption) *parseOpts {
	o := &parseOpts{maxDepth: defaultMaxDepth}
	for _, f := range opts {
		f(o)
	}
	return o
}
