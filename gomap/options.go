package gomap

type Option func(*options)

type options struct {
	maxDepth int
}

// MaxDepth caps inference recursion at n levels. Zero means unlimited;
// cyclic graphs are still caught by the visited-pointer guard.
func MaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
