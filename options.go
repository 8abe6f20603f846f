package fluent

type options struct {
	name     string
	observer Observer
}

// Option configures a Memo created by Memoize.
type Option func(*options)

// WithObserver attaches an Observer that receives hit, miss, dedup, and error
// events for the lifetime of the memo.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		opts.observer = o
	}
}

// WithName labels the memo. The name shows up in String and in observer events.
func WithName(name string) Option {
	return func(opts *options) {
		opts.name = name
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
