package fluent

// Then composes fn with f into a new supplier. Nothing runs until the
// returned function is called. f is not called when fn fails, and errors
// from either step are returned unchanged.
//
// Then panics if fn or f is nil.
func Then[T, R any](fn func() (T, error), f func(T) (R, error)) func() (R, error) {
	if fn == nil || f == nil {
		panic("fluent: Then requires non-nil functions")
	}
	return func() (R, error) {
		v, err := fn()
		if err != nil {
			var zero R
			return zero, err
		}
		return f(v)
	}
}
