package passvault

// Completion handler types for the non-blocking convention. A handler is
// invoked exactly once, with either the operation's value and a nil error
// or a zero value and the error.

// DataFunc receives a buffer-producing operation's output.
type DataFunc func(data []byte, err error)

// SizeFunc receives the encrypted-size query's result.
type SizeFunc func(size uint32, err error)

// DoneFunc receives the outcome of an in-place restore operation.
type DoneFunc func(err error)

// BoolFunc receives the is-data-encrypted predicate's result. The
// predicate has no error path.
type BoolFunc func(encrypted bool)

// LengthFunc receives a length-constant query's result. Length queries
// have no error path.
type LengthFunc func(length uint32)

// dispatch runs op under the non-blocking convention's decision rule: a
// supplied handler gets the outcome on its own goroutine; with no handler
// the codec either falls back to the blocking path (default) or runs op
// fire-and-forget and returns zero values. Both calling conventions share
// op's body, so they cannot diverge in semantics or error shape.
func dispatch[T any](c *Codec, op func() (T, error), fn func(T, error)) (T, error) {
	var zero T
	if fn != nil {
		go func() { fn(op()) }()
		return zero, nil
	}
	if c.blockingFallback {
		return op()
	}
	go func() { _, _ = op() }()
	return zero, nil
}

// dispatchDone is dispatch for operations producing no value.
func dispatchDone(c *Codec, op func() error, fn DoneFunc) error {
	if fn != nil {
		go func() { fn(op()) }()
		return nil
	}
	if c.blockingFallback {
		return op()
	}
	go func() { _ = op() }()
	return nil
}
