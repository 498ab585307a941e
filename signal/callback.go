package signal

// Callback is a channel subscriber. Subscribers are compared by pointer, so
// keep the *Callback around to disconnect it later.
type Callback struct {
	fn func(args ...any) error
}

// Func wraps a plain function as a subscriber.
func Func(fn func(args ...any)) *Callback {
	return &Callback{fn: func(args ...any) error {
		fn(args...)
		return nil
	}}
}

// ErrFunc wraps a function whose error is reported back to the caller of Fire.
func ErrFunc(fn func(args ...any) error) *Callback {
	return &Callback{fn: fn}
}

// Call invokes the subscriber directly.
func (c *Callback) Call(args ...any) error {
	if c == nil || c.fn == nil {
		return nil
	}
	return c.fn(args...)
}
