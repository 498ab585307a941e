package signaler

import (
	"fmt"

	"github.com/delaneyj/eventsignal/signal"
)

// Arg converts args[i] to T. A nil argument converts to the zero value.
func Arg[T any](args []any, i int) (T, error) {
	var zero T
	if i >= len(args) {
		return zero, fmt.Errorf("%w: want at least %d, got %d", signal.ErrBadArguments, i+1, len(args))
	}
	if args[i] == nil {
		return zero, nil
	}
	v, ok := args[i].(T)
	if !ok {
		return zero, fmt.Errorf("%w: argument %d is %T, want %T", signal.ErrBadArguments, i, args[i], zero)
	}
	return v, nil
}
