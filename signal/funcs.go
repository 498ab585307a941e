package signal

import "fmt"

// Get returns the subscribers of a channel on obj.
func Get(obj Carrier, channel string) ([]*Callback, error) {
	reg := obj.Signals()
	if reg == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChannel, channel)
	}
	return reg.Get(channel)
}

// On connects cb to a channel on obj, creating the channel if needed.
func On(obj Carrier, channel string, cb *Callback) *Callback {
	if reg := obj.Signals(); reg != nil {
		reg.Connect(channel, cb)
	}
	return cb
}

func Off(obj Carrier, channel string, cb *Callback) bool {
	reg := obj.Signals()
	if reg == nil {
		return false
	}
	return reg.Disconnect(channel, cb)
}

func Fire(obj Carrier, channel string, args ...any) error {
	reg := obj.Signals()
	if reg == nil {
		return fmt.Errorf("%w: %q", ErrUnknownChannel, channel)
	}
	return reg.Fire(channel, args...)
}

// Block blocks or unblocks channels on obj. With no channel names every
// channel on obj is affected, including the channels of the per-instance
// sources it owns.
func Block(obj Carrier, block bool, channels ...string) {
	if reg := obj.Signals(); reg != nil {
		reg.Block(block, channels...)
	}
	if len(channels) > 0 {
		return
	}
	owner, ok := obj.(Owner)
	if !ok {
		return
	}
	owner.SignalCache().each(func(v any) {
		if src, ok := v.(Source); ok {
			src.Block(block)
		}
	})
}
