package signal

// Members is a table of named members of an object: signal sources,
// accessors, setter functions and getter functions. Binding resolves names
// against it and stores promoted sources back into it, so an Object should
// return the same map on every call.
type Members map[string]any

// Object exposes its member table.
type Object interface {
	Members() Members
}

// Accessor is a plain, unobserved property. Binding promotes it to an
// observable property.
type Accessor struct {
	Get    func() any
	Set    func(value any)
	Delete func()
}
