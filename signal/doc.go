// Package signal holds named channels of subscribers and the sources built on
// them.
//
// A Registry maps channel names to ordered subscriber lists with connect,
// disconnect, fire and block operations. An Instance is a named source that
// owns a Registry; setters and observable properties embed one. Dispatch is
// synchronous: Fire returns after every subscriber has returned.
//
// Types that declare setters or properties once and use them on many values
// embed Host, which keeps one materialized source per descriptor for that
// value only.
package signal
