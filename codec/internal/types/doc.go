// Package types defines the immutable type descriptor tree for the codec.
//
// A Type describes one encodable shape: a value type (integers, boolean,
// address, fixed-size bytes, enumeration), an aggregate (fixed array,
// dynamic array, tuple), or a dynamic byte string. Layout properties used
// on every encode and decode step (whether the type is dynamic-size, how
// many head words it occupies) are computed once at construction and cached
// on the node, so trees never require locking.
//
// Constructors panic on malformed shapes; a bad type tree is a programmer
// error at construction time, never a runtime decode condition.
//
// This package is internal to the codec.
package types
