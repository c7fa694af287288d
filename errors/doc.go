// Package errors defines the small, closed set of error kinds the
// emulation core must distinguish and a formatted AtariError type that
// wraps them.
//
// The core never panics on guest misbehaviour: an illegal register address
// or an impossible banking combination is absorbed at the bus (open-bus
// $FF reads, masked writes). These error kinds exist only for failures
// that a host program must actually react to — a bad ROM at boot, a
// malformed file load, a halted CPU, an overflowing sink, or an
// out-of-range input call.
package errors
