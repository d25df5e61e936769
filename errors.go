// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"strings"
)

// UnknownPinError is returned when looking up a pin that does not belong to
// the gate or chip it was looked up in.
//
type UnknownPinError struct {
	Pin   ID
	Owner ID
}

func (e *UnknownPinError) Error() string {
	return "pin " + e.Pin.String() + " not found in " + e.Owner.String()
}

// UnknownGateError is returned when looking up a gate that is not part of a
// chip.
//
type UnknownGateError struct {
	Gate ID
	Chip ID
}

func (e *UnknownGateError) Error() string {
	return "gate " + e.Gate.String() + " not found in chip " + e.Chip.String()
}

// UndefinedInputError is returned when a gate is evaluated while one of its
// inputs has no value.
//
type UndefinedInputError struct {
	Gate ID
	Pin  ID
}

func (e *UndefinedInputError) Error() string {
	return "input pin " + e.Pin.String() + " of " + e.Gate.String() + " is undefined"
}

// CyclicCircuitError is returned when simulating a chip whose gates feed
// back into themselves. Gates lists the gates on the loop, in dependency
// order.
//
type CyclicCircuitError struct {
	Chip  ID
	Gates []ID
}

func (e *CyclicCircuitError) Error() string {
	var b strings.Builder
	b.WriteString("feedback loop in chip ")
	b.WriteString(e.Chip.String())
	b.WriteString(": ")
	for i, g := range e.Gates {
		if i > 0 {
			b.WriteString(" -> ")
		}
		b.WriteString(g.String())
	}
	return b.String()
}

// ConnectionError is returned by Connect when the given pins cannot be wired
// together.
//
type ConnectionError struct {
	From, To ID
	Reason   string
}

func (e *ConnectionError) Error() string {
	return "cannot connect " + e.From.String() + " to " + e.To.String() + ": " + e.Reason
}

func roleMismatch(r Role, want string) string {
	return r.String() + " pin cannot be used as a " + want
}
