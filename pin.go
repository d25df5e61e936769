// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// Role tells how a pin is used.
//
type Role uint8

// Pin roles.
//
const (
	ChipInput Role = iota
	ChipOutput
	GateInput
	GateOutput
)

var roleNames = [...]string{
	ChipInput:  "chip input",
	ChipOutput: "chip output",
	GateInput:  "gate input",
	GateOutput: "gate output",
}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "unknown role"
}

// IsDriver returns true if a pin with that role can feed other pins.
//
func (r Role) IsDriver() bool { return r == ChipInput || r == GateOutput }

// IsSink returns true if a pin with that role can be fed by another pin.
//
func (r Role) IsSink() bool { return r == GateInput || r == ChipOutput }

// Level is the value of a pin. The zero value is Undefined.
//
type Level int8

// Pin levels.
//
const (
	Undefined Level = iota
	Low
	High
)

// LevelOf converts b to a Level.
//
func LevelOf(b bool) Level {
	if b {
		return High
	}
	return Low
}

// Bool returns the boolean value of l. ok is false if l is Undefined.
//
func (l Level) Bool() (v bool, ok bool) {
	return l == High, l != Undefined
}

// Defined returns true if l is either Low or High.
//
func (l Level) Defined() bool { return l == Low || l == High }

func (l Level) String() string {
	switch l {
	case Low:
		return "0"
	case High:
		return "1"
	}
	return "x"
}

// A Pin is a single bit signal point.
//
type Pin struct {
	ID    ID
	Role  Role
	Owner ID // gate or chip owning the pin
	Value Level
}

func newPin(ids *Allocator, role Role, owner ID) Pin {
	return Pin{ID: ids.Next(), Role: role, Owner: owner}
}
