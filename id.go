// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"strconv"
	"sync/atomic"
)

// ID identifies a pin, a gate or a chip. IDs from the same Allocator are
// never reused, whatever kind of object they were handed to.
//
type ID uint64

// NoID is never returned by an Allocator.
//
const NoID ID = 0

func (id ID) String() string {
	return "#" + strconv.FormatUint(uint64(id), 10)
}

// An Allocator hands out IDs. It is safe for concurrent use.
//
// Pins, gates and chips that are wired together or copied from one another
// must share the same Allocator.
//
type Allocator struct {
	n atomic.Uint64
}

// NewAllocator returns a new Allocator.
//
func NewAllocator() *Allocator {
	return new(Allocator)
}

// Next returns a fresh ID.
//
func (a *Allocator) Next() ID {
	return ID(a.n.Add(1))
}

// Last returns the last ID handed out by a, or NoID.
//
func (a *Allocator) Last() ID {
	return ID(a.n.Load())
}
