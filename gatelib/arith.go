// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatelib

import (
	"github.com/db47h/logicsim"
)

// HalfAdder returns a half adder.
//
//	Inputs: a, b
//	Outputs: s, c
//	Function: s = lsb(a + b)
//	          c = msb(a + b)
//
func HalfAdder(ids *logicsim.Allocator) *logicsim.Chip {
	b := newBuilder(ids, "HalfAdder", 2, 2)
	xor, and := b.sub(Xor), b.and()
	xi := xor.Inputs()
	b.wire(b.in[0], xi[0], and.In(0))
	b.wire(b.in[1], xi[1], and.In(1))
	b.wire(xor.Outputs()[0], b.out[0])
	b.wire(and.Out(), b.out[1])
	return b.chip()
}

// FullAdder returns a full adder made of two half adders.
//
//	Inputs: a, b, cin
//	Outputs: s, cout
//	Function: s = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
func FullAdder(ids *logicsim.Allocator) *logicsim.Chip {
	b := newBuilder(ids, "FullAdder", 3, 2)
	h0, h1, or := b.sub(HalfAdder), b.sub(HalfAdder), b.or()
	i0, o0 := h0.Inputs(), h0.Outputs()
	i1, o1 := h1.Inputs(), h1.Outputs()
	b.wire(b.in[0], i0[0])
	b.wire(b.in[1], i0[1])
	b.wire(o0[0], i1[0])
	b.wire(b.in[2], i1[1])
	b.wire(o1[0], b.out[0])
	b.wire(o0[1], or.In(0))
	b.wire(o1[1], or.In(1))
	b.wire(or.Out(), b.out[1])
	return b.chip()
}
