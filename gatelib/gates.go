// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package gatelib provides a library of reusable chips built out of the
// logicsim primitives.
//
// Every constructor returns a new chip with fresh ids. The order of the
// chip's shell pins is documented with each constructor.
//
package gatelib

import (
	"github.com/db47h/logicsim"
)

// Nand returns a NAND chip.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a && b)
//
func Nand(ids *logicsim.Allocator) *logicsim.Chip {
	b := newBuilder(ids, "NAND", 2, 1)
	and, not := b.and(), b.not()
	b.wire(b.in[0], and.In(0))
	b.wire(b.in[1], and.In(1))
	b.wire(and.Out(), not.In(0))
	b.wire(not.Out(), b.out[0])
	return b.chip()
}

// Nor returns a NOR chip.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a || b)
//
func Nor(ids *logicsim.Allocator) *logicsim.Chip {
	b := newBuilder(ids, "NOR", 2, 1)
	na, nb, and := b.not(), b.not(), b.and()
	b.wire(b.in[0], na.In(0))
	b.wire(b.in[1], nb.In(0))
	b.wire(na.Out(), and.In(0))
	b.wire(nb.Out(), and.In(1))
	b.wire(and.Out(), b.out[0])
	return b.chip()
}

// Or returns an OR chip made of a NOR and a NOT.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a || b
//
func Or(ids *logicsim.Allocator) *logicsim.Chip {
	b := newBuilder(ids, "OR", 2, 1)
	nor, not := b.sub(Nor), b.not()
	ni, no := nor.Inputs(), nor.Outputs()
	b.wire(b.in[0], ni[0])
	b.wire(b.in[1], ni[1])
	b.wire(no[0], not.In(0))
	b.wire(not.Out(), b.out[0])
	return b.chip()
}

// Xor returns a XOR chip made of four NAND chips.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && !b || !a && b
//
func Xor(ids *logicsim.Allocator) *logicsim.Chip {
	b := newBuilder(ids, "XOR", 2, 1)
	var n [4]*logicsim.Chip
	for i := range n {
		n[i] = b.sub(Nand)
	}
	in := func(i, pin int) logicsim.ID { return n[i].Inputs()[pin] }
	out := func(i int) logicsim.ID { return n[i].Outputs()[0] }
	b.wire(b.in[0], in(0, 0), in(1, 0))
	b.wire(b.in[1], in(0, 1), in(2, 0))
	b.wire(out(0), in(1, 1), in(2, 1))
	b.wire(out(1), in(3, 0))
	b.wire(out(2), in(3, 1))
	b.wire(out(3), b.out[0])
	return b.chip()
}

// Xnor returns a XNOR chip.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b || !a && !b
//
func Xnor(ids *logicsim.Allocator) *logicsim.Chip {
	b := newBuilder(ids, "XNOR", 2, 1)
	xor, not := b.sub(Xor), b.not()
	b.wire(b.in[0], xor.Inputs()[0])
	b.wire(b.in[1], xor.Inputs()[1])
	b.wire(xor.Outputs()[0], not.In(0))
	b.wire(not.Out(), b.out[0])
	return b.chip()
}

// Mux returns a multiplexer.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux(ids *logicsim.Allocator) *logicsim.Chip {
	b := newBuilder(ids, "MUX", 3, 1)
	ns, w0, w1, or := b.not(), b.and(), b.and(), b.or()
	b.wire(b.in[2], ns.In(0), w1.In(1))
	b.wire(b.in[0], w0.In(0))
	b.wire(ns.Out(), w0.In(1))
	b.wire(b.in[1], w1.In(0))
	b.wire(w0.Out(), or.In(0))
	b.wire(w1.Out(), or.In(1))
	b.wire(or.Out(), b.out[0])
	return b.chip()
}

// DMux returns a demultiplexer.
//
//	Inputs: in, sel
//	Outputs: a, b
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
//
func DMux(ids *logicsim.Allocator) *logicsim.Chip {
	b := newBuilder(ids, "DMUX", 2, 2)
	ns, wa, wb := b.not(), b.and(), b.and()
	b.wire(b.in[1], ns.In(0), wb.In(1))
	b.wire(b.in[0], wa.In(0), wb.In(0))
	b.wire(ns.Out(), wa.In(1))
	b.wire(wa.Out(), b.out[0])
	b.wire(wb.Out(), b.out[1])
	return b.chip()
}
