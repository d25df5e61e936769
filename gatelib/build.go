// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatelib

import (
	"github.com/db47h/logicsim"
	"github.com/pkg/errors"
)

// builder wraps the boilerplate of building a chip out of gates. Wiring
// mistakes are programming errors and make it panic.
//
type builder struct {
	ids *logicsim.Allocator
	c   *logicsim.Chip
	in  []logicsim.ID
	out []logicsim.ID
}

func newBuilder(ids *logicsim.Allocator, name string, ins, outs int) *builder {
	b := &builder{ids: ids, c: logicsim.NewChip(ids, name)}
	for i := 0; i < ins; i++ {
		b.in = append(b.in, b.c.AddInput())
	}
	for i := 0; i < outs; i++ {
		b.out = append(b.out, b.c.AddOutput())
	}
	return b
}

func (b *builder) add(g logicsim.Gate) {
	if _, err := b.c.AddGate(g); err != nil {
		panic(errors.Wrap(err, b.c.Name()))
	}
}

// wire connects from to all pins in to.
//
func (b *builder) wire(from logicsim.ID, to ...logicsim.ID) {
	for _, t := range to {
		if err := b.c.Connect(from, t); err != nil {
			panic(errors.Wrap(err, b.c.Name()))
		}
	}
}

func (b *builder) and() *logicsim.And {
	g := logicsim.NewAnd(b.ids)
	b.add(g)
	return g
}

func (b *builder) or() *logicsim.Or {
	g := logicsim.NewOr(b.ids)
	b.add(g)
	return g
}

func (b *builder) not() *logicsim.Not {
	g := logicsim.NewNot(b.ids)
	b.add(g)
	return g
}

// sub adds a nested chip built by fn.
//
func (b *builder) sub(fn func(*logicsim.Allocator) *logicsim.Chip) *logicsim.Chip {
	c := fn(b.ids)
	b.add(c)
	return c
}

func (b *builder) chip() *logicsim.Chip { return b.c }
