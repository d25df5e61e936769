// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim_test

import (
	"testing"

	sim "github.com/db47h/logicsim"
	"github.com/stretchr/testify/require"
)

// xorBench is a XOR made of AND and NOT gates, fed by two sources and read by
// an Output gate:
//
//	out = !(!(a && !b) && !(!a && b))
//
type xorBench struct {
	chip   *sim.Chip
	a, b   *sim.Source
	out    *sim.Output
	logic  []sim.ID // every gate between the sources and the output
	andAB  *sim.And // a && !b
	andNAB *sim.And // !a && b
}

func newXorBench(t *testing.T, ids *sim.Allocator) *xorBench {
	t.Helper()
	c := sim.NewChip(ids, "bench")
	x := &xorBench{chip: c, a: sim.NewSource(ids), b: sim.NewSource(ids), out: sim.NewOutput(ids)}
	na, nb := sim.NewNot(ids), sim.NewNot(ids)
	x.andAB, x.andNAB = sim.NewAnd(ids), sim.NewAnd(ids)
	nx, ny, z, o := sim.NewNot(ids), sim.NewNot(ids), sim.NewAnd(ids), sim.NewNot(ids)

	for _, g := range []sim.Gate{x.a, x.b, x.out, na, nb, x.andAB, x.andNAB, nx, ny, z, o} {
		_, err := c.AddGate(g)
		require.NoError(t, err)
	}
	x.logic = []sim.ID{na.ID(), nb.ID(), x.andAB.ID(), x.andNAB.ID(), nx.ID(), ny.ID(), z.ID(), o.ID()}

	wire := func(from sim.ID, to ...sim.ID) {
		t.Helper()
		for _, p := range to {
			require.NoError(t, c.Connect(from, p))
		}
	}
	wire(x.a.Out(), na.In(0), x.andAB.In(0))
	wire(x.b.Out(), nb.In(0), x.andNAB.In(1))
	// cross wired inverters
	wire(nb.Out(), x.andAB.In(1))
	wire(na.Out(), x.andNAB.In(0))
	wire(x.andAB.Out(), nx.In(0))
	wire(x.andNAB.Out(), ny.In(0))
	wire(nx.Out(), z.In(0))
	wire(ny.Out(), z.In(1))
	wire(z.Out(), o.In(0))
	wire(o.Out(), x.out.In(0))
	return x
}

func (x *xorBench) set(a, b bool) {
	x.a.Set(sim.LevelOf(a))
	x.b.Set(sim.LevelOf(b))
}

// shellXor returns a chip with two inputs and one output computing a XOR.
//
func shellXor(t *testing.T, ids *sim.Allocator) *sim.Chip {
	t.Helper()
	x := newXorBench(t, ids)
	c, err := x.chip.Abstract(x.logic, []sim.ID{x.a.ID(), x.b.ID()}, []sim.ID{x.out.ID()}, "XOR")
	require.NoError(t, err)
	return c
}
