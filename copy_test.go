// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim_test

import (
	"testing"
	"testing/quick"

	sim "github.com/db47h/logicsim"
	"github.com/db47h/logicsim/simtest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gateIDs(c *sim.Chip) map[sim.ID]bool {
	m := make(map[sim.ID]bool)
	for _, g := range c.Gates() {
		m[g.ID()] = true
		if sub, ok := g.(*sim.Chip); ok {
			for id := range gateIDs(sub) {
				m[id] = true
			}
		}
	}
	return m
}

func TestDeepCopy_disjoint(t *testing.T) {
	ids := sim.NewAllocator()
	x := newXorBench(t, ids)
	x.set(true, false)
	cp := x.chip.DeepCopy()

	assert.NotEqual(t, x.chip.ID(), cp.ID())
	assert.Equal(t, x.chip.Len(), cp.Len())
	for id := range gateIDs(cp) {
		assert.False(t, gateIDs(x.chip)[id], "gate %v shared", id)
	}
	orig := x.chip.Snapshot()
	for id := range cp.Snapshot() {
		_, ok := orig[id]
		assert.False(t, ok, "pin %v shared", id)
	}
	assert.Equal(t, len(x.chip.Connections()), len(cp.Connections()))

	v1, err := x.chip.Simulate()
	require.NoError(t, err)
	v2, err := cp.Simulate()
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
	assert.True(t, v2)
}

func TestDeepCopy_independent(t *testing.T) {
	ids := sim.NewAllocator()
	c := shellXor(t, ids)
	cp := c.DeepCopy()

	// rewire the copy: drive its output from its first input.
	require.NoError(t, cp.Connect(cp.Inputs()[0], cp.Outputs()[0]))
	require.NoError(t, cp.SetInputs(true, true))
	v, err := cp.Simulate()
	require.NoError(t, err)
	assert.True(t, v)

	// the source chip is untouched.
	simtest.AssertTable(t, c, [][]bool{{false, true, true, false}})
	for _, g := range cp.Gates() {
		_, err := c.Gate(g.ID())
		assert.Error(t, err)
	}
}

func TestDeepCopy_nested(t *testing.T) {
	ids := sim.NewAllocator()
	top := sim.NewChip(ids, "top")
	a, b := top.AddInput(), top.AddInput()
	out := top.AddOutput()
	xor := shellXor(t, ids)
	_, err := top.AddGate(xor)
	require.NoError(t, err)
	require.NoError(t, top.Connect(a, xor.Inputs()[0]))
	require.NoError(t, top.Connect(b, xor.Inputs()[1]))
	require.NoError(t, top.Connect(xor.Outputs()[0], out))

	cp := top.DeepCopy()
	assert.Len(t, cp.Gates(), 1)
	sub, ok := cp.Gates()[0].(*sim.Chip)
	require.True(t, ok)
	assert.NotEqual(t, xor.ID(), sub.ID())
	assert.Equal(t, "XOR", sub.Name())

	simtest.CompareChips(t, top, cp)
}

func TestDeepCopy_quick(t *testing.T) {
	ids := sim.NewAllocator()
	c := shellXor(t, ids)
	f := func(a, b bool) bool {
		cp := c.DeepCopy()
		if err := cp.SetInputs(a, b); err != nil {
			return false
		}
		v, err := cp.Simulate()
		return err == nil && v == (a != b)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestAbstract_xor(t *testing.T) {
	ids := sim.NewAllocator()
	x := newXorBench(t, ids)
	before := len(x.chip.Connections())

	c, err := x.chip.Abstract(x.logic, []sim.ID{x.a.ID(), x.b.ID()}, []sim.ID{x.out.ID()}, "XOR")
	require.NoError(t, err)
	assert.Equal(t, "XOR", c.Name())
	assert.Len(t, c.Inputs(), 2)
	assert.Len(t, c.Outputs(), 1)
	assert.Equal(t, len(x.logic), c.Len())
	assert.Equal(t, before, len(x.chip.Connections()), "source chip modified")
	for _, v := range c.Pins() {
		assert.Equal(t, sim.Undefined, v.Value)
	}

	simtest.AssertTable(t, c, [][]bool{{false, true, true, false}})
}

func TestAbstract_partial(t *testing.T) {
	ids := sim.NewAllocator()
	x := newXorBench(t, ids)
	// only keep a && !b: the path through andNAB is dropped.
	nb := x.logic[1]
	c, err := x.chip.Abstract([]sim.ID{nb, x.andAB.ID()}, []sim.ID{x.a.ID(), x.b.ID()}, nil, "half")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Empty(t, c.Outputs())
	for _, g := range c.Gates() {
		for _, p := range g.Outputs() {
			if g.Kind() == sim.KindAnd {
				assert.Empty(t, c.Fanout(p), "edge leaving the selection")
			}
		}
	}
	// a feeds andAB.In(0) only: na is not in the selection.
	assert.Len(t, c.Fanout(c.Inputs()[0]), 1)
}

func TestAbstract_clearsPins(t *testing.T) {
	ids := sim.NewAllocator()
	x := newXorBench(t, ids)
	x.set(true, false)
	_, err := x.chip.Simulate()
	require.NoError(t, err)

	// andAB reads a and !b. Only a crosses into the template: the !b edge is
	// dropped and must not keep the level it had in the bench.
	c, err := x.chip.Abstract([]sim.ID{x.andAB.ID()}, []sim.ID{x.a.ID()}, nil, "and")
	require.NoError(t, err)
	for _, v := range c.Snapshot() {
		assert.Equal(t, sim.Undefined, v)
	}
	require.NoError(t, c.SetInputs(true))
	_, err = c.Simulate()
	var ue *sim.UndefinedInputError
	assert.True(t, errors.As(err, &ue), "got %v", err)
}

func TestAbstract_errors(t *testing.T) {
	ids := sim.NewAllocator()
	x := newXorBench(t, ids)
	stray := ids.Next()
	var ge *sim.UnknownGateError

	_, err := x.chip.Abstract([]sim.ID{stray}, nil, nil, "e")
	assert.True(t, errors.As(err, &ge), "got %v", err)
	_, err = x.chip.Abstract(x.logic, []sim.ID{stray}, nil, "e")
	assert.True(t, errors.As(err, &ge), "got %v", err)
	_, err = x.chip.Abstract(x.logic, nil, []sim.ID{stray}, "e")
	assert.True(t, errors.As(err, &ge), "got %v", err)

	_, err = x.chip.Abstract(x.logic, []sim.ID{x.out.ID()}, nil, "e")
	assert.Error(t, err, "output gate as input")
	_, err = x.chip.Abstract(x.logic, nil, []sim.ID{x.a.ID()}, "e")
	assert.Error(t, err, "source as output")
	_, err = x.chip.Abstract(x.logic, []sim.ID{x.a.ID()}, []sim.ID{x.a.ID()}, "e")
	assert.Error(t, err, "gate on both sides")
}
