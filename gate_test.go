// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim_test

import (
	"testing"

	sim "github.com/db47h/logicsim"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type binaryGate interface {
	sim.Gate
	In(i int) sim.ID
	Out() sim.ID
}

func TestGate_binary(t *testing.T) {
	ids := sim.NewAllocator()
	td := []struct {
		name   string
		gate   binaryGate
		result []bool // a=0 && b=0, a=0 && b=1, a=1 && b=0, a=1 && b=1
	}{
		{"AND", sim.NewAnd(ids), []bool{false, false, false, true}},
		{"OR", sim.NewOr(ids), []bool{false, true, true, true}},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			g := d.gate
			assert.Equal(t, d.name, g.Kind().String())
			for i, exp := range d.result {
				a, b := i&2 != 0, i&1 != 0
				require.NoError(t, g.SetPin(g.In(0), sim.LevelOf(a)))
				require.NoError(t, g.SetPin(g.In(1), sim.LevelOf(b)))
				v, err := g.Evaluate()
				require.NoError(t, err)
				assert.Equal(t, sim.LevelOf(exp), v, "%s(%v, %v)", d.name, a, b)
				assert.Equal(t, sim.LevelOf(exp), g.Pins()[g.Out()].Value, "output pin")
			}
		})
	}
}

func TestGate_unary(t *testing.T) {
	ids := sim.NewAllocator()
	td := []struct {
		name string
		gate binaryGate
		fn   func(bool) bool
	}{
		{"NOT", sim.NewNot(ids), func(in bool) bool { return !in }},
		{"BUF", sim.NewBuffer(ids), func(in bool) bool { return in }},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			for _, in := range []bool{false, true} {
				require.NoError(t, d.gate.SetPin(d.gate.In(0), sim.LevelOf(in)))
				v, err := d.gate.Evaluate()
				require.NoError(t, err)
				assert.Equal(t, sim.LevelOf(d.fn(in)), v)
			}
		})
	}
}

func TestGate_pins(t *testing.T) {
	ids := sim.NewAllocator()
	td := []struct {
		gate      sim.Gate
		ins, outs int
	}{
		{sim.NewAnd(ids), 2, 1},
		{sim.NewOr(ids), 2, 1},
		{sim.NewNot(ids), 1, 1},
		{sim.NewBuffer(ids), 1, 1},
		{sim.NewSource(ids), 0, 1},
		{sim.NewOutput(ids), 1, 0},
	}
	for _, d := range td {
		g := d.gate
		assert.Len(t, g.Inputs(), d.ins, g.Kind().String())
		assert.Len(t, g.Outputs(), d.outs, g.Kind().String())
		pins := g.Pins()
		assert.Len(t, pins, d.ins+d.outs)
		for _, id := range g.Inputs() {
			assert.Equal(t, sim.GateInput, pins[id].Role)
			assert.Equal(t, g.ID(), pins[id].Owner)
			assert.Equal(t, sim.Undefined, pins[id].Value)
		}
		for _, id := range g.Outputs() {
			assert.Equal(t, sim.GateOutput, pins[id].Role)
			assert.Equal(t, g.ID(), pins[id].Owner)
		}
	}
}

func TestGate_undefinedInput(t *testing.T) {
	ids := sim.NewAllocator()
	and := sim.NewAnd(ids)
	require.NoError(t, and.SetPin(and.In(0), sim.High))
	_, err := and.Evaluate()
	var ue *sim.UndefinedInputError
	require.True(t, errors.As(err, &ue), "got %v", err)
	assert.Equal(t, and.ID(), ue.Gate)
	assert.Equal(t, and.In(1), ue.Pin)
	assert.Equal(t, sim.Undefined, and.Pins()[and.Out()].Value, "output must not be written")

	out := sim.NewOutput(ids)
	_, err = out.Evaluate()
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, out.In(0), ue.Pin)
}

func TestGate_source(t *testing.T) {
	src := sim.NewSource(sim.NewAllocator())
	v, err := src.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, sim.Undefined, v)

	src.Set(sim.High)
	v, err = src.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, sim.High, v)

	require.NoError(t, src.SetPin(src.Out(), sim.Low))
	assert.Equal(t, sim.Low, src.Value())
	require.NoError(t, src.SetPin(src.Out(), sim.Undefined))
	assert.Equal(t, sim.Undefined, src.Value())
}

func TestGate_setUnknownPin(t *testing.T) {
	ids := sim.NewAllocator()
	a, b := sim.NewAnd(ids), sim.NewNot(ids)
	err := a.SetPin(b.In(0), sim.High)
	var ue *sim.UnknownPinError
	require.True(t, errors.As(err, &ue), "got %v", err)
	assert.Equal(t, b.In(0), ue.Pin)
	assert.Equal(t, a.ID(), ue.Owner)
}

func TestNewGate(t *testing.T) {
	ids := sim.NewAllocator()
	for k := sim.KindAnd; k <= sim.KindChip; k++ {
		g, err := sim.NewGate(ids, k)
		require.NoError(t, err, k.String())
		assert.Equal(t, k, g.Kind())
	}
	_, err := sim.NewGate(ids, sim.KindChip+1)
	assert.Error(t, err)
	assert.Equal(t, "UNKNOWN", (sim.KindChip + 1).String())
}

func TestLevel(t *testing.T) {
	v, ok := sim.Undefined.Bool()
	assert.False(t, v)
	assert.False(t, ok)
	v, ok = sim.High.Bool()
	assert.True(t, v)
	assert.True(t, ok)
	assert.Equal(t, sim.Low, sim.LevelOf(false))
	assert.Equal(t, "x", sim.Undefined.String())
	assert.True(t, sim.Low.Defined())
}
