// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"github.com/pkg/errors"
)

// Kind is the kind of a gate.
//
type Kind uint8

// Gate kinds.
//
const (
	KindAnd Kind = iota
	KindOr
	KindNot
	KindBuffer
	KindSource
	KindOutput
	KindChip
)

var kindNames = [...]string{
	KindAnd:    "AND",
	KindOr:     "OR",
	KindNot:    "NOT",
	KindBuffer: "BUF",
	KindSource: "SOURCE",
	KindOutput: "OUTPUT",
	KindChip:   "CHIP",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// A Gate is a computation unit in a chip.
//
// The set of gates is closed: *And, *Or, *Not, *Buffer, *Source, *Output and
// *Chip are the only implementations.
//
type Gate interface {
	// ID returns the gate's identity.
	ID() ID
	// Kind returns the gate's kind.
	Kind() Kind
	// Inputs returns the gate's input pins, in order.
	Inputs() []ID
	// Outputs returns the gate's output pins, in order.
	Outputs() []ID
	// Pins returns a copy of all the pins owned by the gate.
	Pins() map[ID]Pin
	// SetPin sets the value of one of the gate's own pins.
	SetPin(pin ID, v Level) error
	// Evaluate computes the gate's outputs from its inputs and returns the
	// value of its primary output (or input for an Output gate).
	Evaluate() (Level, error)

	// clone returns a copy of the gate with fresh ids. Every replaced pin id
	// is recorded in m. The copy belongs to no chip.
	clone(ids *Allocator, m map[ID]ID) Gate
	// parent returns the id of the chip holding the gate, or NoID.
	parent() ID
	setParent(id ID)
	// reset clears all the gate's pins, nested ones included.
	reset()
}

// NewGate returns a new gate of the given kind. A KindChip gate is a new empty
// chip.
//
func NewGate(ids *Allocator, k Kind) (Gate, error) {
	switch k {
	case KindAnd:
		return NewAnd(ids), nil
	case KindOr:
		return NewOr(ids), nil
	case KindNot:
		return NewNot(ids), nil
	case KindBuffer:
		return NewBuffer(ids), nil
	case KindSource:
		return NewSource(ids), nil
	case KindOutput:
		return NewOutput(ids), nil
	case KindChip:
		return NewChip(ids, ""), nil
	}
	return nil, errors.Errorf("invalid gate kind %d", k)
}

// leaf implements the pin handling shared by primitive gates.
//
type leaf struct {
	id     ID
	kind   Kind
	in     []Pin
	out    []Pin
	holder ID
}

func newLeaf(ids *Allocator, k Kind, ins, outs int) leaf {
	g := leaf{id: ids.Next(), kind: k}
	if ins > 0 {
		g.in = make([]Pin, ins)
		for i := range g.in {
			g.in[i] = newPin(ids, GateInput, g.id)
		}
	}
	if outs > 0 {
		g.out = make([]Pin, outs)
		for i := range g.out {
			g.out[i] = newPin(ids, GateOutput, g.id)
		}
	}
	return g
}

func (g *leaf) ID() ID     { return g.id }
func (g *leaf) Kind() Kind { return g.kind }

func (g *leaf) parent() ID      { return g.holder }
func (g *leaf) setParent(id ID) { g.holder = id }

func (g *leaf) Inputs() []ID  { return pinIDs(g.in) }
func (g *leaf) Outputs() []ID { return pinIDs(g.out) }

// In returns the id of the i-th input pin.
//
func (g *leaf) In(i int) ID { return g.in[i].ID }

// Out returns the id of the output pin, or NoID if the gate has none.
//
func (g *leaf) Out() ID {
	if len(g.out) == 0 {
		return NoID
	}
	return g.out[0].ID
}

func (g *leaf) Pins() map[ID]Pin {
	m := make(map[ID]Pin, len(g.in)+len(g.out))
	for _, p := range g.in {
		m[p.ID] = p
	}
	for _, p := range g.out {
		m[p.ID] = p
	}
	return m
}

func (g *leaf) pin(id ID) *Pin {
	for i := range g.in {
		if g.in[i].ID == id {
			return &g.in[i]
		}
	}
	for i := range g.out {
		if g.out[i].ID == id {
			return &g.out[i]
		}
	}
	return nil
}

// reset clears every pin of the gate.
//
func (g *leaf) reset() {
	for i := range g.in {
		g.in[i].Value = Undefined
	}
	for i := range g.out {
		g.out[i].Value = Undefined
	}
}

func (g *leaf) SetPin(id ID, v Level) error {
	p := g.pin(id)
	if p == nil {
		return &UnknownPinError{Pin: id, Owner: g.id}
	}
	p.Value = v
	return nil
}

// input returns the value of the i-th input.
//
func (g *leaf) input(i int) (bool, error) {
	v, ok := g.in[i].Value.Bool()
	if !ok {
		return false, &UndefinedInputError{Gate: g.id, Pin: g.in[i].ID}
	}
	return v, nil
}

// drive sets the output pin to v.
//
func (g *leaf) drive(v bool) Level {
	l := LevelOf(v)
	g.out[0].Value = l
	return l
}

func (g *leaf) cloneLeaf(ids *Allocator, m map[ID]ID) leaf {
	c := leaf{id: ids.Next(), kind: g.kind}
	c.in = clonePins(ids, g.in, c.id, m)
	c.out = clonePins(ids, g.out, c.id, m)
	return c
}

func clonePins(ids *Allocator, ps []Pin, owner ID, m map[ID]ID) []Pin {
	if len(ps) == 0 {
		return nil
	}
	r := make([]Pin, len(ps))
	for i, p := range ps {
		r[i] = Pin{ID: ids.Next(), Role: p.Role, Owner: owner, Value: p.Value}
		m[p.ID] = r[i].ID
	}
	return r
}

func pinIDs(ps []Pin) []ID {
	r := make([]ID, len(ps))
	for i := range ps {
		r[i] = ps[i].ID
	}
	return r
}

func (g *leaf) binary(fn func(a, b bool) bool) (Level, error) {
	a, err := g.input(0)
	if err != nil {
		return Undefined, err
	}
	b, err := g.input(1)
	if err != nil {
		return Undefined, err
	}
	return g.drive(fn(a, b)), nil
}

func (g *leaf) unary(fn func(in bool) bool) (Level, error) {
	in, err := g.input(0)
	if err != nil {
		return Undefined, err
	}
	return g.drive(fn(in)), nil
}

// And is a 2 input AND gate.
//
//	Inputs: In(0), In(1)
//	Output: Out()
//	Function: out = in0 && in1
//
type And struct{ leaf }

// NewAnd returns a new AND gate.
//
func NewAnd(ids *Allocator) *And { return &And{newLeaf(ids, KindAnd, 2, 1)} }

func (g *And) Evaluate() (Level, error) {
	return g.binary(func(a, b bool) bool { return a && b })
}

func (g *And) clone(ids *Allocator, m map[ID]ID) Gate { return &And{g.cloneLeaf(ids, m)} }

// Or is a 2 input OR gate.
//
//	Inputs: In(0), In(1)
//	Output: Out()
//	Function: out = in0 || in1
//
type Or struct{ leaf }

// NewOr returns a new OR gate.
//
func NewOr(ids *Allocator) *Or { return &Or{newLeaf(ids, KindOr, 2, 1)} }

func (g *Or) Evaluate() (Level, error) {
	return g.binary(func(a, b bool) bool { return a || b })
}

func (g *Or) clone(ids *Allocator, m map[ID]ID) Gate { return &Or{g.cloneLeaf(ids, m)} }

// Not is an inverter.
//
type Not struct{ leaf }

// NewNot returns a new NOT gate.
//
func NewNot(ids *Allocator) *Not { return &Not{newLeaf(ids, KindNot, 1, 1)} }

func (g *Not) Evaluate() (Level, error) {
	return g.unary(func(in bool) bool { return !in })
}

func (g *Not) clone(ids *Allocator, m map[ID]ID) Gate { return &Not{g.cloneLeaf(ids, m)} }

// Buffer copies its input to its output.
//
type Buffer struct{ leaf }

// NewBuffer returns a new buffer.
//
func NewBuffer(ids *Allocator) *Buffer { return &Buffer{newLeaf(ids, KindBuffer, 1, 1)} }

func (g *Buffer) Evaluate() (Level, error) {
	return g.unary(func(in bool) bool { return in })
}

func (g *Buffer) clone(ids *Allocator, m map[ID]ID) Gate { return &Buffer{g.cloneLeaf(ids, m)} }

// Source is an externally driven signal. It has a single output pin and no
// input. Its output stays Undefined until set.
//
type Source struct{ leaf }

// NewSource returns a new Source with an undefined output.
//
func NewSource(ids *Allocator) *Source { return &Source{newLeaf(ids, KindSource, 0, 1)} }

// Set sets the source output.
//
func (g *Source) Set(v Level) { g.out[0].Value = v }

// Value returns the current source output.
//
func (g *Source) Value() Level { return g.out[0].Value }

// Evaluate returns the current output. It never fails; consumers of an unset
// Source fail instead.
//
func (g *Source) Evaluate() (Level, error) { return g.out[0].Value, nil }

func (g *Source) clone(ids *Allocator, m map[ID]ID) Gate { return &Source{g.cloneLeaf(ids, m)} }

// Output is a terminal sink with a single input pin.
//
type Output struct{ leaf }

// NewOutput returns a new Output.
//
func NewOutput(ids *Allocator) *Output { return &Output{newLeaf(ids, KindOutput, 1, 0)} }

// Value returns the value currently on the Output's input pin.
//
func (g *Output) Value() Level { return g.in[0].Value }

func (g *Output) Evaluate() (Level, error) {
	in, err := g.input(0)
	if err != nil {
		return Undefined, err
	}
	return LevelOf(in), nil
}

func (g *Output) clone(ids *Allocator, m map[ID]ID) Gate { return &Output{g.cloneLeaf(ids, m)} }
