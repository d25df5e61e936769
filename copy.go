// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"github.com/pkg/errors"
)

// DeepCopy returns an independent copy of the chip. Every pin, gate and
// nested chip of the copy gets a fresh id; pin values are carried over.
//
func (c *Chip) DeepCopy() *Chip {
	return c.copyChip(c.ids, make(map[ID]ID))
}

// copyChip copies c, recording in m the new id of every pin of c and of its
// direct gates.
//
func (c *Chip) copyChip(ids *Allocator, m map[ID]ID) *Chip {
	n := NewChip(ids, c.name)
	for _, id := range c.input {
		m[id] = n.AddInput()
		n.pins[m[id]].Value = c.pins[id].Value
	}
	for _, id := range c.output {
		m[id] = n.AddOutput()
		n.pins[m[id]].Value = c.pins[id].Value
	}
	for _, id := range c.gateIDs() {
		n.addGate(c.gates[id].clone(ids, m))
	}
	c.replay(n, m)
	return n
}

func (c *Chip) clone(ids *Allocator, m map[ID]ID) Gate {
	local := make(map[ID]ID)
	n := c.copyChip(ids, local)
	for _, id := range c.input {
		m[id] = local[id]
	}
	for _, id := range c.output {
		m[id] = local[id]
	}
	return n
}

// replay copies the connections of c into n, translating both ends through m.
// Connections with an end missing from m are skipped.
//
func (c *Chip) replay(n *Chip, m map[ID]ID) {
	froms := make([]ID, 0, len(c.conns))
	for from := range c.conns {
		froms = append(froms, from)
	}
	sortIDs(froms)
	for _, from := range froms {
		nf, ok := m[from]
		if !ok {
			continue
		}
		for _, to := range c.conns[from] {
			if nt, ok := m[to]; ok {
				n.link(nf, nt)
			}
		}
	}
}

// Abstract extracts a subset of the chip's gates into a new chip template.
//
// The output pins of every gate in inputs are replaced with input shell pins
// and the input pins of every gate in outputs with output shell pins, in the
// given order. These boundary gates are not copied into the template. The
// other gates listed in gates are deep copied, and connections between copied
// pins are kept. Connections leaving the selection are dropped.
//
// All pins of the returned chip are undefined. The receiver is left
// untouched.
//
func (c *Chip) Abstract(gates, inputs, outputs []ID, name string) (*Chip, error) {
	n := NewChip(c.ids, name)
	m := make(map[ID]ID)
	boundary := make(map[ID]bool, len(inputs)+len(outputs))

	for _, id := range inputs {
		g, err := c.Gate(id)
		if err != nil {
			return nil, errors.Wrap(err, "abstract input")
		}
		if len(g.Outputs()) == 0 {
			return nil, errors.Errorf("abstract input: %v gate %v has no output", g.Kind(), id)
		}
		for _, p := range g.Outputs() {
			m[p] = n.AddInput()
		}
		boundary[id] = true
	}
	for _, id := range outputs {
		g, err := c.Gate(id)
		if err != nil {
			return nil, errors.Wrap(err, "abstract output")
		}
		if boundary[id] {
			return nil, errors.Errorf("abstract output: gate %v already used as an input", id)
		}
		if len(g.Inputs()) == 0 {
			return nil, errors.Errorf("abstract output: %v gate %v has no input", g.Kind(), id)
		}
		for _, p := range g.Inputs() {
			m[p] = n.AddOutput()
		}
		boundary[id] = true
	}

	seen := make(map[ID]bool, len(gates))
	for _, id := range gates {
		g, err := c.Gate(id)
		if err != nil {
			return nil, errors.Wrap(err, "abstract")
		}
		if boundary[id] || seen[id] {
			continue
		}
		seen[id] = true
		n.addGate(g.clone(c.ids, m))
	}

	c.replay(n, m)
	n.reset()
	log.Debugf("abstract %q from chip %v: %d gates, %d inputs, %d outputs", name, c.id, n.Len(), len(n.input), len(n.output))
	return n, nil
}
