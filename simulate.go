// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"github.com/pkg/errors"
)

// Simulate runs a full simulation pass over the chip and returns the value of
// its primary output.
//
// Shell inputs and Source gates must have been set beforehand. Gates are
// evaluated in dependency order and every output is propagated to the pins
// it feeds before any of its consumers is evaluated. Simulate fails with an
// *UndefinedInputError if a gate consumes an undefined pin and with a
// *CyclicCircuitError if the gates of the chip form a feedback loop. Errors
// from nested chips are wrapped with the nested chip's id.
//
// The primary output is the first output shell pin. A chip without output
// pins reads the Output gate with the lowest id, and returns false if it has
// none.
//
func (c *Chip) Simulate() (bool, error) {
	l, err := c.run()
	if err != nil {
		return false, err
	}
	v, _ := l.Bool()
	return v, nil
}

func (c *Chip) run() (Level, error) {
	order, err := c.schedule()
	if err != nil {
		return Undefined, err
	}
	for _, in := range c.input {
		c.propagate(in, c.pins[in].Value)
	}
	for _, id := range order {
		g := c.gates[id]
		v, err := g.Evaluate()
		if err != nil {
			if g.Kind() == KindChip {
				return Undefined, errors.Wrapf(err, "chip %v", id)
			}
			return Undefined, err
		}
		log.Debugf("chip %v: %v %v = %v", c.id, g.Kind(), id, v)
		pins := g.Pins()
		for _, out := range g.Outputs() {
			c.propagate(out, pins[out].Value)
		}
	}
	return c.primary()
}

// propagate writes v into every pin fed by pin from.
//
func (c *Chip) propagate(from ID, v Level) {
	for _, to := range c.conns[from] {
		if o, ok := c.owner[to]; ok {
			// to is known to belong to o.gate.
			_ = c.gates[o.gate].SetPin(to, v)
			continue
		}
		if p, ok := c.pins[to]; ok && p.Role == ChipOutput {
			p.Value = v
		}
	}
}

func (c *Chip) primary() (Level, error) {
	if len(c.output) > 0 {
		id := c.output[0]
		v := c.pins[id].Value
		if !v.Defined() {
			return Undefined, &UndefinedInputError{Gate: c.id, Pin: id}
		}
		return v, nil
	}
	for _, id := range c.gateIDs() {
		if o, ok := c.gates[id].(*Output); ok {
			return o.Value(), nil
		}
	}
	return Low, nil
}

// dependencies collapses the pin wiring into a gate dependency map: deps[g]
// lists the gates driving one of g's inputs.
//
func (c *Chip) dependencies() map[ID][]ID {
	deps := make(map[ID][]ID, len(c.gates))
	for to, from := range c.driver {
		g, ok := c.owner[to]
		if !ok {
			continue
		}
		h, ok := c.owner[from]
		if !ok {
			continue
		}
		deps[g.gate] = appendUnique(deps[g.gate], h.gate)
	}
	for _, ds := range deps {
		sortIDs(ds)
	}
	return deps
}

func appendUnique(ids []ID, id ID) []ID {
	for _, i := range ids {
		if i == id {
			return ids
		}
	}
	return append(ids, id)
}

const (
	unvisited = iota
	visiting
	visited
)

// schedule returns the chip's gates in evaluation order: a depth first, post
// order traversal of the dependency graph, starting from gates that feed no
// other gate.
//
func (c *Chip) schedule() ([]ID, error) {
	deps := c.dependencies()
	feeds := make(map[ID]bool, len(c.gates))
	for _, ds := range deps {
		for _, d := range ds {
			feeds[d] = true
		}
	}
	ids := c.gateIDs()
	roots := make([]ID, 0, len(ids))
	for _, id := range ids {
		if !feeds[id] {
			roots = append(roots, id)
		}
	}
	// gates on a closed loop feed each other and are not reachable from a
	// root.
	roots = append(roots, ids...)

	s := scheduler{
		deps:  deps,
		state: make(map[ID]int, len(c.gates)),
		order: make([]ID, 0, len(c.gates)),
	}
	for _, id := range roots {
		if err := s.visit(id); err != nil {
			return nil, &CyclicCircuitError{Chip: c.id, Gates: s.loop}
		}
	}
	return s.order, nil
}

type scheduler struct {
	deps  map[ID][]ID
	state map[ID]int
	stack []ID
	order []ID
	loop  []ID
}

var errLoop = errors.New("loop")

func (s *scheduler) visit(id ID) error {
	switch s.state[id] {
	case visited:
		return nil
	case visiting:
		for i := len(s.stack) - 1; i >= 0; i-- {
			if s.stack[i] == id {
				s.loop = append([]ID(nil), s.stack[i:]...)
				break
			}
		}
		return errLoop
	}
	s.state[id] = visiting
	s.stack = append(s.stack, id)
	for _, d := range s.deps[id] {
		if err := s.visit(d); err != nil {
			return err
		}
	}
	s.stack = s.stack[:len(s.stack)-1]
	s.state[id] = visited
	s.order = append(s.order, id)
	return nil
}
