// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"sort"

	"github.com/pkg/errors"
)

// gatePin locates a pin of a gate. role is the role of the pin as seen from
// the chip holding the gate: the shell pins of a nested chip are GateInput or
// GateOutput pins for its parent.
//
type gatePin struct {
	gate ID
	role Role
}

// A Chip is a set of gates wired together, with its own input and output
// shell pins. A Chip is also a Gate, so it can be nested into other chips.
//
// Chips are not safe for concurrent use.
//
type Chip struct {
	id   ID
	name string
	ids  *Allocator

	gates map[ID]Gate
	// conns maps a driving pin to the pins it feeds, in connection order.
	conns map[ID][]ID
	// driver is the reverse of conns. A pin has at most one driver.
	driver map[ID]ID
	// owner maps the pins of every gate to that gate.
	owner map[ID]gatePin

	pins   map[ID]*Pin // shell pins
	input  []ID
	output []ID

	holder ID
}

// NewChip returns a new empty chip. All gates added to the chip should get
// their ids from the same allocator.
//
func NewChip(ids *Allocator, name string) *Chip {
	return &Chip{
		id:     ids.Next(),
		name:   name,
		ids:    ids,
		gates:  make(map[ID]Gate),
		conns:  make(map[ID][]ID),
		driver: make(map[ID]ID),
		owner:  make(map[ID]gatePin),
		pins:   make(map[ID]*Pin),
	}
}

// ID returns the chip's id.
//
func (c *Chip) ID() ID { return c.id }

// Kind returns KindChip.
//
func (c *Chip) Kind() Kind { return KindChip }

// Name returns the chip's name.
//
func (c *Chip) Name() string { return c.name }

// Allocator returns the allocator used by c.
//
func (c *Chip) Allocator() *Allocator { return c.ids }

func (c *Chip) parent() ID      { return c.holder }
func (c *Chip) setParent(id ID) { c.holder = id }

// contains reports whether a gate with the given id is nested anywhere in c.
//
func (c *Chip) contains(id ID) bool {
	for gid, g := range c.gates {
		if gid == id {
			return true
		}
		if sub, ok := g.(*Chip); ok && sub.contains(id) {
			return true
		}
	}
	return false
}

func (c *Chip) reset() {
	for _, p := range c.pins {
		p.Value = Undefined
	}
	for _, g := range c.gates {
		g.reset()
	}
}

// AddInput adds an input shell pin and returns its id.
//
// Shell pins must be added before the chip is added as a gate to another chip.
//
func (c *Chip) AddInput() ID {
	p := newPin(c.ids, ChipInput, c.id)
	c.pins[p.ID] = &p
	c.input = append(c.input, p.ID)
	return p.ID
}

// AddOutput adds an output shell pin and returns its id.
//
func (c *Chip) AddOutput() ID {
	p := newPin(c.ids, ChipOutput, c.id)
	c.pins[p.ID] = &p
	c.output = append(c.output, p.ID)
	return p.ID
}

// Inputs returns the chip's input shell pins.
//
func (c *Chip) Inputs() []ID { return append([]ID(nil), c.input...) }

// Outputs returns the chip's output shell pins.
//
func (c *Chip) Outputs() []ID { return append([]ID(nil), c.output...) }

// Pins returns a copy of the chip's shell pins.
//
func (c *Chip) Pins() map[ID]Pin {
	m := make(map[ID]Pin, len(c.pins))
	for id, p := range c.pins {
		m[id] = *p
	}
	return m
}

// AddGate adds g to the chip and returns its id.
//
// A gate belongs to at most one chip: adding a gate that is already part of
// another chip fails, as does adding a chip that contains c.
//
func (c *Chip) AddGate(g Gate) (ID, error) {
	if g == nil {
		return NoID, errors.New("nil gate")
	}
	id := g.ID()
	if id == c.id {
		return NoID, errors.Errorf("chip %v cannot contain itself", c.id)
	}
	if _, ok := c.gates[id]; ok {
		return NoID, errors.Errorf("gate %v already in chip %v", id, c.id)
	}
	if p := g.parent(); p != NoID {
		return NoID, errors.Errorf("gate %v already in chip %v", id, p)
	}
	if sub, ok := g.(*Chip); ok {
		if sub.ids != c.ids {
			return NoID, errors.Errorf("chip %v uses a different allocator", id)
		}
		if sub.contains(c.id) {
			return NoID, errors.Errorf("chip %v contains chip %v", id, c.id)
		}
	}
	for pid := range g.Pins() {
		if _, ok := c.pins[pid]; ok {
			return NoID, errors.Errorf("pin %v of gate %v is a shell pin of chip %v", pid, id, c.id)
		}
		if o, ok := c.owner[pid]; ok {
			return NoID, errors.Errorf("pin %v of gate %v already owned by gate %v", pid, id, o.gate)
		}
	}
	c.addGate(g)
	return id, nil
}

func (c *Chip) addGate(g Gate) {
	id := g.ID()
	c.gates[id] = g
	g.setParent(c.id)
	// register every pin with its gate so that the pin level wiring can later
	// be collapsed into gate dependencies.
	for _, p := range g.Inputs() {
		c.owner[p] = gatePin{id, GateInput}
	}
	for _, p := range g.Outputs() {
		c.owner[p] = gatePin{id, GateOutput}
	}
}

// RemoveGate removes a gate and every connection to or from its pins. The pins
// it used to feed become undefined.
//
func (c *Chip) RemoveGate(id ID) error {
	g, ok := c.gates[id]
	if !ok {
		return &UnknownGateError{Gate: id, Chip: c.id}
	}
	for _, p := range g.Inputs() {
		c.unlink(p)
		delete(c.owner, p)
	}
	for _, p := range g.Outputs() {
		for _, to := range c.Fanout(p) {
			c.unlink(to)
		}
		delete(c.owner, p)
	}
	delete(c.gates, id)
	g.setParent(NoID)
	return nil
}

// Gate returns the gate with the given id.
//
func (c *Chip) Gate(id ID) (Gate, error) {
	g, ok := c.gates[id]
	if !ok {
		return nil, &UnknownGateError{Gate: id, Chip: c.id}
	}
	return g, nil
}

// Gates returns the chip's gates sorted by id.
//
func (c *Chip) Gates() []Gate {
	ids := c.gateIDs()
	gs := make([]Gate, len(ids))
	for i, id := range ids {
		gs[i] = c.gates[id]
	}
	return gs
}

// Len returns the number of gates in the chip.
//
func (c *Chip) Len() int { return len(c.gates) }

func (c *Chip) gateIDs() []ID {
	ids := make([]ID, 0, len(c.gates))
	for id := range c.gates {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

func sortIDs(ids []ID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

// role returns the role of pin id as seen from inside the chip.
//
func (c *Chip) role(id ID) (Role, bool) {
	if p, ok := c.pins[id]; ok {
		return p.Role, true
	}
	if o, ok := c.owner[id]; ok {
		return o.role, true
	}
	return 0, false
}

// Connect wires pin from to pin to. From must be a chip input or a gate
// output, to must be a gate input or a chip output.
//
// A pin has at most one driver: any previous connection to pin to is
// removed along with the value it carried. Connect does not propagate any
// value.
//
func (c *Chip) Connect(from, to ID) error {
	fr, ok := c.role(from)
	if !ok {
		return &UnknownPinError{Pin: from, Owner: c.id}
	}
	tr, ok := c.role(to)
	if !ok {
		return &UnknownPinError{Pin: to, Owner: c.id}
	}
	if !fr.IsDriver() {
		return &ConnectionError{From: from, To: to, Reason: roleMismatch(fr, "driver")}
	}
	if !tr.IsSink() {
		return &ConnectionError{From: from, To: to, Reason: roleMismatch(tr, "sink")}
	}
	c.link(from, to)
	return nil
}

func (c *Chip) link(from, to ID) {
	c.unlink(to)
	c.conns[from] = append(c.conns[from], to)
	c.driver[to] = from
}

// unlink cuts the edge feeding pin to and clears the value it carried.
//
func (c *Chip) unlink(to ID) {
	from, ok := c.driver[to]
	if !ok {
		return
	}
	delete(c.driver, to)
	if p, ok := c.pins[to]; ok {
		p.Value = Undefined
	} else if o, ok := c.owner[to]; ok {
		_ = c.gates[o.gate].SetPin(to, Undefined)
	}
	outs := c.conns[from]
	for i, o := range outs {
		if o == to {
			outs = append(outs[:i], outs[i+1:]...)
			break
		}
	}
	if len(outs) == 0 {
		delete(c.conns, from)
	} else {
		c.conns[from] = outs
	}
}

// Disconnect removes the connection feeding pin to, if any. A pin cut from
// its driver becomes undefined.
//
func (c *Chip) Disconnect(to ID) error {
	if _, ok := c.role(to); !ok {
		return &UnknownPinError{Pin: to, Owner: c.id}
	}
	c.unlink(to)
	return nil
}

// Driver returns the pin feeding pin to.
//
func (c *Chip) Driver(to ID) (ID, bool) {
	from, ok := c.driver[to]
	return from, ok
}

// Fanout returns the pins fed by pin from, in connection order.
//
func (c *Chip) Fanout(from ID) []ID {
	return append([]ID(nil), c.conns[from]...)
}

// Connections returns a copy of the chip's connection graph.
//
func (c *Chip) Connections() map[ID][]ID {
	m := make(map[ID][]ID, len(c.conns))
	for from, to := range c.conns {
		m[from] = append([]ID(nil), to...)
	}
	return m
}

// Pin returns a shell pin of the chip, or a pin of one of its gates.
//
func (c *Chip) Pin(id ID) (Pin, error) {
	if p, ok := c.pins[id]; ok {
		return *p, nil
	}
	if o, ok := c.owner[id]; ok {
		if p, ok := c.gates[o.gate].Pins()[id]; ok {
			return p, nil
		}
	}
	return Pin{}, &UnknownPinError{Pin: id, Owner: c.id}
}

// Value returns the value of a pin. See Pin.
//
func (c *Chip) Value(id ID) (Level, error) {
	p, err := c.Pin(id)
	return p.Value, err
}

// SetPin sets the value of a shell pin or of a pin of one of the chip's
// gates. Setting Undefined clears the pin.
//
func (c *Chip) SetPin(id ID, v Level) error {
	if p, ok := c.pins[id]; ok {
		p.Value = v
		return nil
	}
	if o, ok := c.owner[id]; ok {
		return c.gates[o.gate].SetPin(id, v)
	}
	return &UnknownPinError{Pin: id, Owner: c.id}
}

// OutputValues returns the values of the output shell pins.
//
func (c *Chip) OutputValues() []Level {
	vs := make([]Level, len(c.output))
	for i, id := range c.output {
		vs[i] = c.pins[id].Value
	}
	return vs
}

// Snapshot returns the value of every pin in the chip, including the pins of
// nested chips.
//
func (c *Chip) Snapshot() map[ID]Level {
	m := make(map[ID]Level)
	c.snapshot(m)
	return m
}

func (c *Chip) snapshot(m map[ID]Level) {
	for id, p := range c.pins {
		m[id] = p.Value
	}
	for _, g := range c.gates {
		if sub, ok := g.(*Chip); ok {
			sub.snapshot(m)
			continue
		}
		for id, p := range g.Pins() {
			m[id] = p.Value
		}
	}
}

// Evaluate simulates the chip. It returns the value of the primary output.
//
func (c *Chip) Evaluate() (Level, error) {
	return c.run()
}
