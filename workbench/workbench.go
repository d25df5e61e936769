// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package workbench implements an editing session over a logicsim circuit.
//
// A Bench owns the id allocator, a root chip being edited and a library of
// named chip templates. All methods are safe for concurrent use: a Bench
// serializes edits and simulation passes on its root chip.
//
// Gates returned by Place and Instantiate, and gates handed to AddGate, are
// part of the root chip. Once placed, they must only be changed through the
// Bench methods or from within Do.
//
package workbench

import (
	"sort"
	"sync"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/gatelib"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrUnknownTemplate is returned when looking up a template that has not been
// registered.
//
var ErrUnknownTemplate = errors.New("unknown template")

// Options configures a Bench.
//
type Options struct {
	// EagerSimulate runs a simulation pass after every successful edit.
	// Simulation errors are then logged, not returned.
	EagerSimulate bool
	// Logger receives the session's log. Defaults to the logrus standard
	// logger.
	Logger *logrus.Logger
}

// A Bench is an editing session.
//
type Bench struct {
	mu        sync.Mutex
	ids       *logicsim.Allocator
	root      *logicsim.Chip
	templates map[string]*logicsim.Chip
	eager     bool
	log       *logrus.Entry
}

// New returns a new Bench with an empty root chip.
//
func New(name string, opts Options) *Bench {
	l := opts.Logger
	if l == nil {
		l = logrus.StandardLogger()
	}
	ids := logicsim.NewAllocator()
	root := logicsim.NewChip(ids, name)
	return &Bench{
		ids:       ids,
		root:      root,
		templates: make(map[string]*logicsim.Chip),
		eager:     opts.EagerSimulate,
		log:       l.WithFields(logrus.Fields{"bench": name, "chip": root.ID()}),
	}
}

// Allocator returns the session's id allocator. Gates added to the bench must
// be built with it.
//
func (b *Bench) Allocator() *logicsim.Allocator { return b.ids }

// Do calls fn with exclusive access to the root chip.
//
func (b *Bench) Do(fn func(root *logicsim.Chip) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.edited(fn(b.root))
}

// edited runs the eager simulation policy after an edit. It must be called
// with b.mu held.
//
func (b *Bench) edited(err error) error {
	if err != nil || !b.eager {
		return err
	}
	if _, serr := b.root.Simulate(); serr != nil {
		b.log.WithError(serr).Debug("eager simulation failed")
	}
	return nil
}

// NewGate returns a new gate of kind k, not yet placed in the root chip.
//
func (b *Bench) NewGate(k logicsim.Kind) (logicsim.Gate, error) {
	return logicsim.NewGate(b.ids, k)
}

// Place creates a new gate of kind k and adds it to the root chip. The
// returned gate is live: use it for its pin ids, and change it only through
// the Bench or Do.
//
func (b *Bench) Place(k logicsim.Kind) (logicsim.Gate, error) {
	g, err := b.NewGate(k)
	if err != nil {
		return nil, err
	}
	if _, err = b.AddGate(g); err != nil {
		return nil, err
	}
	return g, nil
}

// AddGate adds g to the root chip.
//
func (b *Bench) AddGate(g logicsim.Gate) (logicsim.ID, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id, err := b.root.AddGate(g)
	if err == nil {
		b.log.Debugf("added %v gate %v", g.Kind(), id)
	}
	return id, b.edited(err)
}

// RemoveGate removes a gate and its connections from the root chip.
//
func (b *Bench) RemoveGate(id logicsim.ID) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.edited(b.root.RemoveGate(id))
}

// AddInput adds an input shell pin to the root chip.
//
func (b *Bench) AddInput() logicsim.ID {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.root.AddInput()
}

// AddOutput adds an output shell pin to the root chip.
//
func (b *Bench) AddOutput() logicsim.ID {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.root.AddOutput()
}

// Connect wires two pins of the root chip.
//
func (b *Bench) Connect(from, to logicsim.ID) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	err := b.root.Connect(from, to)
	if err == nil {
		b.log.Debugf("connected %v -> %v", from, to)
	}
	return b.edited(err)
}

// Disconnect removes the connection feeding pin to.
//
func (b *Bench) Disconnect(to logicsim.ID) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.edited(b.root.Disconnect(to))
}

// SetPin sets the value of a pin of the root chip or of one of its gates.
//
func (b *Bench) SetPin(id logicsim.ID, v logicsim.Level) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.edited(b.root.SetPin(id, v))
}

// Value returns the value of a pin of the root chip or of one of its gates.
//
func (b *Bench) Value(id logicsim.ID) (logicsim.Level, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.root.Value(id)
}

// Simulate runs a simulation pass over the root chip.
//
func (b *Bench) Simulate() (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, err := b.root.Simulate()
	if err != nil {
		b.log.WithError(err).Info("simulation failed")
		return false, err
	}
	return v, nil
}

// Snapshot returns a copy of the root chip.
//
func (b *Bench) Snapshot() *logicsim.Chip {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.root.DeepCopy()
}

// Abstract turns a selection of the root chip's gates into a template stored
// under name, replacing any template with the same name. See
// logicsim.Chip.Abstract.
//
func (b *Bench) Abstract(name string, gates, inputs, outputs []logicsim.ID) (*logicsim.Chip, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t, err := b.root.Abstract(gates, inputs, outputs, name)
	if err != nil {
		return nil, errors.Wrapf(err, "template %q", name)
	}
	b.templates[name] = t
	b.log.WithField("template", name).Infof("abstracted %d gates", t.Len())
	return t.DeepCopy(), nil
}

// Register stores a copy of c as a template under name. c must have been
// built with the bench's allocator.
//
func (b *Bench) Register(name string, c *logicsim.Chip) error {
	if c.Allocator() != b.ids {
		return errors.Errorf("template %q: chip uses a different allocator", name)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.templates[name] = c.DeepCopy()
	return nil
}

// ImportLibrary registers the named gatelib templates, or all of them if no
// name is given.
//
func (b *Bench) ImportLibrary(names ...string) error {
	if len(names) == 0 {
		names = gatelib.Names()
	}
	for _, n := range names {
		t, ok := gatelib.Lookup(n)
		if !ok {
			return errors.Wrap(ErrUnknownTemplate, n)
		}
		if err := b.Register(n, t.New(b.ids)); err != nil {
			return err
		}
	}
	return nil
}

// Template returns a fresh copy of the named template.
//
func (b *Bench) Template(name string) (*logicsim.Chip, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t, ok := b.templates[name]
	if !ok {
		return nil, errors.Wrap(ErrUnknownTemplate, name)
	}
	return t.DeepCopy(), nil
}

// Templates returns the names of all registered templates, sorted.
//
func (b *Bench) Templates() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	ns := make([]string, 0, len(b.templates))
	for n := range b.templates {
		ns = append(ns, n)
	}
	sort.Strings(ns)
	return ns
}

// Instantiate adds a copy of the named template to the root chip as a gate.
// Like Place, the returned chip must only be changed through the Bench or Do.
//
func (b *Bench) Instantiate(name string) (*logicsim.Chip, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t, ok := b.templates[name]
	if !ok {
		return nil, errors.Wrap(ErrUnknownTemplate, name)
	}
	c := t.DeepCopy()
	if _, err := b.root.AddGate(c); err != nil {
		return nil, err
	}
	b.log.WithField("template", name).Debugf("instantiated as chip %v", c.ID())
	return c, b.edited(nil)
}
