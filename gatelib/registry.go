// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatelib

import (
	"sort"

	"github.com/db47h/logicsim"
)

// A Template describes a library chip: its pin names and its constructor.
//
type Template struct {
	Name    string
	Inputs  []string
	Outputs []string
	New     func(ids *logicsim.Allocator) *logicsim.Chip
}

var (
	gateIn  = []string{"a", "b"}
	gateOut = []string{"out"}
)

var templates = map[string]Template{
	"NAND":      {"NAND", gateIn, gateOut, Nand},
	"NOR":       {"NOR", gateIn, gateOut, Nor},
	"OR":        {"OR", gateIn, gateOut, Or},
	"XOR":       {"XOR", gateIn, gateOut, Xor},
	"XNOR":      {"XNOR", gateIn, gateOut, Xnor},
	"MUX":       {"MUX", []string{"a", "b", "sel"}, gateOut, Mux},
	"DMUX":      {"DMUX", []string{"in", "sel"}, []string{"a", "b"}, DMux},
	"HalfAdder": {"HalfAdder", gateIn, []string{"s", "c"}, HalfAdder},
	"FullAdder": {"FullAdder", []string{"a", "b", "cin"}, []string{"s", "cout"}, FullAdder},
}

// Lookup returns the template with the given name.
//
func Lookup(name string) (Template, bool) {
	t, ok := templates[name]
	return t, ok
}

// Names returns the names of all library templates, sorted.
//
func Names() []string {
	ns := make([]string, 0, len(templates))
	for n := range templates {
		ns = append(ns, n)
	}
	sort.Strings(ns)
	return ns
}
