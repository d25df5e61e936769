// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package logicsim provides a gate level circuit graph engine.

Circuits are built out of a small closed set of primitive gates (And, Or, Not,
Buffer, Source and Output) composed into chips. A Chip holds its gates, the
connections between their pins and its own shell pins, and can itself be used
as a gate inside another chip.

Simulation is a single pass: the pin level wiring is collapsed into a gate
dependency graph, gates are evaluated in dependency order and each output is
propagated along the wiring before any consumer is evaluated. There is no
notion of time or propagation delay. Feedback loops are rejected.

A small XOR could be built like this:

	ids := logicsim.NewAllocator()
	xor := logicsim.NewChip(ids, "XOR")
	a, b := xor.AddInput(), xor.AddInput()
	out := xor.AddOutput()
	// add gates and wire them with xor.Connect(from, to)
	...
	xor.SetPin(a, logicsim.High)
	xor.SetPin(b, logicsim.Low)
	v, err := xor.Simulate()

Chips can be copied with DeepCopy, and a subset of a chip's gates can be turned
into a reusable template with Abstract.
*/
package logicsim
