// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"github.com/pkg/errors"
)

// MaxTableInputs is the largest input count accepted by TruthTable.
//
const MaxTableInputs = 16

// A Row is one line of a truth table.
//
type Row struct {
	In  []bool
	Out []bool
}

// SetInputs sets the chip's input shell pins, in order. Missing values leave
// the remaining pins untouched.
//
func (c *Chip) SetInputs(vs ...bool) error {
	if len(vs) > len(c.input) {
		return errors.Errorf("chip %v has %d inputs, got %d values", c.id, len(c.input), len(vs))
	}
	for i, v := range vs {
		c.pins[c.input[i]].Value = LevelOf(v)
	}
	return nil
}

// TruthTable simulates c for every combination of its shell inputs and
// returns the resulting outputs. Rows are in binary counting order with the
// first input as the most significant bit.
//
// The chip's inputs are left set to the last combination.
//
func TruthTable(c *Chip) ([]Row, error) {
	n := len(c.input)
	if n > MaxTableInputs {
		return nil, errors.Errorf("chip %v: too many inputs for a truth table (%d > %d)", c.id, n, MaxTableInputs)
	}
	tot := 1 << uint(n)
	rows := make([]Row, 0, tot)
	for i := 0; i < tot; i++ {
		in := make([]bool, n)
		for bit := range in {
			in[n-bit-1] = i&(1<<uint(bit)) != 0
		}
		if err := c.SetInputs(in...); err != nil {
			return nil, err
		}
		if _, err := c.Simulate(); err != nil {
			return nil, errors.Wrapf(err, "inputs %v", in)
		}
		out := make([]bool, len(c.output))
		for o, id := range c.output {
			v, ok := c.pins[id].Value.Bool()
			if !ok {
				return nil, errors.Wrapf(&UndefinedInputError{Gate: c.id, Pin: id}, "inputs %v", in)
			}
			out[o] = v
		}
		rows = append(rows, Row{In: in, Out: out})
	}
	return rows, nil
}
