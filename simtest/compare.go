// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package simtest provides utility functions for testing chips.
//
package simtest

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/db47h/logicsim"
	"github.com/stretchr/testify/require"
)

// maxExhaustive is the largest input count CompareChips tests exhaustively.
//
const maxExhaustive = 12

func inputString(in []bool) string {
	var b strings.Builder
	for i, v := range in {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "in%d=%v", i, v)
	}
	return b.String()
}

func outputs(t testing.TB, c *logicsim.Chip) []bool {
	t.Helper()
	vs := c.OutputValues()
	r := make([]bool, len(vs))
	for i, v := range vs {
		b, ok := v.Bool()
		require.Truef(t, ok, "chip %s: output %d undefined", c.Name(), i)
		r[i] = b
	}
	return r
}

func run(t testing.TB, c *logicsim.Chip, in []bool) []bool {
	t.Helper()
	require.NoError(t, c.SetInputs(in...))
	_, err := c.Simulate()
	require.NoError(t, err, "chip %s, %s", c.Name(), inputString(in))
	return outputs(t, c)
}

// CompareChips takes two chips and compares their outputs given the same
// inputs. Both chips must have the same input and output counts.
//
// Chips with up to 12 inputs are tested exhaustively, larger ones with all
// inputs low, all inputs high and 4096 random combinations.
//
func CompareChips(t testing.TB, c1, c2 *logicsim.Chip) {
	t.Helper()

	n := len(c1.Inputs())
	require.Equal(t, n, len(c2.Inputs()), "input count")
	require.Equal(t, len(c1.Outputs()), len(c2.Outputs()), "output count")

	check := func(in []bool) {
		t.Helper()
		o1, o2 := run(t, c1, in), run(t, c2, in)
		for o := range o1 {
			if o1[o] != o2[o] {
				t.Fatalf("%s: out%d: %s = %v, %s = %v", inputString(in), o, c1.Name(), o1[o], c2.Name(), o2[o])
			}
		}
	}

	in := make([]bool, n)
	if n <= maxExhaustive {
		for i := 0; i < 1<<uint(n); i++ {
			for bit := range in {
				in[n-bit-1] = i&(1<<uint(bit)) != 0
			}
			check(in)
		}
		return
	}

	check(in)
	for i := range in {
		in[i] = true
	}
	check(in)
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < 1<<maxExhaustive; i++ {
		for b := range in {
			in[b] = rnd.Int63()&(1<<62) != 0
		}
		check(in)
	}
}

// AssertTable checks the truth table of c. result[o][i] is the expected value
// of output o for the i-th input combination, counting in binary with the
// first input as the most significant bit.
//
func AssertTable(t testing.TB, c *logicsim.Chip, result [][]bool) {
	t.Helper()
	rows, err := logicsim.TruthTable(c)
	require.NoError(t, err)
	require.Len(t, result, len(c.Outputs()), "chip %s: output count", c.Name())
	for o := range result {
		require.Len(t, result[o], len(rows), "chip %s: row count for output %d", c.Name(), o)
	}
	for i, r := range rows {
		for o, got := range r.Out {
			if got != result[o][i] {
				t.Errorf("%s %s: out%d = %v, expected %v", c.Name(), inputString(r.In), o, got, result[o][i])
			}
		}
	}
}
