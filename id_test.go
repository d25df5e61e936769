// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim_test

import (
	"sync"
	"testing"

	sim "github.com/db47h/logicsim"
	"github.com/stretchr/testify/assert"
)

func TestAllocator_unique(t *testing.T) {
	const workers, count = 8, 1000

	ids := sim.NewAllocator()
	var mu sync.Mutex
	seen := make(map[sim.ID]bool, workers*count)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]sim.ID, count)
			for i := range local {
				local[i] = ids.Next()
			}
			mu.Lock()
			for _, id := range local {
				if seen[id] {
					t.Errorf("duplicate id %v", id)
				}
				seen[id] = true
			}
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, workers*count)
	assert.False(t, seen[sim.NoID], "NoID handed out")
	assert.Equal(t, sim.ID(workers*count), ids.Last())
}

func TestAllocator_monotonic(t *testing.T) {
	ids := sim.NewAllocator()
	assert.Equal(t, sim.NoID, ids.Last())
	prev := ids.Next()
	for i := 0; i < 100; i++ {
		id := ids.Next()
		assert.Greater(t, uint64(id), uint64(prev))
		prev = id
	}
}

func TestAllocator_sharedAcrossKinds(t *testing.T) {
	ids := sim.NewAllocator()
	c := sim.NewChip(ids, "c")
	and := sim.NewAnd(ids)
	in := c.AddInput()
	all := []sim.ID{c.ID(), and.ID(), in}
	all = append(all, and.Inputs()...)
	all = append(all, and.Outputs()...)
	seen := make(map[sim.ID]bool)
	for _, id := range all {
		assert.False(t, seen[id], "id %v reused", id)
		seen[id] = true
	}
}
