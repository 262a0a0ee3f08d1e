package lfsr

import (
	"errors"
	"fmt"
)

var ErrNoCycle = errors.New("no cycle found")

// Period runs a copy of the register until its state repeats.
// It returns the step at which the cycle starts and the cycle length.
// For a register of length L a cycle is always found within 2^L steps, so a limit of at least 1<<Len() never fails.
func (r *Register) Period(limit int) (start, length int, err error) {
	probe := r.Clone()
	seen := make(map[string]int)
	for step := 0; step <= limit; step++ {
		key := probe.String()
		if first, ok := seen[key]; ok {
			return first, step - first, nil
		}
		seen[key] = step
		probe.Step()
	}
	return 0, 0, fmt.Errorf("%w within %d steps", ErrNoCycle, limit)
}
