package testutils

import (
	"fmt"
	"sync"
)

// ScriptedRoller is a dice.Roller that returns queued values in order,
// so tests can pin exact outcomes.
type ScriptedRoller struct {
	mu    sync.Mutex
	queue []int
}

// NewScriptedRoller queues the given rolls.
func NewScriptedRoller(rolls ...int) *ScriptedRoller {
	return &ScriptedRoller{queue: rolls}
}

// Push appends more rolls to the queue.
func (r *ScriptedRoller) Push(rolls ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queue = append(r.queue, rolls...)
}

// Roll implements dice.Roller.
func (r *ScriptedRoller) Roll(_ int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.queue) == 0 {
		return 0, fmt.Errorf("scripted roller exhausted")
	}
	v := r.queue[0]
	r.queue = r.queue[1:]
	return v, nil
}

// RollN implements dice.Roller.
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
