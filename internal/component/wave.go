// internal/component/wave.go
package component

import (
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
)

// SpawnEntry is one pending spawn: a creature headed for a specific zone.
type SpawnEntry struct {
	CreatureID string
	Zone       types.Zone
	Multiplier float64
}

// WaveState tracks one wave in flight: the shuffled spawn queue and the
// drain timer. The queue is always empty when no wave is in progress.
type WaveState struct {
	Number        int
	Def           defs.WaveDefinition
	Queue         []SpawnEntry
	SpawnTimer    float64
	SpawnInterval float64 // seconds
}

// Pop removes and returns the next spawn entry. ok is false on an empty
// queue.
func (w *WaveState) Pop() (SpawnEntry, bool) {
	if len(w.Queue) == 0 {
		return SpawnEntry{}, false
	}
	entry := w.Queue[0]
	w.Queue = w.Queue[1:]
	return entry, true
}
