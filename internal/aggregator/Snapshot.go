package aggregator

import (
	"sync"

	"github.com/farmscan/farmscan/internal/types"
)

// SnapshotHolder keeps the latest completed refresh result for readers such
// as the web layer. Each completed refresh replaces the snapshot wholesale;
// concurrent refreshes are not deduplicated here, the last completion wins.
type SnapshotHolder struct {
	mu       sync.RWMutex
	latest   types.AggregateResult
	hasValue bool
}

// NewSnapshotHolder creates an empty holder.
func NewSnapshotHolder() *SnapshotHolder {
	return &SnapshotHolder{}
}

// Set replaces the stored snapshot.
func (h *SnapshotHolder) Set(result types.AggregateResult) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = result
	h.hasValue = true
}

// Latest returns the stored snapshot; the second return is false until the
// first refresh completes.
func (h *SnapshotHolder) Latest() (types.AggregateResult, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest, h.hasValue
}
