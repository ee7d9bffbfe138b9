package board

// maxUndoDepth bounds the undo stack; the oldest snapshot is evicted first
// once the cap is exceeded.
const maxUndoDepth = 50

// history is a bounded stack of command-list snapshots. Each snapshot is the
// full completed+queued list captured immediately before an enqueue, so
// popping one undoes exactly that batch.
type history struct {
	snapshots [][]Command
	max       int
}

func newHistory(max int) *history {
	return &history{max: max}
}

// push stores a copy of the command list, evicting the oldest snapshot when
// the stack is full.
func (h *history) push(commands []Command) {
	snap := make([]Command, len(commands))
	copy(snap, commands)
	if len(h.snapshots) >= h.max {
		h.snapshots = h.snapshots[1:]
	}
	h.snapshots = append(h.snapshots, snap)
}

// pop removes and returns the most recent snapshot.
func (h *history) pop() ([]Command, bool) {
	if len(h.snapshots) == 0 {
		return nil, false
	}
	last := h.snapshots[len(h.snapshots)-1]
	h.snapshots = h.snapshots[:len(h.snapshots)-1]
	return last, true
}

func (h *history) len() int { return len(h.snapshots) }

func (h *history) reset() { h.snapshots = nil }
