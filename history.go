package easel

// Snapshot is the editor state saved before a destructive gesture.
// Shapes decides which shapes exist after a restore; a shape that still
// exists keeps its current geometry, so moves survive undo and redo.
//
// Base is shared between snapshots and the Raster: base buffers are
// replaced on change, never written in place.
type Snapshot struct {
	Pixels  []uint8
	Base    []uint8
	Shapes  []Shape
	Strokes []Stroke
}

// History is a pair of bounded LIFO snapshot stacks.
//
// Push records the state before a destructive gesture and clears the redo
// stack. Undo and Redo swap the current state between the stacks.
type History struct {
	limit int
	undo  []Snapshot
	redo  []Snapshot
}

// NewHistory returns an empty history keeping at most limit undo
// snapshots. A limit of 0 keeps every snapshot.
func NewHistory(limit int) *History {
	return &History{limit: max(limit, 0)}
}

// Push records s as the newest undo state and clears the redo stack.
// When the limit is exceeded the oldest snapshot is dropped.
func (h *History) Push(s Snapshot) {
	h.undo = h.pushBounded(h.undo, s)
	h.redo = nil
}

// Undo pops the newest undo state, pushing current onto the redo stack.
// It reports false, leaving both stacks untouched, when there is nothing
// to undo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.undo) == 0 {
		return Snapshot{}, false
	}
	var s Snapshot
	h.undo, s = pop(h.undo)
	h.redo = h.pushBounded(h.redo, current)
	return s, true
}

// Redo is the mirror of Undo.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.redo) == 0 {
		return Snapshot{}, false
	}
	var s Snapshot
	h.redo, s = pop(h.redo)
	h.undo = h.pushBounded(h.undo, current)
	return s, true
}

// CanUndo reports whether Undo would do anything.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether Redo would do anything.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Len returns the depth of the undo and redo stacks.
func (h *History) Len() (undo, redo int) {
	return len(h.undo), len(h.redo)
}

func (h *History) pushBounded(stack []Snapshot, s Snapshot) []Snapshot {
	stack = append(stack, s)
	if h.limit > 0 && len(stack) > h.limit {
		n := len(stack) - h.limit
		clear(stack[:n])
		stack = stack[n:]
	}
	return stack
}

func pop(stack []Snapshot) ([]Snapshot, Snapshot) {
	n := len(stack) - 1
	s := stack[n]
	stack[n] = Snapshot{}
	return stack[:n], s
}
