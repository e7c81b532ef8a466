package ui

import "github.com/piwi3910/advslider/internal/model"

const defaultMaxDepth = 50

// Snapshot captures the configuration of every demo slider.
type Snapshot struct {
	Sliders []model.SliderPreset
	Label   string // what the next change does, e.g. "Reset"
}

// History manages undo/redo stacks of slider snapshots.
type History struct {
	undoStack []Snapshot
	redoStack []Snapshot
	maxDepth  int
}

// NewHistory creates a History with the default max depth of 50.
func NewHistory() *History {
	return &History{maxDepth: defaultMaxDepth}
}

// Push saves s, taken before a change, and clears the redo stack.
func (h *History) Push(s Snapshot) {
	h.undoStack = append(h.undoStack, s)
	if len(h.undoStack) > h.maxDepth {
		h.undoStack = h.undoStack[len(h.undoStack)-h.maxDepth:]
	}
	h.redoStack = nil
}

// Undo returns the most recent snapshot and remembers current for Redo.
// It reports false when there is nothing to undo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.undoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	current.Label = last.Label
	h.redoStack = append(h.redoStack, current)
	return last, true
}

// Redo is the inverse of Undo.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.redoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	current.Label = last.Label
	h.undoStack = append(h.undoStack, current)
	return last, true
}

func (h *History) CanUndo() bool { return len(h.undoStack) > 0 }
func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }

// UndoLabel names the change Undo would revert, or "" if none.
func (h *History) UndoLabel() string {
	if len(h.undoStack) == 0 {
		return ""
	}
	return h.undoStack[len(h.undoStack)-1].Label
}

// RedoLabel names the change Redo would reapply, or "" if none.
func (h *History) RedoLabel() string {
	if len(h.redoStack) == 0 {
		return ""
	}
	return h.redoStack[len(h.redoStack)-1].Label
}

// Clear removes all undo and redo history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// MakeSnapshot copies presets into a snapshot labelled with the change
// about to be made.
func MakeSnapshot(presets []model.SliderPreset, label string) Snapshot {
	var cp []model.SliderPreset
	if presets != nil {
		cp = make([]model.SliderPreset, len(presets))
		copy(cp, presets)
	}
	return Snapshot{Sliders: cp, Label: label}
}
