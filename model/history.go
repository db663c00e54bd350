package model

const defaultHistorySize = 5

// History stores recent generation hashes for cycle detection
type History struct {
	size   int
	hashes []string
}

// NewHistory keeps the last size hashes. Zero or negative picks the default;
// anything below 3 is raised to 3.
func NewHistory(size int) *History {
	if size <= 0 {
		size = defaultHistorySize
	}
	return &History{size: max(3, size)}
}

// Record adds the world's current state and drops the oldest beyond capacity
func (h *History) Record(w *World) {
	h.hashes = append(h.hashes, w.Hash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Stagnant reports whether the world matches one of the last three recorded
// states, i.e. it is a still life or an oscillator of period three or less.
func (h *History) Stagnant(w *World) bool {
	current := w.Hash()
	for i := 1; i <= 3 && i <= len(h.hashes); i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}
	return false
}

// Reset forgets all recorded states
func (h *History) Reset() {
	h.hashes = nil
}
