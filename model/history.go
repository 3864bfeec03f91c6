package model

const defaultHistorySize = 5

// History stores recent universe hashes for cycle detection
type History struct {
	size   int
	hashes []string
}

// NewHistory keeps the last size states, a non-positive size keeps 5
func NewHistory(size int) *History {
	if size <= 0 {
		size = defaultHistorySize
	}
	return &History{size: size}
}

// Hasher is anything with a stable digest of its state
type Hasher interface {
	Hash() string
}

// Record adds the state to history and maintains size
func (h *History) Record(u Hasher) {
	h.hashes = append(h.hashes, u.Hash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant checks if the state repeats one of the last three recorded states
func (h *History) IsStagnant(u Hasher) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := u.Hash()
	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}
	return false
}

// Reset forgets every recorded state
func (h *History) Reset() {
	h.hashes = nil
}

// Len returns the number of recorded states
func (h *History) Len() int {
	return len(h.hashes)
}
