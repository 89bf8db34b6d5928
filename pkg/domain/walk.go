package domain

// Outcome is the result of a single coin flip.
type Outcome string

const (
	// OutcomeForward moves the walker one position forward.
	OutcomeForward Outcome = "forward"
	// OutcomeBackward moves the walker one position backward, floored at zero.
	OutcomeBackward Outcome = "backward"
)

// Step records one coin flip and the position it produced.
// Position is the post-update value, so a trace can be replayed by
// reading positions alone.
type Step struct {
	Position int     `json:"position"`
	Outcome  Outcome `json:"outcome"`
}

// WalkResult is the ordered step trace of one full walk.
// It is immutable once returned by the generator; callers own the slice.
type WalkResult []Step

// Final returns the position after the last step, or 0 for an empty walk
// (the walker starts at the origin).
func (w WalkResult) Final() int {
	if len(w) == 0 {
		return 0
	}
	return w[len(w)-1].Position
}
