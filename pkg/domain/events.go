package domain

// StepEvent describes one coin flip inside a walk.
type StepEvent struct {
	Index    int     `json:"index"`
	Position int     `json:"position"`
	Outcome  Outcome `json:"outcome"`
}

// WalkEvent describes a completed walk.
type WalkEvent struct {
	Length int `json:"length"`
	Final  int `json:"final"`
}

// TrialsEvent describes a completed aggregation run.
type TrialsEvent struct {
	Count      int `json:"count"`
	WalkLength int `json:"walk_length"`
}

// LifecycleHooks defines optional callbacks for simulation observability.
// All fields are optional; nil hooks are skipped. Callbacks run inline on
// the simulation goroutine, so they must be fast.
type LifecycleHooks struct {
	OnStep      func(StepEvent)
	OnWalkEnd   func(WalkEvent)
	OnTrialsEnd func(TrialsEvent)
}

// EmitStep invokes OnStep if set.
func (h LifecycleHooks) EmitStep(e StepEvent) {
	if h.OnStep != nil {
		h.OnStep(e)
	}
}

// EmitWalkEnd invokes OnWalkEnd if set.
func (h LifecycleHooks) EmitWalkEnd(e WalkEvent) {
	if h.OnWalkEnd != nil {
		h.OnWalkEnd(e)
	}
}

// EmitTrialsEnd invokes OnTrialsEnd if set.
func (h LifecycleHooks) EmitTrialsEnd(e TrialsEvent) {
	if h.OnTrialsEnd != nil {
		h.OnTrialsEnd(e)
	}
}
