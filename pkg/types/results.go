package types

// PlanResult is what a planning call hands to the confirmation step.
// Plan is set for planned and empty; Message and Err are set for error.
type PlanResult struct {
	Status  PlanStatus `json:"status"`
	Plan    *Plan      `json:"plan,omitempty"`
	Message string     `json:"message,omitempty"`
	Err     error      `json:"-"`
}

// IgnoredCount is zero when planning failed
func (r *PlanResult) IgnoredCount() int {
	if r.Plan == nil {
		return 0
	}
	return r.Plan.IgnoredCount()
}

// MoveOutcome is the fate of one planned move
type MoveOutcome struct {
	Move PlannedMove `json:"move"`

	// FinalPath is the path the file was moved to, after collision resolution.
	// Empty when the move failed before a name was chosen.
	FinalPath string `json:"finalPath,omitempty"`

	Err error `json:"-"`
}

// Succeeded reports whether the file reached its destination
func (o MoveOutcome) Succeeded() bool {
	return o.Err == nil
}

// ExecutionResult accumulates counts over one batch of moves
type ExecutionResult struct {
	MovedCount int           `json:"moved"`
	ErrorCount int           `json:"errors"`
	Outcomes   []MoveOutcome `json:"outcomes"`
}

// Failures returns the outcomes that did not succeed
func (r *ExecutionResult) Failures() []MoveOutcome {
	var failed []MoveOutcome
	for _, o := range r.Outcomes {
		if !o.Succeeded() {
			failed = append(failed, o)
		}
	}
	return failed
}

// GeneratedFile is one default definition produced by gen-config
type GeneratedFile struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Content string `json:"content"`
}

// GenConfigResult holds the result of the gen-config command
type GenConfigResult struct {
	Files        []GeneratedFile `json:"files"`
	FilesWritten []string        `json:"filesWritten"`
	FilesSkipped []string        `json:"filesSkipped"`
}
