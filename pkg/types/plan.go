package types

import "path/filepath"

// PlannedMove is a proposed relocation of one file into a category folder.
// The executor reads it but never writes back into it.
type PlannedMove struct {
	// FileName is the original base name of the file
	FileName string `json:"file"`

	// SourcePath is the full path of the file at scan time
	SourcePath string `json:"source"`

	// DestinationDir is the full path of the category folder
	DestinationDir string `json:"destinationDir"`

	// Category is the short category name, the last segment of DestinationDir
	Category string `json:"category"`
}

// DestinationPath is where the file lands when no collision occurs
func (m PlannedMove) DestinationPath() string {
	return filepath.Join(m.DestinationDir, m.FileName)
}

// IgnoreReason explains why the planner skipped an entry
type IgnoreReason string

const (
	IgnoreExcludedFile   IgnoreReason = "excluded_file"
	IgnoreExcludedFolder IgnoreReason = "excluded_folder"
	IgnoreCategoryFolder IgnoreReason = "category_folder"
	IgnoreDirectory      IgnoreReason = "directory"
	IgnoreHidden         IgnoreReason = "hidden"
	IgnoreNotRegular     IgnoreReason = "not_regular"
)

// IgnoredEntry records one skipped entry of the source directory
type IgnoredEntry struct {
	Name   string       `json:"name"`
	Reason IgnoreReason `json:"reason"`
}

// PlanStatus is the outcome of a planning call
type PlanStatus string

const (
	PlanStatusPlanned PlanStatus = "planned"
	PlanStatusEmpty   PlanStatus = "empty"
	PlanStatusError   PlanStatus = "error"
)

// Plan is the ordered list of moves for one source directory. It lives only
// between planning and execution and is never persisted.
type Plan struct {
	RunID     string         `json:"runId"`
	SourceDir string         `json:"sourceDir"`
	Moves     []PlannedMove  `json:"moves"`
	Ignored   []IgnoredEntry `json:"ignored"`
}

// IgnoredCount is the number of entries the planner skipped
func (p *Plan) IgnoredCount() int {
	return len(p.Ignored)
}

// Status reports planned when there is at least one move, empty otherwise
func (p *Plan) Status() PlanStatus {
	if len(p.Moves) == 0 {
		return PlanStatusEmpty
	}
	return PlanStatusPlanned
}

// CategoryCounts tallies planned moves per category, keyed by category name
func (p *Plan) CategoryCounts() map[string]int {
	counts := make(map[string]int)
	for _, m := range p.Moves {
		counts[m.Category]++
	}
	return counts
}
