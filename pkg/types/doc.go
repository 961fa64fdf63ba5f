// Package types defines the data shared between the planning and execution
// stages of dirsort: the filesystem interface both stages run against, the
// planned moves produced by the planner and the results reported back to a
// caller.
package types
