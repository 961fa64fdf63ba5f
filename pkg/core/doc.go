// Package core wires the loaders, the planner and the executor into the
// two calls the command line needs: PlanDirectory builds a plan that can be
// shown and confirmed, and ExecutePlan carries it out.
//
// Loading errors for the category definition and a missing source directory
// stop the pipeline before anything on disk changes. A missing or malformed
// exclusion definition only produces a warning. Once execution starts every
// item is attempted and failures are counted, never returned.
package core
