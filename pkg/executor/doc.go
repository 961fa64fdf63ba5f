// Package executor carries out a plan produced by the planner.
//
// Execution is a blocking, sequential loop with no cancellation: once started
// it processes every planned move. Failures are per item and never stop the
// batch; they are counted and logged, and the caller gets the totals back.
//
// Choosing a free destination name and moving the file are two separate
// steps. Another process writing into the same category folder between them
// can take the chosen name; the move then refuses to overwrite and the item
// is counted as failed.
package executor
