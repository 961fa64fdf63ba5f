// Package planner decides where each top-level file of a source directory
// should go, without touching the filesystem beyond reading it.
//
// Entries are examined in this order, the first rule that applies wins:
//
//  1. name in the excluded-files list: ignored
//  2. directory (including links to directories): ignored, whether or not it
//     is an excluded folder or a category folder
//  3. name starting with ".": ignored
//  4. regular file (including links to files): planned into the first
//     category claiming its extension, or the catch-all
//  5. anything else, such as a broken link or a socket: ignored
package planner
