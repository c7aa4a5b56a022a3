// Package teams holds the embedded table of clubs whose logos are fetched.
//
// The source list may repeat an id. Build collapses repeats with
// last-write-wins and reports them as Duplicates so the caller can log the
// data defect.
package teams
