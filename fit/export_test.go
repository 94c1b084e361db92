// Package fit: re-export private builders for white-box shape tests.
package fit

// Design and Response expose the internal matrix builders to the test
// package without widening the public API.
var (
	Design   = design
	Response = response
)
