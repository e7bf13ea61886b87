package core

import "errors"

// Errors returned by graph construction and search. Call sites wrap them with
// context, so compare with errors.Is.
var (
	// ErrInvalidConfiguration is returned for bad build parameters.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrEmptyCandidateSet is returned when ranking is asked for results from nothing.
	ErrEmptyCandidateSet = errors.New("empty candidate set")
	// ErrEmptyGraph is returned when querying a graph with no points.
	ErrEmptyGraph = errors.New("graph is empty")
	// ErrNonConvergence is returned when a walk exceeds its step budget.
	ErrNonConvergence = errors.New("walk did not converge")
	// ErrInvalidQuery is returned for a target or entry point the graph cannot serve.
	ErrInvalidQuery = errors.New("invalid query")
)
