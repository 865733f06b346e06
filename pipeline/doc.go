// Package pipeline runs one coloring request end to end: optional
// planarity gate, backtracking search, re-verification of the assignment,
// optional SAT cross-check, logging and metrics. The CLI and the HTTP
// service both go through Runner.Run.
package pipeline
