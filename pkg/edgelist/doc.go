// Package edgelist converts between the plain-text edge-list encoding and
// in-memory graphs.
//
// The text format is whitespace-delimited non-negative integers:
//
//	line 1:   <nodeCount> <edgeCount>
//	line 2..: <nodeA> <nodeB> <weight>    (edgeCount such lines, 1-indexed endpoints)
//
// [Parse] tokenizes the text into integer rows, [Build] drives any
// graph.Graph implementation from those rows, and [Write] renders a built
// graph's edge set back to 1-indexed display form.
//
// Construction is all-or-nothing: an empty input, a malformed header, a
// wrong-arity edge row, or a truncated edge section aborts the build with a
// structured error. There is no partial or best-effort result.
package edgelist
