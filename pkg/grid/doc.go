// Package grid turns a set of element Lines into rows ordered top to bottom.
//
// # Algorithm
//
// [Sort] runs a single greedy pass:
//
//  1. Build the relation graph over all input Lines with [geom.IsAbove].
//  2. Collect candidate pairs (left, right) where left ends strictly before
//     right starts and no path connects them in either direction. Rank them
//     by the configured [geom.DistanceFunc] between left's trailing point
//     and right's leading point, closest first. Pairs at +Inf are dropped.
//  3. Walk the candidates. Each original Line may give its trailing end to
//     one merge and its leading end to one merge. Operands are resolved to
//     the row that currently holds them through a union-find.
//  4. Skip pairs whose rows have become ordered through earlier merges.
//  5. Concatenate the two rows and merge their graph nodes.
//  6. Grade every surviving row by the number of rows below it and sort by
//     grade, highest first.
//
// The result is a [Grid]: rows top to bottom, each a left-to-right sequence
// of points carrying element owners.
//
// # Ties
//
// Rows with equal grade (rows with no ordering between them) keep encounter
// order: the row holding the earliest input Line comes first. This is
// implementation-defined; callers should not rely on any stronger guarantee.
//
// # Complexity
//
// Building the graph and collecting candidates are O(n²). Every merge
// re-evaluates the relation against all remaining rows, so merging is
// O(n²) relation evaluations in total. This suits the elements visible on
// one screen and does not scale to whole documents.
//
// # Inputs
//
// Sort never mutates its input. Empty Lines are dropped; an empty input
// yields an empty Grid.
package grid
