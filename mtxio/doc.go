// Package mtxio reads and writes adjacency matrices in the plain text
// format used by the command line tool:
//
//	0 1 0 1
//	1 0 1 0
//	0 1 0 1
//	1 0 1 0
//
// One row per line, cells are the tokens "0" and "1" separated by spaces or
// tabs. Blank lines are ignored. The first row fixes n; every later row
// must hold n tokens and there must be exactly n rows.
//
// Rows are tokenized by a small participle grammar so that a rejected token
// is reported with its line and column.
package mtxio
