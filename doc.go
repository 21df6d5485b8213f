// Package hackpuzzles collects solutions to a handful of string, graph and
// array puzzles, each in its own subpackage.
//
//	coefficient/ - minimum string coefficient after p range flips, with a
//	               brute-force oracle and a concurrent cross-check harness
//	core/        - thread-safe undirected graph over integer vertex IDs
//	bfs/         - breadth-first search with depth limits and neighbor filters
//	friends/     - whom student 1 may invite, given student 2's friend circle
//	maxchar/     - greatest-letter counts over interval queries
//	bucket/      - best product-distribution score modulo 1e9+7
//
// Runnable programs live under examples/: crosscheck runs the coefficient
// estimator against the oracle, drivers runs the other puzzles on their
// sample inputs.
package hackpuzzles
