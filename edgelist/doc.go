// Package edgelist reads and writes graphs in the plain-text edge-list format
// used by the apsp command and its fixtures:
//
//	n m
//	u v w
//	...
//
// The header gives the vertex count n and edge count m. Each of the m edge
// lines names a 1-based tail u, 1-based head v and signed integer length w,
// separated by spaces or tabs. Blank lines are ignored anywhere.
//
// Parsed graphs use 0-based vertex IDs; Write converts back to 1-based.
package edgelist
