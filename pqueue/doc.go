// Package pqueue implements an indexed, updatable binary min-heap.
//
// Overview:
//
//   - Elements are identified by a dense integer index in 0..capacity-1
//     (a vertex ID in the shortest-path algorithms of this module).
//   - Each element carries an int64 ordering key and a generic payload,
//     typically the predecessor edge that produced the key.
//   - A dense slot map gives O(1) lookup from index to heap position, which
//     makes DecreaseKey O(log n) without the "lazy duplicate" pattern.
//
// Slot map states:
//
//	slots[i] <  capacity  – index i is live at heap position slots[i].
//	slots[i] == capacity  – index i is absent: never inserted, or already popped.
//
// Once popped, an index never re-enters the queue: DecreaseKey ignores it and
// Insert rejects it with ErrAlreadyQueued. This is what lets Dijkstra treat a
// popped vertex as finalized.
//
// Heap layout and tie-breaking:
//
//   - 0-indexed complete binary tree: children of i are 2i+1 and 2i+2,
//     the parent of i is (i-1)/2.
//   - Sift-up and sift-down use strictly-less comparisons only, so equal keys
//     never swap. Sift-down prefers the left child unless the right one is
//     strictly smaller.
//
// Complexity:
//
//	New/Fill   O(capacity)
//	Insert     O(log n)
//	DecreaseKey O(log n)
//	PopMin     O(log n)
//	Len/Contains/Key/Peek O(1)
//
// Errors:
//
//	ErrIndexOutOfRange – index outside 0..capacity-1.
//	ErrAlreadyQueued   – Insert of an index that is live or already popped.
//	ErrUnderflow       – PopMin on an empty queue (a caller bug).
//
// Thread safety: a Queue is owned by one shortest-path run and is not safe
// for concurrent use.
package pqueue
