package pqueue

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

// Sentinel errors returned by Queue operations.
var (
	// ErrIndexOutOfRange indicates an index outside 0..capacity-1.
	ErrIndexOutOfRange = errors.New("pqueue: index out of range")

	// ErrAlreadyQueued indicates an Insert for an index that is live in the
	// heap or was popped earlier.
	ErrAlreadyQueued = errors.New("pqueue: index already queued or removed")

	// ErrUnderflow indicates PopMin on an empty queue. It is a precondition
	// violation of the caller, never a consequence of input data.
	ErrUnderflow = errors.New("pqueue: pop from empty queue")
)

// Item is one heap element.
type Item[P any] struct {
	Index   int   // dense element ID
	Key     int64 // ordering key, smaller pops first
	Payload P     // caller data travelling with the key
}

// Queue is an indexed binary min-heap over Items.
type Queue[P any] struct {
	data     []Item[P] // heap-ordered elements
	slots    []int     // index → position in data, or capacity if absent
	seen     []bool    // index was inserted at some point
	capacity int
}

// New returns an empty Queue for indices 0..capacity-1.
// Panics if capacity < 0.
func New[P any](capacity int) *Queue[P] {
	if capacity < 0 {
		panic(fmt.Sprintf("pqueue: New(%d): negative capacity", capacity))
	}
	q := &Queue[P]{
		data:     make([]Item[P], 0, capacity),
		slots:    make([]int, capacity),
		seen:     make([]bool, capacity),
		capacity: capacity,
	}
	for i := range q.slots {
		q.slots[i] = capacity
	}

	return q
}

// Fill inserts every index that has never been queued with key core.Infinity
// and a zero payload, so that any later DecreaseKey finds a live slot.
// On a fresh queue this inserts 0..capacity-1 in ascending order.
func (q *Queue[P]) Fill() {
	var zero P
	for i := 0; i < q.capacity; i++ {
		if q.seen[i] {
			continue
		}
		_, _ = q.Insert(i, core.Infinity, zero) // cannot fail: i in range and unseen
	}
}

// Insert appends (idx, key, payload) and sifts it up.
// Returns the final heap position of idx.
func (q *Queue[P]) Insert(idx int, key int64, payload P) (int, error) {
	if idx < 0 || idx >= q.capacity {
		return 0, fmt.Errorf("Insert(%d): capacity=%d: %w", idx, q.capacity, ErrIndexOutOfRange)
	}
	if q.seen[idx] {
		return 0, fmt.Errorf("Insert(%d): %w", idx, ErrAlreadyQueued)
	}

	q.seen[idx] = true
	q.data = append(q.data, Item[P]{Index: idx, Key: key, Payload: payload})
	pos := len(q.data) - 1
	q.slots[idx] = pos

	return q.up(pos), nil
}

// DecreaseKey lowers the key of a live idx to key and replaces its payload.
//
// It is a no-op returning (idx, false) when idx is out of range, absent
// (never inserted or already popped), or when key is not strictly smaller than
// the current key. Otherwise it returns the new heap position and true.
func (q *Queue[P]) DecreaseKey(idx int, key int64, payload P) (int, bool) {
	if idx < 0 || idx >= q.capacity {
		return idx, false
	}
	pos := q.slots[idx]
	if pos >= q.capacity {
		return idx, false
	}
	if key >= q.data[pos].Key {
		return idx, false
	}

	q.data[pos].Key = key
	q.data[pos].Payload = payload

	return q.up(pos), true
}

// PopMin removes and returns the element with the smallest key.
// The popped index is marked removed and never re-enters the queue.
func (q *Queue[P]) PopMin() (Item[P], error) {
	n := len(q.data)
	if n == 0 {
		return Item[P]{}, ErrUnderflow
	}

	q.swap(0, n-1)
	top := q.data[n-1]
	q.data[n-1] = Item[P]{} // release payload
	q.data = q.data[:n-1]
	q.slots[top.Index] = q.capacity

	if len(q.data) > 0 {
		q.slots[q.data[0].Index] = 0
		q.down(0)
	}

	return top, nil
}

// Len returns the number of live elements.
func (q *Queue[P]) Len() int { return len(q.data) }

// Cap returns the index capacity the queue was created with.
func (q *Queue[P]) Cap() int { return q.capacity }

// Contains reports whether idx is live in the heap.
func (q *Queue[P]) Contains(idx int) bool {
	return idx >= 0 && idx < q.capacity && q.slots[idx] < q.capacity
}

// Key returns the current key of a live idx.
func (q *Queue[P]) Key(idx int) (int64, bool) {
	if !q.Contains(idx) {
		return 0, false
	}

	return q.data[q.slots[idx]].Key, true
}

// Peek returns the minimum element without removing it.
func (q *Queue[P]) Peek() (Item[P], bool) {
	if len(q.data) == 0 {
		return Item[P]{}, false
	}

	return q.data[0], true
}

// up moves the element at pos towards the root while its parent is strictly
// greater, and returns its final position.
func (q *Queue[P]) up(pos int) int {
	for pos > 0 {
		parent := (pos - 1) / 2
		if q.data[parent].Key <= q.data[pos].Key {
			break
		}
		q.swap(pos, parent)
		pos = parent
	}

	return pos
}

// down moves the element at pos towards the leaves while its smaller child is
// strictly smaller, and returns its final position.
func (q *Queue[P]) down(pos int) int {
	n := len(q.data)
	for {
		left := 2*pos + 1
		if left >= n {
			break
		}
		child := left
		if right := left + 1; right < n && q.data[right].Key < q.data[left].Key {
			child = right
		}
		if q.data[child].Key >= q.data[pos].Key {
			break
		}
		q.swap(pos, child)
		pos = child
	}

	return pos
}

// swap exchanges two heap positions and keeps the slot map in sync.
func (q *Queue[P]) swap(i, j int) {
	q.data[i], q.data[j] = q.data[j], q.data[i]
	q.slots[q.data[i].Index] = i
	q.slots[q.data[j].Index] = j
}
