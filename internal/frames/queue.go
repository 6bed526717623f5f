// Package frames provides the frame callback queue shared by the hosts.
package frames

import (
	"slices"

	"github.com/vitapredict/heart"
)

type request struct {
	id heart.FrameID
	fn func()
}

// Queue is an ordered list of pending frame callbacks. The zero value is
// ready to use. Queue is NOT safe for concurrent use.
type Queue struct {
	next    heart.FrameID
	pending []request
}

// Request appends fn and returns its id. Ids start at 1.
func (q *Queue) Request(fn func()) heart.FrameID {
	q.next++
	q.pending = append(q.pending, request{id: q.next, fn: fn})
	return q.next
}

// Cancel drops a pending callback. Unknown ids are ignored.
func (q *Queue) Cancel(id heart.FrameID) {
	q.pending = slices.DeleteFunc(q.pending, func(r request) bool { return r.id == id })
}

// Len returns the number of pending callbacks.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Run calls the callbacks pending at the start of the call, in request
// order, and returns how many ran. Callbacks requested meanwhile wait for
// the next Run.
func (q *Queue) Run() int {
	due := q.pending
	q.pending = nil
	for _, r := range due {
		r.fn()
	}
	return len(due)
}
