package engine

// FrameID identifies a pending frame request, zero is never issued
type FrameID uint64

// Scheduler is the "next frame" primitive: callbacks run once on the next frame boundary
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

type frameRequest struct {
	id FrameID
	fn func()
}

// FrameQueue collects frame requests until the loop fires them
// Not safe for concurrent use; only the loop goroutine touches it
type FrameQueue struct {
	pending []frameRequest
	nextID  FrameID
	fired   uint64
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.nextID++
	q.pending = append(q.pending, frameRequest{id: q.nextID, fn: fn})
	return q.nextID
}

// CancelFrame drops a pending request, unknown or already fired ids are ignored
func (q *FrameQueue) CancelFrame(id FrameID) {
	for i, r := range q.pending {
		if r.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Fire runs every request pending at call time and returns how many ran
// Requests made from inside a callback wait for the next Fire
func (q *FrameQueue) Fire() int {
	batch := q.pending
	q.pending = nil
	for _, r := range batch {
		r.fn()
	}
	q.fired += uint64(len(batch))
	return len(batch)
}

func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Fired returns the total number of callbacks run
func (q *FrameQueue) Fired() uint64 {
	return q.fired
}
