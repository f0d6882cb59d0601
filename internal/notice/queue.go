package notice

import "time"

// DefaultTTL matches how long a toast stays on screen.
const DefaultTTL = 3 * time.Second

// Queue holds the notices currently visible. It is owned by the UI loop and
// is not safe for concurrent use.
type Queue struct {
	ttl     time.Duration
	max     int
	visible []Notice
}

func NewQueue(ttl time.Duration, max int) *Queue {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if max <= 0 {
		max = 3
	}
	return &Queue{ttl: ttl, max: max}
}

// Push adds a notice, evicting the oldest when the queue is full.
func (q *Queue) Push(n Notice) {
	if n.At.IsZero() {
		n.At = time.Now()
	}
	q.visible = append(q.visible, n)
	if len(q.visible) > q.max {
		q.visible = q.visible[len(q.visible)-q.max:]
	}
}

// Notify lets a Queue be used directly as a Notifier.
func (q *Queue) Notify(n Notice) { q.Push(n) }

// Prune drops notices older than the TTL and reports whether anything changed.
func (q *Queue) Prune(now time.Time) bool {
	kept := q.visible[:0]
	for _, n := range q.visible {
		if now.Sub(n.At) < q.ttl {
			kept = append(kept, n)
		}
	}
	changed := len(kept) != len(q.visible)
	q.visible = kept
	return changed
}

func (q *Queue) Visible() []Notice {
	return q.visible
}

func (q *Queue) TTL() time.Duration {
	return q.ttl
}
