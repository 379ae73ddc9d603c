// Package message holds the player-facing message log.
package message

import "strings"

// Queue is a FIFO of player-facing messages. Read drains it, so each
// message is delivered at most once.
type Queue struct {
	msgs []string
}

// Notify appends msg. Multi-line messages are split into one entry per line.
func (q *Queue) Notify(msg string) {
	for _, line := range strings.Split(strings.TrimRight(msg, "\n"), "\n") {
		q.msgs = append(q.msgs, line)
	}
}

// Read returns every pending message in arrival order and empties the queue.
func (q *Queue) Read() []string {
	out := q.msgs
	q.msgs = nil
	return out
}

// Len returns the number of pending messages.
func (q *Queue) Len() int { return len(q.msgs) }
