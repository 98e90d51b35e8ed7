package game

// MaxMessages is how many log entries are kept; older entries are evicted
// first.
const MaxMessages = 5

// MessageLog is the bounded, ordered log of combat and session messages
// shown under the map.
type MessageLog struct {
	entries []string
}

// Push appends a message, evicting the oldest entry once the log is full.
func (l *MessageLog) Push(msg string) {
	l.entries = append(l.entries, msg)
	if len(l.entries) > MaxMessages {
		l.entries = l.entries[1:]
	}
}

// Messages returns the entries oldest first. The returned slice is a copy.
func (l *MessageLog) Messages() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries currently held.
func (l *MessageLog) Len() int {
	return len(l.entries)
}

// Clear drops all entries.
func (l *MessageLog) Clear() {
	l.entries = nil
}
