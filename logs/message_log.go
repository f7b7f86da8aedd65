// Package logs holds the bounded message log that generation progress is
// written to.
package logs

import "fmt"

// DefaultMaxMessages is the capacity of a log built by NewMessageLog
const DefaultMaxMessages = 100

// MessageLog stores the most recent messages, oldest first
type MessageLog struct {
	Messages    []string
	MaxMessages int

	tee func(string)
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Messages:    []string{},
		MaxMessages: DefaultMaxMessages,
	}
}

// Tee forwards every message added from now on to fn as well
func (ml *MessageLog) Tee(fn func(string)) {
	ml.tee = fn
}

// Add adds a message to the log
func (ml *MessageLog) Add(message string) {
	ml.Messages = append(ml.Messages, message)

	// Truncate if we have too many messages
	if ml.MaxMessages > 0 && len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}

	if ml.tee != nil {
		ml.tee(message)
	}
}

// Addf formats and adds a message
func (ml *MessageLog) Addf(format string, args ...interface{}) {
	ml.Add(fmt.Sprintf(format, args...))
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []string {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]string, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Len returns the number of stored messages
func (ml *MessageLog) Len() int {
	return len(ml.Messages)
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []string{}
}
