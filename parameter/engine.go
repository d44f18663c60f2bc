package parameter

import "time"

// Tick loop timing
const (
	// TickInterval is the fixed frame period of the tick loop
	TickInterval = 100 * time.Millisecond

	// PollTimeout bounds how long a tick waits for one input command
	PollTimeout = 10 * time.Millisecond

	// EventQueueSize is the buffered capacity between the terminal poller and the tick loop
	EventQueueSize = 64
)
