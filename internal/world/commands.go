package world

import "sync"

// Command is a deferred mutation of a World.
type Command interface {
	Apply(w *World)
}

// CommandFunc adapts a plain function to Command.
type CommandFunc func(w *World)

// Apply calls f(w).
func (f CommandFunc) Apply(w *World) { f(w) }

// Commands is a FIFO queue of deferred world mutations.
//
// Push is safe from any goroutine. Apply must be called by whoever owns the
// World; it drains the queue in push order, including commands pushed by
// commands that are being applied.
//
// A panicking command aborts Apply. Commands queued behind it stay queued.
type Commands struct {
	mu       sync.Mutex
	commands []Command
}

// NewCommands creates an empty queue.
func NewCommands() *Commands {
	return &Commands{
		commands: make([]Command, 0, 16),
	}
}

// Push appends c to the back of the queue.
func (q *Commands) Push(c Command) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.commands = append(q.commands, c)
}

// Len returns the number of queued commands.
func (q *Commands) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.commands)
}

// Apply drains the queue against w and returns how many commands ran.
func (q *Commands) Apply(w *World) int {
	n := 0
	for {
		c, ok := q.tryPop()
		if !ok {
			return n
		}
		c.Apply(w)
		n++
	}
}

func (q *Commands) tryPop() (Command, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.commands) == 0 {
		return nil, false
	}

	c := q.commands[0]
	// Nil the slot so the backing array does not pin applied commands.
	q.commands[0] = nil
	if len(q.commands) == 1 {
		q.commands = q.commands[:0]
	} else {
		q.commands = q.commands[1:]
	}
	return c, true
}
