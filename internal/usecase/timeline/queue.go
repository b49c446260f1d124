package timeline

// CommandType names a transport command queued for a remote surface.
type CommandType string

const (
	CommandPlay    CommandType = "play"
	CommandPause   CommandType = "pause"
	CommandSeek    CommandType = "seek"
	CommandSetRate CommandType = "set_rate"
)

// Command is one transport instruction for the client-side surface.
// Value carries the seek target or rate multiplier where applicable.
type Command struct {
	Type  CommandType `json:"type"`
	Value float64     `json:"value,omitempty"`
}

// CommandQueue is a PlaybackSurface for surfaces that live on the other
// side of an HTTP boundary: commands accumulate in order and are drained
// into the next response for the client to apply to its video element.
type CommandQueue struct {
	commands []Command
}

// NewCommandQueue creates an empty queue.
func NewCommandQueue() *CommandQueue {
	return &CommandQueue{}
}

func (q *CommandQueue) Play() {
	q.commands = append(q.commands, Command{Type: CommandPlay})
}

func (q *CommandQueue) Pause() {
	q.commands = append(q.commands, Command{Type: CommandPause})
}

func (q *CommandQueue) Seek(timeSeconds float64) {
	q.commands = append(q.commands, Command{Type: CommandSeek, Value: timeSeconds})
}

func (q *CommandQueue) SetRate(multiplier float64) {
	q.commands = append(q.commands, Command{Type: CommandSetRate, Value: multiplier})
}

// Drain returns the pending commands in issue order and empties the queue.
func (q *CommandQueue) Drain() []Command {
	pending := q.commands
	q.commands = nil
	if pending == nil {
		pending = []Command{}
	}
	return pending
}
