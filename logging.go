package scoped

// Op labels for stack lifecycle events.
const (
	opBind    = "bind"
	opRelease = "release"
	opShield  = "shield"
	opRestore = "restore"
)

// StackLogEvent describes one stack operation for logging.
type StackLogEvent struct {
	Class     string
	Op        string
	Goroutine int64
	Depth     int
}

// StackLogger records stack operations on a class.
type StackLogger interface {
	LogStackOp(StackLogEvent)
}

// StackLoggerFunc adapts a function to StackLogger.
type StackLoggerFunc func(StackLogEvent)

// LogStackOp implements StackLogger.
func (f StackLoggerFunc) LogStackOp(event StackLogEvent) {
	if f != nil {
		f(event)
	}
}

type noopStackLogger struct{}

func (noopStackLogger) LogStackOp(StackLogEvent) {}
