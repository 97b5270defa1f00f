package log

// null discards everything; used by tests and by components that don't
// want the default logger's overhead.
type null struct{}

// NewNull returns a Logger that discards all messages.
func NewNull() Logger { return null{} }

func (null) Infof(string, ...interface{})  {}
func (null) Warnf(string, ...interface{})  {}
func (null) Errorf(string, ...interface{}) {}
func (null) Debugf(string, ...interface{}) {}
