package log

// nullLogger is a logger that does nothing. It is the default for a
// cartridge loaded without WithLogger, so library use stays silent.
type nullLogger struct{}

func (nullLogger) Fatal(string)                  {}
func (nullLogger) Infof(string, ...interface{})  {}
func (nullLogger) Errorf(string, ...interface{}) {}
func (nullLogger) Debugf(string, ...interface{}) {}

// NewNullLogger returns a logger that does nothing.
func NewNullLogger() Logger {
	return nullLogger{}
}
