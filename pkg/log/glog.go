package log

import "github.com/golang/glog"

// glogLogger forwards to github.com/golang/glog, debug messages are
// only emitted at -v=1 or above.
type glogLogger struct{}

// NewGlog returns a Logger backed by glog. The glog flags must be
// parsed by the caller.
func NewGlog() Logger {
	return glogLogger{}
}

func (glogLogger) Infof(format string, args ...interface{}) {
	glog.Infof(format, args...)
}

func (glogLogger) Errorf(format string, args ...interface{}) {
	glog.Errorf(format, args...)
}

func (glogLogger) Debugf(format string, args ...interface{}) {
	glog.V(1).Infof(format, args...)
}

func (glogLogger) Fatal(str string) {
	glog.Fatal(str)
}
