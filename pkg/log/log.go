package log

import (
	"fmt"
	"io"
	"os"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Fatal(str string)
}

type logger struct {
	w io.Writer
}

// New returns a Logger writing to stdout.
func New() Logger {
	return &logger{w: os.Stdout}
}

// NewWriter returns a Logger writing to w.
func NewWriter(w io.Writer) Logger {
	return &logger{w: w}
}

func (l *logger) Infof(format string, args ...interface{}) {
	fmt.Fprintf(l.w, "[INFO]\t"+format+"\n", args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(l.w, "[ERROR]\t"+format+"\n", args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	fmt.Fprintf(l.w, "[DEBUG]\t"+format+"\n", args...)
}

func (l *logger) Fatal(str string) {
	fmt.Fprintf(l.w, "[FATAL]\t%s\n", str)
	os.Exit(1)
}
