package server

import "log"

// Logger mirrors the teacher's internal/x11.Logger interface exactly: a
// narrow, three-method logging seam rather than a structured logging
// dependency. No repo in the retrieval pack reaches for zap/zerolog/logrus
// for a component shaped like this one; see DESIGN.md for the standard-
// library justification.
type Logger interface {
	Errorf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Printf(format string, args ...interface{})
}

// StdLogger adapts the standard library's log package to Logger. It is the
// default used when a Config carries no Logger of its own.
type StdLogger struct{}

func (StdLogger) Errorf(format string, args ...interface{}) { log.Printf("ERROR: "+format, args...) }
func (StdLogger) Infof(format string, args ...interface{})  { log.Printf("INFO: "+format, args...) }
func (StdLogger) Printf(format string, args ...interface{}) { log.Printf(format, args...) }

// DiscardLogger drops every message; useful in tests that don't want
// server noise on stdout.
type DiscardLogger struct{}

func (DiscardLogger) Errorf(string, ...interface{}) {}
func (DiscardLogger) Infof(string, ...interface{})  {}
func (DiscardLogger) Printf(string, ...interface{}) {}

// QuietLogger keeps Errorf on the standard logger but drops Infof/Printf;
// the default for cmd/rxserver when -verbose is not set.
type QuietLogger struct{}

func (QuietLogger) Errorf(format string, args ...interface{}) { log.Printf("ERROR: "+format, args...) }
func (QuietLogger) Infof(string, ...interface{})              {}
func (QuietLogger) Printf(string, ...interface{})             {}
