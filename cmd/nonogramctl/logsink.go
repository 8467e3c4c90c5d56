// File: logsink.go
// Role: minimal logr.LogSink over the stdlib log.Logger (SPEC_FULL.md
// §4.x Logging: the logr facade is grounded in the pack, the sink it
// wraps is stdlib since no example repo carries a structured backend).

package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-logr/logr"
)

// stdLogSink adapts *log.Logger to logr.LogSink. name/values accumulate
// through WithName/WithValues and are prefixed/appended to every record.
type stdLogSink struct {
	out    *log.Logger
	name   string
	values []interface{}
}

// newStdLogSink wraps out as a logr.LogSink, ready to pass to logr.New.
func newStdLogSink(out *log.Logger) *stdLogSink {
	return &stdLogSink{out: out}
}

func (s *stdLogSink) Init(info logr.RuntimeInfo) {}

func (s *stdLogSink) Enabled(level int) bool { return true }

func (s *stdLogSink) Info(level int, msg string, keysAndValues ...interface{}) {
	s.out.Print(s.format("INFO", msg, keysAndValues))
}

func (s *stdLogSink) Error(err error, msg string, keysAndValues ...interface{}) {
	kv := append([]interface{}{"error", err}, keysAndValues...)
	s.out.Print(s.format("ERROR", msg, kv))
}

func (s *stdLogSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	next := &stdLogSink{out: s.out, name: s.name}
	next.values = append(append([]interface{}{}, s.values...), keysAndValues...)
	return next
}

func (s *stdLogSink) WithName(name string) logr.LogSink {
	next := &stdLogSink{out: s.out, values: s.values}
	if s.name == "" {
		next.name = name
	} else {
		next.name = s.name + "." + name
	}
	return next
}

func (s *stdLogSink) format(level, msg string, kv []interface{}) string {
	var sb strings.Builder
	sb.WriteString(level)
	sb.WriteByte(' ')
	if s.name != "" {
		sb.WriteByte('[')
		sb.WriteString(s.name)
		sb.WriteString("] ")
	}
	sb.WriteString(msg)
	all := append(append([]interface{}{}, s.values...), kv...)
	for i := 0; i+1 < len(all); i += 2 {
		fmt.Fprintf(&sb, " %v=%v", all[i], all[i+1])
	}
	return sb.String()
}

var _ logr.LogSink = (*stdLogSink)(nil)
