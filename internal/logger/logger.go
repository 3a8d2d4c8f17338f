// Package logger is the logging interface shared by eqviz components.
// Debug output is only produced when EQVIZ_DEBUG is set.
package logger

import (
	"fmt"
	"log"
	"os"
)

// DebugEnv enables debug messages when set to any non-empty value.
const DebugEnv = "EQVIZ_DEBUG"

// Logger takes printf-style messages at four levels.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type stdLogger struct {
	prefix string
}

// New returns a logger writing through the standard log package. The prefix
// is prepended to every message, e.g. "[engine]".
func New(prefix string) Logger {
	return &stdLogger{prefix: prefix}
}

func (l *stdLogger) Debug(format string, args ...any) {
	if os.Getenv(DebugEnv) != "" {
		l.printf("DEBUG: ", format, args)
	}
}

func (l *stdLogger) Info(format string, args ...any)  { l.printf("", format, args) }
func (l *stdLogger) Warn(format string, args ...any)  { l.printf("WARN: ", format, args) }
func (l *stdLogger) Error(format string, args ...any) { l.printf("ERROR: ", format, args) }

func (l *stdLogger) printf(level, format string, args []any) {
	msg := fmt.Sprintf(format, args...)
	if l.prefix != "" {
		log.Printf("%s %s%s", l.prefix, level, msg)
		return
	}
	log.Printf("%s%s", level, msg)
}

type noopLogger struct{}

// Noop discards everything.
func Noop() Logger { return noopLogger{} }

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Message is one captured log line.
type Message struct {
	Level string
	Text  string
}

// Buffer records messages for assertions in tests.
type Buffer struct {
	Messages []Message
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) Debug(format string, args ...any) { b.add("debug", format, args) }
func (b *Buffer) Info(format string, args ...any)  { b.add("info", format, args) }
func (b *Buffer) Warn(format string, args ...any)  { b.add("warn", format, args) }
func (b *Buffer) Error(format string, args ...any) { b.add("error", format, args) }

func (b *Buffer) add(level, format string, args []any) {
	b.Messages = append(b.Messages, Message{Level: level, Text: fmt.Sprintf(format, args...)})
}

// Count returns how many messages were logged at level.
func (b *Buffer) Count(level string) int {
	n := 0
	for _, m := range b.Messages {
		if m.Level == level {
			n++
		}
	}
	return n
}
