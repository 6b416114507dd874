package logger

import (
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// TestLogger is a logger implementation for testing that captures all
// log messages instead of writing them anywhere.
type TestLogger struct {
	mu       sync.Mutex
	messages []LogMessage
	zerolog  *zerolog.Logger
}

// LogMessage represents a captured log message
type LogMessage struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

// NewTestLogger creates a new test logger
func NewTestLogger() *TestLogger {
	nop := zerolog.Nop()
	return &TestLogger{
		messages: make([]LogMessage, 0),
		zerolog:  &nop,
	}
}

func (l *TestLogger) log(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, LogMessage{Level: level, Message: msg, Fields: fields})
}

func (l *TestLogger) Debug(msg string) { l.log("DEBUG", msg, nil) }
func (l *TestLogger) Info(msg string)  { l.log("INFO", msg, nil) }
func (l *TestLogger) Warn(msg string)  { l.log("WARN", msg, nil) }
func (l *TestLogger) Error(msg string) { l.log("ERROR", msg, nil) }

func (l *TestLogger) DebugWithFields(msg string, fields map[string]interface{}) {
	l.log("DEBUG", msg, fields)
}

func (l *TestLogger) InfoWithFields(msg string, fields map[string]interface{}) {
	l.log("INFO", msg, fields)
}

func (l *TestLogger) WarnWithFields(msg string, fields map[string]interface{}) {
	l.log("WARN", msg, fields)
}

func (l *TestLogger) ErrorWithFields(msg string, fields map[string]interface{}) {
	l.log("ERROR", msg, fields)
}

func (l *TestLogger) WithField(key string, value interface{}) Logger {
	return l.WithFields(map[string]interface{}{key: value})
}

func (l *TestLogger) WithFields(fields map[string]interface{}) Logger {
	return &testLoggerContext{parent: l, fields: fields}
}

func (l *TestLogger) WithError(err error) Logger {
	if err == nil {
		return l
	}
	return l.WithField("error", err.Error())
}

func (l *TestLogger) GetZerolog() *zerolog.Logger {
	return l.zerolog
}

// Messages returns a copy of all captured messages
func (l *TestLogger) Messages() []LogMessage {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]LogMessage, len(l.messages))
	copy(out, l.messages)
	return out
}

// HasMessage checks whether any captured message contains the substring
func (l *TestLogger) HasMessage(substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.messages {
		if strings.Contains(m.Message, substr) {
			return true
		}
	}
	return false
}

// Reset clears all captured messages
func (l *TestLogger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = l.messages[:0]
}

// testLoggerContext carries fields added with WithField/WithFields
type testLoggerContext struct {
	parent *TestLogger
	fields map[string]interface{}
}

func (c *testLoggerContext) merged(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(c.fields)+len(fields))
	for k, v := range c.fields {
		out[k] = v
	}
	for k, v := range fields {
		out[k] = v
	}
	return out
}

func (c *testLoggerContext) Debug(msg string) { c.parent.log("DEBUG", msg, c.fields) }
func (c *testLoggerContext) Info(msg string)  { c.parent.log("INFO", msg, c.fields) }
func (c *testLoggerContext) Warn(msg string)  { c.parent.log("WARN", msg, c.fields) }
func (c *testLoggerContext) Error(msg string) { c.parent.log("ERROR", msg, c.fields) }

func (c *testLoggerContext) DebugWithFields(msg string, fields map[string]interface{}) {
	c.parent.log("DEBUG", msg, c.merged(fields))
}

func (c *testLoggerContext) InfoWithFields(msg string, fields map[string]interface{}) {
	c.parent.log("INFO", msg, c.merged(fields))
}

func (c *testLoggerContext) WarnWithFields(msg string, fields map[string]interface{}) {
	c.parent.log("WARN", msg, c.merged(fields))
}

func (c *testLoggerContext) ErrorWithFields(msg string, fields map[string]interface{}) {
	c.parent.log("ERROR", msg, c.merged(fields))
}

func (c *testLoggerContext) WithField(key string, value interface{}) Logger {
	return c.WithFields(map[string]interface{}{key: value})
}

func (c *testLoggerContext) WithFields(fields map[string]interface{}) Logger {
	return &testLoggerContext{parent: c.parent, fields: c.merged(fields)}
}

func (c *testLoggerContext) WithError(err error) Logger {
	if err == nil {
		return c
	}
	return c.WithField("error", err.Error())
}

func (c *testLoggerContext) GetZerolog() *zerolog.Logger {
	return c.parent.zerolog
}
