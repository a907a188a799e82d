package goConsole

import (
	"io"

	internalaudit "github.com/MrEthical07/goConsole/internal/audit"
)

// AuditEvent defines a public type used by goConsole APIs.
//
// AuditEvent instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditEvent = internalaudit.Event

// AuditSink defines a public type used by goConsole APIs.
type AuditSink = internalaudit.Sink

// NoOpSink drops audit events.
type NoOpSink = internalaudit.NoOpSink

// ChannelSink writes audit events into a buffered channel.
type ChannelSink = internalaudit.ChannelSink

// NewChannelSink describes the newchannelsink operation and its observable behavior.
func NewChannelSink(buffer int) *ChannelSink {
	return internalaudit.NewChannelSink(buffer)
}

// JSONWriterSink writes one JSON object per line.
type JSONWriterSink = internalaudit.JSONWriterSink

// NewJSONWriterSink describes the newjsonwritersink operation and its observable behavior.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalaudit.NewJSONWriterSink(w)
}
