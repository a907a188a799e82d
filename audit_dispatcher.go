package goConsole

import (
	internalaudit "github.com/MrEthical07/goConsole/internal/audit"
)

// newAuditDispatcher builds the async relay the console emits through. A
// disabled config yields nil, and every emit path tolerates a nil dispatcher.
func newAuditDispatcher(cfg AuditConfig, sink AuditSink) *internalaudit.Dispatcher {
	return internalaudit.NewDispatcher(internalaudit.Config{
		Enabled:    cfg.Enabled,
		BufferSize: cfg.BufferSize,
		DropIfFull: cfg.DropIfFull,
	}, sink)
}
