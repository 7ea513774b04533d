package vm

import "github.com/eth2030/txproc/core/types"

// Trace is the recorded output of a traced transaction: the gas it spent
// and an opaque payload. TransactionExecutor sets Gas to the gas spent and
// Payload to the VM's return data, and hands the whole value to
// Tracer.SaveTrace.
type Trace struct {
	Gas     uint64
	Payload any
}

// Tracer is the optional execution-tracing collaborator. When tracing is
// disabled (the common case), IsTracingEnabled returns false and the
// executor skips SaveTrace entirely -- tracing is never on the hot path
// unless a caller asked for it.
type Tracer interface {
	IsTracingEnabled() bool
	SaveTrace(txHash types.Hash, trace Trace)
}

// NoopTracer is a Tracer that never records anything. It is the default
// collaborator supplied when no caller-provided tracer is configured.
type NoopTracer struct{}

// IsTracingEnabled always returns false for NoopTracer.
func (NoopTracer) IsTracingEnabled() bool { return false }

// SaveTrace does nothing.
func (NoopTracer) SaveTrace(types.Hash, Trace) {}

// MemoryTracer is a reference Tracer that keeps every trace it is given, for
// use in tests.
type MemoryTracer struct {
	traces map[types.Hash]Trace
}

// NewMemoryTracer returns a MemoryTracer with tracing enabled.
func NewMemoryTracer() *MemoryTracer {
	return &MemoryTracer{traces: make(map[types.Hash]Trace)}
}

// IsTracingEnabled always returns true for MemoryTracer.
func (t *MemoryTracer) IsTracingEnabled() bool { return true }

// SaveTrace records trace under txHash.
func (t *MemoryTracer) SaveTrace(txHash types.Hash, trace Trace) {
	t.traces[txHash] = trace
}

// Trace returns the recorded trace for txHash, if any.
func (t *MemoryTracer) Trace(txHash types.Hash) (Trace, bool) {
	tr, ok := t.traces[txHash]
	return tr, ok
}
