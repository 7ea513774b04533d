package vm

import (
	"testing"

	"github.com/eth2030/txproc/core/types"
)

func TestNoopTracerRecordsNothing(t *testing.T) {
	tracer := NoopTracer{}
	if tracer.IsTracingEnabled() {
		t.Fatal("NoopTracer must report tracing disabled")
	}
	tracer.SaveTrace(types.Hash{}, Trace{Gas: 1}) // must not panic
}

func TestMemoryTracerRecordsByHash(t *testing.T) {
	tracer := NewMemoryTracer()
	if !tracer.IsTracingEnabled() {
		t.Fatal("MemoryTracer must report tracing enabled")
	}

	hash := types.HexToHash("0x01")
	tracer.SaveTrace(hash, Trace{Gas: 21000})

	got, ok := tracer.Trace(hash)
	if !ok {
		t.Fatal("expected a recorded trace for hash")
	}
	if got.Gas != 21000 {
		t.Fatalf("Gas = %d, want 21000", got.Gas)
	}

	if _, ok := tracer.Trace(types.HexToHash("0x02")); ok {
		t.Fatal("should not find a trace for an unrecorded hash")
	}
}
