package transport

import (
	"bytes"
	"errors"
	"testing"
)

func chunkOf(sessionID string, index, total int, payload []byte, meta map[string]any) Chunk {
	return Chunk{SessionID: sessionID, Index: index, Total: total, Bytes: payload, Metadata: meta}
}

func TestReassembler_SingleChunkCompletes(t *testing.T) {
	r := NewReassembler(nil)
	data, meta, complete, err := r.Deliver(chunkOf("s1", 0, 1, []byte("hello"), map[string]any{"w": 4}), 0)
	if err != nil {
		t.Fatalf("Deliver: %v", err)
	}
	if !complete {
		t.Fatalf("expected complete on single-chunk session")
	}
	if !bytes.Equal(data, []byte("hello")) {
		t.Fatalf("data = %q", data)
	}
	if meta["w"] != 4 {
		t.Fatalf("metadata not carried through: %+v", meta)
	}
}

func TestReassembler_MultiChunkCompletesInOrder(t *testing.T) {
	r := NewReassembler(nil)
	if _, _, complete, err := r.Deliver(chunkOf("s1", 0, 3, []byte("ab"), nil), 0); err != nil || complete {
		t.Fatalf("chunk 0: complete=%v err=%v", complete, err)
	}
	if _, _, complete, err := r.Deliver(chunkOf("s1", 2, 3, []byte("ef"), nil), 1); err != nil || complete {
		t.Fatalf("chunk 2: complete=%v err=%v", complete, err)
	}
	data, _, complete, err := r.Deliver(chunkOf("s1", 1, 3, []byte("cd"), nil), 2)
	if err != nil {
		t.Fatalf("chunk 1: %v", err)
	}
	if !complete {
		t.Fatalf("expected complete after third distinct chunk")
	}
	if !bytes.Equal(data, []byte("abcdef")) {
		t.Fatalf("data = %q, want reassembled in index order", data)
	}
}

func TestReassembler_DuplicateIndexRejected(t *testing.T) {
	r := NewReassembler(nil)
	if _, _, _, err := r.Deliver(chunkOf("s1", 0, 2, []byte("a"), nil), 0); err != nil {
		t.Fatalf("first deliver: %v", err)
	}
	_, _, _, err := r.Deliver(chunkOf("s1", 0, 2, []byte("a"), nil), 1)
	if !errors.Is(err, ErrDuplicateChunk) {
		t.Fatalf("want ErrDuplicateChunk, got %v", err)
	}
}

func TestReassembler_InvalidChunkRejected(t *testing.T) {
	r := NewReassembler(nil)
	_, _, _, err := r.Deliver(chunkOf("s1", 5, 2, []byte("a"), nil), 0)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("want ErrIndexOutOfRange, got %v", err)
	}
}

func TestReassembler_RebindWithinWindow(t *testing.T) {
	r := NewReassembler(nil)
	if _, _, _, err := r.Deliver(chunkOf("s1", 0, 2, []byte("a"), nil), 0); err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if err := r.Rebind("response_s1", 10); err != nil {
		t.Fatalf("Rebind: %v", err)
	}
	data, _, complete, err := r.Deliver(chunkOf("response_s1", 1, 2, []byte("b"), nil), 11)
	if err != nil {
		t.Fatalf("deliver after rebind: %v", err)
	}
	if !complete || !bytes.Equal(data, []byte("ab")) {
		t.Fatalf("data=%q complete=%v, want rebind-transferred session to finish", data, complete)
	}
}

func TestReassembler_RebindOutsideWindowFails(t *testing.T) {
	r := NewReassembler(nil)
	if _, _, _, err := r.Deliver(chunkOf("s1", 0, 2, []byte("a"), nil), 0); err != nil {
		t.Fatalf("deliver: %v", err)
	}
	err := r.Rebind("response_s1", RebindWindowSeconds+1)
	if !errors.Is(err, ErrNoRecentSession) {
		t.Fatalf("want ErrNoRecentSession, got %v", err)
	}
}

func TestReassembler_SweepTimesOutSilentSessions(t *testing.T) {
	r := NewReassembler(nil)
	if _, _, _, err := r.Deliver(chunkOf("s1", 0, 2, []byte("a"), nil), 0); err != nil {
		t.Fatalf("deliver: %v", err)
	}
	timedOut := r.Sweep(PingTimeoutSeconds + 1)
	if len(timedOut) != 1 || timedOut[0] != "s1" {
		t.Fatalf("Sweep = %v, want [s1]", timedOut)
	}
	if _, ok := r.State("s1"); ok {
		t.Fatalf("expected s1 to be removed after sweep")
	}
}

func TestReassembler_SweepLeavesFreshSessions(t *testing.T) {
	r := NewReassembler(nil)
	if _, _, _, err := r.Deliver(chunkOf("s1", 0, 2, []byte("a"), nil), 0); err != nil {
		t.Fatalf("deliver: %v", err)
	}
	timedOut := r.Sweep(PingTimeoutSeconds - 1)
	if len(timedOut) != 0 {
		t.Fatalf("Sweep = %v, want none timed out", timedOut)
	}
	state, ok := r.State("s1")
	if !ok || state != Reassembling {
		t.Fatalf("state = %v, ok = %v, want Reassembling", state, ok)
	}
}

func TestReassembler_StateUnknownSession(t *testing.T) {
	r := NewReassembler(nil)
	if _, ok := r.State("nope"); ok {
		t.Fatalf("expected unknown session to report ok=false")
	}
}
