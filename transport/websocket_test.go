package transport

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWebSocketTransport_RoundTrip(t *testing.T) {
	done := make(chan Chunk, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		wt, err := UpgradeWebSocketTransport(w, r)
		if err != nil {
			t.Errorf("UpgradeWebSocketTransport: %v", err)
			return
		}
		defer wt.Close()
		c, err := wt.ReadChunk()
		if err != nil {
			t.Errorf("ReadChunk: %v", err)
			return
		}
		done <- c
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	client, err := DialWebSocketTransport(wsURL)
	if err != nil {
		t.Fatalf("DialWebSocketTransport: %v", err)
	}
	defer client.Close()

	want := Chunk{SessionID: "s1", Index: 0, Total: 1, Bytes: []byte("payload"), Metadata: map[string]any{"k": "v"}}
	if err := client.WriteChunk(want); err != nil {
		t.Fatalf("WriteChunk: %v", err)
	}

	got := <-done
	if got.SessionID != want.SessionID || got.Index != want.Index || got.Total != want.Total {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if string(got.Bytes) != string(want.Bytes) {
		t.Fatalf("Bytes = %q, want %q", got.Bytes, want.Bytes)
	}
	if got.Metadata["k"] != "v" {
		t.Fatalf("Metadata = %+v", got.Metadata)
	}
}
