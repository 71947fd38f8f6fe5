package transport

import (
	"fmt"
	"sync"
)

// session is the Reassembler's per-session reassembly state.
type session struct {
	total       int
	received    map[int][]byte
	metadata    map[string]any
	state       SessionState
	lastFrameAt float64
	startedAt   float64
}

func (s *session) isComplete() bool {
	return len(s.received) == s.total
}

// Reassembler holds chunked-transfer state keyed by session ID. It
// has no goroutines of its own: every transition happens inside
// Deliver or Sweep, both called synchronously by the host each time a
// frame (or a tick) arrives — advancing state only on externally
// delivered input, never on a background timer.
type Reassembler struct {
	mu       sync.Mutex
	sessions map[string]*session
	metrics  *Metrics
}

// NewReassembler creates an empty Reassembler. metrics may be nil to
// disable instrumentation.
func NewReassembler(metrics *Metrics) *Reassembler {
	return &Reassembler{
		sessions: make(map[string]*session),
		metrics:  metrics,
	}
}

// Deliver feeds one chunk frame into the reassembler, returning the
// fully reassembled bytes and metadata once every index in [0,total)
// has arrived, or (nil, nil, false, nil) if the session is still
// incomplete. now is the host's logical clock in seconds, used for
// the ping-timeout and rebind-window checks.
func (r *Reassembler) Deliver(c Chunk, now float64) (data []byte, metadata map[string]any, complete bool, err error) {
	if err := c.Validate(); err != nil {
		return nil, nil, false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions[c.SessionID]
	if !ok {
		sess = &session{
			total:     c.Total,
			received:  make(map[int][]byte),
			state:     Reassembling,
			startedAt: now,
		}
		r.sessions[c.SessionID] = sess
		if r.metrics != nil {
			r.metrics.SessionsStarted.Inc()
		}
	}

	if _, dup := sess.received[c.Index]; dup {
		return nil, nil, false, fmt.Errorf("%w: session %s index %d", ErrDuplicateChunk, c.SessionID, c.Index)
	}

	sess.received[c.Index] = c.Bytes
	sess.lastFrameAt = now
	if c.Index == 0 && c.Metadata != nil {
		sess.metadata = c.Metadata
	}

	if r.metrics != nil {
		r.metrics.ChunksReceived.Inc()
	}

	if !sess.isComplete() {
		return nil, nil, false, nil
	}

	sess.state = Complete
	out := make([]byte, 0, c.Total*MaxChunkSize)
	for i := 0; i < sess.total; i++ {
		out = append(out, sess.received[i]...)
	}
	delete(r.sessions, c.SessionID)

	return out, sess.metadata, true, nil
}

// Rebind binds a new response_-prefixed session ID to the most
// recently started session younger than RebindWindowSeconds,
// transferring its reassembly state to the new ID.
func (r *Reassembler) Rebind(newSessionID string, now float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var youngestID string
	var youngestAge = -1.0

	for id, s := range r.sessions {
		age := now - s.startedAt
		if age < 0 || age > RebindWindowSeconds {
			continue
		}
		if youngestAge < 0 || age < youngestAge {
			youngestAge = age
			youngestID = id
		}
	}

	if youngestID == "" {
		return ErrNoRecentSession
	}

	r.sessions[newSessionID] = r.sessions[youngestID]
	delete(r.sessions, youngestID)
	return nil
}

// Sweep marks every session that has gone silent longer than
// PingTimeoutSeconds as Failed and removes it, returning their IDs.
// Call once per host tick; the reassembler never times sessions out
// on its own.
func (r *Reassembler) Sweep(now float64) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var timedOut []string
	for id, s := range r.sessions {
		if now-s.lastFrameAt > PingTimeoutSeconds {
			s.state = Failed
			timedOut = append(timedOut, id)
			delete(r.sessions, id)
			if r.metrics != nil {
				r.metrics.SessionsFailed.Inc()
			}
		}
	}
	return timedOut
}

// State reports the current state of a session, and whether it is
// known to the reassembler at all.
func (r *Reassembler) State(sessionID string) (SessionState, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[sessionID]
	if !ok {
		return Failed, false
	}
	return s.state, true
}
