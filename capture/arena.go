package capture

import (
	"context"
	"sync"

	"github.com/gogpu/ldi/gpucore"
)

// TextureHandle is a texture owned by an Arena: the raw GPU texture ID
// plus the arena generation it was created under. A handle whose
// Generation no longer matches its Arena's current generation is
// stale — the arena it was allocated from has since been torn down
// and reset, and the ID may have been reused by a later capture.
type TextureHandle struct {
	ID         gpucore.TextureID
	Generation uint64
}

// Arena owns the lifetime of a single parsed Capture's GPU textures.
// It is the only path by which calling code receives a TextureHandle;
// raw gpucore.TextureID values never escape a Resource Manager.
//
// Generation increments every time the arena is reset, so a
// TextureHandle retained past a Reset is detectably stale rather than
// silently aliasing a different capture's texture.
type Arena struct {
	mu sync.Mutex

	generation uint64
	textures   map[gpucore.TextureID]struct{}

	cancel context.CancelFunc
}

// NewArena creates an empty arena at generation 1.
func NewArena() *Arena {
	return &Arena{
		generation: 1,
		textures:   make(map[gpucore.TextureID]struct{}),
	}
}

// Track registers id as owned by the arena's current generation and
// returns a handle for it.
func (a *Arena) Track(id gpucore.TextureID) TextureHandle {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.textures[id] = struct{}{}
	return TextureHandle{ID: id, Generation: a.generation}
}

// Valid reports whether h was allocated under the arena's current
// generation.
func (a *Arena) Valid(h TextureHandle) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return h.Generation == a.generation
}

// DecodeContext returns a context that Cancel will cancel, for
// decode/build tasks the arena's owner starts. Each call replaces the
// previously returned context's cancel function; only the most recent
// decode batch can be cancelled.
func (a *Arena) DecodeContext(parent context.Context) context.Context {
	a.mu.Lock()
	defer a.mu.Unlock()
	ctx, cancel := context.WithCancel(parent)
	a.cancel = cancel
	return ctx
}

// Cancel stops any outstanding decode tasks started via DecodeContext.
// Their texture outputs, if any land after cancellation, must not be
// tracked by a later call to Track.
func (a *Arena) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancel != nil {
		a.cancel()
	}
}

// Release frees release(id) for every texture the arena owns, in
// deterministic (ascending ID) order, then advances the generation so
// outstanding handles become stale. Callers invoke this when the
// capture owning the arena is dropped.
func (a *Arena) Release(release func(gpucore.TextureID)) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ids := make([]gpucore.TextureID, 0, len(a.textures))
	for id := range a.textures {
		ids = append(ids, id)
	}
	sortTextureIDs(ids)

	for _, id := range ids {
		release(id)
		delete(a.textures, id)
	}
	a.generation++
}

// Generation reports the arena's current generation counter.
func (a *Arena) Generation() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.generation
}

func sortTextureIDs(ids []gpucore.TextureID) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}
