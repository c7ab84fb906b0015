// Package intern implements a process-wide, content-addressed string pool.
//
// Every distinct byte sequence interned gets exactly one Handle; two handles
// compare equal as values iff the sequences they name are byte-identical.
// Lookups and mutations are guarded by a single mutex so that several
// compilations may intern concurrently (see the concurrency model in
// SPEC_FULL.md §1) without corrupting bucket chains.
package intern

import (
	"errors"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// ErrOutOfMemory is returned by Intern when a new entry cannot be allocated.
// The pool never returns it itself (Go allocation failure is fatal to the
// process), but it is kept as a named sentinel so callers that wrap a
// resource-constrained allocator can report it through the same contract the
// spec requires.
var ErrOutOfMemory = errors.New("intern: out of memory")

// ErrDoubleInit is returned by Init when the pool has already been
// initialized.
var ErrDoubleInit = errors.New("intern: pool already initialized")

// ErrNotInitialized is returned by pool operations performed before Init.
var ErrNotInitialized = errors.New("intern: pool not initialized")

// Handle is an opaque 32-bit reference to an interned byte sequence.
// The zero Handle is never produced by Intern and may be used by callers as
// an "absent" sentinel.
type Handle uint32

type entry struct {
	bytes    []byte
	refCount int
	handle   Handle
}

// Pool is a content-addressed dictionary mapping byte sequences to stable
// handles. The zero value is not usable; construct one with New, or use the
// package-level singleton via Init/Global.
type Pool struct {
	mu       sync.Mutex
	buckets  [][]*entry
	byHandle []*entry // index 0 unused so the zero Handle stays invalid
}

// New constructs an empty pool with the given initial bucket count. bucketCount
// is rounded up to the pool's minimum if too small.
func New(bucketCount int) *Pool {
	if bucketCount < 16 {
		bucketCount = 16
	}
	return &Pool{
		buckets:  make([][]*entry, bucketCount),
		byHandle: make([]*entry, 1, 256),
	}
}

var (
	globalMu   sync.Mutex
	globalPool *Pool
)

// Init creates the process-wide singleton pool. It must be called exactly
// once before any token is produced; calling it twice returns ErrDoubleInit
// rather than panicking, per the spec's "status codes, not asserted"
// requirement.
func Init() error {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalPool != nil {
		return ErrDoubleInit
	}
	globalPool = New(1024)
	return nil
}

// Teardown releases the process-wide singleton, allowing a later Init to
// recreate it. Intended for test isolation.
func Teardown() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalPool = nil
}

// Global returns the process-wide singleton pool, or ErrNotInitialized if
// Init has not yet been called.
func Global() (*Pool, error) {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalPool == nil {
		return nil, ErrNotInitialized
	}
	return globalPool, nil
}

func (p *Pool) bucketFor(b []byte) int {
	h := xxhash.Sum64(b)
	return int(h % uint64(len(p.buckets)))
}

// Intern returns the unique handle for seq, creating an entry (with a refcount
// of 1) on first call for that exact sequence. Subsequent calls for the same
// bytes return the same handle and bump its refcount.
func (p *Pool) Intern(seq []byte) (Handle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	idx := p.bucketFor(seq)
	for _, e := range p.buckets[idx] {
		if bytesEqual(e.bytes, seq) {
			e.refCount++
			return e.handle, nil
		}
	}

	owned := make([]byte, len(seq))
	copy(owned, seq)
	h := Handle(len(p.byHandle))
	e := &entry{bytes: owned, refCount: 1, handle: h}
	p.buckets[idx] = append(p.buckets[idx], e)
	p.byHandle = append(p.byHandle, e)
	return h, nil
}

// InternString is a convenience wrapper around Intern for string input.
func (p *Pool) InternString(s string) (Handle, error) {
	return p.Intern([]byte(s))
}

// Bytes returns the byte sequence named by h. Panics if h is not a handle
// this pool produced.
func (p *Pool) Bytes(h Handle) []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	e := p.entryFor(h)
	return e.bytes
}

// String returns the byte sequence named by h, as a string.
func (p *Pool) String(h Handle) string {
	return string(p.Bytes(h))
}

// Length returns the number of bytes in the sequence named by h.
func (p *Pool) Length(h Handle) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entryFor(h).bytes)
}

func (p *Pool) entryFor(h Handle) *entry {
	if h == 0 || int(h) >= len(p.byHandle) {
		panic("intern: invalid handle")
	}
	e := p.byHandle[h]
	if e == nil {
		panic("intern: handle refers to a released entry")
	}
	return e
}

// Retain increments the reference count of the entry named by h.
func (p *Pool) Retain(h Handle) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entryFor(h).refCount++
}

// Release decrements the reference count of the entry named by h. When the
// count reaches zero the entry is reclaimed: its bucket chain entry is
// dropped and the handle becomes invalid for future use.
func (p *Pool) Release(h Handle) {
	p.mu.Lock()
	defer p.mu.Unlock()

	e := p.entryFor(h)
	e.refCount--
	if e.refCount > 0 {
		return
	}

	idx := p.bucketFor(e.bytes)
	chain := p.buckets[idx]
	for i, chained := range chain {
		if chained == e {
			p.buckets[idx] = append(chain[:i], chain[i+1:]...)
			break
		}
	}
	p.byHandle[h] = nil
}

// RefCount reports the current reference count of the entry named by h.
// Intended for tests; zero means the handle has been fully released.
func (p *Pool) RefCount(h Handle) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if h == 0 || int(h) >= len(p.byHandle) || p.byHandle[h] == nil {
		return 0
	}
	return p.byHandle[h].refCount
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
