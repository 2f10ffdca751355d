package resources

import (
	"sync"
	"testing/fstest"
	"time"
)

// countingFS records every existence check and read.
type countingFS struct {
	*FSFileSystem

	mu     sync.Mutex
	reads  map[string]int
	checks map[string]int
}

func newCountingFS(files fstest.MapFS) *countingFS {
	return &countingFS{
		FSFileSystem: NewFSFileSystem(files),
		reads:        make(map[string]int),
		checks:       make(map[string]int),
	}
}

func (c *countingFS) Exists(name string) bool {
	c.mu.Lock()
	c.checks[name]++
	c.mu.Unlock()
	return c.FSFileSystem.Exists(name)
}

func (c *countingFS) ReadFile(name string) ([]byte, error) {
	c.mu.Lock()
	c.reads[name]++
	c.mu.Unlock()
	return c.FSFileSystem.ReadFile(name)
}

func (c *countingFS) readCount(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reads[name]
}

func (c *countingFS) checkCount(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.checks[name]
}

// fileOnlyFS implements FileSystem without DirReader.
type fileOnlyFS struct {
	inner FileSystem
}

func (f fileOnlyFS) Exists(name string) bool              { return f.inner.Exists(name) }
func (f fileOnlyFS) ReadFile(name string) ([]byte, error) { return f.inner.ReadFile(name) }

// recorder captures Recorder events.
type recorder struct {
	mu        sync.Mutex
	hits      map[string]int
	misses    map[string]int
	loads     map[string]int
	loadErrs  map[string]int
	notFound  map[string]int
	overrides int
	size      int
}

func newRecorder() *recorder {
	return &recorder{
		hits:     make(map[string]int),
		misses:   make(map[string]int),
		loads:    make(map[string]int),
		loadErrs: make(map[string]int),
		notFound: make(map[string]int),
	}
}

func (r *recorder) RecordHit(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hits[kind]++
}

func (r *recorder) RecordMiss(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.misses[kind]++
}

func (r *recorder) RecordLoad(kind string, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loads[kind]++
	if err != nil {
		r.loadErrs[kind]++
	}
}

func (r *recorder) RecordNotFound(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notFound[kind]++
}

func (r *recorder) RecordOverride() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overrides++
}

func (r *recorder) UpdateSize(entries int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.size = entries
}
