package schemaxml

import "io"

// ChunkSource is the byte-chunk producer external collaborator: a finite
// lazy sequence of text fragments. The core never asks for a chunk it does
// not need to satisfy the caller's current read, and never re-feeds a chunk
// once it has been pulled.
type ChunkSource interface {
	// Next returns the next chunk. ok is false once the source is
	// exhausted; the returned slice is then ignored. A non-nil err means
	// the source failed before it could report clean exhaustion (e.g. a
	// network read failing mid-document); the core passes it through
	// unwrapped rather than treating it as ordinary end-of-input.
	Next() (chunk []byte, ok bool, err error)
}

// readerChunkSource adapts an io.Reader into a ChunkSource, reading up to
// size bytes per pull. This is the common case: wrap whatever the caller
// already has (a file, a socket, an HTTP body).
type readerChunkSource struct {
	r    io.Reader
	size int
	done bool
}

// NewReaderChunkSource wraps r as a ChunkSource that pulls size-byte chunks.
// A non-positive size falls back to a 4096-byte default.
func NewReaderChunkSource(r io.Reader, size int) ChunkSource {
	if size <= 0 {
		size = 4096
	}
	return &readerChunkSource{r: r, size: size}
}

func (s *readerChunkSource) Next() ([]byte, bool, error) {
	if s.done {
		return nil, false, nil
	}
	buf := make([]byte, s.size)
	n, err := s.r.Read(buf)
	if n == 0 {
		s.done = true
		if err != nil && err != io.EOF {
			return nil, false, err
		}
		return nil, false, nil
	}
	if err != nil {
		s.done = true
		// A short final read still counts as a chunk. io.EOF alongside data
		// is clean exhaustion, reported on the next call; any other error
		// is the producer's own failure and passes through unwrapped, per
		// spec.md §7's Propagation requirement.
		if err != io.EOF {
			return buf[:n], true, err
		}
	}
	return buf[:n], true, nil
}

// sliceChunkSource replays a predetermined, finite sequence of chunks. This
// is primarily useful for tests that must control exactly where the input
// is split, to exercise the laziness and early-exit properties.
type sliceChunkSource struct {
	chunks [][]byte
	pos    int
}

// NewSliceChunkSource returns a ChunkSource that yields chunks in order and
// then reports exhaustion.
func NewSliceChunkSource(chunks [][]byte) ChunkSource {
	return &sliceChunkSource{chunks: chunks}
}

func (s *sliceChunkSource) Next() ([]byte, bool, error) {
	if s.pos >= len(s.chunks) {
		return nil, false, nil
	}
	c := s.chunks[s.pos]
	s.pos++
	return c, true, nil
}

// countingChunkSource wraps a ChunkSource and records how many chunks have
// been pulled, so tests can assert the laziness property directly.
type countingChunkSource struct {
	inner ChunkSource
	pulls int
}

func newCountingChunkSource(inner ChunkSource) *countingChunkSource {
	return &countingChunkSource{inner: inner}
}

func (c *countingChunkSource) Next() ([]byte, bool, error) {
	chunk, ok, err := c.inner.Next()
	if ok {
		c.pulls++
	}
	return chunk, ok, err
}
