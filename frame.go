package schemaxml

import (
	"bytes"
	"sync"
)

// parseFrame is one entry on the parse stack: the tag that opened it, the
// descriptor that produced it (nil for the document root), the reserved
// value that descriptor handed back, and the characters seen since the tag
// opened. Frames are immutable from the caller's perspective; only the
// handler mutates Content while the frame is on top of the stack.
type parseFrame struct {
	Tag        string
	Descriptor Descriptor
	Reserved   any
	Content    *bytes.Buffer
}

var frameBufferPool = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

func newFrame(tag string, d Descriptor, reserved any) *parseFrame {
	buf := frameBufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return &parseFrame{Tag: tag, Descriptor: d, Reserved: reserved, Content: buf}
}

// releaseFrame returns a frame's buffer to the pool. Called once a frame is
// popped off the stack and its accumulated text has already been read out.
func releaseFrame(f *parseFrame) {
	frameBufferPool.Put(f.Content)
	f.Content = nil
}
