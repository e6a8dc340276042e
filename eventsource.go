package schemaxml

import (
	"io"
	"strings"

	"github.com/orisano/gosax"
)

const defaultEventBufferSize = 64 * 1024

type rawEventKind int

const (
	rawStart rawEventKind = iota
	rawEnd
	rawText
	rawEOF
)

type rawEvent struct {
	kind rawEventKind
	name string
	text []byte
}

// eventSource is the low-level XML event source: a pull-driven start/
// text/end stream. The core asks for exactly one event at a time and never
// looks behind it.
type eventSource interface {
	next() (rawEvent, error)
}

// gosaxEventSource adapts github.com/orisano/gosax's SAX-style reader into
// the normalized event stream above. gosax.Reader.Event() only reads from
// its underlying io.Reader when its own internal buffer is exhausted, so
// wiring it directly over a ChunkSource-backed io.Reader already gives the
// "pull one chunk at a time, on demand" contract without a hand-rolled
// feed loop on top.
type gosaxEventSource struct {
	r         *gosax.Reader
	queue     []rawEvent
	exhausted bool
}

func newGosaxEventSource(source ChunkSource) *gosaxEventSource {
	return &gosaxEventSource{
		r: gosax.NewReaderSize(&chunkReader{source: source}, defaultEventBufferSize),
	}
}

func (g *gosaxEventSource) next() (rawEvent, error) {
	if g.exhausted && len(g.queue) == 0 {
		return rawEvent{kind: rawEOF}, nil
	}
	for len(g.queue) == 0 {
		e, err := g.r.Event()
		if err != nil {
			return rawEvent{}, err
		}
		switch e.Type() {
		case gosax.EventEOF:
			g.exhausted = true
			return rawEvent{kind: rawEOF}, nil
		case gosax.EventStart:
			name, _ := gosax.Name(e.Bytes)
			nameStr := string(name)
			selfClosing := len(e.Bytes) >= 2 &&
				e.Bytes[len(e.Bytes)-2] == '/' && e.Bytes[len(e.Bytes)-1] == '>'
			g.queue = append(g.queue, rawEvent{kind: rawStart, name: nameStr})
			if selfClosing {
				g.queue = append(g.queue, rawEvent{kind: rawEnd, name: nameStr})
			}
		case gosax.EventEnd:
			g.queue = append(g.queue, rawEvent{kind: rawEnd, name: extractEndName(e.Bytes)})
		case gosax.EventText:
			if len(e.Bytes) > 0 {
				g.queue = append(g.queue, rawEvent{kind: rawText, text: append([]byte(nil), e.Bytes...)})
			}
		case gosax.EventCData:
			if content := extractCData(e.Bytes); len(content) > 0 {
				g.queue = append(g.queue, rawEvent{kind: rawText, text: append([]byte(nil), content...)})
			}
		case gosax.EventComment:
			// Comments are not character data, the same way sax's
			// ContentHandler.characters never sees them.
		}
	}
	ev := g.queue[0]
	g.queue = g.queue[1:]
	return ev, nil
}

// extractEndName pulls the tag name out of a raw "</tag>" end-element
// token. gosax hands back the whole token rather than a parsed name for
// end events, so this mirrors the same fixed-prefix/suffix byte slicing
// parser.go uses for CData and comments.
func extractEndName(b []byte) string {
	s := b
	if len(s) >= 2 && s[0] == '<' && s[1] == '/' {
		s = s[2:]
	}
	if len(s) > 0 && s[len(s)-1] == '>' {
		s = s[:len(s)-1]
	}
	return strings.TrimSpace(string(s))
}

// extractCData strips the "<![CDATA[" ... "]]>" wrapper off a raw CData
// token.
func extractCData(b []byte) []byte {
	const prefix = "<![CDATA["
	const suffix = "]]>"
	if len(b) < len(prefix)+len(suffix) {
		return nil
	}
	return b[len(prefix) : len(b)-len(suffix)]
}

// chunkReader adapts a ChunkSource into an io.Reader, exposing one pulled
// chunk at a time so the event source only ever pulls as many chunks as it
// needs to fill its own internal buffer.
type chunkReader struct {
	source  ChunkSource
	buf     []byte
	pos     int
	done    bool
	pendErr error
}

func (c *chunkReader) Read(p []byte) (int, error) {
	for c.pos >= len(c.buf) {
		if c.done {
			if c.pendErr != nil {
				err := c.pendErr
				c.pendErr = nil
				return 0, err
			}
			return 0, io.EOF
		}
		chunk, ok, err := c.source.Next()
		if err != nil {
			// A chunk may arrive alongside the error that ended the source
			// (e.g. a final short read before the connection failed); that
			// chunk is still good data and is surfaced on this call, with
			// the error held back for the Read call after it's consumed -
			// the same convention io.Reader itself documents for n>0-with-err.
			c.done = true
			c.pendErr = err
			if len(chunk) == 0 {
				c.pendErr = nil
				return 0, err
			}
			c.buf = chunk
			c.pos = 0
			break
		}
		if !ok {
			c.done = true
			return 0, io.EOF
		}
		c.buf = chunk
		c.pos = 0
	}
	n := copy(p, c.buf[c.pos:])
	c.pos += n
	return n, nil
}
