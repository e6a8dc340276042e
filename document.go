package schemaxml

import (
	"context"
	"fmt"
)

// Documented is implemented by a schema's document-root type to declare
// the element tag it parses. It is the Go equivalent of the descriptor
// protocol's DocumentElement.__tag__ class attribute.
type Documented interface {
	RootTag() string
}

// docNode is the sealed counterpart to Node for document roots: it is
// satisfied only by embedding DocumentElement.
type docNode interface {
	docPtr() *DocumentElement
}

// NewDocument constructs a document of type T, addressed through PT, and
// begins parsing it lazily from source: this is pump site A, "document
// construction" — it pumps only as far as the first start-element event,
// validating that the root tag matches PT.RootTag() before returning.
func NewDocument[T any, PT interface {
	*T
	Node
	docNode
	Documented
}](ctx context.Context, source ChunkSource) (PT, error) {
	var zero PT
	if source == nil {
		return zero, fmt.Errorf("%w: chunk source must not be nil", ErrArgument)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	inst := new(T)
	pt := PT(inst)
	tag := pt.RootTag()
	if tag == "" {
		return zero, ErrSchemaIncomplete
	}

	doc := pt.docPtr()
	doc.tag = tag
	doc.ctx = ctx
	doc.source = source
	doc.events = newGosaxEventSource(source)
	doc.handler = &eventHandler{}

	elem := pt.elementPtr()
	elem.root = doc
	elem.self = pt
	elem.data = make(map[string]any)

	if err := pumpUntilStarted(doc); err != nil {
		return zero, err
	}
	return pt, nil
}

// NewBareDocument constructs a document of type T without parsing any
// input: the Go equivalent of the descriptor protocol's keyword-initializer
// construction path, for documents assembled programmatically rather than
// parsed. Its tag is still validated, but nothing is pumped, and reading
// any attribute that was never assigned resolves to that attribute's zero
// value without blocking.
func NewBareDocument[T any, PT interface {
	*T
	Node
	docNode
	Documented
}]() (PT, error) {
	var zero PT
	inst := new(T)
	pt := PT(inst)
	if pt.RootTag() == "" {
		return zero, ErrSchemaIncomplete
	}

	doc := pt.docPtr()
	doc.tag = pt.RootTag()
	doc.handler = &eventHandler{}

	elem := pt.elementPtr()
	elem.root = doc
	elem.self = pt
	elem.data = make(map[string]any)
	return pt, nil
}
