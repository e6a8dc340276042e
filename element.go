package schemaxml

import "context"

// Element is a node in the partial tree a schema-directed document
// exposes: the common embedded type every user-declared element type
// carries. It never owns its parent or root by value, only by plain
// pointer — the parent's own lifetime already dominates the child's, so
// there is no reference cycle to break (the teacher's pack leans on
// xpath-style parent pointers the same way; Python's original leans on
// weakref for the same non-owning-reference reason).
type Element struct {
	parent *Element
	root   *DocumentElement

	// stackTop is the parse-stack depth captured the moment this element's
	// own frame is pushed: stack[stackTop-1] is always this element's own
	// frame for as long as it remains open.
	stackTop int
	self     any // the PT pointer this Element is embedded in

	data    map[string]any
	content *string
}

func (e *Element) elementPtr() *Element { return e }

// Parent returns the element directly enclosing this one, or nil for a
// document's root element.
func (e *Element) Parent() *Element { return e.parent }

// isClosed reports whether this element's own end-element has already been
// seen: once true, no descriptor of this element's type will ever produce
// another value, and every repeated-child view rooted here has reached its
// final length.
func (e *Element) isClosed() bool {
	if e.stackTop == 0 {
		// Never pushed onto a parse stack at all: either a bare,
		// unparsed document, or this Element hasn't been bound yet.
		return true
	}
	stack := e.root.handler.stack
	top := e.stackTop
	if len(stack) < top {
		return true
	}
	return stack[top-1].Reserved != e.self
}

func bindElement(elem *Element, parent *Element, stackTop int, self any) {
	elem.parent = parent
	elem.root = parent.root
	elem.stackTop = stackTop
	elem.self = self
	elem.data = make(map[string]any)
}

// DocumentElement is the distinguished root of a parsed document: the type
// a schema's entry point embeds (directly) in addition to Element. It owns
// the chunk source, the low-level event source, and the parse stack that
// every attribute read on any element in the tree pumps against.
type DocumentElement struct {
	Element

	tag     string
	ctx     context.Context
	source  ChunkSource
	events  eventSource
	handler *eventHandler
}

func (d *DocumentElement) docPtr() *DocumentElement { return d }

// RootTag reports the root element name this document was constructed
// with. It is distinct from the Documented interface's RootTag method
// (which a user type implements to *declare* its tag): once construction
// has run, this accessor and that declaration always agree.
func (d *DocumentElement) RootTag() string { return d.tag }
