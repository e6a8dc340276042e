package schemaxml

import (
	"fmt"
	"reflect"
)

// eventHandler is the parse stack: it translates start/characters/end
// events into descriptor calls, exactly mirroring a SAX ContentHandler's
// startElement/characters/endElement, but against the schema-directed
// descriptor protocol instead of building a generic tree.
type eventHandler struct {
	stack []*parseFrame
}

func (h *eventHandler) handleStart(doc *DocumentElement, name string) error {
	if len(h.stack) == 0 {
		if name != doc.tag {
			return fmt.Errorf("%w: root element is %q, document declares %q", ErrSchemaMismatch, name, doc.tag)
		}
		frame := newFrame(name, nil, doc.Element.self)
		h.stack = append(h.stack, frame)
		doc.Element.stackTop = len(h.stack)
		return nil
	}

	top := h.stack[len(h.stack)-1]
	parentNode, ok := top.Reserved.(Node)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnexpectedElement, name)
	}
	parentElem := parentNode.elementPtr()

	var idx *schemaIndex
	if provider, ok := top.Reserved.(SchemaProvider); ok {
		var err error
		idx, err = getSchemaIndex(reflect.TypeOf(top.Reserved), provider)
		if err != nil {
			return err
		}
	} else {
		idx = emptySchemaIndex
	}

	binding, ok := idx.childTags[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnexpectedElement, name)
	}
	prospective := len(h.stack) + 1
	reserved := binding.Descriptor.onStart(parentElem, prospective)
	h.stack = append(h.stack, newFrame(name, binding.Descriptor, reserved))
	return nil
}

func (h *eventHandler) handleText(text []byte) {
	if len(h.stack) == 0 {
		return
	}
	h.stack[len(h.stack)-1].Content.Write(text)
}

func (h *eventHandler) handleEnd(name string) error {
	n := len(h.stack)
	if n == 0 {
		return fmt.Errorf("%w: unmatched end element %q", ErrMalformedEvents, name)
	}
	frame := h.stack[n-1]
	h.stack = h.stack[:n-1]
	if frame.Tag != name {
		return fmt.Errorf("%w: expected end of %q, got %q", ErrMalformedEvents, frame.Tag, name)
	}
	text := frame.Content.String()
	releaseFrame(frame)

	if frame.Descriptor == nil {
		return applyContent(frame.Reserved, text)
	}
	return frame.Descriptor.onEnd(frame.Reserved, text)
}
