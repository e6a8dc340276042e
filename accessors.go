package schemaxml

import "fmt"

// ReadChild pumps until a single-valued Child attribute's value is
// available or the input is exhausted, then returns it. A tag that never
// appears resolves to the zero PT value and a nil error, not an error. This
// holds for Required descriptors too: presence is not checked on read, and
// the schema-level check covers only the required-and-multiple combination.
func ReadChild[T any, PT interface {
	*T
	Node
}](e *Element, tag string) (PT, error) {
	var zero PT
	if err := pumpWhile(e.root, func() bool {
		_, ok := e.data[tag]
		return !ok
	}); err != nil {
		return zero, err
	}
	raw, ok := e.data[tag]
	if !ok {
		return zero, nil
	}
	pt, ok := raw.(PT)
	if !ok {
		return zero, fmt.Errorf("%w: %s is not %T", ErrTypeMismatch, tag, zero)
	}
	return pt, nil
}

// Children returns the repeated-child view for a multiple Child attribute.
// It never pumps on its own; every pump happens lazily inside Len/At.
func Children[T any, PT interface {
	*T
	Node
}](e *Element, tag string) *ChildView[T, PT] {
	return newChildView[T, PT](e, tag)
}

// ReadText pumps until a single-valued Text attribute's value is available
// or the input is exhausted, then returns it ("" if the tag never
// appeared).
func ReadText(e *Element, tag string) (string, error) {
	if err := pumpWhile(e.root, func() bool {
		_, ok := e.data[tag]
		return !ok
	}); err != nil {
		return "", err
	}
	raw, ok := e.data[tag]
	if !ok {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is not text", ErrTypeMismatch, tag)
	}
	return s, nil
}

// Texts returns the repeated view for a multiple Text attribute.
func Texts(e *Element, tag string) *TextView {
	return &TextView{parent: e, tag: tag}
}

// ReadContent pumps until this element's own content is available or the
// input is exhausted; absent content reads as "".
func ReadContent(e *Element) (string, error) {
	if err := pumpWhile(e.root, func() bool { return e.content == nil }); err != nil {
		return "", err
	}
	if e.content == nil {
		return "", nil
	}
	return *e.content, nil
}

// SetChild assigns a single-valued Child attribute directly. The value's
// type is checked statically by PT; use SetChildAny for the dynamically
// checked path the descriptor protocol describes.
func SetChild[T any, PT interface {
	*T
	Node
}](e *Element, tag string, value PT) {
	e.data[tag] = any(value)
}

// SetChildren assigns a multiple-valued Child attribute directly.
func SetChildren[T any, PT interface {
	*T
	Node
}](e *Element, tag string, values []PT) {
	list := make([]any, len(values))
	for i, v := range values {
		list[i] = any(v)
	}
	e.data[tag] = list
}

// SetText assigns a single-valued Text attribute.
func SetText(e *Element, tag string, value string) { e.data[tag] = value }

// SetTexts assigns a multiple-valued Text attribute.
func SetTexts(e *Element, tag string, values []string) {
	e.data[tag] = append([]string(nil), values...)
}

// SetContent assigns the element's own direct text content.
func SetContent(e *Element, value string) { e.content = &value }

// SetChildAny performs the dynamically type-checked assignment the
// descriptor protocol describes: it looks up tag on e's own schema and
// asks that descriptor to validate value before storing it, rejecting a
// mismatched Go type with ErrTypeMismatch. Use this where a caller builds
// documents from untyped data (e.g. deserializing something other than
// XML) instead of through the generic Set* helpers above.
func SetChildAny(e *Element, tag string, value any) error {
	idx := schemaIndexFor(e.self)
	binding, ok := idx.childTags[tag]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnexpectedElement, tag)
	}
	return binding.Descriptor.setAny(e, value)
}
