package schemaxml

import "fmt"

// ChildView is the repeated-child view: a sequence facade over a multiple
// Child descriptor. An in-progress child — one whose start-element has
// fired but whose end-element hasn't yet — is visible in the view as soon
// as it starts, which is the streaming contract the data model commits to:
// callers reading a partially-parsed document see partial results, not a
// view that blocks until the whole parent closes.
type ChildView[T any, PT interface {
	*T
	Node
}] struct {
	parent *Element
	tag    string
}

func newChildView[T any, PT interface {
	*T
	Node
}](parent *Element, tag string) *ChildView[T, PT] {
	return &ChildView[T, PT]{parent: parent, tag: tag}
}

func (v *ChildView[T, PT]) items() []any {
	raw, ok := v.parent.data[v.tag]
	if !ok {
		return nil
	}
	items, _ := raw.([]any)
	return items
}

// Len drains chunks until the parent element has left the parse stack,
// then reports how many children were observed under this tag.
func (v *ChildView[T, PT]) Len() (int, error) {
	if err := pumpWhile(v.parent.root, func() bool { return !v.parent.isClosed() }); err != nil {
		return 0, err
	}
	return len(v.items()), nil
}

// At drains chunks until either the i-th child is available or the parent
// has left the parse stack (in which case i was never going to arrive),
// then returns it.
func (v *ChildView[T, PT]) At(i int) (PT, error) {
	var zero PT
	if i < 0 {
		return zero, fmt.Errorf("%w: negative index %d", ErrIndexOutOfRange, i)
	}
	present := func() bool { return len(v.items()) > i }
	if err := pumpWhile(v.parent.root, func() bool {
		return !present() && !v.parent.isClosed()
	}); err != nil {
		return zero, err
	}
	items := v.items()
	if i >= len(items) {
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(items))
	}
	pt, ok := items[i].(PT)
	if !ok {
		return zero, fmt.Errorf("%w: stored child at %d is not %T", ErrTypeMismatch, i, zero)
	}
	return pt, nil
}

// String renders the view's current state without pumping: the children
// observed so far, with a trailing ellipsis if the parent hasn't closed
// and more could still arrive.
func (v *ChildView[T, PT]) String() string {
	items := v.items()
	s := fmt.Sprintf("%v", items)
	if !v.parent.isClosed() {
		s = s[:len(s)-1] + " ...]"
	}
	return s
}
