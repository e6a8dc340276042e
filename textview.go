package schemaxml

import "fmt"

// TextView is TextDescriptor's repeated counterpart to ChildView: a
// sequence facade over a multiple Text descriptor's accumulated strings.
type TextView struct {
	parent *Element
	tag    string
}

func (v *TextView) items() []string {
	raw, ok := v.parent.data[v.tag]
	if !ok {
		return nil
	}
	items, _ := raw.([]string)
	return items
}

// Len drains chunks until the parent element has left the parse stack,
// then reports how many text children were observed under this tag.
func (v *TextView) Len() (int, error) {
	if err := pumpWhile(v.parent.root, func() bool { return !v.parent.isClosed() }); err != nil {
		return 0, err
	}
	return len(v.items()), nil
}

// At drains chunks until either the i-th text child is available or the
// parent has left the parse stack, then returns it.
func (v *TextView) At(i int) (string, error) {
	if i < 0 {
		return "", fmt.Errorf("%w: negative index %d", ErrIndexOutOfRange, i)
	}
	present := func() bool { return len(v.items()) > i }
	if err := pumpWhile(v.parent.root, func() bool {
		return !present() && !v.parent.isClosed()
	}); err != nil {
		return "", err
	}
	items := v.items()
	if i >= len(items) {
		return "", fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(items))
	}
	return items[i], nil
}

// String renders the view's current state without pumping.
func (v *TextView) String() string {
	items := v.items()
	s := fmt.Sprintf("%v", items)
	if !v.parent.isClosed() {
		s = s[:len(s)-1] + " ...]"
	}
	return s
}
