package schemaxml

import (
	"fmt"
	"reflect"
)

// Node is implemented by every element type in a schema, always by
// embedding Element (directly, or through DocumentElement). It is sealed:
// the method is unexported, so the only way to satisfy it from outside this
// package is to embed Element.
type Node interface {
	elementPtr() *Element
}

// Descriptor is the closed, tagged-union family of schema attribute kinds:
// ChildDescriptor and TextDescriptor. Content is deliberately not a
// Descriptor — it has no tag and is addressed separately, per the data
// model's distinction between tagged children and an element's own direct
// text content.
type Descriptor interface {
	Tag() string
	Required() bool
	Multiple() bool

	// onStart is called when a start-element matching this descriptor's tag
	// is seen under parent. It returns the "reserved value" stored on the
	// parse frame for the duration of that element.
	onStart(parent *Element, stackTop int) any

	// onEnd is called when the matching end-element is seen, with the text
	// accumulated since the start-element.
	onEnd(reserved any, text string) error

	// setAny performs the dynamically type-checked assignment used by
	// SetChildAny (for Text and Child descriptors alike): value's Go type is
	// checked against what this descriptor declares before it is stored.
	setAny(e *Element, value any) error
}

// DescriptorOption configures a descriptor's required/multiple flags.
type DescriptorOption func(*descriptorFlags)

type descriptorFlags struct {
	required bool
	multiple bool
}

// Required marks a descriptor as mandatory. Exclusive with Multiple.
func Required() DescriptorOption { return func(f *descriptorFlags) { f.required = true } }

// Multiple marks a descriptor as repeatable. Exclusive with Required.
func Multiple() DescriptorOption { return func(f *descriptorFlags) { f.multiple = true } }

func applyFlags(opts []DescriptorOption) descriptorFlags {
	var f descriptorFlags
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// TextDescriptor declares a child element whose only payload is its
// character data: the parsed value is a plain string, not a nested Element.
type TextDescriptor struct {
	tag               string
	required, multiple bool
}

// NewText declares a Text descriptor for tag. It panics if both Required
// and Multiple are given, since a required-and-repeatable attribute is a
// contradiction the schema author should see immediately, the same way an
// invalid regexp.MustCompile pattern panics at package init.
func NewText(tag string, opts ...DescriptorOption) *TextDescriptor {
	f := applyFlags(opts)
	if f.required && f.multiple {
		panic(fmt.Errorf("%w: %s: required and multiple are exclusive", ErrArgument, tag))
	}
	return &TextDescriptor{tag: tag, required: f.required, multiple: f.multiple}
}

func (d *TextDescriptor) Tag() string    { return d.tag }
func (d *TextDescriptor) Required() bool { return d.required }
func (d *TextDescriptor) Multiple() bool { return d.multiple }

// onStart returns the parent element itself: a Text child has no element of
// its own, only accumulated text that ultimately lands on the parent.
func (d *TextDescriptor) onStart(parent *Element, _ int) any { return parent }

func (d *TextDescriptor) onEnd(reserved any, text string) error {
	elem, ok := reserved.(*Element)
	if !ok {
		return nil
	}
	if d.multiple {
		list, _ := elem.data[d.tag].([]string)
		elem.data[d.tag] = append(list, text)
		return nil
	}
	elem.data[d.tag] = text
	return nil
}

func (d *TextDescriptor) setAny(e *Element, value any) error {
	if d.multiple {
		list, ok := value.([]string)
		if !ok {
			return fmt.Errorf("%w: %s expects []string, got %T", ErrTypeMismatch, d.tag, value)
		}
		e.data[d.tag] = append([]string(nil), list...)
		return nil
	}
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: %s expects string, got %T", ErrTypeMismatch, d.tag, value)
	}
	e.data[d.tag] = s
	return nil
}

// ChildDescriptor declares a nested element of type T, addressed through
// its pointer type PT. PT must embed Element (directly or transitively) so
// that it satisfies Node without reflection-based field discovery.
type ChildDescriptor[T any, PT interface {
	*T
	Node
}] struct {
	tag                string
	required, multiple bool
}

// NewChild declares a Child descriptor for tag, producing elements of type
// T accessed through PT. It panics if both Required and Multiple are given.
func NewChild[T any, PT interface {
	*T
	Node
}](tag string, opts ...DescriptorOption) *ChildDescriptor[T, PT] {
	f := applyFlags(opts)
	if f.required && f.multiple {
		panic(fmt.Errorf("%w: %s: required and multiple are exclusive", ErrArgument, tag))
	}
	return &ChildDescriptor[T, PT]{tag: tag, required: f.required, multiple: f.multiple}
}

func (d *ChildDescriptor[T, PT]) Tag() string    { return d.tag }
func (d *ChildDescriptor[T, PT]) Required() bool { return d.required }
func (d *ChildDescriptor[T, PT]) Multiple() bool { return d.multiple }

func (d *ChildDescriptor[T, PT]) onStart(parent *Element, stackTop int) any {
	inst := new(T)
	pt := PT(inst)
	elem := pt.elementPtr()
	bindElement(elem, parent, stackTop, pt)
	if d.multiple {
		list, _ := parent.data[d.tag].([]any)
		parent.data[d.tag] = append(list, any(pt))
	} else {
		parent.data[d.tag] = any(pt)
	}
	return pt
}

// onEnd applies the child's own accumulated text to its content descriptor,
// if its type declares one; otherwise the text is discarded, matching the
// protocol's "Child: store into the content descriptor if declared,
// otherwise discard" rule.
func (d *ChildDescriptor[T, PT]) onEnd(reserved any, text string) error {
	return applyContent(reserved, text)
}

func (d *ChildDescriptor[T, PT]) setAny(e *Element, value any) error {
	var zero PT
	if d.multiple {
		rv := reflect.ValueOf(value)
		if value == nil || rv.Kind() != reflect.Slice {
			return fmt.Errorf("%w: %s expects a sequence, got %T", ErrTypeMismatch, d.tag, value)
		}
		if rv.Len() > 0 {
			if _, ok := rv.Index(0).Interface().(PT); !ok {
				return fmt.Errorf("%w: %s expects a sequence of %T", ErrTypeMismatch, d.tag, zero)
			}
		}
		list := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			list[i] = rv.Index(i).Interface()
		}
		e.data[d.tag] = list
		return nil
	}
	pt, ok := value.(PT)
	if !ok {
		return fmt.Errorf("%w: %s expects %T, got %T", ErrTypeMismatch, d.tag, zero, value)
	}
	e.data[d.tag] = any(pt)
	return nil
}
