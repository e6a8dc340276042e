package schemaxml

import (
	"fmt"
	"reflect"
	"sync"
)

// TypeSchema is what a user-defined element type publishes about itself:
// the tags it accepts as children, and whether it accepts direct content.
// A type opts into the registry by implementing SchemaProvider; types that
// don't (plain *Element, used internally for bare Text-owning frames) are
// treated as declaring no children and no content.
type TypeSchema struct {
	ChildTags map[string]Descriptor
	Content   bool
}

// SchemaProvider is implemented by user-declared element types to describe
// their own schema. It is the generalized-Go analogue of the descriptor
// protocol's class-level tag/attribute index: rather than reflecting over
// struct tags, a type states its own schema once, directly.
type SchemaProvider interface {
	Schema() TypeSchema
}

type childBinding struct {
	Descriptor Descriptor
}

type schemaIndex struct {
	childTags map[string]childBinding
	content   bool
}

var emptySchemaIndex = &schemaIndex{childTags: map[string]childBinding{}}

var registryCache sync.Map // reflect.Type -> *schemaIndex

// getSchemaIndex builds and caches the schema index for t, as declared by
// provider. The index is cached per type, never mutated onto the type
// itself: schema declarations are read once and the cache is keyed
// externally, so two goroutines parsing documents of the same type never
// race on shared per-type state.
func getSchemaIndex(t reflect.Type, provider SchemaProvider) (*schemaIndex, error) {
	if cached, ok := registryCache.Load(t); ok {
		return cached.(*schemaIndex), nil
	}
	ts := provider.Schema()
	idx := &schemaIndex{
		childTags: make(map[string]childBinding, len(ts.ChildTags)),
		content:   ts.Content,
	}
	for tag, desc := range ts.ChildTags {
		if desc.Required() && desc.Multiple() {
			return nil, fmt.Errorf("%w: %s: required and multiple are exclusive", ErrArgument, tag)
		}
		idx.childTags[tag] = childBinding{Descriptor: desc}
	}
	actual, _ := registryCache.LoadOrStore(t, idx)
	return actual.(*schemaIndex), nil
}

// schemaIndexFor resolves reserved's schema index, returning the empty
// index for values that don't publish one (plain *Element, used as the
// reserved value of Text children). Its caller is SetChildAny. Schema
// construction errors are swallowed here: a type whose schema fails to
// build resolves to the empty index, so every tag looked up on it is
// reported as unexpected. The handler's own lookups (handleStart,
// applyContent) call getSchemaIndex directly and return the ErrArgument.
func schemaIndexFor(reserved any) *schemaIndex {
	provider, ok := reserved.(SchemaProvider)
	if !ok {
		return emptySchemaIndex
	}
	idx, err := getSchemaIndex(reflect.TypeOf(reserved), provider)
	if err != nil {
		return emptySchemaIndex
	}
	return idx
}

// applyContent stores text into reserved's own content slot if its type
// declares a content descriptor, discarding it otherwise. It is the shared
// tail of both the root element's own end-element handling and every
// ChildDescriptor's onEnd.
func applyContent(reserved any, text string) error {
	provider, ok := reserved.(SchemaProvider)
	if !ok {
		return nil
	}
	idx, err := getSchemaIndex(reflect.TypeOf(reserved), provider)
	if err != nil {
		return err
	}
	if !idx.content {
		return nil
	}
	node, ok := reserved.(Node)
	if !ok {
		return nil
	}
	node.elementPtr().content = &text
	return nil
}
