package schemaxml

import "errors"

// Error taxonomy. The core never retries; every one of these surfaces to the
// caller as-is (wrapped with context via fmt.Errorf's %w).
var (
	// ErrSchemaIncomplete is returned when a document type's RootTag method
	// returns the empty string.
	ErrSchemaIncomplete = errors.New("schemaxml: document type has no tag")

	// ErrSchemaMismatch is returned when the root start-element's name does
	// not match the document's declared tag.
	ErrSchemaMismatch = errors.New("schemaxml: root element does not match document tag")

	// ErrUnexpectedElement is returned when a start-element's tag is not
	// declared in its parent's schema.
	ErrUnexpectedElement = errors.New("schemaxml: unexpected element")

	// ErrMalformedEvents is returned when an end-element's tag does not
	// match the tag on top of the parse stack.
	ErrMalformedEvents = errors.New("schemaxml: malformed event stream")

	// ErrArgument is returned for conflicting constructor arguments or
	// invalid descriptor flags (required && multiple).
	ErrArgument = errors.New("schemaxml: invalid argument")

	// ErrTypeMismatch is returned when a user assignment's value does not
	// match the element type a descriptor declares.
	ErrTypeMismatch = errors.New("schemaxml: type mismatch")

	// ErrIndexOutOfRange is returned by a repeated-child view's indexed
	// read once the stream is known to hold no such index.
	ErrIndexOutOfRange = errors.New("schemaxml: index out of range")
)
