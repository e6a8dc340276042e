// Package schemaxml is a lazy, schema-directed XML reader: a hybrid
// between a SAX push parser and a DOM tree. A caller declares the shape of
// a document as plain Go types carrying Child, Text, and Content
// descriptors, and reads attributes off those types the way they would
// read fields off any other struct. Underneath, nothing is parsed until an
// attribute read demands it: the reader pumps the underlying byte-chunk
// source exactly as far as it must to answer the read in front of it, one
// chunk at a time, and no further.
//
// A minimal schema looks like:
//
//	type Person struct {
//		schemaxml.DocumentElement
//	}
//
//	func (p *Person) RootTag() string { return "person" }
//
//	func (p *Person) Schema() schemaxml.TypeSchema {
//		return schemaxml.TypeSchema{
//			ChildTags: map[string]schemaxml.Descriptor{
//				"name": schemaxml.NewText("name"),
//				"url":  schemaxml.NewChild[URL]("url", schemaxml.Multiple()),
//			},
//		}
//	}
//
//	person, err := schemaxml.NewDocument[Person](ctx, source)
//
// Reading person's "name" or "url" attributes only then drives the parser
// forward, and only as far as each read needs.
package schemaxml
