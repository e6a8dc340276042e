package main

import schemaxml "github.com/wilkmaciej/schemaxml"

// Person is the CLI's worked example schema: a flat document with a name,
// zero or more urls, and an optional date of birth — the same shape
// spec.md's own "flat person document" scenario describes.
type Person struct {
	schemaxml.DocumentElement
}

func (p *Person) RootTag() string { return "person" }

func (p *Person) Schema() schemaxml.TypeSchema {
	return schemaxml.TypeSchema{
		ChildTags: map[string]schemaxml.Descriptor{
			"name": schemaxml.NewText("name", schemaxml.Required()),
			"url":  schemaxml.NewChild[URL]("url", schemaxml.Multiple()),
			"dob":  schemaxml.NewChild[Date]("dob"),
		},
	}
}

func (p *Person) Name() (string, error) { return schemaxml.ReadText(&p.Element, "name") }

func (p *Person) URLs() *schemaxml.ChildView[URL, *URL] {
	return schemaxml.Children[URL](&p.Element, "url")
}

func (p *Person) DOB() (*Date, error) { return schemaxml.ReadChild[Date](&p.Element, "dob") }

// URL is a Child element whose payload is its own direct text content.
type URL struct {
	schemaxml.Element
}

func (u *URL) Schema() schemaxml.TypeSchema { return schemaxml.TypeSchema{Content: true} }
func (u *URL) Value() (string, error)       { return schemaxml.ReadContent(&u.Element) }

// Date is another content-only Child element.
type Date struct {
	schemaxml.Element
}

func (d *Date) Schema() schemaxml.TypeSchema { return schemaxml.TypeSchema{Content: true} }
func (d *Date) Value() (string, error)       { return schemaxml.ReadContent(&d.Element) }
