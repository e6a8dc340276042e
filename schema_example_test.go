package schemaxml_test

import (
	schemaxml "github.com/wilkmaciej/schemaxml"
)

// Person is the worked example used throughout this package's tests: a
// flat document with a single Text name, zero or more URL children, and an
// optional date of birth.
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

// URL is a Child element whose only payload is its own direct text
// content, e.g. <url>https://example.com/</url>.
type URL struct {
	schemaxml.Element
}

func (u *URL) Schema() schemaxml.TypeSchema {
	return schemaxml.TypeSchema{Content: true}
}

func (u *URL) Value() (string, error) { return schemaxml.ReadContent(&u.Element) }

// Date is another content-only Child element, e.g. <dob>1990-01-02</dob>.
type Date struct {
	schemaxml.Element
}

func (d *Date) Schema() schemaxml.TypeSchema {
	return schemaxml.TypeSchema{Content: true}
}

func (d *Date) Value() (string, error) { return schemaxml.ReadContent(&d.Element) }
