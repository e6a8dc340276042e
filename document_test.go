package schemaxml_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	schemaxml "github.com/wilkmaciej/schemaxml"
)

func parsePerson(t *testing.T, xml string) *Person {
	t.Helper()
	source := schemaxml.NewReaderChunkSource(strings.NewReader(xml), 16)
	person, err := schemaxml.NewDocument[Person](context.Background(), source)
	require.NoError(t, err)
	return person
}

func TestReadFlatPersonDocument(t *testing.T) {
	person := parsePerson(t, `<person>
		<name>Alice</name>
		<url>https://alice.example/</url>
		<url>https://alice.example/blog</url>
		<dob>1990-01-02</dob>
	</person>`)

	name, err := person.Name()
	require.NoError(t, err)
	require.Equal(t, "Alice", name)

	n, err := person.URLs().Len()
	require.NoError(t, err)
	require.Equal(t, 2, n)

	first, err := person.URLs().At(0)
	require.NoError(t, err)
	firstValue, err := first.Value()
	require.NoError(t, err)
	require.Equal(t, "https://alice.example/", firstValue)

	second, err := person.URLs().At(1)
	require.NoError(t, err)
	secondValue, err := second.Value()
	require.NoError(t, err)
	require.Equal(t, "https://alice.example/blog", secondValue)

	dob, err := person.DOB()
	require.NoError(t, err)
	require.NotNil(t, dob)
	dobValue, err := dob.Value()
	require.NoError(t, err)
	require.Equal(t, "1990-01-02", dobValue)
}

func TestReadChildNeverAppearedReadsNil(t *testing.T) {
	person := parsePerson(t, `<person><url>https://example.com/</url></person>`)
	dob, err := person.DOB()
	require.NoError(t, err)
	require.Nil(t, dob)
}

func TestSingleReadOnlyPumpsAsFarAsItMust(t *testing.T) {
	// After the name, the document has an undeclared element closed by a
	// mismatched end tag, which would fail to parse if it were ever reached -
	// reading only "name" must never pump that far.
	person := parsePerson(t, `<person><name>Alice</name><bogus></mismatched></person>`)
	name, err := person.Name()
	require.NoError(t, err)
	require.Equal(t, "Alice", name)
}

func TestRootTagMismatchIsSchemaMismatch(t *testing.T) {
	source := schemaxml.NewReaderChunkSource(strings.NewReader(`<not-person></not-person>`), 16)
	_, err := schemaxml.NewDocument[Person](context.Background(), source)
	require.ErrorIs(t, err, schemaxml.ErrSchemaMismatch)
}

func TestChildViewAtPastEndIsIndexOutOfRange(t *testing.T) {
	person := parsePerson(t, `<person><url>https://a/</url><url>https://b/</url></person>`)
	_, err := person.URLs().At(5)
	require.ErrorIs(t, err, schemaxml.ErrIndexOutOfRange)
}

func TestUnexpectedElementIsRejected(t *testing.T) {
	person := parsePerson(t, `<person><age>30</age></person>`)
	_, err := person.Name()
	require.ErrorIs(t, err, schemaxml.ErrUnexpectedElement)
}

func TestMismatchedEndTagIsMalformedEvents(t *testing.T) {
	source := schemaxml.NewReaderChunkSource(strings.NewReader(`<person><name>Alice</age></person>`), 16)
	person, err := schemaxml.NewDocument[Person](context.Background(), source)
	require.NoError(t, err)
	_, err = person.Name()
	require.ErrorIs(t, err, schemaxml.ErrMalformedEvents)
}

func TestNilChunkSourceIsArgumentError(t *testing.T) {
	_, err := schemaxml.NewDocument[Person](context.Background(), nil)
	require.True(t, errors.Is(err, schemaxml.ErrArgument))
}

func TestEmptyRootTagIsSchemaIncomplete(t *testing.T) {
	_, err := schemaxml.NewBareDocument[untaggedDocument]()
	require.ErrorIs(t, err, schemaxml.ErrSchemaIncomplete)
}

type untaggedDocument struct {
	schemaxml.DocumentElement
}

func (u *untaggedDocument) RootTag() string             { return "" }
func (u *untaggedDocument) Schema() schemaxml.TypeSchema { return schemaxml.TypeSchema{} }

func TestChildViewStringShowsEllipsisWhileParentOpen(t *testing.T) {
	source := schemaxml.NewReaderChunkSource(strings.NewReader(
		`<person><url>https://a/</url><url>https://b/`), 8)
	person, err := schemaxml.NewDocument[Person](context.Background(), source)
	require.NoError(t, err)

	// Force exactly one url to materialize without closing the parent.
	_, err = person.URLs().At(0)
	require.NoError(t, err)

	require.True(t, strings.HasSuffix(person.URLs().String(), "...]"))
}

func TestSetChildAnyRejectsWrongType(t *testing.T) {
	person, err := schemaxml.NewBareDocument[Person]()
	require.NoError(t, err)
	err = schemaxml.SetChildAny(&person.Element, "dob", "not-a-date")
	require.ErrorIs(t, err, schemaxml.ErrTypeMismatch)
}

func TestSetChildAnyAcceptsDeclaredType(t *testing.T) {
	person, err := schemaxml.NewBareDocument[Person]()
	require.NoError(t, err)

	dobInstance := &Date{}
	err = schemaxml.SetChildAny(&person.Element, "dob", dobInstance)
	require.NoError(t, err)

	dob, err := person.DOB()
	require.NoError(t, err)
	require.Same(t, dobInstance, dob)
}
