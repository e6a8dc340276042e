package schemaxml

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// ===== laziness =====

// lazyPerson is a package-internal person document with two Text children,
// name and age, declared here (rather than reusing the external test
// package's Person) because it needs to share this file's access to the
// unexported countingChunkSource.
type lazyPerson struct {
	DocumentElement
}

func (p *lazyPerson) RootTag() string { return "person" }

func (p *lazyPerson) Schema() TypeSchema {
	return TypeSchema{
		ChildTags: map[string]Descriptor{
			"name": NewText("name"),
			"age":  NewText("age"),
		},
	}
}

func TestSingleValuedReadPullsOnlyAsManyChunksAsNecessary(t *testing.T) {
	xml := `<person><name>Alice</name><age>30</age></person>`
	counting := newCountingChunkSource(NewReaderChunkSource(strings.NewReader(xml), 4))

	person, err := NewDocument[lazyPerson](context.Background(), counting)
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	pullsAfterConstruction := counting.pulls

	name, err := ReadText(&person.Element, "name")
	if err != nil {
		t.Fatalf("ReadText(name): %v", err)
	}
	if name != "Alice" {
		t.Fatalf("name = %q, want Alice", name)
	}
	pullsAfterName := counting.pulls

	if pullsAfterName <= pullsAfterConstruction {
		t.Fatalf("expected ReadText(name) to pull more chunks than construction alone, got %d then %d",
			pullsAfterConstruction, pullsAfterName)
	}

	totalChunks := (len(xml) + 3) / 4
	if pullsAfterName >= totalChunks {
		t.Fatalf("ReadText(name) pulled %d of %d total chunks; expected it to stop before the age child",
			pullsAfterName, totalChunks)
	}
}

// ===== error propagation =====

var errChunkSourceFailed = errors.New("chunk source: connection reset")

// failingChunkSource yields a few good chunks and then fails outright,
// rather than cleanly reporting exhaustion - standing in for something like
// a network read failing mid-document.
type failingChunkSource struct {
	chunks [][]byte
	pos    int
}

func (s *failingChunkSource) Next() ([]byte, bool, error) {
	if s.pos >= len(s.chunks) {
		return nil, false, errChunkSourceFailed
	}
	c := s.chunks[s.pos]
	s.pos++
	return c, true, nil
}

func TestChunkSourceErrorPassesThroughUnwrapped(t *testing.T) {
	source := &failingChunkSource{chunks: [][]byte{[]byte("<person><name>Ali")}}
	person, err := NewDocument[lazyPerson](context.Background(), source)
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}

	_, err = ReadText(&person.Element, "name")
	if !errors.Is(err, errChunkSourceFailed) {
		t.Fatalf("ReadText(name): got %v, want it to wrap %v", err, errChunkSourceFailed)
	}
}

func TestExhaustedSourceStopsPumpingWithoutError(t *testing.T) {
	source := NewSliceChunkSource([][]byte{[]byte("<person><name>Alice")})
	person, err := NewDocument[lazyPerson](context.Background(), source)
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	age, err := ReadText(&person.Element, "age")
	if err != nil {
		t.Fatalf("ReadText(age) on exhausted input: %v", err)
	}
	if age != "" {
		t.Fatalf("age = %q, want empty on exhausted input", age)
	}
}
