//go:build !integration

package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, content string) Document {
	t.Helper()
	doc, err := Parse([]byte(content))
	require.NoError(t, err)
	return doc
}

func TestParsePreservesKeyOrder(t *testing.T) {
	doc := mustParse(t, "build:\n  number: 0\npackage:\n  name: foo\n")
	assert.Equal(t, []string{"build", "package"}, doc.Keys())
}

func TestParseRejectsNonMappingRoot(t *testing.T) {
	_, err := Parse([]byte("- a\n- b\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list")
}

func TestSectionAbsentIsNotAnError(t *testing.T) {
	var errs []string
	section := Section(mustParse(t, "package:\n  name: foo\n"), "about", &errs)
	assert.Empty(t, section)
	assert.Empty(t, errs)
}

func TestSectionWrongShapeRecordsFinding(t *testing.T) {
	var errs []string
	section := Section(mustParse(t, "about: just a string\n"), "about", &errs)
	assert.Empty(t, section)
	require.Len(t, errs, 1)
	assert.Equal(t, `The "about" section was expected to be a dictionary, but got a string.`, errs[0])
}

func TestListSectionNormalizesSingleSourceMapping(t *testing.T) {
	var errs []string
	asMapping := ListSection(mustParse(t, "source:\n  url: http://x\n"), "source", &errs, true)
	asList := ListSection(mustParse(t, "source:\n  - url: http://x\n"), "source", &errs, true)

	require.Len(t, asMapping, 1)
	require.Len(t, asList, 1)
	assert.Equal(t, asList[0].String("url"), asMapping[0].String("url"))
	assert.Empty(t, errs)
}

func TestListSectionWrongShapeYieldsPlaceholder(t *testing.T) {
	var errs []string
	outputs := ListSection(mustParse(t, "outputs: nope\n"), "outputs", &errs, false)
	require.Len(t, outputs, 1)
	assert.Empty(t, outputs[0])
	require.Len(t, errs, 1)
	assert.Equal(t, `The "outputs" section was expected to be a list, but got a string.`, errs[0])
}

func TestListSectionOutputsRejectsBareMapping(t *testing.T) {
	var errs []string
	ListSection(mustParse(t, "outputs:\n  name: foo\n"), "outputs", &errs, false)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "dictionary")
}

func TestSectionAccessIsIdempotent(t *testing.T) {
	doc := mustParse(t, "build:\n  number: 0\nsource:\n  url: http://x\n")
	var errs []string

	first := Section(doc, "build", &errs)
	second := Section(doc, "build", &errs)
	assert.Equal(t, first, second)

	sources := ListSection(doc, "source", &errs, true)
	again := ListSection(doc, "source", &errs, true)
	assert.Equal(t, sources, again)
	assert.Empty(t, errs)

	// A normalized mapping converts to itself.
	converted, ok := AsMapping(first)
	require.True(t, ok)
	assert.Equal(t, first, converted)
}

func TestMappingStringCoercion(t *testing.T) {
	doc := mustParse(t, "package:\n  name: foo\n  version: 1.2\nbuild:\n  number: 0\n")
	var errs []string
	pkg := Section(doc, "package", &errs)

	assert.Equal(t, "foo", pkg.String("name"))
	assert.Equal(t, "1.2", pkg.String("version"))
	assert.Equal(t, "", pkg.String("missing"))
	assert.Empty(t, errs)
}
