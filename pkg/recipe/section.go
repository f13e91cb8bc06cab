package recipe

import (
	"fmt"

	"github.com/condaforge/recipe-lint/pkg/logger"
)

var sectionLog = logger.New("recipe:section")

// Section returns the named mapping-shaped section of doc.
//
// An absent section is not an error and yields an empty mapping; a present
// but wrong-shaped section records a finding on errs and likewise yields an
// empty mapping, so every downstream rule can run without nil checks.
func Section(doc Document, name string, errs *[]string) Mapping {
	v, ok := doc.Get(name)
	if !ok {
		return Mapping{}
	}
	section, ok := AsMapping(v)
	if !ok {
		sectionLog.Printf("Section %q has wrong shape: %s", name, typeName(v))
		*errs = append(*errs, fmt.Sprintf(
			"The %q section was expected to be a dictionary, but got a %s.", name, typeName(v)))
		return Mapping{}
	}
	return section
}

// ListSection returns the named list-shaped section of doc as a slice of
// mappings. When allowSingle is set (the source section), a bare mapping is
// normalized to a one-element list. Any other wrong shape records a finding
// and yields a one-element placeholder list so downstream rules can proceed.
func ListSection(doc Document, name string, errs *[]string, allowSingle bool) []Mapping {
	v, ok := doc.Get(name)
	if !ok {
		return nil
	}
	if allowSingle {
		if single, ok := AsMapping(v); ok {
			return []Mapping{single}
		}
	}
	if list, ok := v.([]any); ok {
		entries := make([]Mapping, 0, len(list))
		for _, item := range list {
			entry, ok := AsMapping(item)
			if !ok {
				// Scalar entries carry no keys for the rules to inspect.
				entry = Mapping{}
			}
			entries = append(entries, entry)
		}
		return entries
	}

	shape := "list"
	if allowSingle {
		shape = "dictionary or a list"
	}
	sectionLog.Printf("Section %q has wrong shape: %s", name, typeName(v))
	*errs = append(*errs, fmt.Sprintf(
		"The %q section was expected to be a %s, but got a %s.", name, shape, typeName(v)))
	return []Mapping{{}}
}
