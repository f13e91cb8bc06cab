package recipe

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/condaforge/recipe-lint/pkg/logger"
)

var parseLog = logger.New("recipe:parse")

// Parse decodes rendered recipe text into a Document. Mappings are decoded
// in document order so that the ordering rules see keys exactly as written.
func Parse(content []byte) (Document, error) {
	var raw any
	if err := yaml.UnmarshalWithOptions(content, &raw, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("failed to parse recipe: %w", err)
	}
	if raw == nil {
		parseLog.Print("Parsed empty recipe document")
		return Document{}, nil
	}
	doc, ok := AsMapping(raw)
	if !ok {
		return nil, fmt.Errorf("recipe must be a YAML mapping, got a %s", typeName(raw))
	}
	parseLog.Printf("Parsed recipe document: sections=%d", len(doc))
	return doc, nil
}
