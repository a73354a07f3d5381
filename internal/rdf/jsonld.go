package rdf

import (
	"bytes"
	"encoding/json"
	"fmt"

	"heritage/api/internal/ontology"
)

// JSONLD writes a document with a single node in @graph. Keys are fully
// expanded predicate URIs and list values are kept as one array.
func JSONLD(ns ontology.Namespace, subject string, props PropertySet) ([]byte, error) {
	node := map[string]any{"@id": subject}
	for _, key := range props.Keys() {
		value := props[key]
		if value == nil {
			continue
		}
		node[ns.Predicate(key)] = value
	}
	if _, ok := node[ns.URIPredicate()]; !ok {
		node[ns.URIPredicate()] = subject
	}

	doc := map[string]any{
		"@context": map[string]string{ns.Prefix(): ns.Vocabulary()},
		"@graph":   []any{node},
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode json-ld: %w", err)
	}
	return buf.Bytes(), nil
}
