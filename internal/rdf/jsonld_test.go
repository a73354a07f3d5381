package rdf

import (
	"encoding/json"
	"testing"
)

func decodeJSONLD(t *testing.T, props PropertySet) (map[string]any, map[string]any) {
	t.Helper()
	out, err := JSONLD(testNamespace, monaLisa, props)
	if err != nil {
		t.Fatalf("JSONLD: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	graph, ok := doc["@graph"].([]any)
	if !ok || len(graph) != 1 {
		t.Fatalf("expected one node in @graph, got %v", doc["@graph"])
	}
	node, ok := graph[0].(map[string]any)
	if !ok {
		t.Fatalf("graph node is %T", graph[0])
	}
	return doc, node
}

func TestJSONLDDocument(t *testing.T) {
	doc, node := decodeJSONLD(t, PropertySet{
		"label":                          "Mona Lisa",
		"http://purl.org/dc/terms/title": "La Gioconda",
		"missing":                        nil,
	})

	context, ok := doc["@context"].(map[string]any)
	if !ok || context["heritage"] != testNamespace.Vocabulary() {
		t.Fatalf("unexpected @context %v", doc["@context"])
	}
	if node["@id"] != monaLisa {
		t.Fatalf("unexpected @id %v", node["@id"])
	}
	if node[testNamespace.Predicate("label")] != "Mona Lisa" {
		t.Errorf("label not under expanded key: %v", node)
	}
	if node["http://purl.org/dc/terms/title"] != "La Gioconda" {
		t.Errorf("absolute key rewritten: %v", node)
	}
	if _, ok := node["heritage:label"]; ok {
		t.Error("keys must not be compacted")
	}
	if _, ok := node[testNamespace.Predicate("missing")]; ok {
		t.Error("null property should be skipped")
	}
}

func TestJSONLDSynthesizesSelfURI(t *testing.T) {
	_, node := decodeJSONLD(t, PropertySet{"label": "Mona Lisa"})
	if node[testNamespace.URIPredicate()] != monaLisa {
		t.Fatalf("expected self uri key, got %v", node)
	}
}

func TestJSONLDKeepsListsAsArrays(t *testing.T) {
	_, node := decodeJSONLD(t, PropertySet{"theme": []any{"Modernism", "Abstract"}})
	themes, ok := node[testNamespace.Predicate("theme")].([]any)
	if !ok || len(themes) != 2 || themes[0] != "Modernism" || themes[1] != "Abstract" {
		t.Fatalf("expected a two-element array, got %v", node[testNamespace.Predicate("theme")])
	}
}

func TestJSONLDKeepsExistingURI(t *testing.T) {
	other := "https://w3id.org/heritage/ontology/id/artwork/legacy-7"
	_, node := decodeJSONLD(t, PropertySet{"uri": other})
	if node[testNamespace.URIPredicate()] != other {
		t.Fatalf("existing uri overwritten: %v", node)
	}
}
