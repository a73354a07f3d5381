// Package rdf serializes an entity's flat property set as Turtle, RDF/XML
// or JSON-LD.
//
// Turtle and RDF/XML share ObjectToTriples, which fans multi-valued
// properties out into one triple per value. JSON-LD works on the property
// set directly and keeps such values as a single array.
package rdf

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"heritage/api/internal/ontology"
)

// PropertySet maps a predicate key (bare local name or absolute URI) to a
// value or a list of values, as returned by the knowledge store.
type PropertySet map[string]any

// Triple is one statement about a subject.
type Triple struct {
	Subject     string
	Predicate   string
	Object      string
	ObjectIsURI bool
}

var uriValue = regexp.MustCompile(`(?i)^(https?://|urn:)`)

// IsURIValue reports whether a value is treated as a URI reference rather
// than a literal.
func IsURIValue(value string) bool {
	return uriValue.MatchString(value)
}

// Keys returns the property keys in lexicographic order. Serializers walk
// keys in this order so output is reproducible for the same input.
func (p PropertySet) Keys() []string {
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ObjectToTriples expands props into triples about subject. A triple
// binding subject to itself through the namespace's uri predicate is
// appended when props does not produce one.
func ObjectToTriples(ns ontology.Namespace, subject string, props PropertySet) []Triple {
	uriPredicate := ns.URIPredicate()
	triples := make([]Triple, 0, len(props)+1)
	hasSelf := false

	for _, key := range props.Keys() {
		value := props[key]
		if value == nil {
			continue
		}
		predicate := ns.Predicate(key)
		for _, item := range values(value) {
			text, ok := textValue(item)
			if !ok {
				continue
			}
			triples = append(triples, Triple{
				Subject:     subject,
				Predicate:   predicate,
				Object:      text,
				ObjectIsURI: IsURIValue(text),
			})
			if predicate == uriPredicate {
				hasSelf = true
			}
		}
	}

	if !hasSelf {
		triples = append(triples, Triple{
			Subject:     subject,
			Predicate:   uriPredicate,
			Object:      subject,
			ObjectIsURI: true,
		})
	}
	return triples
}

func values(value any) []any {
	switch v := value.(type) {
	case []any:
		return v
	case []string:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = item
		}
		return out
	default:
		return []any{v}
	}
}

func textValue(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case int:
		return strconv.Itoa(v), true
	case json.Number:
		return v.String(), true
	case map[string]any:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v), true
		}
		return string(encoded), true
	default:
		return fmt.Sprint(v), true
	}
}
