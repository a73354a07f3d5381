package rdf

import (
	"bytes"
	"fmt"
	"strings"

	"heritage/api/internal/ontology"
)

const rdfNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// RDFXML writes the triples as one rdf:Description. Namespace prefixes are
// assigned ns0, ns1, ... in order of first use and carry no meaning.
func RDFXML(ns ontology.Namespace, subject string, props PropertySet) []byte {
	triples := ObjectToTriples(ns, subject, props)

	prefixes := make(map[string]string)
	var order []string
	type element struct {
		name   string
		triple Triple
	}
	elements := make([]element, 0, len(triples))

	for _, triple := range triples {
		namespace, local := SplitPredicate(triple.Predicate)
		prefix, ok := prefixes[namespace]
		if !ok {
			prefix = fmt.Sprintf("ns%d", len(order))
			prefixes[namespace] = prefix
			order = append(order, namespace)
		}
		elements = append(elements, element{name: prefix + ":" + SanitizeLocalName(local), triple: triple})
	}

	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="utf-8"?>` + "\n")
	buf.WriteString(`<rdf:RDF xmlns:rdf="` + rdfNamespace + `"`)
	for _, namespace := range order {
		buf.WriteString(` xmlns:` + prefixes[namespace] + `="` + EscapeXML(namespace) + `"`)
	}
	buf.WriteString(">\n")
	buf.WriteString(`  <rdf:Description rdf:about="` + EscapeXML(subject) + `">` + "\n")
	for _, el := range elements {
		if el.triple.ObjectIsURI {
			buf.WriteString(`    <` + el.name + ` rdf:resource="` + EscapeXML(el.triple.Object) + `"/>` + "\n")
			continue
		}
		buf.WriteString(`    <` + el.name + `>` + EscapeXML(el.triple.Object) + `</` + el.name + ">\n")
	}
	buf.WriteString("  </rdf:Description>\n")
	buf.WriteString("</rdf:RDF>\n")
	return buf.Bytes()
}

// SplitPredicate splits a predicate URI after its last '#' or '/'.
func SplitPredicate(predicate string) (namespace, local string) {
	i := strings.LastIndexAny(predicate, "#/")
	if i < 0 {
		return "", predicate
	}
	return predicate[:i+1], predicate[i+1:]
}

// SanitizeLocalName makes local usable as an XML element local name.
func SanitizeLocalName(local string) string {
	var b strings.Builder
	for _, r := range local {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	name := b.String()
	if name == "" || !isNameStart(name[0]) {
		name = "p_" + name
	}
	return name
}

func isNameStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func EscapeXML(value string) string {
	return xmlEscaper.Replace(value)
}
