package rdf

import (
	"bytes"
	"strings"

	"heritage/api/internal/ontology"
)

// Backslash goes first so later escapes are not escaped again.
var turtleEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
)

// Turtle writes one @prefix line for the ontology vocabulary followed by one
// full-IRI statement per triple.
func Turtle(ns ontology.Namespace, subject string, props PropertySet) []byte {
	var buf bytes.Buffer
	buf.WriteString("@prefix " + ns.Prefix() + ": <" + ns.Vocabulary() + "> .\n\n")
	for _, triple := range ObjectToTriples(ns, subject, props) {
		buf.WriteString("<" + triple.Subject + "> <" + triple.Predicate + "> ")
		if triple.ObjectIsURI {
			buf.WriteString("<" + triple.Object + ">")
		} else {
			buf.WriteString(`"` + EscapeTurtleLiteral(triple.Object) + `"`)
		}
		buf.WriteString(" .\n")
	}
	return buf.Bytes()
}

// EscapeTurtleLiteral escapes a string for a double-quoted Turtle literal.
func EscapeTurtleLiteral(value string) string {
	return turtleEscaper.Replace(value)
}
